package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/tinytasks/tinytasks-api/internal/api/shared"
	"github.com/tinytasks/tinytasks-api/internal/platform/postgres"
)

// ServiceInfo identifies the running service on the root endpoint.
type ServiceInfo struct {
	Name    string `json:"service"`
	Version string `json:"version"`
}

// HealthHandler serves the operational endpoints: liveness, database health,
// and service identification.
type HealthHandler struct {
	db     *sql.DB
	info   ServiceInfo
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sql.DB, info ServiceInfo, log *slog.Logger) *HealthHandler {
	if log == nil {
		log = slog.Default()
	}

	return &HealthHandler{
		db:     db,
		info:   info,
		logger: log.With(slog.String("component", "health_handler")),
	}
}

// Healthz handles GET /healthz requests. It reports process liveness only
// and deliberately does not touch the database.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// DBHealthz handles GET /db/healthz requests by probing the database with a
// trivial query. An unreachable store yields 503.
func (h *HealthHandler) DBHealthz(w http.ResponseWriter, r *http.Request) {
	if err := postgres.CheckHealth(r.Context(), h.db); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"db": "ok"})
}

// Root handles GET / requests with basic service identification.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.info)
}
