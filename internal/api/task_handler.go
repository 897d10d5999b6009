// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tinytasks/tinytasks-api/internal/api/shared"
	"github.com/tinytasks/tinytasks-api/internal/domain"
	"github.com/tinytasks/tinytasks-api/internal/platform/logger"
	"github.com/tinytasks/tinytasks-api/internal/service"
	"github.com/tinytasks/tinytasks-api/internal/store"
)

// CreateTaskRequest represents the request body for creating a new task.
type CreateTaskRequest struct {
	Title string `json:"title"`
}

// Validate checks the title against the domain rules.
func (r *CreateTaskRequest) Validate() error {
	_, err := domain.ValidateTitle(r.Title)
	return err
}

// UpdateTaskRequest represents the request body for partially updating a
// task. Pointer fields distinguish "omitted" from a zero value.
type UpdateTaskRequest struct {
	Title *string `json:"title"`
	Done  *bool   `json:"done"`
}

// Validate rejects a patch that supplies no fields at all.
func (r *UpdateTaskRequest) Validate() error {
	if r.Title == nil && r.Done == nil {
		return domain.ErrEmptyPatch
	}
	return nil
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      log.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /api/tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	task, err := h.taskService.Create(r.Context(), req.Title)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task created", slog.String("task_id", task.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// ListTasks handles GET /api/tasks requests.
// Query parameters: done (true/false), limit (1-200, default 50),
// offset (>= 0, default 0).
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusUnprocessableEntity, err.Error(), err)
		return
	}

	tasks, err := h.taskService.List(r.Context(), params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, taskToResponse(task))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetTask handles GET /api/tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDFromRequest(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PATCH /api/tasks/{id} requests.
// At least one of title or done must be supplied; an empty patch is a 400.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := taskIDFromRequest(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	patch := domain.TaskPatch{Title: req.Title, Done: req.Done}
	task, err := h.taskService.Update(r.Context(), id, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task updated", slog.String("task_id", task.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /api/tasks/{id} requests.
// A successful delete returns 204 with no body; deleting the same task again
// returns 404.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := taskIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task deleted", slog.String("task_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// taskIDFromRequest extracts and parses the {id} path parameter. A value that
// is not a UUID cannot name any task, so it is reported as 404 rather than a
// validation failure. Writes the error response itself and returns ok=false
// when parsing fails.
func taskIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return uuid.Nil, false
	}
	return id, true
}

// parseListParams parses the done/limit/offset query parameters.
// Values that fail to parse are treated the same as out-of-range values.
func parseListParams(r *http.Request) (store.ListTasksParams, error) {
	var params store.ListTasksParams
	query := r.URL.Query()

	if raw := query.Get("done"); raw != "" {
		done, err := strconv.ParseBool(raw)
		if err != nil {
			return params, store.ErrInvalidListParams
		}
		params.Done = &done
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		// An explicit limit of 0 is out of range, not a request for the
		// default, so it cannot be passed through as the unset zero value.
		if err != nil || limit == 0 {
			return params, store.ErrInvalidListParams
		}
		params.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return params, store.ErrInvalidListParams
		}
		params.Offset = offset
	}

	// Normalize applies defaults and range checks; handing the normalized
	// params to the store keeps both layers in agreement.
	return params.Normalize()
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID.String(),
		Title:     task.Title,
		Done:      task.Done,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}
