// Package migrations embeds the goose SQL migrations so the server binary
// can apply them without a separate migrations directory on disk.
package migrations

import "embed"

// FS holds the embedded migration files.
//
//go:embed *.sql
var FS embed.FS
