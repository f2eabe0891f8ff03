package repository

import "context"

// ExportRepository reads whole tables for backup and export endpoints.
type ExportRepository interface {
	// Snapshot returns every table as a slice of row maps keyed by table
	// name.
	Snapshot(ctx context.Context) (map[string][]map[string]interface{}, error)
}
