package repository

import "context"

// SettingsRepository persists boolean feature toggles.
type SettingsRepository interface {
	// Get returns the toggle value. Unset keys read as false.
	Get(ctx context.Context, key string) (bool, error)

	// Set stores the toggle value, creating the row when missing.
	Set(ctx context.Context, key string, enabled bool) error

	// All returns every stored toggle.
	All(ctx context.Context) (map[string]bool, error)
}
