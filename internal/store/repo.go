package store

import (
	"context"
	"time"
)

// Preference is a single stored key-value entry.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// PrefsRepo provides key-value access to local preferences.
type PrefsRepo interface {
	// Get returns the entry for key, or nil if none exists.
	Get(ctx context.Context, key string) (*Preference, error)

	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
