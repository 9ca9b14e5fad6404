// Package prefs persists the dashboard preferences that survive a reload:
// the theme and the active tab. Nothing else from the store is written.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"smartstock/models"
)

// DefaultKey is the storage name the dashboard preferences live under.
const DefaultKey = "smartstock-dashboard"

// ErrNotFound is returned by Load when nothing is stored under the key.
var ErrNotFound = errors.New("prefs: not found")

// Repository loads and saves preferences by key.
type Repository interface {
	Load(ctx context.Context, key string) (models.Preferences, error)
	Save(ctx context.Context, key string, p models.Preferences) error
}

// Encode serialises p for storage.
func Encode(p models.Preferences) ([]byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}
	return b, nil
}

// Decode parses stored preferences. Unknown fields are ignored.
func Decode(b []byte) (models.Preferences, error) {
	var p models.Preferences
	if err := json.Unmarshal(b, &p); err != nil {
		return models.Preferences{}, fmt.Errorf("decode preferences: %w", err)
	}
	return p, nil
}
