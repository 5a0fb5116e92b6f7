// Package prefs persists small user preferences as a key-value map with
// pluggable backends, so commands read and write settings through one
// interface and tests can swap in an in-memory fake.
package prefs

import "errors"

// ErrNotFound is returned by Get when a preference has no stored value.
var ErrNotFound = errors.New("preference not set")

const (
	// KeyTheme holds the appearance preference, "light" or "dark".
	// Absence means follow the system.
	KeyTheme = "theme"
)

// Store is a key-value backend for user preferences.
type Store interface {
	// Get retrieves the value stored for key, or ErrNotFound.
	Get(key string) (string, error)
	// Set stores value under key.
	Set(key, value string) error
	// Delete removes key. Removing an absent key is not an error.
	Delete(key string) error
}
