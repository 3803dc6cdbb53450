// Package storage provides the keyring abstraction the session layer
// persists credentials through.
package storage

import "errors"

// ErrNotFound is returned when a key is absent from the keyring.
var ErrNotFound = errors.New("key not found")

// Well-known keyring keys used by the session layer. Both are cleared
// together on logout or expiry.
const (
	KeyAuthToken = "auth_token"
	KeyUserData  = "user_data"
)

// Keyring defines durable string key-value storage for session state.
// It is the process-local analogue of the browser's local storage: a
// small number of keys, single writer, read-through on demand.
type Keyring interface {
	// Get returns the value for key. Returns ErrNotFound if absent.
	Get(key string) (string, error)
	// Set creates or replaces the value for key.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Close releases any underlying resources.
	Close() error
}
