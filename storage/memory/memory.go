// Package memory provides an in-memory Keyring, primarily for tests and
// ephemeral sessions.
package memory

import (
	"sync"

	"github.com/hotelsoft/concierge/storage"
)

// Keyring is a thread-safe in-memory keyring. Contents are lost when the
// process exits.
type Keyring struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ storage.Keyring = (*Keyring)(nil)

// New creates an empty in-memory keyring.
func New() *Keyring {
	return &Keyring{data: make(map[string]string)}
}

func (k *Keyring) Get(key string) (string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	v, ok := k.data[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

func (k *Keyring) Set(key, value string) error {
	k.mu.Lock()
	k.data[key] = value
	k.mu.Unlock()
	return nil
}

func (k *Keyring) Delete(key string) error {
	k.mu.Lock()
	delete(k.data, key)
	k.mu.Unlock()
	return nil
}

func (k *Keyring) Close() error { return nil }
