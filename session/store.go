package session

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/hotelsoft/concierge/client"
	"github.com/hotelsoft/concierge/storage"
)

// Store is the credential store: it owns the persisted session token and
// profile snapshot. All reads and writes of the underlying keyring go
// through it; other components observe state via the Manager's signals.
//
// Saves never fail the caller: persistence and decode errors are logged
// and degrade to an absent profile or token (fail-closed).
type Store struct {
	mu    sync.Mutex
	ring  storage.Keyring
	clock Clock
	log   *slog.Logger

	// token is mirrored in an enclave so the plaintext bearer credential
	// is not left sitting in process memory between uses.
	token *memguard.Enclave
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreClock sets the clock used for expiry checks.
func WithStoreClock(clock Clock) StoreOption {
	return func(s *Store) { s.clock = clock }
}

// WithStoreLogger sets the structured logger.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) { s.log = logger }
}

// NewStore creates a credential store over the given keyring.
func NewStore(ring storage.Keyring, opts ...StoreOption) *Store {
	s := &Store{ring: ring, clock: RealClock{}}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return s
}

// SaveSession persists the token and profile. When profile is nil, one is
// derived from the token's claims; if the claims cannot be decoded the
// profile is simply absent. SaveSession never returns an error.
func (s *Store) SaveSession(token string, profile *client.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ring.Set(storage.KeyAuthToken, token); err != nil {
		s.log.Error("persisting session token", slog.String("error", err.Error()))
	}
	s.token = memguard.NewEnclave([]byte(token))

	if profile == nil {
		claims, err := decodeClaims(token)
		if err != nil {
			s.log.Warn("deriving profile from token", slog.String("error", err.Error()))
			if err := s.ring.Delete(storage.KeyUserData); err != nil {
				s.log.Error("clearing stale profile", slog.String("error", err.Error()))
			}
			return
		}
		profile = claims.Profile()
	}
	data, err := json.Marshal(profile)
	if err != nil {
		s.log.Error("encoding profile", slog.String("error", err.Error()))
		return
	}
	if err := s.ring.Set(storage.KeyUserData, string(data)); err != nil {
		s.log.Error("persisting profile", slog.String("error", err.Error()))
	}
}

// Token returns the current session token, if any. The keyring is the
// source of truth for presence, so out-of-band changes are honored; while
// the keyring value is intact the plaintext is served from the enclave,
// which is re-mirrored whenever the two disagree.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenLocked()
}

func (s *Store) tokenLocked() (string, bool) {
	v, err := s.ring.Get(storage.KeyAuthToken)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("reading session token", slog.String("error", err.Error()))
		}
		s.token = nil
		return "", false
	}
	if s.token != nil {
		if buf, err := s.token.Open(); err == nil {
			mirrored := string(buf.Bytes())
			buf.Destroy()
			if mirrored == v {
				return mirrored, true
			}
		}
	}
	// Missing or stale mirror: the keyring changed out-of-band.
	s.token = memguard.NewEnclave([]byte(v))
	return v, true
}

// StoredProfile returns the persisted profile snapshot, if any.
func (s *Store) StoredProfile() (*client.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.ring.Get(storage.KeyUserData)
	if err != nil {
		return nil, false
	}
	var profile client.User
	if err := json.Unmarshal([]byte(v), &profile); err != nil {
		s.log.Warn("decoding stored profile", slog.String("error", err.Error()))
		return nil, false
	}
	return &profile, true
}

// Clear removes the token and profile together.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ring.Delete(storage.KeyAuthToken); err != nil {
		s.log.Error("clearing session token", slog.String("error", err.Error()))
	}
	if err := s.ring.Delete(storage.KeyUserData); err != nil {
		s.log.Error("clearing profile", slog.String("error", err.Error()))
	}
	s.token = nil
}

// HasValidToken reports whether a token is present and its expiry claim
// is strictly in the future. Missing tokens, undecodable tokens, and
// tokens without an expiry all report false.
func (s *Store) HasValidToken() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.tokenLocked()
	if !ok {
		return false
	}
	claims, err := decodeClaims(token)
	if err != nil {
		s.log.Debug("token decode failed", slog.String("error", err.Error()))
		return false
	}
	exp, ok := claims.ExpiresAt()
	if !ok {
		return false
	}
	return s.clock.Now().Before(exp)
}
