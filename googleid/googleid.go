// Package googleid bridges an external Google identity SDK to the
// session layer. The SDK itself is an opaque external collaborator; when
// it is absent the feature degrades to unavailable without affecting
// password login.
package googleid

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/hotelsoft/concierge/session"
)

// ErrUnavailable is returned when no identity SDK is present or it has
// not been initialized.
var ErrUnavailable = errors.New("google identity provider unavailable")

// SDK is the contract over the external identity provider. Credentials
// (ID tokens) arrive asynchronously through the callback passed to
// Initialize.
type SDK interface {
	Initialize(clientID string, onCredential func(idToken string)) error
	RenderButton(containerID string) error
	Prompt() error
}

// Bridge wires SDK credentials to the backend token exchange. Received
// ID tokens are published on Credentials and exchanged via the session
// manager; a successful exchange behaves exactly like a primary login.
type Bridge struct {
	sdk SDK
	mgr *session.Manager
	log *slog.Logger

	credentials *session.Signal[string]

	mu          sync.Mutex
	initialized bool
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) { b.log = logger }
}

// NewBridge creates a bridge over the given SDK. A nil SDK is allowed
// and yields a bridge whose operations return ErrUnavailable.
func NewBridge(sdk SDK, mgr *session.Manager, opts ...Option) *Bridge {
	b := &Bridge{
		sdk:         sdk,
		mgr:         mgr,
		credentials: session.NewSignal(""),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return b
}

// Available reports whether an SDK is present and initialized.
func (b *Bridge) Available() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sdk != nil && b.initialized
}

// Initialize configures the SDK with the client ID. Calling it again
// after a successful initialization is a no-op.
func (b *Bridge) Initialize(clientID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sdk == nil {
		return ErrUnavailable
	}
	if b.initialized {
		return nil
	}
	if err := b.sdk.Initialize(clientID, b.handleCredential); err != nil {
		b.log.Warn("google sign-in unavailable", slog.String("error", err.Error()))
		return ErrUnavailable
	}
	b.initialized = true
	return nil
}

// RenderButton asks the SDK to render its sign-in button.
func (b *Bridge) RenderButton(containerID string) error {
	if !b.Available() {
		return ErrUnavailable
	}
	return b.sdk.RenderButton(containerID)
}

// Prompt asks the SDK to start an interactive sign-in.
func (b *Bridge) Prompt() error {
	if !b.Available() {
		return ErrUnavailable
	}
	return b.sdk.Prompt()
}

// Credentials exposes the stream of received ID tokens.
func (b *Bridge) Credentials() *session.Signal[string] {
	return b.credentials
}

// handleCredential publishes the received ID token and exchanges it for a
// backend session. Exchange failures are logged; the session stays
// unauthenticated.
func (b *Bridge) handleCredential(idToken string) {
	if idToken == "" {
		b.log.Warn("google sign-in returned no credential")
		return
	}
	b.credentials.Set(idToken)
	if _, err := b.mgr.LoginWithGoogle(context.Background(), idToken); err != nil {
		b.log.Error("google token exchange failed", slog.String("error", err.Error()))
	}
}
