// Package session implements the client-side session lifecycle: the
// credential store, the published authentication state, the inactivity
// watchdog, and the login / two-factor / federated flows that drive them.
//
// Ordering guarantee: any operation that mutates the credential store
// publishes the updated signals before returning, and before any
// navigation it triggers. Observers never see stale state after an
// awaited operation completes.
package session

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"sync"

	"github.com/go-openapi/strfmt"

	"github.com/hotelsoft/concierge/client"
	"github.com/hotelsoft/concierge/twofactor"
)

// Manager owns the session state. It is constructed once at application
// start and passed to consumers; all dependencies are injected.
type Manager struct {
	store       *Store
	api         *client.Client
	clock       Clock
	nav         Navigator
	log         *slog.Logger
	monitor     *Monitor
	monitorOpts []MonitorOption

	authenticated *Signal[bool]
	currentUser   *Signal[*client.User]

	// pendingEmail is the transient two-factor challenge slot. It lives
	// in manager memory only, never in the keyring: it must not be
	// readable as an authenticated session.
	mu           sync.Mutex
	pendingEmail strfmt.Email
}

// LoginResult reports the outcome of a primary or federated login.
type LoginResult struct {
	// TwoFactorRequired is set when the backend accepted the primary
	// credentials but demands a one-time code before issuing a token.
	TwoFactorRequired bool
	User              *client.User
}

// NewManager creates a session manager over the given store and API
// client. If the store already holds a valid token the published state is
// authenticated and the inactivity monitor starts immediately.
func NewManager(store *Store, api *client.Client, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		api:   api,
		clock: RealClock{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if m.nav == nil {
		m.nav = NewNavRecorder()
	}

	monitorOpts := append([]MonitorOption{
		WithMonitorClock(m.clock),
		WithMonitorLogger(m.log),
	}, m.monitorOpts...)
	m.monitor = NewMonitor(m.expireForInactivity, monitorOpts...)

	authed := store.HasValidToken()
	m.authenticated = NewSignal(authed)
	var user *client.User
	if authed {
		user, _ = store.StoredProfile()
	}
	m.currentUser = NewSignal(user)
	if authed {
		m.monitor.Start()
	}
	return m
}

// IsAuthenticated returns the current value of the authentication signal.
func (m *Manager) IsAuthenticated() bool {
	return m.authenticated.Get()
}

// CurrentUser returns the current value of the profile signal.
func (m *Manager) CurrentUser() (*client.User, bool) {
	u := m.currentUser.Get()
	return u, u != nil
}

// Authenticated exposes the authentication signal for subscription.
func (m *Manager) Authenticated() *Signal[bool] {
	return m.authenticated
}

// UserChanges exposes the profile signal for subscription.
func (m *Manager) UserChanges() *Signal[*client.User] {
	return m.currentUser
}

// Monitor exposes the inactivity monitor, for activity recording and
// state inspection.
func (m *Manager) Monitor() *Monitor {
	return m.monitor
}

// RecordActivity resets the inactivity window. Call on every recognized
// user interaction.
func (m *Manager) RecordActivity() {
	m.monitor.RecordActivity()
}

// Login authenticates with email and password. Three outcomes: a token
// (session established), a two-factor challenge (email stashed, session
// still unauthenticated), or a malformed response carrying neither, which
// is a backend contract violation.
func (m *Manager) Login(ctx context.Context, email strfmt.Email, password string) (*LoginResult, error) {
	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if resp.NeedsSecondFactor() {
		m.mu.Lock()
		m.pendingEmail = email
		m.mu.Unlock()
		m.log.Info("two-factor challenge issued", slog.String("email", string(email)))
		return &LoginResult{TwoFactorRequired: true}, nil
	}
	if resp.Token == "" {
		return nil, ErrMalformedResponse
	}

	m.completeLogin(resp.Token, resp.User)
	m.log.Info("login succeeded", slog.String("email", string(email)))
	return &LoginResult{User: m.currentUser.Get()}, nil
}

// LoginWithGoogle exchanges a Google ID token for a backend session. A
// successful exchange is handled identically to a primary login success.
func (m *Manager) LoginWithGoogle(ctx context.Context, idToken string) (*LoginResult, error) {
	resp, err := m.api.GoogleLogin(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, ErrMalformedResponse
	}
	m.completeLogin(resp.Token, resp.User)
	m.log.Info("google login succeeded")
	return &LoginResult{User: m.currentUser.Get()}, nil
}

// VerifyTwoFactor submits the one-time code for the pending challenge.
// Success is treated exactly like a primary login success and clears the
// challenge slot. Failure keeps the slot so the caller can retry; the
// server is the authority on attempt limits.
func (m *Manager) VerifyTwoFactor(ctx context.Context, code string) error {
	if !twofactor.ValidCode(code) {
		return ErrInvalidCode
	}
	m.mu.Lock()
	email := m.pendingEmail
	m.mu.Unlock()
	if email == "" {
		return ErrNoPendingChallenge
	}

	resp, err := m.api.VerifyTwoFactor(ctx, email, twofactor.NormalizeCode(code))
	if err != nil {
		return err
	}
	if resp.Token == "" {
		return ErrMalformedResponse
	}

	m.mu.Lock()
	m.pendingEmail = ""
	m.mu.Unlock()
	m.completeLogin(resp.Token, nil)
	m.log.Info("two-factor verification succeeded", slog.String("email", string(email)))
	return nil
}

// PendingTwoFactorEmail returns the stashed challenge email, if a
// challenge is in progress.
func (m *Manager) PendingTwoFactorEmail() (strfmt.Email, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pendingEmail, m.pendingEmail != ""
}

// CancelTwoFactor abandons the pending challenge without contacting the
// server and returns to the login entry point.
func (m *Manager) CancelTwoFactor() {
	m.mu.Lock()
	m.pendingEmail = ""
	m.mu.Unlock()
	m.nav.Navigate(LoginRoute, nil)
}

// completeLogin applies a successful authentication: store mutation,
// then signal emission, then navigation, strictly in that order.
func (m *Manager) completeLogin(token string, profile *client.User) {
	m.store.SaveSession(token, profile)
	user, _ := m.store.StoredProfile()
	m.authenticated.Set(true)
	m.currentUser.Set(user)
	m.monitor.Start()
	m.nav.Navigate(HomeRoute, nil)
}

// Logout clears the session and publishes the de-authenticated state.
func (m *Manager) Logout() {
	m.monitor.Stop()
	m.store.Clear()
	m.authenticated.Set(false)
	m.currentUser.Set(nil)
	m.log.Info("logged out")
}

// Refresh recomputes the published signals from the credential store,
// for when storage may have changed out-of-band, and starts or stops the
// inactivity monitor to match.
func (m *Manager) Refresh() {
	if m.store.HasValidToken() {
		user, _ := m.store.StoredProfile()
		m.authenticated.Set(true)
		m.currentUser.Set(user)
		m.monitor.Start()
		return
	}
	m.authenticated.Set(false)
	m.currentUser.Set(nil)
	m.monitor.Stop()
}

// expireForInactivity is the monitor's expiry callback: clear the store,
// publish the de-authenticated state, then navigate to the login entry
// with a machine-readable reason.
func (m *Manager) expireForInactivity() {
	m.store.Clear()
	m.authenticated.Set(false)
	m.currentUser.Set(nil)
	m.nav.Navigate(LoginRoute, url.Values{
		QuerySessionExpired: []string{"true"},
		QueryReason:         []string{ReasonInactivity},
	})
}

// Register creates an account. No session state changes.
func (m *Manager) Register(ctx context.Context, req client.RegisterRequest) (*client.MessageResponse, error) {
	return m.api.Register(ctx, req)
}

// ForgotPassword requests a password-reset email. No session state
// changes.
func (m *Manager) ForgotPassword(ctx context.Context, email strfmt.Email) (*client.MessageResponse, error) {
	return m.api.ForgotPassword(ctx, email)
}

// ValidateResetToken checks a password-reset token.
func (m *Manager) ValidateResetToken(ctx context.Context, token string) (bool, error) {
	return m.api.ValidateResetToken(ctx, token)
}

// ResetPassword sets a new password using a reset token.
func (m *Manager) ResetPassword(ctx context.Context, token, newPassword string) (*client.MessageResponse, error) {
	return m.api.ResetPassword(ctx, token, newPassword)
}
