package googleid

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelsoft/concierge/client"
	"github.com/hotelsoft/concierge/session"
	"github.com/hotelsoft/concierge/storage/memory"
)

// fakeSDK stands in for the external identity provider. Tests call
// deliver to simulate an asynchronous credential callback.
type fakeSDK struct {
	clientID     string
	onCredential func(string)
	initErr      error
	buttonCalls  int
	promptCalls  int
}

func (f *fakeSDK) Initialize(clientID string, onCredential func(string)) error {
	if f.initErr != nil {
		return f.initErr
	}
	f.clientID = clientID
	f.onCredential = onCredential
	return nil
}

func (f *fakeSDK) RenderButton(string) error { f.buttonCalls++; return nil }
func (f *fakeSDK) Prompt() error             { f.promptCalls++; return nil }

func (f *fakeSDK) deliver(idToken string) { f.onCredential(idToken) }

func sessionToken(t *testing.T) string {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"email": "g@x.com",
		"name":  "Google User",
		"exp":   float64(time.Now().Add(time.Hour).Unix()),
	})
	require.NoError(t, err)
	enc := base64.RawURLEncoding.EncodeToString
	return enc([]byte(`{"alg":"HS256"}`)) + "." + enc(payload) + ".sig"
}

func newTestManager(t *testing.T, backendToken string, exchangeStatus int) *session.Manager {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/api/auth/google-login", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if exchangeStatus != http.StatusOK {
			w.WriteHeader(exchangeStatus)
			json.NewEncoder(w).Encode(map[string]string{"mensaje": "token de google inválido"})
			return
		}
		json.NewEncoder(w).Encode(client.LoginResponse{Token: backendToken})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	store := session.NewStore(memory.New())
	return session.NewManager(store, client.New(srv.URL, store),
		session.WithMonitorOptions(session.WithPollInterval(time.Hour)),
	)
}

func TestCredentialFlow(t *testing.T) {
	mgr := newTestManager(t, sessionToken(t), http.StatusOK)
	defer mgr.Monitor().Stop()
	sdk := &fakeSDK{}
	bridge := NewBridge(sdk, mgr)

	require.NoError(t, bridge.Initialize("client-123"))
	assert.Equal(t, "client-123", sdk.clientID)
	assert.True(t, bridge.Available())

	var published []string
	bridge.Credentials().Subscribe(func(v string) {
		if v != "" {
			published = append(published, v)
		}
	})

	sdk.deliver("google-id-token")

	assert.Equal(t, []string{"google-id-token"}, published)
	assert.True(t, mgr.IsAuthenticated(), "exchange behaves like a primary login")
	assert.True(t, mgr.Monitor().Active())
	user, ok := mgr.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Google User", user.Nombre)
}

func TestExchangeFailureStaysUnauthenticated(t *testing.T) {
	mgr := newTestManager(t, "", http.StatusUnauthorized)
	sdk := &fakeSDK{}
	bridge := NewBridge(sdk, mgr)
	require.NoError(t, bridge.Initialize("client-123"))

	sdk.deliver("rejected-token")

	assert.False(t, mgr.IsAuthenticated())
	assert.Equal(t, "rejected-token", bridge.Credentials().Get(),
		"the credential is still published even when the exchange fails")
}

func TestEmptyCredentialIgnored(t *testing.T) {
	mgr := newTestManager(t, sessionToken(t), http.StatusOK)
	sdk := &fakeSDK{}
	bridge := NewBridge(sdk, mgr)
	require.NoError(t, bridge.Initialize("client-123"))

	sdk.deliver("")

	assert.Empty(t, bridge.Credentials().Get())
	assert.False(t, mgr.IsAuthenticated())
}

func TestNilSDK(t *testing.T) {
	mgr := newTestManager(t, sessionToken(t), http.StatusOK)
	bridge := NewBridge(nil, mgr)

	assert.False(t, bridge.Available())
	assert.ErrorIs(t, bridge.Initialize("client-123"), ErrUnavailable)
	assert.ErrorIs(t, bridge.RenderButton("signin"), ErrUnavailable)
	assert.ErrorIs(t, bridge.Prompt(), ErrUnavailable)

	// Password login is unaffected by the missing provider.
	assert.False(t, mgr.IsAuthenticated())
}

func TestInitializeFailure(t *testing.T) {
	mgr := newTestManager(t, sessionToken(t), http.StatusOK)
	sdk := &fakeSDK{initErr: assert.AnError}
	bridge := NewBridge(sdk, mgr)

	assert.ErrorIs(t, bridge.Initialize("client-123"), ErrUnavailable)
	assert.False(t, bridge.Available())
	assert.ErrorIs(t, bridge.Prompt(), ErrUnavailable)
}

func TestInitializeIdempotent(t *testing.T) {
	mgr := newTestManager(t, sessionToken(t), http.StatusOK)
	sdk := &fakeSDK{}
	bridge := NewBridge(sdk, mgr)

	require.NoError(t, bridge.Initialize("client-123"))
	first := sdk.onCredential
	require.NoError(t, bridge.Initialize("other-client"))
	assert.Equal(t, "client-123", sdk.clientID, "second initialize is a no-op")

	// Callback registered once only.
	assert.NotNil(t, first)
	require.NoError(t, bridge.RenderButton("signin"))
	assert.Equal(t, 1, sdk.buttonCalls)
}
