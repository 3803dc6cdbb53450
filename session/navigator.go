package session

import (
	"net/url"
	"sync"
)

// Routes and query parameters of the navigation contract.
const (
	LoginRoute = "/login"
	HomeRoute  = "/home"

	QuerySessionExpired = "sessionExpired"
	QueryReason         = "reason"
	ReasonInactivity    = "inactividad"
)

// Navigator is the port through which the session layer requests route
// transitions. Navigate pushes a destination; Replace rewrites the
// current destination without adding history (used to strip consumed
// query parameters).
type Navigator interface {
	Navigate(route string, query url.Values)
	Replace(route string, query url.Values)
}

// Navigation is one recorded route transition.
type Navigation struct {
	Route string
	Query url.Values
}

// ExpiryNotice reports whether query carries a session-expired notice and
// the machine-readable reason.
func ExpiryNotice(query url.Values) (reason string, ok bool) {
	if query.Get(QuerySessionExpired) != "true" {
		return "", false
	}
	return query.Get(QueryReason), true
}

// NavRecorder is a Navigator that records transitions. The CLI uses it as
// its navigation surface and tests assert against it. Consume returns the
// most recent navigation exactly once, mirroring the read-then-strip
// handling of the expiry notice.
type NavRecorder struct {
	mu      sync.Mutex
	history []Navigation
	current *Navigation
}

var _ Navigator = (*NavRecorder)(nil)

func NewNavRecorder() *NavRecorder {
	return &NavRecorder{}
}

func (r *NavRecorder) Navigate(route string, query url.Values) {
	r.mu.Lock()
	defer r.mu.Unlock()
	nav := Navigation{Route: route, Query: cloneQuery(query)}
	r.history = append(r.history, nav)
	r.current = &nav
}

func (r *NavRecorder) Replace(route string, query url.Values) {
	r.mu.Lock()
	defer r.mu.Unlock()
	nav := Navigation{Route: route, Query: cloneQuery(query)}
	if n := len(r.history); n > 0 {
		r.history[n-1] = nav
	} else {
		r.history = append(r.history, nav)
	}
	r.current = &nav
}

// Consume returns the current navigation and clears it, stripping its
// query parameters from the visible destination without a new history
// entry.
func (r *NavRecorder) Consume() (Navigation, bool) {
	r.mu.Lock()
	current := r.current
	r.current = nil
	r.mu.Unlock()

	if current == nil {
		return Navigation{}, false
	}
	if len(current.Query) > 0 {
		r.Replace(current.Route, nil)
	}
	return *current, true
}

// History returns all recorded transitions.
func (r *NavRecorder) History() []Navigation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Navigation, len(r.history))
	copy(out, r.history)
	return out
}

func cloneQuery(q url.Values) url.Values {
	if q == nil {
		return nil
	}
	out := make(url.Values, len(q))
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	return out
}
