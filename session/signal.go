package session

import "sync"

// Signal is a current-value publish-subscribe primitive. Subscribers
// receive the current value immediately on subscription and every
// subsequent update, in subscription order. Emissions are serialized, so
// delivery order equals mutation order.
type Signal[T any] struct {
	mu    sync.Mutex // guards value and subs
	emit  sync.Mutex // serializes notification rounds
	value T
	subs  []*subscription[T]
}

type subscription[T any] struct {
	fn     func(T)
	closed bool
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// Get returns the current value synchronously.
func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores v and notifies all subscribers before returning.
func (s *Signal[T]) Set(v T) {
	s.emit.Lock()
	defer s.emit.Unlock()

	s.mu.Lock()
	s.value = v
	subs := make([]*subscription[T], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		// Re-check under the lock: the subscription may have been
		// cancelled since the copy, including by an earlier callback in
		// this same round.
		s.mu.Lock()
		skip := sub.closed
		s.mu.Unlock()
		if !skip {
			sub.fn(v)
		}
	}
}

// Subscribe registers fn and invokes it immediately with the current
// value. The returned cancel function removes the subscription.
func (s *Signal[T]) Subscribe(fn func(T)) (cancel func()) {
	sub := &subscription[T]{fn: fn}

	s.emit.Lock()
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	current := s.value
	s.mu.Unlock()
	fn(current)
	s.emit.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		sub.closed = true
		for i, candidate := range s.subs {
			if candidate == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
	}
}
