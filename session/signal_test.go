package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalCurrentValueOnSubscribe(t *testing.T) {
	s := NewSignal(42)
	var got []int
	s.Subscribe(func(v int) { got = append(got, v) })
	assert.Equal(t, []int{42}, got)
	assert.Equal(t, 42, s.Get())
}

func TestSignalDeliveryOrderEqualsMutationOrder(t *testing.T) {
	s := NewSignal(0)
	var got []int
	s.Subscribe(func(v int) { got = append(got, v) })

	s.Set(1)
	s.Set(2)
	s.Set(3)
	assert.Equal(t, []int{0, 1, 2, 3}, got)
	assert.Equal(t, 3, s.Get())
}

func TestSignalSubscriberOrder(t *testing.T) {
	s := NewSignal("init")
	var order []string
	s.Subscribe(func(v string) { order = append(order, "first:"+v) })
	s.Subscribe(func(v string) { order = append(order, "second:"+v) })

	s.Set("x")
	assert.Equal(t, []string{"first:init", "second:init", "first:x", "second:x"}, order)
}

func TestSignalCancelStopsDelivery(t *testing.T) {
	s := NewSignal(0)
	var got []int
	cancel := s.Subscribe(func(v int) { got = append(got, v) })

	s.Set(1)
	cancel()
	s.Set(2)
	assert.Equal(t, []int{0, 1}, got)
}

func TestSignalCancelWithinEmissionRound(t *testing.T) {
	// A callback cancelling a later subscriber suppresses that
	// subscriber's delivery for the same round.
	s := NewSignal(0)
	var secondGot []int
	var cancelSecond func()
	s.Subscribe(func(v int) {
		if v == 2 {
			cancelSecond()
		}
	})
	cancelSecond = s.Subscribe(func(v int) { secondGot = append(secondGot, v) })

	s.Set(1)
	s.Set(2)
	s.Set(3)
	assert.Equal(t, []int{0, 1}, secondGot)
}

func TestSignalConcurrentCancelAndSet(t *testing.T) {
	// Cancellation racing an emission from another goroutine, as happens
	// when the inactivity monitor's loop drives the expiry callback.
	s := NewSignal(0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 1; i <= 1000; i++ {
			s.Set(i)
		}
	}()

	for i := 0; i < 1000; i++ {
		cancel := s.Subscribe(func(int) {})
		cancel()
	}
	<-done
	assert.Equal(t, 1000, s.Get())
}

func TestSignalSetCompletesBeforeReturn(t *testing.T) {
	// The ordering contract: after Set returns, every subscriber has
	// observed the new value.
	s := NewSignal(false)
	observed := false
	s.Subscribe(func(v bool) { observed = v })

	s.Set(true)
	assert.True(t, observed)
}
