package memory

import (
	"errors"
	"testing"

	"github.com/hotelsoft/concierge/storage"
)

func TestKeyring(t *testing.T) {
	ring := New()

	t.Run("SetAndGet", func(t *testing.T) {
		if err := ring.Set(storage.KeyAuthToken, "tok-1"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := ring.Get(storage.KeyAuthToken)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != "tok-1" {
			t.Fatalf("got %q, want %q", got, "tok-1")
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := ring.Get("no-such-key")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		ring.Set("k", "v1")
		ring.Set("k", "v2")
		got, err := ring.Get("k")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != "v2" {
			t.Fatalf("got %q, want %q", got, "v2")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		ring.Set("gone", "v")
		if err := ring.Delete("gone"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := ring.Get("gone"); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound after delete", err)
		}
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		if err := ring.Delete("never-existed"); err != nil {
			t.Fatalf("Delete of missing key: %v", err)
		}
	})

	t.Run("Close", func(t *testing.T) {
		if err := ring.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	})
}
