package server

import (
	"fmt"
	"sync"
	"testing"
)

func TestTokenSlot(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if _, ok := NewTokenSlot().Load(); ok {
			t.Error("expected new slot to hold no token")
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		slot := NewTokenSlot()
		slot.Store("first")
		slot.Store("second")

		token, ok := slot.Load()
		if !ok || token != "second" {
			t.Errorf("expected second token, got %q (%v)", token, ok)
		}
	})

	t.Run("Empty String Is Absent", func(t *testing.T) {
		slot := NewTokenSlot()
		slot.Store("")

		if _, ok := slot.Load(); ok {
			t.Error("expected empty token to count as absent")
		}
	})

	t.Run("Concurrent Access", func(t *testing.T) {
		slot := NewTokenSlot()
		written := make(map[string]bool)
		for i := range 50 {
			written[fmt.Sprintf("token-%d", i)] = true
		}

		var wg sync.WaitGroup
		for token := range written {
			wg.Add(2)
			go func() {
				defer wg.Done()
				slot.Store(token)
			}()
			go func() {
				defer wg.Done()
				if got, ok := slot.Load(); ok && !written[got] {
					t.Errorf("read a token that was never written: %q", got)
				}
			}()
		}
		wg.Wait()

		if got, ok := slot.Load(); !ok || !written[got] {
			t.Errorf("expected one of the written tokens, got %q", got)
		}
	})
}
