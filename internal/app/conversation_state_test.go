package app_test

import (
	"sync"
	"testing"

	"phone_lookup_bot/internal/app"
)

func TestConversationState(t *testing.T) {
	t.Run("initial state is idle", func(t *testing.T) {
		state := app.NewConversationState()
		if state.IsAwaiting(1) {
			t.Error("expected a fresh state to be idle")
		}
	})

	t.Run("set and clear", func(t *testing.T) {
		state := app.NewConversationState()
		state.SetAwaiting(1)
		if !state.IsAwaiting(1) {
			t.Error("expected admin 1 to be awaiting")
		}
		state.Clear(1)
		if state.IsAwaiting(1) {
			t.Error("expected admin 1 to be idle after clear")
		}
	})

	t.Run("entries for different admins are independent", func(t *testing.T) {
		state := app.NewConversationState()
		state.SetAwaiting(1)
		state.SetAwaiting(2)
		state.Clear(1)
		if state.IsAwaiting(1) {
			t.Error("admin 1 should be idle")
		}
		if !state.IsAwaiting(2) {
			t.Error("admin 2 should still be awaiting")
		}
	})

	t.Run("safe under concurrent access", func(t *testing.T) {
		state := app.NewConversationState()
		var wg sync.WaitGroup
		for i := int64(0); i < 50; i++ {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				state.SetAwaiting(id)
				state.IsAwaiting(id)
				state.Clear(id)
			}(i)
		}
		wg.Wait()
		for i := int64(0); i < 50; i++ {
			if state.IsAwaiting(i) {
				t.Errorf("admin %d should be idle after clear", i)
			}
		}
	})
}
