package input

import "testing"

// TestTargetDispatchOrder verifies listeners run in registration order.
func TestTargetDispatchOrder(t *testing.T) {
	target := NewTarget()
	var calls []string

	target.AddEventListener(PointerEnter, func(Event) { calls = append(calls, "a") }, ListenerOptions{})
	target.AddEventListener(PointerEnter, func(Event) { calls = append(calls, "b") }, ListenerOptions{})
	target.AddEventListener(PointerLeave, func(Event) { calls = append(calls, "leave") }, ListenerOptions{})

	target.Dispatch(Event{Type: PointerEnter})

	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("Expected [a b], got %v", calls)
	}
}

// TestTargetOnceListener verifies a once listener fires a single time and is unregistered.
func TestTargetOnceListener(t *testing.T) {
	target := NewTarget()
	count := 0
	target.AddEventListener(PointerMove, func(Event) { count++ }, ListenerOptions{Once: true})

	target.Dispatch(Event{Type: PointerMove})
	target.Dispatch(Event{Type: PointerMove})

	if count != 1 {
		t.Errorf("Expected once listener to fire 1 time, got %d", count)
	}
	if n := target.ListenerCount(PointerMove); n != 0 {
		t.Errorf("Expected once listener to be removed, %d remain", n)
	}
}

// TestTargetRemove verifies the remove func unregisters and is idempotent.
func TestTargetRemove(t *testing.T) {
	target := NewTarget()
	count := 0
	remove := target.AddEventListener(PointerEnter, func(Event) { count++ }, ListenerOptions{})
	keep := target.AddEventListener(PointerEnter, func(Event) {}, ListenerOptions{})
	defer keep()

	remove()
	remove()
	target.Dispatch(Event{Type: PointerEnter})

	if count != 0 {
		t.Errorf("Removed listener was called %d times", count)
	}
	if n := target.ListenerCount(PointerEnter); n != 1 {
		t.Errorf("Expected 1 listener left, got %d", n)
	}
}

// TestTargetRemoveDuringDispatch verifies a listener removed by an earlier one is skipped.
func TestTargetRemoveDuringDispatch(t *testing.T) {
	target := NewTarget()
	secondCalled := false
	var removeSecond func()

	target.AddEventListener(PointerLeave, func(Event) { removeSecond() }, ListenerOptions{})
	removeSecond = target.AddEventListener(PointerLeave, func(Event) { secondCalled = true }, ListenerOptions{})

	target.Dispatch(Event{Type: PointerLeave})

	if secondCalled {
		t.Error("Listener removed during dispatch should not be called")
	}
}

// TestTargetAddDuringDispatch verifies a listener added during dispatch waits for the next event.
func TestTargetAddDuringDispatch(t *testing.T) {
	target := NewTarget()
	lateCalls := 0
	added := false

	target.AddEventListener(PointerEnter, func(Event) {
		if !added {
			added = true
			target.AddEventListener(PointerEnter, func(Event) { lateCalls++ }, ListenerOptions{})
		}
	}, ListenerOptions{})

	target.Dispatch(Event{Type: PointerEnter})
	if lateCalls != 0 {
		t.Fatalf("Late listener should not see the current event, got %d calls", lateCalls)
	}

	target.Dispatch(Event{Type: PointerEnter})
	if lateCalls != 1 {
		t.Errorf("Late listener should see the next event, got %d calls", lateCalls)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{PointerEnter, "pointerenter"},
		{PointerLeave, "pointerleave"},
		{PointerMove, "pointermove"},
		{EventType(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
