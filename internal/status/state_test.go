package status

import (
	"errors"
	"testing"
	"time"

	"github.com/matheus3301/huddle/internal/bus"
)

func TestInitialState(t *testing.T) {
	m := NewMachine(nil)
	if m.Current() != SignedOut {
		t.Errorf("initial state = %s, want SIGNED_OUT", m.Current())
	}
}

func TestValidTransitions(t *testing.T) {
	tests := []struct {
		from State
		to   State
	}{
		{SignedOut, SigningIn},
		{SigningIn, SignedIn},
		{SigningIn, SignedOut},
		{SignedIn, SignedOut},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			m := NewMachine(nil)
			walkTo(t, m, tt.from)
			if err := m.Transition(tt.to); err != nil {
				t.Errorf("Transition(%s -> %s) error = %v", tt.from, tt.to, err)
			}
			if m.Current() != tt.to {
				t.Errorf("state = %s, want %s", m.Current(), tt.to)
			}
		})
	}
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		from State
		to   State
	}{
		{SignedOut, SignedIn},
		{SignedOut, SignedOut},
		{SignedIn, SigningIn},
		{SigningIn, SigningIn},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			m := NewMachine(nil)
			walkTo(t, m, tt.from)

			err := m.Transition(tt.to)
			var te *TransitionError
			if !errors.As(err, &te) {
				t.Fatalf("Transition(%s -> %s) error = %v, want *TransitionError", tt.from, tt.to, err)
			}
			if te.From != tt.from || te.To != tt.to {
				t.Errorf("error = %+v", te)
			}
			if m.Current() != tt.from {
				t.Errorf("state = %s, want %s (unchanged)", m.Current(), tt.from)
			}
		})
	}
}

func TestTransitionEmitsEvent(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe(bus.NamespaceSession, 10)
	defer unsub()

	m := NewMachine(b)
	stamp := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return stamp }
	if err := m.Transition(SigningIn); err != nil {
		t.Fatal(err)
	}

	select {
	case evt := <-ch:
		if evt.Kind != bus.KindStatusChanged {
			t.Errorf("event kind = %q, want %s", evt.Kind, bus.KindStatusChanged)
		}
		change, ok := evt.Payload.(StatusChange)
		if !ok {
			t.Fatalf("payload type = %T, want StatusChange", evt.Payload)
		}
		if change.From != SignedOut || change.To != SigningIn {
			t.Errorf("change = %v -> %v, want SIGNED_OUT -> SIGNING_IN", change.From, change.To)
		}
		if !evt.Timestamp.Equal(stamp) {
			t.Errorf("timestamp = %s, want %s", evt.Timestamp, stamp)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
	if !m.Since().Equal(stamp) {
		t.Errorf("since = %s, want %s", m.Since(), stamp)
	}
}

// TestCancelledSignIn walks SIGNED_OUT → SIGNING_IN → SIGNED_OUT → SIGNING_IN → SIGNED_IN.
func TestCancelledSignIn(t *testing.T) {
	m := NewMachine(nil)
	for _, s := range []State{SigningIn, SignedOut, SigningIn, SignedIn} {
		if err := m.Transition(s); err != nil {
			t.Fatalf("Transition to %s: %v (current: %s)", s, err, m.Current())
		}
	}
}

func walkTo(t *testing.T, m *Machine, target State) {
	t.Helper()
	paths := map[State][]State{
		SignedOut: {},
		SigningIn: {SigningIn},
		SignedIn:  {SigningIn, SignedIn},
	}
	for _, s := range paths[target] {
		if err := m.Transition(s); err != nil {
			t.Fatalf("walkTo(%s): %v", target, err)
		}
	}
}
