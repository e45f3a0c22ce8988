package status

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/matheus3301/huddle/internal/bus"
)

// State is the sign-in state of a profile.
type State string

const (
	SignedOut State = "SIGNED_OUT"
	SigningIn State = "SIGNING_IN"
	SignedIn  State = "SIGNED_IN"
)

// validTransitions defines allowed state transitions.
var validTransitions = map[State][]State{
	SignedOut: {SigningIn},
	SigningIn: {SignedIn, SignedOut},
	SignedIn:  {SignedOut},
}

// TransitionError reports a transition the machine refused.
type TransitionError struct {
	From State
	To   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// Machine tracks and enforces sign-in state transitions.
type Machine struct {
	mu      sync.RWMutex
	current State
	since   time.Time
	bus     *bus.Bus
	now     func() time.Time
}

// NewMachine creates a new state machine starting in SignedOut.
func NewMachine(b *bus.Bus) *Machine {
	return &Machine{
		current: SignedOut,
		since:   time.Now(),
		bus:     b,
		now:     time.Now,
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Since returns when the machine entered its current state.
func (m *Machine) Since() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.since
}

// Transition attempts to move to a new state. Returns a *TransitionError if
// the move is not allowed from the current state.
func (m *Machine) Transition(to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !slices.Contains(validTransitions[m.current], to) {
		return &TransitionError{From: m.current, To: to}
	}
	from := m.current
	m.current = to
	m.since = m.now()
	if m.bus != nil {
		m.bus.Publish(bus.NewEvent(bus.KindStatusChanged, m.since, StatusChange{From: from, To: to}))
	}
	return nil
}

// StatusChange is the payload for status change events.
type StatusChange struct {
	From State
	To   State
}
