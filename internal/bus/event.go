package bus

import (
	"time"

	"github.com/google/uuid"
)

// Namespaces and kinds published by the daemon.
const (
	NamespaceSession = "session."
	NamespaceRoster  = "roster."

	KindStatusChanged = NamespaceSession + "status_changed"
	KindSignedIn      = NamespaceSession + "signed_in"
	KindSignedOut     = NamespaceSession + "signed_out"
	KindSeeded        = NamespaceRoster + "seeded"
)

// Event represents a domain event published on the bus.
type Event struct {
	ID        string
	Kind      string
	Timestamp time.Time
	Payload   any
}

// NewEvent stamps an event with a fresh id and the given time.
func NewEvent(kind string, at time.Time, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Timestamp: at,
		Payload:   payload,
	}
}
