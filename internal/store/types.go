package store

import "errors"

// ErrInvalidRecord is wrapped by every validation failure reported by Seed.
var ErrInvalidRecord = errors.New("invalid record")

// Counts holds per-collection row counts.
type Counts struct {
	Conversations int64
	Contacts      int64
	Requests      int64
	Messages      int64
}

// Meta keys written by the store.
const (
	MetaSeededAt = "seeded_at"
)
