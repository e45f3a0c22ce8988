package roster

import "time"

// Presence is a contact's availability.
type Presence string

const (
	Online  Presence = "online"
	Away    Presence = "away"
	Busy    Presence = "busy"
	Offline Presence = "offline"
)

// ContactFilter selects which contacts the friends tab shows.
type ContactFilter string

const (
	FilterOnline ContactFilter = "online"
	FilterAll    ContactFilter = "all"
)

// Conversation is a chat list entry, either a direct chat or a group.
type Conversation struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar"`
	LastMessage  string    `json:"last_message"`
	LastActivity time.Time `json:"last_activity"`
	UnreadCount  int       `json:"unread_count"`
	Online       bool      `json:"online"`
	Group        bool      `json:"group"`
	Pinned       bool      `json:"pinned,omitempty"`
	Muted        bool      `json:"muted,omitempty"`
	MemberCount  int       `json:"member_count,omitempty"` // groups only
}

// Contact is an entry in the friends list.
type Contact struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Handle        string     `json:"handle"`
	Avatar        string     `json:"avatar"`
	Presence      Presence   `json:"presence"`
	StatusMessage string     `json:"status_message,omitempty"`
	MutualFriends int        `json:"mutual_friends,omitempty"`
	LastSeen      *time.Time `json:"last_seen,omitempty"` // offline only
}

// PendingRequest is an incoming friend request.
type PendingRequest struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Handle        string    `json:"handle"`
	Avatar        string    `json:"avatar"`
	MutualFriends int       `json:"mutual_friends"`
	ReceivedAt    time.Time `json:"received_at"`
}

// Partition is the result of filtering conversations: pinned entries first,
// then the rest, each in the order the caller supplied.
type Partition struct {
	Pinned  []Conversation
	Regular []Conversation
}

// Len returns the number of conversations across both sections.
func (p Partition) Len() int {
	return len(p.Pinned) + len(p.Regular)
}

// ParsePresence maps a presence string to a Presence. Unknown values are offline.
func ParsePresence(s string) Presence {
	switch Presence(s) {
	case Online, Away, Busy:
		return Presence(s)
	default:
		return Offline
	}
}

// ParseContactFilter maps a tab name to a ContactFilter. Anything other than
// "online" shows every contact.
func ParseContactFilter(s string) ContactFilter {
	if ContactFilter(s) == FilterOnline {
		return FilterOnline
	}
	return FilterAll
}

// Valid reports whether p is one of the four known presence states.
func (p Presence) Valid() bool {
	switch p {
	case Online, Away, Busy, Offline:
		return true
	}
	return false
}
