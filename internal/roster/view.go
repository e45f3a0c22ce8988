package roster

import (
	"fmt"
	"time"
)

// DefaultPreviewWidth is the display width last-message previews are cut to.
const DefaultPreviewWidth = 48

// Section headers shown above the conversation and friends lists.
const (
	HeaderPinned   = "PINNED"
	HeaderAllChats = "ALL CHATS"
)

// ConversationRow is a display-ready chat list row.
type ConversationRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Initials     string `json:"initials"`
	Avatar       string `json:"avatar"`
	Preview      string `json:"preview"`
	Time         string `json:"time"`
	Badge        string `json:"badge,omitempty"`
	Members      string `json:"members,omitempty"`
	ShowPresence bool   `json:"show_presence"`
	Online       bool   `json:"online"`
	Group        bool   `json:"group"`
	Pinned       bool   `json:"pinned"`
	Muted        bool   `json:"muted"`
	Unread       bool   `json:"unread"`
}

// ConversationView is the chat list as rendered: optional section headers
// and the rows below each.
type ConversationView struct {
	PinnedHeader  string            `json:"pinned_header,omitempty"`
	Pinned        []ConversationRow `json:"pinned"`
	RegularHeader string            `json:"regular_header,omitempty"`
	Regular       []ConversationRow `json:"regular"`
	Total         int               `json:"total"`
}

// Rows returns pinned rows followed by regular rows.
func (v ConversationView) Rows() []ConversationRow {
	rows := make([]ConversationRow, 0, len(v.Pinned)+len(v.Regular))
	rows = append(rows, v.Pinned...)
	return append(rows, v.Regular...)
}

// ContactRow is a display-ready friends list row.
type ContactRow struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Handle   string   `json:"handle"`
	Initials string   `json:"initials"`
	Avatar   string   `json:"avatar"`
	Presence Presence `json:"presence"`
	Subtitle string   `json:"subtitle"`
	Mutual   string   `json:"mutual,omitempty"`
}

// RequestRow is a display-ready pending friend request.
type RequestRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	Initials string `json:"initials"`
	Avatar   string `json:"avatar"`
	Mutual   string `json:"mutual"`
	Received string `json:"received"`
}

// ContactView is the friends screen as rendered.
type ContactView struct {
	Filter         ContactFilter `json:"filter"`
	OnlineTab      string        `json:"online_tab"`
	AllTab         string        `json:"all_tab"`
	RequestsHeader string        `json:"requests_header,omitempty"`
	Requests       []RequestRow  `json:"requests"`
	Contacts       []ContactRow  `json:"contacts"`
}

// ViewBuilder turns records into views. Its zero value uses the default
// locale and preview width.
type ViewBuilder struct {
	Formatter    Formatter
	PreviewWidth int
}

// BuildConversationView filters records by query and renders every match
// against the same now.
func BuildConversationView(records []Conversation, query string, now time.Time) ConversationView {
	return ViewBuilder{}.Conversations(records, query, now)
}

// BuildContactView filters contacts by query and filter and renders them
// together with every pending request.
func BuildContactView(contacts []Contact, requests []PendingRequest, query string, filter ContactFilter, now time.Time) ContactView {
	return ViewBuilder{}.Contacts(contacts, requests, query, filter, now)
}

// Conversations is BuildConversationView with the builder's settings.
func (b ViewBuilder) Conversations(records []Conversation, query string, now time.Time) ConversationView {
	p := FilterConversations(records, query)
	v := ConversationView{
		Pinned:  make([]ConversationRow, 0, len(p.Pinned)),
		Regular: make([]ConversationRow, 0, len(p.Regular)),
		Total:   p.Len(),
	}
	for _, c := range p.Pinned {
		v.Pinned = append(v.Pinned, b.Row(c, now))
	}
	for _, c := range p.Regular {
		v.Regular = append(v.Regular, b.Row(c, now))
	}
	if len(v.Pinned) > 0 {
		v.PinnedHeader = HeaderPinned
		v.RegularHeader = HeaderAllChats
	}
	return v
}

// Row renders a single conversation as a chat list row.
func (b ViewBuilder) Row(c Conversation, now time.Time) ConversationRow {
	width := b.PreviewWidth
	if width == 0 {
		width = DefaultPreviewWidth
	}
	row := ConversationRow{
		ID:           c.ID,
		Name:         c.Name,
		Initials:     ConversationInitials(c.Name),
		Avatar:       c.Avatar,
		Preview:      Truncate(c.LastMessage, width),
		Time:         b.Formatter.RelativeTime(c.LastActivity, now),
		Badge:        UnreadBadge(c.UnreadCount),
		ShowPresence: !c.Group,
		Online:       c.Online,
		Group:        c.Group,
		Pinned:       c.Pinned,
		Muted:        c.Muted,
		Unread:       c.UnreadCount > 0,
	}
	if c.Group && c.MemberCount > 0 {
		row.Members = fmt.Sprintf("%d members", c.MemberCount)
	}
	return row
}

// Contacts is BuildContactView with the builder's settings.
func (b ViewBuilder) Contacts(contacts []Contact, requests []PendingRequest, query string, filter ContactFilter, now time.Time) ContactView {
	online := 0
	for _, c := range contacts {
		if c.Presence == Online {
			online++
		}
	}

	v := ContactView{
		Filter:    filter,
		OnlineTab: fmt.Sprintf("Online (%d)", online),
		AllTab:    fmt.Sprintf("All (%d)", len(contacts)),
		Requests:  make([]RequestRow, 0, len(requests)),
	}
	if len(requests) > 0 {
		v.RequestsHeader = fmt.Sprintf("PENDING REQUESTS (%d)", len(requests))
	}
	for _, r := range requests {
		v.Requests = append(v.Requests, RequestRow{
			ID:       r.ID,
			Name:     r.Name,
			Handle:   r.Handle,
			Initials: Initials(r.Name),
			Avatar:   r.Avatar,
			Mutual:   fmt.Sprintf("%d mutual friends", r.MutualFriends),
			Received: b.Formatter.RelativeTime(r.ReceivedAt, now),
		})
	}

	matched := FilterContacts(contacts, query, filter)
	v.Contacts = make([]ContactRow, 0, len(matched))
	for _, c := range matched {
		row := ContactRow{
			ID:       c.ID,
			Name:     c.Name,
			Handle:   c.Handle,
			Initials: Initials(c.Name),
			Avatar:   c.Avatar,
			Presence: c.Presence,
			Subtitle: contactSubtitle(c, now),
		}
		if c.MutualFriends > 0 {
			row.Mutual = fmt.Sprintf("%d mutual friends", c.MutualFriends)
		}
		v.Contacts = append(v.Contacts, row)
	}
	return v
}

func contactSubtitle(c Contact, now time.Time) string {
	if c.Presence == Offline && c.LastSeen != nil {
		return "Last seen " + FormatLastSeen(*c.LastSeen, now)
	}
	if c.StatusMessage != "" {
		return c.StatusMessage
	}
	return c.Handle
}
