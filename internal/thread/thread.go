// Package thread lays out a conversation's messages for the chat window.
package thread

import (
	"errors"
	"strings"
	"time"

	"github.com/matheus3301/huddle/internal/roster"
)

// ErrEmptyDraft is returned by Compose for a blank draft.
var ErrEmptyDraft = errors.New("empty draft")

// Reaction is an emoji reaction tally on a message.
type Reaction struct {
	Emoji      string `json:"emoji"`
	Count      int    `json:"count"`
	HasReacted bool   `json:"has_reacted"`
}

// Message is a single chat message.
type Message struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id"`
	SenderID       string     `json:"sender_id"`
	SenderName     string     `json:"sender_name"`
	SenderAvatar   string     `json:"sender_avatar"`
	Content        string     `json:"content"`
	SentAt         time.Time  `json:"sent_at"`
	Own            bool       `json:"own"`
	Reactions      []Reaction `json:"reactions,omitempty"`
}

// ItemKind distinguishes day separators from messages.
type ItemKind string

const (
	KindDay     ItemKind = "day"
	KindMessage ItemKind = "message"
)

// Item is one line of the rendered thread.
type Item struct {
	Kind      ItemKind   `json:"kind"`
	Day       string     `json:"day,omitempty"`
	ID        string     `json:"id,omitempty"`
	Sender    string     `json:"sender,omitempty"`
	Initials  string     `json:"initials,omitempty"`
	Avatar    string     `json:"avatar,omitempty"`
	Clock     string     `json:"clock,omitempty"`
	Content   string     `json:"content,omitempty"`
	Own       bool       `json:"own,omitempty"`
	Reactions []Reaction `json:"reactions,omitempty"`
}

// Build lays out messages in the order given, inserting a day separator
// before the first message and at every calendar-day change. Days are
// compared in now's location.
func Build(messages []Message, now time.Time) []Item {
	items := make([]Item, 0, len(messages)+1)
	var prev time.Time
	for i, m := range messages {
		sent := m.SentAt.In(now.Location())
		if i == 0 || !sameDay(prev, sent) {
			items = append(items, Item{Kind: KindDay, Day: DayLabel(sent, now)})
		}
		prev = sent
		items = append(items, Item{
			Kind:      KindMessage,
			ID:        m.ID,
			Sender:    m.SenderName,
			Initials:  roster.Initials(m.SenderName),
			Avatar:    m.SenderAvatar,
			Clock:     ClockLabel(sent),
			Content:   m.Content,
			Own:       m.Own,
			Reactions: m.Reactions,
		})
	}
	return items
}

// DayLabel returns "Today", "Yesterday" or a numeric month/day/year date.
func DayLabel(t, now time.Time) string {
	t = t.In(now.Location())
	switch {
	case sameDay(t, now):
		return "Today"
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return t.Format("1/2/2006")
	}
}

// ClockLabel returns a two-digit 12-hour clock, e.g. "03:04 PM".
func ClockLabel(t time.Time) string {
	return t.Format("03:04 PM")
}

// Compose validates a draft. Drafts are never delivered anywhere; a valid one
// is returned trimmed so the caller can clear its input.
func Compose(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyDraft
	}
	return text, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
