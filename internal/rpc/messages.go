package rpc

import (
	"time"

	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/thread"
)

// Clock is embedded by requests whose answer depends on the current time.
// A nil Now means the server clock.
type Clock struct {
	Now *Timestamp `json:"now,omitempty"`
}

// At resolves the request time, falling back to fallback when unset.
func (c Clock) At(fallback time.Time) time.Time {
	if !c.Now.Valid() {
		return fallback
	}
	return c.Now.Time()
}

// ClockAt builds a Clock pinned to t.
func ClockAt(t time.Time) Clock {
	return Clock{Now: TimestampOf(t)}
}

type ListConversationsRequest struct {
	Clock
	Query string `json:"query,omitempty"`
}

type ListConversationsResponse struct {
	View roster.ConversationView `json:"view"`
}

type ListContactsRequest struct {
	Clock
	Query  string `json:"query,omitempty"`
	Filter string `json:"filter,omitempty"`
}

type ListContactsResponse struct {
	View roster.ContactView `json:"view"`
}

type GetConversationRequest struct {
	ID string `json:"id"`
}

type GetConversationResponse struct {
	Conversation roster.Conversation `json:"conversation"`
}

type ListMessagesRequest struct {
	Clock
	ConversationID string `json:"conversation_id"`
}

type ListMessagesResponse struct {
	Conversation roster.ConversationRow `json:"conversation"`
	Items        []thread.Item          `json:"items"`
}

type SendTextRequest struct {
	ConversationID string `json:"conversation_id"`
	Text           string `json:"text"`
}

// SendTextResponse reports what happened to a draft. Drafts are never
// delivered, so Accepted is always false.
type SendTextResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}

type GetStatusRequest struct{}

// Account mirrors the signed-in identity without its token.
type Account struct {
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Handle      string     `json:"handle"`
	SignedInAt  *Timestamp `json:"signed_in_at"`
}

type GetStatusResponse struct {
	Profile       string     `json:"profile"`
	Status        string     `json:"status"`
	Since         *Timestamp `json:"since"`
	UptimeMs      int64      `json:"uptime_ms"`
	Account       *Account   `json:"account,omitempty"`
	Locale        string     `json:"locale"`
	Conversations int64      `json:"conversations"`
	Contacts      int64      `json:"contacts"`
	Requests      int64      `json:"requests"`
	Messages      int64      `json:"messages"`
	SeededAt      string     `json:"seeded_at,omitempty"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	FullName        string `json:"full_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type SignInResponse struct {
	Account Account `json:"account"`
	Token   string  `json:"token"`
}

type SignOutRequest struct{}

type SignOutResponse struct {
	Status string `json:"status"`
}

type WatchStatusRequest struct{}

// StatusEvent is one sign-in state change. The first event on a stream
// reports the current state with an empty From.
type StatusEvent struct {
	ID   string     `json:"id"`
	From string     `json:"from,omitempty"`
	To   string     `json:"to"`
	At   *Timestamp `json:"at"`
}
