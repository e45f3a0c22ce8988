package api

import (
	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/rpc"
	"github.com/matheus3301/huddle/internal/store"
	"github.com/matheus3301/huddle/internal/thread"
)

// Source is the read side of the fixture store.
type Source interface {
	ListConversations() ([]roster.Conversation, error)
	GetConversation(id string) (*roster.Conversation, error)
	ListContacts() ([]roster.Contact, error)
	ListRequests() ([]roster.PendingRequest, error)
	ListMessages(conversationID string) ([]thread.Message, error)
}

// Stats reports what the store holds.
type Stats interface {
	Counts() (store.Counts, error)
	GetMeta(key string) (string, error)
}

var (
	_ Source = (*store.DB)(nil)
	_ Stats  = (*store.DB)(nil)
)

var (
	_ rpc.RosterServer  = (*RosterService)(nil)
	_ rpc.ThreadServer  = (*ThreadService)(nil)
	_ rpc.SessionServer = (*SessionService)(nil)
)
