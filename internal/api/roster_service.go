package api

import (
	"context"
	"time"

	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/rpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// RosterService implements rpc.RosterServer over the fixture store.
type RosterService struct {
	src        Source
	views      roster.ViewBuilder
	friendsTab roster.ContactFilter
	now        func() time.Time
}

// NewRosterService creates a roster service. friendsTab is the filter used
// when a request leaves it empty.
func NewRosterService(src Source, views roster.ViewBuilder, friendsTab roster.ContactFilter) *RosterService {
	return &RosterService{src: src, views: views, friendsTab: friendsTab, now: time.Now}
}

func (s *RosterService) ListConversations(_ context.Context, req *rpc.ListConversationsRequest) (*rpc.ListConversationsResponse, error) {
	records, err := s.src.ListConversations()
	if err != nil {
		return nil, toStatus("list conversations", err)
	}
	return &rpc.ListConversationsResponse{
		View: s.views.Conversations(records, req.Query, req.At(s.now())),
	}, nil
}

func (s *RosterService) ListContacts(_ context.Context, req *rpc.ListContactsRequest) (*rpc.ListContactsResponse, error) {
	contacts, err := s.src.ListContacts()
	if err != nil {
		return nil, toStatus("list contacts", err)
	}
	requests, err := s.src.ListRequests()
	if err != nil {
		return nil, toStatus("list requests", err)
	}

	filter := s.friendsTab
	if req.Filter != "" {
		filter = roster.ParseContactFilter(req.Filter)
	}
	return &rpc.ListContactsResponse{
		View: s.views.Contacts(contacts, requests, req.Query, filter, req.At(s.now())),
	}, nil
}

func (s *RosterService) GetConversation(_ context.Context, req *rpc.GetConversationRequest) (*rpc.GetConversationResponse, error) {
	c, err := s.src.GetConversation(req.ID)
	if err != nil {
		return nil, toStatus("get conversation", err)
	}
	if c == nil {
		return nil, grpcstatus.Errorf(codes.NotFound, "conversation %q not found", req.ID)
	}
	return &rpc.GetConversationResponse{Conversation: *c}, nil
}
