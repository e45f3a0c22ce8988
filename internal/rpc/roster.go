package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	RosterServiceName = "huddle.v1.RosterService"

	RosterListConversations = "/" + RosterServiceName + "/ListConversations"
	RosterListContacts      = "/" + RosterServiceName + "/ListContacts"
	RosterGetConversation   = "/" + RosterServiceName + "/GetConversation"
)

// RosterServer serves the chat list and friends list.
type RosterServer interface {
	ListConversations(context.Context, *ListConversationsRequest) (*ListConversationsResponse, error)
	ListContacts(context.Context, *ListContactsRequest) (*ListContactsResponse, error)
	GetConversation(context.Context, *GetConversationRequest) (*GetConversationResponse, error)
}

var RosterServiceDesc = grpc.ServiceDesc{
	ServiceName: RosterServiceName,
	HandlerType: (*RosterServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(RosterServiceName, "ListConversations", RosterServer.ListConversations),
		unary(RosterServiceName, "ListContacts", RosterServer.ListContacts),
		unary(RosterServiceName, "GetConversation", RosterServer.GetConversation),
	},
}

// RegisterRosterServer registers srv on s.
func RegisterRosterServer(s grpc.ServiceRegistrar, srv RosterServer) {
	s.RegisterService(&RosterServiceDesc, srv)
}

// RosterClient calls RosterService.
type RosterClient struct {
	cc grpc.ClientConnInterface
}

func NewRosterClient(cc grpc.ClientConnInterface) *RosterClient {
	return &RosterClient{cc: cc}
}

func (c *RosterClient) ListConversations(ctx context.Context, in *ListConversationsRequest, opts ...grpc.CallOption) (*ListConversationsResponse, error) {
	return invoke[ListConversationsResponse](ctx, c.cc, RosterListConversations, in, opts)
}

func (c *RosterClient) ListContacts(ctx context.Context, in *ListContactsRequest, opts ...grpc.CallOption) (*ListContactsResponse, error) {
	return invoke[ListContactsResponse](ctx, c.cc, RosterListContacts, in, opts)
}

func (c *RosterClient) GetConversation(ctx context.Context, in *GetConversationRequest, opts ...grpc.CallOption) (*GetConversationResponse, error) {
	return invoke[GetConversationResponse](ctx, c.cc, RosterGetConversation, in, opts)
}
