package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ThreadServiceName = "huddle.v1.ThreadService"

	ThreadListMessages = "/" + ThreadServiceName + "/ListMessages"
	ThreadSendText     = "/" + ThreadServiceName + "/SendText"
)

// ThreadServer serves a conversation's messages.
type ThreadServer interface {
	ListMessages(context.Context, *ListMessagesRequest) (*ListMessagesResponse, error)
	SendText(context.Context, *SendTextRequest) (*SendTextResponse, error)
}

var ThreadServiceDesc = grpc.ServiceDesc{
	ServiceName: ThreadServiceName,
	HandlerType: (*ThreadServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ThreadServiceName, "ListMessages", ThreadServer.ListMessages),
		unary(ThreadServiceName, "SendText", ThreadServer.SendText),
	},
}

// RegisterThreadServer registers srv on s.
func RegisterThreadServer(s grpc.ServiceRegistrar, srv ThreadServer) {
	s.RegisterService(&ThreadServiceDesc, srv)
}

// ThreadClient calls ThreadService.
type ThreadClient struct {
	cc grpc.ClientConnInterface
}

func NewThreadClient(cc grpc.ClientConnInterface) *ThreadClient {
	return &ThreadClient{cc: cc}
}

func (c *ThreadClient) ListMessages(ctx context.Context, in *ListMessagesRequest, opts ...grpc.CallOption) (*ListMessagesResponse, error) {
	return invoke[ListMessagesResponse](ctx, c.cc, ThreadListMessages, in, opts)
}

func (c *ThreadClient) SendText(ctx context.Context, in *SendTextRequest, opts ...grpc.CallOption) (*SendTextResponse, error) {
	return invoke[SendTextResponse](ctx, c.cc, ThreadSendText, in, opts)
}
