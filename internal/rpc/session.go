package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	SessionServiceName = "huddle.v1.SessionService"

	SessionGetStatus   = "/" + SessionServiceName + "/GetStatus"
	SessionSignIn      = "/" + SessionServiceName + "/SignIn"
	SessionSignUp      = "/" + SessionServiceName + "/SignUp"
	SessionSignOut     = "/" + SessionServiceName + "/SignOut"
	SessionWatchStatus = "/" + SessionServiceName + "/WatchStatus"
)

// WatchStatusStream is the server side of a WatchStatus call.
type WatchStatusStream = grpc.ServerStreamingServer[StatusEvent]

// SessionServer serves the simulated sign-in flow.
type SessionServer interface {
	GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error)
	SignIn(context.Context, *SignInRequest) (*SignInResponse, error)
	SignUp(context.Context, *SignUpRequest) (*SignInResponse, error)
	SignOut(context.Context, *SignOutRequest) (*SignOutResponse, error)
	WatchStatus(*WatchStatusRequest, WatchStatusStream) error
}

var SessionServiceDesc = grpc.ServiceDesc{
	ServiceName: SessionServiceName,
	HandlerType: (*SessionServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(SessionServiceName, "GetStatus", SessionServer.GetStatus),
		unary(SessionServiceName, "SignIn", SessionServer.SignIn),
		unary(SessionServiceName, "SignUp", SessionServer.SignUp),
		unary(SessionServiceName, "SignOut", SessionServer.SignOut),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchStatus",
			Handler:       watchStatusHandler,
			ServerStreams: true,
		},
	},
}

func watchStatusHandler(srv any, stream grpc.ServerStream) error {
	in := new(WatchStatusRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(SessionServer).WatchStatus(in, &grpc.GenericServerStream[WatchStatusRequest, StatusEvent]{ServerStream: stream})
}

// RegisterSessionServer registers srv on s.
func RegisterSessionServer(s grpc.ServiceRegistrar, srv SessionServer) {
	s.RegisterService(&SessionServiceDesc, srv)
}

// SessionClient calls SessionService.
type SessionClient struct {
	cc grpc.ClientConnInterface
}

func NewSessionClient(cc grpc.ClientConnInterface) *SessionClient {
	return &SessionClient{cc: cc}
}

func (c *SessionClient) GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error) {
	return invoke[GetStatusResponse](ctx, c.cc, SessionGetStatus, in, opts)
}

func (c *SessionClient) SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*SignInResponse, error) {
	return invoke[SignInResponse](ctx, c.cc, SessionSignIn, in, opts)
}

func (c *SessionClient) SignUp(ctx context.Context, in *SignUpRequest, opts ...grpc.CallOption) (*SignInResponse, error) {
	return invoke[SignInResponse](ctx, c.cc, SessionSignUp, in, opts)
}

func (c *SessionClient) SignOut(ctx context.Context, in *SignOutRequest, opts ...grpc.CallOption) (*SignOutResponse, error) {
	return invoke[SignOutResponse](ctx, c.cc, SessionSignOut, in, opts)
}

// WatchStatus streams state changes until ctx is cancelled or the daemon stops.
func (c *SessionClient) WatchStatus(ctx context.Context, in *WatchStatusRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[StatusEvent], error) {
	stream, err := c.cc.NewStream(ctx, &SessionServiceDesc.Streams[0], SessionWatchStatus, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchStatusRequest, StatusEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
