package swoqv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "swoq.v1.GameService"

	startMethod = "/swoq.v1.GameService/Start"
	actMethod   = "/swoq.v1.GameService/Act"
)

// GameServiceClient is the client API for GameService.
type GameServiceClient interface {
	Start(ctx context.Context, in *StartRequest, opts ...grpc.CallOption) (*StartResponse, error)
	Act(ctx context.Context, in *ActRequest, opts ...grpc.CallOption) (*ActResponse, error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient binds a GameService client to cc.
func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc: cc}
}

func (c *gameServiceClient) Start(ctx context.Context, in *StartRequest, opts ...grpc.CallOption) (*StartResponse, error) {
	out := new(StartResponse)
	if err := c.cc.Invoke(ctx, startMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Act(ctx context.Context, in *ActRequest, opts ...grpc.CallOption) (*ActResponse, error) {
	out := new(ActResponse)
	if err := c.cc.Invoke(ctx, actMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GameServiceServer is the server API for GameService.
type GameServiceServer interface {
	Start(context.Context, *StartRequest) (*StartResponse, error)
	Act(context.Context, *ActRequest) (*ActResponse, error)
}

// RegisterGameServiceServer registers srv on s.
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&gameServiceDesc, srv)
}

func startHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StartRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).Start(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: startMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).Start(ctx, req.(*StartRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func actHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ActRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).Act(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: actMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).Act(ctx, req.(*ActRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var gameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Start", Handler: startHandler},
		{MethodName: "Act", Handler: actHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "swoq/v1/swoq.proto",
}
