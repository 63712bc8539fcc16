package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// BotService wire names
const (
	BotServiceName         = "tamagotchi.bot.v1alpha1.BotService"
	HandleUpdateFullMethod = "/" + BotServiceName + "/HandleUpdate"
)

// BotServiceServer is the server API for BotService. Messages are generic
// google.protobuf.Struct values so gateways need no generated code.
type BotServiceServer interface {
	HandleUpdate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// BotServiceDesc is the grpc.ServiceDesc for BotService
var BotServiceDesc = grpc.ServiceDesc{
	ServiceName: BotServiceName,
	HandlerType: (*BotServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "HandleUpdate",
			Handler:    handleUpdateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tamagotchi/bot/v1alpha1/bot.proto",
}

// RegisterBotServiceServer registers srv on s
func RegisterBotServiceServer(s grpc.ServiceRegistrar, srv BotServiceServer) {
	s.RegisterService(&BotServiceDesc, srv)
}

func handleUpdateHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BotServiceServer).HandleUpdate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HandleUpdateFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BotServiceServer).HandleUpdate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// BotServiceClient is the client API for BotService
type BotServiceClient interface {
	HandleUpdate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type botServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBotServiceClient creates a client on an existing connection
func NewBotServiceClient(cc grpc.ClientConnInterface) BotServiceClient {
	return &botServiceClient{cc: cc}
}

func (c *botServiceClient) HandleUpdate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, HandleUpdateFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
