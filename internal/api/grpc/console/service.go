package console

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "autofix.v1.ConsoleService"

	// ActorMetadataKey carries "user@host" of the caller for audit logging.
	ActorMetadataKey = "x-actor"

	executeMethod     = "/" + ServiceName + "/Execute"
	fixOnceMethod     = "/" + ServiceName + "/FixOnce"
	craftGlovesMethod = "/" + ServiceName + "/CraftGloves"
)

// ConsoleServiceServer is the server API for the console service.
type ConsoleServiceServer interface {
	// Execute runs a space-separated console command and returns its output.
	Execute(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	// FixOnce runs a single handedness pass and returns the fixed count.
	FixOnce(ctx context.Context, req *emptypb.Empty) (*wrapperspb.Int64Value, error)
	// CraftGloves adds unhanded gloves and returns the collection size.
	CraftGloves(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error)
}

// ConsoleServiceClient is the client API for the console service.
type ConsoleServiceClient interface {
	Execute(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	FixOnce(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	CraftGloves(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
}

// RegisterConsoleServiceServer registers srv on the gRPC server.
func RegisterConsoleServiceServer(s grpc.ServiceRegistrar, srv ConsoleServiceServer) {
	s.RegisterService(&consoleServiceDesc, srv)
}

// NewConsoleServiceClient creates a client over an established connection.
//
//nolint:ireturn // Mirrors generated gRPC constructors.
func NewConsoleServiceClient(cc grpc.ClientConnInterface) ConsoleServiceClient {
	return &consoleServiceClient{cc: cc}
}

type consoleServiceClient struct {
	cc grpc.ClientConnInterface
}

func (c *consoleServiceClient) Execute(
	ctx context.Context,
	in *wrapperspb.StringValue,
	opts ...grpc.CallOption,
) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, executeMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *consoleServiceClient) FixOnce(
	ctx context.Context,
	in *emptypb.Empty,
	opts ...grpc.CallOption,
) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, fixOnceMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *consoleServiceClient) CraftGloves(
	ctx context.Context,
	in *wrapperspb.Int64Value,
	opts ...grpc.CallOption,
) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, craftGlovesMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

//nolint:gochecknoglobals // Service descriptors are package-level by gRPC convention.
var consoleServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ConsoleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Execute",
			Handler:    executeHandler,
		},
		{
			MethodName: "FixOnce",
			Handler:    fixOnceHandler,
		},
		{
			MethodName: "CraftGloves",
			Handler:    craftGlovesHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "autofix/v1/console.proto",
}

func executeHandler(
	srv any,
	ctx context.Context, //nolint:revive // Signature is fixed by grpc.MethodHandler.
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(ConsoleServiceServer).Execute(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: executeMethod,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConsoleServiceServer).Execute(ctx, req.(*wrapperspb.StringValue))
	}

	return interceptor(ctx, in, info, handler)
}

func fixOnceHandler(
	srv any,
	ctx context.Context, //nolint:revive // Signature is fixed by grpc.MethodHandler.
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(ConsoleServiceServer).FixOnce(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: fixOnceMethod,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConsoleServiceServer).FixOnce(ctx, req.(*emptypb.Empty))
	}

	return interceptor(ctx, in, info, handler)
}

func craftGlovesHandler(
	srv any,
	ctx context.Context, //nolint:revive // Signature is fixed by grpc.MethodHandler.
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(ConsoleServiceServer).CraftGloves(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: craftGlovesMethod,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConsoleServiceServer).CraftGloves(ctx, req.(*wrapperspb.Int64Value))
	}

	return interceptor(ctx, in, info, handler)
}
