package console

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	session "github.com/oshokin/autofix-handedness/internal/console"
	domain "github.com/oshokin/autofix-handedness/internal/domain/glove"
	"github.com/oshokin/autofix-handedness/internal/host"
	"github.com/oshokin/autofix-handedness/internal/logger"
	"github.com/oshokin/autofix-handedness/internal/service/autofix"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	Execute(ctx context.Context, args []string) (string, error)
	FixOnce(ctx context.Context) (domain.FixResult, error)
	CraftGloves(ctx context.Context, count int) (int, error)
}

// Server implements the ConsoleService gRPC API.
type Server struct {
	// service provides the business logic for console operations.
	service Service
}

var _ ConsoleServiceServer = (*Server)(nil)

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// Execute runs a console command.
func (s *Server) Execute(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	output, err := s.service.Execute(ctx, strings.Fields(req.GetValue()))
	if err != nil {
		return nil, executeStatus(output, err)
	}

	return wrapperspb.String(output), nil
}

// FixOnce runs a single handedness pass.
func (s *Server) FixOnce(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	result, err := s.service.FixOnce(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return wrapperspb.Int64(int64(result.FixedCount)), nil
}

// CraftGloves adds unhanded gloves to the world.
func (s *Server) CraftGloves(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error) {
	if req == nil || req.GetValue() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "count must be positive")
	}

	total, err := s.service.CraftGloves(ctx, int(req.GetValue()))
	if err != nil {
		return nil, toStatus(err)
	}

	return wrapperspb.Int64(int64(total)), nil
}

// ActorInterceptor attaches the caller announced in metadata to the request logger.
func ActorInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	actor := "<unknown>"
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(ActorMetadataKey); len(values) > 0 && values[0] != "" {
			actor = values[0]
		}
	}

	ctx = logger.WithKV(ctx, "actor", actor)
	logger.InfoKV(ctx, "Console request received", "method", info.FullMethod)

	return handler(ctx, req)
}

// executeStatus maps a console error to a status. Rejected commands still
// carry their console output, so it becomes the status message.
func executeStatus(output string, err error) error {
	st := toStatus(err)
	if output == "" || status.Code(st) != codes.FailedPrecondition {
		return st
	}

	return status.Error(codes.FailedPrecondition, output)
}

// toStatus maps domain errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, session.ErrNotLoaded), errors.Is(err, autofix.ErrNotRunning):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, host.ErrInvalidCount):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
