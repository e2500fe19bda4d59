package console

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	session "github.com/oshokin/autofix-handedness/internal/console"
	domain "github.com/oshokin/autofix-handedness/internal/domain/glove"
	"github.com/oshokin/autofix-handedness/internal/service/autofix"
)

var errTestHost = errors.New("test host error")

// fakeService implements the console Service interface for unit testing the transport.
type fakeService struct {
	// args stores the last arguments passed to Execute.
	args []string
	// executeErr is returned from Execute when set.
	executeErr error
	// executeOut is returned together with executeErr.
	executeOut string
	// fixed is the count returned from FixOnce.
	fixed int
	// fixErr is returned from FixOnce when set.
	fixErr error
	// total is the collection size after crafting.
	total int
}

func (f *fakeService) Execute(_ context.Context, args []string) (string, error) {
	f.args = args
	if f.executeErr != nil {
		return f.executeOut, f.executeErr
	}

	return "autofixhandedness: Running", nil
}

func (f *fakeService) FixOnce(context.Context) (domain.FixResult, error) {
	return domain.FixResult{FixedCount: f.fixed}, f.fixErr
}

func (f *fakeService) CraftGloves(_ context.Context, count int) (int, error) {
	f.total += count

	return f.total, nil
}

// TestServer_Execute splits the command line and returns the output.
func TestServer_Execute(t *testing.T) {
	t.Parallel()

	svc := new(fakeService)
	s := NewServer(svc)

	_, err := s.Execute(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	out, err := s.Execute(context.Background(), wrapperspb.String("  start  now "))
	require.NoError(t, err)
	require.Equal(t, "autofixhandedness: Running", out.GetValue())
	require.Equal(t, []string{"start", "now"}, svc.args)
}

// TestServer_ErrorCodes maps domain errors to status codes.
func TestServer_ErrorCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want codes.Code
	}{
		{err: session.ErrNotLoaded, want: codes.FailedPrecondition},
		{err: fmt.Errorf("wrapped: %w", autofix.ErrNotRunning), want: codes.FailedPrecondition},
		{err: errTestHost, want: codes.Internal},
	}

	for _, tc := range cases {
		s := NewServer(&fakeService{executeErr: tc.err})

		_, err := s.Execute(context.Background(), wrapperspb.String("stop"))
		require.Equal(t, tc.want, status.Code(err), tc.err.Error())
	}

	s := NewServer(&fakeService{fixErr: errTestHost})
	_, err := s.FixOnce(context.Background(), new(emptypb.Empty))
	require.Equal(t, codes.Internal, status.Code(err))
}

// TestServer_ExecuteRejectedKeepsOutput sends the console output of a rejected command as the status message.
func TestServer_ExecuteRejectedKeepsOutput(t *testing.T) {
	t.Parallel()

	s := NewServer(&fakeService{executeErr: session.ErrNotLoaded, executeOut: session.NotLoadedMessage})

	_, err := s.Execute(context.Background(), wrapperspb.String("stop"))
	st := status.Convert(err)
	require.Equal(t, codes.FailedPrecondition, st.Code())
	require.Equal(t, session.NotLoadedMessage, st.Message())

	s = NewServer(&fakeService{executeErr: errTestHost, executeOut: "ignored"})

	_, err = s.Execute(context.Background(), wrapperspb.String("start"))
	st = status.Convert(err)
	require.Equal(t, codes.Internal, st.Code())
	require.Equal(t, errTestHost.Error(), st.Message())
}

// TestServer_FixOnceAndCraft exercises the one-shot and crafting calls.
func TestServer_FixOnceAndCraft(t *testing.T) {
	t.Parallel()

	s := NewServer(&fakeService{fixed: 4})

	fixed, err := s.FixOnce(context.Background(), new(emptypb.Empty))
	require.NoError(t, err)
	require.Equal(t, int64(4), fixed.GetValue())

	_, err = s.CraftGloves(context.Background(), wrapperspb.Int64(0))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	total, err := s.CraftGloves(context.Background(), wrapperspb.Int64(3))
	require.NoError(t, err)
	require.Equal(t, int64(3), total.GetValue())
}

// TestActorInterceptor passes the request through with or without actor metadata.
func TestActorInterceptor(t *testing.T) {
	t.Parallel()

	info := &grpc.UnaryServerInfo{FullMethod: executeMethod}
	handler := func(_ context.Context, req any) (any, error) {
		return req, nil
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(ActorMetadataKey, "dwarf@fortress"))

	resp, err := ActorInterceptor(ctx, "payload", info, handler)
	require.NoError(t, err)
	require.Equal(t, "payload", resp)

	resp, err = ActorInterceptor(context.Background(), "payload", info, handler)
	require.NoError(t, err)
	require.Equal(t, "payload", resp)
}
