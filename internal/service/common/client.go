//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	api "github.com/oshokin/autofix-handedness/internal/api/grpc/console"
	"github.com/oshokin/autofix-handedness/internal/config"
)

// Client wraps the gRPC ConsoleService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the host daemon.
	conn *grpc.ClientConn
	// api is the ConsoleService client interface.
	api api.ConsoleServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
	// actor is announced to the server on every call when set.
	actor *Actor
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithActor announces the actor in request metadata.
func WithActor(actor *Actor) Option {
	return func(c *Client) {
		c.actor = actor
	}
}

// errAddressRequired is returned when a required address value is missing.
var errAddressRequired = errors.New("address must be provided")

// Dial establishes a gRPC connection to the host daemon.
// Note: this uses insecure transport credentials; the console is meant for
// the local machine or a trusted network.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial host: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         api.NewConsoleServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Execute sends a console command and returns its output.
func (c *Client) Execute(ctx context.Context, args []string) (string, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.Execute(callCtx, wrapperspb.String(strings.Join(args, " ")))
	if err != nil {
		return rejectedOutput(err), fmt.Errorf("execute console command: %w", err)
	}

	return resp.GetValue(), nil
}

// FixOnce asks the host to run a single handedness pass.
func (c *Client) FixOnce(ctx context.Context) (int, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.FixOnce(callCtx, new(emptypb.Empty))
	if err != nil {
		return 0, fmt.Errorf("fix handedness: %w", err)
	}

	return int(resp.GetValue()), nil
}

// CraftGloves asks the host to produce count unhanded gloves.
func (c *Client) CraftGloves(ctx context.Context, count int) (int, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.CraftGloves(callCtx, wrapperspb.Int64(int64(count)))
	if err != nil {
		return 0, fmt.Errorf("craft gloves: %w", err)
	}

	return int(resp.GetValue()), nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline. The actor is
// attached as outgoing metadata.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.actor != nil {
		ctx = metadata.AppendToOutgoingContext(ctx, api.ActorMetadataKey, c.actor.String())
	}

	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}

// rejectedOutput returns the console output carried by a rejected command.
func rejectedOutput(err error) string {
	if st, ok := status.FromError(err); ok && st.Code() == codes.FailedPrecondition {
		return st.Message()
	}

	return ""
}
