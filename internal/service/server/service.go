package server

import (
	"context"
	"io"

	"github.com/oshokin/autofix-handedness/internal/console"
	domain "github.com/oshokin/autofix-handedness/internal/domain/glove"
	"github.com/oshokin/autofix-handedness/internal/host"
	"github.com/oshokin/autofix-handedness/internal/service/autofix"
)

// service glues the console session, the one-shot fix and crafting to the
// host world. It is unexported to keep the transport decoupled from the
// implementation.
type service struct {
	// session dispatches autofixhandedness console commands.
	session *console.Session
	// world is the live glove collection.
	world *host.World
	// out receives report lines printed by fixes.
	out io.Writer
}

// newService creates a service whose console lazily builds a controller over
// the given scheduler and world.
func newService(world *host.World, scheduler autofix.Scheduler, out io.Writer) *service {
	return &service{
		session: console.NewSession(func() *autofix.Controller {
			return autofix.NewController(scheduler, world, autofix.WithOutput(out))
		}),
		world: world,
		out:   out,
	}
}

// Execute runs a console command.
func (s *service) Execute(ctx context.Context, args []string) (string, error) {
	return s.session.Execute(ctx, args)
}

// FixOnce runs a single pass over the live collection.
func (s *service) FixOnce(ctx context.Context) (domain.FixResult, error) {
	return autofix.FixOnce(ctx, s.world, s.out)
}

// CraftGloves adds unhanded gloves, as the custom reaction does.
func (s *service) CraftGloves(ctx context.Context, count int) (int, error) {
	return s.world.Craft(ctx, count)
}
