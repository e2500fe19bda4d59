package console

import (
	"context"
	"errors"
	"sync"

	"github.com/oshokin/autofix-handedness/internal/logger"
	"github.com/oshokin/autofix-handedness/internal/service/autofix"
)

// NotLoadedMessage is printed when the controller was never created.
const NotLoadedMessage = "Autofix Handedness not loaded.  To start it, use: " + autofix.JobName + " start"

// ErrNotLoaded is returned when stopping before the controller was created.
var ErrNotLoaded = errors.New("autofix handedness not loaded")

// Command is a console command recognised by the session.
type Command string

const (
	// CommandStart creates the controller if needed and starts it.
	CommandStart Command = "start"
	// CommandStop stops the running controller.
	CommandStop Command = "stop"
	// CommandEnd is an alias of CommandStop.
	CommandEnd Command = "end"
	// CommandStatus only reports the status.
	CommandStatus Command = "status"
)

// ParseCommand maps the first console argument to a command.
// Matching is exact and case-sensitive; anything else, including no
// argument, is a status query.
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return CommandStatus
	}

	switch Command(args[0]) {
	case CommandStart:
		return CommandStart
	case CommandStop, CommandEnd:
		return CommandStop
	default:
		return CommandStatus
	}
}

// Session holds the controller for one host session.
type Session struct {
	// newController builds the controller on the first start.
	newController func() *autofix.Controller

	// mu protects controller.
	mu sync.Mutex
	// controller is nil until the first start.
	controller *autofix.Controller
}

// NewSession creates a session that builds its controller with factory.
func NewSession(factory func() *autofix.Controller) *Session {
	return &Session{
		newController: factory,
	}
}

// Execute runs the console command given by args and returns its output.
func (s *Session) Execute(ctx context.Context, args []string) (string, error) {
	command := ParseCommand(args)
	ctx = logger.WithKV(logger.WithName(ctx, autofix.JobName), "command", string(command))

	switch command {
	case CommandStart:
		return s.controllerOrCreate().Start(ctx)
	case CommandStop:
		controller := s.current()
		if controller == nil {
			return NotLoadedMessage, ErrNotLoaded
		}

		return controller.Stop(ctx)
	default:
		controller := s.current()
		if controller == nil {
			return NotLoadedMessage, nil
		}

		return controller.Status(), nil
	}
}

// Controller returns the session controller or nil when not loaded.
func (s *Session) Controller() *autofix.Controller {
	return s.current()
}

func (s *Session) current() *autofix.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.controller
}

func (s *Session) controllerOrCreate() *autofix.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.controller == nil {
		s.controller = s.newController()
	}

	return s.controller
}
