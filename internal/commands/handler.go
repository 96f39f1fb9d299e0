package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/dungeonmerc/go-merc/internal/game"
)

// Publisher delivers command output to player subjects.
type Publisher interface {
	PublishToPlayer(name string, data []byte) error
	PublishToRoom(roomId int, exclude []string, data []byte) error
}

// Invocation carries everything a command needs for one execution.
type Invocation struct {
	World  *game.World
	Player string
	Args   []string
}

// CommandFunc executes one parsed command for one player.
type CommandFunc func(ctx context.Context, inv *Invocation) error

// Spec describes a command for registration and help display.
type Spec struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
}

// HandlerFactory builds a CommandFunc. Factories capture their collaborators
// (world, publisher) at construction time.
type HandlerFactory interface {
	Spec() *Spec
	Create() (CommandFunc, error)
}

type compiledCommand struct {
	spec    *Spec
	cmdFunc CommandFunc
}

// Handler owns the command table and dispatches input lines. A session only
// reaches Exec once it is authenticated and playing; dispatch itself does
// not mutate world state, the compiled commands do.
type Handler struct {
	commands map[string]*compiledCommand
	ordered  []*Spec
}

func NewHandler() *Handler {
	return &Handler{
		commands: make(map[string]*compiledCommand),
	}
}

// Register compiles the factory's command and installs it under its name and
// every alias.
func (h *Handler) Register(f HandlerFactory) error {
	spec := f.Spec()
	if spec == nil || spec.Name == "" {
		return fmt.Errorf("command spec must have a name")
	}

	cmdFunc, err := f.Create()
	if err != nil {
		return fmt.Errorf("creating handler %q: %w", spec.Name, err)
	}

	compiled := &compiledCommand{spec: spec, cmdFunc: cmdFunc}
	for _, name := range append([]string{spec.Name}, spec.Aliases...) {
		key := strings.ToLower(name)
		if _, exists := h.commands[key]; exists {
			return fmt.Errorf("command %q already registered", key)
		}
		h.commands[key] = compiled
	}
	h.ordered = append(h.ordered, spec)

	return nil
}

// Specs returns the registered commands in registration order.
func (h *Handler) Specs() []*Spec {
	return h.ordered
}

// Exec dispatches one command line for a player. A bare direction word or
// letter is shorthand for move. Unknown commands and bad usage come back as
// UserError; anything else is a system fault for the session layer.
func (h *Handler) Exec(ctx context.Context, world *game.World, player, cmdName string, args ...string) error {
	name := strings.ToLower(cmdName)

	// "north" or "n" alone moves.
	if _, ok := game.ParseDirection(name); ok {
		args = []string{name}
		name = "move"
	}

	compiled, ok := h.commands[name]
	if !ok {
		return NewUserError(fmt.Sprintf("Unknown command: %s\nType 'help' for available commands.", cmdName))
	}

	inv := &Invocation{
		World:  world,
		Player: player,
		Args:   args,
	}

	return compiled.cmdFunc(ctx, inv)
}
