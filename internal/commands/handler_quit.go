package commands

import (
	"context"
	"fmt"

	"github.com/dungeonmerc/go-merc/internal/game"
)

// QuitHandlerFactory creates handlers that flag the player for departure.
// The session sweep sends the farewell and tears the connection down.
type QuitHandlerFactory struct {
	world *game.World
}

func NewQuitHandlerFactory(world *game.World) *QuitHandlerFactory {
	return &QuitHandlerFactory{world: world}
}

func (f *QuitHandlerFactory) Spec() *Spec {
	return &Spec{
		Name:        "quit",
		Usage:       "quit",
		Description: "leave the game",
	}
}

func (f *QuitHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, inv *Invocation) error {
		if err := f.world.SetPlayerQuit(inv.Player, true); err != nil {
			return fmt.Errorf("flagging quit for %s: %w", inv.Player, err)
		}
		return nil
	}, nil
}
