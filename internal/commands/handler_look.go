package commands

import (
	"context"

	"github.com/dungeonmerc/go-merc/internal/game"
)

// LookHandlerFactory creates handlers that display the current room.
type LookHandlerFactory struct {
	world *game.World
	pub   Publisher
}

func NewLookHandlerFactory(world *game.World, pub Publisher) *LookHandlerFactory {
	return &LookHandlerFactory{world: world, pub: pub}
}

func (f *LookHandlerFactory) Spec() *Spec {
	return &Spec{
		Name:        "look",
		Aliases:     []string{"l"},
		Usage:       "look",
		Description: "describe your surroundings",
	}
}

func (f *LookHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, inv *Invocation) error {
		return f.pub.PublishToPlayer(inv.Player, []byte(f.world.HandleLook(inv.Player)))
	}, nil
}
