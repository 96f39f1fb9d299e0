package commands

import (
	"context"

	"github.com/dungeonmerc/go-merc/internal/game"
)

// PlayersHandlerFactory creates handlers that list the other occupants of
// the player's room.
type PlayersHandlerFactory struct {
	world *game.World
	pub   Publisher
}

func NewPlayersHandlerFactory(world *game.World, pub Publisher) *PlayersHandlerFactory {
	return &PlayersHandlerFactory{world: world, pub: pub}
}

func (f *PlayersHandlerFactory) Spec() *Spec {
	return &Spec{
		Name:        "players",
		Usage:       "players",
		Description: "list who else is in the room",
	}
}

func (f *PlayersHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, inv *Invocation) error {
		return f.pub.PublishToPlayer(inv.Player, []byte(f.world.HandlePlayers(inv.Player)))
	}, nil
}
