package commands

import (
	"context"
	"strings"

	"github.com/dungeonmerc/go-merc/internal/game"
)

// InventoryHandlerFactory creates handlers that list carried items.
type InventoryHandlerFactory struct {
	world *game.World
	pub   Publisher
}

func NewInventoryHandlerFactory(world *game.World, pub Publisher) *InventoryHandlerFactory {
	return &InventoryHandlerFactory{world: world, pub: pub}
}

func (f *InventoryHandlerFactory) Spec() *Spec {
	return &Spec{
		Name:        "inventory",
		Aliases:     []string{"i", "inv"},
		Usage:       "inventory",
		Description: "list what you are carrying",
	}
}

func (f *InventoryHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, inv *Invocation) error {
		items, ok := f.world.InventoryList(inv.Player)
		if !ok {
			return NewUserError("You are lost in the void...")
		}

		if len(items) == 0 {
			return f.pub.PublishToPlayer(inv.Player, []byte("You are carrying nothing."))
		}

		lines := []string{"You are carrying:"}
		for _, item := range items {
			lines = append(lines, "  "+item)
		}
		return f.pub.PublishToPlayer(inv.Player, []byte(strings.Join(lines, "\n")))
	}, nil
}
