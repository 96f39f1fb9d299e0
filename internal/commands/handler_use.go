package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/dungeonmerc/go-merc/internal/game"
)

// UseHandlerFactory creates handlers that use a carried item. Consumables
// are spent; everything else stays in the pack.
type UseHandlerFactory struct {
	world *game.World
	pub   Publisher
}

func NewUseHandlerFactory(world *game.World, pub Publisher) *UseHandlerFactory {
	return &UseHandlerFactory{world: world, pub: pub}
}

func (f *UseHandlerFactory) Spec() *Spec {
	return &Spec{
		Name:        "use",
		Usage:       "use <item>",
		Description: "use an item you are carrying",
	}
}

func (f *UseHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, inv *Invocation) error {
		if len(inv.Args) == 0 {
			return NewUserError("Use what?")
		}

		name := strings.Join(inv.Args, " ")
		msg, found, err := f.world.UseItem(inv.Player, name)
		if err != nil {
			return err
		}
		if !found {
			return NewUserError(fmt.Sprintf("You are not carrying %q.", name))
		}
		return f.pub.PublishToPlayer(inv.Player, []byte(msg))
	}, nil
}
