package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dungeonmerc/go-merc/internal/game"
)

// WhoHandlerFactory creates handlers that list everyone online.
type WhoHandlerFactory struct {
	world *game.World
	pub   Publisher
}

func NewWhoHandlerFactory(world *game.World, pub Publisher) *WhoHandlerFactory {
	return &WhoHandlerFactory{world: world, pub: pub}
}

func (f *WhoHandlerFactory) Spec() *Spec {
	return &Spec{
		Name:        "who",
		Usage:       "who",
		Description: "list players online",
	}
}

func (f *WhoHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, inv *Invocation) error {
		var lines []string
		f.world.ForEachPlayer(func(_ string, p *game.Player) {
			lines = append(lines, fmt.Sprintf("[%2d %s] %s", p.Level, p.Class, p.Name))
		})
		sort.Strings(lines)

		out := "Players Online:\n" + strings.Join(lines, "\n")
		return f.pub.PublishToPlayer(inv.Player, []byte(out))
	}, nil
}
