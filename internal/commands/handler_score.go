package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/dungeonmerc/go-merc/internal/game"
)

// ScoreHandlerFactory creates handlers that show the player's own stats.
type ScoreHandlerFactory struct {
	world *game.World
	pub   Publisher
}

func NewScoreHandlerFactory(world *game.World, pub Publisher) *ScoreHandlerFactory {
	return &ScoreHandlerFactory{world: world, pub: pub}
}

func (f *ScoreHandlerFactory) Spec() *Spec {
	return &Spec{
		Name:        "score",
		Aliases:     []string{"status"},
		Usage:       "score",
		Description: "show your character sheet",
	}
}

func (f *ScoreHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, inv *Invocation) error {
		stats, ok := f.world.PlayerStats(inv.Player)
		if !ok {
			return NewUserError("You are lost in the void...")
		}

		lines := []string{
			fmt.Sprintf("%s the %s", stats.Name, stats.Class),
			fmt.Sprintf("Level:      %d", stats.Level),
			fmt.Sprintf("Health:     %d/%d", stats.Health, stats.MaxHealth),
			fmt.Sprintf("Experience: %d (%d to next level)", stats.Experience, stats.ExpToNext-stats.Experience),
		}
		return f.pub.PublishToPlayer(inv.Player, []byte(strings.Join(lines, "\n")))
	}, nil
}
