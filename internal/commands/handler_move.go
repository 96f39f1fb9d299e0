package commands

import (
	"context"

	"github.com/dungeonmerc/go-merc/internal/game"
)

const (
	leaveTemplate  = `{{ .Name }} leaves {{ .Direction }}.`
	arriveTemplate = `{{ .Name }} arrives.`
)

// MoveHandlerFactory creates handlers that move players between rooms and
// announce the movement to both rooms.
type MoveHandlerFactory struct {
	world *game.World
	pub   Publisher
}

func NewMoveHandlerFactory(world *game.World, pub Publisher) *MoveHandlerFactory {
	return &MoveHandlerFactory{world: world, pub: pub}
}

func (f *MoveHandlerFactory) Spec() *Spec {
	return &Spec{
		Name:        "move",
		Aliases:     []string{"go"},
		Usage:       "move <direction>",
		Description: "move through an exit (or just type the direction)",
	}
}

func (f *MoveHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, inv *Invocation) error {
		if len(inv.Args) == 0 {
			return NewUserError("Move where? Try: north, south, east, west, up, down")
		}

		direction := inv.Args[0]
		msg, res := f.world.HandleMove(inv.Player, direction)
		if err := f.pub.PublishToPlayer(inv.Player, []byte(msg)); err != nil {
			return err
		}
		if !res.Moved {
			return nil
		}

		f.announce(inv, direction, res)
		return nil
	}, nil
}

// announce tells the departed room and the arrival room about the move.
// Announcement delivery is best effort; the move itself already happened.
func (f *MoveHandlerFactory) announce(inv *Invocation, direction string, res game.MoveResult) {
	stats, ok := f.world.PlayerStats(inv.Player)
	if !ok {
		return
	}

	dir, _ := game.ParseDirection(direction)
	data := struct {
		Name      string
		Direction string
	}{Name: stats.Name, Direction: dir.String()}

	if left, err := ExpandTemplate(leaveTemplate, data); err == nil {
		_ = f.pub.PublishToRoom(res.From, []string{inv.Player}, []byte(left))
	}
	if arrived, err := ExpandTemplate(arriveTemplate, data); err == nil {
		_ = f.pub.PublishToRoom(res.To, []string{inv.Player}, []byte(arrived))
	}
}
