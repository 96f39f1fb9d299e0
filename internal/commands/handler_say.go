package commands

import (
	"context"
	"strings"

	"github.com/dungeonmerc/go-merc/internal/game"
)

const (
	sayToRoomTemplate = `{{ .Name }} says, "{{ .Text }}"`
	sayEchoTemplate   = `You say, "{{ .Text }}"`
)

// SayHandlerFactory creates handlers for room-scoped chat.
type SayHandlerFactory struct {
	world *game.World
	pub   Publisher
}

func NewSayHandlerFactory(world *game.World, pub Publisher) *SayHandlerFactory {
	return &SayHandlerFactory{world: world, pub: pub}
}

func (f *SayHandlerFactory) Spec() *Spec {
	return &Spec{
		Name:        "say",
		Aliases:     []string{"'"},
		Usage:       "say <message>",
		Description: "speak to everyone in the room",
	}
}

func (f *SayHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, inv *Invocation) error {
		if len(inv.Args) == 0 {
			return NewUserError("Say what?")
		}

		room := f.world.PlayerRoom(inv.Player)
		if room == nil {
			return NewUserError("You are lost in the void...")
		}

		stats, ok := f.world.PlayerStats(inv.Player)
		if !ok {
			return NewUserError("You are lost in the void...")
		}

		data := struct {
			Name string
			Text string
		}{Name: stats.Name, Text: strings.Join(inv.Args, " ")}

		echo, err := ExpandTemplate(sayEchoTemplate, data)
		if err != nil {
			return err
		}
		heard, err := ExpandTemplate(sayToRoomTemplate, data)
		if err != nil {
			return err
		}

		if err := f.pub.PublishToPlayer(inv.Player, []byte(echo)); err != nil {
			return err
		}
		return f.pub.PublishToRoom(room.Id, []string{inv.Player}, []byte(heard))
	}, nil
}
