package command

import (
	"fmt"

	"github.com/dungeonmerc/go-merc/internal/game"
	"github.com/pixil98/go-errors"
)

type WorldConfig struct {
	StartingRoom int    `json:"starting_room"`
	Motd         string `json:"motd"`
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	if c.StartingRoom < 0 {
		el.Add(fmt.Errorf("starting_room must be a positive room id"))
	}

	return el.Err()
}

func (c *WorldConfig) startingRoom() int {
	if c.StartingRoom == 0 {
		return game.DefaultStartingRoom
	}
	return c.StartingRoom
}
