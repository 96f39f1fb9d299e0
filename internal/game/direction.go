package game

import "strings"

// Direction is one of the six cardinal movement directions.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Up
	Down
)

// Directions holds every direction in stable display order.
var Directions = [...]Direction{North, South, East, West, Up, Down}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection resolves a direction token, accepting full names and
// single-letter abbreviations. Matching is case-insensitive.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	case "up", "u":
		return Up, true
	case "down", "d":
		return Down, true
	default:
		return 0, false
	}
}
