package game

import (
	"fmt"
	"strings"
)

// Room is one location in the world graph. Exits are directed edges keyed by
// direction; the target id is not validated when the exit is added, so rooms
// may be linked before the whole graph exists. Traversal validates instead.
//
// The presence list holds only player names. It is a derived view of the
// world's location index and must only be mutated through World methods,
// which hold the world lock.
type Room struct {
	Id          int
	Name        string
	Description string

	exits   map[Direction]int
	players []string
}

// NewRoom creates a room with no exits and nobody present.
func NewRoom(id int, name, description string) *Room {
	return &Room{
		Id:          id,
		Name:        name,
		Description: description,
		exits:       make(map[Direction]int),
	}
}

// AddExit links dir to the room with the given id, replacing any
// existing exit in that direction.
func (r *Room) AddExit(dir Direction, targetId int) {
	r.exits[dir] = targetId
}

// HasExit reports whether the room has an exit in dir.
func (r *Room) HasExit(dir Direction) bool {
	_, ok := r.exits[dir]
	return ok
}

// ExitRoomId returns the target room id for dir, or -1 if there is no exit.
func (r *Room) ExitRoomId(dir Direction) int {
	if id, ok := r.exits[dir]; ok {
		return id
	}
	return -1
}

// AvailableExits returns the configured exit directions in stable
// enumeration order.
func (r *Room) AvailableExits() []Direction {
	var out []Direction
	for _, d := range Directions {
		if _, ok := r.exits[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Players returns the names present, in arrival order.
func (r *Room) Players() []string {
	out := make([]string, len(r.players))
	copy(out, r.players)
	return out
}

// addPlayer appends name to the presence list if not already present.
func (r *Room) addPlayer(name string) {
	for _, p := range r.players {
		if p == name {
			return
		}
	}
	r.players = append(r.players, name)
}

// removePlayer drops name from the presence list. Absent names are a no-op.
func (r *Room) removePlayer(name string) {
	for i, p := range r.players {
		if p == name {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return
		}
	}
}

// FullDescription renders the room for a look: name line, description line,
// the players present (if any), and the exit list. The exact framing is a
// contract for screen-scraping clients.
func (r *Room) FullDescription() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	sb.WriteString("\n")
	sb.WriteString(r.Description)
	sb.WriteString("\n")

	if len(r.players) > 0 {
		sb.WriteString("\nPlayers here: ")
		sb.WriteString(strings.Join(r.players, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString(r.ExitsList())
	return sb.String()
}

// ExitsList renders the exit line, or the no-exit line for a dead end.
func (r *Room) ExitsList() string {
	exits := r.AvailableExits()
	if len(exits) == 0 {
		return "\nThere are no visible exits."
	}

	names := make([]string, len(exits))
	for i, d := range exits {
		names[i] = d.String()
	}
	return fmt.Sprintf("\nExits: %s", strings.Join(names, ", "))
}
