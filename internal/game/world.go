package game

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultStartingRoom is where players land when their requested starting
// room does not exist.
const DefaultStartingRoom = 1

// World is the single authority for player location. The location index maps
// each player name to exactly one room id; room presence lists are a derived
// view kept consistent under the same lock. All mutation is serialized by
// one mutex, and reads for display take a consistent snapshot under it.
type World struct {
	mu        sync.RWMutex
	rooms     map[int]*Room
	players   map[string]*Player
	locations map[string]int

	defaultRoom int
}

// NewWorld creates an empty world. Rooms must be added before the world is
// exposed to connections; the graph is immutable afterwards.
func NewWorld(defaultRoom int) *World {
	if defaultRoom == 0 {
		defaultRoom = DefaultStartingRoom
	}
	return &World{
		rooms:       make(map[int]*Room),
		players:     make(map[string]*Player),
		locations:   make(map[string]int),
		defaultRoom: defaultRoom,
	}
}

// AddRoom registers a room by its id, replacing any existing room with the
// same id.
func (w *World) AddRoom(room *Room) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rooms[room.Id] = room
}

// GetRoom returns the room with the given id, or nil.
func (w *World) GetRoom(id int) *Room {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.rooms[id]
}

// GetPlayer returns the tracked player with the given name, or nil.
func (w *World) GetPlayer(name string) *Player {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.players[key(name)]
}

// AddPlayer registers the player in the location index and the starting
// room's presence list. An unknown starting room silently falls back to the
// default room. Adding a name that is already tracked changes nothing and
// returns ErrPlayerExists, so presence entries are never duplicated.
func (w *World) AddPlayer(p *Player, startingRoomId int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := key(p.Name)
	if _, exists := w.players[id]; exists {
		return ErrPlayerExists
	}

	if _, ok := w.rooms[startingRoomId]; !ok {
		startingRoomId = w.defaultRoom
	}

	w.players[id] = p
	w.locations[id] = startingRoomId
	p.State = StateInGame
	if room := w.rooms[startingRoomId]; room != nil {
		room.addPlayer(p.Name)
	}
	return nil
}

// RemovePlayer evicts the player from its room's presence list and from the
// location index. Removing an untracked name is a no-op, so eviction is safe
// to signal more than once.
func (w *World) RemovePlayer(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := key(name)
	p, exists := w.players[id]
	if !exists {
		return
	}

	if room := w.rooms[w.locations[id]]; room != nil {
		room.removePlayer(p.Name)
	}
	delete(w.locations, id)
	delete(w.players, id)
}

// MoveResult reports the outcome of a movement attempt.
type MoveResult struct {
	Moved bool
	From  int
	To    int
}

// MovePlayer attempts to move the player through the exit in dir. The
// transition is atomic under the world lock: presence and the location index
// change together or not at all. It fails when the player has no location,
// the room has no such exit, or the exit's target does not resolve.
func (w *World) MovePlayer(name string, dir Direction) MoveResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.movePlayerLocked(name, dir)
}

func (w *World) movePlayerLocked(name string, dir Direction) MoveResult {
	id := key(name)
	fromId, ok := w.locations[id]
	if !ok {
		return MoveResult{}
	}

	from := w.rooms[fromId]
	if from == nil || !from.HasExit(dir) {
		return MoveResult{From: fromId}
	}

	toId := from.ExitRoomId(dir)
	to := w.rooms[toId]
	if to == nil {
		return MoveResult{From: fromId}
	}

	from.removePlayer(w.players[id].Name)
	w.locations[id] = toId
	to.addPlayer(w.players[id].Name)

	return MoveResult{Moved: true, From: fromId, To: toId}
}

// PlayerRoom returns the room the player is in, or nil if untracked.
func (w *World) PlayerRoom(name string) *Room {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.playerRoomLocked(name)
}

func (w *World) playerRoomLocked(name string) *Room {
	id, ok := w.locations[key(name)]
	if !ok {
		return nil
	}
	return w.rooms[id]
}

// RoomOccupants returns a snapshot of the names present in the room.
func (w *World) RoomOccupants(roomId int) []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	room := w.rooms[roomId]
	if room == nil {
		return nil
	}
	return room.Players()
}

// ForEachPlayer calls fn for each tracked player while holding the lock.
func (w *World) ForEachPlayer(fn func(name string, p *Player)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, p := range w.players {
		fn(id, p)
	}
}

// SetPlayerQuit flags the player as quitting; the session sweep acts on it.
func (w *World) SetPlayerQuit(name string, quit bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, exists := w.players[key(name)]
	if !exists {
		return ErrPlayerNotFound
	}
	p.Quit = quit
	return nil
}

// PlayerQuit reports whether the player has flagged a quit.
func (w *World) PlayerQuit(name string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	p := w.players[key(name)]
	return p != nil && p.Quit
}

// GiveItem puts an item in the player's inventory under the world lock.
// A full pack rejects the item with ErrInventoryFull and no other effect.
func (w *World) GiveItem(name string, item *Item) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, ok := w.players[key(name)]
	if !ok {
		return ErrPlayerNotFound
	}
	return p.AddItem(item)
}

// InventoryList returns display lines for the player's carried items.
func (w *World) InventoryList(name string) ([]string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p, ok := w.players[key(name)]
	if !ok {
		return nil, false
	}
	lines := make([]string, 0, len(p.Inventory))
	for _, item := range p.Inventory {
		lines = append(lines, item.Describe())
	}
	return lines, true
}

// UseItem uses a carried item, spending it if its effect consumes it.
// The second return reports whether the player carried such an item.
func (w *World) UseItem(name, itemName string) (string, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, ok := w.players[key(name)]
	if !ok {
		return "", false, ErrPlayerNotFound
	}

	for _, item := range p.Inventory {
		if item.MatchName(itemName) {
			msg, consumed := item.Use(p)
			if consumed {
				p.RemoveItem(item.Name)
			}
			return msg, true, nil
		}
	}
	return "", false, nil
}

// Stats is a point-in-time copy of a player's visible numbers, safe to read
// without holding the world lock.
type Stats struct {
	Name       string
	Class      Class
	Level      int
	Health     int
	MaxHealth  int
	Experience int
	ExpToNext  int
}

// PlayerStats snapshots the player's stats under the lock.
func (w *World) PlayerStats(name string) (Stats, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p, ok := w.players[key(name)]
	if !ok {
		return Stats{}, false
	}
	return Stats{
		Name:       p.Name,
		Class:      p.Class,
		Level:      p.Level,
		Health:     p.Health,
		MaxHealth:  p.MaxHealth,
		Experience: p.Experience,
		ExpToNext:  p.ExpToNext,
	}, true
}

// Tick regenerates one health for each wounded player who is out of combat.
func (w *World) Tick() {
	w.ForEachPlayer(func(_ string, p *Player) {
		if p.State != StateCombat && p.Health > 0 && p.Health < p.MaxHealth {
			p.Heal(1)
		}
	})
}

// HandleLook renders the player's current room.
func (w *World) HandleLook(name string) string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	room := w.playerRoomLocked(name)
	if room == nil {
		return "You are lost in the void..."
	}
	return room.FullDescription()
}

// HandleMove parses the direction token, attempts the move, and renders the
// outcome. On success the message confirms the step and shows the new room.
func (w *World) HandleMove(name, direction string) (string, MoveResult) {
	dir, ok := ParseDirection(direction)
	if !ok {
		return "You can't go that way. Try: north, south, east, west, up, down", MoveResult{}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	room := w.playerRoomLocked(name)
	if room == nil {
		return "You are lost in the void...", MoveResult{}
	}

	if !room.HasExit(dir) {
		return "There is no exit in that direction.", MoveResult{From: room.Id}
	}

	res := w.movePlayerLocked(name, dir)
	if !res.Moved {
		return "You can't go that way.", res
	}

	return fmt.Sprintf("You move %s.\n\n%s", dir, w.rooms[res.To].FullDescription()), res
}

// HandlePlayers lists the occupants of the player's current room.
func (w *World) HandlePlayers(name string) string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	room := w.playerRoomLocked(name)
	if room == nil {
		return "You are lost in the void..."
	}

	var others []string
	for _, p := range room.Players() {
		if !strings.EqualFold(p, name) {
			others = append(others, p)
		}
	}
	if len(others) == 0 {
		return "You are alone here."
	}
	return "Players in this room: " + strings.Join(others, ", ")
}

func key(name string) string {
	return strings.ToLower(name)
}
