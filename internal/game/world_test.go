package game

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func newTestWorld() *World {
	w := NewWorld(1)

	r1 := NewRoom(1, "First Room", "The first room.")
	r2 := NewRoom(2, "Second Room", "The second room.")
	r1.AddExit(North, 2)
	r2.AddExit(South, 1)
	// Exit to a room that was never added.
	r2.AddExit(East, 99)

	w.AddRoom(r1)
	w.AddRoom(r2)
	return w
}

func TestWorldAddPlayer(t *testing.T) {
	tests := map[string]struct {
		startRoom int
		expRoom   int
	}{
		"known starting room": {startRoom: 2, expRoom: 2},
		"unknown falls back":  {startRoom: 42, expRoom: 1},
		"zero falls back":     {startRoom: 0, expRoom: 1},
		"negative falls back": {startRoom: -3, expRoom: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld()
			err := w.AddPlayer(NewPlayer("Alice", ClassScout), tt.startRoom)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			room := w.PlayerRoom("Alice")
			if room == nil {
				t.Fatal("expected player to have a room")
			}
			testutil.AssertEqual(t, "room id", room.Id, tt.expRoom)
			testutil.AssertEqual(t, "presence", len(w.RoomOccupants(tt.expRoom)), 1)
			testutil.AssertEqual(t, "state", w.GetPlayer("Alice").State, StateInGame)
		})
	}
}

func TestWorldAddPlayerDuplicate(t *testing.T) {
	w := newTestWorld()
	if err := w.AddPlayer(NewPlayer("Alice", ClassScout), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := w.AddPlayer(NewPlayer("alice", ClassTech), 2)
	if err != ErrPlayerExists {
		t.Fatalf("expected ErrPlayerExists, got %v", err)
	}

	// The duplicate add changed nothing.
	testutil.AssertEqual(t, "room 1 presence", len(w.RoomOccupants(1)), 1)
	testutil.AssertEqual(t, "room 2 presence", len(w.RoomOccupants(2)), 0)
	testutil.AssertEqual(t, "class", w.GetPlayer("Alice").Class, ClassScout)
}

func TestWorldRemovePlayer(t *testing.T) {
	w := newTestWorld()
	if err := w.AddPlayer(NewPlayer("Alice", ClassScout), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w.RemovePlayer("Alice")
	testutil.AssertEqual(t, "presence", len(w.RoomOccupants(1)), 0)
	if w.GetPlayer("Alice") != nil {
		t.Error("expected player to be untracked after removal")
	}
	if w.PlayerRoom("Alice") != nil {
		t.Error("expected no location after removal")
	}

	// Removing again is safe.
	w.RemovePlayer("Alice")
	w.RemovePlayer("Nobody")
}

func TestWorldMovePlayer(t *testing.T) {
	tests := map[string]struct {
		player   string
		dir      Direction
		expMoved bool
		expRoom  int
	}{
		"valid move":       {player: "Alice", dir: North, expMoved: true, expRoom: 2},
		"no such exit":     {player: "Alice", dir: West, expMoved: false, expRoom: 1},
		"untracked player": {player: "Ghost", dir: North, expMoved: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld()
			if err := w.AddPlayer(NewPlayer("Alice", ClassScout), 1); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			res := w.MovePlayer(tt.player, tt.dir)
			testutil.AssertEqual(t, "moved", res.Moved, tt.expMoved)

			if tt.player != "Alice" {
				return
			}

			room := w.PlayerRoom("Alice")
			testutil.AssertEqual(t, "room id", room.Id, tt.expRoom)

			// Presence and location stay in step.
			occupants := w.RoomOccupants(tt.expRoom)
			testutil.AssertEqual(t, "presence count", len(occupants), 1)
			testutil.AssertEqual(t, "occupant", occupants[0], "Alice")
		})
	}
}

func TestWorldMovePlayerDanglingExit(t *testing.T) {
	w := newTestWorld()
	if err := w.AddPlayer(NewPlayer("Alice", ClassScout), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Room 2's east exit points at a room that does not exist. The move must
	// fail with the player untouched.
	res := w.MovePlayer("Alice", East)
	testutil.AssertEqual(t, "moved", res.Moved, false)
	testutil.AssertEqual(t, "room id", w.PlayerRoom("Alice").Id, 2)
	testutil.AssertEqual(t, "presence", len(w.RoomOccupants(2)), 1)
}

func TestWorldMoveRoundTrip(t *testing.T) {
	w := newTestWorld()
	if err := w.AddPlayer(NewPlayer("Alice", ClassScout), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "moved north", w.MovePlayer("Alice", North).Moved, true)
	testutil.AssertEqual(t, "moved south", w.MovePlayer("Alice", South).Moved, true)

	testutil.AssertEqual(t, "room id", w.PlayerRoom("Alice").Id, 1)
	testutil.AssertEqual(t, "room 1 presence", len(w.RoomOccupants(1)), 1)
	testutil.AssertEqual(t, "room 2 presence", len(w.RoomOccupants(2)), 0)
}

func TestWorldHandleMove(t *testing.T) {
	tests := map[string]struct {
		direction string
		expMoved  bool
		expMsg    string
	}{
		"valid": {
			direction: "north",
			expMoved:  true,
			expMsg:    "You move north.\n\nSecond Room",
		},
		"abbreviation": {
			direction: "n",
			expMoved:  true,
			expMsg:    "You move north.",
		},
		"no exit": {
			direction: "west",
			expMsg:    "There is no exit in that direction.",
		},
		"not a direction": {
			direction: "sideways",
			expMsg:    "You can't go that way. Try: north, south, east, west, up, down",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld()
			if err := w.AddPlayer(NewPlayer("Alice", ClassScout), 1); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			msg, res := w.HandleMove("Alice", tt.direction)
			testutil.AssertEqual(t, "moved", res.Moved, tt.expMoved)
			if !strings.HasPrefix(msg, tt.expMsg) {
				t.Errorf("expected message starting with %q, got %q", tt.expMsg, msg)
			}
		})
	}
}

func TestWorldHandleMoveUntracked(t *testing.T) {
	w := newTestWorld()
	msg, res := w.HandleMove("Nobody", "north")
	testutil.AssertEqual(t, "moved", res.Moved, false)
	testutil.AssertEqual(t, "message", msg, "You are lost in the void...")
}

func TestWorldHandleLook(t *testing.T) {
	w := newTestWorld()
	if err := w.AddPlayer(NewPlayer("Alice", ClassScout), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	desc := w.HandleLook("Alice")
	if !strings.HasPrefix(desc, "First Room\n") {
		t.Errorf("unexpected look output: %q", desc)
	}

	testutil.AssertEqual(t, "untracked", w.HandleLook("Nobody"), "You are lost in the void...")
}

func TestWorldHandlePlayers(t *testing.T) {
	w := newTestWorld()
	if err := w.AddPlayer(NewPlayer("Alice", ClassScout), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "alone", w.HandlePlayers("Alice"), "You are alone here.")

	if err := w.AddPlayer(NewPlayer("Bob", ClassTech), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "with company", w.HandlePlayers("Alice"), "Players in this room: Bob")

	// A third player elsewhere stays invisible.
	if err := w.AddPlayer(NewPlayer("Carol", ClassGhost), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "other room hidden", w.HandlePlayers("Alice"), "Players in this room: Bob")
}

func TestWorldQuitFlag(t *testing.T) {
	w := newTestWorld()
	if err := w.AddPlayer(NewPlayer("Alice", ClassScout), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "initial", w.PlayerQuit("Alice"), false)

	if err := w.SetPlayerQuit("Alice", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "after set", w.PlayerQuit("Alice"), true)

	if err := w.SetPlayerQuit("Nobody", true); err != ErrPlayerNotFound {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
	testutil.AssertEqual(t, "untracked", w.PlayerQuit("Nobody"), false)
}

func TestWorldItems(t *testing.T) {
	w := newTestWorld()
	if err := w.AddPlayer(NewPlayer("Alice", ClassScout), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.GiveItem("Alice", &Item{Name: "Medkit", Kind: ItemConsumable, Value: 25}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines, ok := w.InventoryList("Alice")
	testutil.AssertEqual(t, "found", ok, true)
	testutil.AssertEqual(t, "line count", len(lines), 1)
	testutil.AssertEqual(t, "line", lines[0], "Medkit (consumable)")

	w.GetPlayer("Alice").TakeDamage(40)

	msg, found, err := w.UseItem("Alice", "medkit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "found", found, true)
	testutil.AssertEqual(t, "message", msg, "You use Medkit and recover 25 health.")
	testutil.AssertEqual(t, "health", w.GetPlayer("Alice").Health, 65)

	// The medkit is spent.
	lines, _ = w.InventoryList("Alice")
	testutil.AssertEqual(t, "line count", len(lines), 0)

	_, found, err = w.UseItem("Alice", "medkit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "missing item", found, false)

	if _, _, err := w.UseItem("Nobody", "medkit"); err != ErrPlayerNotFound {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestWorldTickRegeneratesHealth(t *testing.T) {
	w := newTestWorld()
	wounded := NewPlayer("Alice", ClassScout)
	fighting := NewPlayer("Bob", ClassScout)
	downed := NewPlayer("Carol", ClassScout)

	for _, p := range []*Player{wounded, fighting, downed} {
		if err := w.AddPlayer(p, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	wounded.TakeDamage(10)
	fighting.TakeDamage(10)
	fighting.State = StateCombat
	downed.TakeDamage(200)

	w.Tick()

	testutil.AssertEqual(t, "wounded regenerates", wounded.Health, 71)
	testutil.AssertEqual(t, "combat does not", fighting.Health, 70)
	testutil.AssertEqual(t, "downed does not", downed.Health, 0)

	// Fully healed players stay put.
	w.Tick()
	healthy := NewPlayer("Dave", ClassScout)
	if err := w.AddPlayer(healthy, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Tick()
	testutil.AssertEqual(t, "healthy capped", healthy.Health, healthy.MaxHealth)
}

func TestStartingWorldLayout(t *testing.T) {
	w := NewStartingWorld()

	if err := w.AddPlayer(NewPlayer("Alice", ClassScout), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Walk the hub and back: tavern, blacksmith, then down into the dungeon.
	steps := []struct {
		dir     string
		expRoom string
	}{
		{"north", "The Rusty Sword Tavern"},
		{"south", "Town Square"},
		{"east", "Ironforge Blacksmith"},
		{"west", "Town Square"},
		{"south", "Dungeon Entrance"},
		{"down", "Ancient Chamber"},
	}

	for _, step := range steps {
		msg, res := w.HandleMove("Alice", step.dir)
		if !res.Moved {
			t.Fatalf("expected move %s to succeed: %q", step.dir, msg)
		}
		if !strings.Contains(msg, step.expRoom) {
			t.Fatalf("expected %s to land in %q, got %q", step.dir, step.expRoom, msg)
		}
	}

	// The descent is one-way.
	msg, res := w.HandleMove("Alice", "up")
	testutil.AssertEqual(t, "moved", res.Moved, false)
	testutil.AssertEqual(t, "message", msg, "There is no exit in that direction.")

	desc := w.HandleLook("Alice")
	if !strings.Contains(desc, "There are no visible exits.") {
		t.Errorf("expected the chamber to be a dead end:\n%s", desc)
	}
}
