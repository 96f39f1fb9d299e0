package game

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestRoomExits(t *testing.T) {
	r := NewRoom(1, "Test Room", "A room for testing.")
	r.AddExit(North, 2)
	r.AddExit(Down, 5)

	testutil.AssertEqual(t, "has north", r.HasExit(North), true)
	testutil.AssertEqual(t, "has south", r.HasExit(South), false)
	testutil.AssertEqual(t, "north target", r.ExitRoomId(North), 2)
	testutil.AssertEqual(t, "missing target", r.ExitRoomId(South), -1)
}

func TestRoomAvailableExitsOrder(t *testing.T) {
	r := NewRoom(1, "Test Room", "A room for testing.")
	// Added out of display order on purpose.
	r.AddExit(Down, 5)
	r.AddExit(North, 2)
	r.AddExit(East, 3)

	exits := r.AvailableExits()
	testutil.AssertEqual(t, "exit count", len(exits), 3)
	testutil.AssertEqual(t, "first", exits[0], North)
	testutil.AssertEqual(t, "second", exits[1], East)
	testutil.AssertEqual(t, "third", exits[2], Down)
}

func TestRoomPresence(t *testing.T) {
	r := NewRoom(1, "Test Room", "A room for testing.")

	r.addPlayer("Alice")
	r.addPlayer("Bob")
	r.addPlayer("Alice") // duplicate add changes nothing

	players := r.Players()
	testutil.AssertEqual(t, "player count", len(players), 2)
	testutil.AssertEqual(t, "first", players[0], "Alice")
	testutil.AssertEqual(t, "second", players[1], "Bob")

	r.removePlayer("Alice")
	r.removePlayer("Alice") // second removal is a no-op

	players = r.Players()
	testutil.AssertEqual(t, "player count", len(players), 1)
	testutil.AssertEqual(t, "remaining", players[0], "Bob")
}

func TestRoomFullDescription(t *testing.T) {
	tests := map[string]struct {
		setup       func(r *Room)
		expContains []string
		expAbsent   []string
	}{
		"empty dead end": {
			setup: func(r *Room) {},
			expContains: []string{
				"Test Room\n",
				"A room for testing.\n",
				"There are no visible exits.",
			},
			expAbsent: []string{"Players here:", "Exits:"},
		},
		"exits listed in order": {
			setup: func(r *Room) {
				r.AddExit(Down, 5)
				r.AddExit(North, 2)
			},
			expContains: []string{"Exits: north, down"},
		},
		"players listed": {
			setup: func(r *Room) {
				r.addPlayer("Alice")
				r.addPlayer("Bob")
			},
			expContains: []string{"Players here: Alice, Bob"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewRoom(1, "Test Room", "A room for testing.")
			tt.setup(r)
			desc := r.FullDescription()

			for _, want := range tt.expContains {
				if !strings.Contains(desc, want) {
					t.Errorf("description missing %q:\n%s", want, desc)
				}
			}
			for _, unwanted := range tt.expAbsent {
				if strings.Contains(desc, unwanted) {
					t.Errorf("description unexpectedly contains %q:\n%s", unwanted, desc)
				}
			}
		})
	}
}
