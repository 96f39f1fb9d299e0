package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// RoomSpec is the on-disk form of a room, loaded from the JSON asset store.
// Exit targets are not cross-validated at load time; movement validates
// them when traversed.
type RoomSpec struct {
	Id          int            `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Exits       map[string]int `json:"exits,omitempty"` // direction -> room id
}

// Validate satisfies storage.ValidatingSpec.
func (r *RoomSpec) Validate() error {
	el := errors.NewErrorList()

	if r.Id <= 0 {
		el.Add(fmt.Errorf("room id must be a positive integer"))
	}
	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	for dir := range r.Exits {
		if _, ok := ParseDirection(dir); !ok {
			el.Add(fmt.Errorf("exit %q: unknown direction", dir))
		}
	}

	return el.Err()
}

// Build converts the spec into a live room.
func (r *RoomSpec) Build() *Room {
	room := NewRoom(r.Id, r.Name, r.Description)
	for dir, target := range r.Exits {
		if d, ok := ParseDirection(dir); ok {
			room.AddExit(d, target)
		}
	}
	return room
}

// BuildWorld assembles a world from room specs. Duplicate room ids are an
// error; dangling exit targets are not, movement validates them when
// traversed.
func BuildWorld(specs map[string]*RoomSpec, defaultRoom int) (*World, error) {
	w := NewWorld(defaultRoom)

	seen := make(map[int]string, len(specs))
	for id, spec := range specs {
		if prev, dup := seen[spec.Id]; dup {
			return nil, fmt.Errorf("room id %d used by both %q and %q", spec.Id, prev, id)
		}
		seen[spec.Id] = id
		w.AddRoom(spec.Build())
	}

	return w, nil
}
