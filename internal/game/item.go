package game

import (
	"fmt"
	"strings"
)

// ItemKind is the closed set of item behaviors. Using behavior is dispatched
// by kind rather than per-item virtual hooks; the set is small and fixed.
type ItemKind int

const (
	ItemWeapon ItemKind = iota
	ItemArmor
	ItemConsumable
	ItemKey
	ItemTreasure
)

func (k ItemKind) String() string {
	switch k {
	case ItemWeapon:
		return "weapon"
	case ItemArmor:
		return "armor"
	case ItemConsumable:
		return "consumable"
	case ItemKey:
		return "key"
	case ItemTreasure:
		return "treasure"
	default:
		return "unknown"
	}
}

// Item is something a player can carry.
type Item struct {
	Name  string
	Kind  ItemKind
	Value int
}

// MatchName reports whether name matches this item case-insensitively.
func (i *Item) MatchName(name string) bool {
	return strings.EqualFold(i.Name, name)
}

// Describe returns a short display line for the item.
func (i *Item) Describe() string {
	return fmt.Sprintf("%s (%s)", i.Name, i.Kind)
}

// Use applies the item's effect to the player and returns the message to
// show them. Only consumables do anything today; a consumable heals its
// value and is spent by the caller.
func (i *Item) Use(p *Player) (string, bool) {
	switch i.Kind {
	case ItemConsumable:
		p.Heal(i.Value)
		return fmt.Sprintf("You use %s and recover %d health.", i.Name, i.Value), true
	case ItemWeapon, ItemArmor:
		return fmt.Sprintf("You brandish %s, to little effect.", i.Name), false
	case ItemKey:
		return "There is nothing here to unlock.", false
	default:
		return fmt.Sprintf("%s glints, but does nothing.", i.Name), false
	}
}
