package game

import "strings"

// Class determines a player's starting health pool.
type Class int

const (
	ClassScout Class = iota
	ClassEnforcer
	ClassTech
	ClassGhost
)

// Classes holds every playable class, in selection order.
var Classes = [...]Class{ClassScout, ClassEnforcer, ClassTech, ClassGhost}

func (c Class) String() string {
	switch c {
	case ClassScout:
		return "Scout"
	case ClassEnforcer:
		return "Enforcer"
	case ClassTech:
		return "Tech"
	case ClassGhost:
		return "Ghost"
	default:
		return "Unknown"
	}
}

// BaseHealth is the health pool a level 1 character of this class starts
// with.
func (c Class) BaseHealth() int {
	switch c {
	case ClassScout:
		return 80
	case ClassEnforcer:
		return 120
	case ClassTech:
		return 90
	case ClassGhost:
		return 85
	default:
		return 80
	}
}

// Selector renders the class as a selection option.
func (c Class) Selector() string {
	return c.String()
}

// ParseClass resolves a class name case-insensitively.
func ParseClass(s string) (Class, bool) {
	for _, c := range Classes {
		if strings.EqualFold(s, c.String()) {
			return c, true
		}
	}
	return 0, false
}
