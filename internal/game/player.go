package game

// MaxInventorySize caps how many items a player can carry.
const MaxInventorySize = 50

// LifecycleState tracks where a player is in the game lifecycle.
type LifecycleState int

const (
	StateLobby LifecycleState = iota
	StateInGame
	StateCombat
	StateMenu
)

func (s LifecycleState) String() string {
	switch s {
	case StateLobby:
		return "lobby"
	case StateInGame:
		return "in_game"
	case StateCombat:
		return "combat"
	case StateMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Player holds the per-identity mutable state for one connected player.
// It carries no transport handle; sessions reference players by name and the
// world owns their lifetime. Mutation of a player that is registered in a
// World must go through the World so it is covered by the world lock.
type Player struct {
	Name  string
	Class Class

	Health    int
	MaxHealth int

	Level      int
	Experience int
	ExpToNext  int

	State     LifecycleState
	Inventory []*Item

	// Quit is set by the quit command and checked by the session sweep.
	Quit bool
}

// NewPlayer creates a level 1 player of the given class at full health.
func NewPlayer(name string, class Class) *Player {
	hp := class.BaseHealth()
	return &Player{
		Name:      name,
		Class:     class,
		Health:    hp,
		MaxHealth: hp,
		Level:     1,
		ExpToNext: 100,
		State:     StateLobby,
	}
}

// TakeDamage reduces health by amount, clamped at zero.
// Amounts <= 0 are ignored.
func (p *Player) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal restores health by amount, clamped at max health.
// Amounts <= 0 are ignored.
func (p *Player) Heal(amount int) {
	if amount <= 0 {
		return
	}
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// IsAlive reports whether the player has health remaining.
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// GainExperience awards experience and applies however many level-ups the
// new total crosses. Amounts <= 0 are ignored.
func (p *Player) GainExperience(amount int) {
	if amount <= 0 {
		return
	}
	p.Experience += amount
	for p.Experience >= p.ExpToNext {
		p.levelUp()
	}
}

// levelUp advances one level: the threshold is consumed from accumulated
// experience, max health grows by 10, and the player is fully healed.
func (p *Player) levelUp() {
	p.Level++
	p.Experience -= p.ExpToNext
	p.MaxHealth += 10
	p.Health = p.MaxHealth
	p.ExpToNext = p.Level * 100
}

// AddItem places an item in the player's inventory.
// Returns ErrInventoryFull without side effects when the cap is reached.
func (p *Player) AddItem(item *Item) error {
	if len(p.Inventory) >= MaxInventorySize {
		return ErrInventoryFull
	}
	p.Inventory = append(p.Inventory, item)
	return nil
}

// RemoveItem removes and returns the first carried item matching name
// case-insensitively. Returns nil if the player carries no such item.
func (p *Player) RemoveItem(name string) *Item {
	for i, item := range p.Inventory {
		if item.MatchName(name) {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return item
		}
	}
	return nil
}
