package game

// NewStartingWorld builds the reference starting area: the Town Square hub
// linked to a tavern, a blacksmith, and the dungeon entrance, with a one-way
// descent into the first chamber below.
func NewStartingWorld() *World {
	w := NewWorld(DefaultStartingRoom)

	townSquare := NewRoom(1, "Town Square",
		"You stand in the bustling town square of Dungeon Merc. The cobblestone streets are worn smooth by countless adventurers who have passed through here. A fountain bubbles in the center, and you can see various shops and inns lining the square.")
	tavern := NewRoom(2, "The Rusty Sword Tavern",
		"The warm glow of candlelight fills this cozy tavern. The air is thick with the smell of ale and roasted meat. Adventurers gather here to share tales of their exploits and plan their next dungeon dive.")
	blacksmith := NewRoom(3, "Ironforge Blacksmith",
		"The clang of hammer on anvil echoes through this workshop. The blacksmith's forge glows red-hot, and weapons and armor of all kinds hang from the walls. The air is thick with the smell of burning coal and hot metal.")
	dungeonEntrance := NewRoom(4, "Dungeon Entrance",
		"A dark opening in the earth yawns before you. Ancient stone steps lead down into the depths, and a cold breeze carries the scent of damp earth and mystery from below. This is where the real adventure begins.")
	dungeonChamber := NewRoom(5, "Ancient Chamber",
		"You find yourself in a large, circular chamber carved from solid stone. Torches flicker on the walls, casting dancing shadows. Ancient runes are carved into the walls, telling tales of forgotten heroes and lost treasures.")

	townSquare.AddExit(North, tavern.Id)
	townSquare.AddExit(East, blacksmith.Id)
	townSquare.AddExit(South, dungeonEntrance.Id)

	tavern.AddExit(South, townSquare.Id)

	blacksmith.AddExit(West, townSquare.Id)

	dungeonEntrance.AddExit(North, townSquare.Id)
	// The descent is one-way; the chamber below has no visible exits.
	dungeonEntrance.AddExit(Down, dungeonChamber.Id)

	for _, r := range []*Room{townSquare, tavern, blacksmith, dungeonEntrance, dungeonChamber} {
		w.AddRoom(r)
	}

	return w
}
