package gameinterface

import "bfbb/gamevar"

// AddressTable carries the well-known addresses of every game variable the
// interface exposes, for one specific build of the game. It is immutable
// configuration passed in at construction, keeping per-build knowledge out
// of the operation logic.
type AddressTable struct {
	// Loading is a u32 that is non-zero while a loading screen is active.
	Loading gamevar.Address

	// GameState, GameMode and GameOstrich are single-byte engine state
	// machines.
	GameState   gamevar.Address
	GameMode    gamevar.Address
	GameOstrich gamevar.Address

	// Powers is the base of the per-power unlock flags, one byte each.
	Powers gamevar.Address

	// ScenePtr points at the live scene structure; the scene id is its
	// first field and the entity array hangs off it.
	ScenePtr gamevar.Address

	// SpatulaCount is the player's u32 spatula total.
	SpatulaCount gamevar.Address

	// SWorldBase is the base of the pause menu's per-world task records.
	SWorldBase gamevar.Address

	// LabDoor is the u32 spatula requirement checked by the Chum Bucket
	// lab door.
	LabDoor gamevar.Address
}

// Pause-menu record layout and scene-structure offsets for the Gamecube
// build. These describe struct shapes rather than locations, so they are
// constants rather than AddressTable fields.
const (
	menuWorldSize  = 0x24C
	menuTaskSize   = 0x48
	menuTaskOffset = 0xC
	taskCounterOff = 0x14

	sceneEntityTableOff = 0x78
	entityFlagsOff      = 0x18
	entityStateOff      = 0x16C
)

// GCN is the address table for the NTSC-U Gamecube build (GQPE78).
var GCN = AddressTable{
	Loading:      0x803CB7B0,
	GameState:    0x803CAB43,
	GameMode:     0x803CB8AB,
	GameOstrich:  0x803CB8AF,
	Powers:       0x803C0F17,
	ScenePtr:     0x803C2518,
	SpatulaCount: 0x803C205C,
	SWorldBase:   0x802F63C8,
	LabDoor:      0x804F6CB8,
}
