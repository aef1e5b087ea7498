package gameinterface

import (
	"bfbb/game"
	"bfbb/gamevar"
)

// task bundles the typed variables behind one spatula: the pause menu's
// completion counter, and (for spatulas with a world entity) the scene
// entity's flag byte and state word. Entity vars resolve through the scene
// pointer so they are only reachable while the right level is loaded.
type task struct {
	menuCount gamevar.MutVar[int16]
	flags     *gamevar.MutVar[uint8]
	state     *gamevar.MutVar[uint32]
}

func buildTasks(b gamevar.Backend, table AddressTable) [game.NumSpatulas]task {
	var tasks [game.NumSpatulas]task

	for i := range tasks {
		s := game.Spatula(i)
		world, idx := s.MenuCoordinate()

		counterAddr := table.SWorldBase +
			gamevar.Address(world)*menuWorldSize +
			menuTaskOffset +
			gamevar.Address(idx)*menuTaskSize +
			taskCounterOff

		// The SWorld record holds a pointer; the counter itself lives in
		// the pointed-at struct.
		tasks[i].menuCount = gamevar.NewMut(b, gamevar.I16(), counterAddr, taskCounterOff)

		if offset, ok := s.SceneOffset(); ok {
			// Entity table entries are 4-byte pointers.
			entry := gamevar.Address(offset) * 4

			flags := gamevar.NewMut(b, gamevar.U8(),
				table.ScenePtr, sceneEntityTableOff, entry, entityFlagsOff)
			state := gamevar.NewMut(b, gamevar.U32(),
				table.ScenePtr, sceneEntityTableOff, entry, entityStateOff)

			tasks[i].flags = &flags
			tasks[i].state = &state
		}
	}

	return tasks
}
