// Package gameinterface exposes domain operations against a running
// instance of the game, built entirely from typed gamevar accesses over an
// injected backend.
//
// An Interface performs no buffering or batching: a domain operation may
// incur several independent backend round-trips and is not transactional
// across them. The target process mutates its own memory concurrently, so
// read-then-write operations such as UnlockTask carry a narrow, documented
// race window; the guarantee is best-effort, not linearizable.
package gameinterface

import (
	"fmt"

	"bfbb/game"
	"bfbb/gamevar"
)

// Interface is the domain façade over one backend instance. It exclusively
// owns its backend; the typed variables it holds borrow that backend and
// must not be used past the Interface's lifetime.
//
// An Interface is not safe for concurrent use by multiple goroutines
// without external synchronization.
type Interface struct {
	backend gamevar.Backend

	loading      gamevar.Var[uint32]
	gameState    gamevar.MutVar[game.GameState]
	gameMode     gamevar.MutVar[game.GameMode]
	gameOstrich  gamevar.Var[game.GameOstrich]
	powers       [game.NumPowers]gamevar.MutVar[uint8]
	sceneID      gamevar.Var[[4]byte]
	spatulaCount gamevar.MutVar[uint32]
	labDoorCost  gamevar.MutVar[uint32]
	tasks        [game.NumSpatulas]task
}

// New binds an Interface to a backend using the given address table. The
// table is copied; the backend is owned by the returned Interface.
func New(b gamevar.Backend, table AddressTable) *Interface {
	iface := &Interface{
		backend:      b,
		loading:      gamevar.New(b, gamevar.U32(), table.Loading),
		gameState:    gamevar.NewMut(b, gamevar.Enum(game.StateExit), table.GameState),
		gameMode:     gamevar.NewMut(b, gamevar.Enum(game.ModeGame), table.GameMode),
		gameOstrich:  gamevar.New(b, gamevar.Enum(game.OstrichInScene), table.GameOstrich),
		sceneID:      gamevar.New(b, gamevar.Bytes4(), table.ScenePtr, 0),
		spatulaCount: gamevar.NewMut(b, gamevar.U32(), table.SpatulaCount),
		labDoorCost:  gamevar.NewMut(b, gamevar.U32(), table.LabDoor),
		tasks:        buildTasks(b, table),
	}
	for p := 0; p < game.NumPowers; p++ {
		iface.powers[p] = gamevar.NewMut(b, gamevar.U8(), table.Powers+gamevar.Address(p))
	}
	return iface
}

// IsLoading reports whether the game is currently in a loading screen.
func (i *Interface) IsLoading() (bool, error) {
	v, err := i.loading.Get()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// GameMode returns the engine's current macro mode.
func (i *Interface) GameMode() (game.GameMode, error) {
	return i.gameMode.Get()
}

// SetGameMode writes a new macro mode.
func (i *Interface) SetGameMode(mode game.GameMode) error {
	return i.gameMode.Set(mode)
}

// GameState returns the current gameplay state.
func (i *Interface) GameState() (game.GameState, error) {
	return i.gameState.Get()
}

// SetGameState writes a new gameplay state.
func (i *Interface) SetGameState(state game.GameState) error {
	return i.gameState.Set(state)
}

// GameOstrich reports whether a scene is active, loading, or playing a
// movie.
func (i *Interface) GameOstrich() (game.GameOstrich, error) {
	return i.gameOstrich.Get()
}

// StartNewGame starts a new game. Only effective while the player is on
// the main menu and not in the demo cutscene.
func (i *Interface) StartNewGame() error {
	return i.gameMode.Set(game.ModeGame)
}

// CurrentLevel returns the level the player is currently in, read through
// the live scene structure.
func (i *Interface) CurrentLevel() (game.Level, error) {
	id, err := i.sceneID.Get()
	if err != nil {
		return 0, err
	}
	level, err := game.LevelFromSceneID(id)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, gamevar.ErrInvalidValue)
	}
	return level, nil
}

// SpatulaCount returns the player's total spatula count.
func (i *Interface) SpatulaCount() (uint32, error) {
	return i.spatulaCount.Get()
}

// SetSpatulaCount sets the player's total spatula count.
func (i *Interface) SetSpatulaCount(value uint32) error {
	return i.spatulaCount.Set(value)
}

// UnlockPower sets the unlock flag for one power. The flag is a single
// byte; the write width is fixed by the variable's codec, so adjacent
// state cannot be clobbered by a call-site mistake.
func (i *Interface) UnlockPower(p game.Power) error {
	if int(p) >= game.NumPowers {
		return fmt.Errorf("power %d: %w", p, gamevar.ErrInvalidValue)
	}
	return i.powers[p].Set(1)
}

// UnlockPowers unlocks the Bubble Bowl and Cruise Bubble. The two flags
// are written independently; there is no transactionality between them.
func (i *Interface) UnlockPowers() error {
	for p := 0; p < game.NumPowers; p++ {
		if err := i.UnlockPower(game.Power(p)); err != nil {
			return err
		}
	}
	return nil
}

// UnlockTask unlocks a task in the pause menu, giving access to its task
// warp. The menu counter is written to 1 only when it currently reads 0:
// a counter of 3 encodes the alternate "silver" completion state and any
// other non-zero value means the task is already unlocked, so those are
// preserved. The read and write are separate round-trips; a concurrent
// change by the game in between is not detected.
func (i *Interface) UnlockTask(s game.Spatula) error {
	t, err := i.task(s)
	if err != nil {
		return err
	}
	count := t.menuCount

	current, err := count.Get()
	if err != nil {
		return err
	}
	if current != 0 {
		return nil
	}
	return count.Set(1)
}

// MarkTaskComplete marks a spatula as completed (gold) in the pause menu.
func (i *Interface) MarkTaskComplete(s game.Spatula) error {
	t, err := i.task(s)
	if err != nil {
		return err
	}
	return t.menuCount.Set(2)
}

// IsTaskComplete reports whether the spatula is shown as gold in the pause
// menu.
func (i *Interface) IsTaskComplete(s game.Spatula) (bool, error) {
	t, err := i.task(s)
	if err != nil {
		return false, err
	}
	current, err := t.menuCount.Get()
	if err != nil {
		return false, err
	}
	return current == 2, nil
}

// CollectSpatula removes a spatula's entity from the world. It does not
// complete the task or touch the spatula counter. The call is a no-op
// unless current matches the spatula's level, since the entity vars are
// only valid while that level is loaded, and a no-op for the two spatulas
// granted by cutscene.
func (i *Interface) CollectSpatula(s game.Spatula, current game.Level) error {
	if current != s.Level() {
		return nil
	}
	t, err := i.task(s)
	if err != nil {
		return err
	}
	if t.flags == nil || t.state == nil {
		return nil
	}

	flags, err := t.flags.Get()
	if err != nil {
		return err
	}
	state, err := t.state.Get()
	if err != nil {
		return err
	}

	// Disable the entity and adjust its model state.
	flags &^= 0x01
	state |= 0x08
	state &^= 0x04
	state &^= 0x02

	if err := t.flags.Set(flags); err != nil {
		return err
	}
	return t.state.Set(state)
}

// IsSpatulaBeingCollected reports whether the spatula's collected
// animation is playing. It returns false when current is not the
// spatula's level or the spatula has no world entity.
func (i *Interface) IsSpatulaBeingCollected(s game.Spatula, current game.Level) (bool, error) {
	if current != s.Level() {
		return false, nil
	}
	t, err := i.task(s)
	if err != nil {
		return false, err
	}
	if t.state == nil {
		return false, nil
	}

	state, err := t.state.Get()
	if err != nil {
		return false, err
	}
	return state&0x04 != 0, nil
}

// SetLabDoor changes the number of spatulas required to enter the Chum
// Bucket lab. The call is a no-op unless the Chum Bucket is the current
// level. The game compares with greater-than, so the stored value is one
// less than the requirement; a requirement of 0 has no stored encoding and
// is rejected.
func (i *Interface) SetLabDoor(value uint32, current game.Level) error {
	if current != game.ChumBucket {
		return nil
	}
	if value == 0 {
		return fmt.Errorf("lab door requirement 0: %w", gamevar.ErrInvalidValue)
	}
	return i.labDoorCost.Set(value - 1)
}

func (i *Interface) task(s game.Spatula) (*task, error) {
	if int(s) >= game.NumSpatulas {
		return nil, fmt.Errorf("spatula %d: %w", s, gamevar.ErrInvalidValue)
	}
	return &i.tasks[s], nil
}
