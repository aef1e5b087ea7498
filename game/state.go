package game

// GameOstrich tracks whether a scene is loaded and active. Primarily useful
// for checking if the game is in a loading screen.
type GameOstrich uint8

const (
	// OstrichLoading is active while a loading screen is shown.
	OstrichLoading GameOstrich = iota
	// OstrichPlayingMovie is active while an FMV is playing.
	OstrichPlayingMovie
	// OstrichInScene is active while a scene is loaded and running.
	OstrichInScene
)

// GameMode is the macro-level mode of the engine. Writing ModeGame while on
// the main menu starts a new game.
type GameMode uint8

const (
	ModeBoot GameMode = iota
	ModeIntro
	ModeTitle
	ModeStart
	ModeLoad
	ModeOptions
	ModeSave
	ModePause
	ModeStall
	ModeWorldMap
	ModeMonsterGallery
	ModeConceptArtGallery
	// ModeGame is active while playing in-game and unpaused.
	ModeGame
)

// GameState tracks states during gameplay. Writing StateExit returns the
// game to the main menu; StateLoseChance reloads the current level.
type GameState uint8

const (
	StateFirstTime GameState = iota
	StatePlay
	StateLoseChance
	StateGameOver
	StateGameStats
	StateSceneSwitch
	StateDead
	StateExit
)
