package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateWeaponSelect // paused while the player picks an upgrade
	StateGameOver
	StateGameClear
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateWeaponSelect:
		return "WeaponSelect"
	case StateGameOver:
		return "GameOver"
	case StateGameClear:
		return "GameClear"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true for the states that end a run
func (s GameState) IsTerminal() bool {
	return s == StateGameOver || s == StateGameClear
}
