package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/cave/internal/application/system"
)

// KeySource reports raw keyboard state
type KeySource interface {
	IsPressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
	JustReleased(key ebiten.Key) bool
}

// ebitenKeys reads the live keyboard through ebiten
type ebitenKeys struct{}

func (ebitenKeys) IsPressed(key ebiten.Key) bool    { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (ebitenKeys) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

// KeyMap binds keys to controls. A control is active if any of its keys is.
type KeyMap map[system.Control][]ebiten.Key

// DefaultKeyMap returns the standard bindings. Space both jumps and confirms.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		system.ControlLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
		system.ControlRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
		system.ControlJump:    {ebiten.KeySpace, ebiten.KeyArrowUp},
		system.ControlFire:    {ebiten.KeyZ, ebiten.KeyX},
		system.ControlConfirm: {ebiten.KeySpace, ebiten.KeyEnter},
		system.ControlRestart: {ebiten.KeyR},
	}
}

// Poll builds the input state for this tick
func (m KeyMap) Poll(src KeySource) system.InputState {
	var in system.InputState
	for control, keys := range m {
		for _, key := range keys {
			if src.IsPressed(key) {
				in.Held[control] = true
			}
			if src.JustPressed(key) {
				in.Pressed[control] = true
			}
			if src.JustReleased(key) {
				in.Released[control] = true
			}
		}
	}
	return in
}
