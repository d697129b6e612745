package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/ecs/component"
)

// InputSource produces one input snapshot per tick.
type InputSource interface {
	Sample() component.Input
}

type InputSystem struct {
	source InputSource
}

// NewInputSystem reads from source, or from the keyboard and first gamepad
// when source is nil.
func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = KeyboardSource{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}
	w.Input = i.source.Sample()
}

// KeyboardSource samples ebiten's keyboard and gamepad state.
type KeyboardSource struct{}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	jumpKeys  = []ebiten.Key{ebiten.KeyW, ebiten.KeySpace}
	pauseKeys = []ebiten.Key{ebiten.KeyEscape}
)

func (KeyboardSource) Sample() component.Input {
	in := component.Input{
		LeftHeld:      anyKeyPressed(leftKeys),
		RightHeld:     anyKeyPressed(rightKeys),
		LeftPressed:   anyKeyJustPressed(leftKeys),
		RightPressed:  anyKeyJustPressed(rightKeys),
		LeftReleased:  anyKeyJustReleased(leftKeys),
		RightReleased: anyKeyJustReleased(rightKeys),
		JumpPressed:   anyKeyJustPressed(jumpKeys),
		PausePressed:  anyKeyJustPressed(pauseKeys),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		left := ebiten.StandardGamepadButtonLeftLeft
		right := ebiten.StandardGamepadButtonLeftRight

		in.LeftHeld = in.LeftHeld || ebiten.IsStandardGamepadButtonPressed(id, left)
		in.RightHeld = in.RightHeld || ebiten.IsStandardGamepadButtonPressed(id, right)
		in.LeftPressed = in.LeftPressed || inpututil.IsStandardGamepadButtonJustPressed(id, left)
		in.RightPressed = in.RightPressed || inpututil.IsStandardGamepadButtonJustPressed(id, right)
		in.LeftReleased = in.LeftReleased || inpututil.IsStandardGamepadButtonJustReleased(id, left)
		in.RightReleased = in.RightReleased || inpututil.IsStandardGamepadButtonJustReleased(id, right)
		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.PausePressed = in.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	return in
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyKeyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyKeyJustReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}
