package system

import (
	"time"

	"github.com/milk9111/shapeshift/assets"
	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/ecs/component"
)

// fakeBody stands in for the physics body. An upward velocity lifts the body
// off the ground the way a real step would.
type fakeBody struct {
	grounded bool

	x, y   float64
	vx, vy float64

	translations [][2]float64
	impulses     int
	collider     component.Collider
	gravityScale float64
	replaced     int
}

func (b *fakeBody) Grounded() bool { return b.grounded }

func (b *fakeBody) Translate(dx, dy float64) {
	b.translations = append(b.translations, [2]float64{dx, dy})
	b.x += dx
	b.y += dy
}

func (b *fakeBody) SetVelocity(x, y float64) {
	b.vx, b.vy = x, y
	if y < 0 {
		b.impulses++
		b.grounded = false
	}
}

func (b *fakeBody) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *fakeBody) Position() (float64, float64) { return b.x, b.y }

func (b *fakeBody) ReplaceCollider(c component.Collider) {
	b.collider = c
	b.replaced++
}

func (b *fakeBody) SetGravityScale(scale float64) { b.gravityScale = scale }

var testAnimation = component.PlayerAnimation{
	Idle: component.FrameRange{First: 0, Last: 1},
	Walk: component.FrameRange{First: 2, Last: 7},
	Jump: component.FrameRange{First: 8, Last: 13},
}

const testInterval = 100 * time.Millisecond

// newTestWorld returns a world with an idle, grounded player on a fake body.
func newTestWorld(delta time.Duration) (*ecs.World, *ecs.PlayerEntity, *fakeBody) {
	w := ecs.NewWorld()
	w.Delta = delta

	anim := testAnimation
	anim.Timer = component.NewTimer(testInterval, component.TimerRepeating)
	anim.Blinks = component.NewBlinkSequence(4000*time.Millisecond, 800*time.Millisecond)

	body := &fakeBody{grounded: true, collider: component.Collider{Width: 20, Height: 28}, gravityScale: 1}
	p := &ecs.PlayerEntity{
		Entity: w.CreateEntity(),
		Player: component.Player{
			MovementScalar: 2.5,
			JumpStrength:   9,
			State:          component.PlayerIdle,
		},
		Animation:    anim,
		Sprite:       component.Sprite{Frame: anim.Idle.First, Grid: assets.SheetGrid{CellW: 32, CellH: 32, Columns: 8, Rows: 2}},
		Collider:     body.collider,
		GravityScale: 1,
		Body:         body,
	}
	if err := w.AddPlayer(p); err != nil {
		panic(err)
	}
	return w, p, body
}

// gameplayTick runs the controller and animation stages with in as this
// tick's input.
func gameplayTick(w *ecs.World, in component.Input) {
	w.Input = in
	NewPlayerControllerSystem().Update(w)
	NewAnimationSystem().Update(w)
}
