package system

import (
	"time"

	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/ecs/component"
)

// playerBehavior is the animation behavior owned by one PlayerState. Exactly
// one behavior runs per tick.
type playerBehavior interface {
	Name() string
	Enter(ctx *playerStateContext)
	Animate(ctx *playerStateContext)
}

type playerStateContext struct {
	Player *ecs.PlayerEntity
	Delta  time.Duration
}

func (ctx *playerStateContext) anim() *component.PlayerAnimation {
	return &ctx.Player.Animation
}

func (ctx *playerStateContext) setFrame(i int) {
	ctx.Player.Sprite.Frame = i
}

func (ctx *playerStateContext) frame() int {
	return ctx.Player.Sprite.Frame
}

func (ctx *playerStateContext) changeState(s component.PlayerState) {
	enterPlayerState(ctx, s)
}

// Player state singletons (avoid allocations on transitions).
var (
	playerStateIdle         playerBehavior = &playerIdleState{}
	playerStateWalking      playerBehavior = &playerWalkingState{}
	playerStateJumping      playerBehavior = &playerJumpingState{}
	playerStateJumpingInAir playerBehavior = &playerJumpingInAirState{}
)

func behaviorFor(s component.PlayerState) playerBehavior {
	switch s {
	case component.PlayerWalking:
		return playerStateWalking
	case component.PlayerJumping:
		return playerStateJumping
	case component.PlayerJumpingInAir:
		return playerStateJumpingInAir
	default:
		return playerStateIdle
	}
}

// enterPlayerState switches the active state and runs its entry action.
// Re-entering the current state restarts it.
func enterPlayerState(ctx *playerStateContext, s component.PlayerState) {
	ctx.Player.Player.State = s
	behaviorFor(s).Enter(ctx)
}

// resetToRange puts the frame on the first index of the state's window and
// restarts the frame timer. Any blink in progress ends with the old state.
func resetToRange(ctx *playerStateContext, s component.PlayerState) {
	anim := ctx.anim()
	ctx.setFrame(anim.RangeFor(s).First)
	anim.Timer.Reset()
	anim.BlinkTimer = nil
}

type playerIdleState struct{}

type playerWalkingState struct{}

type playerJumpingState struct{}

type playerJumpingInAirState struct{}

func (playerIdleState) Name() string { return "idle" }
func (playerIdleState) Enter(ctx *playerStateContext) {
	resetToRange(ctx, component.PlayerIdle)
}

// Animate runs the blink cycle. With the eyes open only the frame timer
// ticks; when it fires the next blink duration is taken round-robin and the
// eyes close until the blink timer runs out.
func (playerIdleState) Animate(ctx *playerStateContext) {
	anim := ctx.anim()
	if anim.BlinkTimer != nil {
		if anim.BlinkTimer.Tick(ctx.Delta).Finished() {
			anim.BlinkTimer = nil
			ctx.setFrame(anim.Idle.First)
		}
		return
	}

	if !anim.Timer.Tick(ctx.Delta).Finished() {
		return
	}
	d, ok := anim.Blinks.Next()
	if !ok {
		return
	}
	blink := component.NewTimer(d, component.TimerOnce)
	anim.BlinkTimer = &blink
	ctx.setFrame(anim.Idle.Last)
}

func (playerWalkingState) Name() string { return "walking" }
func (playerWalkingState) Enter(ctx *playerStateContext) {
	resetToRange(ctx, component.PlayerWalking)
}
func (playerWalkingState) Animate(ctx *playerStateContext) {
	anim := ctx.anim()
	if !anim.Timer.Tick(ctx.Delta).Finished() {
		return
	}
	i := ctx.frame() + 1
	if i > anim.Walk.Last || i < anim.Walk.First {
		i = anim.Walk.First
	}
	ctx.setFrame(i)
}

func (playerJumpingState) Name() string { return "jumping" }
func (playerJumpingState) Enter(ctx *playerStateContext) {
	resetToRange(ctx, component.PlayerJumping)
}

// Animate advances through the jump window. The impulse fires on the
// second-to-last frame; the last frame hands over to JumpingInAir.
func (playerJumpingState) Animate(ctx *playerStateContext) {
	anim := ctx.anim()
	if !anim.Timer.Tick(ctx.Delta).Finished() {
		return
	}
	i := ctx.frame() + 1
	switch {
	case i >= anim.Jump.Last:
		ctx.setFrame(anim.Jump.Last)
		ctx.Player.Player.State = component.PlayerJumpingInAir
		return
	case i == anim.Jump.Last-1:
		if body := ctx.Player.Body; body != nil {
			vx, _ := body.Velocity()
			body.SetVelocity(vx, -ctx.Player.Player.JumpStrength)
		}
	}
	ctx.setFrame(i)
}

func (playerJumpingInAirState) Name() string { return "jumping_in_air" }

// Enter keeps the frame: the state is only reached from the last jump frame.
func (playerJumpingInAirState) Enter(ctx *playerStateContext) {
	anim := ctx.anim()
	ctx.setFrame(anim.Jump.Last)
	anim.BlinkTimer = nil
}
func (playerJumpingInAirState) Animate(ctx *playerStateContext) {}
