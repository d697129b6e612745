package component

import "time"

// FrameRange is an inclusive window of sprite-sheet indices.
type FrameRange struct {
	First int
	Last  int
}

func (r FrameRange) Contains(i int) bool {
	return i >= r.First && i <= r.Last
}

func (r FrameRange) Len() int {
	if r.Last < r.First {
		return 0
	}
	return r.Last - r.First + 1
}

// Overlaps reports whether the two windows share an index.
func (r FrameRange) Overlaps(o FrameRange) bool {
	return r.First <= o.Last && o.First <= r.Last
}

// BlinkSequence is a round-robin queue of closed-eye durations. Next pops the
// head and re-appends it, so the queue never shrinks.
type BlinkSequence struct {
	durations []time.Duration
}

func NewBlinkSequence(durations ...time.Duration) BlinkSequence {
	return BlinkSequence{durations: append([]time.Duration(nil), durations...)}
}

// Next returns the head duration and rotates it to the tail.
func (b *BlinkSequence) Next() (time.Duration, bool) {
	if len(b.durations) == 0 {
		return 0, false
	}
	d := b.durations[0]
	b.durations = append(b.durations[1:], d)
	return d, true
}

func (b *BlinkSequence) Len() int {
	return len(b.durations)
}

// PlayerAnimation drives the player's sprite frame. BlinkTimer is non-nil only
// while the eyes are closed during an idle blink.
type PlayerAnimation struct {
	Idle FrameRange
	Walk FrameRange
	Jump FrameRange

	Timer      Timer
	BlinkTimer *Timer
	Blinks     BlinkSequence
}

// RangeFor returns the frame window owned by a state. JumpingInAir holds the
// last jump frame, so it shares the jump window.
func (a *PlayerAnimation) RangeFor(s PlayerState) FrameRange {
	switch s {
	case PlayerWalking:
		return a.Walk
	case PlayerJumping, PlayerJumpingInAir:
		return a.Jump
	default:
		return a.Idle
	}
}

// EyesClosed reports whether an idle blink is in progress.
func (a *PlayerAnimation) EyesClosed() bool {
	return a.BlinkTimer != nil
}
