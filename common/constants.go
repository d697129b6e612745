package common

import "time"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate. Physics steps advance one tick at a
	// time, so velocities are in pixels per tick.
	TPS = 60

	// Gravity is in pixels per tick squared, +Y down.
	Gravity = 0.5
)

// TickDuration is the wall-clock time covered by one tick at tps.
func TickDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = TPS
	}
	return time.Second / time.Duration(tps)
}
