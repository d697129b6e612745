package component

import "github.com/tanema/gween"

// Hover bobs a collectible's sprite around its spawn height. Offset is purely
// visual; the sensor does not move.
type Hover struct {
	Amplitude float64
	Period    float64
	Offset    float64
	Rising    bool
	Tween     *gween.Tween
}
