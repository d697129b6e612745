package system

import (
	"github.com/milk9111/shapeshift/common"
	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PickupHoverSystem bobs collectible sprites. Only the drawn offset moves;
// sensors stay where they spawned.
type PickupHoverSystem struct{}

func NewPickupHoverSystem() *PickupHoverSystem { return &PickupHoverSystem{} }

func (s *PickupHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := float32(w.Delta.Seconds())
	for _, c := range w.Collectibles() {
		stepHover(&c.Hover, dt)
	}
}

func stepHover(h *component.Hover, dt float32) {
	if h.Amplitude == 0 || h.Period <= 0 {
		return
	}
	if h.Tween == nil {
		h.Tween = newHoverTween(h)
	}
	t, finished := h.Tween.Update(dt)
	amp := float32(h.Amplitude)
	h.Offset = float64(common.Lerp(-amp, amp, t))
	if finished {
		h.Rising = !h.Rising
		h.Tween = newHoverTween(h)
	}
}

// newHoverTween covers half a period. Rising runs toward -Amplitude, which is
// up on screen.
func newHoverTween(h *component.Hover) *gween.Tween {
	half := float32(h.Period / 2)
	if h.Rising {
		return gween.New(1, 0, half, ease.InOutSine)
	}
	return gween.New(0, 1, half, ease.InOutSine)
}
