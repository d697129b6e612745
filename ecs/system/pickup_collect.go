package system

import (
	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/ecs/component"
)

// PickupCollectSystem turns sensor contacts into transform signals.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ProcessCollisions(w, w.Collisions.Drain())
}

// ProcessCollisions emits one signal per live collectible named by a
// sensor-start event and despawns it in the same pass. Stop events and
// collectibles that are already gone are ignored. Signals keep event order.
func ProcessCollisions(w *ecs.World, events []ecs.CollisionEvent) int {
	collected := 0
	for _, evt := range events {
		if evt.Phase != ecs.CollisionStarted || !evt.Sensor() {
			continue
		}
		for _, e := range [2]ecs.Entity{evt.A, evt.B} {
			c, ok := w.Collectible(e)
			if !ok {
				continue
			}
			w.Signals.Push(component.TransformSignal{Catalyst: c.Collectible.Type})
			w.DespawnCollectible(e)
			collected++
		}
	}
	return collected
}
