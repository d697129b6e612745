package ecs

import (
	"testing"

	"github.com/milk9111/shapeshift/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if w.EntityCount() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.EntityCount())
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a stale handle")
				}
			}
		})
	}
}

func TestEntityHandlesAreNotReused(t *testing.T) {
	w := NewWorld()
	first := w.CreateEntity()
	w.DestroyEntity(first)
	second := w.CreateEntity()
	if first == second {
		t.Fatalf("recycled slot must carry a new generation")
	}
	if w.IsAlive(first) {
		t.Fatalf("stale handle reported alive")
	}
	if !w.IsAlive(second) {
		t.Fatalf("new handle should be alive")
	}
}

type recordingPhysics struct {
	removed []Entity
}

func (r *recordingPhysics) AddPlayer(e Entity, x, y float64, c component.Collider) component.Body {
	return nil
}
func (r *recordingPhysics) AddPlatform(e Entity, x, y, width, height float64) {}
func (r *recordingPhysics) AddSensor(e Entity, x, y, width, height float64)   {}
func (r *recordingPhysics) Remove(e Entity) {
	r.removed = append(r.removed, e)
}

func TestDespawnCollectibleOnce(t *testing.T) {
	w := NewWorld()
	pw := &recordingPhysics{}
	w.SetPhysicsWorld(pw)

	keep := &CollectibleEntity{Entity: w.CreateEntity(), Collectible: component.Collectible{Type: component.PotionRed}}
	gone := &CollectibleEntity{Entity: w.CreateEntity(), Collectible: component.Collectible{Type: component.PotionBlue}}
	w.AddCollectible(keep)
	w.AddCollectible(gone)

	if !w.DespawnCollectible(gone.Entity) {
		t.Fatalf("first despawn should succeed")
	}
	if w.DespawnCollectible(gone.Entity) {
		t.Fatalf("second despawn should be a no-op")
	}
	if _, ok := w.Collectible(gone.Entity); ok {
		t.Fatalf("despawned collectible still visible")
	}
	if got := w.Collectibles(); len(got) != 1 || got[0] != keep {
		t.Fatalf("expected only the red collectible to remain, got %v", got)
	}
	if len(pw.removed) != 1 || pw.removed[0] != gone.Entity {
		t.Fatalf("expected one sensor removal for %v, got %v", gone.Entity, pw.removed)
	}
}

func TestSinglePlayer(t *testing.T) {
	w := NewWorld()
	if _, ok := w.Player(); ok {
		t.Fatalf("empty world should have no player")
	}

	p := &PlayerEntity{Entity: w.CreateEntity()}
	if err := w.AddPlayer(p); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := w.AddPlayer(&PlayerEntity{Entity: w.CreateEntity()}); err != ErrMultiplePlayers {
		t.Fatalf("expected ErrMultiplePlayers, got %v", err)
	}
	if got := w.MustPlayer(); got != p {
		t.Fatalf("MustPlayer returned a different record")
	}

	w.RemovePlayer()
	defer func() {
		if recover() == nil {
			t.Fatalf("MustPlayer should panic without a player")
		}
	}()
	w.MustPlayer()
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue[component.TransformSignal]
	q.Push(component.TransformSignal{Catalyst: component.PotionGreen})
	q.Push(component.TransformSignal{Catalyst: component.PotionBlue})

	got := q.Drain()
	if len(got) != 2 || got[0].Catalyst != component.PotionGreen || got[1].Catalyst != component.PotionBlue {
		t.Fatalf("expected arrival order, got %v", got)
	}
	if q.Len() != 0 {
		t.Fatalf("drain should empty the queue, %d left", q.Len())
	}
}

type countingSystem struct {
	name  string
	order *[]string
}

func (s countingSystem) Update(w *World) {
	*s.order = append(*s.order, s.name)
	w.Signals.Push(component.TransformSignal{})
}

func TestSchedulerRunsInOrderAndEndsTick(t *testing.T) {
	var order []string
	s := NewScheduler(
		countingSystem{name: "input", order: &order},
		nil,
		countingSystem{name: "controller", order: &order},
		countingSystem{name: "animation", order: &order},
	)
	w := NewWorld()
	s.Update(w)

	want := []string{"input", "controller", "animation"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if w.Tick() != 1 {
		t.Fatalf("expected tick 1, got %d", w.Tick())
	}
	if w.Signals.Len() != 0 {
		t.Fatalf("signals must not leak into the next tick")
	}
}

func TestCollisionEventHelpers(t *testing.T) {
	a, b, c := Entity(1), Entity(2), Entity(3)
	evt := CollisionEvent{Phase: CollisionStarted, A: a, B: b, Flags: CollisionSensor}
	if !evt.Sensor() {
		t.Fatalf("expected sensor flag")
	}
	if !evt.Involves(a) || !evt.Involves(b) || evt.Involves(c) {
		t.Fatalf("Involves mismatch for %v", evt)
	}
}
