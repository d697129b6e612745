package entity

import (
	"fmt"

	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/ecs/component"
	"github.com/milk9111/shapeshift/prefabs"
)

// CollectibleStyle is shared by every spawned collectible.
type CollectibleStyle struct {
	Sensor component.Collider
	Hover  component.Hover
}

func CollectibleStyleFromSpec(spec *prefabs.CollectibleLayoutSpec) CollectibleStyle {
	if spec == nil {
		return CollectibleStyle{}
	}
	return CollectibleStyle{
		Sensor: component.Collider{Width: spec.Sensor.Width, Height: spec.Sensor.Height},
		Hover: component.Hover{
			Amplitude: spec.Hover.Amplitude,
			Period:    spec.Hover.Period,
		},
	}
}

// LayoutFromSpec returns the fallback layout listed in the prefab.
func LayoutFromSpec(spec *prefabs.CollectibleLayoutSpec) ([]component.CollectibleSpawn, error) {
	if spec == nil {
		return nil, nil
	}
	out := make([]component.CollectibleSpawn, 0, len(spec.Collectibles))
	for i, c := range spec.Collectibles {
		potion, err := component.ParsePotion(c.Potion)
		if err != nil {
			return nil, fmt.Errorf("collectibles: entry %d: %w", i, err)
		}
		out = append(out, component.CollectibleSpawn{Type: potion, X: c.X, Y: c.Y})
	}
	return out, nil
}

// SpawnCollectibles creates a sensor collectible for every layout entry whose
// texture is registered. Entries without a texture are skipped for good.
func SpawnCollectibles(w *ecs.World, layout []component.CollectibleSpawn, style CollectibleStyle) int {
	if w == nil {
		return 0
	}
	spawned := 0
	for _, entry := range layout {
		tex, ok := w.Textures.Lookup(entry.Type)
		if !ok {
			continue
		}

		e := w.CreateEntity()
		c := &ecs.CollectibleEntity{
			Entity: e,
			Collectible: component.Collectible{
				Type:   entry.Type,
				X:      entry.X,
				Y:      entry.Y,
				Width:  style.Sensor.Width,
				Height: style.Sensor.Height,
			},
			Transform: component.Transform{X: entry.X, Y: entry.Y, ScaleX: 1, ScaleY: 1},
			Texture:   tex,
			Hover:     style.Hover,
		}
		if pw := w.PhysicsWorld(); pw != nil {
			pw.AddSensor(e, entry.X-style.Sensor.Width/2, entry.Y-style.Sensor.Height/2, style.Sensor.Width, style.Sensor.Height)
		}
		w.AddCollectible(c)
		spawned++
	}
	return spawned
}
