package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/shapeshift/ecs/component"
	"github.com/milk9111/shapeshift/prefabs"
)

// CatalystTable converts the catalyst prefab into the lookup table used by
// the transformation stage.
func CatalystTable(spec *prefabs.CatalystTableSpec) (component.CatalystTable, error) {
	table := component.CatalystTable{}
	if spec == nil {
		return table, nil
	}
	for name, c := range spec.Catalysts {
		potion, err := component.ParsePotion(name)
		if err != nil {
			return nil, fmt.Errorf("catalysts: %w", err)
		}
		var tint color.Color
		if c.Tint != nil {
			tint = c.Tint.Color
		}
		table[potion] = component.Catalyst{
			Sheet:          c.Sheet,
			Collider:       component.Collider{Width: c.Collider.Width, Height: c.Collider.Height},
			GravityScale:   c.GravityScale,
			TimerInterval:  c.Interval(),
			MovementScalar: c.MovementScalar,
			JumpStrength:   c.JumpStrength,
			Tint:           tint,
		}
	}
	return table, nil
}
