package entity

import (
	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/levels"
)

// LoadLevelToWorld creates the static platforms of lvl.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) int {
	if w == nil || lvl == nil {
		return 0
	}
	for _, r := range lvl.Platforms {
		e := w.CreateEntity()
		w.AddPlatform(ecs.Platform{Entity: e, X: r.X, Y: r.Y, Width: r.Width, Height: r.Height})
		if pw := w.PhysicsWorld(); pw != nil {
			pw.AddPlatform(e, r.X, r.Y, r.Width, r.Height)
		}
	}
	return len(lvl.Platforms)
}
