package entity

import (
	"image"
	"testing"

	"github.com/milk9111/shapeshift/assets"
	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/ecs/component"
	"github.com/milk9111/shapeshift/levels"
	"github.com/milk9111/shapeshift/prefabs"
)

type stubPhysics struct {
	players   int
	platforms int
	sensors   [][4]float64
	removed   []ecs.Entity
}

func (s *stubPhysics) AddPlayer(e ecs.Entity, x, y float64, c component.Collider) component.Body {
	s.players++
	return nil
}

func (s *stubPhysics) AddPlatform(e ecs.Entity, x, y, width, height float64) {
	s.platforms++
}

func (s *stubPhysics) AddSensor(e ecs.Entity, x, y, width, height float64) {
	s.sensors = append(s.sensors, [4]float64{x, y, width, height})
}

func (s *stubPhysics) Remove(e ecs.Entity) {
	s.removed = append(s.removed, e)
}

func TestNewPlayerFromEmbeddedSpec(t *testing.T) {
	prefabs.SetDiskDir("")
	defer prefabs.SetDiskDir("prefabs")

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}

	w := ecs.NewWorld()
	pw := &stubPhysics{}
	w.SetPhysicsWorld(pw)

	p, err := NewPlayerAt(w, spec, nil, 640, 360)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if p.Player.State != component.PlayerIdle || p.Sprite.Frame != spec.Animation.Idle.First {
		t.Fatalf("expected idle at frame %d, got %s at %d", spec.Animation.Idle.First, p.Player.State, p.Sprite.Frame)
	}
	if p.Animation.Timer.Duration != spec.Animation.Interval() || p.Animation.Timer.Mode != component.TimerRepeating {
		t.Fatalf("unexpected frame timer %+v", p.Animation.Timer)
	}
	if p.Animation.Blinks.Len() != len(spec.Animation.BlinkSequenceMS) {
		t.Fatalf("blink sequence not copied")
	}
	if p.Sprite.Grid.Frames() != spec.Sheet.Frames() {
		t.Fatalf("sheet grid mismatch")
	}
	if pw.players != 1 {
		t.Fatalf("expected a physics body, got %d", pw.players)
	}

	if _, err := NewPlayerAt(w, spec, nil, 0, 0); err == nil {
		t.Fatalf("second player must be refused")
	}
	if len(pw.removed) != 1 {
		t.Fatalf("refused player body should be removed")
	}
	if w.EntityCount() != 1 {
		t.Fatalf("refused player entity should be destroyed, %d alive", w.EntityCount())
	}
}

func TestCatalystTableFromEmbeddedSpec(t *testing.T) {
	prefabs.SetDiskDir("")
	defer prefabs.SetDiskDir("prefabs")

	spec, err := prefabs.LoadCatalystTable()
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	table, err := CatalystTable(spec)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	for _, p := range component.Potions {
		c, ok := table.Lookup(p)
		if !ok {
			t.Fatalf("missing recipe for %s", p)
		}
		if c.Sheet == "" || c.TimerInterval <= 0 || c.Tint == nil {
			t.Fatalf("incomplete recipe for %s: %+v", p, c)
		}
	}

	bad := &prefabs.CatalystTableSpec{Catalysts: map[string]prefabs.CatalystSpec{"purple": {}}}
	if _, err := CatalystTable(bad); err == nil {
		t.Fatalf("expected error for unknown catalyst")
	}
}

func TestSpawnCollectiblesSkipsMissingTextures(t *testing.T) {
	w := ecs.NewWorld()
	pw := &stubPhysics{}
	w.SetPhysicsWorld(pw)
	w.Textures.Register(component.PotionBlue, assets.NewReadyHandle("potion_blue.png", image.NewNRGBA(image.Rect(0, 0, 16, 16))))

	layout := []component.CollectibleSpawn{
		{Type: component.PotionBlue, X: 540, Y: 645},
		{Type: component.PotionRed, X: 960, Y: 645},
	}
	style := CollectibleStyle{
		Sensor: component.Collider{Width: 16, Height: 36},
		Hover:  component.Hover{Amplitude: 3, Period: 1.2},
	}

	if n := SpawnCollectibles(w, layout, style); n != 1 {
		t.Fatalf("expected one spawn, got %d", n)
	}
	got := w.Collectibles()
	if len(got) != 1 || got[0].Collectible.Type != component.PotionBlue {
		t.Fatalf("expected only the blue collectible, got %v", got)
	}
	if got[0].Hover.Amplitude != 3 {
		t.Fatalf("hover style not applied")
	}
	want := [4]float64{532, 627, 16, 36}
	if len(pw.sensors) != 1 || pw.sensors[0] != want {
		t.Fatalf("expected sensor %v, got %v", want, pw.sensors)
	}
}

func TestLayoutFromSpec(t *testing.T) {
	spec := &prefabs.CollectibleLayoutSpec{
		Collectibles: []prefabs.CollectibleSpawnSpec{{Potion: "green", X: 1, Y: 2}},
	}
	layout, err := LayoutFromSpec(spec)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if len(layout) != 1 || layout[0].Type != component.PotionGreen || layout[0].X != 1 {
		t.Fatalf("unexpected layout %v", layout)
	}

	spec.Collectibles[0].Potion = "purple"
	if _, err := LayoutFromSpec(spec); err == nil {
		t.Fatalf("expected error for unknown potion")
	}
}

func TestLoadLevelToWorld(t *testing.T) {
	lvl, err := levels.LoadEmbedded(levels.DefaultLevel)
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	w := ecs.NewWorld()
	pw := &stubPhysics{}
	w.SetPhysicsWorld(pw)

	n := LoadLevelToWorld(w, lvl)
	if n != len(lvl.Platforms) || len(w.Platforms()) != n || pw.platforms != n {
		t.Fatalf("expected %d platforms everywhere, got world=%d physics=%d", n, len(w.Platforms()), pw.platforms)
	}
}
