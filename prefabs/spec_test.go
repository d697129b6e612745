package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func validAnimation() AnimationSpec {
	return AnimationSpec{
		IntervalMS:      100,
		Idle:            FrameRangeSpec{First: 0, Last: 1},
		Walk:            FrameRangeSpec{First: 2, Last: 7},
		Jump:            FrameRangeSpec{First: 8, Last: 13},
		BlinkSequenceMS: []int{4000, 800},
	}
}

func TestEmbeddedSpecsLoad(t *testing.T) {
	SetDiskDir("")
	defer SetDiskDir("prefabs")

	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	if got := player.Animation.BlinkSequence(); len(got) != 2 || got[0] != 4*time.Second || got[1] != 800*time.Millisecond {
		t.Fatalf("unexpected blink sequence %v", got)
	}

	table, err := LoadCatalystTable()
	if err != nil {
		t.Fatalf("catalysts: %v", err)
	}
	for _, name := range []string{"red", "green", "blue"} {
		if _, ok := table.Catalysts[name]; !ok {
			t.Fatalf("missing catalyst %s", name)
		}
	}
	if table.Catalysts["blue"].Tint == nil {
		t.Fatalf("blue catalyst should carry a tint")
	}

	layout, err := LoadCollectibleLayout()
	if err != nil {
		t.Fatalf("collectibles: %v", err)
	}
	if len(layout.Collectibles) != 3 || len(layout.Textures) != 3 {
		t.Fatalf("unexpected layout %+v", layout)
	}
}

func TestAnimationValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(a *AnimationSpec)
		want   error
	}{
		{"valid", func(a *AnimationSpec) {}, nil},
		{"unordered", func(a *AnimationSpec) { a.Walk = FrameRangeSpec{First: 7, Last: 2} }, ErrInvalidFrameRange},
		{"past_sheet", func(a *AnimationSpec) { a.Jump = FrameRangeSpec{First: 8, Last: 16} }, ErrInvalidFrameRange},
		{"idle_single_frame", func(a *AnimationSpec) { a.Idle = FrameRangeSpec{First: 0, Last: 0} }, ErrInvalidFrameRange},
		{"jump_too_short", func(a *AnimationSpec) { a.Jump = FrameRangeSpec{First: 8, Last: 9} }, ErrInvalidFrameRange},
		{"overlap", func(a *AnimationSpec) { a.Walk = FrameRangeSpec{First: 1, Last: 7} }, ErrInvalidFrameRange},
		{"no_blinks", func(a *AnimationSpec) { a.BlinkSequenceMS = nil }, ErrInvalidValue},
		{"zero_blink", func(a *AnimationSpec) { a.BlinkSequenceMS = []int{100, 0} }, ErrInvalidValue},
		{"zero_interval", func(a *AnimationSpec) { a.IntervalMS = 0 }, ErrInvalidValue},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := validAnimation()
			c.mutate(&a)
			err := a.Validate(16)
			if c.want == nil {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestCatalystValidate(t *testing.T) {
	base := CatalystSpec{
		Sheet:          "player_blue-Sheet.png",
		Collider:       ColliderSpec{Width: 14, Height: 20},
		GravityScale:   0.5,
		IntervalMS:     60,
		MovementScalar: 3.5,
		JumpStrength:   7,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	noSheet := base
	noSheet.Sheet = ""
	if err := noSheet.Validate(); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for missing sheet, got %v", err)
	}

	flat := base
	flat.Collider.Height = 0
	if err := flat.Validate(); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for zero collider, got %v", err)
	}
}

func TestYAMLColor(t *testing.T) {
	var out struct {
		Tint YAMLColor `yaml:"tint"`
	}
	if err := yaml.Unmarshal([]byte(`tint: "#c8dcff80"`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := color.NRGBA{R: 0xc8, G: 0xdc, B: 0xff, A: 0x80}
	if out.Tint.Color != want {
		t.Fatalf("expected %v, got %v", want, out.Tint.Color)
	}
	if err := yaml.Unmarshal([]byte(`tint: "#abc"`), &out); err == nil {
		t.Fatalf("expected error for short color")
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	override := []byte("catalysts:\n  red:\n    sheet: other.png\n    collider: { width: 4, height: 4 }\n    gravity_scale: 1\n    interval_ms: 50\n    movement_scalar: 1\n    jump_strength: 1\n")
	if err := os.WriteFile(filepath.Join(dir, CatalystsFile), override, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	SetDiskDir(dir)
	defer SetDiskDir("prefabs")

	table, err := LoadCatalystTable()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(table.Catalysts) != 1 || table.Catalysts["red"].Sheet != "other.png" {
		t.Fatalf("disk override not used: %+v", table.Catalysts)
	}
	if _, ok := ModTime(CatalystsFile); !ok {
		t.Fatalf("expected a mod time for the override")
	}

	// Files missing on disk fall back to the embedded copy.
	if _, err := LoadPlayerSpec(); err != nil {
		t.Fatalf("embedded fallback: %v", err)
	}
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, PlayerFile), []byte("name: p\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != PlayerFile {
			t.Fatalf("expected %s, got %s", PlayerFile, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", PlayerFile)
	}
}
