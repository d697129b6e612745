package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func TestRegistryRoundTrip(t *testing.T) {
	r := NewRegistry[string, *Handle]()
	if _, ok := r.Lookup("blue"); ok {
		t.Fatalf("empty registry returned a handle")
	}

	blue := NewReadyHandle("blue.png", image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	other := NewReadyHandle("blue_2.png", image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	r.Register("blue", blue)
	r.Register("blue", other)

	got, ok := r.Lookup("blue")
	if !ok || got != blue {
		t.Fatalf("expected first registration to win, got %v", got)
	}
	if _, ok := r.Lookup("red"); ok {
		t.Fatalf("unregistered key returned a handle")
	}
	if r.Len() != 2 || len(r.Keys()) != 2 {
		t.Fatalf("duplicates should be kept, got %d entries", r.Len())
	}

	var nilRegistry *Registry[string, *Handle]
	if _, ok := nilRegistry.Lookup("blue"); ok {
		t.Fatalf("nil registry returned a handle")
	}
}

func TestSheetGridFrameRect(t *testing.T) {
	g := SheetGrid{CellW: 32, CellH: 32, Columns: 8, Rows: 2}
	cases := []struct {
		name  string
		index int
		want  image.Rectangle
		ok    bool
	}{
		{"first", 0, image.Rect(0, 0, 32, 32), true},
		{"end_of_row", 7, image.Rect(224, 0, 256, 32), true},
		{"second_row", 9, image.Rect(32, 32, 64, 64), true},
		{"last", 15, image.Rect(224, 32, 256, 64), true},
		{"past_end", 16, image.Rectangle{}, false},
		{"negative", -1, image.Rectangle{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := g.FrameRect(c.index)
			if ok != c.ok || got != c.want {
				t.Fatalf("expected %v/%v, got %v/%v", c.want, c.ok, got, ok)
			}
		})
	}
	if (SheetGrid{}).Frames() != 0 {
		t.Fatalf("empty grid should have no frames")
	}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoaderDecodesInBackground(t *testing.T) {
	fsys := fstest.MapFS{
		"sheet.png": &fstest.MapFile{Data: pngBytes(t, 64, 32)},
	}
	l := NewLoader(fsys)

	h := l.Load("assets/sheet.png")
	if h == nil {
		t.Fatalf("Load must return a handle immediately")
	}
	if again := l.Load("assets/sheet.png"); again != h {
		t.Fatalf("same path should share one handle")
	}
	if err := l.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if !h.Ready() {
		t.Fatalf("handle not ready after Wait: %v", h.Err())
	}
	if got := h.Bounds(); got != image.Rect(0, 0, 64, 32) {
		t.Fatalf("unexpected bounds %v", got)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	h := l.Load("definitely-missing.png")
	if err := l.Wait(); err == nil {
		t.Fatalf("expected error for a missing asset")
	}
	if h.Ready() || h.Err() == nil {
		t.Fatalf("missing asset should leave the handle unready with an error")
	}
}

func TestEmbeddedSheetsPresent(t *testing.T) {
	for _, name := range []string{
		"player-Sheet.png",
		"player_red-Sheet.png",
		"player_green-Sheet.png",
		"player_blue-Sheet.png",
		"potion_red.png",
		"potion_green.png",
		"potion_blue.png",
	} {
		if _, err := LoadFile("assets/" + name); err != nil {
			t.Fatalf("embedded %s: %v", name, err)
		}
	}
}
