package save

import "testing"

func TestMemoryStoreRoundTrip(t *testing.T) {
	var s MemoryStore

	p, err := s.Load()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if p.LastForm != "" || len(p.Pickups) != 0 {
		t.Fatalf("expected fresh progress, got %+v", p)
	}

	p.Record("blue")
	p.Record("red")
	p.Record("blue")
	if err := s.Save(p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.LastForm != "blue" {
		t.Fatalf("expected last form blue, got %q", got.LastForm)
	}
	if got.Pickups["blue"] != 2 || got.Pickups["red"] != 1 {
		t.Fatalf("unexpected pickups %v", got.Pickups)
	}
	if s.Saves() != 1 {
		t.Fatalf("expected 1 save, got %d", s.Saves())
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := decode([]byte("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}
