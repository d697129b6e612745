package save

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// Progress is what survives between runs: the last form the player took and
// how many times each form was applied.
type Progress struct {
	LastForm string         `json:"lastForm"`
	Pickups  map[string]int `json:"pickups"`
}

// Record notes that form was applied.
func (p *Progress) Record(form string) {
	if p.Pickups == nil {
		p.Pickups = make(map[string]int)
	}
	p.Pickups[form]++
	p.LastForm = form
}

type Store interface {
	Load() (Progress, error)
	Save(Progress) error
}

// GDataStore keeps progress in the per-user data directory managed by gdata.
type GDataStore struct {
	m *gdata.Manager
}

func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("save: open %s: %w", appName, err)
	}
	return &GDataStore{m: m}, nil
}

func (s *GDataStore) Load() (Progress, error) {
	if !s.m.ItemExists(progressKey) {
		return decode(nil)
	}
	data, err := s.m.LoadItem(progressKey)
	if err != nil {
		return Progress{}, fmt.Errorf("save: load: %w", err)
	}
	return decode(data)
}

func (s *GDataStore) Save(p Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("save: encode: %w", err)
	}
	if err := s.m.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save: store: %w", err)
	}
	return nil
}

// MemoryStore is a Store that never touches disk.
type MemoryStore struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

func (s *MemoryStore) Load() (Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decode(s.data)
}

func (s *MemoryStore) Save(p Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("save: encode: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// decode treats missing data as a fresh save.
func decode(data []byte) (Progress, error) {
	if len(data) == 0 {
		return Progress{Pickups: make(map[string]int)}, nil
	}
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return Progress{}, fmt.Errorf("save: decode: %w", err)
	}
	if p.Pickups == nil {
		p.Pickups = make(map[string]int)
	}
	return p, nil
}
