package system

import (
	"log"

	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/save"
)

// PersistenceSystem records every applied transformation and writes the
// progress through to the store.
type PersistenceSystem struct {
	store    save.Store
	progress save.Progress
}

func NewPersistenceSystem(store save.Store, progress save.Progress) *PersistenceSystem {
	return &PersistenceSystem{store: store, progress: progress}
}

func (s *PersistenceSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	applied := w.Applied.Drain()
	if len(applied) == 0 {
		return
	}
	for _, sig := range applied {
		s.progress.Record(sig.Catalyst.String())
	}
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.progress); err != nil {
		log.Printf("[save] %v", err)
	}
}

// Progress returns the progress recorded so far.
func (s *PersistenceSystem) Progress() save.Progress {
	return s.progress
}
