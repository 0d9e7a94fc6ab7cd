package storage

import (
	"log"
	"sync"

	"github.com/lixenwraith/teatime/engine"
)

// job is a pending write; clear removes the file instead of saving
type job struct {
	bubbles []engine.Bubble
	clear   bool
}

// Store adapts a Persister for the engine
// Loads degrade to an empty collection and saves run on a background worker
// Only the latest pending write is kept
type Store struct {
	p Persister

	mu     sync.Mutex
	jobs   chan job
	closed bool
	wg     sync.WaitGroup
}

// NewStore starts the save worker for a persister
func NewStore(p Persister) *Store {
	s := &Store{
		p:    p,
		jobs: make(chan job, 1),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.p.Path()
}

// Load returns the stored bubbles in order, or an empty slice on any failure
func (s *Store) Load() []engine.Bubble {
	bubbles, err := s.p.Load()
	if err != nil {
		log.Printf("storage: discarding stored bubbles from %s: %v", s.p.Path(), err)
		return []engine.Bubble{}
	}
	if bubbles == nil {
		return []engine.Bubble{}
	}
	return bubbles
}

// Save queues a copy of the collection for writing and returns immediately
func (s *Store) Save(bubbles []engine.Bubble) {
	cp := make([]engine.Bubble, len(bubbles))
	copy(cp, bubbles)
	s.enqueue(job{bubbles: cp})
}

// Clear queues removal of the stored file, superseding any pending save
func (s *Store) Clear() {
	s.enqueue(job{clear: true})
}

// Close flushes the pending write and stops the worker
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.jobs)
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Store) enqueue(j job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		log.Printf("storage: write after close ignored")
		return
	}

	// Replace a write the worker has not picked up yet
	select {
	case s.jobs <- j:
	default:
		select {
		case <-s.jobs:
		default:
		}
		s.jobs <- j
	}
}

func (s *Store) run() {
	defer s.wg.Done()

	for j := range s.jobs {
		var err error
		if j.clear {
			err = s.p.Clear()
		} else {
			err = s.p.Save(j.bubbles)
		}
		if err != nil {
			log.Printf("storage: %v", err)
		}
	}
}
