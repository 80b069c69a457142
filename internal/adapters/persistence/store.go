package persistence

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
)

// Store owns the authoritative in-memory ledger state. All reads go
// through View and all writes through Mutate; Mutate runs each operation
// as one atomic unit under a single lock, so no interleaving of two
// operations can produce a negative balance, a double-consumed code or a
// lost update.
type Store struct {
	mu    sync.RWMutex
	file  *FileStore
	state *State
}

// Open loads the snapshot from the file store, seeding a default ledger
// when no snapshot exists yet.
func Open(file *FileStore) (*Store, error) {
	snap, err := file.Load()
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			return nil, err
		}
		snap, err = SeedSnapshot()
		if err != nil {
			return nil, err
		}
		if err := file.Save(snap); err != nil {
			return nil, err
		}
		log.Println("Seeded new ledger snapshot")
	}

	return &Store{file: file, state: &State{snap: snap}}, nil
}

// View runs fn against a read-only view of the state
func (s *Store) View(fn func(*State) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

// Mutate runs fn against a working copy of the state. On success the copy
// becomes the authoritative state and a snapshot is written synchronously;
// on error the copy is discarded, so a failed operation leaves no partial
// mutation behind.
func (s *Store) Mutate(fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work, err := s.state.clone()
	if err != nil {
		return err
	}

	if err := fn(work); err != nil {
		return err
	}

	s.state = work

	// In-memory state is authoritative; a failed snapshot write is
	// logged, not surfaced, so the ledger keeps serving.
	if err := s.file.Save(work.snap); err != nil {
		log.Printf("snapshot write failed: %v", err)
	}
	return nil
}

// clone deep-copies the state via its JSON form
func (st *State) clone() (*State, error) {
	data, err := json.Marshal(st.snap)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &State{snap: &snap}, nil
}
