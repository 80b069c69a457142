package persistence

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"fastpay-network/internal/core/domain"
)

// Snapshot is the on-disk representation of the whole ledger: one JSON
// document with a fixed set of named slots. Entities within each slot
// keep insertion order and round-trip exactly.
type Snapshot struct {
	Config       domain.SiteConfig       `json:"config"`
	Accounts     []domain.Account        `json:"accounts"`
	Services     []domain.LandingService `json:"services"`
	Pages        []domain.CustomPage     `json:"pages"`
	Cards        []domain.RedemptionCode `json:"cards"`
	Transactions []domain.JournalEntry   `json:"transactions"`
	SalaryPlans  []domain.FinancingPlan  `json:"salary_plans"`
	Deposits     []domain.Deposit        `json:"deposits"`
}

// ErrNoSnapshot is returned by Load when no snapshot file exists yet
var ErrNoSnapshot = errors.New("no snapshot file")

// FileStore reads and writes ledger snapshots as a single JSON file
type FileStore struct {
	path string
}

// NewFileStore creates a file store for the given snapshot path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot from disk
func (f *FileStore) Load() (*Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Save writes the snapshot to disk. The write goes through a temp file
// and rename so a crash mid-write never leaves a truncated snapshot.
func (f *FileStore) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, f.path)
}
