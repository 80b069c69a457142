package services

import (
	"fastpay-network/internal/adapters/persistence"
	"fastpay-network/internal/core/domain"
)

// JournalService reads the append-only ledger journal for audit and
// history views. It never writes; entries are appended by the engines
// inside their own atomic units.
type JournalService struct {
	store *persistence.Store
}

// NewJournalService creates a new journal service
func NewJournalService(store *persistence.Store) *JournalService {
	return &JournalService{store: store}
}

// List returns every journal entry, newest first
func (s *JournalService) List() ([]domain.JournalEntry, error) {
	var out []domain.JournalEntry
	err := s.store.View(func(st *persistence.State) error {
		entries := st.Journal()
		for i := len(entries) - 1; i >= 0; i-- {
			out = append(out, entries[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByAccount returns one account's journal entries, newest first
func (s *JournalService) ListByAccount(accountID string) ([]domain.JournalEntry, error) {
	var out []domain.JournalEntry
	err := s.store.View(func(st *persistence.State) error {
		entries := st.JournalByAccount(accountID)
		for i := len(entries) - 1; i >= 0; i-- {
			out = append(out, entries[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
