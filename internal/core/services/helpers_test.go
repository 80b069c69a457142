package services

import (
	"path/filepath"
	"testing"
	"time"

	"fastpay-network/internal/adapters/persistence"
	"fastpay-network/internal/core/domain"

	"github.com/google/uuid"
)

// newTestStore opens a store backed by a throwaway snapshot file, seeded
// with the default ledger.
func newTestStore(t *testing.T) *persistence.Store {
	t.Helper()
	file := persistence.NewFileStore(filepath.Join(t.TempDir(), "ledger.json"))
	store, err := persistence.Open(file)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

// addAccount creates an active account with a preset balance and returns
// its id.
func addAccount(t *testing.T, store *persistence.Store, username string, role domain.Role, balance int64) string {
	t.Helper()
	id := uuid.NewString()
	err := store.Mutate(func(st *persistence.State) error {
		return st.CreateAccount(domain.Account{
			ID:        id,
			Username:  username,
			FullName:  "Test " + username,
			Role:      role,
			Balance:   balance,
			Status:    domain.StatusActive,
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		t.Fatalf("create account %s: %v", username, err)
	}
	return id
}

// balanceOf reads one account balance
func balanceOf(t *testing.T, store *persistence.Store, id string) int64 {
	t.Helper()
	var balance int64
	err := store.View(func(st *persistence.State) error {
		acc, err := st.Account(id)
		if err != nil {
			return err
		}
		balance = acc.Balance
		return nil
	})
	if err != nil {
		t.Fatalf("read balance: %v", err)
	}
	return balance
}

// totalBalance sums every account balance in the ledger
func totalBalance(t *testing.T, store *persistence.Store) int64 {
	t.Helper()
	var total int64
	err := store.View(func(st *persistence.State) error {
		for _, acc := range st.Accounts() {
			total += acc.Balance
		}
		return nil
	})
	if err != nil {
		t.Fatalf("sum balances: %v", err)
	}
	return total
}

// journalKinds returns the journal kinds recorded for one account, in
// insertion order
func journalKinds(t *testing.T, store *persistence.Store, accountID string) []domain.JournalKind {
	t.Helper()
	var kinds []domain.JournalKind
	err := store.View(func(st *persistence.State) error {
		for _, e := range st.JournalByAccount(accountID) {
			kinds = append(kinds, e.Kind)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("read journal: %v", err)
	}
	return kinds
}
