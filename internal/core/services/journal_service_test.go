package services

import (
	"testing"

	"fastpay-network/internal/core/domain"
)

func TestJournalListByAccountNewestFirst(t *testing.T) {
	store := newTestStore(t)
	notify := NewNotificationService()
	transfers := NewTransferService(store, notify)
	journal := NewJournalService(store)

	aliceID := addAccount(t, store, "alice", domain.RoleUser, 10000)
	bobID := addAccount(t, store, "bob", domain.RoleUser, 10000)

	if _, err := transfers.Transfer(aliceID, &TransferInput{ReceiverUsername: "bob", Amount: 100}); err != nil {
		t.Fatalf("first transfer: %v", err)
	}
	if _, err := transfers.Transfer(bobID, &TransferInput{ReceiverUsername: "alice", Amount: 50}); err != nil {
		t.Fatalf("second transfer: %v", err)
	}

	entries, err := journal.ListByAccount(aliceID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("listed %d entries, want 2", len(entries))
	}
	if entries[0].Kind != domain.JournalReceive || entries[1].Kind != domain.JournalSend {
		t.Errorf("order = [%s %s], want [receive send]", entries[0].Kind, entries[1].Kind)
	}

	all, err := journal.List()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("listed %d entries, want 4", len(all))
	}
}
