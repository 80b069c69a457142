package services

import (
	"errors"
	"testing"

	"fastpay-network/internal/core/domain"
)

func TestGrantCreditsBeneficiaryImmediately(t *testing.T) {
	store := newTestStore(t)
	svc := NewFinancingService(store, NewNotificationService())

	userID := addAccount(t, store, "frank", domain.RoleUser, 1000)

	plan, err := svc.Grant(&GrantInput{
		Username:         "frank",
		Principal:        24000,
		MonthlyDeduction: 2000,
		TermMonths:       12,
	})
	if err != nil {
		t.Fatalf("grant: %v", err)
	}
	if plan.Status != domain.FinancingActive {
		t.Errorf("status = %s, want %s", plan.Status, domain.FinancingActive)
	}
	if plan.BeneficiaryID != userID {
		t.Errorf("beneficiary = %s, want %s", plan.BeneficiaryID, userID)
	}
	if got := balanceOf(t, store, userID); got != 25000 {
		t.Errorf("beneficiary balance = %d, want 25000", got)
	}

	kinds := journalKinds(t, store, userID)
	if len(kinds) != 1 || kinds[0] != domain.JournalFinancingGrant {
		t.Errorf("journal = %v, want [%s]", kinds, domain.JournalFinancingGrant)
	}
}

func TestGrantRejections(t *testing.T) {
	store := newTestStore(t)
	svc := NewFinancingService(store, NewNotificationService())
	addAccount(t, store, "frank", domain.RoleUser, 0)

	tests := []struct {
		name    string
		input   GrantInput
		wantErr error
	}{
		{"zero principal", GrantInput{Username: "frank", Principal: 0, TermMonths: 12}, domain.ErrInvalidAmount},
		{"negative deduction", GrantInput{Username: "frank", Principal: 100, MonthlyDeduction: -1, TermMonths: 12}, domain.ErrInvalidAmount},
		{"zero term", GrantInput{Username: "frank", Principal: 100, TermMonths: 0}, domain.ErrInvalidAmount},
		{"unknown beneficiary", GrantInput{Username: "nobody", Principal: 100, TermMonths: 12}, domain.ErrAccountNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Grant(&tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Grant() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetStatusTransitionsFromActiveOnly(t *testing.T) {
	store := newTestStore(t)
	svc := NewFinancingService(store, NewNotificationService())

	userID := addAccount(t, store, "frank", domain.RoleUser, 0)

	plan, err := svc.Grant(&GrantInput{Username: "frank", Principal: 5000, MonthlyDeduction: 500, TermMonths: 10})
	if err != nil {
		t.Fatalf("grant: %v", err)
	}

	updated, err := svc.SetStatus(plan.ID, domain.FinancingCompleted)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != domain.FinancingCompleted {
		t.Errorf("status = %s, want %s", updated.Status, domain.FinancingCompleted)
	}

	// Transitions are bookkeeping only; the balance stays put
	if got := balanceOf(t, store, userID); got != 5000 {
		t.Errorf("beneficiary balance = %d, want 5000", got)
	}

	// Completed plans cannot transition again
	if _, err := svc.SetStatus(plan.ID, domain.FinancingCancelled); !errors.Is(err, domain.ErrFinancingNotActive) {
		t.Errorf("SetStatus(completed) error = %v, want %v", err, domain.ErrFinancingNotActive)
	}

	// Active is not a valid target status
	if _, err := svc.SetStatus(plan.ID, domain.FinancingActive); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("SetStatus(active) error = %v, want %v", err, domain.ErrInvalidStatus)
	}
}
