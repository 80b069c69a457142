package services

import (
	"strings"
	"time"

	"fastpay-network/internal/adapters/persistence"
	"fastpay-network/internal/core/domain"

	"github.com/google/uuid"
)

// FinancingService disburses salary-advance credits. The advance lands on
// the beneficiary's balance atomically with plan creation. The declared
// monthly deduction is metadata only; nothing withdraws it.
type FinancingService struct {
	store  *persistence.Store
	notify *NotificationService
}

// NewFinancingService creates a new financing service
func NewFinancingService(store *persistence.Store, notify *NotificationService) *FinancingService {
	return &FinancingService{store: store, notify: notify}
}

// GrantInput represents a salary financing grant request
type GrantInput struct {
	Username         string `json:"username" validate:"required"`
	Principal        int64  `json:"amount" validate:"required,gt=0"`
	MonthlyDeduction int64  `json:"deduction" validate:"gte=0"`
	TermMonths       int    `json:"duration" validate:"required,gt=0"`
}

// Grant credits the beneficiary immediately and records the plan. There
// is no collateral check beyond the account existing.
func (s *FinancingService) Grant(input *GrantInput) (*domain.FinancingPlan, error) {
	if input.Principal <= 0 || input.MonthlyDeduction < 0 || input.TermMonths <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var out domain.FinancingPlan
	err := s.store.Mutate(func(st *persistence.State) error {
		target, err := st.AccountByUsername(strings.TrimSpace(input.Username))
		if err != nil {
			return err
		}

		if err := st.AdjustBalance(target.ID, input.Principal); err != nil {
			return err
		}

		now := time.Now()
		plan := domain.FinancingPlan{
			ID:               uuid.NewString(),
			BeneficiaryID:    target.ID,
			Username:         target.Username,
			Principal:        input.Principal,
			MonthlyDeduction: input.MonthlyDeduction,
			TermMonths:       input.TermMonths,
			StartDate:        now,
			Status:           domain.FinancingActive,
			RequestedAt:      now,
		}
		st.AddFinancingPlan(plan)

		st.AppendJournal(domain.JournalEntry{
			ID:           uuid.NewString(),
			AccountID:    target.ID,
			Kind:         domain.JournalFinancingGrant,
			Amount:       input.Principal,
			Counterparty: "approved salary financing",
			RelatedID:    plan.ID,
			Timestamp:    now,
		})

		out = plan
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Push("Financing", domain.NotifyMoney, "Salary advance of %d granted to @%s", out.Principal, out.Username)
	return &out, nil
}

// SetStatus applies an administrative complete or cancel transition.
// These are bookkeeping only: no balance moves.
func (s *FinancingService) SetStatus(planID string, status domain.FinancingStatus) (*domain.FinancingPlan, error) {
	if status != domain.FinancingCompleted && status != domain.FinancingCancelled {
		return nil, domain.ErrInvalidStatus
	}

	var out domain.FinancingPlan
	err := s.store.Mutate(func(st *persistence.State) error {
		plan, err := st.FinancingPlan(planID)
		if err != nil {
			return err
		}
		if plan.Status != domain.FinancingActive {
			return domain.ErrFinancingNotActive
		}
		plan.Status = status
		out = *plan
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns every financing plan, newest first
func (s *FinancingService) List() ([]domain.FinancingPlan, error) {
	var out []domain.FinancingPlan
	err := s.store.View(func(st *persistence.State) error {
		plans := st.FinancingPlans()
		for i := len(plans) - 1; i >= 0; i-- {
			out = append(out, plans[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByBeneficiary returns one account's plans, newest first
func (s *FinancingService) ListByBeneficiary(accountID string) ([]domain.FinancingPlan, error) {
	var out []domain.FinancingPlan
	err := s.store.View(func(st *persistence.State) error {
		plans := st.FinancingByBeneficiary(accountID)
		for i := len(plans) - 1; i >= 0; i-- {
			out = append(out, plans[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
