package services

import (
	"time"

	"fastpay-network/internal/adapters/persistence"
	"fastpay-network/internal/core/domain"

	"github.com/google/uuid"
)

// DepositService opens, cancels and matures fixed-term deposits. The
// engine never decides when maturity happens; it only exposes the mature
// hook for an external trigger.
type DepositService struct {
	store  *persistence.Store
	notify *NotificationService
}

// NewDepositService creates a new deposit service
func NewDepositService(store *persistence.Store, notify *NotificationService) *DepositService {
	return &DepositService{store: store, notify: notify}
}

// projectedProfit computes principal x rate with integer math
func projectedProfit(principal, rateBps int64) int64 {
	return principal * rateBps / 10000
}

// OpenInput represents an open-deposit request
type OpenInput struct {
	PlanID    string `json:"planId" validate:"required"`
	Principal int64  `json:"amount" validate:"required,gt=0"`
}

// Open escrows the principal out of the owner's balance and creates a
// deposit with rate and term copied from the plan definition at this
// instant. Later plan edits never change the deposit.
func (s *DepositService) Open(ownerID string, input *OpenInput) (*domain.Deposit, error) {
	if input.Principal <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var out domain.Deposit
	err := s.store.Mutate(func(st *persistence.State) error {
		plan, err := st.DepositPlanByID(input.PlanID)
		if err != nil {
			return err
		}
		if input.Principal < plan.MinAmount {
			return domain.ErrBelowMinimum
		}

		owner, err := st.Account(ownerID)
		if err != nil {
			return err
		}
		if err := st.AdjustBalance(owner.ID, -input.Principal); err != nil {
			return err
		}

		now := time.Now()
		dep := domain.Deposit{
			ID:              uuid.NewString(),
			OwnerID:         owner.ID,
			OwnerUsername:   owner.Username,
			Principal:       input.Principal,
			RateBps:         plan.RateBps,
			TermMonths:      plan.TermMonths,
			OpenedAt:        now,
			MaturesAt:       now.AddDate(0, plan.TermMonths, 0),
			ProjectedProfit: projectedProfit(input.Principal, plan.RateBps),
			Status:          domain.DepositActive,
		}
		st.AddDeposit(dep)

		st.AppendJournal(domain.JournalEntry{
			ID:           uuid.NewString(),
			AccountID:    owner.ID,
			Kind:         domain.JournalDepositOpen,
			Amount:       input.Principal,
			Counterparty: plan.Name,
			RelatedID:    dep.ID,
			Timestamp:    now,
		})

		out = dep
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Push("Deposits", domain.NotifyMoney, "Deposit of %d opened by @%s", out.Principal, out.OwnerUsername)
	return &out, nil
}

// Cancel returns the principal to the owner and forfeits the projected
// profit. Only active deposits can be cancelled.
func (s *DepositService) Cancel(depositID string) (*domain.Deposit, error) {
	var out domain.Deposit
	err := s.store.Mutate(func(st *persistence.State) error {
		dep, err := st.Deposit(depositID)
		if err != nil {
			return err
		}
		if dep.Status != domain.DepositActive {
			return domain.ErrDepositNotActive
		}

		if err := st.AdjustBalance(dep.OwnerID, dep.Principal); err != nil {
			return err
		}
		dep.Status = domain.DepositCancelled

		st.AppendJournal(domain.JournalEntry{
			ID:           uuid.NewString(),
			AccountID:    dep.OwnerID,
			Kind:         domain.JournalDepositCancel,
			Amount:       dep.Principal,
			Counterparty: "principal refund",
			RelatedID:    dep.ID,
			Timestamp:    time.Now(),
		})

		out = *dep
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Push("Deposits", domain.NotifyMoney, "Deposit of %d cancelled for @%s", out.Principal, out.OwnerUsername)
	return &out, nil
}

// Mature credits principal plus projected profit back to the owner. This
// is the hook an external scheduler calls at or after MaturesAt; the
// engine itself never invokes it.
func (s *DepositService) Mature(depositID string) (*domain.Deposit, error) {
	var out domain.Deposit
	err := s.store.Mutate(func(st *persistence.State) error {
		dep, err := st.Deposit(depositID)
		if err != nil {
			return err
		}
		return s.matureLocked(st, dep, &out)
	})
	if err != nil {
		return nil, err
	}

	s.notify.Push("Deposits", domain.NotifyMoney, "Deposit of %d matured for @%s", out.Principal, out.OwnerUsername)
	return &out, nil
}

// matureLocked performs the maturity transition inside an open Mutate
func (s *DepositService) matureLocked(st *persistence.State, dep *domain.Deposit, out *domain.Deposit) error {
	if dep.Status != domain.DepositActive {
		return domain.ErrDepositNotActive
	}

	if err := st.AdjustBalance(dep.OwnerID, dep.Principal+dep.ProjectedProfit); err != nil {
		return err
	}
	dep.Status = domain.DepositMatured

	st.AppendJournal(domain.JournalEntry{
		ID:           uuid.NewString(),
		AccountID:    dep.OwnerID,
		Kind:         domain.JournalDepositMature,
		Amount:       dep.Principal + dep.ProjectedProfit,
		Counterparty: "principal + profit",
		RelatedID:    dep.ID,
		Timestamp:    time.Now(),
	})

	*out = *dep
	return nil
}

// MatureDue matures every active deposit whose maturity date is at or
// before now, as one atomic sweep. It returns how many deposits matured.
func (s *DepositService) MatureDue(now time.Time) (int, error) {
	matured := 0
	err := s.store.Mutate(func(st *persistence.State) error {
		matured = 0
		deps := st.Deposits()
		for i := range deps {
			dep, err := st.Deposit(deps[i].ID)
			if err != nil {
				return err
			}
			if dep.Status != domain.DepositActive || dep.MaturesAt.After(now) {
				continue
			}
			var out domain.Deposit
			if err := s.matureLocked(st, dep, &out); err != nil {
				return err
			}
			matured++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if matured > 0 {
		s.notify.Push("Deposits", domain.NotifySystem, "%d deposits matured", matured)
	}
	return matured, nil
}

// ListByOwner returns one account's deposits, newest first
func (s *DepositService) ListByOwner(ownerID string) ([]domain.Deposit, error) {
	var out []domain.Deposit
	err := s.store.View(func(st *persistence.State) error {
		deps := st.DepositsByOwner(ownerID)
		for i := len(deps) - 1; i >= 0; i-- {
			out = append(out, deps[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List returns every deposit, newest first
func (s *DepositService) List() ([]domain.Deposit, error) {
	var out []domain.Deposit
	err := s.store.View(func(st *persistence.State) error {
		deps := st.Deposits()
		for i := len(deps) - 1; i >= 0; i-- {
			out = append(out, deps[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
