package services

import (
	"fastpay-network/internal/adapters/persistence"
	"fastpay-network/internal/core/domain"
)

// DashboardService aggregates read-only summaries for the role dashboards
type DashboardService struct {
	store *persistence.Store
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store *persistence.Store) *DashboardService {
	return &DashboardService{store: store}
}

// AdminSummary is the platform-wide overview for administrators
type AdminSummary struct {
	TotalAccounts      int   `json:"totalAccounts"`
	ActiveAccounts     int   `json:"activeAccounts"`
	TotalBalance       int64 `json:"totalBalance"`
	CodesIssued        int   `json:"codesIssued"`
	CodesConsumed      int   `json:"codesConsumed"`
	ActiveDeposits     int   `json:"activeDeposits"`
	EscrowedPrincipal  int64 `json:"escrowedPrincipal"`
	ActiveFinancing    int   `json:"activeFinancing"`
	FinancingPrincipal int64 `json:"financingPrincipal"`
	JournalEntries     int   `json:"journalEntries"`
}

// Admin builds the administrator overview
func (s *DashboardService) Admin() (*AdminSummary, error) {
	var out AdminSummary
	err := s.store.View(func(st *persistence.State) error {
		for _, acc := range st.Accounts() {
			out.TotalAccounts++
			if acc.Status == domain.StatusActive {
				out.ActiveAccounts++
			}
			out.TotalBalance += acc.Balance
		}
		for _, c := range st.Codes() {
			out.CodesIssued++
			if c.Consumed {
				out.CodesConsumed++
			}
		}
		for _, d := range st.Deposits() {
			if d.Status == domain.DepositActive {
				out.ActiveDeposits++
				out.EscrowedPrincipal += d.Principal
			}
		}
		for _, p := range st.FinancingPlans() {
			if p.Status == domain.FinancingActive {
				out.ActiveFinancing++
				out.FinancingPrincipal += p.Principal
			}
		}
		out.JournalEntries = len(st.Journal())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MerchantSummary is a merchant's own issuance overview
type MerchantSummary struct {
	Balance       int64 `json:"balance"`
	CodesIssued   int   `json:"codesIssued"`
	CodesConsumed int   `json:"codesConsumed"`
	FaceValueOut  int64 `json:"faceValueOutstanding"`
}

// Merchant builds the overview for one merchant account
func (s *DashboardService) Merchant(accountID string) (*MerchantSummary, error) {
	var out MerchantSummary
	err := s.store.View(func(st *persistence.State) error {
		acc, err := st.Account(accountID)
		if err != nil {
			return err
		}
		out.Balance = acc.Balance
		for _, c := range st.CodesByIssuer(accountID) {
			out.CodesIssued++
			if c.Consumed {
				out.CodesConsumed++
			} else if !c.Disabled {
				out.FaceValueOut += c.FaceValue
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UserSummary is an end user's wallet overview
type UserSummary struct {
	Balance          int64 `json:"balance"`
	ActiveDeposits   int   `json:"activeDeposits"`
	DepositPrincipal int64 `json:"depositPrincipal"`
	ProjectedProfit  int64 `json:"projectedProfit"`
	ActiveFinancing  int   `json:"activeFinancing"`
	LinkedCards      int   `json:"linkedCards"`
}

// User builds the overview for one user account
func (s *DashboardService) User(accountID string) (*UserSummary, error) {
	var out UserSummary
	err := s.store.View(func(st *persistence.State) error {
		acc, err := st.Account(accountID)
		if err != nil {
			return err
		}
		out.Balance = acc.Balance
		out.LinkedCards = len(acc.LinkedCards)
		for _, d := range st.DepositsByOwner(accountID) {
			if d.Status == domain.DepositActive {
				out.ActiveDeposits++
				out.DepositPrincipal += d.Principal
				out.ProjectedProfit += d.ProjectedProfit
			}
		}
		for _, p := range st.FinancingByBeneficiary(accountID) {
			if p.Status == domain.FinancingActive {
				out.ActiveFinancing++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
