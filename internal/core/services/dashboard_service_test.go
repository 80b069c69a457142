package services

import (
	"testing"

	"fastpay-network/internal/core/domain"
)

func TestAdminSummaryAggregates(t *testing.T) {
	store := newTestStore(t)
	notify := NewNotificationService()
	codes := NewCodeService(store, notify)
	deposits := NewDepositService(store, notify)
	financing := NewFinancingService(store, notify)
	dashboard := NewDashboardService(store)

	adminID := addAccount(t, store, "boss", domain.RoleAdmin, 0)
	userID := addAccount(t, store, "pete", domain.RoleUser, 100000)

	issued, err := codes.Issue(adminID, &IssueInput{Count: 2, FaceValue: 500})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := codes.Redeem(userID, issued[0].Code); err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if _, err := deposits.Open(userID, &OpenInput{PlanID: "1", Principal: 20000}); err != nil {
		t.Fatalf("open deposit: %v", err)
	}
	if _, err := financing.Grant(&GrantInput{Username: "pete", Principal: 9000, TermMonths: 9}); err != nil {
		t.Fatalf("grant: %v", err)
	}

	summary, err := dashboard.Admin()
	if err != nil {
		t.Fatalf("admin summary: %v", err)
	}
	// 2 seeded accounts plus boss and pete
	if summary.TotalAccounts != 4 {
		t.Errorf("total accounts = %d, want 4", summary.TotalAccounts)
	}
	if summary.CodesIssued != 2 || summary.CodesConsumed != 1 {
		t.Errorf("codes = %d issued / %d consumed, want 2 / 1", summary.CodesIssued, summary.CodesConsumed)
	}
	if summary.ActiveDeposits != 1 || summary.EscrowedPrincipal != 20000 {
		t.Errorf("deposits = %d active / %d escrowed, want 1 / 20000", summary.ActiveDeposits, summary.EscrowedPrincipal)
	}
	if summary.ActiveFinancing != 1 || summary.FinancingPrincipal != 9000 {
		t.Errorf("financing = %d active / %d principal, want 1 / 9000", summary.ActiveFinancing, summary.FinancingPrincipal)
	}
	// redeem + deposit_open + financing_grant journal entries
	if summary.JournalEntries != 3 {
		t.Errorf("journal entries = %d, want 3", summary.JournalEntries)
	}
}

func TestMerchantSummaryCountsOwnCodes(t *testing.T) {
	store := newTestStore(t)
	notify := NewNotificationService()
	codes := NewCodeService(store, notify)
	dashboard := NewDashboardService(store)

	merchantID := addAccount(t, store, "kiosk", domain.RoleMerchant, 10000)
	userID := addAccount(t, store, "quinn", domain.RoleUser, 0)

	issued, err := codes.Issue(merchantID, &IssueInput{Count: 3, FaceValue: 1000})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := codes.Redeem(userID, issued[0].Code); err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if _, err := codes.SetDisabled(issued[1].Code, true); err != nil {
		t.Fatalf("disable: %v", err)
	}

	summary, err := dashboard.Merchant(merchantID)
	if err != nil {
		t.Fatalf("merchant summary: %v", err)
	}
	if summary.Balance != 7000 {
		t.Errorf("balance = %d, want 7000", summary.Balance)
	}
	if summary.CodesIssued != 3 || summary.CodesConsumed != 1 {
		t.Errorf("codes = %d issued / %d consumed, want 3 / 1", summary.CodesIssued, summary.CodesConsumed)
	}
	// Only the one live unconsumed code counts as outstanding
	if summary.FaceValueOut != 1000 {
		t.Errorf("outstanding face value = %d, want 1000", summary.FaceValueOut)
	}
}

func TestUserSummary(t *testing.T) {
	store := newTestStore(t)
	notify := NewNotificationService()
	deposits := NewDepositService(store, notify)
	financing := NewFinancingService(store, notify)
	dashboard := NewDashboardService(store)

	userID := addAccount(t, store, "rosa", domain.RoleUser, 60000)

	if _, err := deposits.Open(userID, &OpenInput{PlanID: "2", Principal: 50000}); err != nil {
		t.Fatalf("open deposit: %v", err)
	}
	if _, err := financing.Grant(&GrantInput{Username: "rosa", Principal: 3000, TermMonths: 3}); err != nil {
		t.Fatalf("grant: %v", err)
	}

	summary, err := dashboard.User(userID)
	if err != nil {
		t.Fatalf("user summary: %v", err)
	}
	if summary.Balance != 13000 {
		t.Errorf("balance = %d, want 13000", summary.Balance)
	}
	if summary.ActiveDeposits != 1 || summary.DepositPrincipal != 50000 {
		t.Errorf("deposits = %d / %d, want 1 / 50000", summary.ActiveDeposits, summary.DepositPrincipal)
	}
	if summary.ProjectedProfit != 6000 {
		t.Errorf("projected profit = %d, want 6000", summary.ProjectedProfit)
	}
	if summary.ActiveFinancing != 1 {
		t.Errorf("active financing = %d, want 1", summary.ActiveFinancing)
	}
}
