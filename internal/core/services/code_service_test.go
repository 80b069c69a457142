package services

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"fastpay-network/internal/core/domain"
)

func TestIssueByAdminMintsFreeCodes(t *testing.T) {
	store := newTestStore(t)
	svc := NewCodeService(store, NewNotificationService())

	adminID := addAccount(t, store, "root", domain.RoleAdmin, 0)

	codes, err := svc.Issue(adminID, &IssueInput{Count: 3, FaceValue: 1000})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(codes) != 3 {
		t.Fatalf("issued %d codes, want 3", len(codes))
	}
	for _, c := range codes {
		if !strings.HasPrefix(c.Code, "FP-") || strings.HasPrefix(c.Code, "FP-M-") {
			t.Errorf("admin code %q should carry the FP- prefix", c.Code)
		}
		if c.FaceValue != 1000 {
			t.Errorf("code face value = %d, want 1000", c.FaceValue)
		}
	}
	if got := balanceOf(t, store, adminID); got != 0 {
		t.Errorf("admin balance = %d, want 0", got)
	}
}

func TestIssueByMerchantDebitsFaceValue(t *testing.T) {
	store := newTestStore(t)
	svc := NewCodeService(store, NewNotificationService())

	merchantID := addAccount(t, store, "shop", domain.RoleMerchant, 5000)

	codes, err := svc.Issue(merchantID, &IssueInput{Count: 4, FaceValue: 1000})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	for _, c := range codes {
		if !strings.HasPrefix(c.Code, "FP-M-") {
			t.Errorf("merchant code %q should carry the FP-M- prefix", c.Code)
		}
	}
	if got := balanceOf(t, store, merchantID); got != 1000 {
		t.Errorf("merchant balance = %d, want 1000", got)
	}

	kinds := journalKinds(t, store, merchantID)
	if len(kinds) != 1 || kinds[0] != domain.JournalIssueCode {
		t.Errorf("merchant journal = %v, want [%s]", kinds, domain.JournalIssueCode)
	}
}

func TestIssueByMerchantFailsWholeBatchWhenUnderfunded(t *testing.T) {
	store := newTestStore(t)
	svc := NewCodeService(store, NewNotificationService())

	merchantID := addAccount(t, store, "shop", domain.RoleMerchant, 3500)

	_, err := svc.Issue(merchantID, &IssueInput{Count: 4, FaceValue: 1000})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("Issue() error = %v, want %v", err, domain.ErrInsufficientFunds)
	}
	if got := balanceOf(t, store, merchantID); got != 3500 {
		t.Errorf("merchant balance = %d, want 3500", got)
	}

	all, err := svc.ListByIssuer(merchantID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("failed batch registered %d codes", len(all))
	}
}

func TestIssueRejections(t *testing.T) {
	store := newTestStore(t)
	svc := NewCodeService(store, NewNotificationService())
	adminID := addAccount(t, store, "root", domain.RoleAdmin, 0)

	tests := []struct {
		name  string
		input IssueInput
	}{
		{"zero count", IssueInput{Count: 0, FaceValue: 100}},
		{"count over cap", IssueInput{Count: 101, FaceValue: 100}},
		{"zero face value", IssueInput{Count: 1, FaceValue: 0}},
		{"negative face value", IssueInput{Count: 1, FaceValue: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Issue(adminID, &tt.input); !errors.Is(err, domain.ErrInvalidAmount) {
				t.Errorf("Issue() error = %v, want %v", err, domain.ErrInvalidAmount)
			}
		})
	}
}

func TestRedeemCreditsFaceValueOnce(t *testing.T) {
	store := newTestStore(t)
	svc := NewCodeService(store, NewNotificationService())

	adminID := addAccount(t, store, "root", domain.RoleAdmin, 0)
	userID := addAccount(t, store, "carol", domain.RoleUser, 100)

	codes, err := svc.Issue(adminID, &IssueInput{Count: 1, FaceValue: 2500})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	value, err := svc.Redeem(userID, codes[0].Code)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if value != 2500 {
		t.Errorf("redeemed value = %d, want 2500", value)
	}
	if got := balanceOf(t, store, userID); got != 2600 {
		t.Errorf("user balance = %d, want 2600", got)
	}

	// Second redemption of the same code must fail without paying out
	if _, err := svc.Redeem(userID, codes[0].Code); !errors.Is(err, domain.ErrCodeAlreadyUsed) {
		t.Fatalf("second Redeem() error = %v, want %v", err, domain.ErrCodeAlreadyUsed)
	}
	if got := balanceOf(t, store, userID); got != 2600 {
		t.Errorf("user balance after replay = %d, want 2600", got)
	}
}

func TestRedeemIsCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	svc := NewCodeService(store, NewNotificationService())

	adminID := addAccount(t, store, "root", domain.RoleAdmin, 0)
	userID := addAccount(t, store, "carol", domain.RoleUser, 0)

	codes, err := svc.Issue(adminID, &IssueInput{Count: 1, FaceValue: 100})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Redeem(userID, strings.ToLower(codes[0].Code)); err != nil {
		t.Fatalf("redeem lowercase: %v", err)
	}
	if got := balanceOf(t, store, userID); got != 100 {
		t.Errorf("user balance = %d, want 100", got)
	}
}

func TestRedeemUnknownAndDisabledCodes(t *testing.T) {
	store := newTestStore(t)
	svc := NewCodeService(store, NewNotificationService())

	adminID := addAccount(t, store, "root", domain.RoleAdmin, 0)
	userID := addAccount(t, store, "carol", domain.RoleUser, 0)

	if _, err := svc.Redeem(userID, "FP-XXXX-XXXX"); !errors.Is(err, domain.ErrCodeNotFound) {
		t.Errorf("Redeem(unknown) error = %v, want %v", err, domain.ErrCodeNotFound)
	}

	codes, err := svc.Issue(adminID, &IssueInput{Count: 1, FaceValue: 100})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.SetDisabled(codes[0].Code, true); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if _, err := svc.Redeem(userID, codes[0].Code); !errors.Is(err, domain.ErrCodeDisabled) {
		t.Errorf("Redeem(disabled) error = %v, want %v", err, domain.ErrCodeDisabled)
	}
	if got := balanceOf(t, store, userID); got != 0 {
		t.Errorf("user balance = %d, want 0", got)
	}

	// Re-enabled codes redeem normally
	if _, err := svc.SetDisabled(codes[0].Code, false); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if _, err := svc.Redeem(userID, codes[0].Code); err != nil {
		t.Fatalf("redeem after enable: %v", err)
	}
}

func TestConcurrentRedeemPaysOutExactlyOnce(t *testing.T) {
	store := newTestStore(t)
	svc := NewCodeService(store, NewNotificationService())

	adminID := addAccount(t, store, "root", domain.RoleAdmin, 0)
	userID := addAccount(t, store, "carol", domain.RoleUser, 0)

	codes, err := svc.Issue(adminID, &IssueInput{Count: 1, FaceValue: 700})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Redeem(userID, codes[0].Code)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, domain.ErrCodeAlreadyUsed) {
			t.Errorf("unexpected redeem error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("%d redemptions succeeded, want exactly 1", succeeded)
	}
	if got := balanceOf(t, store, userID); got != 700 {
		t.Errorf("user balance = %d, want 700", got)
	}
}

func TestSetDisabledRejectsConsumedCode(t *testing.T) {
	store := newTestStore(t)
	svc := NewCodeService(store, NewNotificationService())

	adminID := addAccount(t, store, "root", domain.RoleAdmin, 0)
	userID := addAccount(t, store, "carol", domain.RoleUser, 0)

	codes, err := svc.Issue(adminID, &IssueInput{Count: 1, FaceValue: 100})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Redeem(userID, codes[0].Code); err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if _, err := svc.SetDisabled(codes[0].Code, true); !errors.Is(err, domain.ErrCodeAlreadyUsed) {
		t.Errorf("SetDisabled(consumed) error = %v, want %v", err, domain.ErrCodeAlreadyUsed)
	}
}
