package services

import (
	"errors"
	"testing"

	"fastpay-network/internal/core/domain"
)

func TestRegisterCreatesZeroBalanceUser(t *testing.T) {
	store := newTestStore(t)
	svc := NewAccountService(store, NewNotificationService())

	acc, err := svc.Register(&RegisterInput{
		Username: "grace",
		FullName: "Grace Tester",
		Email:    "grace@example.com",
		Password: "secret99",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if acc.Role != domain.RoleUser {
		t.Errorf("role = %s, want %s", acc.Role, domain.RoleUser)
	}
	if acc.Balance != 0 {
		t.Errorf("balance = %d, want 0", acc.Balance)
	}
	if acc.PasswordHash != "" {
		t.Error("sanitized account leaked the password hash")
	}
}

func TestRegisterRejectsDuplicateUsernameCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	svc := NewAccountService(store, NewNotificationService())

	first := &RegisterInput{Username: "grace", FullName: "Grace", Email: "g@example.com", Password: "secret99"}
	if _, err := svc.Register(first); err != nil {
		t.Fatalf("register: %v", err)
	}

	dup := &RegisterInput{Username: "GRACE", FullName: "Other", Email: "o@example.com", Password: "secret99"}
	if _, err := svc.Register(dup); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Errorf("Register(duplicate) error = %v, want %v", err, domain.ErrDuplicateUsername)
	}

	// Seed accounts count too
	seeded := &RegisterInput{Username: "admin", FullName: "Fake", Email: "f@example.com", Password: "secret99"}
	if _, err := svc.Register(seeded); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Errorf("Register(seeded name) error = %v, want %v", err, domain.ErrDuplicateUsername)
	}
}

func TestRegisterValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewAccountService(store, NewNotificationService())

	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{"short username", RegisterInput{Username: "abc", Password: "secret99"}, domain.ErrUsernameTooShort},
		{"whitespace username", RegisterInput{Username: "  ab  ", Password: "secret99"}, domain.ErrUsernameTooShort},
		{"short password", RegisterInput{Username: "valid", Password: "12345"}, domain.ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(&tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeleteRefusedWhileDepositActive(t *testing.T) {
	store := newTestStore(t)
	notify := NewNotificationService()
	accounts := NewAccountService(store, notify)
	deposits := NewDepositService(store, notify)

	ownerID := addAccount(t, store, "henry", domain.RoleUser, 20000)

	dep, err := deposits.Open(ownerID, &OpenInput{PlanID: "1", Principal: 15000})
	if err != nil {
		t.Fatalf("open deposit: %v", err)
	}

	if err := accounts.Delete(ownerID); !errors.Is(err, domain.ErrAccountReferenced) {
		t.Fatalf("Delete() error = %v, want %v", err, domain.ErrAccountReferenced)
	}

	// Once the deposit is closed the account can go
	if _, err := deposits.Cancel(dep.ID); err != nil {
		t.Fatalf("cancel deposit: %v", err)
	}
	if err := accounts.Delete(ownerID); err != nil {
		t.Fatalf("Delete() after cancel: %v", err)
	}
	if _, err := accounts.Get(ownerID); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("Get(deleted) error = %v, want %v", err, domain.ErrAccountNotFound)
	}
}

func TestDeleteRefusedWhileFinancingActive(t *testing.T) {
	store := newTestStore(t)
	notify := NewNotificationService()
	accounts := NewAccountService(store, notify)
	financing := NewFinancingService(store, notify)

	ownerID := addAccount(t, store, "henry", domain.RoleUser, 0)

	plan, err := financing.Grant(&GrantInput{Username: "henry", Principal: 5000, TermMonths: 5})
	if err != nil {
		t.Fatalf("grant: %v", err)
	}
	if err := accounts.Delete(ownerID); !errors.Is(err, domain.ErrAccountReferenced) {
		t.Fatalf("Delete() error = %v, want %v", err, domain.ErrAccountReferenced)
	}

	if _, err := financing.SetStatus(plan.ID, domain.FinancingCompleted); err != nil {
		t.Fatalf("complete plan: %v", err)
	}
	if err := accounts.Delete(ownerID); err != nil {
		t.Fatalf("Delete() after completion: %v", err)
	}
}

func TestAdminSaveEditsRoleAndBalance(t *testing.T) {
	store := newTestStore(t)
	svc := NewAccountService(store, NewNotificationService())

	id := addAccount(t, store, "iris", domain.RoleUser, 100)

	out, err := svc.AdminSave(&AdminSaveInput{
		ID:       id,
		Username: "iris",
		FullName: "Iris Promoted",
		Email:    "iris@example.com",
		Role:     domain.RoleMerchant,
		Balance:  50000,
	})
	if err != nil {
		t.Fatalf("admin save: %v", err)
	}
	if out.Role != domain.RoleMerchant {
		t.Errorf("role = %s, want %s", out.Role, domain.RoleMerchant)
	}
	if got := balanceOf(t, store, id); got != 50000 {
		t.Errorf("balance = %d, want 50000", got)
	}

	// Renaming onto an existing username is refused
	addAccount(t, store, "taken", domain.RoleUser, 0)
	_, err = svc.AdminSave(&AdminSaveInput{
		ID:       id,
		Username: "taken",
		FullName: "Iris",
		Email:    "iris@example.com",
		Role:     domain.RoleMerchant,
	})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Errorf("AdminSave(rename collision) error = %v, want %v", err, domain.ErrDuplicateUsername)
	}
}

func TestChangePasswordVerifiesOldPassword(t *testing.T) {
	store := newTestStore(t)
	svc := NewAccountService(store, NewNotificationService())

	acc, err := svc.Register(&RegisterInput{
		Username: "july",
		FullName: "July",
		Email:    "july@example.com",
		Password: "oldpass1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	wrong := &ChangePasswordInput{OldPassword: "nope", NewPassword: "newpass1"}
	if err := svc.ChangePassword(acc.ID, wrong); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("ChangePassword(wrong old) error = %v, want %v", err, domain.ErrInvalidCredentials)
	}

	right := &ChangePasswordInput{OldPassword: "oldpass1", NewPassword: "newpass1"}
	if err := svc.ChangePassword(acc.ID, right); err != nil {
		t.Fatalf("change password: %v", err)
	}
}

func TestLinkCardValidatesBeforeMutating(t *testing.T) {
	store := newTestStore(t)
	svc := NewAccountService(store, NewNotificationService())

	id := addAccount(t, store, "kate", domain.RoleUser, 0)

	tests := []struct {
		name    string
		input   LinkCardInput
		wantErr error
	}{
		{"luhn failure", LinkCardInput{Number: "4111111111111112", Expiry: "12/30", Holder: "Kate"}, domain.ErrInvalidCard},
		{"unknown brand", LinkCardInput{Number: "6011000990139424", Expiry: "12/30", Holder: "Kate"}, domain.ErrInvalidCard},
		{"expired", LinkCardInput{Number: "4111111111111111", Expiry: "01/20", Holder: "Kate"}, domain.ErrCardExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.LinkCard(id, &tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("LinkCard() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	linked, err := svc.LinkCard(id, &LinkCardInput{Number: "4111 1111 1111 1111", Expiry: "12/30", Holder: "Kate"})
	if err != nil {
		t.Fatalf("link card: %v", err)
	}
	if linked.Brand != domain.BrandVisa {
		t.Errorf("brand = %s, want %s", linked.Brand, domain.BrandVisa)
	}
	if linked.Number != "4111111111111111" {
		t.Errorf("stored number = %q, want digits only", linked.Number)
	}

	got, err := svc.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.LinkedCards) != 1 {
		t.Errorf("linked cards = %d, want 1", len(got.LinkedCards))
	}
}
