package services

import (
	"strings"
	"time"

	"fastpay-network/internal/adapters/persistence"
	"fastpay-network/internal/core/domain"
	"fastpay-network/internal/pkg/card"
	"fastpay-network/internal/pkg/password"

	"github.com/google/uuid"
)

// AccountService handles account lifecycle and profile management. Balance
// mutations never happen here directly; they go through the store's
// AdjustBalance choke point inside engine operations.
type AccountService struct {
	store  *persistence.Store
	notify *NotificationService
}

// NewAccountService creates a new account service
func NewAccountService(store *persistence.Store, notify *NotificationService) *AccountService {
	return &AccountService{store: store, notify: notify}
}

// RegisterInput represents self-service registration input
type RegisterInput struct {
	Username    string `json:"username" validate:"required,min=4"`
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Password    string `json:"password" validate:"required,min=6"`
}

// Register creates a new USER account with a zero balance
func (s *AccountService) Register(input *RegisterInput) (*domain.Account, error) {
	username := strings.TrimSpace(input.Username)
	if len(username) < 4 {
		return nil, domain.ErrUsernameTooShort
	}
	if !password.Validate(input.Password) {
		return nil, domain.ErrWeakPassword
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	acc := domain.Account{
		ID:           uuid.NewString(),
		Username:     username,
		FullName:     strings.TrimSpace(input.FullName),
		Email:        strings.TrimSpace(input.Email),
		PhoneNumber:  strings.TrimSpace(input.PhoneNumber),
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Balance:      0,
		Status:       domain.StatusActive,
		CreatedAt:    time.Now(),
	}

	err = s.store.Mutate(func(st *persistence.State) error {
		return st.CreateAccount(acc)
	})
	if err != nil {
		return nil, err
	}

	s.notify.Push("Accounts", domain.NotifyUser, "New account registered: @%s", acc.Username)

	out := acc.Sanitized()
	return &out, nil
}

// Get returns an account by id
func (s *AccountService) Get(id string) (*domain.Account, error) {
	var out domain.Account
	err := s.store.View(func(st *persistence.State) error {
		acc, err := st.Account(id)
		if err != nil {
			return err
		}
		out = acc.Sanitized()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByUsername returns an account by case-insensitive username
func (s *AccountService) GetByUsername(username string) (*domain.Account, error) {
	var out domain.Account
	err := s.store.View(func(st *persistence.State) error {
		acc, err := st.AccountByUsername(username)
		if err != nil {
			return err
		}
		out = acc.Sanitized()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all accounts, sanitized, in insertion order
func (s *AccountService) List() ([]domain.Account, error) {
	var out []domain.Account
	err := s.store.View(func(st *persistence.State) error {
		for _, acc := range st.Accounts() {
			out = append(out, acc.Sanitized())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdminSaveInput represents an administrative create-or-update of an account
type AdminSaveInput struct {
	ID       string      `json:"id,omitempty"`
	Username string      `json:"username" validate:"required,min=4"`
	FullName string      `json:"fullName" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password,omitempty"`
	Role     domain.Role `json:"role" validate:"required"`
	Balance  int64       `json:"balance"`
}

// AdminSave creates a new account or edits an existing one with
// administrator privileges (role and balance included).
func (s *AccountService) AdminSave(input *AdminSaveInput) (*domain.Account, error) {
	username := strings.TrimSpace(input.Username)
	if len(username) < 4 {
		return nil, domain.ErrUsernameTooShort
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}
	if input.Balance < 0 {
		return nil, domain.ErrInvalidAmount
	}

	var hash string
	if input.Password != "" {
		if !password.Validate(input.Password) {
			return nil, domain.ErrWeakPassword
		}
		var err error
		hash, err = password.Hash(input.Password)
		if err != nil {
			return nil, err
		}
	}

	var out domain.Account
	err := s.store.Mutate(func(st *persistence.State) error {
		if input.ID == "" {
			if hash == "" {
				return domain.ErrWeakPassword
			}
			acc := domain.Account{
				ID:           uuid.NewString(),
				Username:     username,
				FullName:     strings.TrimSpace(input.FullName),
				Email:        strings.TrimSpace(input.Email),
				PasswordHash: hash,
				Role:         input.Role,
				Balance:      input.Balance,
				Status:       domain.StatusActive,
				CreatedAt:    time.Now(),
			}
			if err := st.CreateAccount(acc); err != nil {
				return err
			}
			out = acc.Sanitized()
			return nil
		}

		acc, err := st.Account(input.ID)
		if err != nil {
			return err
		}
		if !strings.EqualFold(acc.Username, username) {
			if _, err := st.AccountByUsername(username); err == nil {
				return domain.ErrDuplicateUsername
			}
		}
		acc.Username = username
		acc.FullName = strings.TrimSpace(input.FullName)
		acc.Email = strings.TrimSpace(input.Email)
		acc.Role = input.Role
		acc.Balance = input.Balance
		if hash != "" {
			acc.PasswordHash = hash
		}
		out = acc.Sanitized()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an account. Accounts referenced by an active deposit or
// financing plan cannot be deleted.
func (s *AccountService) Delete(id string) error {
	return s.store.Mutate(func(st *persistence.State) error {
		return st.DeleteAccount(id)
	})
}

// SetStatusInput represents a status change request
type SetStatusInput struct {
	Status domain.AccountStatus `json:"status" validate:"required"`
	Reason string               `json:"reason,omitempty"`
}

// SetStatus changes an account's lifecycle status
func (s *AccountService) SetStatus(id string, input *SetStatusInput) (*domain.Account, error) {
	if !domain.ValidStatus(input.Status) {
		return nil, domain.ErrInvalidStatus
	}

	var out domain.Account
	err := s.store.Mutate(func(st *persistence.State) error {
		acc, err := st.Account(id)
		if err != nil {
			return err
		}
		acc.Status = input.Status
		acc.StatusReason = input.Reason
		out = acc.Sanitized()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Push("Accounts", domain.NotifyUser, "Account @%s set to %s", out.Username, out.Status)
	return &out, nil
}

// UpdateProfileInput represents a self-service profile edit
type UpdateProfileInput struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// UpdateProfile updates an account's own profile fields
func (s *AccountService) UpdateProfile(id string, input *UpdateProfileInput) (*domain.Account, error) {
	var out domain.Account
	err := s.store.Mutate(func(st *persistence.State) error {
		acc, err := st.Account(id)
		if err != nil {
			return err
		}
		if input.FullName != "" {
			acc.FullName = strings.TrimSpace(input.FullName)
		}
		if input.Email != "" {
			acc.Email = strings.TrimSpace(input.Email)
		}
		if input.PhoneNumber != "" {
			acc.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
		}
		out = acc.Sanitized()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePasswordInput represents a password change request
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// ChangePassword verifies the old password and sets a new one
func (s *AccountService) ChangePassword(id string, input *ChangePasswordInput) error {
	if !password.Validate(input.NewPassword) {
		return domain.ErrWeakPassword
	}

	hash, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	err = s.store.Mutate(func(st *persistence.State) error {
		acc, err := st.Account(id)
		if err != nil {
			return err
		}
		if !password.Verify(input.OldPassword, acc.PasswordHash) {
			return domain.ErrInvalidCredentials
		}
		acc.PasswordHash = hash
		return nil
	})
	if err != nil {
		return err
	}

	s.notify.Push("Security", domain.NotifySecurity, "Password updated for account %s", id)
	return nil
}

// LinkCardInput represents a link-card request
type LinkCardInput struct {
	Number string `json:"number" validate:"required"`
	Expiry string `json:"expiry" validate:"required"`
	Holder string `json:"holder" validate:"required"`
}

// LinkCard validates a presented card and appends it to the account's
// linked card list. The validator gates the mutation; the CVC is never
// kept.
func (s *AccountService) LinkCard(id string, input *LinkCardInput) (*domain.BankCard, error) {
	valid, brand := card.Validate(input.Number)
	if !valid || brand == domain.BrandUnknown {
		return nil, domain.ErrInvalidCard
	}
	if !card.ValidExpiry(input.Expiry) {
		return nil, domain.ErrCardExpired
	}

	linked := domain.BankCard{
		ID:     uuid.NewString(),
		Number: strings.ReplaceAll(input.Number, " ", ""),
		Brand:  brand,
		Expiry: input.Expiry,
		Holder: strings.TrimSpace(input.Holder),
	}

	err := s.store.Mutate(func(st *persistence.State) error {
		acc, err := st.Account(id)
		if err != nil {
			return err
		}
		acc.LinkedCards = append(acc.LinkedCards, linked)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Push("Cards", domain.NotifySecurity, "A %s card was linked to account %s", brand, id)
	return &linked, nil
}
