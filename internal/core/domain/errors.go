package domain

import "errors"

// Validation errors - malformed or out-of-range input, rejected before
// any mutation
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrSameAccount      = errors.New("sender and receiver are the same account")
	ErrBelowMinimum     = errors.New("amount below plan minimum")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidStatus    = errors.New("invalid account status")
	ErrWeakPassword     = errors.New("password too short")
	ErrUsernameTooShort = errors.New("username must be at least 4 characters")
	ErrInvalidCard      = errors.New("card number failed validation")
	ErrCardExpired      = errors.New("card is expired")
)

// Not-found errors - a referenced account/code/deposit/plan does not resolve
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrCodeNotFound      = errors.New("redemption code not found")
	ErrDepositNotFound   = errors.New("deposit not found")
	ErrPlanNotFound      = errors.New("deposit plan not found")
	ErrFinancingNotFound = errors.New("financing plan not found")
	ErrPageNotFound      = errors.New("page not found")
	ErrServiceNotFound   = errors.New("landing service not found")
)

// Conflict errors - the operation contradicts current state
var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrCodeAlreadyUsed    = errors.New("redemption code already used")
	ErrCodeDisabled       = errors.New("redemption code is disabled")
	ErrCodeCollision      = errors.New("redemption code collision")
	ErrDepositNotActive   = errors.New("deposit is not active")
	ErrFinancingNotActive = errors.New("financing plan is not active")
	ErrAccountReferenced  = errors.New("account has active deposits or financing plans")
	ErrAccountNotActive   = errors.New("account is not active")
)

// ErrInsufficientFunds is returned whenever a debit would take a balance
// below zero. The non-negative invariant is enforced at the store's
// balance choke point, so no engine can bypass it.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// IsValidation reports whether err belongs to the validation class
func IsValidation(err error) bool {
	for _, e := range []error{
		ErrInvalidInput, ErrInvalidAmount, ErrSameAccount, ErrBelowMinimum,
		ErrInvalidRole, ErrInvalidStatus, ErrWeakPassword,
		ErrUsernameTooShort, ErrInvalidCard, ErrCardExpired,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err belongs to the not-found class
func IsNotFound(err error) bool {
	for _, e := range []error{
		ErrAccountNotFound, ErrCodeNotFound, ErrDepositNotFound,
		ErrPlanNotFound, ErrFinancingNotFound, ErrPageNotFound,
		ErrServiceNotFound,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// IsConflict reports whether err belongs to the conflict class
func IsConflict(err error) bool {
	for _, e := range []error{
		ErrDuplicateUsername, ErrCodeAlreadyUsed, ErrCodeDisabled,
		ErrCodeCollision, ErrDepositNotActive, ErrFinancingNotActive,
		ErrAccountReferenced, ErrAccountNotActive,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
