package services

import (
	"strings"

	"fastpay-network/internal/adapters/persistence"
	"fastpay-network/internal/config"
	"fastpay-network/internal/core/domain"
	"fastpay-network/internal/pkg/jwt"
	"fastpay-network/internal/pkg/password"

	"github.com/google/uuid"
)

// AuthService handles login and token refresh
type AuthService struct {
	store *persistence.Store
	cfg   *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(store *persistence.Store, cfg *config.Config) *AuthService {
	return &AuthService{store: store, cfg: cfg}
}

// LoginInput represents login credentials
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the authenticated account and its token pair
type LoginOutput struct {
	Account domain.Account   `json:"account"`
	Tokens  domain.TokenPair `json:"tokens"`
}

// Login verifies credentials and issues an access/refresh token pair.
// Suspended and disabled accounts cannot log in.
func (s *AuthService) Login(input *LoginInput) (*LoginOutput, error) {
	var acc domain.Account
	err := s.store.View(func(st *persistence.State) error {
		found, err := st.AccountByUsername(strings.TrimSpace(input.Username))
		if err != nil {
			return domain.ErrInvalidCredentials
		}
		acc = *found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !password.Verify(input.Password, acc.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if acc.Status != domain.StatusActive {
		return nil, domain.ErrAccountNotActive
	}

	tokens, err := s.issueTokens(&acc)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Account: acc.Sanitized(), Tokens: *tokens}, nil
}

// Refresh validates a refresh token and issues a fresh pair
func (s *AuthService) Refresh(refreshToken string) (*LoginOutput, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if err == jwt.ErrTokenExpired {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	var acc domain.Account
	err = s.store.View(func(st *persistence.State) error {
		found, err := st.Account(claims.AccountID)
		if err != nil {
			return domain.ErrTokenInvalid
		}
		acc = *found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if acc.Status != domain.StatusActive {
		return nil, domain.ErrAccountNotActive
	}

	tokens, err := s.issueTokens(&acc)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Account: acc.Sanitized(), Tokens: *tokens}, nil
}

// issueTokens builds a token pair for an account
func (s *AuthService) issueTokens(acc *domain.Account) (*domain.TokenPair, error) {
	access, err := jwt.GenerateAccessToken(acc.ID, acc.Username, string(acc.Role), s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefreshToken(acc.ID, uuid.NewString(), s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshTokenDays)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
