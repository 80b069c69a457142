package handlers

import (
	"fastpay-network/internal/adapters/http/middleware"
	"fastpay-network/internal/core/services"
	"fastpay-network/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService    *services.AuthService
	accountService *services.AccountService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, accountService *services.AccountService) *AuthHandler {
	return &AuthHandler{authService: authService, accountService: accountService}
}

// Register handles self-service registration
// @Summary Register a new user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	acc, err := h.accountService.Register(&input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Account registered", fiber.Map{"account": acc})
}

// Login handles login
// @Summary Log in with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	out, err := h.authService.Login(&input)
	if err != nil {
		return response.Unauthorized(c, "Invalid credentials or inactive account")
	}

	return response.Success(c, "Logged in", out)
}

// RefreshRequest represents a token refresh request body
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh handles token refresh
// @Summary Refresh the token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RefreshRequest true "Refresh token"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return response.BadRequest(c, "Refresh token required")
	}

	out, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		return response.Unauthorized(c, "Invalid or expired refresh token")
	}

	return response.Success(c, "Token refreshed", out)
}

// Me returns the authenticated account
// @Summary Get the current account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	acc, err := h.accountService.Get(middleware.AccountID(c))
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Account retrieved", fiber.Map{"account": acc})
}

// ChangePassword changes the authenticated account's password
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ChangePasswordInput true "Old and new password"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var input services.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.accountService.ChangePassword(middleware.AccountID(c), &input); err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Password updated", nil)
}
