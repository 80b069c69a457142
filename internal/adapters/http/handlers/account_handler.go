package handlers

import (
	"fastpay-network/internal/adapters/http/middleware"
	"fastpay-network/internal/core/services"
	"fastpay-network/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles account management endpoints
type AccountHandler struct {
	accountService *services.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// List handles listing all accounts (Admin only)
// @Summary List all accounts
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	accounts, err := h.accountService.List()
	if err != nil {
		return response.InternalServerError(c, "Failed to list accounts")
	}
	return response.Success(c, "Accounts retrieved", fiber.Map{"accounts": accounts})
}

// Get handles getting an account by ID (Admin only)
// @Summary Get account by ID
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/accounts/{id} [get]
func (h *AccountHandler) Get(c *fiber.Ctx) error {
	acc, err := h.accountService.Get(c.Params("id"))
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Account retrieved", fiber.Map{"account": acc})
}

// Save handles administrative create-or-update of an account
// @Summary Create or update an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.AdminSaveInput true "Account data"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/accounts [post]
func (h *AccountHandler) Save(c *fiber.Ctx) error {
	var input services.AdminSaveInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	acc, err := h.accountService.AdminSave(&input)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Account saved", fiber.Map{"account": acc})
}

// Delete handles deleting an account (Admin only). Deletion fails while
// active deposits or financing plans still reference the account.
// @Summary Delete an account
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	if err := h.accountService.Delete(c.Params("id")); err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Account deleted", nil)
}

// SetStatus handles changing an account status (Admin only)
// @Summary Change account status
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param body body services.SetStatusInput true "New status"
// @Success 200 {object} response.Response
// @Router /admin/accounts/{id}/status [patch]
func (h *AccountHandler) SetStatus(c *fiber.Ctx) error {
	var input services.SetStatusInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	acc, err := h.accountService.SetStatus(c.Params("id"), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Status updated", fiber.Map{"account": acc})
}

// UpdateProfile handles a self-service profile update
func (h *AccountHandler) UpdateProfile(c *fiber.Ctx) error {
	var input services.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	acc, err := h.accountService.UpdateProfile(middleware.AccountID(c), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Profile updated", fiber.Map{"account": acc})
}

// LinkCard validates and links a bank card to the authenticated account
// @Summary Link a bank card
// @Tags Cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.LinkCardInput true "Card data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /wallet/cards [post]
func (h *AccountHandler) LinkCard(c *fiber.Ctx) error {
	var input services.LinkCardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	linked, err := h.accountService.LinkCard(middleware.AccountID(c), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Created(c, "Card linked", fiber.Map{"card": linked})
}
