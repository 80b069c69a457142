package handlers

import (
	"time"

	"fastpay-network/internal/adapters/http/middleware"
	"fastpay-network/internal/core/domain"
	"fastpay-network/internal/core/services"
	"fastpay-network/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DepositHandler handles fixed deposit endpoints
type DepositHandler struct {
	depositService *services.DepositService
}

// NewDepositHandler creates a new deposit handler
func NewDepositHandler(depositService *services.DepositService) *DepositHandler {
	return &DepositHandler{depositService: depositService}
}

// Open opens a fixed deposit for the authenticated account
// @Summary Open a fixed deposit
// @Tags Deposits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.OpenInput true "Plan and principal"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /wallet/deposits [post]
func (h *DepositHandler) Open(c *fiber.Ctx) error {
	var input services.OpenInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	dep, err := h.depositService.Open(middleware.AccountID(c), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Created(c, "Deposit opened", fiber.Map{"deposit": dep})
}

// Cancel cancels an active deposit, refunding the principal only. Owners
// can cancel their own deposits; admins can cancel any.
// @Summary Cancel a deposit
// @Tags Deposits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deposit ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /wallet/deposits/{id}/cancel [post]
func (h *DepositHandler) Cancel(c *fiber.Ctx) error {
	depositID := c.Params("id")

	if c.Locals("role") != string(domain.RoleAdmin) {
		owned, err := h.depositService.ListByOwner(middleware.AccountID(c))
		if err != nil {
			return response.InternalServerError(c, "Failed to check deposit")
		}
		found := false
		for _, d := range owned {
			if d.ID == depositID {
				found = true
				break
			}
		}
		if !found {
			return response.NotFound(c, domain.ErrDepositNotFound.Error())
		}
	}

	dep, err := h.depositService.Cancel(depositID)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Deposit cancelled", fiber.Map{"deposit": dep})
}

// Mature applies the maturity transition to one deposit (Admin only).
// This is the manual form of the external maturity trigger.
func (h *DepositHandler) Mature(c *fiber.Ctx) error {
	dep, err := h.depositService.Mature(c.Params("id"))
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Deposit matured", fiber.Map{"deposit": dep})
}

// MatureDue sweeps every past-due active deposit (Admin only)
func (h *DepositHandler) MatureDue(c *fiber.Ctx) error {
	matured, err := h.depositService.MatureDue(time.Now())
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Sweep completed", fiber.Map{"matured": matured})
}

// Mine lists the authenticated account's deposits
func (h *DepositHandler) Mine(c *fiber.Ctx) error {
	deps, err := h.depositService.ListByOwner(middleware.AccountID(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list deposits")
	}
	return response.Success(c, "Deposits retrieved", fiber.Map{"deposits": deps})
}

// List lists every deposit (Admin only)
func (h *DepositHandler) List(c *fiber.Ctx) error {
	deps, err := h.depositService.List()
	if err != nil {
		return response.InternalServerError(c, "Failed to list deposits")
	}
	return response.Success(c, "Deposits retrieved", fiber.Map{"deposits": deps})
}
