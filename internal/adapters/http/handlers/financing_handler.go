package handlers

import (
	"fastpay-network/internal/adapters/http/middleware"
	"fastpay-network/internal/core/domain"
	"fastpay-network/internal/core/services"
	"fastpay-network/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FinancingHandler handles salary financing endpoints
type FinancingHandler struct {
	financingService *services.FinancingService
}

// NewFinancingHandler creates a new financing handler
func NewFinancingHandler(financingService *services.FinancingService) *FinancingHandler {
	return &FinancingHandler{financingService: financingService}
}

// Grant disburses a salary advance to an account by username (Admin only)
// @Summary Grant salary financing
// @Tags Financing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.GrantInput true "Beneficiary and terms"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/financing [post]
func (h *FinancingHandler) Grant(c *fiber.Ctx) error {
	var input services.GrantInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	plan, err := h.financingService.Grant(&input)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Created(c, "Financing granted", fiber.Map{"plan": plan})
}

// StatusRequest represents a financing status transition request
type StatusRequest struct {
	Status domain.FinancingStatus `json:"status"`
}

// SetStatus applies an administrative complete/cancel transition
func (h *FinancingHandler) SetStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	plan, err := h.financingService.SetStatus(c.Params("id"), req.Status)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Plan updated", fiber.Map{"plan": plan})
}

// List lists every financing plan (Admin only)
func (h *FinancingHandler) List(c *fiber.Ctx) error {
	plans, err := h.financingService.List()
	if err != nil {
		return response.InternalServerError(c, "Failed to list plans")
	}
	return response.Success(c, "Plans retrieved", fiber.Map{"plans": plans})
}

// Mine lists the authenticated account's financing plans
func (h *FinancingHandler) Mine(c *fiber.Ctx) error {
	plans, err := h.financingService.ListByBeneficiary(middleware.AccountID(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list plans")
	}
	return response.Success(c, "Plans retrieved", fiber.Map{"plans": plans})
}
