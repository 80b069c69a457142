package handlers

import (
	"fastpay-network/internal/adapters/http/middleware"
	"fastpay-network/internal/core/services"
	"fastpay-network/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CodeHandler handles redemption code endpoints
type CodeHandler struct {
	codeService *services.CodeService
}

// NewCodeHandler creates a new code handler
func NewCodeHandler(codeService *services.CodeService) *CodeHandler {
	return &CodeHandler{codeService: codeService}
}

// Issue handles batch issuance (Merchant or Admin). Merchants pay face
// value for every issued code.
// @Summary Issue redemption codes
// @Tags Codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.IssueInput true "Batch parameters"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /merchant/codes [post]
func (h *CodeHandler) Issue(c *fiber.Ctx) error {
	var input services.IssueInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	codes, err := h.codeService.Issue(middleware.AccountID(c), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Created(c, "Codes issued", fiber.Map{"codes": codes})
}

// RedeemRequest represents a redeem request body
type RedeemRequest struct {
	Code string `json:"code"`
}

// Redeem consumes a code and credits the authenticated account
// @Summary Redeem a prepaid code
// @Tags Codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RedeemRequest true "Code"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /wallet/redeem [post]
func (h *CodeHandler) Redeem(c *fiber.Ctx) error {
	var req RedeemRequest
	if err := c.BodyParser(&req); err != nil || req.Code == "" {
		return response.BadRequest(c, "Code required")
	}

	amount, err := h.codeService.Redeem(middleware.AccountID(c), req.Code)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Code redeemed", fiber.Map{"amount": amount})
}

// List handles listing all codes (Admin only)
func (h *CodeHandler) List(c *fiber.Ctx) error {
	codes, err := h.codeService.List()
	if err != nil {
		return response.InternalServerError(c, "Failed to list codes")
	}
	return response.Success(c, "Codes retrieved", fiber.Map{"codes": codes})
}

// Mine lists the authenticated merchant's issued codes
func (h *CodeHandler) Mine(c *fiber.Ctx) error {
	codes, err := h.codeService.ListByIssuer(middleware.AccountID(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list codes")
	}
	return response.Success(c, "Codes retrieved", fiber.Map{"codes": codes})
}

// DisableRequest represents a disable/enable request body
type DisableRequest struct {
	Disabled bool `json:"disabled"`
}

// SetDisabled toggles whether an unconsumed code can be redeemed (Admin only)
func (h *CodeHandler) SetDisabled(c *fiber.Ctx) error {
	var req DisableRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	code, err := h.codeService.SetDisabled(c.Params("code"), req.Disabled)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Code updated", fiber.Map{"code": code})
}
