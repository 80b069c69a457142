package handlers

import (
	"fastpay-network/internal/adapters/http/middleware"
	"fastpay-network/internal/core/services"
	"fastpay-network/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TransferHandler handles peer-to-peer transfer endpoints
type TransferHandler struct {
	transferService *services.TransferService
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService *services.TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// Send moves balance from the authenticated account to another account
// addressed by username
// @Summary Send money to another account
// @Tags Transfers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.TransferInput true "Recipient and amount"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /wallet/transfer [post]
func (h *TransferHandler) Send(c *fiber.Ctx) error {
	var input services.TransferInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	out, err := h.transferService.Transfer(middleware.AccountID(c), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Transfer completed", out)
}
