package handlers

import (
	"fastpay-network/internal/adapters/http/middleware"
	"fastpay-network/internal/core/services"
	"fastpay-network/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// JournalHandler handles ledger journal endpoints
type JournalHandler struct {
	journalService *services.JournalService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService *services.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// Mine returns the authenticated account's history, newest first
// @Summary Get own transaction history
// @Tags Journal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /wallet/history [get]
func (h *JournalHandler) Mine(c *fiber.Ctx) error {
	entries, err := h.journalService.ListByAccount(middleware.AccountID(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to load history")
	}
	return response.Success(c, "History retrieved", fiber.Map{"entries": entries})
}

// List returns the complete journal (Admin only)
func (h *JournalHandler) List(c *fiber.Ctx) error {
	entries, err := h.journalService.List()
	if err != nil {
		return response.InternalServerError(c, "Failed to load journal")
	}
	return response.Success(c, "Journal retrieved", fiber.Map{"entries": entries})
}

// ForAccount returns one account's journal entries (Admin only)
func (h *JournalHandler) ForAccount(c *fiber.Ctx) error {
	entries, err := h.journalService.ListByAccount(c.Params("id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to load journal")
	}
	return response.Success(c, "Journal retrieved", fiber.Map{"entries": entries})
}
