package handlers

import (
	"fastpay-network/internal/adapters/http/middleware"
	"fastpay-network/internal/core/services"
	"fastpay-network/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves role-specific overview summaries
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Admin returns the platform-wide overview (Admin only)
// @Summary Admin dashboard summary
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	summary, err := h.dashboardService.Admin()
	if err != nil {
		return response.InternalServerError(c, "Failed to build summary")
	}
	return response.Success(c, "Summary retrieved", summary)
}

// Merchant returns the authenticated merchant's issuance overview
// @Summary Merchant dashboard summary
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /merchant/dashboard [get]
func (h *DashboardHandler) Merchant(c *fiber.Ctx) error {
	summary, err := h.dashboardService.Merchant(middleware.AccountID(c))
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Summary retrieved", summary)
}

// User returns the authenticated user's wallet overview
// @Summary User dashboard summary
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /wallet/dashboard [get]
func (h *DashboardHandler) User(c *fiber.Ctx) error {
	summary, err := h.dashboardService.User(middleware.AccountID(c))
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Summary retrieved", summary)
}
