package handlers

import (
	"fastpay-network/internal/core/domain"
	"fastpay-network/internal/core/services"
	"fastpay-network/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SiteHandler handles site configuration, landing services, custom pages
// and the admin notification feed
type SiteHandler struct {
	siteService *services.SiteService
	notify      *services.NotificationService
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(siteService *services.SiteService, notify *services.NotificationService) *SiteHandler {
	return &SiteHandler{siteService: siteService, notify: notify}
}

// GetConfig returns the public site configuration
// @Summary Get site configuration
// @Tags Site
// @Produce json
// @Success 200 {object} response.Response
// @Router /site/config [get]
func (h *SiteHandler) GetConfig(c *fiber.Ctx) error {
	cfg, err := h.siteService.GetConfig()
	if err != nil {
		return response.InternalServerError(c, "Failed to load configuration")
	}
	return response.Success(c, "Configuration retrieved", cfg)
}

// UpdateConfig replaces the site configuration (Admin only)
// @Summary Update site configuration
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.SiteConfig true "Site configuration"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/site/config [put]
func (h *SiteHandler) UpdateConfig(c *fiber.Ctx) error {
	var cfg domain.SiteConfig
	if err := c.BodyParser(&cfg); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.siteService.UpdateConfig(&cfg)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Configuration updated", updated)
}

// ListServices returns the landing page service tiles
// @Summary List landing services
// @Tags Site
// @Produce json
// @Success 200 {object} response.Response
// @Router /site/services [get]
func (h *SiteHandler) ListServices(c *fiber.Ctx) error {
	items, err := h.siteService.ListLandingServices()
	if err != nil {
		return response.InternalServerError(c, "Failed to load services")
	}
	return response.Success(c, "Services retrieved", fiber.Map{"services": items})
}

// SaveService creates or updates a landing service tile (Admin only)
func (h *SiteHandler) SaveService(c *fiber.Ctx) error {
	var svc domain.LandingService
	if err := c.BodyParser(&svc); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	saved, err := h.siteService.SaveLandingService(&svc)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Service saved", saved)
}

// DeleteService removes a landing service tile (Admin only)
func (h *SiteHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.siteService.DeleteLandingService(c.Params("id")); err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Service deleted", nil)
}

// ListPages returns the custom content pages
// @Summary List custom pages
// @Tags Site
// @Produce json
// @Success 200 {object} response.Response
// @Router /site/pages [get]
func (h *SiteHandler) ListPages(c *fiber.Ctx) error {
	pages, err := h.siteService.ListPages()
	if err != nil {
		return response.InternalServerError(c, "Failed to load pages")
	}
	return response.Success(c, "Pages retrieved", fiber.Map{"pages": pages})
}

// SavePage creates or updates a custom page (Admin only)
func (h *SiteHandler) SavePage(c *fiber.Ctx) error {
	var page domain.CustomPage
	if err := c.BodyParser(&page); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	saved, err := h.siteService.SavePage(&page)
	if err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Page saved", saved)
}

// DeletePage removes a custom page (Admin only)
func (h *SiteHandler) DeletePage(c *fiber.Ctx) error {
	if err := h.siteService.DeletePage(c.Params("id")); err != nil {
		return response.FromDomainError(c, err)
	}
	return response.Success(c, "Page deleted", nil)
}

// Notifications returns the admin activity feed, newest first
// @Summary List admin notifications
// @Tags Site
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/notifications [get]
func (h *SiteHandler) Notifications(c *fiber.Ctx) error {
	return response.Success(c, "Notifications retrieved", fiber.Map{
		"notifications": h.notify.List(),
	})
}

// MarkNotificationsRead marks every notification as read
func (h *SiteHandler) MarkNotificationsRead(c *fiber.Ctx) error {
	h.notify.MarkAllRead()
	return response.Success(c, "Notifications marked as read", nil)
}
