package services

import (
	"strings"

	"fastpay-network/internal/adapters/persistence"
	"fastpay-network/internal/core/domain"

	"github.com/google/uuid"
)

// SiteService manages the presentation-facing configuration: branding,
// landing services, custom pages and the deposit plan definitions. Plan
// edits only affect deposits opened afterwards; the deposit engine copies
// rate and term at open time.
type SiteService struct {
	store  *persistence.Store
	notify *NotificationService
}

// NewSiteService creates a new site service
func NewSiteService(store *persistence.Store, notify *NotificationService) *SiteService {
	return &SiteService{store: store, notify: notify}
}

// GetConfig returns the current site configuration
func (s *SiteService) GetConfig() (*domain.SiteConfig, error) {
	var out domain.SiteConfig
	err := s.store.View(func(st *persistence.State) error {
		out = *st.Config()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateConfig replaces the site configuration after validating the
// embedded deposit plan definitions
func (s *SiteService) UpdateConfig(cfg *domain.SiteConfig) (*domain.SiteConfig, error) {
	for _, plan := range cfg.DepositPlans {
		if plan.ID == "" || strings.TrimSpace(plan.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		if plan.RateBps < 0 || plan.MinAmount < 0 || plan.TermMonths <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if cfg.NetworkBalance < 0 {
		return nil, domain.ErrInvalidAmount
	}

	var out domain.SiteConfig
	err := s.store.Mutate(func(st *persistence.State) error {
		*st.Config() = *cfg
		out = *st.Config()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Push("Settings", domain.NotifySystem, "Site configuration updated")
	return &out, nil
}

// ListLandingServices returns the landing page service tiles
func (s *SiteService) ListLandingServices() ([]domain.LandingService, error) {
	var out []domain.LandingService
	err := s.store.View(func(st *persistence.State) error {
		out = append(out, st.LandingServices()...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SaveLandingService creates or updates a landing service tile
func (s *SiteService) SaveLandingService(svc *domain.LandingService) (*domain.LandingService, error) {
	if strings.TrimSpace(svc.Title) == "" {
		return nil, domain.ErrInvalidInput
	}

	saved := *svc
	err := s.store.Mutate(func(st *persistence.State) error {
		services := st.LandingServices()
		if saved.ID == "" {
			saved.ID = uuid.NewString()
			st.SetLandingServices(append(services, saved))
			return nil
		}
		for i := range services {
			if services[i].ID == saved.ID {
				services[i] = saved
				st.SetLandingServices(services)
				return nil
			}
		}
		return domain.ErrServiceNotFound
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteLandingService removes a landing service tile
func (s *SiteService) DeleteLandingService(id string) error {
	return s.store.Mutate(func(st *persistence.State) error {
		services := st.LandingServices()
		for i := range services {
			if services[i].ID == id {
				st.SetLandingServices(append(services[:i], services[i+1:]...))
				return nil
			}
		}
		return domain.ErrServiceNotFound
	})
}

// ListPages returns all custom pages
func (s *SiteService) ListPages() ([]domain.CustomPage, error) {
	var out []domain.CustomPage
	err := s.store.View(func(st *persistence.State) error {
		out = append(out, st.Pages()...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SavePage creates or updates a custom page
func (s *SiteService) SavePage(page *domain.CustomPage) (*domain.CustomPage, error) {
	if strings.TrimSpace(page.Title) == "" || strings.TrimSpace(page.Slug) == "" {
		return nil, domain.ErrInvalidInput
	}

	saved := *page
	err := s.store.Mutate(func(st *persistence.State) error {
		if saved.ID == "" {
			saved.ID = uuid.NewString()
			st.AddPage(saved)
			return nil
		}
		existing, err := st.Page(saved.ID)
		if err != nil {
			return err
		}
		*existing = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeletePage removes a custom page
func (s *SiteService) DeletePage(id string) error {
	return s.store.Mutate(func(st *persistence.State) error {
		return st.DeletePage(id)
	})
}
