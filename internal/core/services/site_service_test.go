package services

import (
	"errors"
	"testing"

	"fastpay-network/internal/core/domain"
)

func TestUpdateConfigValidatesPlans(t *testing.T) {
	store := newTestStore(t)
	svc := NewSiteService(store, NewNotificationService())

	cfg, err := svc.GetConfig()
	if err != nil {
		t.Fatalf("get config: %v", err)
	}

	cfg.DepositPlans = []domain.DepositPlan{{ID: "1", Name: "", RateBps: 500, TermMonths: 3, MinAmount: 100}}
	if _, err := svc.UpdateConfig(cfg); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("UpdateConfig(nameless plan) error = %v, want %v", err, domain.ErrInvalidInput)
	}

	cfg.DepositPlans = []domain.DepositPlan{{ID: "1", Name: "Bad", RateBps: 500, TermMonths: 0, MinAmount: 100}}
	if _, err := svc.UpdateConfig(cfg); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("UpdateConfig(zero term) error = %v, want %v", err, domain.ErrInvalidInput)
	}

	cfg.DepositPlans = []domain.DepositPlan{{ID: "1", Name: "Good", RateBps: 800, TermMonths: 4, MinAmount: 100}}
	cfg.SiteName = "Renamed Network"
	updated, err := svc.UpdateConfig(cfg)
	if err != nil {
		t.Fatalf("update config: %v", err)
	}
	if updated.SiteName != "Renamed Network" {
		t.Errorf("site name = %q, want Renamed Network", updated.SiteName)
	}
	if len(updated.DepositPlans) != 1 || updated.DepositPlans[0].RateBps != 800 {
		t.Errorf("plans not replaced: %+v", updated.DepositPlans)
	}
}

func TestPlanEditsDoNotAffectOpenDeposits(t *testing.T) {
	store := newTestStore(t)
	notify := NewNotificationService()
	site := NewSiteService(store, notify)
	deposits := NewDepositService(store, notify)

	ownerID := addAccount(t, store, "olga", domain.RoleUser, 50000)

	dep, err := deposits.Open(ownerID, &OpenInput{PlanID: "2", Principal: 50000})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	cfg, err := site.GetConfig()
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	for i := range cfg.DepositPlans {
		cfg.DepositPlans[i].RateBps = 1
	}
	if _, err := site.UpdateConfig(cfg); err != nil {
		t.Fatalf("update config: %v", err)
	}

	// Maturity still pays the rate snapshotted at open time
	matured, err := deposits.Mature(dep.ID)
	if err != nil {
		t.Fatalf("mature: %v", err)
	}
	if matured.ProjectedProfit != 6000 {
		t.Errorf("profit = %d, want 6000 from the original 1200 bps", matured.ProjectedProfit)
	}
	if got := balanceOf(t, store, ownerID); got != 56000 {
		t.Errorf("owner balance = %d, want 56000", got)
	}
}

func TestLandingServiceUpsertAndDelete(t *testing.T) {
	store := newTestStore(t)
	svc := NewSiteService(store, NewNotificationService())

	saved, err := svc.SaveLandingService(&domain.LandingService{Title: "Instant FX", Description: "desc", Icon: "x"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("saved service has no id")
	}

	saved.Title = "Instant FX v2"
	if _, err := svc.SaveLandingService(saved); err != nil {
		t.Fatalf("update: %v", err)
	}

	items, err := svc.ListLandingServices()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// 3 seeded plus the new one
	if len(items) != 4 {
		t.Fatalf("listed %d services, want 4", len(items))
	}
	if items[3].Title != "Instant FX v2" {
		t.Errorf("updated title = %q, want Instant FX v2", items[3].Title)
	}

	if err := svc.DeleteLandingService(saved.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteLandingService(saved.ID); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Errorf("second delete error = %v, want %v", err, domain.ErrServiceNotFound)
	}
}

func TestPageLifecycle(t *testing.T) {
	store := newTestStore(t)
	svc := NewSiteService(store, NewNotificationService())

	if _, err := svc.SavePage(&domain.CustomPage{Title: "", Slug: "about"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("SavePage(no title) error = %v, want %v", err, domain.ErrInvalidInput)
	}

	page, err := svc.SavePage(&domain.CustomPage{Title: "About", Slug: "about", Content: "hello"})
	if err != nil {
		t.Fatalf("save page: %v", err)
	}

	page.Content = "updated"
	if _, err := svc.SavePage(page); err != nil {
		t.Fatalf("update page: %v", err)
	}

	pages, err := svc.ListPages()
	if err != nil {
		t.Fatalf("list pages: %v", err)
	}
	if len(pages) != 1 || pages[0].Content != "updated" {
		t.Errorf("pages = %+v, want one updated page", pages)
	}

	if err := svc.DeletePage(page.ID); err != nil {
		t.Fatalf("delete page: %v", err)
	}
	if err := svc.DeletePage(page.ID); !errors.Is(err, domain.ErrPageNotFound) {
		t.Errorf("second delete error = %v, want %v", err, domain.ErrPageNotFound)
	}
}
