package services

import "testing"

func TestMaturityServiceDisabledWithoutSpec(t *testing.T) {
	store := newTestStore(t)
	deposits := NewDepositService(store, NewNotificationService())

	svc := NewMaturityService(deposits, "")
	if err := svc.Start(); err != nil {
		t.Fatalf("Start() with empty spec: %v", err)
	}
	svc.Stop()
}

func TestMaturityServiceRejectsBadSpec(t *testing.T) {
	store := newTestStore(t)
	deposits := NewDepositService(store, NewNotificationService())

	svc := NewMaturityService(deposits, "not a cron spec")
	if err := svc.Start(); err == nil {
		t.Error("Start() accepted an invalid cron spec")
	}
}
