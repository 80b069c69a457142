package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// MaturityService is the external scheduler for deposit maturity. The
// deposit engine only exposes the mature hook; this service decides when
// to call it, driven by a cron expression. An empty expression leaves
// maturity entirely manual.
type MaturityService struct {
	deposits *DepositService
	spec     string
	cron     *cron.Cron
}

// NewMaturityService creates a new maturity sweep scheduler
func NewMaturityService(deposits *DepositService, spec string) *MaturityService {
	return &MaturityService{
		deposits: deposits,
		spec:     spec,
		cron:     cron.New(),
	}
}

// Start schedules the sweep. With an empty cron spec the scheduler stays
// off and deposits mature only through the admin endpoint.
func (s *MaturityService) Start() error {
	if s.spec == "" {
		log.Println("Deposit maturity sweep disabled (no cron spec)")
		return nil
	}

	if _, err := s.cron.AddFunc(s.spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Deposit maturity sweep scheduled [%s]", s.spec)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish
func (s *MaturityService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *MaturityService) sweep() {
	matured, err := s.deposits.MatureDue(time.Now())
	if err != nil {
		log.Printf("maturity sweep failed: %v", err)
		return
	}
	if matured > 0 {
		log.Printf("maturity sweep credited %d deposits", matured)
	}
}
