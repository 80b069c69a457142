package persistence

import (
	"time"

	"fastpay-network/internal/core/domain"
	"fastpay-network/internal/pkg/password"

	"github.com/google/uuid"
)

// SeedSnapshot builds the default ledger used when no snapshot file
// exists: one administrator, one demo merchant, three deposit plans and
// the landing page content.
func SeedSnapshot() (*Snapshot, error) {
	adminHash, err := password.Hash("admin123")
	if err != nil {
		return nil, err
	}
	merchantHash, err := password.Hash("merchant123")
	if err != nil {
		return nil, err
	}

	now := time.Now()

	return &Snapshot{
		Config: domain.SiteConfig{
			SiteName:        "FastPay Network",
			LogoURL:         "/assets/img/logo.png",
			Template:        "modern-dark",
			PrimaryColor:    "#0f172a",
			SecondaryColor:  "#3b82f6",
			NetworkBalance:  500000000,
			HeroTitle:       "FastPay Network: the future of digital payments",
			HeroSubtitle:    "A complete cloud finance platform for individuals and businesses.",
			HeroCtaText:     "Start your journey",
			SalesCtaText:    "Talk to an expert",
			ServicesTitle:   "Our financial engineering",
			ServicesSub:     "Smart solutions that connect you to the global economy instantly.",
			GalleryTitle:    "Our global footprint",
			GalleryImages:   []string{},
			FooterAbout:     "FastPay Network is the trusted financial partner of thousands of organizations worldwide.",
			ContactEmail:    "support@fastpay-network.com",
			ContactPhone:    "+1 800 123 4567",
			ContactAddress:  "Global Financial Center",
			MerchantFeeType: domain.FeePercent,
			MerchantFeeVal:  150,
			UserFeeType:     domain.FeeFixed,
			UserFeeVal:      100,
			DepositPlans: []domain.DepositPlan{
				{ID: "1", Name: "Silver Plan", RateBps: 500, TermMonths: 3, MinAmount: 10000},
				{ID: "2", Name: "Gold Plan", RateBps: 1200, TermMonths: 6, MinAmount: 50000},
				{ID: "3", Name: "Diamond Plan", RateBps: 2500, TermMonths: 12, MinAmount: 100000},
			},
		},
		Accounts: []domain.Account{
			{
				ID:           uuid.NewString(),
				Username:     "admin",
				FullName:     "System Administrator",
				Email:        "admin@fastpay-network.com",
				PasswordHash: adminHash,
				Role:         domain.RoleAdmin,
				Balance:      0,
				Status:       domain.StatusActive,
				CreatedAt:    now,
			},
			{
				ID:           uuid.NewString(),
				Username:     "demostore",
				FullName:     "Demo Card Store",
				Email:        "store@fastpay-network.com",
				PasswordHash: merchantHash,
				Role:         domain.RoleMerchant,
				Balance:      2500000,
				Status:       domain.StatusActive,
				CreatedAt:    now,
			},
		},
		Services: []domain.LandingService{
			{ID: "1", Title: "A world without financial borders", Description: "Accept more than 130 currencies with instant Visa and MasterCard processing.", Icon: "🌍"},
			{ID: "2", Title: "Bank-grade security", Description: "Every operation is protected end to end.", Icon: "🛡️"},
			{ID: "3", Title: "Smart salary financing", Description: "Advance salary financing with instant disbursement.", Icon: "🏦"},
		},
		Pages:        []domain.CustomPage{},
		Cards:        []domain.RedemptionCode{},
		Transactions: []domain.JournalEntry{},
		SalaryPlans:  []domain.FinancingPlan{},
		Deposits:     []domain.Deposit{},
	}, nil
}
