package persistence

import (
	"strings"

	"fastpay-network/internal/core/domain"
)

// State is the in-memory ledger behind a Store lock. Its methods are the
// only way engines touch accounts, codes, deposits, plans and the
// journal; in particular AdjustBalance is the single choke point for
// every balance mutation.
type State struct {
	snap *Snapshot
}

// ---- Accounts ----

// Accounts returns all accounts in insertion order
func (st *State) Accounts() []domain.Account {
	return st.snap.Accounts
}

// Account finds an account by id
func (st *State) Account(id string) (*domain.Account, error) {
	for i := range st.snap.Accounts {
		if st.snap.Accounts[i].ID == id {
			return &st.snap.Accounts[i], nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

// AccountByUsername finds an account by case-insensitive username
func (st *State) AccountByUsername(username string) (*domain.Account, error) {
	for i := range st.snap.Accounts {
		if strings.EqualFold(st.snap.Accounts[i].Username, username) {
			return &st.snap.Accounts[i], nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

// CreateAccount appends a new account, rejecting case-insensitive
// username collisions
func (st *State) CreateAccount(acc domain.Account) error {
	if _, err := st.AccountByUsername(acc.Username); err == nil {
		return domain.ErrDuplicateUsername
	}
	st.snap.Accounts = append(st.snap.Accounts, acc)
	return nil
}

// AdjustBalance applies a signed delta to an account balance. A delta
// that would take the balance below zero fails with ErrInsufficientFunds
// and leaves the account untouched.
func (st *State) AdjustBalance(id string, delta int64) error {
	acc, err := st.Account(id)
	if err != nil {
		return err
	}
	if acc.Balance+delta < 0 {
		return domain.ErrInsufficientFunds
	}
	acc.Balance += delta
	return nil
}

// DeleteAccount removes an account. Deletion is refused while any active
// deposit or financing plan still references the account.
func (st *State) DeleteAccount(id string) error {
	for i := range st.snap.Deposits {
		d := &st.snap.Deposits[i]
		if d.OwnerID == id && d.Status == domain.DepositActive {
			return domain.ErrAccountReferenced
		}
	}
	for i := range st.snap.SalaryPlans {
		p := &st.snap.SalaryPlans[i]
		if p.BeneficiaryID == id && p.Status == domain.FinancingActive {
			return domain.ErrAccountReferenced
		}
	}

	for i := range st.snap.Accounts {
		if st.snap.Accounts[i].ID == id {
			st.snap.Accounts = append(st.snap.Accounts[:i], st.snap.Accounts[i+1:]...)
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

// ---- Redemption codes ----

// Codes returns all redemption codes in insertion order
func (st *State) Codes() []domain.RedemptionCode {
	return st.snap.Cards
}

// Code finds a redemption code by case-insensitive value
func (st *State) Code(code string) (*domain.RedemptionCode, error) {
	for i := range st.snap.Cards {
		if strings.EqualFold(st.snap.Cards[i].Code, code) {
			return &st.snap.Cards[i], nil
		}
	}
	return nil, domain.ErrCodeNotFound
}

// AddCode registers a freshly issued code, failing on collision rather
// than silently overwriting
func (st *State) AddCode(code domain.RedemptionCode) error {
	if _, err := st.Code(code.Code); err == nil {
		return domain.ErrCodeCollision
	}
	st.snap.Cards = append(st.snap.Cards, code)
	return nil
}

// CodesByIssuer returns codes issued by the given account
func (st *State) CodesByIssuer(issuerID string) []domain.RedemptionCode {
	var out []domain.RedemptionCode
	for _, c := range st.snap.Cards {
		if c.IssuedBy == issuerID {
			out = append(out, c)
		}
	}
	return out
}

// ---- Deposits ----

// Deposits returns all deposits in insertion order
func (st *State) Deposits() []domain.Deposit {
	return st.snap.Deposits
}

// Deposit finds a deposit by id
func (st *State) Deposit(id string) (*domain.Deposit, error) {
	for i := range st.snap.Deposits {
		if st.snap.Deposits[i].ID == id {
			return &st.snap.Deposits[i], nil
		}
	}
	return nil, domain.ErrDepositNotFound
}

// AddDeposit appends a new deposit
func (st *State) AddDeposit(dep domain.Deposit) {
	st.snap.Deposits = append(st.snap.Deposits, dep)
}

// DepositsByOwner returns deposits owned by the given account
func (st *State) DepositsByOwner(ownerID string) []domain.Deposit {
	var out []domain.Deposit
	for _, d := range st.snap.Deposits {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out
}

// ---- Financing plans ----

// FinancingPlans returns all financing plans in insertion order
func (st *State) FinancingPlans() []domain.FinancingPlan {
	return st.snap.SalaryPlans
}

// FinancingPlan finds a financing plan by id
func (st *State) FinancingPlan(id string) (*domain.FinancingPlan, error) {
	for i := range st.snap.SalaryPlans {
		if st.snap.SalaryPlans[i].ID == id {
			return &st.snap.SalaryPlans[i], nil
		}
	}
	return nil, domain.ErrFinancingNotFound
}

// AddFinancingPlan appends a new financing plan
func (st *State) AddFinancingPlan(plan domain.FinancingPlan) {
	st.snap.SalaryPlans = append(st.snap.SalaryPlans, plan)
}

// FinancingByBeneficiary returns plans granted to the given account
func (st *State) FinancingByBeneficiary(accountID string) []domain.FinancingPlan {
	var out []domain.FinancingPlan
	for _, p := range st.snap.SalaryPlans {
		if p.BeneficiaryID == accountID {
			out = append(out, p)
		}
	}
	return out
}

// ---- Journal ----

// AppendJournal appends an entry to the ledger journal. The journal is
// append-only; nothing removes or rewrites entries.
func (st *State) AppendJournal(entry domain.JournalEntry) {
	st.snap.Transactions = append(st.snap.Transactions, entry)
}

// Journal returns all journal entries in insertion order
func (st *State) Journal() []domain.JournalEntry {
	return st.snap.Transactions
}

// JournalByAccount returns the journal entries for one account
func (st *State) JournalByAccount(accountID string) []domain.JournalEntry {
	var out []domain.JournalEntry
	for _, e := range st.snap.Transactions {
		if e.AccountID == accountID {
			out = append(out, e)
		}
	}
	return out
}

// ---- Site configuration ----

// Config returns the mutable site configuration
func (st *State) Config() *domain.SiteConfig {
	return &st.snap.Config
}

// DepositPlanByID finds a deposit plan definition by id
func (st *State) DepositPlanByID(id string) (*domain.DepositPlan, error) {
	for i := range st.snap.Config.DepositPlans {
		if st.snap.Config.DepositPlans[i].ID == id {
			return &st.snap.Config.DepositPlans[i], nil
		}
	}
	return nil, domain.ErrPlanNotFound
}

// ---- Landing services ----

// LandingServices returns all landing services in insertion order
func (st *State) LandingServices() []domain.LandingService {
	return st.snap.Services
}

// SetLandingServices replaces the landing services list
func (st *State) SetLandingServices(services []domain.LandingService) {
	st.snap.Services = services
}

// ---- Custom pages ----

// Pages returns all custom pages in insertion order
func (st *State) Pages() []domain.CustomPage {
	return st.snap.Pages
}

// Page finds a custom page by id
func (st *State) Page(id string) (*domain.CustomPage, error) {
	for i := range st.snap.Pages {
		if st.snap.Pages[i].ID == id {
			return &st.snap.Pages[i], nil
		}
	}
	return nil, domain.ErrPageNotFound
}

// AddPage appends a new custom page
func (st *State) AddPage(page domain.CustomPage) {
	st.snap.Pages = append(st.snap.Pages, page)
}

// DeletePage removes a custom page by id
func (st *State) DeletePage(id string) error {
	for i := range st.snap.Pages {
		if st.snap.Pages[i].ID == id {
			st.snap.Pages = append(st.snap.Pages[:i], st.snap.Pages[i+1:]...)
			return nil
		}
	}
	return domain.ErrPageNotFound
}
