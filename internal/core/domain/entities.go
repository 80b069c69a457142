package domain

import "time"

// Role represents an account role in the system
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleMerchant Role = "MERCHANT"
	RoleUser     Role = "USER"
)

// AccountStatus represents the lifecycle state of an account
type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusSuspended AccountStatus = "suspended"
	StatusDisabled  AccountStatus = "disabled"
)

// Account represents a wallet holder (admin, merchant or end user).
// Balance is in minor currency units (cents) and is only ever changed
// through the store's AdjustBalance choke point.
type Account struct {
	ID           string        `json:"id"`
	Username     string        `json:"username"`
	FullName     string        `json:"fullName"`
	Email        string        `json:"email"`
	PhoneNumber  string        `json:"phoneNumber,omitempty"`
	PasswordHash string        `json:"passwordHash,omitempty"`
	Role         Role          `json:"role"`
	Balance      int64         `json:"balance"`
	Status       AccountStatus `json:"status"`
	StatusReason string        `json:"statusReason,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	LinkedCards  []BankCard    `json:"linkedCards,omitempty"`
}

// CardBrand is the payment network a card number belongs to
type CardBrand string

const (
	BrandVisa       CardBrand = "visa"
	BrandMastercard CardBrand = "mastercard"
	BrandUnknown    CardBrand = "unknown"
)

// BankCard represents a card linked to an account. The CVC is never stored.
type BankCard struct {
	ID     string    `json:"id"`
	Number string    `json:"number"`
	Brand  CardBrand `json:"type"`
	Expiry string    `json:"expiry"`
	Holder string    `json:"holder"`
}

// RedemptionCode is a single-use prepaid code exchangeable for a fixed
// credit amount. Once consumed it can never be redeemed again.
type RedemptionCode struct {
	Code       string     `json:"code"`
	FaceValue  int64      `json:"amount"`
	IssuedBy   string     `json:"generatedBy"`
	IssuedAt   time.Time  `json:"createdAt"`
	Consumed   bool       `json:"isUsed"`
	Disabled   bool       `json:"disabled,omitempty"`
	ConsumedBy string     `json:"usedBy,omitempty"`
	ConsumedAt *time.Time `json:"usedAt,omitempty"`
}

// DepositStatus represents the lifecycle state of a fixed deposit
type DepositStatus string

const (
	DepositActive    DepositStatus = "active"
	DepositMatured   DepositStatus = "matured"
	DepositCancelled DepositStatus = "cancelled"
)

// Deposit represents a fixed-term deposit. Rate and term are snapshotted
// from the plan definition at open time; later plan edits never affect an
// open deposit. Principal is escrowed out of the owner's balance until
// the deposit is cancelled or matured.
type Deposit struct {
	ID              string        `json:"id"`
	OwnerID         string        `json:"userId"`
	OwnerUsername   string        `json:"username"`
	Principal       int64         `json:"amount"`
	RateBps         int64         `json:"interestRate"`
	TermMonths      int           `json:"durationMonths"`
	OpenedAt        time.Time     `json:"startDate"`
	MaturesAt       time.Time     `json:"endDate"`
	ProjectedProfit int64         `json:"expectedProfit"`
	Status          DepositStatus `json:"status"`
}

// DepositPlan is an administrator-managed plan definition. It is
// configuration, not a ledger entity: the deposit engine reads it once at
// open time.
type DepositPlan struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RateBps    int64  `json:"rate"`
	TermMonths int    `json:"durationMonths"`
	MinAmount  int64  `json:"minAmount"`
}

// FinancingStatus represents the lifecycle state of a financing plan
type FinancingStatus string

const (
	FinancingActive    FinancingStatus = "active"
	FinancingCompleted FinancingStatus = "completed"
	FinancingCancelled FinancingStatus = "cancelled"
)

// FinancingPlan is a salary-advance credit. The principal is credited to
// the beneficiary atomically with plan creation. MonthlyDeduction is
// declarative metadata; nothing in the core withdraws it.
type FinancingPlan struct {
	ID               string          `json:"id"`
	BeneficiaryID    string          `json:"userId"`
	Username         string          `json:"username"`
	Principal        int64           `json:"amount"`
	MonthlyDeduction int64           `json:"deduction"`
	TermMonths       int             `json:"duration"`
	StartDate        time.Time       `json:"startDate"`
	Status           FinancingStatus `json:"status"`
	RequestedAt      time.Time       `json:"requestedAt"`
}

// JournalKind classifies a balance-affecting event
type JournalKind string

const (
	JournalSend           JournalKind = "send"
	JournalReceive        JournalKind = "receive"
	JournalRedeem         JournalKind = "redeem"
	JournalIssueCode      JournalKind = "issue_code"
	JournalDepositOpen    JournalKind = "deposit_open"
	JournalDepositCancel  JournalKind = "deposit_cancel"
	JournalDepositMature  JournalKind = "deposit_mature"
	JournalFinancingGrant JournalKind = "financing_grant"
)

// JournalEntry is one append-only audit record. Entries are never edited
// or deleted.
type JournalEntry struct {
	ID           string      `json:"id"`
	AccountID    string      `json:"userId"`
	Kind         JournalKind `json:"type"`
	Amount       int64       `json:"amount"`
	Counterparty string      `json:"relatedUser,omitempty"`
	RelatedID    string      `json:"relatedId,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
}

// FeeType declares how a configured fee is expressed
type FeeType string

const (
	FeeFixed   FeeType = "fixed"
	FeePercent FeeType = "percent"
)

// SiteConfig holds branding, landing copy, declared fees and the deposit
// plan definitions. Fees are declarative only; no engine applies them.
type SiteConfig struct {
	SiteName        string        `json:"siteName"`
	LogoURL         string        `json:"logoUrl"`
	Template        string        `json:"template"`
	PrimaryColor    string        `json:"primaryColor"`
	SecondaryColor  string        `json:"secondaryColor"`
	NetworkBalance  int64         `json:"networkBalance"`
	HeroTitle       string        `json:"heroTitle"`
	HeroSubtitle    string        `json:"heroSubtitle"`
	HeroCtaText     string        `json:"heroCtaText"`
	SalesCtaText    string        `json:"salesCtaText"`
	ServicesTitle   string        `json:"servicesTitle"`
	ServicesSub     string        `json:"servicesSubtitle"`
	GalleryTitle    string        `json:"galleryTitle"`
	GalleryImages   []string      `json:"galleryImages"`
	FooterAbout     string        `json:"footerAbout"`
	ContactEmail    string        `json:"contactEmail"`
	ContactPhone    string        `json:"contactPhone"`
	ContactAddress  string        `json:"contactAddress"`
	MerchantFeeType FeeType       `json:"merchantFeeType"`
	MerchantFeeVal  int64         `json:"merchantFeeValue"`
	UserFeeType     FeeType       `json:"userFeeType"`
	UserFeeVal      int64         `json:"userFeeValue"`
	DepositPlans    []DepositPlan `json:"depositPlans"`
}

// LandingService is one marketing tile on the landing page
type LandingService struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CustomPage is an admin-authored content page
type CustomPage struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Content      string `json:"content"`
	IsActive     bool   `json:"isActive"`
	ShowInNavbar bool   `json:"showInNavbar"`
	ShowInFooter bool   `json:"showInFooter"`
}

// NotificationType classifies an in-app notification
type NotificationType string

const (
	NotifyUser     NotificationType = "user"
	NotifyMoney    NotificationType = "money"
	NotifySystem   NotificationType = "system"
	NotifySecurity NotificationType = "security"
)

// Notification is an audit notice for the admin feed. Notifications are
// kept in memory only and are not part of the persisted snapshot.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	IsRead    bool             `json:"isRead"`
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Sanitized returns a copy of the account safe to return to callers
// (password hash stripped).
func (a Account) Sanitized() Account {
	a.PasswordHash = ""
	return a
}

// ValidRole reports whether r is one of the known roles
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleMerchant || r == RoleUser
}

// ValidStatus reports whether s is one of the known account statuses
func ValidStatus(s AccountStatus) bool {
	return s == StatusActive || s == StatusSuspended || s == StatusDisabled
}
