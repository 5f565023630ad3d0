package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product entity tables. A ProductPayment row points into exactly one of these
// through its EntityType + EntityId. Each table has its own primary date
// column, which is the date the sale counts under for period metrics; the
// pointing ProductPayment row's own dates are ignored for entity-backed sales.

// FinanceApproval backs the core product (ALL_FINANCE_EMPLOYEMENT).
type FinanceApproval struct {
	ID           int             `gorm:"primary_key" json:"id"`
	ClientId     int             `gorm:"index;not null" json:"client_id"`
	ApprovalDate time.Time       `gorm:"type:date;index;not null" json:"approval_date"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	BankName     string          `gorm:"size:100" json:"bank_name"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (FinanceApproval) TableName() string { return "finance_approvals" }

type Insurance struct {
	ID            int       `gorm:"primary_key" json:"id"`
	ClientId      int       `gorm:"index;not null" json:"client_id"`
	InsuranceDate time.Time `gorm:"type:date;index;not null" json:"insurance_date"`
	Provider      string    `gorm:"size:100" json:"provider"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Insurance) TableName() string { return "insurances" }

type AirTicket struct {
	ID         int       `gorm:"primary_key" json:"id"`
	ClientId   int       `gorm:"index;not null" json:"client_id"`
	TicketDate time.Time `gorm:"type:date;index;not null" json:"ticket_date"`
	Airline    string    `gorm:"size:100" json:"airline"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AirTicket) TableName() string { return "air_tickets" }

type ForexFee struct {
	ID          int       `gorm:"primary_key" json:"id"`
	ClientId    int       `gorm:"index;not null" json:"client_id"`
	PaymentDate time.Time `gorm:"type:date;index;not null" json:"payment_date"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ForexFee) TableName() string { return "forex_fees" }

type ForexCard struct {
	ID        int       `gorm:"primary_key" json:"id"`
	ClientId  int       `gorm:"index;not null" json:"client_id"`
	IssueDate time.Time `gorm:"type:date;index;not null" json:"issue_date"`
	Provider  string    `gorm:"size:100" json:"provider"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ForexCard) TableName() string { return "forex_cards" }

type CreditCard struct {
	ID        int       `gorm:"primary_key" json:"id"`
	ClientId  int       `gorm:"index;not null" json:"client_id"`
	IssueDate time.Time `gorm:"type:date;index;not null" json:"issue_date"`
	BankName  string    `gorm:"size:100" json:"bank_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CreditCard) TableName() string { return "credit_cards" }

type SimCard struct {
	ID             int       `gorm:"primary_key" json:"id"`
	ClientId       int       `gorm:"index;not null" json:"client_id"`
	ActivationDate time.Time `gorm:"type:date;index;not null" json:"activation_date"`
	Carrier        string    `gorm:"size:50" json:"carrier"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SimCard) TableName() string { return "sim_cards" }

type TuitionFee struct {
	ID          int       `gorm:"primary_key" json:"id"`
	ClientId    int       `gorm:"index;not null" json:"client_id"`
	PaymentDate time.Time `gorm:"type:date;index;not null" json:"payment_date"`
	Institution string    `gorm:"size:100" json:"institution"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TuitionFee) TableName() string { return "tuition_fees" }

type Loan struct {
	ID              int       `gorm:"primary_key" json:"id"`
	ClientId        int       `gorm:"index;not null" json:"client_id"`
	DisbursmentDate time.Time `gorm:"type:date;index;not null" json:"disbursment_date"`
	BankName        string    `gorm:"size:100" json:"bank_name"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Loan) TableName() string { return "loans" }

type IeltsEnrollment struct {
	ID             int             `gorm:"primary_key" json:"id"`
	ClientId       int             `gorm:"index;not null" json:"client_id"`
	EnrollmentDate time.Time       `gorm:"type:date;index;not null" json:"enrollment_date"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Batch          string          `gorm:"size:50" json:"batch"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (IeltsEnrollment) TableName() string { return "ielts_enrollments" }

type VisaExtension struct {
	ID            int             `gorm:"primary_key" json:"id"`
	ClientId      int             `gorm:"index;not null" json:"client_id"`
	ExtensionDate time.Time       `gorm:"type:date;index;not null" json:"extension_date"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (VisaExtension) TableName() string { return "visa_extensions" }

type BeaconAccount struct {
	ID          int       `gorm:"primary_key" json:"id"`
	ClientId    int       `gorm:"index;not null" json:"client_id"`
	OpeningDate time.Time `gorm:"type:date;index;not null" json:"opening_date"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (BeaconAccount) TableName() string { return "beacon_accounts" }

// NewSell is the generic catch-all sale table for products without a
// dedicated entity table.
type NewSell struct {
	ID        int             `gorm:"primary_key" json:"id"`
	ClientId  int             `gorm:"index;not null" json:"client_id"`
	SellDate  time.Time       `gorm:"type:date;index;not null" json:"sell_date"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Product   string          `gorm:"size:100" json:"product"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (NewSell) TableName() string { return "new_sells" }
