package models

import (
	"context"
	"fmt"
	"time"

	"bitbucket.org/gradways/crm_backend/config"
	"github.com/shopspring/decimal"
)

// StagedPayment is one milestone payment of a client. TotalPayment repeats the
// client's expected grand total on every row; outstanding-balance math must
// read it from the first row per client only, never sum it.
type StagedPayment struct {
	ID           int             `gorm:"primary_key" json:"id"`
	ClientId     int             `gorm:"index;not null" json:"client_id"`
	Stage        PaymentStage    `gorm:"type:enum('INITIAL','BEFORE_VISA','AFTER_VISA','SUBMITTED_VISA');not null" json:"stage"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	TotalPayment decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_payment"`
	PaymentDate  *time.Time      `gorm:"type:date;index" json:"payment_date"`
	Note         string          `gorm:"size:255" json:"note"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// EffectiveDate is the date the payment counts under for payment-period
// metrics: payment_date when present, otherwise the row's creation time.
func (p StagedPayment) EffectiveDate() time.Time {
	if p.PaymentDate != nil {
		return *p.PaymentDate
	}
	return p.CreatedAt
}

type NewStagedPayment struct {
	ClientId     int    `json:"client_id" binding:"required"`
	Stage        string `json:"stage" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	TotalPayment string `json:"total_payment"`
	PaymentDate  string `json:"payment_date"`
	Note         string `json:"note"`
}

func CreateStagedPayment(ctx context.Context, input *NewStagedPayment) (*StagedPayment, error) {
	stage := PaymentStage(input.Stage)
	if !stage.Valid() {
		return nil, fmt.Errorf("invalid payment stage %q", input.Stage)
	}
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", input.Amount)
	}
	total := decimal.Zero
	if input.TotalPayment != "" {
		total, err = decimal.NewFromString(input.TotalPayment)
		if err != nil {
			return nil, fmt.Errorf("invalid total payment %q", input.TotalPayment)
		}
	}
	var paymentDate *time.Time
	if input.PaymentDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", input.PaymentDate, time.Local)
		if err != nil {
			return nil, ErrInvalidDate
		}
		paymentDate = &parsed
	}

	payment := &StagedPayment{
		ClientId:     input.ClientId,
		Stage:        stage,
		Amount:       amount,
		TotalPayment: total,
		PaymentDate:  paymentDate,
		Note:         input.Note,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func GetStagedPaymentsByClient(ctx context.Context, clientId int) ([]*StagedPayment, error) {
	var payments []*StagedPayment
	db := config.GetDB()
	if err := db.WithContext(ctx).
		Where("client_id = ?", clientId).
		Order("id asc").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
