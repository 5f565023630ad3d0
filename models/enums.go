package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

type PaymentStage string

const (
	PaymentStageInitial       PaymentStage = "INITIAL"
	PaymentStageBeforeVisa    PaymentStage = "BEFORE_VISA"
	PaymentStageAfterVisa     PaymentStage = "AFTER_VISA"
	PaymentStageSubmittedVisa PaymentStage = "SUBMITTED_VISA"
)

// PayingStages are the stages whose amounts count toward paid/revenue totals.
// SUBMITTED_VISA is reported in breakdowns but never summed.
var PayingStages = []PaymentStage{
	PaymentStageInitial,
	PaymentStageBeforeVisa,
	PaymentStageAfterVisa,
}

func (s PaymentStage) Valid() bool {
	switch s {
	case PaymentStageInitial, PaymentStageBeforeVisa, PaymentStageAfterVisa, PaymentStageSubmittedVisa:
		return true
	}
	return false
}

func (s PaymentStage) IsPaying() bool {
	switch s {
	case PaymentStageInitial, PaymentStageBeforeVisa, PaymentStageAfterVisa:
		return true
	}
	return false
}

func (s *PaymentStage) Scan(value interface{}) error {
	str, ok := value.([]byte)
	if !ok {
		s2, ok2 := value.(string)
		if !ok2 {
			return errors.New("payment stage must be string")
		}
		str = []byte(s2)
	}
	switch PaymentStage(str) {
	case PaymentStageInitial, PaymentStageBeforeVisa, PaymentStageAfterVisa, PaymentStageSubmittedVisa:
		*s = PaymentStage(str)
		return nil
	}
	return fmt.Errorf("invalid payment stage %q", str)
}

func (s PaymentStage) Value() (driver.Value, error) {
	return string(s), nil
}

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleCounsellor Role = "counsellor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCounsellor:
		return true
	}
	return false
}

// CoreProductName marks the distinguished core product. Every other product
// name is an "other product". The spelling matches the stored rows.
const CoreProductName = "ALL_FINANCE_EMPLOYEMENT"
