package models

import (
	"context"
	"time"

	"bitbucket.org/gradways/crm_backend/config"
	"gorm.io/gorm"
)

// CounsellorTarget is the monthly enrollment goal set by management. One row
// per counsellor per (month, year); the dashboard only reads these.
type CounsellorTarget struct {
	ID           int       `gorm:"primary_key" json:"id"`
	CounsellorId int       `gorm:"index;not null" json:"counsellor_id"`
	ManagerId    *int      `gorm:"index" json:"manager_id"`
	Target       int       `gorm:"not null;default:0" json:"target"`
	Month        int       `gorm:"not null" json:"month"`
	Year         int       `gorm:"not null" json:"year"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCounsellorTarget struct {
	CounsellorId int  `json:"counsellor_id" binding:"required"`
	ManagerId    *int `json:"manager_id"`
	Target       int  `json:"target" binding:"required"`
	Month        int  `json:"month" binding:"required"`
	Year         int  `json:"year" binding:"required"`
}

// SetCounsellorTarget creates or replaces the target row for the month.
func SetCounsellorTarget(ctx context.Context, input *NewCounsellorTarget) (*CounsellorTarget, error) {
	if input.Month < 1 || input.Month > 12 || input.Year < 2000 {
		return nil, ErrInvalidDate
	}
	db := config.GetDB()

	existing, err := GetCounsellorTarget(ctx, input.CounsellorId, input.Month, input.Year)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Target = input.Target
		existing.ManagerId = input.ManagerId
		if err := db.WithContext(ctx).Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	target := &CounsellorTarget{
		CounsellorId: input.CounsellorId,
		ManagerId:    input.ManagerId,
		Target:       input.Target,
		Month:        input.Month,
		Year:         input.Year,
	}
	if err := db.WithContext(ctx).Create(target).Error; err != nil {
		return nil, err
	}
	return target, nil
}

// GetCounsellorTarget returns nil without error when no target row exists for
// the month; callers default to a zero target.
func GetCounsellorTarget(ctx context.Context, counsellorId, month, year int) (*CounsellorTarget, error) {
	var target CounsellorTarget
	db := config.GetDB()
	err := db.WithContext(ctx).
		Where("counsellor_id = ? AND month = ? AND year = ?", counsellorId, month, year).
		First(&target).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &target, nil
}
