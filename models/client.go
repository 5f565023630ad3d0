package models

import (
	"context"
	"time"

	"bitbucket.org/gradways/crm_backend/config"
	"bitbucket.org/gradways/crm_backend/utils"
)

type Client struct {
	ID             int       `gorm:"primary_key" json:"id"`
	CounsellorId   int       `gorm:"index;not null" json:"counsellor_id"`
	Name           string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Email          string    `gorm:"size:100" json:"email"`
	Phone          string    `gorm:"size:20" json:"phone"`
	Passport       string    `gorm:"size:20" json:"passport"`
	Country        string    `gorm:"size:50" json:"country"`
	EnrollmentDate time.Time `gorm:"type:date;index;not null" json:"enrollment_date"`
	IsArchived     *bool     `gorm:"not null;default:false" json:"is_archived"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c Client) Archived() bool {
	return c.IsArchived != nil && *c.IsArchived
}

type NewClient struct {
	CounsellorId   int    `json:"counsellor_id" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Passport       string `json:"passport"`
	Country        string `json:"country"`
	EnrollmentDate string `json:"enrollment_date" binding:"required"`
}

func (input *NewClient) validate() error {
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return ErrInvalidEmail
	}
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return err
		}
	}
	if _, err := time.ParseInLocation("2006-01-02", input.EnrollmentDate, time.Local); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func CreateClient(ctx context.Context, input *NewClient) (*Client, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	enrollment, _ := time.ParseInLocation("2006-01-02", input.EnrollmentDate, time.Local)
	client := &Client{
		CounsellorId:   input.CounsellorId,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Passport:       input.Passport,
		Country:        input.Country,
		EnrollmentDate: enrollment,
		IsArchived:     utils.NewFalse(),
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

func GetClient(ctx context.Context, id int) (*Client, error) {
	var client Client
	db := config.GetDB()
	if err := db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// ArchiveClient soft-removes a client; archived clients drop out of every
// dashboard aggregate but their payment history stays intact.
func ArchiveClient(ctx context.Context, id int) error {
	db := config.GetDB()
	return db.WithContext(ctx).Model(&Client{}).Where("id = ?", id).
		Update("is_archived", true).Error
}
