package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/gradways/crm_backend/config"
	"gorm.io/gorm"
)

// ClientDocument stores uploaded passport scans, offer letters and other
// files attached to a client. Only the object URL is kept here; the bytes
// live in GCS.
type ClientDocument struct {
	ID          int       `gorm:"primary_key" json:"id"`
	ClientId    int       `gorm:"index;not null" json:"client_id"`
	Name        string    `gorm:"size:255" json:"name"`
	DocumentUrl string    `gorm:"size:500;not null" json:"document_url"`
	MimeType    string    `gorm:"size:100" json:"mime_type"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func CreateClientDocument(ctx context.Context, clientId int, name, documentUrl, mimeType string) (*ClientDocument, error) {
	db := config.GetDB()

	var client Client
	if err := db.WithContext(ctx).First(&client, clientId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("client not found")
		}
		return nil, err
	}

	doc := &ClientDocument{
		ClientId:    clientId,
		Name:        name,
		DocumentUrl: documentUrl,
		MimeType:    mimeType,
	}
	if err := db.WithContext(ctx).Create(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

func GetClientDocuments(ctx context.Context, clientId int) ([]*ClientDocument, error) {
	var docs []*ClientDocument
	db := config.GetDB()
	err := db.WithContext(ctx).
		Where("client_id = ?", clientId).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}
