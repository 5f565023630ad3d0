package analytics

import (
	"context"
	"fmt"

	"bitbucket.org/gradways/crm_backend/models"
	"gorm.io/gorm"
)

// sqlStore implements Store over the MySQL schema through GORM.
type sqlStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) ClientsEnrolledBetween(ctx context.Context, r DateRange, scope RoleScope) ([]models.Client, error) {
	var clients []models.Client
	q := s.db.WithContext(ctx).
		Where("enrollment_date BETWEEN ? AND ?", r.Start, r.End).
		Where("is_archived = ?", false)
	if scope.Restricted() {
		q = q.Where("counsellor_id = ?", scope.CounsellorId)
	}
	if err := q.Order("id asc").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("clients enrolled between: %w", err)
	}
	return clients, nil
}

func (s *sqlStore) PaymentsForClients(ctx context.Context, clientIds []int) ([]models.StagedPayment, error) {
	if len(clientIds) == 0 {
		return nil, nil
	}
	var payments []models.StagedPayment
	if err := s.db.WithContext(ctx).
		Where("client_id IN ?", clientIds).
		Order("id asc").
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("payments for clients: %w", err)
	}
	return payments, nil
}

func (s *sqlStore) PaymentsPaidBetween(ctx context.Context, r DateRange, scope RoleScope) ([]models.StagedPayment, error) {
	var payments []models.StagedPayment
	q := s.db.WithContext(ctx).Model(&models.StagedPayment{}).
		Joins("JOIN clients ON clients.id = staged_payments.client_id").
		Where("clients.is_archived = ?", false).
		Where("staged_payments.stage IN ?", models.PayingStages).
		Where("COALESCE(staged_payments.payment_date, staged_payments.created_at) BETWEEN ? AND ?", r.Start, r.End)
	if scope.Restricted() {
		q = q.Where("clients.counsellor_id = ?", scope.CounsellorId)
	}
	if err := q.Order("staged_payments.id asc").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("payments paid between: %w", err)
	}
	return payments, nil
}

func (s *sqlStore) DirectProductPaymentsBetween(ctx context.Context, r DateRange, scope RoleScope) ([]models.ProductPayment, error) {
	var rows []models.ProductPayment
	q := s.db.WithContext(ctx).Model(&models.ProductPayment{}).
		Joins("JOIN clients ON clients.id = product_payments.client_id").
		Where("clients.is_archived = ?", false).
		Where("product_payments.amount IS NOT NULL").
		Where("product_payments.payment_date BETWEEN ? AND ?", r.Start, r.End)
	if scope.Restricted() {
		q = q.Where("clients.counsellor_id = ?", scope.CounsellorId)
	}
	if err := q.Order("product_payments.id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("direct product payments between: %w", err)
	}
	return rows, nil
}

func (s *sqlStore) ProductPaymentRefs(ctx context.Context, entityType string, scope RoleScope) ([]models.ProductPayment, error) {
	var rows []models.ProductPayment
	q := s.db.WithContext(ctx).Model(&models.ProductPayment{}).
		Joins("JOIN clients ON clients.id = product_payments.client_id").
		Where("clients.is_archived = ?", false).
		Where("product_payments.entity_type = ?", entityType)
	if scope.Restricted() {
		q = q.Where("clients.counsellor_id = ?", scope.CounsellorId)
	}
	if err := q.Order("product_payments.id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("product payment refs: %w", err)
	}
	return rows, nil
}

func (s *sqlStore) EntityRowsBetween(ctx context.Context, entityType string, ids []int, r DateRange) ([]EntityRow, error) {
	kind, ok := LookupEntityKind(entityType)
	if !ok || len(ids) == 0 {
		return nil, nil
	}
	amountExpr := "0"
	if kind.AmountColumn != "" {
		amountExpr = kind.AmountColumn
	}
	// Table and column names come from the closed registry, never from input.
	sql := fmt.Sprintf(
		"SELECT id, client_id, %s AS row_date, %s AS row_amount FROM %s WHERE id IN ? AND %s BETWEEN ? AND ?",
		kind.DateColumn, amountExpr, kind.Table, kind.DateColumn,
	)
	var rows []EntityRow
	if err := s.db.WithContext(ctx).Raw(sql, ids, r.Start, r.End).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("entity rows between (%s): %w", entityType, err)
	}
	return rows, nil
}

func (s *sqlStore) Counsellors(ctx context.Context, managerId int) ([]models.User, error) {
	var users []models.User
	q := s.db.WithContext(ctx).
		Where("role = ?", models.RoleCounsellor).
		Where("is_active = ?", true)
	if managerId > 0 {
		q = q.Where("manager_id = ?", managerId)
	}
	if err := q.Order("id asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("counsellors: %w", err)
	}
	return users, nil
}

func (s *sqlStore) TargetForMonth(ctx context.Context, counsellorId, month, year int) (*models.CounsellorTarget, error) {
	var target models.CounsellorTarget
	err := s.db.WithContext(ctx).
		Where("counsellor_id = ? AND month = ? AND year = ?", counsellorId, month, year).
		First(&target).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("target for month: %w", err)
	}
	return &target, nil
}
