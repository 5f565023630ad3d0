package analytics

import (
	"context"
	"time"

	"bitbucket.org/gradways/crm_backend/models"
	"github.com/shopspring/decimal"
)

// EntityRow is the normalized view of one product entity table row: its own
// date column and amount column (zero for count-only kinds), whatever the
// backing table calls them.
type EntityRow struct {
	ID       int             `gorm:"column:id"`
	ClientId int             `gorm:"column:client_id"`
	Date     time.Time       `gorm:"column:row_date"`
	Amount   decimal.Decimal `gorm:"column:row_amount"`
}

// Store is the row-query surface the engine reads through. Every method is a
// pure read against the current database snapshot; the engine composes them
// and never mutates anything.
type Store interface {
	// ClientsEnrolledBetween returns non-archived clients whose enrollment
	// date falls in r, narrowed by scope.
	ClientsEnrolledBetween(ctx context.Context, r DateRange, scope RoleScope) ([]models.Client, error)

	// PaymentsForClients returns every staged payment of the given clients,
	// all stages, any date, in id order.
	PaymentsForClients(ctx context.Context, clientIds []int) ([]models.StagedPayment, error)

	// PaymentsPaidBetween returns paying-stage payments whose payment date
	// (creation time when the payment date is absent) falls in r, for
	// non-archived clients in scope.
	PaymentsPaidBetween(ctx context.Context, r DateRange, scope RoleScope) ([]models.StagedPayment, error)

	// DirectProductPaymentsBetween returns amount-bearing product payment
	// rows whose payment date falls in r, narrowed by scope. Rows without a
	// payment date never match; there is no created-time fallback here.
	DirectProductPaymentsBetween(ctx context.Context, r DateRange, scope RoleScope) ([]models.ProductPayment, error)

	// ProductPaymentRefs returns product payment rows pointing into the
	// given entity table, any date, narrowed by scope.
	ProductPaymentRefs(ctx context.Context, entityType string, scope RoleScope) ([]models.ProductPayment, error)

	// EntityRowsBetween resolves entity references against the entity
	// table's own date column. Unknown entity types yield no rows.
	EntityRowsBetween(ctx context.Context, entityType string, ids []int, r DateRange) ([]EntityRow, error)

	// Counsellors returns active counsellor users; managerId > 0 narrows
	// the roster to one manager's team.
	Counsellors(ctx context.Context, managerId int) ([]models.User, error)

	// TargetForMonth returns nil without error when no target row exists.
	TargetForMonth(ctx context.Context, counsellorId, month, year int) (*models.CounsellorTarget, error)
}
