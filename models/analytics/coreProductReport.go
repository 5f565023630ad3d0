package analytics

import (
	"context"

	"bitbucket.org/gradways/crm_backend/models"
	"github.com/shopspring/decimal"
)

// CoreProduct aggregates the core product through the finance-approval table:
// payment rows carrying the core product name point into finance_approvals,
// and the approval date (not the payment row's own dates) bounds the period.
// Count and amount come from one pass over the same rows so they can never
// disagree.
func CoreProduct(ctx context.Context, store Store, r DateRange, scope RoleScope) (Stat, error) {
	refs, err := store.ProductPaymentRefs(ctx, EntityAllFinance, scope)
	if err != nil {
		return Stat{}, err
	}
	var ids []int
	for _, ref := range refs {
		if ref.ProductName != models.CoreProductName {
			continue
		}
		ids = append(ids, ref.EntityId)
	}
	rows, err := store.EntityRowsBetween(ctx, EntityAllFinance, ids, r)
	if err != nil {
		return Stat{}, err
	}
	amount := decimal.Zero
	for _, row := range rows {
		amount = amount.Add(row.Amount)
	}
	return Stat{Count: len(rows), Amount: amount}, nil
}
