package analytics

import (
	"context"

	"bitbucket.org/gradways/crm_backend/models"
	"github.com/shopspring/decimal"
)

// PendingResult is the outstanding-balance computation with its per-stage
// paid breakdown. SUBMITTED_VISA appears in the breakdown but is excluded
// from Paid and therefore from Pending.
type PendingResult struct {
	Expected decimal.Decimal
	Paid     decimal.Decimal
	Pending  decimal.Decimal
	ByStage  map[models.PaymentStage]decimal.Decimal
}

// PendingAmount computes expected-minus-paid across all non-archived clients
// enrolled in the reference range (all-time in practice). Every payment row
// of a client repeats the client's expected total, so only the first observed
// row per client feeds Expected; payments themselves are not date-filtered.
// Pending is floored at zero.
func PendingAmount(ctx context.Context, store Store, ref DateRange, scope RoleScope) (*PendingResult, error) {
	clients, err := store.ClientsEnrolledBetween(ctx, ref, scope)
	if err != nil {
		return nil, err
	}
	result := &PendingResult{
		Expected: decimal.Zero,
		Paid:     decimal.Zero,
		Pending:  decimal.Zero,
		ByStage: map[models.PaymentStage]decimal.Decimal{
			models.PaymentStageInitial:       decimal.Zero,
			models.PaymentStageBeforeVisa:    decimal.Zero,
			models.PaymentStageAfterVisa:     decimal.Zero,
			models.PaymentStageSubmittedVisa: decimal.Zero,
		},
	}
	if len(clients) == 0 {
		return result, nil
	}
	ids := make([]int, len(clients))
	for i, c := range clients {
		ids[i] = c.ID
	}
	payments, err := store.PaymentsForClients(ctx, ids)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]bool)
	for _, p := range payments {
		if !seen[p.ClientId] {
			seen[p.ClientId] = true
			result.Expected = result.Expected.Add(p.TotalPayment)
		}
		result.ByStage[p.Stage] = result.ByStage[p.Stage].Add(p.Amount)
		if p.Stage.IsPaying() {
			result.Paid = result.Paid.Add(p.Amount)
		}
	}
	if pending := result.Expected.Sub(result.Paid); pending.IsPositive() {
		result.Pending = pending
	}
	return result, nil
}
