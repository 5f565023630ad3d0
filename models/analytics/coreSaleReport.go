package analytics

import (
	"context"

	"github.com/shopspring/decimal"
)

// Stat is one metric's count and exact decimal amount. Amounts stay decimal
// until the output boundary, where they render as fixed two-digit strings.
type Stat struct {
	Count  int
	Amount decimal.Decimal
}

// CoreSaleByEnrollment is the summary-card variant: clients counted by
// enrollment date, amounts summed over paying-stage payments whose payment
// date (never the creation time) also falls in the range. The two predicates
// deliberately differ; this mirrors how the business reads the numbers.
func CoreSaleByEnrollment(ctx context.Context, store Store, r DateRange, scope RoleScope) (Stat, error) {
	qualified, payments, err := qualifyingClients(ctx, store, r, scope)
	if err != nil {
		return Stat{}, err
	}
	enrolled := make(map[int]bool)
	for _, c := range qualified {
		enrolled[c.ID] = true
	}
	amount := decimal.Zero
	for _, p := range payments {
		if !p.Stage.IsPaying() || p.PaymentDate == nil {
			continue
		}
		if !enrolled[p.ClientId] || !r.Contains(*p.PaymentDate) {
			continue
		}
		amount = amount.Add(p.Amount)
	}
	return Stat{Count: len(qualified), Amount: amount}, nil
}

// CoreSaleByPayment is the chart variant: both count and amount follow the
// payment date, falling back to the row's creation time when the payment date
// is absent, with no enrollment-date co-constraint. Chart points reflect when
// money moved, not when clients enrolled.
func CoreSaleByPayment(ctx context.Context, store Store, r DateRange, scope RoleScope) (Stat, error) {
	payments, err := store.PaymentsPaidBetween(ctx, r, scope)
	if err != nil {
		return Stat{}, err
	}
	amount := decimal.Zero
	clients := make(map[int]bool)
	for _, p := range payments {
		clients[p.ClientId] = true
		amount = amount.Add(p.Amount)
	}
	return Stat{Count: len(clients), Amount: amount}, nil
}
