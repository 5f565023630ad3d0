package analytics

import (
	"context"

	"bitbucket.org/gradways/crm_backend/models"
)

// qualifyingClients returns the enrolled clients (already filtered to the
// range and scope) that have at least one paying-stage payment on any date,
// together with every staged payment of the enrolled set. A client with all
// three paying stages still appears once.
func qualifyingClients(ctx context.Context, store Store, r DateRange, scope RoleScope) ([]models.Client, []models.StagedPayment, error) {
	clients, err := store.ClientsEnrolledBetween(ctx, r, scope)
	if err != nil {
		return nil, nil, err
	}
	if len(clients) == 0 {
		return nil, nil, nil
	}
	ids := make([]int, len(clients))
	for i, c := range clients {
		ids[i] = c.ID
	}
	payments, err := store.PaymentsForClients(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	paying := make(map[int]bool)
	for _, p := range payments {
		if p.Stage.IsPaying() {
			paying[p.ClientId] = true
		}
	}
	qualified := clients[:0:0]
	for _, c := range clients {
		if paying[c.ID] {
			qualified = append(qualified, c)
		}
	}
	return qualified, payments, nil
}

// TotalClients counts non-archived clients enrolled in the range that have at
// least one paying-stage payment.
func TotalClients(ctx context.Context, store Store, r DateRange, scope RoleScope) (int, error) {
	qualified, _, err := qualifyingClients(ctx, store, r, scope)
	if err != nil {
		return 0, err
	}
	return len(qualified), nil
}
