package analytics

import (
	"context"

	"bitbucket.org/gradways/crm_backend/models"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// OtherProduct aggregates every non-core product sale from two independent
// contributions: direct amount-bearing payment rows bounded by their own
// payment date, and entity-backed sales bounded by each entity table's date
// column. Count-only entity kinds add to the count with a zero amount.
func OtherProduct(ctx context.Context, store Store, r DateRange, scope RoleScope) (Stat, error) {
	direct, err := store.DirectProductPaymentsBetween(ctx, r, scope)
	if err != nil {
		return Stat{}, err
	}
	total := Stat{}
	for _, row := range direct {
		if row.ProductName == models.CoreProductName || IsCountOnlyProduct(row.ProductName) {
			continue
		}
		if !row.Amount.Valid || row.EntityType != "" {
			continue
		}
		total.Count++
		total.Amount = total.Amount.Add(row.Amount.Decimal)
	}

	// One sub-aggregate per entity table, joined before merging so a failure
	// in any of them fails the metric as a whole.
	entityStats := make([]Stat, len(otherEntityTypes))
	g, gctx := errgroup.WithContext(ctx)
	for i, entityType := range otherEntityTypes {
		i, entityType := i, entityType
		g.Go(func() error {
			stat, err := otherEntityStat(gctx, store, entityType, r, scope)
			if err != nil {
				return err
			}
			entityStats[i] = stat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stat{}, err
	}
	for _, stat := range entityStats {
		total.Count += stat.Count
		total.Amount = total.Amount.Add(stat.Amount)
	}
	return total, nil
}

func otherEntityStat(ctx context.Context, store Store, entityType string, r DateRange, scope RoleScope) (Stat, error) {
	kind, ok := LookupEntityKind(entityType)
	if !ok {
		// Unknown product references must not abort the dashboard.
		return Stat{}, nil
	}
	refs, err := store.ProductPaymentRefs(ctx, entityType, scope)
	if err != nil {
		return Stat{}, err
	}
	var ids []int
	for _, ref := range refs {
		if ref.ProductName == models.CoreProductName {
			continue
		}
		ids = append(ids, ref.EntityId)
	}
	rows, err := store.EntityRowsBetween(ctx, entityType, ids, r)
	if err != nil {
		return Stat{}, err
	}
	amount := decimal.Zero
	if !kind.CountOnly {
		for _, row := range rows {
			amount = amount.Add(row.Amount)
		}
	}
	return Stat{Count: len(rows), Amount: amount}, nil
}
