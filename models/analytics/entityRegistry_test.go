package analytics

import (
	"context"
	"testing"
	"time"
)

func TestLookupEntityKindUnknownType(t *testing.T) {
	if _, ok := LookupEntityKind("hotDog_id"); ok {
		t.Error("unknown entity type must not resolve")
	}
}

func TestEntityRegistryCoversAllOtherTypes(t *testing.T) {
	for _, entityType := range otherEntityTypes {
		kind, ok := LookupEntityKind(entityType)
		if !ok {
			t.Errorf("%s missing from registry", entityType)
			continue
		}
		if kind.Table == "" || kind.DateColumn == "" {
			t.Errorf("%s: incomplete registry entry %+v", entityType, kind)
		}
		if kind.CountOnly && kind.AmountColumn != "" {
			t.Errorf("%s: count-only kinds must not name an amount column", entityType)
		}
		if !kind.CountOnly && kind.AmountColumn == "" {
			t.Errorf("%s: amount-bearing kinds must name an amount column", entityType)
		}
	}
	// The core product's table is registered but never feeds other-product.
	for _, entityType := range otherEntityTypes {
		if entityType == EntityAllFinance {
			t.Error("allFinance must not appear in otherEntityTypes")
		}
	}
}

func TestUnknownEntityContributesZero(t *testing.T) {
	january := rangeOf(date(2026, time.January, 1), date(2026, time.January, 31))
	stat, err := otherEntityStat(context.Background(), &memStore{}, "mystery_id", january, AdminScope())
	if err != nil {
		t.Fatalf("unknown entity type must not error: %v", err)
	}
	if stat.Count != 0 || !stat.Amount.IsZero() {
		t.Errorf("stat = %+v, want zero", stat)
	}
}

func TestIsCountOnlyProduct(t *testing.T) {
	for _, name := range []string{"LOAN", "SIM_CARD", "AIR_TICKET"} {
		if !IsCountOnlyProduct(name) {
			t.Errorf("%s must be count-only", name)
		}
	}
	if IsCountOnlyProduct("IELTS") {
		t.Error("IELTS carries amounts")
	}
}
