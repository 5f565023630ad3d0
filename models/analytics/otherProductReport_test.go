package analytics

import (
	"context"
	"testing"
	"time"

	"bitbucket.org/gradways/crm_backend/models"
)

func TestOtherProductDirectSales(t *testing.T) {
	january := rangeOf(date(2026, time.January, 1), date(2026, time.January, 31))
	store := &memStore{
		clients: []models.Client{
			{ID: 1, CounsellorId: 10, EnrollmentDate: date(2026, time.January, 5)},
		},
		products: []models.ProductPayment{
			{ID: 1, ClientId: 1, ProductName: "PTE_ENROLLMENT",
				Amount: nullDec("250.00"), PaymentDate: datePtr(2026, time.January, 10)},
			// Core product rows never feed the other-product aggregate.
			{ID: 2, ClientId: 1, ProductName: models.CoreProductName,
				Amount: nullDec("900.00"), PaymentDate: datePtr(2026, time.January, 11)},
			// Count-only product names are skipped on the direct path; their
			// figures come from the entity tables instead.
			{ID: 3, ClientId: 1, ProductName: "SIM_CARD",
				Amount: nullDec("20.00"), PaymentDate: datePtr(2026, time.January, 12)},
			// Outside the range.
			{ID: 4, ClientId: 1, ProductName: "PTE_ENROLLMENT",
				Amount: nullDec("250.00"), PaymentDate: datePtr(2026, time.February, 2)},
		},
	}

	stat, err := OtherProduct(context.Background(), store, january, AdminScope())
	if err != nil {
		t.Fatal(err)
	}
	if stat.Count != 1 {
		t.Errorf("count = %d, want 1", stat.Count)
	}
	if got := stat.Amount.StringFixed(2); got != "250.00" {
		t.Errorf("amount = %s, want 250.00", got)
	}
}

func TestOtherProductEntityDateBoundsThePeriod(t *testing.T) {
	january := rangeOf(date(2026, time.January, 1), date(2026, time.January, 31))
	store := &memStore{
		clients: []models.Client{
			{ID: 1, CounsellorId: 10, EnrollmentDate: date(2025, time.December, 1)},
		},
		products: []models.ProductPayment{
			{ID: 1, ClientId: 1, ProductName: "IELTS",
				EntityType: EntityIelts, EntityId: 100,
				PaymentDate: datePtr(2026, time.January, 15)},
			{ID: 2, ClientId: 1, ProductName: "IELTS",
				EntityType: EntityIelts, EntityId: 101,
				PaymentDate: datePtr(2026, time.January, 16)},
		},
		entities: map[string][]EntityRow{
			EntityIelts: {
				{ID: 100, ClientId: 1, Date: date(2026, time.January, 20), Amount: dec("180.00")},
				// The payment row is dated January but the enrollment itself
				// is February: the entity's own date wins and excludes it.
				{ID: 101, ClientId: 1, Date: date(2026, time.February, 3), Amount: dec("180.00")},
			},
		},
	}

	stat, err := OtherProduct(context.Background(), store, january, AdminScope())
	if err != nil {
		t.Fatal(err)
	}
	if stat.Count != 1 {
		t.Errorf("count = %d, want 1", stat.Count)
	}
	if got := stat.Amount.StringFixed(2); got != "180.00" {
		t.Errorf("amount = %s, want 180.00", got)
	}
}

func TestOtherProductCountOnlyEntityAddsNoAmount(t *testing.T) {
	january := rangeOf(date(2026, time.January, 1), date(2026, time.January, 31))
	store := &memStore{
		clients: []models.Client{
			{ID: 1, CounsellorId: 10, EnrollmentDate: date(2025, time.December, 1)},
		},
		products: []models.ProductPayment{
			{ID: 1, ClientId: 1, ProductName: "SIM_CARD",
				EntityType: EntitySimCard, EntityId: 200},
		},
		entities: map[string][]EntityRow{
			EntitySimCard: {
				{ID: 200, ClientId: 1, Date: date(2026, time.January, 8), Amount: dec("35.00")},
			},
		},
	}

	stat, err := OtherProduct(context.Background(), store, january, AdminScope())
	if err != nil {
		t.Fatal(err)
	}
	if stat.Count != 1 {
		t.Errorf("count = %d, want 1", stat.Count)
	}
	if !stat.Amount.IsZero() {
		t.Errorf("amount = %s, want 0 for a count-only entity", stat.Amount)
	}
}

func TestCoreProduct(t *testing.T) {
	january := rangeOf(date(2026, time.January, 1), date(2026, time.January, 31))
	store := &memStore{
		clients: []models.Client{
			{ID: 1, CounsellorId: 10, EnrollmentDate: date(2025, time.December, 1)},
		},
		products: []models.ProductPayment{
			{ID: 1, ClientId: 1, ProductName: models.CoreProductName,
				EntityType: EntityAllFinance, EntityId: 300},
			// A non-core product pointing into the same table is excluded.
			{ID: 2, ClientId: 1, ProductName: "OTHER_FINANCE",
				EntityType: EntityAllFinance, EntityId: 301},
		},
		entities: map[string][]EntityRow{
			EntityAllFinance: {
				{ID: 300, ClientId: 1, Date: date(2026, time.January, 12), Amount: dec("2500.00")},
				{ID: 301, ClientId: 1, Date: date(2026, time.January, 13), Amount: dec("999.00")},
			},
		},
	}

	stat, err := CoreProduct(context.Background(), store, january, AdminScope())
	if err != nil {
		t.Fatal(err)
	}
	if stat.Count != 1 {
		t.Errorf("count = %d, want 1", stat.Count)
	}
	if got := stat.Amount.StringFixed(2); got != "2500.00" {
		t.Errorf("amount = %s, want 2500.00", got)
	}
}
