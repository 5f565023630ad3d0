package analytics

import (
	"context"
	"testing"
	"time"

	"bitbucket.org/gradways/crm_backend/models"
)

func TestPendingAmount(t *testing.T) {
	store := &memStore{
		clients: []models.Client{
			{ID: 1, CounsellorId: 10, EnrollmentDate: date(2026, time.January, 5)},
		},
		payments: []models.StagedPayment{
			{ID: 1, ClientId: 1, Stage: models.PaymentStageInitial,
				Amount: dec("500.00"), TotalPayment: dec("1500.00")},
			{ID: 2, ClientId: 1, Stage: models.PaymentStageBeforeVisa,
				Amount: dec("250.00"), TotalPayment: dec("1500.00")},
		},
	}

	result, err := PendingAmount(context.Background(), store, allTimeRangeAt(date(2026, time.June, 1)), AdminScope())
	if err != nil {
		t.Fatal(err)
	}
	// TotalPayment repeats on every row but must count once per client.
	if got := result.Expected.StringFixed(2); got != "1500.00" {
		t.Errorf("expected = %s, want 1500.00", got)
	}
	if got := result.Paid.StringFixed(2); got != "750.00" {
		t.Errorf("paid = %s, want 750.00", got)
	}
	if got := result.Pending.StringFixed(2); got != "750.00" {
		t.Errorf("pending = %s, want 750.00", got)
	}
}

func TestPendingAmountExcludesSubmittedVisaFromPaid(t *testing.T) {
	store := &memStore{
		clients: []models.Client{
			{ID: 1, CounsellorId: 10, EnrollmentDate: date(2026, time.January, 5)},
		},
		payments: []models.StagedPayment{
			{ID: 1, ClientId: 1, Stage: models.PaymentStageInitial,
				Amount: dec("500.00"), TotalPayment: dec("1000.00")},
			{ID: 2, ClientId: 1, Stage: models.PaymentStageSubmittedVisa,
				Amount: dec("400.00"), TotalPayment: dec("1000.00")},
		},
	}

	result, err := PendingAmount(context.Background(), store, allTimeRangeAt(date(2026, time.June, 1)), AdminScope())
	if err != nil {
		t.Fatal(err)
	}
	if got := result.Paid.StringFixed(2); got != "500.00" {
		t.Errorf("paid = %s, want 500.00 (SUBMITTED_VISA excluded)", got)
	}
	if got := result.Pending.StringFixed(2); got != "500.00" {
		t.Errorf("pending = %s, want 500.00", got)
	}
	if got := result.ByStage[models.PaymentStageSubmittedVisa].StringFixed(2); got != "400.00" {
		t.Errorf("SUBMITTED_VISA breakdown = %s, want 400.00", got)
	}
}

func TestPendingAmountFloorsAtZero(t *testing.T) {
	store := &memStore{
		clients: []models.Client{
			{ID: 1, CounsellorId: 10, EnrollmentDate: date(2026, time.January, 5)},
		},
		payments: []models.StagedPayment{
			// Overpaid against the expected total.
			{ID: 1, ClientId: 1, Stage: models.PaymentStageInitial,
				Amount: dec("1200.00"), TotalPayment: dec("1000.00")},
		},
	}

	result, err := PendingAmount(context.Background(), store, allTimeRangeAt(date(2026, time.June, 1)), AdminScope())
	if err != nil {
		t.Fatal(err)
	}
	if !result.Pending.IsZero() {
		t.Errorf("pending = %s, want 0", result.Pending)
	}
}

func TestPendingAmountEmptyStore(t *testing.T) {
	result, err := PendingAmount(context.Background(), &memStore{}, allTimeRangeAt(date(2026, time.June, 1)), AdminScope())
	if err != nil {
		t.Fatal(err)
	}
	if !result.Expected.IsZero() || !result.Paid.IsZero() || !result.Pending.IsZero() {
		t.Errorf("empty store must produce all-zero result, got %+v", result)
	}
	if len(result.ByStage) != 4 {
		t.Errorf("breakdown must carry all four stages, got %d", len(result.ByStage))
	}
}
