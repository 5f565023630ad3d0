package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDelta(t *testing.T) {
	cases := []struct {
		name       string
		current    string
		previous   string
		wantChange float64
		wantType   string
	}{
		{"both zero", "0", "0", 0, ChangeNone},
		{"from zero", "5", "0", 100, ChangeIncrease},
		{"doubling", "100", "50", 100, ChangeIncrease},
		{"halving", "50", "100", 50, ChangeDecrease},
		{"equal", "75", "75", 0, ChangeNone},
		{"fractional", "110", "100", 10, ChangeIncrease},
		{"rounded", "1", "3", 66.67, ChangeDecrease},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Delta(dec(tc.current), dec(tc.previous))
			if got.Change != tc.wantChange || got.ChangeType != tc.wantType {
				t.Errorf("Delta(%s, %s) = %+v, want change=%v type=%s",
					tc.current, tc.previous, got, tc.wantChange, tc.wantType)
			}
			if got.Change < 0 {
				t.Errorf("change magnitude must be non-negative, got %v", got.Change)
			}
		})
	}
}

func TestDeltaCounts(t *testing.T) {
	got := DeltaCounts(0, 5)
	if got.ChangeType != ChangeDecrease || got.Change != 100 {
		t.Errorf("DeltaCounts(0, 5) = %+v, want 100%% decrease", got)
	}
	got = DeltaCounts(5, 0)
	if got.ChangeType != ChangeIncrease || got.Change != 100 {
		t.Errorf("DeltaCounts(5, 0) = %+v, want 100%% increase", got)
	}
}

func TestDeltaNeverDividesByZero(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Delta panicked: %v", r)
		}
	}()
	Delta(decimal.NewFromInt(42), decimal.Zero)
}
