package analytics

import "github.com/shopspring/decimal"

const (
	ChangeIncrease = "increase"
	ChangeDecrease = "decrease"
	ChangeNone     = "no-change"
)

// Performance compares a metric against its prior period. Change is the
// percentage magnitude, always non-negative; ChangeType carries the sign.
type Performance struct {
	Change     float64 `json:"change"`
	ChangeType string  `json:"changeType"`
}

// Delta computes the percentage change from previous to current. A zero
// previous with a non-zero current reports a capped 100% rather than a
// division by zero.
func Delta(current, previous decimal.Decimal) Performance {
	if previous.IsZero() {
		if current.IsZero() {
			return Performance{Change: 0, ChangeType: ChangeNone}
		}
		if current.IsPositive() {
			return Performance{Change: 100, ChangeType: ChangeIncrease}
		}
		return Performance{Change: 100, ChangeType: ChangeDecrease}
	}
	change := current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	switch {
	case change.IsPositive():
		return Performance{Change: change.InexactFloat64(), ChangeType: ChangeIncrease}
	case change.IsNegative():
		return Performance{Change: change.Abs().InexactFloat64(), ChangeType: ChangeDecrease}
	}
	return Performance{Change: 0, ChangeType: ChangeNone}
}

// DeltaCounts is Delta over integer metrics.
func DeltaCounts(current, previous int) Performance {
	return Delta(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}
