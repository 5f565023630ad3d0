package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// LeaderboardRow is one counsellor's ranked standing. Ranks are dense and
// sequential 1..N: rows tying on both enrollments and revenue still receive
// distinct ranks in stable roster order.
type LeaderboardRow struct {
	Rank           int    `json:"rank"`
	CounsellorId   int    `json:"counsellorId"`
	CounsellorName string `json:"counsellorName"`
	Enrollments    int    `json:"enrollments"`
	Revenue        string `json:"revenue"`
	Target         int    `json:"target"`
	TargetId       *int   `json:"targetId"`
	AchievedTarget int    `json:"achievedTarget"`

	revenue decimal.Decimal
}

// Leaderboard ranks counsellors by enrollments, ties broken by revenue, over
// one range. managerId > 0 narrows the roster to that manager's team (the
// report endpoint does this; the dashboard passes 0 and shows the full
// roster). Per-counsellor figures are computed concurrently and sorted only
// after every result is in.
func Leaderboard(ctx context.Context, store Store, r DateRange, managerId int) ([]*LeaderboardRow, error) {
	counsellors, err := store.Counsellors(ctx, managerId)
	if err != nil {
		return nil, err
	}
	rows := make([]*LeaderboardRow, len(counsellors))
	g, gctx := errgroup.WithContext(ctx)
	for i, counsellor := range counsellors {
		i, counsellor := i, counsellor
		g.Go(func() error {
			scope := CounsellorScope(counsellor.ID)
			enrollments, err := TotalClients(gctx, store, r, scope)
			if err != nil {
				return err
			}
			revenue, err := counsellorRevenue(gctx, store, r, scope)
			if err != nil {
				return err
			}
			rows[i] = &LeaderboardRow{
				CounsellorId:   counsellor.ID,
				CounsellorName: counsellor.Name,
				Enrollments:    enrollments,
				AchievedTarget: enrollments,
				revenue:        revenue,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Enrollments != rows[j].Enrollments {
			return rows[i].Enrollments > rows[j].Enrollments
		}
		return rows[i].revenue.GreaterThan(rows[j].revenue)
	})

	month, year := int(r.Start.Month()), r.Start.Year()
	for i, row := range rows {
		row.Rank = i + 1
		row.Revenue = row.revenue.StringFixed(2)
		target, err := store.TargetForMonth(ctx, row.CounsellorId, month, year)
		if err != nil {
			return nil, err
		}
		if target != nil {
			row.Target = target.Target
			id := target.ID
			row.TargetId = &id
		}
	}
	return rows, nil
}

// counsellorRevenue sums the three amount aggregators for one counsellor over
// the same range the enrollment count uses.
func counsellorRevenue(ctx context.Context, store Store, r DateRange, scope RoleScope) (decimal.Decimal, error) {
	coreSale, err := CoreSaleByEnrollment(ctx, store, r, scope)
	if err != nil {
		return decimal.Zero, err
	}
	coreProduct, err := CoreProduct(ctx, store, r, scope)
	if err != nil {
		return decimal.Zero, err
	}
	otherProduct, err := OtherProduct(ctx, store, r, scope)
	if err != nil {
		return decimal.Zero, err
	}
	return coreSale.Amount.Add(coreProduct.Amount).Add(otherProduct.Amount), nil
}

// LeaderboardSummary totals a ranked board.
type LeaderboardSummary struct {
	TotalEnrollments int    `json:"totalEnrollments"`
	TotalRevenue     string `json:"totalRevenue"`
}

func SummarizeLeaderboard(rows []*LeaderboardRow) LeaderboardSummary {
	enrollments := 0
	revenue := decimal.Zero
	for _, row := range rows {
		enrollments += row.Enrollments
		revenue = revenue.Add(row.revenue)
	}
	return LeaderboardSummary{
		TotalEnrollments: enrollments,
		TotalRevenue:     revenue.StringFixed(2),
	}
}

// EnrollmentGoal is one counsellor's monthly target standing.
type EnrollmentGoal struct {
	CounsellorId int  `json:"counsellorId"`
	Month        int  `json:"month"`
	Year         int  `json:"year"`
	Target       int  `json:"target"`
	TargetId     *int `json:"targetId"`
	Achieved     int  `json:"achieved"`
	Remaining    int  `json:"remaining"`
}

// GetLeaderboardEnrollmentGoal reports one counsellor's achieved enrollments
// against the month's target. A missing target row defaults to zero.
func GetLeaderboardEnrollmentGoal(ctx context.Context, store Store, counsellorId, month, year int) (*EnrollmentGoal, error) {
	r := monthRange(month, year)
	achieved, err := TotalClients(ctx, store, r, CounsellorScope(counsellorId))
	if err != nil {
		return nil, err
	}
	goal := &EnrollmentGoal{
		CounsellorId: counsellorId,
		Month:        month,
		Year:         year,
		Achieved:     achieved,
	}
	target, err := store.TargetForMonth(ctx, counsellorId, month, year)
	if err != nil {
		return nil, err
	}
	if target != nil {
		goal.Target = target.Target
		id := target.ID
		goal.TargetId = &id
	}
	if remaining := goal.Target - achieved; remaining > 0 {
		goal.Remaining = remaining
	}
	return goal, nil
}

func monthRange(month, year int) DateRange {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return DateRange{Start: start, End: endOfDay(start.AddDate(0, 1, -1))}
}
