package analytics

import (
	"context"
	"fmt"

	"bitbucket.org/gradways/crm_backend/models"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("crm-analytics")

type DashboardRequest struct {
	Filter     string
	BeforeDate string
	AfterDate  string
	ActorId    int
	Role       models.Role
}

// DashboardStats is the assembled dashboard payload. Admin/manager responses
// carry amounts, revenue and pending totals; counsellor responses carry
// counts plus the individual performance delta. Counsellors do keep
// TotalPendingAmount and PaidByStage: both cover only their own client
// book, so no other counsellor's dollar figures leak through them.
type DashboardStats struct {
	CoreSale              StatView          `json:"coreSale"`
	CoreProduct           StatView          `json:"coreProduct"`
	OtherProduct          StatView          `json:"otherProduct"`
	TotalPendingAmount    string            `json:"totalPendingAmount,omitempty"`
	PaidByStage           map[string]string `json:"paidByStage,omitempty"`
	TotalClients          int               `json:"totalClients"`
	Revenue               string            `json:"revenue,omitempty"`
	Leaderboard           []*LeaderboardRow `json:"leaderboard"`
	ChartData             *ChartData        `json:"chartData"`
	IndividualPerformance *Performance      `json:"individualPerformance,omitempty"`
}

// GetDashboardStats resolves the request's ranges once, fans the aggregators
// out in parallel, and assembles the role-appropriate shape. Any single
// aggregator failure fails the whole request; a partial dashboard is never
// returned as success.
func GetDashboardStats(ctx context.Context, store Store, req DashboardRequest) (*DashboardStats, error) {
	ctx, span := tracer.Start(ctx, "analytics.GetDashboardStats")
	defer span.End()

	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: role %q", ErrUnauthorizedScope, req.Role)
	}
	chartRange, err := ResolveDateRange(req.Filter, req.BeforeDate, req.AfterDate)
	if err != nil {
		return nil, err
	}
	// The today filter charts a rolling week but its summary cards cover
	// only the current day.
	summaryRange := chartRange
	if req.Filter == FilterToday {
		summaryRange = TodayRange()
	}
	scope := ScopeFor(req.Role, req.ActorId)

	var (
		coreSale     Stat
		coreProduct  Stat
		otherProduct Stat
		pending      *PendingResult
		totalClients int
		leaderboard  []*LeaderboardRow
		chart        *ChartData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		coreSale, err = CoreSaleByEnrollment(gctx, store, summaryRange, scope)
		return err
	})
	g.Go(func() error {
		var err error
		coreProduct, err = CoreProduct(gctx, store, summaryRange, scope)
		return err
	})
	g.Go(func() error {
		var err error
		otherProduct, err = OtherProduct(gctx, store, summaryRange, scope)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = PendingAmount(gctx, store, AllTimeRange(), scope)
		return err
	})
	g.Go(func() error {
		var err error
		totalClients, err = TotalClients(gctx, store, summaryRange, scope)
		return err
	})
	g.Go(func() error {
		var err error
		leaderboard, err = Leaderboard(gctx, store, summaryRange, 0)
		return err
	})
	g.Go(func() error {
		var err error
		if req.Role == models.RoleCounsellor {
			chart, err = CounsellorChart(gctx, store, req.Filter, chartRange, scope)
		} else {
			chart, err = AdminChart(gctx, store, req.Filter, chartRange, scope)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalClients:       totalClients,
		TotalPendingAmount: pending.Pending.StringFixed(2),
		PaidByStage:        stageBreakdown(pending),
		Leaderboard:        leaderboard,
		ChartData:          chart,
	}
	if req.Role == models.RoleCounsellor {
		stats.CoreSale = StatView{Number: coreSale.Count}
		stats.CoreProduct = StatView{Number: coreProduct.Count}
		stats.OtherProduct = StatView{Number: otherProduct.Count}
		previous, err := TotalClients(ctx, store, PreviousRange(req.Filter, summaryRange), scope)
		if err != nil {
			return nil, err
		}
		performance := DeltaCounts(totalClients, previous)
		stats.IndividualPerformance = &performance
		return stats, nil
	}
	stats.CoreSale = StatView{Number: coreSale.Count, Amount: coreSale.Amount.StringFixed(2)}
	stats.CoreProduct = StatView{Number: coreProduct.Count, Amount: coreProduct.Amount.StringFixed(2)}
	stats.OtherProduct = StatView{Number: otherProduct.Count, Amount: otherProduct.Amount.StringFixed(2)}
	stats.Revenue = coreSale.Amount.Add(coreProduct.Amount).Add(otherProduct.Amount).StringFixed(2)
	return stats, nil
}

func stageBreakdown(pending *PendingResult) map[string]string {
	breakdown := make(map[string]string, len(pending.ByStage))
	for stage, amount := range pending.ByStage {
		breakdown[string(stage)] = amount.StringFixed(2)
	}
	return breakdown
}

// LeaderboardView is the standalone leaderboard endpoint's payload.
type LeaderboardView struct {
	Leaderboard []*LeaderboardRow  `json:"leaderboard"`
	Summary     LeaderboardSummary `json:"summary"`
}

// GetLeaderboard ranks the full roster over one calendar month.
func GetLeaderboard(ctx context.Context, store Store, month, year int) (*LeaderboardView, error) {
	ctx, span := tracer.Start(ctx, "analytics.GetLeaderboard")
	defer span.End()

	if month < 1 || month > 12 || year < 2000 {
		return nil, fmt.Errorf("%w: month=%d year=%d", ErrInvalidRange, month, year)
	}
	rows, err := Leaderboard(ctx, store, monthRange(month, year), 0)
	if err != nil {
		return nil, err
	}
	return &LeaderboardView{Leaderboard: rows, Summary: SummarizeLeaderboard(rows)}, nil
}

// revenueOf re-exposes the decimal revenue for callers assembling summaries.
func revenueOf(coreSale, coreProduct, otherProduct Stat) decimal.Decimal {
	return coreSale.Amount.Add(coreProduct.Amount).Add(otherProduct.Amount)
}
