package analytics

import (
	"context"
	"fmt"

	"bitbucket.org/gradways/crm_backend/models"
	"golang.org/x/sync/errgroup"
)

// ReportRequest narrows a dashboard-style aggregate to a sub-scope: an admin
// may pick one manager's team or one counsellor, a manager may pick one of
// their own counsellors. Counsellors only ever see themselves.
type ReportRequest struct {
	ActorId      int
	Role         models.Role
	Filter       string
	BeforeDate   string
	AfterDate    string
	ManagerId    int
	CounsellorId int
}

type Report struct {
	Range        DateRange         `json:"range"`
	CoreSale     StatView          `json:"coreSale"`
	CoreProduct  StatView          `json:"coreProduct"`
	OtherProduct StatView          `json:"otherProduct"`
	TotalClients int               `json:"totalClients"`
	Revenue      string            `json:"revenue"`
	Leaderboard  []*LeaderboardRow `json:"leaderboard"`
}

// GetReport is the access-scoped aggregate. Unlike the dashboard leaderboard,
// this one does honor the manager-team restriction.
func GetReport(ctx context.Context, store Store, req ReportRequest) (*Report, error) {
	ctx, span := tracer.Start(ctx, "analytics.GetReport")
	defer span.End()

	scope, rosterManagerId, err := resolveReportScope(ctx, store, req)
	if err != nil {
		return nil, err
	}
	r, err := ResolveDateRange(req.Filter, req.BeforeDate, req.AfterDate)
	if err != nil {
		return nil, err
	}

	var (
		coreSale     Stat
		coreProduct  Stat
		otherProduct Stat
		totalClients int
		leaderboard  []*LeaderboardRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		coreSale, err = CoreSaleByEnrollment(gctx, store, r, scope)
		return err
	})
	g.Go(func() error {
		var err error
		coreProduct, err = CoreProduct(gctx, store, r, scope)
		return err
	})
	g.Go(func() error {
		var err error
		otherProduct, err = OtherProduct(gctx, store, r, scope)
		return err
	})
	g.Go(func() error {
		var err error
		totalClients, err = TotalClients(gctx, store, r, scope)
		return err
	})
	g.Go(func() error {
		var err error
		leaderboard, err = Leaderboard(gctx, store, r, rosterManagerId)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		Range:        r,
		CoreSale:     StatView{Number: coreSale.Count, Amount: coreSale.Amount.StringFixed(2)},
		CoreProduct:  StatView{Number: coreProduct.Count, Amount: coreProduct.Amount.StringFixed(2)},
		OtherProduct: StatView{Number: otherProduct.Count, Amount: otherProduct.Amount.StringFixed(2)},
		TotalClients: totalClients,
		Revenue:      revenueOf(coreSale, coreProduct, otherProduct).StringFixed(2),
		Leaderboard:  leaderboard,
	}, nil
}

// resolveReportScope validates the requested narrowing against the actor's
// role before any aggregate query runs.
func resolveReportScope(ctx context.Context, store Store, req ReportRequest) (RoleScope, int, error) {
	switch req.Role {
	case models.RoleAdmin:
		if req.CounsellorId > 0 {
			return CounsellorScope(req.CounsellorId), req.ManagerId, nil
		}
		return AdminScope(), req.ManagerId, nil

	case models.RoleManager:
		if req.ManagerId > 0 && req.ManagerId != req.ActorId {
			return RoleScope{}, 0, fmt.Errorf("%w: manager %d cannot view manager %d", ErrUnauthorizedScope, req.ActorId, req.ManagerId)
		}
		if req.CounsellorId > 0 {
			onTeam, err := isOnTeam(ctx, store, req.ActorId, req.CounsellorId)
			if err != nil {
				return RoleScope{}, 0, err
			}
			if !onTeam {
				return RoleScope{}, 0, fmt.Errorf("%w: counsellor %d is not on manager %d's team", ErrUnauthorizedScope, req.CounsellorId, req.ActorId)
			}
			return CounsellorScope(req.CounsellorId), req.ActorId, nil
		}
		return RoleScope{Role: models.RoleManager}, req.ActorId, nil

	case models.RoleCounsellor:
		if req.ManagerId > 0 || (req.CounsellorId > 0 && req.CounsellorId != req.ActorId) {
			return RoleScope{}, 0, fmt.Errorf("%w: counsellor %d cannot widen scope", ErrUnauthorizedScope, req.ActorId)
		}
		return CounsellorScope(req.ActorId), 0, nil
	}
	return RoleScope{}, 0, fmt.Errorf("%w: role %q", ErrUnauthorizedScope, req.Role)
}

func isOnTeam(ctx context.Context, store Store, managerId, counsellorId int) (bool, error) {
	team, err := store.Counsellors(ctx, managerId)
	if err != nil {
		return false, err
	}
	for _, member := range team {
		if member.ID == counsellorId {
			return true, nil
		}
	}
	return false, nil
}
