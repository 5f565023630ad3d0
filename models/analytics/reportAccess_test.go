package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"bitbucket.org/gradways/crm_backend/models"
	"bitbucket.org/gradways/crm_backend/utils"
)

func reportFixture() *memStore {
	managerId := 5
	otherManagerId := 6
	return &memStore{
		users: []models.User{
			{ID: 10, Name: "Asha", Role: models.RoleCounsellor, ManagerId: &managerId, IsActive: utils.NewTrue()},
			{ID: 11, Name: "Bikram", Role: models.RoleCounsellor, ManagerId: &otherManagerId, IsActive: utils.NewTrue()},
		},
		clients: []models.Client{
			{ID: 1, CounsellorId: 10, EnrollmentDate: date(2026, time.January, 3)},
			{ID: 2, CounsellorId: 11, EnrollmentDate: date(2026, time.January, 4)},
		},
		payments: []models.StagedPayment{
			{ID: 1, ClientId: 1, Stage: models.PaymentStageInitial,
				Amount: dec("100.00"), PaymentDate: datePtr(2026, time.January, 10)},
			{ID: 2, ClientId: 2, Stage: models.PaymentStageInitial,
				Amount: dec("200.00"), PaymentDate: datePtr(2026, time.January, 11)},
		},
	}
}

func TestGetReportAdminSeesEverything(t *testing.T) {
	report, err := GetReport(context.Background(), reportFixture(), ReportRequest{
		ActorId: 1,
		Role:    models.RoleAdmin,
		Filter:  FilterCustom, BeforeDate: "2026-01-01", AfterDate: "2026-01-31",
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.TotalClients != 2 {
		t.Errorf("total clients = %d, want 2", report.TotalClients)
	}
	if report.Revenue != "300.00" {
		t.Errorf("revenue = %s, want 300.00", report.Revenue)
	}
	if len(report.Leaderboard) != 2 {
		t.Errorf("leaderboard rows = %d, want 2", len(report.Leaderboard))
	}
}

func TestGetReportAdminNarrowsToCounsellor(t *testing.T) {
	report, err := GetReport(context.Background(), reportFixture(), ReportRequest{
		ActorId: 1,
		Role:    models.RoleAdmin,
		Filter:  FilterCustom, BeforeDate: "2026-01-01", AfterDate: "2026-01-31",
		CounsellorId: 11,
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.TotalClients != 1 {
		t.Errorf("total clients = %d, want 1", report.TotalClients)
	}
	if report.Revenue != "200.00" {
		t.Errorf("revenue = %s, want 200.00", report.Revenue)
	}
}

func TestGetReportManagerRestrictedToOwnTeam(t *testing.T) {
	// Counsellor 11 reports to manager 6; manager 5 may not narrow to them.
	_, err := GetReport(context.Background(), reportFixture(), ReportRequest{
		ActorId: 5,
		Role:    models.RoleManager,
		Filter:  FilterCustom, BeforeDate: "2026-01-01", AfterDate: "2026-01-31",
		CounsellorId: 11,
	})
	if !errors.Is(err, ErrUnauthorizedScope) {
		t.Fatalf("got %v, want ErrUnauthorizedScope", err)
	}

	// Their own team member is fine.
	report, err := GetReport(context.Background(), reportFixture(), ReportRequest{
		ActorId: 5,
		Role:    models.RoleManager,
		Filter:  FilterCustom, BeforeDate: "2026-01-01", AfterDate: "2026-01-31",
		CounsellorId: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.TotalClients != 1 {
		t.Errorf("total clients = %d, want 1", report.TotalClients)
	}
}

func TestGetReportManagerCannotImpersonateAnother(t *testing.T) {
	_, err := GetReport(context.Background(), reportFixture(), ReportRequest{
		ActorId: 5,
		Role:    models.RoleManager,
		Filter:  FilterCustom, BeforeDate: "2026-01-01", AfterDate: "2026-01-31",
		ManagerId: 6,
	})
	if !errors.Is(err, ErrUnauthorizedScope) {
		t.Fatalf("got %v, want ErrUnauthorizedScope", err)
	}
}

func TestGetReportManagerLeaderboardIsOwnRoster(t *testing.T) {
	report, err := GetReport(context.Background(), reportFixture(), ReportRequest{
		ActorId: 5,
		Role:    models.RoleManager,
		Filter:  FilterCustom, BeforeDate: "2026-01-01", AfterDate: "2026-01-31",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Leaderboard) != 1 || report.Leaderboard[0].CounsellorId != 10 {
		t.Errorf("manager leaderboard = %+v, want only counsellor 10", report.Leaderboard)
	}
	// Client rows themselves are not narrowed for managers; only the
	// leaderboard roster is.
	if report.TotalClients != 2 {
		t.Errorf("total clients = %d, want 2", report.TotalClients)
	}
}

func TestGetReportCounsellorCannotWiden(t *testing.T) {
	_, err := GetReport(context.Background(), reportFixture(), ReportRequest{
		ActorId: 10,
		Role:    models.RoleCounsellor,
		Filter:  FilterCustom, BeforeDate: "2026-01-01", AfterDate: "2026-01-31",
		CounsellorId: 11,
	})
	if !errors.Is(err, ErrUnauthorizedScope) {
		t.Fatalf("got %v, want ErrUnauthorizedScope", err)
	}

	report, err := GetReport(context.Background(), reportFixture(), ReportRequest{
		ActorId: 10,
		Role:    models.RoleCounsellor,
		Filter:  FilterCustom, BeforeDate: "2026-01-01", AfterDate: "2026-01-31",
		CounsellorId: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.TotalClients != 1 || report.Revenue != "100.00" {
		t.Errorf("report = clients=%d revenue=%s, want 1 / 100.00", report.TotalClients, report.Revenue)
	}
}

func TestGetReportRejectsUnknownRole(t *testing.T) {
	_, err := GetReport(context.Background(), reportFixture(), ReportRequest{
		ActorId: 1,
		Role:    "auditor",
		Filter:  FilterMonthly,
	})
	if !errors.Is(err, ErrUnauthorizedScope) {
		t.Fatalf("got %v, want ErrUnauthorizedScope", err)
	}
}

func TestScopeFor(t *testing.T) {
	if scope := ScopeFor(models.RoleCounsellor, 10); !scope.Restricted() || scope.CounsellorId != 10 {
		t.Errorf("counsellor scope = %+v, want restricted to 10", scope)
	}
	if scope := ScopeFor(models.RoleAdmin, 1); scope.Restricted() {
		t.Errorf("admin scope = %+v, must not be restricted", scope)
	}
	if scope := ScopeFor(models.RoleManager, 5); scope.Restricted() {
		t.Errorf("manager scope = %+v, must not be restricted", scope)
	}
}
