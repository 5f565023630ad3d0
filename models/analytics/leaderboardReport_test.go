package analytics

import (
	"context"
	"testing"
	"time"

	"bitbucket.org/gradways/crm_backend/models"
	"bitbucket.org/gradways/crm_backend/utils"
)

func leaderboardFixture() *memStore {
	managerId := 5
	return &memStore{
		users: []models.User{
			{ID: 10, Name: "Asha", Role: models.RoleCounsellor, ManagerId: &managerId, IsActive: utils.NewTrue()},
			{ID: 11, Name: "Bikram", Role: models.RoleCounsellor, IsActive: utils.NewTrue()},
			{ID: 12, Name: "Chandra", Role: models.RoleCounsellor, IsActive: utils.NewFalse()},
			{ID: 5, Name: "Manager", Role: models.RoleManager, IsActive: utils.NewTrue()},
		},
		clients: []models.Client{
			{ID: 1, CounsellorId: 10, EnrollmentDate: date(2026, time.January, 3)},
			{ID: 2, CounsellorId: 10, EnrollmentDate: date(2026, time.January, 4)},
			{ID: 3, CounsellorId: 11, EnrollmentDate: date(2026, time.January, 5)},
			{ID: 4, CounsellorId: 11, EnrollmentDate: date(2026, time.January, 6)},
		},
		payments: []models.StagedPayment{
			{ID: 1, ClientId: 1, Stage: models.PaymentStageInitial,
				Amount: dec("100.00"), PaymentDate: datePtr(2026, time.January, 10)},
			{ID: 2, ClientId: 2, Stage: models.PaymentStageInitial,
				Amount: dec("100.00"), PaymentDate: datePtr(2026, time.January, 11)},
			{ID: 3, ClientId: 3, Stage: models.PaymentStageInitial,
				Amount: dec("150.00"), PaymentDate: datePtr(2026, time.January, 12)},
			{ID: 4, ClientId: 4, Stage: models.PaymentStageInitial,
				Amount: dec("150.00"), PaymentDate: datePtr(2026, time.January, 13)},
		},
		targets: []models.CounsellorTarget{
			{ID: 7, CounsellorId: 10, Target: 5, Month: 1, Year: 2026},
		},
	}
}

func TestLeaderboardTieBrokenByRevenue(t *testing.T) {
	january := rangeOf(date(2026, time.January, 1), date(2026, time.January, 31))
	rows, err := Leaderboard(context.Background(), leaderboardFixture(), january, 0)
	if err != nil {
		t.Fatal(err)
	}
	// Both active counsellors enrolled 2 clients; Bikram's higher revenue
	// breaks the tie. The inactive counsellor is absent entirely.
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].CounsellorId != 11 || rows[1].CounsellorId != 10 {
		t.Errorf("order = [%d, %d], want [11, 10]", rows[0].CounsellorId, rows[1].CounsellorId)
	}
	if rows[0].Rank != 1 || rows[1].Rank != 2 {
		t.Errorf("ranks = [%d, %d], want [1, 2]", rows[0].Rank, rows[1].Rank)
	}
	if rows[0].Revenue != "300.00" || rows[1].Revenue != "200.00" {
		t.Errorf("revenues = [%s, %s], want [300.00, 200.00]", rows[0].Revenue, rows[1].Revenue)
	}
}

func TestLeaderboardTargetJoin(t *testing.T) {
	january := rangeOf(date(2026, time.January, 1), date(2026, time.January, 31))
	rows, err := Leaderboard(context.Background(), leaderboardFixture(), january, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range rows {
		switch row.CounsellorId {
		case 10:
			if row.Target != 5 || row.TargetId == nil || *row.TargetId != 7 {
				t.Errorf("counsellor 10: target=%d targetId=%v, want 5 / 7", row.Target, row.TargetId)
			}
			if row.AchievedTarget != 2 {
				t.Errorf("counsellor 10: achieved = %d, want 2", row.AchievedTarget)
			}
		case 11:
			if row.Target != 0 || row.TargetId != nil {
				t.Errorf("counsellor 11: target=%d targetId=%v, want zero / nil", row.Target, row.TargetId)
			}
		}
	}
}

func TestLeaderboardManagerRoster(t *testing.T) {
	january := rangeOf(date(2026, time.January, 1), date(2026, time.January, 31))
	rows, err := Leaderboard(context.Background(), leaderboardFixture(), january, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].CounsellorId != 10 {
		t.Fatalf("manager 5's board = %+v, want only counsellor 10", rows)
	}
	if rows[0].Rank != 1 {
		t.Errorf("rank = %d, want 1", rows[0].Rank)
	}
}

func TestSummarizeLeaderboard(t *testing.T) {
	january := rangeOf(date(2026, time.January, 1), date(2026, time.January, 31))
	rows, err := Leaderboard(context.Background(), leaderboardFixture(), january, 0)
	if err != nil {
		t.Fatal(err)
	}
	summary := SummarizeLeaderboard(rows)
	if summary.TotalEnrollments != 4 {
		t.Errorf("total enrollments = %d, want 4", summary.TotalEnrollments)
	}
	if summary.TotalRevenue != "500.00" {
		t.Errorf("total revenue = %s, want 500.00", summary.TotalRevenue)
	}
}

func TestGetLeaderboardValidatesMonth(t *testing.T) {
	if _, err := GetLeaderboard(context.Background(), &memStore{}, 13, 2026); err == nil {
		t.Error("month 13 must be rejected")
	}
	if _, err := GetLeaderboard(context.Background(), &memStore{}, 0, 2026); err == nil {
		t.Error("month 0 must be rejected")
	}
}

func TestGetLeaderboardEnrollmentGoal(t *testing.T) {
	goal, err := GetLeaderboardEnrollmentGoal(context.Background(), leaderboardFixture(), 10, 1, 2026)
	if err != nil {
		t.Fatal(err)
	}
	if goal.Achieved != 2 || goal.Target != 5 || goal.Remaining != 3 {
		t.Errorf("goal = %+v, want achieved=2 target=5 remaining=3", goal)
	}

	// No target row: target and remaining default to zero.
	goal, err = GetLeaderboardEnrollmentGoal(context.Background(), leaderboardFixture(), 11, 1, 2026)
	if err != nil {
		t.Fatal(err)
	}
	if goal.Target != 0 || goal.TargetId != nil || goal.Remaining != 0 {
		t.Errorf("goal without target row = %+v, want zeros", goal)
	}
	if goal.Achieved != 2 {
		t.Errorf("achieved = %d, want 2", goal.Achieved)
	}
}
