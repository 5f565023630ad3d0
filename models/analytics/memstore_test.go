package analytics

import (
	"context"
	"time"

	"bitbucket.org/gradways/crm_backend/models"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory Store used by the aggregate tests. It applies the
// same visibility rules as the SQL implementation: archived clients are
// invisible everywhere, and a restricted scope narrows rows to one
// counsellor's clients.
type memStore struct {
	clients  []models.Client
	payments []models.StagedPayment
	products []models.ProductPayment
	entities map[string][]EntityRow
	users    []models.User
	targets  []models.CounsellorTarget
}

func (m *memStore) visibleClients(scope RoleScope) map[int]bool {
	visible := make(map[int]bool)
	for _, c := range m.clients {
		if c.Archived() {
			continue
		}
		if scope.Restricted() && c.CounsellorId != scope.CounsellorId {
			continue
		}
		visible[c.ID] = true
	}
	return visible
}

func (m *memStore) ClientsEnrolledBetween(_ context.Context, r DateRange, scope RoleScope) ([]models.Client, error) {
	visible := m.visibleClients(scope)
	var out []models.Client
	for _, c := range m.clients {
		if visible[c.ID] && r.Contains(c.EnrollmentDate) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) PaymentsForClients(_ context.Context, clientIds []int) ([]models.StagedPayment, error) {
	wanted := make(map[int]bool, len(clientIds))
	for _, id := range clientIds {
		wanted[id] = true
	}
	var out []models.StagedPayment
	for _, p := range m.payments {
		if wanted[p.ClientId] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) PaymentsPaidBetween(_ context.Context, r DateRange, scope RoleScope) ([]models.StagedPayment, error) {
	visible := m.visibleClients(scope)
	var out []models.StagedPayment
	for _, p := range m.payments {
		if !visible[p.ClientId] || !p.Stage.IsPaying() {
			continue
		}
		if r.Contains(p.EffectiveDate()) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) DirectProductPaymentsBetween(_ context.Context, r DateRange, scope RoleScope) ([]models.ProductPayment, error) {
	visible := m.visibleClients(scope)
	var out []models.ProductPayment
	for _, p := range m.products {
		if !visible[p.ClientId] || p.PaymentDate == nil {
			continue
		}
		if r.Contains(*p.PaymentDate) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) ProductPaymentRefs(_ context.Context, entityType string, scope RoleScope) ([]models.ProductPayment, error) {
	visible := m.visibleClients(scope)
	var out []models.ProductPayment
	for _, p := range m.products {
		if visible[p.ClientId] && p.EntityType == entityType {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) EntityRowsBetween(_ context.Context, entityType string, ids []int, r DateRange) ([]EntityRow, error) {
	kind, ok := LookupEntityKind(entityType)
	if !ok || len(ids) == 0 {
		return nil, nil
	}
	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []EntityRow
	for _, row := range m.entities[entityType] {
		if !wanted[row.ID] || !r.Contains(row.Date) {
			continue
		}
		if kind.CountOnly {
			row.Amount = decimal.Zero
		}
		out = append(out, row)
	}
	return out, nil
}

func (m *memStore) Counsellors(_ context.Context, managerId int) ([]models.User, error) {
	var out []models.User
	for _, u := range m.users {
		if u.Role != models.RoleCounsellor {
			continue
		}
		if u.IsActive != nil && !*u.IsActive {
			continue
		}
		if managerId > 0 && (u.ManagerId == nil || *u.ManagerId != managerId) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (m *memStore) TargetForMonth(_ context.Context, counsellorId, month, year int) (*models.CounsellorTarget, error) {
	for i, t := range m.targets {
		if t.CounsellorId == counsellorId && t.Month == month && t.Year == year {
			return &m.targets[i], nil
		}
	}
	return nil, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func dec(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

func nullDec(value string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(value), Valid: true}
}

func rangeOf(start, end time.Time) DateRange {
	return DateRange{Start: startOfDay(start), End: endOfDay(end)}
}
