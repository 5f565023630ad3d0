package utils

import (
	"context"
	"testing"
)

func TestContextHelpersRoundTrip(t *testing.T) {
	ctx := context.Background()

	if _, ok := GetUserIdFromContext(ctx); ok {
		t.Errorf("empty context reported a user id")
	}
	if _, ok := GetRoleFromContext(ctx); ok {
		t.Errorf("empty context reported a role")
	}
	if _, ok := GetCorrelationIdFromContext(ctx); ok {
		t.Errorf("empty context reported a correlation id")
	}

	ctx = SetUserIdInContext(ctx, 42)
	ctx = SetRoleInContext(ctx, "manager")
	ctx = SetCorrelationIdInContext(ctx, "abc-123")

	if id, ok := GetUserIdFromContext(ctx); !ok || id != 42 {
		t.Errorf("GetUserIdFromContext = %d, %v; want 42, true", id, ok)
	}
	if role, ok := GetRoleFromContext(ctx); !ok || role != "manager" {
		t.Errorf("GetRoleFromContext = %q, %v; want manager, true", role, ok)
	}
	if cid, ok := GetCorrelationIdFromContext(ctx); !ok || cid != "abc-123" {
		t.Errorf("GetCorrelationIdFromContext = %q, %v; want abc-123, true", cid, ok)
	}
}
