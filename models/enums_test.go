package models

import "testing"

func TestPaymentStageScan(t *testing.T) {
	var stage PaymentStage
	if err := stage.Scan([]byte("BEFORE_VISA")); err != nil {
		t.Fatal(err)
	}
	if stage != PaymentStageBeforeVisa {
		t.Errorf("stage = %q, want BEFORE_VISA", stage)
	}
	if err := stage.Scan("FREE_MONEY"); err == nil {
		t.Error("invalid stage must be rejected")
	}
}

func TestPaymentStageIsPaying(t *testing.T) {
	for _, stage := range PayingStages {
		if !stage.IsPaying() {
			t.Errorf("%s must be a paying stage", stage)
		}
	}
	if PaymentStageSubmittedVisa.IsPaying() {
		t.Error("SUBMITTED_VISA must not be a paying stage")
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleManager, RoleCounsellor} {
		if !role.Valid() {
			t.Errorf("%s must be valid", role)
		}
	}
	if Role("superuser").Valid() {
		t.Error("unknown role must be invalid")
	}
}
