package utils

import "testing"

func TestJwtRoundTrip(t *testing.T) {
	t.Setenv("TOKEN_HOUR_LIFESPAN", "1")

	token, err := JwtGenerate(42, "manager")
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := JwtValidate(token)
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Valid {
		t.Fatal("token must validate")
	}
	claim, ok := parsed.Claims.(*JwtCustomClaim)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	if claim.ID != 42 || claim.Role != "manager" {
		t.Errorf("claims = %+v, want id=42 role=manager", claim)
	}
}

func TestJwtValidateRejectsGarbage(t *testing.T) {
	if _, err := JwtValidate("not-a-token"); err == nil {
		t.Error("garbage token must be rejected")
	}
}
