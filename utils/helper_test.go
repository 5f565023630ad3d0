package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "first.last@example.co"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("%q must be valid", email)
		}
	}
	invalid := []string{"", "plain", "@missing.local", "x@"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("%q must be invalid", email)
		}
	}
}

func TestPointerHelpers(t *testing.T) {
	if !*NewTrue() || *NewFalse() {
		t.Error("NewTrue/NewFalse returned wrong values")
	}
	if got := DereferencePtr[int](nil, 7); got != 7 {
		t.Errorf("DereferencePtr(nil, 7) = %d, want 7", got)
	}
	v := 3
	if got := DereferencePtr(&v, 7); got != 3 {
		t.Errorf("DereferencePtr(&3, 7) = %d, want 3", got)
	}
}

func TestGenerateUniqueFilename(t *testing.T) {
	a, b := GenerateUniqueFilename(), GenerateUniqueFilename()
	if a == "" || a == b {
		t.Errorf("filenames must be unique and non-empty: %q vs %q", a, b)
	}
}
