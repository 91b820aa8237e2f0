package helpers

import "testing"

func TestNullString(t *testing.T) {
	if got := NullString(nil); got != nil {
		t.Errorf("NullString(nil) = %v, want nil", got)
	}

	empty := ""
	if got := NullString(&empty); got == nil || *got != "" {
		t.Error("empty string must stay empty, not become nil")
	}

	src := "original"
	got := NullString(&src)
	if got == nil || *got != "original" {
		t.Fatalf("NullString = %v", got)
	}
	src = "mutated"
	if *got != "original" {
		t.Error("result must be a copy, not alias the input")
	}
}

func TestStringPtr(t *testing.T) {
	if got := StringPtr(""); got != nil {
		t.Errorf("StringPtr(\"\") = %v, want nil", got)
	}
	if got := StringPtr("x"); got == nil || *got != "x" {
		t.Errorf("StringPtr(\"x\") = %v", got)
	}
}
