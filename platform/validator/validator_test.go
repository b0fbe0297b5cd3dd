package validator

import "testing"

func TestVar(t *testing.T) {
	v := New()

	if err := v.Var(2025, "min=2000,max=2100"); err != nil {
		t.Fatalf("expected 2025 to pass, got %v", err)
	}
	if err := v.Var(1800, "min=2000,max=2100"); err == nil {
		t.Fatal("expected 1800 to fail the year range")
	}
}

func TestStruct(t *testing.T) {
	type yearRange struct {
		Year int `validate:"required,min=2000,max=2100"`
	}

	v := New()

	if err := v.Struct(yearRange{Year: 2025}); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}
	if err := v.Struct(yearRange{}); err == nil {
		t.Fatal("expected missing year to fail")
	}
}
