package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-12d3-a456-426614174000",
	}
	invalid := []string{
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"not-a-uuid",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Present", "Late"}
	if !IsInSlice("Late", slice) {
		t.Error("IsInSlice(Late) = false, want true")
	}
	if IsInSlice("late", slice) {
		t.Error("IsInSlice(late) = true, want false")
	}
}

func TestIsNonNegative(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	pos := decimal.NewFromInt(1)
	if !IsNonNegative(nil) {
		t.Error("IsNonNegative(nil) = false")
	}
	if !IsNonNegative(&pos) {
		t.Error("IsNonNegative(1) = false")
	}
	if IsNonNegative(&neg) {
		t.Error("IsNonNegative(-1) = true")
	}
}

func TestCheckPeriod(t *testing.T) {
	var errs ValidationErrors
	CheckPeriod(&errs, "2025-03-31", "2025-03-01")
	if len(errs) != 1 || errs[0].Field != "period_end" {
		t.Errorf("CheckPeriod reversed range = %v", errs)
	}

	errs = nil
	start, end := CheckPeriod(&errs, "2025-03-01", "2025-03-31")
	if errs.Err() != nil {
		t.Fatalf("CheckPeriod valid range = %v", errs)
	}
	if start.Day() != 1 || end.Day() != 31 {
		t.Errorf("CheckPeriod parsed %v..%v", start, end)
	}
}

func TestCheckPeriod_MaxLength(t *testing.T) {
	cases := []struct {
		start, end string
		wantErr    bool
	}{
		{"2025-01-01", "2025-03-03", false},
		{"2025-01-01", "2025-03-04", true},
		{"0001-01-01", "9999-12-31", true},
		{"2025-03-01", "2025-03-01", false},
	}
	for _, c := range cases {
		var errs ValidationErrors
		CheckPeriod(&errs, c.start, c.end)
		if got := errs.Err() != nil; got != c.wantErr {
			t.Errorf("CheckPeriod(%s, %s) errors = %v, want error %v", c.start, c.end, errs, c.wantErr)
			continue
		}
		if c.wantErr && errs.ToMap()["period_end"] == "" {
			t.Errorf("CheckPeriod(%s, %s) did not flag period_end: %v", c.start, c.end, errs)
		}
	}
}

func TestHasMaxPlaces(t *testing.T) {
	cases := []struct {
		input  string
		places int32
		want   bool
	}{
		{"1.25", 2, true},
		{"1.125", 2, false},
		{"1.1250", 4, true},
		{"75.12345", 4, false},
		{"-0.5", 2, true},
	}
	for _, c := range cases {
		d := decimal.RequireFromString(c.input)
		if got := HasMaxPlaces(&d, c.places); got != c.want {
			t.Errorf("HasMaxPlaces(%s, %d) = %v, want %v", c.input, c.places, got, c.want)
		}
	}
	if !HasMaxPlaces(nil, 2) {
		t.Error("HasMaxPlaces(nil) = false")
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	var errs ValidationErrors
	errs.Add("employee_id", "is required")
	errs.Add("date", "is invalid")
	m := errs.ToMap()
	if m["employee_id"] != "is required" || m["date"] != "is invalid" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "employee_id: is required; date: is invalid" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
