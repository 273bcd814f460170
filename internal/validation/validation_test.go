package validation_test

import (
	"testing"

	"github.com/skidvd/HomeAdvisor/internal/app"
	"github.com/skidvd/HomeAdvisor/internal/validation"
)

func intp(i int) *int { return &i }

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := validation.New()

	err := v.Validate(&app.HourPayload{Open: intp(8), Close: intp(17)})
	if err == nil {
		t.Fatal("expected an error for a missing dayOfWeek")
	}
	if got, want := err.Error(), "missing required field 'dayOfWeek'"; got != want {
		t.Fatalf("message %q, want %q", got, want)
	}
}

func TestValidate_RangeViolation(t *testing.T) {
	v := validation.New()

	err := v.Validate(&app.HourPayload{DayOfWeek: intp(9), Open: intp(8), Close: intp(17)})
	if err == nil {
		t.Fatal("expected an error for dayOfWeek out of range")
	}
	if got, want := err.Error(), "value of field 'dayOfWeek' is not in the expected range"; got != want {
		t.Fatalf("message %q, want %q", got, want)
	}
}

func TestValidate_NestedDive(t *testing.T) {
	v := validation.New()

	req := app.CreateBusinessRequest{
		Name:     "Ace",
		Services: []app.ServicePayload{{Name: ""}},
	}
	err := v.Validate(&req)
	if err == nil {
		t.Fatal("expected an error for a nested service without a name")
	}
	if got, want := err.Error(), "missing required field 'name'"; got != want {
		t.Fatalf("message %q, want %q", got, want)
	}
}

func TestValidate_OK(t *testing.T) {
	v := validation.New()

	req := app.CreateBusinessRequest{
		Name:  "Ace",
		Hours: []app.HourPayload{{DayOfWeek: intp(0), Open: intp(0), Close: intp(23)}},
	}
	if err := v.Validate(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
