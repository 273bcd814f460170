package domain_test

import (
	"errors"
	"testing"

	"github.com/skidvd/HomeAdvisor/internal/domain"
)

func pint(i int) *int { return &i }

func TestParseSort_DefaultsAndCase(t *testing.T) {
	by, dir, err := domain.ParseSort("", "")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if by != domain.SortByName || dir != domain.SortAsc {
		t.Fatalf("expected defaults, got %v %v", by, dir)
	}

	by, dir, err = domain.ParseSort("RATING", "Desc")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if by != domain.SortByRating || dir != domain.SortDesc {
		t.Fatalf("expected rating/desc, got %v %v", by, dir)
	}
}

func TestParseSort_Invalid(t *testing.T) {
	if _, _, err := domain.ParseSort("created", ""); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, _, err := domain.ParseSort("", "sideways"); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSearchQuery_Validate(t *testing.T) {
	cases := []struct {
		name string
		q    domain.SearchQuery
		ok   bool
	}{
		{"empty", domain.SearchQuery{}, true},
		{"pair", domain.SearchQuery{DayOfWeek: pint(6), Hour: pint(8)}, true},
		{"day without hour", domain.SearchQuery{DayOfWeek: pint(2)}, false},
		{"hour without day", domain.SearchQuery{Hour: pint(9)}, false},
		{"day out of range", domain.SearchQuery{DayOfWeek: pint(7), Hour: pint(9)}, false},
		{"hour out of range", domain.SearchQuery{DayOfWeek: pint(0), Hour: pint(24)}, false},
	}
	for _, tc := range cases {
		err := tc.q.Validate()
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected err %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("%s: expected ErrInvalidArgument, got %v", tc.name, err)
		}
	}
}
