package mysql

import (
	"reflect"
	"strings"
	"testing"

	"github.com/skidvd/HomeAdvisor/internal/domain"
)

func str(s string) *string   { return &s }
func intp(i int) *int        { return &i }
func f64(f float64) *float64 { return &f }

func TestBuildSearchSQL_NoFilters(t *testing.T) {
	sql, args := buildSearchSQL(domain.SearchQuery{SortBy: domain.SortByName, SortDir: domain.SortAsc})

	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
	if strings.Contains(sql, "WHERE") {
		t.Fatalf("unexpected WHERE clause:\n%s", sql)
	}
	if strings.Contains(sql, "HAVING") {
		t.Fatalf("unexpected HAVING clause:\n%s", sql)
	}
	if !strings.Contains(sql, "GROUP BY b.id") {
		t.Fatalf("missing GROUP BY:\n%s", sql)
	}
	if !strings.Contains(sql, "ORDER BY b.name ASC") {
		t.Fatalf("missing default ordering:\n%s", sql)
	}
	if !strings.Contains(sql, "LIMIT 25") {
		t.Fatalf("missing page cap:\n%s", sql)
	}
}

func TestBuildSearchSQL_AllFilters(t *testing.T) {
	q := domain.SearchQuery{
		Name:         str("plumb"),
		AddressLine1: str("main"),
		AddressLine2: str("suite"),
		City:         str("denver"),
		State:        str("co"),
		Postal:       str("80"),
		DayOfWeek:    intp(1),
		Hour:         intp(9),
		Service:      str("repair"),
		Location:     str("north"),
		Rating:       f64(4),
		SortBy:       domain.SortByRating,
		SortDir:      domain.SortDesc,
	}
	sql, args := buildSearchSQL(q)

	// six text filters, then day/hour/hour, two child names, then rating
	want := []any{"plumb", "main", "suite", "denver", "co", "80", 1, 9, 9, "repair", "north", 4.0}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("arg order mismatch:\n got %v\nwant %v", args, want)
	}

	for _, frag := range []string{
		"WHERE LOWER(b.name) LIKE",
		"EXISTS (SELECT 1 FROM hours h WHERE h.business_id = b.id AND h.day_of_week = ? AND h.open_hour <= ? AND h.close_hour >= ?)",
		"EXISTS (SELECT 1 FROM services c WHERE c.business_id = b.id",
		"EXISTS (SELECT 1 FROM locations c WHERE c.business_id = b.id",
		"HAVING avg_rating >= ?",
		"ORDER BY avg_rating DESC",
	} {
		if !strings.Contains(sql, frag) {
			t.Fatalf("missing %q in:\n%s", frag, sql)
		}
	}
}

func TestBuildSearchSQL_SingleFilter(t *testing.T) {
	sql, args := buildSearchSQL(domain.SearchQuery{City: str("Austin")})

	if !strings.Contains(sql, "WHERE LOWER(b.city) LIKE CONCAT('%', LOWER(?), '%')") {
		t.Fatalf("unexpected WHERE:\n%s", sql)
	}
	if strings.Contains(sql, "AND ") {
		t.Fatalf("single filter must not produce AND:\n%s", sql)
	}
	if len(args) != 1 || args[0] != "Austin" {
		t.Fatalf("args: %v", args)
	}
}

func TestBuildSearchSQL_RatingOnly(t *testing.T) {
	sql, args := buildSearchSQL(domain.SearchQuery{Rating: f64(3.5)})

	if strings.Contains(sql, "WHERE") {
		t.Fatalf("rating filter must not add a WHERE clause:\n%s", sql)
	}
	if !strings.Contains(sql, "HAVING avg_rating >= ?") {
		t.Fatalf("missing HAVING:\n%s", sql)
	}
	if len(args) != 1 || args[0] != 3.5 {
		t.Fatalf("args: %v", args)
	}
}
