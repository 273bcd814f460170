package mysql

import (
	"fmt"
	"strings"

	"github.com/skidvd/HomeAdvisor/internal/domain"
)

// The search statement is assembled from independent predicate clauses,
// one per filter; absent filters contribute nothing. The LEFT JOIN plus
// GROUP BY computes the review average once for filtering (HAVING) and
// sorting alike. GROUP BY on the primary key keeps the scalar columns
// selectable under ONLY_FULL_GROUP_BY.
const searchSelectSQL = `
SELECT
  b.id,
  b.name,
  b.address_line1,
  b.address_line2,
  b.city,
  b.state,
  b.postal_code,
  b.created_at,
  b.updated_at,
  ROUND(AVG(r.rating), 1) AS avg_rating
FROM businesses b
LEFT JOIN reviews r ON r.business_id = b.id`

type clause struct {
	expr string
	args []any
}

// textFilter matches a case-insensitive substring of one business column.
func textFilter(col string, v *string) (clause, bool) {
	if v == nil {
		return clause{}, false
	}
	return clause{
		expr: "LOWER(" + col + ") LIKE CONCAT('%', LOWER(?), '%')",
		args: []any{*v},
	}, true
}

// hoursFilter keeps businesses with at least one hours row for the given
// day whose interval covers the given hour (inclusive on both ends).
func hoursFilter(day, hour *int) (clause, bool) {
	if day == nil || hour == nil {
		return clause{}, false
	}
	return clause{
		expr: "EXISTS (SELECT 1 FROM hours h WHERE h.business_id = b.id" +
			" AND h.day_of_week = ? AND h.open_hour <= ? AND h.close_hour >= ?)",
		args: []any{*day, *hour, *hour},
	}, true
}

// childNameFilter keeps businesses with at least one row in the named
// child table whose name contains the substring, case-insensitively.
func childNameFilter(table string, v *string) (clause, bool) {
	if v == nil {
		return clause{}, false
	}
	return clause{
		expr: fmt.Sprintf("EXISTS (SELECT 1 FROM %s c WHERE c.business_id = b.id"+
			" AND LOWER(c.name) LIKE CONCAT('%%', LOWER(?), '%%'))", table),
		args: []any{*v},
	}, true
}

// buildSearchSQL compiles a normalized, validated SearchQuery into one
// statement plus its bind args. Validation happens upstream; this only
// composes.
func buildSearchSQL(q domain.SearchQuery) (string, []any) {
	var where []clause
	add := func(c clause, ok bool) {
		if ok {
			where = append(where, c)
		}
	}

	add(textFilter("b.name", q.Name))
	add(textFilter("b.address_line1", q.AddressLine1))
	add(textFilter("b.address_line2", q.AddressLine2))
	add(textFilter("b.city", q.City))
	add(textFilter("b.state", q.State))
	add(textFilter("b.postal_code", q.Postal))
	add(hoursFilter(q.DayOfWeek, q.Hour))
	add(childNameFilter("services", q.Service))
	add(childNameFilter("locations", q.Location))

	var sb strings.Builder
	var args []any
	sb.WriteString(searchSelectSQL)

	if len(where) > 0 {
		exprs := make([]string, 0, len(where))
		for _, c := range where {
			exprs = append(exprs, c.expr)
			args = append(args, c.args...)
		}
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(exprs, "\n  AND "))
	}

	sb.WriteString("\nGROUP BY b.id")

	// Businesses with no reviews have a NULL average and never pass.
	if q.Rating != nil {
		sb.WriteString("\nHAVING avg_rating >= ?")
		args = append(args, *q.Rating)
	}

	sortCol := "b.name"
	if q.SortBy == domain.SortByRating {
		sortCol = "avg_rating"
	}
	dir := "ASC"
	if q.SortDir == domain.SortDesc {
		dir = "DESC"
	}
	fmt.Fprintf(&sb, "\nORDER BY %s %s\nLIMIT %d", sortCol, dir, domain.SearchPageSize)

	return sb.String(), args
}
