// Package listing builds the filter, sort, and pagination clauses shared by
// every entity list query. Sortable fields are declared per entity so that
// unknown fields are rejected at the boundary instead of reaching SQL.
package listing

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
)

// Direction is a sort direction
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection normalizes a direction string; empty defaults to asc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf("invalid sort direction %q", s))
	}
}

// Sort is a validated sort specification
type Sort struct {
	Field     string
	Direction Direction
}

// Fields maps API field names to SQL columns for one entity.
type Fields map[string]string

// OrderBy resolves a sort spec against the allowed fields, falling back to
// the default clause when spec is nil. Unknown fields are a validation
// error.
func (f Fields) OrderBy(spec *Sort, defaultClause string) (string, error) {
	if spec == nil {
		return defaultClause, nil
	}
	column, ok := f[spec.Field]
	if !ok {
		return "", apperrors.NewValidationError(fmt.Sprintf("cannot sort by %q", spec.Field))
	}
	dir := "ASC"
	if spec.Direction == Desc {
		dir = "DESC"
	}
	return column + " " + dir, nil
}

// SearchClause builds the case-insensitive partial-match disjunction for a
// free-text search term over the given columns.
func SearchClause(term string, columns []string) squirrel.Sqlizer {
	pattern := "%" + term + "%"
	or := make(squirrel.Or, 0, len(columns))
	for _, col := range columns {
		or = append(or, squirrel.ILike{col: pattern})
	}
	return or
}

// ApplySearch adds the search disjunction to a select builder when the term
// is non-empty.
func ApplySearch(q squirrel.SelectBuilder, term string, columns []string) squirrel.SelectBuilder {
	if strings.TrimSpace(term) == "" {
		return q
	}
	return q.Where(SearchClause(term, columns))
}
