package domain

import (
	"fmt"
	"strconv"
)

// Filter is a single client-supplied query predicate, as received on the wire.
// swagger:model Filter
type Filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// NormalizedFilter is a validated predicate: Column and Operator come from the
// allow-lists below (safe to interpolate into SQL), Value is coerced to the
// column's type.
type NormalizedFilter struct {
	Column   string
	Operator string
	Value    any
}

// filterFields maps wire field names to conference columns.
var filterFields = map[string]string{
	"CITY":          "city",
	"TOPIC":         "topics",
	"MONTH":         "month",
	"MAX_ATTENDEES": "max_attendees",
}

// filterOperators maps wire operator names to SQL comparison operators.
var filterOperators = map[string]string{
	"EQ":   "=",
	"GT":   ">",
	"GTEQ": ">=",
	"LT":   "<",
	"LTEQ": "<=",
	"NE":   "<>",
}

// intColumns are the columns whose filter values must be integers.
var intColumns = map[string]bool{
	"month":         true,
	"max_attendees": true,
}

// ValidateFilters parses and validates a client-supplied filter set. Unknown
// fields or operators fail the whole set. Every operator other than "=" is an
// inequality, and at most one distinct column may carry inequalities: the
// backing store can only range-compare on a single field per query. Returns
// that column (or "") and the normalized predicates.
func ValidateFilters(filters []Filter) (string, []NormalizedFilter, error) {
	var inequalityColumn string
	normalized := make([]NormalizedFilter, 0, len(filters))

	for _, f := range filters {
		column, ok := filterFields[f.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: unknown field %q", ErrInvalidFilter, f.Field)
		}
		op, ok := filterOperators[f.Operator]
		if !ok {
			return "", nil, fmt.Errorf("%w: unknown operator %q", ErrInvalidFilter, f.Operator)
		}

		var value any = f.Value
		if intColumns[column] {
			n, err := strconv.Atoi(f.Value)
			if err != nil {
				return "", nil, fmt.Errorf("%w: field %q requires an integer value, got %q", ErrInvalidFilter, f.Field, f.Value)
			}
			value = n
		}

		if op != "=" {
			if column == "topics" && op != "<>" {
				// topics is a list column; only membership checks make sense.
				return "", nil, fmt.Errorf("%w: operator %q not supported on field %q", ErrInvalidFilter, f.Operator, f.Field)
			}
			if inequalityColumn != "" && inequalityColumn != column {
				return "", nil, ErrMultipleInequalityFields
			}
			inequalityColumn = column
		}

		normalized = append(normalized, NormalizedFilter{Column: column, Operator: op, Value: value})
	}

	return inequalityColumn, normalized, nil
}
