package filtering

import "strings"

// Operator is a field-level comparison applied against a stringified
// position_data value.
type Operator string

const (
	OperatorContains   Operator = "contains"
	OperatorEquals     Operator = "equals"
	OperatorStartsWith Operator = "starts_with"
)

func (o Operator) Valid() bool {
	switch o {
	case OperatorContains, OperatorEquals, OperatorStartsWith:
		return true
	}
	return false
}

// Spec is the composable filter applied to a match collection. Every
// criterion is independently optional; a zero Spec matches everything.
// Spec is a value object and is never persisted.
type Spec struct {
	// MinScore keeps matches with similarity_score >= MinScore.
	MinScore *float64
	// PositionID keeps matches belonging to a single position.
	PositionID *int
	// TopN keeps at most N matches per position, highest scores first.
	TopN *int
	// Search keeps matches whose position_data (or resume filename)
	// contains the string, case-insensitive.
	Search string
	// Field/Operator/Value keep matches whose position_data[Field]
	// satisfies Operator against Value. All three must be set.
	Field    string
	Operator Operator
	Value    string
}

// IsZero reports whether no criterion is set.
func (s Spec) IsZero() bool {
	return s.MinScore == nil &&
		s.PositionID == nil &&
		s.TopN == nil &&
		strings.TrimSpace(s.Search) == "" &&
		!s.fieldCriterionSet()
}

func (s Spec) fieldCriterionSet() bool {
	return s.Field != "" && s.Operator.Valid() && strings.TrimSpace(s.Value) != ""
}

// Float64 returns a pointer for use in Spec literals.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer for use in Spec literals.
func Int(v int) *int { return &v }
