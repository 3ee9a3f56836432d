package filtering

import (
	"sort"
	"strings"

	"github.com/emr-dev1/resume-matcher/internal/matcher"
)

type minScoreFilter struct {
	score   float64
	enabled bool
}

// NewMinScore creates a filter that keeps matches scoring at or above
// the threshold. Out-of-range thresholds are clamped to [0, 1].
func NewMinScore(score *float64) Filter {
	f := &minScoreFilter{}
	if score != nil {
		f.enabled = true
		f.score = *score
		if f.score < 0 {
			f.score = 0
		}
		if f.score > 1 {
			f.score = 1
		}
	}
	return f
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) IsEnabled() bool { return f.enabled }

func (f *minScoreFilter) Apply(matches []*matcher.Match) []*matcher.Match {
	kept := make([]*matcher.Match, 0, len(matches))
	for _, match := range matches {
		if match.SimilarityScore >= f.score {
			kept = append(kept, match)
		}
	}
	return kept
}

type positionFilter struct {
	id      int
	enabled bool
}

// NewPosition creates a filter that keeps matches of a single position.
func NewPosition(id *int) Filter {
	f := &positionFilter{}
	if id != nil {
		f.enabled = true
		f.id = *id
	}
	return f
}

func (f *positionFilter) Name() string { return "position" }

func (f *positionFilter) IsEnabled() bool { return f.enabled }

func (f *positionFilter) Apply(matches []*matcher.Match) []*matcher.Match {
	kept := make([]*matcher.Match, 0, len(matches))
	for _, match := range matches {
		if match.PositionID == f.id {
			kept = append(kept, match)
		}
	}
	return kept
}

type freeTextFilter struct {
	query string
}

// NewFreeText creates a filter that keeps matches whose position data
// or resume filename contains the query, case-insensitive. Whitespace
// only queries disable the step.
func NewFreeText(query string) Filter {
	return &freeTextFilter{query: strings.TrimSpace(query)}
}

func (f *freeTextFilter) Name() string { return "free_text" }

func (f *freeTextFilter) IsEnabled() bool { return f.query != "" }

func (f *freeTextFilter) Apply(matches []*matcher.Match) []*matcher.Match {
	kept := make([]*matcher.Match, 0, len(matches))
	for _, match := range matches {
		if match.MatchesSearchText(f.query) {
			kept = append(kept, match)
		}
	}
	return kept
}

type fieldOperatorFilter struct {
	field    string
	operator Operator
	value    string
}

// NewFieldOperator creates a filter comparing a single position_data
// column against a value. The step is enabled only when field, operator
// and value are all present; matches missing the column are dropped.
func NewFieldOperator(field string, operator Operator, value string) Filter {
	return &fieldOperatorFilter{
		field:    field,
		operator: operator,
		value:    strings.ToLower(strings.TrimSpace(value)),
	}
}

func (f *fieldOperatorFilter) Name() string { return "field_operator" }

func (f *fieldOperatorFilter) IsEnabled() bool {
	return f.field != "" && f.operator.Valid() && f.value != ""
}

func (f *fieldOperatorFilter) Apply(matches []*matcher.Match) []*matcher.Match {
	kept := make([]*matcher.Match, 0, len(matches))
	for _, match := range matches {
		raw, ok := match.Field(f.field)
		if !ok {
			continue
		}

		if f.satisfies(strings.ToLower(raw)) {
			kept = append(kept, match)
		}
	}
	return kept
}

func (f *fieldOperatorFilter) satisfies(fieldValue string) bool {
	switch f.operator {
	case OperatorContains:
		return strings.Contains(fieldValue, f.value)
	case OperatorEquals:
		return fieldValue == f.value
	case OperatorStartsWith:
		return strings.HasPrefix(fieldValue, f.value)
	}
	return false
}

type topNFilter struct {
	n int
}

// NewTopNPerPosition creates a filter keeping at most n matches per
// position, the highest similarity scores first. Non-positive values
// disable the step.
func NewTopNPerPosition(n *int) Filter {
	f := &topNFilter{}
	if n != nil {
		f.n = *n
	}
	return f
}

func (f *topNFilter) Name() string { return "top_n_per_position" }

func (f *topNFilter) IsEnabled() bool { return f.n > 0 }

func (f *topNFilter) Apply(matches []*matcher.Match) []*matcher.Match {
	groups := make(map[int][]*matcher.Match)
	order := make([]int, 0)
	for _, match := range matches {
		if _, ok := groups[match.PositionID]; !ok {
			order = append(order, match.PositionID)
		}
		groups[match.PositionID] = append(groups[match.PositionID], match)
	}

	kept := make([]*matcher.Match, 0, len(matches))
	for _, id := range order {
		group := groups[id]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].SimilarityScore > group[j].SimilarityScore
		})

		if len(group) > f.n {
			group = group[:f.n]
		}
		kept = append(kept, group...)
	}
	return kept
}
