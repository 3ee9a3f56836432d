package filtering

import (
	"github.com/emr-dev1/resume-matcher/internal/matcher"
	"go.uber.org/zap"
)

// Filter represents a single filtering step applied to matches. Steps
// are pure: they never mutate the input slice and applying the same
// step to the same input always yields the same output.
type Filter interface {
	Name() string
	IsEnabled() bool

	Apply(matches []*matcher.Match) []*matcher.Match
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Steps compiles a Spec into the fixed-order pipeline: score, position,
// free-text search, field operator, top-N per position. Unset criteria
// produce disabled steps which are skipped without touching ordering.
func Steps(spec Spec) []Filter {
	return []Filter{
		NewMinScore(spec.MinScore),
		NewPosition(spec.PositionID),
		NewFreeText(spec.Search),
		NewFieldOperator(spec.Field, spec.Operator, spec.Value),
		NewTopNPerPosition(spec.TopN),
	}
}

// Run executes the supplied filters sequentially. The logger may be nil.
func Run(logger *zap.Logger, steps []Filter, matches []*matcher.Match) []*matcher.Match {
	for _, step := range steps {
		if !step.IsEnabled() {
			if logger != nil {
				logger.Debug("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		initial := len(matches)
		matches = step.Apply(matches)

		if logger != nil {
			logger.Debug("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", initial),
				zap.Int("dropped", initial-len(matches)),
				zap.Int("left", len(matches)),
			)
		}
	}

	return matches
}

// Apply filters matches with spec and returns the surviving subset in a
// fresh slice. The input is left untouched.
func Apply(matches []*matcher.Match, spec Spec) []*matcher.Match {
	return Run(nil, Steps(spec), matches)
}
