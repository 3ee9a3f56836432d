package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/emr-dev1/resume-matcher/internal/filtering"
	"github.com/emr-dev1/resume-matcher/internal/matcher"
	"go.uber.org/zap"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	// DefaultPageSize matches the results table default.
	DefaultPageSize = 50

	defaultSortField = "rank"
)

// Results owns the canonical match collection and the active filter
// spec, and derives the filtered, sorted projection from them. The
// projection is recomputed synchronously on every mutation of either
// input, so a read never observes a stale (matches, filters) pairing.
// The last write wins; there is no queue of superseded recomputations.
type Results struct {
	mu     sync.Mutex
	logger *zap.Logger

	matches    []*matcher.Match
	spec       filtering.Spec
	projection []*matcher.Match

	sortField string
	sortOrder string
	selected  *matcher.Match
}

func NewResults(logger *zap.Logger) *Results {
	return &Results{
		logger:    logger,
		sortField: defaultSortField,
		sortOrder: SortAsc,
	}
}

// SetMatches replaces the canonical match collection. A nil slice is
// treated as empty rather than an error.
func (r *Results) SetMatches(matches []*matcher.Match) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches = append([]*matcher.Match(nil), matches...)
	r.recompute()
}

// SetFilters replaces the active filter spec wholesale.
func (r *Results) SetFilters(spec filtering.Spec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.spec = spec
	r.recompute()
}

func (r *Results) Filters() filtering.Spec {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.spec
}

// SetSort orders the projection by a match field or a position_data
// column. Unknown orders fall back to ascending.
func (r *Results) SetSort(field, order string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if field == "" {
		field = defaultSortField
	}
	if order != SortAsc && order != SortDesc {
		order = SortAsc
	}

	r.sortField = field
	r.sortOrder = order
	r.recompute()
}

// Projection returns the filtered, sorted view. The returned slice is a
// copy; callers may not mutate the underlying matches.
func (r *Results) Projection() []*matcher.Match {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*matcher.Match(nil), r.projection...)
}

// Page returns a 1-based contiguous slice of the projection.
// Out-of-range pages yield an empty slice.
func (r *Results) Page(page, size int) []*matcher.Match {
	r.mu.Lock()
	defer r.mu.Unlock()

	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		return []*matcher.Match{}
	}

	start := (page - 1) * size
	if start >= len(r.projection) {
		return []*matcher.Match{}
	}

	end := start + size
	if end > len(r.projection) {
		end = len(r.projection)
	}

	return append([]*matcher.Match(nil), r.projection[start:end]...)
}

func (r *Results) TotalPages(size int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if size <= 0 {
		size = DefaultPageSize
	}

	return (len(r.projection) + size - 1) / size
}

// Len is the size of the filtered projection.
func (r *Results) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.projection)
}

// SourceLen is the size of the canonical, unfiltered collection.
func (r *Results) SourceLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.matches)
}

// Select marks a match from the canonical collection as selected,
// clearing the selection when the id is unknown.
func (r *Results) Select(id int) *matcher.Match {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selected = nil
	for _, match := range r.matches {
		if match.ID == id {
			r.selected = match
			break
		}
	}

	return r.selected
}

func (r *Results) Selected() *matcher.Match {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.selected
}

// PositionRef is a position seen in the match collection, carrying its
// denormalized payload for display.
type PositionRef struct {
	ID   int
	Data map[string]any
}

// UniquePositions lists the distinct positions present in the canonical
// collection, in first-seen order.
func (r *Results) UniquePositions() []PositionRef {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int]bool)
	refs := make([]PositionRef, 0)
	for _, match := range r.matches {
		if seen[match.PositionID] {
			continue
		}
		seen[match.PositionID] = true
		refs = append(refs, PositionRef{ID: match.PositionID, Data: match.PositionData})
	}

	return refs
}

// Reset clears matches, filters, sorting and selection.
func (r *Results) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches = nil
	r.spec = filtering.Spec{}
	r.projection = nil
	r.sortField = defaultSortField
	r.sortOrder = SortAsc
	r.selected = nil
}

// recompute rebuilds the projection from the canonical inputs. Callers
// must hold the mutex.
func (r *Results) recompute() {
	projection := filtering.Run(r.logger, filtering.Steps(r.spec), r.matches)
	r.projection = r.sorted(projection)
}

func (r *Results) sorted(matches []*matcher.Match) []*matcher.Match {
	if r.sortField == "" {
		return matches
	}

	sorted := append([]*matcher.Match(nil), matches...)
	desc := r.sortOrder == SortDesc

	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return r.less(sorted[j], sorted[i])
		}
		return r.less(sorted[i], sorted[j])
	})

	return sorted
}

func (r *Results) less(a, b *matcher.Match) bool {
	switch r.sortField {
	case "rank":
		return a.Rank < b.Rank
	case "similarity_score":
		return a.SimilarityScore < b.SimilarityScore
	case "resume_filename":
		return strings.ToLower(a.ResumeFilename) < strings.ToLower(b.ResumeFilename)
	default:
		av, _ := a.Field(r.sortField)
		bv, _ := b.Field(r.sortField)
		return strings.ToLower(av) < strings.ToLower(bv)
	}
}
