package matcher

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

type Matches struct {
	Items []*Match
}

// Match is a scored pairing of one resume to one position. Rank is
// assigned by the backend per position, 1 = highest score, and is kept
// as-is on the client even after filtering. PositionData is the
// denormalized output-column payload of the position, schema unknown
// until upload time.
type Match struct {
	ID              int            `json:"match_id"`
	Rank            int            `json:"rank"`
	ResumeID        int            `json:"resume_id"`
	ResumeFilename  string         `json:"resume_filename"`
	PositionID      int            `json:"position_id"`
	PositionData    map[string]any `json:"position_data"`
	SimilarityScore float64        `json:"similarity_score"`
}

// MatchOptions narrows a match listing server-side.
type MatchOptions struct {
	Offset     int
	Limit      int
	PositionID int
	MinScore   float64
	// HasMinScore distinguishes an explicit 0.0 threshold from unset.
	HasMinScore bool
}

func (o *MatchOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		q.Set("offset", "0")
		return q
	}

	q.Set("offset", strconv.Itoa(o.Offset))
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.PositionID > 0 {
		q.Set("position_id", strconv.Itoa(o.PositionID))
	}
	if o.HasMinScore {
		q.Set("min_score", strconv.FormatFloat(o.MinScore, 'f', -1, 64))
	}

	return q
}

func (c *Client) GetMatches(projectID int, opts *MatchOptions) (*Matches, error) {
	var items []map[string]any
	path := fmt.Sprintf("/api/projects/%d/matches", projectID)
	if err := c.getJSON(path, opts.query(), &items); err != nil {
		return nil, err
	}

	var matches []*Match
	cfg := &mapstructure.DecoderConfig{
		Result:           &matches,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, err
	}

	return &Matches{Items: matches}, nil
}

func (c *Client) GetMatchCount(projectID int, opts *MatchOptions) (int, error) {
	var result struct {
		TotalMatches int `json:"total_matches"`
	}

	q := opts.query()
	q.Del("offset")
	q.Del("limit")

	path := fmt.Sprintf("/api/projects/%d/matches/count", projectID)
	if err := c.getJSON(path, q, &result); err != nil {
		return 0, err
	}

	return result.TotalMatches, nil
}

func (m *Matches) Len() int {
	return len(m.Items)
}

func (m *Matches) FindByID(id int) *Match {
	for _, match := range m.Items {
		if match.ID == id {
			return match
		}
	}
	return nil
}

// PositionIDs returns the distinct position identifiers present,
// in first-seen order.
func (m *Matches) PositionIDs() []int {
	seen := make(map[int]bool)
	ids := make([]int, 0)
	for _, match := range m.Items {
		if !seen[match.PositionID] {
			seen[match.PositionID] = true
			ids = append(ids, match.PositionID)
		}
	}
	return ids
}

// Field returns the stringified value of a position_data column. The
// second return is false when the column is absent.
func (m *Match) Field(name string) (string, bool) {
	v, ok := m.PositionData[name]
	if !ok {
		return "", false
	}
	return valueAsString(v), true
}

// MatchesSearchText reports whether any position_data value or the
// resume filename contains the query, case-insensitive.
func (m *Match) MatchesSearchText(query string) bool {
	query = strings.ToLower(query)
	if strings.Contains(strings.ToLower(m.ResumeFilename), query) {
		return true
	}
	for _, v := range m.PositionData {
		if strings.Contains(strings.ToLower(valueAsString(v)), query) {
			return true
		}
	}
	return false
}

func valueAsString(v any) string {
	if v == nil {
		return ""
	}

	switch typed := v.(type) {
	case string:
		return typed
	case fmt.Stringer:
		return typed.String()
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
