package matcher

import "fmt"

// Statistics is the aggregate match-quality report for a project.
type Statistics struct {
	OverallStats      OverallStats       `json:"overall_stats"`
	ScoreDistribution []ScoreBucket      `json:"score_distribution"`
	QualityBreakdown  QualityBreakdown   `json:"quality_breakdown"`
	TopPositions      []PositionStanding `json:"top_positions"`
}

type OverallStats struct {
	AvgScore float64 `json:"avg_score"`
}

type ScoreBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type QualityBreakdown struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Poor      int `json:"poor"`
}

type PositionStanding struct {
	PositionID int     `json:"position_id"`
	Title      string  `json:"title"`
	MatchCount int     `json:"match_count"`
	AvgScore   float64 `json:"avg_score"`
}

func (c *Client) GetMatchStatistics(projectID int) (*Statistics, error) {
	var stats *Statistics
	path := fmt.Sprintf("/api/projects/%d/matches/statistics", projectID)
	if err := c.getJSON(path, nil, &stats); err != nil {
		return nil, err
	}

	return stats, nil
}
