package models

// StandingRow is the aggregated league record for one competitor.
// Wins+Draws+Losses always equals Played, Points is 3*Wins+Draws and
// GoalDiff is GoalsFor-GoalsAgainst; ranks are contiguous from 1 with
// no shared values.
type StandingRow struct {
	CompetitorID   string `json:"competitor_id"`
	CompetitorName string `json:"competitor_name"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDiff       int    `json:"goal_diff"`
	Points         int    `json:"points"`
	Rank           int    `json:"rank"`
}
