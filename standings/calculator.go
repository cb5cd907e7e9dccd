package standings

import (
	"sort"

	"github.com/dkazarin/league-manager/models"
)

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Compute folds the played league fixtures into a ranked table. Every roster
// member gets a row, including competitors with no matches yet. Playoff and
// unplayed fixtures are ignored, as are fixtures referencing an id missing
// from the roster: the roster is authoritative and the fixture list may be
// stale.
//
// The order is total: points, then goal difference, then goals for, all
// descending, then the competitor name ascending. Names are not required to
// be unique, so the id decides as the last resort, keeping the output
// deterministic for any input. Ranks are assigned contiguously from 1 after
// sorting.
func (c *Calculator) Compute(roster []models.Competitor, fixtures []models.Fixture) []models.StandingRow {
	rows := make(map[string]*models.StandingRow, len(roster))
	for _, competitor := range roster {
		rows[competitor.ID] = &models.StandingRow{
			CompetitorID:   competitor.ID,
			CompetitorName: competitor.Name,
		}
	}

	for i := range fixtures {
		f := &fixtures[i]
		if f.IsPlayoff {
			continue
		}
		homeGoals, awayGoals, ok := f.Result()
		if !ok {
			continue
		}
		home, homeKnown := rows[f.HomeID]
		away, awayKnown := rows[f.AwayID]
		if !homeKnown || !awayKnown {
			continue
		}

		home.Played++
		away.Played++
		home.GoalsFor += homeGoals
		home.GoalsAgainst += awayGoals
		away.GoalsFor += awayGoals
		away.GoalsAgainst += homeGoals

		switch {
		case homeGoals > awayGoals:
			home.Wins++
			away.Losses++
		case homeGoals < awayGoals:
			away.Wins++
			home.Losses++
		default:
			home.Draws++
			away.Draws++
		}
	}

	table := make([]models.StandingRow, 0, len(rows))
	for _, row := range rows {
		row.GoalDiff = row.GoalsFor - row.GoalsAgainst
		row.Points = 3*row.Wins + row.Draws
		table = append(table, *row)
	}

	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return a.GoalDiff > b.GoalDiff
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		if a.CompetitorName != b.CompetitorName {
			return a.CompetitorName < b.CompetitorName
		}
		return a.CompetitorID < b.CompetitorID
	})

	for i := range table {
		table[i].Rank = i + 1
	}
	return table
}

// HeadToHead counts the played league meetings won by each of two
// competitors. It is a standalone statistic and deliberately stays out of
// the Compute comparator.
func HeadToHead(fixtures []models.Fixture, firstID, secondID string) (firstWins, secondWins int) {
	for i := range fixtures {
		f := &fixtures[i]
		if f.IsPlayoff {
			continue
		}
		homeGoals, awayGoals, ok := f.Result()
		if !ok {
			continue
		}
		switch {
		case f.HomeID == firstID && f.AwayID == secondID:
			if homeGoals > awayGoals {
				firstWins++
			} else if awayGoals > homeGoals {
				secondWins++
			}
		case f.HomeID == secondID && f.AwayID == firstID:
			if homeGoals > awayGoals {
				secondWins++
			} else if awayGoals > homeGoals {
				firstWins++
			}
		}
	}
	return firstWins, secondWins
}
