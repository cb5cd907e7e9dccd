package schedule

import (
	"errors"
	"fmt"

	"github.com/dkazarin/league-manager/models"
)

// SemifinalEntrants is the minimum table size required to seed a bracket.
const SemifinalEntrants = 4

var (
	ErrInsufficientStandings     = errors.New("not enough ranked competitors to seed semifinals")
	ErrMalformedSemifinalResults = errors.New("exactly two semifinal results are required")
)

// SemifinalResult is the already-determined outcome of one semifinal.
// Deciding the winner from the recorded score stays with the caller.
type SemifinalResult struct {
	WinnerID   string `json:"winner_id"`
	WinnerName string `json:"winner_name"`
	LoserID    string `json:"loser_id"`
	LoserName  string `json:"loser_name"`
}

type PlayoffSeeder struct{}

func NewPlayoffSeeder() *PlayoffSeeder {
	return &PlayoffSeeder{}
}

// SeedSemifinals pairs the top four of an ordered table the standard way:
// rank 1 vs rank 4 and rank 2 vs rank 3.
func (s *PlayoffSeeder) SeedSemifinals(table []models.StandingRow) ([]models.Fixture, error) {
	if len(table) < SemifinalEntrants {
		return nil, fmt.Errorf("%w (found %d, min %d required)",
			ErrInsufficientStandings, len(table), SemifinalEntrants)
	}

	return []models.Fixture{
		playoffFixture("SF1", 1, table[0].CompetitorID, table[3].CompetitorID, models.StageSemifinal),
		playoffFixture("SF2", 1, table[1].CompetitorID, table[2].CompetitorID, models.StageSemifinal),
	}, nil
}

// SeedFinalRound turns the two semifinal outcomes into the final and the
// third-place match: winners meet for the title, losers for bronze.
func (s *PlayoffSeeder) SeedFinalRound(results []SemifinalResult) (final, thirdPlace models.Fixture, err error) {
	if len(results) != 2 {
		return models.Fixture{}, models.Fixture{}, fmt.Errorf("%w (found %d)",
			ErrMalformedSemifinalResults, len(results))
	}

	final = playoffFixture("FINAL", 2, results[0].WinnerID, results[1].WinnerID, models.StageFinal)
	thirdPlace = playoffFixture("THIRD", 2, results[0].LoserID, results[1].LoserID, models.StageThirdPlace)
	return final, thirdPlace, nil
}

func playoffFixture(uid string, round int, homeID, awayID string, stage models.PlayoffStage) models.Fixture {
	return models.Fixture{
		ID:           uid,
		HomeID:       homeID,
		AwayID:       awayID,
		Round:        round,
		IsPlayoff:    true,
		PlayoffStage: &stage,
	}
}
