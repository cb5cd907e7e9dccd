package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dkazarin/league-manager/models"
	"github.com/dkazarin/league-manager/schedule"
	"github.com/dkazarin/league-manager/standings"
	"golang.org/x/sync/errgroup"
)

const (
	minCalendarCompetitors = 2
	maxCompetitorNameLen   = 50
)

type LeagueService interface {
	GenerateCalendar(ctx context.Context, roster []models.Competitor) ([]models.Fixture, error)
	LeagueTable(ctx context.Context, roster []models.Competitor, fixtures []models.Fixture) ([]models.StandingRow, error)
	Overview(ctx context.Context, roster []models.Competitor, fixtures []models.Fixture) (*LeagueOverview, error)
	SeedSemifinals(ctx context.Context, roster []models.Competitor, fixtures []models.Fixture) ([]models.Fixture, error)
	SeedFinalRound(ctx context.Context, results []schedule.SemifinalResult) (*PlayoffRound, error)
}

// LeagueOverview bundles the table with calendar progress for dashboards.
type LeagueOverview struct {
	Table          []models.StandingRow `json:"table"`
	TotalFixtures  int                  `json:"total_fixtures"`
	PlayedFixtures int                  `json:"played_fixtures"`
	CurrentRound   int                  `json:"current_round"`
}

// PlayoffRound holds the two fixtures of the closing knockout round.
type PlayoffRound struct {
	Final      models.Fixture `json:"final"`
	ThirdPlace models.Fixture `json:"third_place"`
}

type leagueService struct {
	generator  schedule.Generator
	calculator *standings.Calculator
	seeder     *schedule.PlayoffSeeder
}

func NewLeagueService(
	generator schedule.Generator,
	calculator *standings.Calculator,
	seeder *schedule.PlayoffSeeder,
) LeagueService {
	return &leagueService{
		generator:  generator,
		calculator: calculator,
		seeder:     seeder,
	}
}

// GenerateCalendar validates the roster, keeps only active competitors and
// produces the full league-phase calendar.
func (s *leagueService) GenerateCalendar(ctx context.Context, roster []models.Competitor) ([]models.Fixture, error) {
	if err := validateRoster(roster); err != nil {
		return nil, err
	}

	active := activeOnly(roster)
	if len(active) < minCalendarCompetitors {
		return nil, fmt.Errorf("%w (found %d, min %d required)",
			ErrNotEnoughCompetitors, len(active), minCalendarCompetitors)
	}

	return s.generator.Generate(active), nil
}

func (s *leagueService) LeagueTable(ctx context.Context, roster []models.Competitor, fixtures []models.Fixture) ([]models.StandingRow, error) {
	if err := validateRoster(roster); err != nil {
		return nil, err
	}
	if err := validateFixtures(fixtures); err != nil {
		return nil, err
	}
	return s.calculator.Compute(roster, fixtures), nil
}

// Overview aggregates the table and the calendar progress concurrently.
func (s *leagueService) Overview(ctx context.Context, roster []models.Competitor, fixtures []models.Fixture) (*LeagueOverview, error) {
	if err := validateRoster(roster); err != nil {
		return nil, err
	}
	if err := validateFixtures(fixtures); err != nil {
		return nil, err
	}

	overview := &LeagueOverview{}
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		overview.Table = s.calculator.Compute(roster, fixtures)
		return nil
	})

	g.Go(func() error {
		for i := range fixtures {
			f := &fixtures[i]
			if f.IsPlayoff {
				continue
			}
			overview.TotalFixtures++
			if _, _, ok := f.Result(); ok {
				overview.PlayedFixtures++
				if f.Round > overview.CurrentRound {
					overview.CurrentRound = f.Round
				}
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}

// SeedSemifinals ranks the roster over the recorded fixtures and pairs the
// top four into the semifinal bracket.
func (s *leagueService) SeedSemifinals(ctx context.Context, roster []models.Competitor, fixtures []models.Fixture) ([]models.Fixture, error) {
	table, err := s.LeagueTable(ctx, roster, fixtures)
	if err != nil {
		return nil, err
	}
	return s.seeder.SeedSemifinals(table)
}

func (s *leagueService) SeedFinalRound(ctx context.Context, results []schedule.SemifinalResult) (*PlayoffRound, error) {
	final, thirdPlace, err := s.seeder.SeedFinalRound(results)
	if err != nil {
		return nil, err
	}
	return &PlayoffRound{Final: final, ThirdPlace: thirdPlace}, nil
}

func validateRoster(roster []models.Competitor) error {
	if len(roster) == 0 {
		return ErrRosterRequired
	}
	seen := make(map[string]struct{}, len(roster))
	for _, competitor := range roster {
		if strings.TrimSpace(competitor.ID) == "" {
			return ErrCompetitorIDRequired
		}
		if _, dup := seen[competitor.ID]; dup {
			return fmt.Errorf("%w: %s", ErrCompetitorIDConflict, competitor.ID)
		}
		seen[competitor.ID] = struct{}{}

		if n := utf8.RuneCountInString(competitor.Name); n < 1 || n > maxCompetitorNameLen {
			return fmt.Errorf("%w: %q", ErrCompetitorNameLength, competitor.Name)
		}
	}
	return nil
}

// validateFixtures enforces the stage invariant on posted fixtures: a
// playoff fixture must carry one of the closed set of stages, a league
// fixture must carry none. Stale competitor references stay a silent skip
// in the calculator; a malformed stage is a payload bug, not stale data.
func validateFixtures(fixtures []models.Fixture) error {
	for i := range fixtures {
		f := &fixtures[i]
		if f.IsPlayoff {
			if f.PlayoffStage == nil || !f.PlayoffStage.Valid() {
				return fmt.Errorf("%w: playoff fixture %s has no valid stage", ErrFixtureStageInvalid, f.ID)
			}
		} else if f.PlayoffStage != nil {
			return fmt.Errorf("%w: league fixture %s carries stage %q", ErrFixtureStageInvalid, f.ID, *f.PlayoffStage)
		}
	}
	return nil
}

func activeOnly(roster []models.Competitor) []models.Competitor {
	active := make([]models.Competitor, 0, len(roster))
	for _, competitor := range roster {
		if competitor.Active {
			active = append(active, competitor)
		}
	}
	return active
}
