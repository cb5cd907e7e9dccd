package models

type PlayoffStage string

const (
	StageSemifinal  PlayoffStage = "semifinal"
	StageFinal      PlayoffStage = "final"
	StageThirdPlace PlayoffStage = "third_place"
)

// Valid reports whether s is one of the closed set of playoff stages.
func (s PlayoffStage) Valid() bool {
	switch s {
	case StageSemifinal, StageFinal, StageThirdPlace:
		return true
	}
	return false
}

// Fixture is a single scheduled pairing, league or playoff.
// Invariant: Played is true iff both goal fields are set, and
// PlayoffStage is set iff IsPlayoff is true.
type Fixture struct {
	ID           string        `json:"id"`
	HomeID       string        `json:"home_id"`
	AwayID       string        `json:"away_id"`
	Round        int           `json:"round"`
	HomeGoals    *int          `json:"home_goals,omitempty"`
	AwayGoals    *int          `json:"away_goals,omitempty"`
	Played       bool          `json:"played"`
	IsPlayoff    bool          `json:"is_playoff"`
	PlayoffStage *PlayoffStage `json:"playoff_stage,omitempty"`
}

// Result returns the recorded score. ok is false for fixtures that are not
// played yet or carry only half a score (a data-consistency issue upstream).
func (f *Fixture) Result() (homeGoals, awayGoals int, ok bool) {
	if !f.Played || f.HomeGoals == nil || f.AwayGoals == nil {
		return 0, 0, false
	}
	return *f.HomeGoals, *f.AwayGoals, true
}
