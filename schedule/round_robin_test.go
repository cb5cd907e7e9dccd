package schedule

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/dkazarin/league-manager/models"
)

func testRoster(n int) []models.Competitor {
	roster := make([]models.Competitor, n)
	for i := range roster {
		roster[i] = models.Competitor{
			ID:     fmt.Sprintf("c%d", i+1),
			Name:   fmt.Sprintf("Club %02d", i+1),
			Active: true,
		}
	}
	return roster
}

func TestGenerateEvenRoster(t *testing.T) {
	g := NewRoundRobinGenerator()
	roster := testRoster(4)
	fixtures := g.Generate(roster)

	t.Run("total fixture count", func(t *testing.T) {
		// 4 competitors, double round-robin: 4×3 = 12 fixtures
		if len(fixtures) != 12 {
			t.Errorf("fixtures = %d, want 12", len(fixtures))
		}
	})

	t.Run("every ordered pair meets exactly once", func(t *testing.T) {
		type pair struct{ home, away string }
		meetings := make(map[pair]int)
		for _, f := range fixtures {
			meetings[pair{f.HomeID, f.AwayID}]++
		}
		if len(meetings) != 12 {
			t.Errorf("distinct ordered pairs = %d, want 12", len(meetings))
		}
		for p, count := range meetings {
			if count != 1 {
				t.Errorf("%s vs %s scheduled %d times, want 1", p.home, p.away, count)
			}
		}
	})

	t.Run("each competitor appears 2(N-1) times", func(t *testing.T) {
		counts := make(map[string]int)
		for _, f := range fixtures {
			counts[f.HomeID]++
			counts[f.AwayID]++
		}
		for _, c := range roster {
			if counts[c.ID] != 6 {
				t.Errorf("%s plays %d fixtures, want 6", c.ID, counts[c.ID])
			}
		}
	})

	t.Run("no competitor plays twice in a round", func(t *testing.T) {
		seen := make(map[int]map[string]bool)
		for _, f := range fixtures {
			if seen[f.Round] == nil {
				seen[f.Round] = make(map[string]bool)
			}
			for _, id := range []string{f.HomeID, f.AwayID} {
				if seen[f.Round][id] {
					t.Errorf("%s plays twice in round %d", id, f.Round)
				}
				seen[f.Round][id] = true
			}
		}
	})

	t.Run("rounds run 1 through 2(M-1)", func(t *testing.T) {
		populated := make(map[int]bool)
		for _, f := range fixtures {
			if f.Round < 1 || f.Round > 6 {
				t.Errorf("fixture %s in round %d, want 1..6", f.ID, f.Round)
			}
			populated[f.Round] = true
		}
		for round := 1; round <= 6; round++ {
			if !populated[round] {
				t.Errorf("round %d has no fixtures", round)
			}
		}
	})

	t.Run("fixtures start unplayed", func(t *testing.T) {
		for _, f := range fixtures {
			if f.Played || f.HomeGoals != nil || f.AwayGoals != nil {
				t.Errorf("fixture %s should start without a result", f.ID)
			}
			if f.IsPlayoff || f.PlayoffStage != nil {
				t.Errorf("fixture %s should not be a playoff fixture", f.ID)
			}
		}
	})
}

func TestGenerateMirroredReturnLegs(t *testing.T) {
	g := NewRoundRobinGenerator()
	fixtures := g.Generate(testRoster(4))

	const totalRounds = 3 // M-1 for 4 competitors

	type leg struct {
		home, away string
		round      int
	}
	index := make(map[leg]bool, len(fixtures))
	for _, f := range fixtures {
		index[leg{f.HomeID, f.AwayID, f.Round}] = true
	}

	for _, f := range fixtures {
		if f.Round > totalRounds {
			continue
		}
		mirror := leg{f.AwayID, f.HomeID, f.Round + totalRounds}
		if !index[mirror] {
			t.Errorf("first leg %s vs %s in round %d has no return leg in round %d",
				f.HomeID, f.AwayID, f.Round, mirror.round)
		}
	}
}

func TestGenerateOddRoster(t *testing.T) {
	g := NewRoundRobinGenerator()
	roster := testRoster(5)
	fixtures := g.Generate(roster)

	t.Run("total fixture count", func(t *testing.T) {
		// 5 competitors: 5×4 = 20 fixtures, the bye pairings dropped
		if len(fixtures) != 20 {
			t.Errorf("fixtures = %d, want 20", len(fixtures))
		}
	})

	t.Run("two real pairings per round", func(t *testing.T) {
		// Padded to 6 slots: 3 pairings per round, one absorbed by the bye.
		perRound := make(map[int]int)
		for _, f := range fixtures {
			perRound[f.Round]++
		}
		if len(perRound) != 10 {
			t.Errorf("populated rounds = %d, want 10", len(perRound))
		}
		for round, count := range perRound {
			if count != 2 {
				t.Errorf("round %d has %d fixtures, want 2", round, count)
			}
		}
	})

	t.Run("one rest round per cycle", func(t *testing.T) {
		playing := make(map[int]map[string]bool)
		for _, f := range fixtures {
			if playing[f.Round] == nil {
				playing[f.Round] = make(map[string]bool)
			}
			playing[f.Round][f.HomeID] = true
			playing[f.Round][f.AwayID] = true
		}

		for _, half := range [][2]int{{1, 5}, {6, 10}} {
			for _, c := range roster {
				rests := 0
				for round := half[0]; round <= half[1]; round++ {
					if !playing[round][c.ID] {
						rests++
					}
				}
				if rests != 1 {
					t.Errorf("%s rests %d times in rounds %d..%d, want 1", c.ID, rests, half[0], half[1])
				}
			}
		}
	})
}

func TestGenerateTinyRosters(t *testing.T) {
	g := NewRoundRobinGenerator()
	for _, n := range []int{0, 1} {
		if fixtures := g.Generate(testRoster(n)); len(fixtures) != 0 {
			t.Errorf("roster of %d: fixtures = %d, want 0", n, len(fixtures))
		}
	}
}

func TestGeneratorName(t *testing.T) {
	if name := NewRoundRobinGenerator().GetName(); name != "DoubleRoundRobin" {
		t.Errorf("generator name = %q, want %q", name, "DoubleRoundRobin")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := NewRoundRobinGenerator()
	roster := testRoster(7)
	first := g.Generate(roster)
	second := g.Generate(roster)
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the same roster produced different calendars")
	}
}
