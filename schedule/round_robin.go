package schedule

import (
	"fmt"

	"github.com/dkazarin/league-manager/models"
)

// byeSlot marks the virtual competitor padded onto odd rosters. It keeps the
// rotation balanced: pairings against it are dropped from the output, but it
// still occupies a slot, so every real competitor sits out exactly one round
// per cycle.
const byeSlot = -1

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() Generator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "DoubleRoundRobin"
}

// Generate creates the full double round-robin calendar using the circle
// method: pair slot i with slot M-1-i, then rotate every slot except the
// first. Each first-half pairing in round r gets a mirrored return leg with
// home and away swapped in round r+totalRounds, so every ordered pair of
// competitors meets exactly once and nobody plays twice in the same round.
//
// Rosters smaller than 2 yield an empty calendar; any minimum-size policy
// beyond that belongs to the caller.
func (g *RoundRobinGenerator) Generate(roster []models.Competitor) []models.Fixture {
	if len(roster) < 2 {
		return []models.Fixture{}
	}

	slots := make([]int, len(roster))
	for i := range roster {
		slots[i] = i
	}
	if len(slots)%2 != 0 {
		slots = append(slots, byeSlot)
	}

	m := len(slots)
	totalRounds := m - 1
	pairingsPerHalf := len(roster) * (len(roster) - 1) / 2

	firstLegs := make([]models.Fixture, 0, pairingsPerHalf)
	returnLegs := make([]models.Fixture, 0, pairingsPerHalf)

	for round := 1; round <= totalRounds; round++ {
		orderInRound := 0
		for i := 0; i < m/2; i++ {
			h, a := slots[i], slots[m-1-i]
			if h == byeSlot || a == byeSlot {
				continue
			}
			orderInRound++
			home, away := roster[h], roster[a]

			firstLegs = append(firstLegs, models.Fixture{
				ID:     fmt.Sprintf("R%dM%d", round, orderInRound),
				HomeID: home.ID,
				AwayID: away.ID,
				Round:  round,
			})
			returnLegs = append(returnLegs, models.Fixture{
				ID:     fmt.Sprintf("R%dM%d", round+totalRounds, orderInRound),
				HomeID: away.ID,
				AwayID: home.ID,
				Round:  round + totalRounds,
			})
		}

		// Rotate all slots except the first.
		last := slots[m-1]
		copy(slots[2:], slots[1:m-1])
		slots[1] = last
	}

	return append(firstLegs, returnLegs...)
}
