package schedule

import (
	"github.com/dkazarin/league-manager/models"
)

// Generator produces the league-phase calendar for a roster.
type Generator interface {
	Generate(roster []models.Competitor) []models.Fixture

	GetName() string
}
