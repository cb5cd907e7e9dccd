package services

import "errors"

// Shared sentinel errors, also used by the HTTP error mapping.
var (
	ErrRosterRequired       = errors.New("roster must not be empty")
	ErrCompetitorIDRequired = errors.New("competitor id is required")
	ErrCompetitorIDConflict = errors.New("competitor id is already in use")
	ErrCompetitorNameLength = errors.New("competitor name must be between 1 and 50 characters")
	ErrNotEnoughCompetitors = errors.New("not enough active competitors to generate a calendar")
	ErrFixtureStageInvalid  = errors.New("fixture playoff stage is inconsistent")
)
