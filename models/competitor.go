package models

// Competitor is one roster entry. The roster itself is owned by the
// external persistence layer; the engine treats entries as read-only input.
type Competitor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
