package scoring

import "scoretally/internal/models"

// Standing is one entry in a game's ranking
type Standing struct {
	// Player is the roster entry this standing belongs to
	Player *models.Player `json:"player"`

	// Total is the player's running total across all rounds
	Total int `json:"total"`
}

// ChartPoint is one x-axis step of the cumulative score series. Round 0 is
// a synthetic starting point with every total at zero.
type ChartPoint struct {
	// Round is the 0-based position on the chart x-axis
	Round int `json:"round"`

	// Totals holds each player's running total after this round
	Totals map[string]int `json:"totals"`
}
