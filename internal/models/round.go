package models

import (
	"time"
)

// ScoreMap holds per-player scores for a single round, keyed by player ID.
// A missing entry reads as 0 via Get; callers must never treat absence as
// an error. Keys are always a subset of the game's roster IDs.
type ScoreMap map[string]int

// Get returns the score for a player, defaulting to 0 for missing entries
func (m ScoreMap) Get(playerID string) int {
	return m[playerID]
}

// Clone returns a copy of the score map
func (m ScoreMap) Clone() ScoreMap {
	out := make(ScoreMap, len(m))
	for id, v := range m {
		out[id] = v
	}
	return out
}

// Round represents one scoring event contributing a per-player score to a
// game. Rounds are appended in order and edited in place, never reordered.
type Round struct {
	// ID is the unique identifier for the round
	ID string `json:"id"`

	// Scores holds the per-player scores for this round
	Scores ScoreMap `json:"scores"`

	// CreatedAt is when the round was recorded
	CreatedAt time.Time `json:"created_at"`
}
