package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates a game is in progress and can accept rounds
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates a game has been marked complete
	GameStatusCompleted GameStatus = "completed"
)

// Game represents a scored session with a roster of players, a target
// score, and an ordered list of rounds
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// OwnerID is the tenant user who created the game
	OwnerID string `json:"owner_id"`

	// Name is the display name of the game
	Name string `json:"name"`

	// TargetScore is the score a player must reach to end the game
	TargetScore int `json:"target_score"`

	// Players is the roster; entries are immutable once added
	Players []*Player `json:"players"`

	// Rounds is the ordered list of scoring rounds. Order is the
	// authoritative sequence for running totals and the chart x-axis.
	Rounds []*Round `json:"rounds"`

	// Status is the current state of the game
	Status GameStatus `json:"status"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time `json:"updated_at"`
}

// IsComplete reports whether the game has been marked complete
func (g *Game) IsComplete() bool {
	return g.Status == GameStatusCompleted
}

// HasPlayer reports whether a player with the given ID is on the roster
func (g *Game) HasPlayer(playerID string) bool {
	for _, p := range g.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// FindRound returns the round with the given ID, or nil if none exists
func (g *Game) FindRound(roundID string) *Round {
	for _, r := range g.Rounds {
		if r.ID == roundID {
			return r
		}
	}
	return nil
}
