package game

import (
	"scoretally/internal/common/clock"
	"scoretally/internal/common/uuid"
	"scoretally/internal/models"
	gameRepo "scoretally/internal/repositories/game"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	GameRepo gameRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// PlayerEntry describes one roster entry when creating a game. Exactly one
// of UserID or CustomName should be set.
type PlayerEntry struct {
	// UserID is the tenant user ID for registered players
	UserID string

	// CustomName is the display name for guest players
	CustomName string
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// OwnerID is the tenant user creating the game
	OwnerID string

	// Name is the display name of the game
	Name string

	// TargetScore is the score a player must reach to end the game
	TargetScore int

	// Players is the roster; at least two entries are required
	Players []PlayerEntry
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// Game is the created game
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// GetGameOutput contains the retrieved game
type GetGameOutput struct {
	Game *models.Game
}

// ListGamesInput contains parameters for listing an owner's games
type ListGamesInput struct {
	// OwnerID is the tenant user whose games to list
	OwnerID string
}

// ListGamesOutput contains the owner's games in creation order
type ListGamesOutput struct {
	Games []*models.Game
}

// ProposeRoundInput contains a pending round to evaluate without committing
type ProposeRoundInput struct {
	// GameID is the unique identifier for the game
	GameID string

	// Scores holds the pending per-player scores
	Scores models.ScoreMap
}

// ProposeRoundOutput reports what committing the pending round would do
type ProposeRoundOutput struct {
	// WouldReachTarget is true if any projected total meets or exceeds the
	// game's target score
	WouldReachTarget bool

	// ProjectedTotals holds each player's running total if the round were
	// committed
	ProjectedTotals map[string]int
}

// AddRoundInput contains parameters for committing a new round
type AddRoundInput struct {
	// GameID is the unique identifier for the game
	GameID string

	// Scores holds the per-player scores; missing entries count as 0
	Scores models.ScoreMap
}

// AddRoundOutput contains the result of committing a round
type AddRoundOutput struct {
	// Game is the updated game
	Game *models.Game

	// Round is the appended round
	Round *models.Round
}

// EditRoundInput contains parameters for replacing a round's scores
type EditRoundInput struct {
	// GameID is the unique identifier for the game
	GameID string

	// RoundID identifies the round to edit
	RoundID string

	// Scores replaces the round's score map wholesale
	Scores models.ScoreMap
}

// EditRoundOutput contains the result of editing a round
type EditRoundOutput struct {
	// Game is the updated game
	Game *models.Game

	// Round is the edited round
	Round *models.Round
}

// CompleteGameInput contains parameters for marking a game complete
type CompleteGameInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// CompleteGameOutput contains the result of completing a game
type CompleteGameOutput struct {
	// Game is the completed game
	Game *models.Game
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// DeleteGameOutput contains the result of deleting a game
type DeleteGameOutput struct {
	// Success indicates the game was removed
	Success bool
}
