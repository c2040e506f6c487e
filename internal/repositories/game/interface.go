package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go scoretally/internal/repositories/game Repository

import (
	"context"

	"scoretally/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// SaveGame persists a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetGamesByOwner retrieves all games belonging to an owner
	GetGamesByOwner(ctx context.Context, input *GetGamesByOwnerInput) (*GetGamesByOwnerOutput, error)

	// GetActiveGames retrieves all games that are still active
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)
}
