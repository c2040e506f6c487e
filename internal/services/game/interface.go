package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go scoretally/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// CreateGame creates a new game with a roster and a target score
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// ListGames returns all games belonging to an owner
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// ProposeRound evaluates a pending round without committing it
	ProposeRound(ctx context.Context, input *ProposeRoundInput) (*ProposeRoundOutput, error)

	// AddRound appends a round to a game
	AddRound(ctx context.Context, input *AddRoundInput) (*AddRoundOutput, error)

	// EditRound replaces the scores of an existing round in place
	EditRound(ctx context.Context, input *EditRoundInput) (*EditRoundOutput, error)

	// CompleteGame marks a game as completed
	CompleteGame(ctx context.Context, input *CompleteGameInput) (*CompleteGameOutput, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)
}
