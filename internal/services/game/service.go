package game

import (
	"context"
	"errors"

	"scoretally/internal/common/clock"
	"scoretally/internal/common/uuid"
	"scoretally/internal/models"
	gameRepo "scoretally/internal/repositories/game"
	"scoretally/internal/services/scoring"
)

// service implements the Service interface
type service struct {
	gameRepo      gameRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		gameRepo:      cfg.GameRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateGame creates a new game with a roster and a target score
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.OwnerID == "" {
		return nil, ErrOwnerRequired
	}

	if input.Name == "" {
		return nil, ErrNameRequired
	}

	if input.TargetScore < 1 {
		return nil, ErrTargetScoreInvalid
	}

	if len(input.Players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	// Build the roster, rejecting empty and duplicate entries
	players := make([]*models.Player, 0, len(input.Players))
	seen := make(map[string]bool, len(input.Players))
	for _, entry := range input.Players {
		if entry.UserID == "" && entry.CustomName == "" {
			return nil, ErrPlayerNameRequired
		}

		key := entry.UserID + "|" + entry.CustomName
		if seen[key] {
			return nil, ErrDuplicatePlayer
		}
		seen[key] = true

		players = append(players, &models.Player{
			ID:         s.uuidGenerator.NewUUID(),
			UserID:     entry.UserID,
			CustomName: entry.CustomName,
		})
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:          s.uuidGenerator.NewUUID(),
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		TargetScore: input.TargetScore,
		Players:     players,
		Rounds:      []*models.Round{},
		Status:      models.GameStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Persist before returning anything; a failed save leaves no state behind
	err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &CreateGameOutput{
		Game: game,
	}, nil
}

// GetGame retrieves a game by ID
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game: game,
	}, nil
}

// ListGames returns all games belonging to an owner
func (s *service) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, ErrOwnerRequired
	}

	result, err := s.gameRepo.GetGamesByOwner(ctx, &gameRepo.GetGamesByOwnerInput{
		OwnerID: input.OwnerID,
	})
	if err != nil {
		return nil, err
	}

	return &ListGamesOutput{
		Games: result.Games,
	}, nil
}

// ProposeRound evaluates a pending round without committing it. Callers use
// this to decide whether to ask for confirmation before AddRound when a
// player would reach the target score.
func (s *service) ProposeRound(ctx context.Context, input *ProposeRoundInput) (*ProposeRoundOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.IsComplete() {
		return nil, ErrGameCompleted
	}

	if err := validateScores(game, input.Scores); err != nil {
		return nil, err
	}

	projected := scoring.ProjectedTotals(game, input.Scores)

	return &ProposeRoundOutput{
		WouldReachTarget: scoring.ReachesTarget(game, projected),
		ProjectedTotals:  projected,
	}, nil
}

// AddRound appends a round to a game. Missing roster entries in the score
// map are allowed and read as 0; the round only becomes part of the game
// once the save succeeds.
func (s *service) AddRound(ctx context.Context, input *AddRoundInput) (*AddRoundOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.IsComplete() {
		return nil, ErrGameCompleted
	}

	if err := validateScores(game, input.Scores); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	round := &models.Round{
		ID:        s.uuidGenerator.NewUUID(),
		Scores:    input.Scores.Clone(),
		CreatedAt: now,
	}

	game.Rounds = append(game.Rounds, round)
	game.UpdatedAt = now

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &AddRoundOutput{
		Game:  game,
		Round: round,
	}, nil
}

// EditRound replaces the scores of an existing round in place. The round's
// ID and position are unchanged; all other rounds are untouched.
func (s *service) EditRound(ctx context.Context, input *EditRoundInput) (*EditRoundOutput, error) {
	if input == nil || input.GameID == "" || input.RoundID == "" {
		return nil, errors.New("input, game ID, and round ID cannot be empty")
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.IsComplete() {
		return nil, ErrGameCompleted
	}

	if err := validateScores(game, input.Scores); err != nil {
		return nil, err
	}

	round := game.FindRound(input.RoundID)
	if round == nil {
		return nil, ErrRoundNotFound
	}

	round.Scores = input.Scores.Clone()
	game.UpdatedAt = s.clock.Now()

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &EditRoundOutput{
		Game:  game,
		Round: round,
	}, nil
}

// CompleteGame marks a game as completed
func (s *service) CompleteGame(ctx context.Context, input *CompleteGameInput) (*CompleteGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.IsComplete() {
		return nil, ErrGameCompleted
	}

	game.Status = models.GameStatusCompleted
	game.UpdatedAt = s.clock.Now()

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &CompleteGameOutput{
		Game: game,
	}, nil
}

// DeleteGame removes a game
func (s *service) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return &DeleteGameOutput{
		Success: true,
	}, nil
}

// getGame fetches a game, mapping the repository's not-found error
func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

// validateScores enforces the round invariant: every key belongs to the
// roster and no score is negative. Missing keys are fine.
func validateScores(game *models.Game, scores models.ScoreMap) error {
	for playerID, score := range scores {
		if !game.HasPlayer(playerID) {
			return ErrUnknownPlayer
		}
		if score < 0 {
			return ErrNegativeScore
		}
	}
	return nil
}
