package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"scoretally/internal/models"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix  = "game:"
	ownerKeyPrefix = "owner:games:" // Per-owner index of game IDs, scored by creation time
	activeGamesKey = "active_games"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveGame persists a game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	// Marshal the game to JSON
	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the game
	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.Game.ID)
	pipe.Set(ctx, gameKey, gameJSON, 0) // No expiration for now

	// If the game has an owner, add it to the owner's index
	if input.Game.OwnerID != "" {
		ownerKey := fmt.Sprintf("%s%s", ownerKeyPrefix, input.Game.OwnerID)
		pipe.ZAdd(ctx, ownerKey, redis.Z{
			Score:  float64(input.Game.CreatedAt.UnixNano()),
			Member: input.Game.ID,
		})
	}

	// If the game is active, add it to the active games set
	if input.Game.Status == models.GameStatusActive {
		pipe.SAdd(ctx, activeGamesKey, input.Game.ID)
	} else {
		// If the game is not active, remove it from the active games set
		pipe.SRem(ctx, activeGamesKey, input.Game.ID)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	// Get the game from Redis
	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	// Unmarshal the game from JSON
	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// DeleteGame removes a game from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	// Get the game first to get its owner ID
	game, err := r.GetGame(ctx, &GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return err
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Delete the game
	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)
	pipe.Del(ctx, gameKey)

	// Remove the game from the owner's index
	if game.OwnerID != "" {
		ownerKey := fmt.Sprintf("%s%s", ownerKeyPrefix, game.OwnerID)
		pipe.ZRem(ctx, ownerKey, input.GameID)
	}

	// Remove the game from the active games set
	pipe.SRem(ctx, activeGamesKey, input.GameID)

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// GetGamesByOwner retrieves all games belonging to an owner from Redis,
// ordered by creation time
func (r *redisRepository) GetGamesByOwner(ctx context.Context, input *GetGamesByOwnerInput) (*GetGamesByOwnerOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	// Get the list of game IDs for this owner
	ownerKey := fmt.Sprintf("%s%s", ownerKeyPrefix, input.OwnerID)
	gameIDs, err := r.client.ZRange(ctx, ownerKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get owner games: %w", err)
	}

	games, err := r.getGames(ctx, gameIDs)
	if err != nil {
		return nil, err
	}

	return &GetGamesByOwnerOutput{
		Games: games,
	}, nil
}

// GetActiveGames retrieves all active games from Redis
func (r *redisRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	// Get all active game IDs from the set
	gameIDs, err := r.client.SMembers(ctx, activeGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active game IDs: %w", err)
	}

	games, err := r.getGames(ctx, gameIDs)
	if err != nil {
		return nil, err
	}

	return &GetActiveGamesOutput{
		Games: games,
	}, nil
}

// getGames fetches a batch of games by ID using a pipeline, skipping any
// that were deleted between listing the IDs and fetching the games
func (r *redisRepository) getGames(ctx context.Context, gameIDs []string) ([]*models.Game, error) {
	if len(gameIDs) == 0 {
		return []*models.Game{}, nil
	}

	pipe := r.client.Pipeline()
	gameCommands := make(map[string]*redis.StringCmd, len(gameIDs))

	for _, gameID := range gameIDs {
		gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, gameID)
		gameCommands[gameID] = pipe.Get(ctx, gameKey)
	}

	// Execute the pipeline; redis.Nil surfaces per-command, not here
	_, err := pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for _, gameID := range gameIDs {
		gameJSON, err := gameCommands[gameID].Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
		}

		var game models.Game
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameID, err)
		}

		games = append(games, &game)
	}

	return games, nil
}
