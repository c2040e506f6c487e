package game

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"scoretally/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newTestGame(id string) *models.Game {
	return &models.Game{
		ID:          id,
		OwnerID:     "test-owner-id",
		Name:        "Friday Night",
		TargetScore: 500,
		Players: []*models.Player{
			{ID: "player-1", UserID: "user-1"},
			{ID: "player-2", CustomName: "Guest"},
		},
		Rounds: []*models.Round{
			{
				ID:        "round-1",
				Scores:    models.ScoreMap{"player-1": 10, "player-2": 5},
				CreatedAt: s.testNow,
			},
		},
		Status:    models.GameStatusActive,
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGame() {
	game := s.newTestGame("test-game-id")

	// Save the game
	err := s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	// Get the game by ID
	retrievedGame, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrievedGame)

	// Verify the game properties
	s.Equal("test-game-id", retrievedGame.ID)
	s.Equal("test-owner-id", retrievedGame.OwnerID)
	s.Equal("Friday Night", retrievedGame.Name)
	s.Equal(500, retrievedGame.TargetScore)
	s.Equal(models.GameStatusActive, retrievedGame.Status)
	s.Len(retrievedGame.Players, 2)
	s.Equal("player-1", retrievedGame.Players[0].ID)
	s.Equal("Guest", retrievedGame.Players[1].Name())
	s.Len(retrievedGame.Rounds, 1)
	s.Equal(10, retrievedGame.Rounds[0].Scores.Get("player-1"))
	s.Equal(0, retrievedGame.Rounds[0].Scores.Get("missing-player"))
	s.Equal(s.testNow.Unix(), retrievedGame.CreatedAt.Unix())
	s.Equal(s.testNow.Unix(), retrievedGame.UpdatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "no-such-game",
	})
	s.Require().Error(err)
	s.Equal(ErrGameNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestGetGamesByOwner() {
	// Save two games for one owner and one for another
	first := s.newTestGame("first-game-id")
	second := s.newTestGame("second-game-id")
	second.CreatedAt = s.testNow.Add(time.Hour)

	other := s.newTestGame("other-game-id")
	other.OwnerID = "other-owner-id"

	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: first}))
	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: second}))
	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: other}))

	// Get games for the first owner
	result, err := s.repo.GetGamesByOwner(context.Background(), &GetGamesByOwnerInput{
		OwnerID: "test-owner-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(result)

	// Verify only the owner's games are returned, in creation order
	s.Require().Len(result.Games, 2)
	s.Equal("first-game-id", result.Games[0].ID)
	s.Equal("second-game-id", result.Games[1].ID)
}

func (s *RedisRepositoryTestSuite) TestGetActiveGames() {
	activeGame := s.newTestGame("active-game-id")

	completedGame := s.newTestGame("completed-game-id")
	completedGame.Status = models.GameStatusCompleted

	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: activeGame}))
	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: completedGame}))

	result, err := s.repo.GetActiveGames(context.Background(), &GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Require().NotNil(result)

	// Verify that only the active game is returned
	s.Require().Len(result.Games, 1)
	s.Equal("active-game-id", result.Games[0].ID)
	s.Equal(models.GameStatusActive, result.Games[0].Status)
}

func (s *RedisRepositoryTestSuite) TestDeleteGame() {
	game := s.newTestGame("test-game-id")

	// Save the game
	err := s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	// Verify the game exists
	_, err = s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)

	// Delete the game
	err = s.repo.DeleteGame(context.Background(), &DeleteGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)

	// Verify the game no longer exists
	_, err = s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().Error(err)
	s.Equal(ErrGameNotFound, err)

	// Verify the owner index no longer lists it
	result, err := s.repo.GetGamesByOwner(context.Background(), &GetGamesByOwnerInput{
		OwnerID: "test-owner-id",
	})
	s.Require().NoError(err)
	s.Len(result.Games, 0)

	// Verify the game is removed from active games
	activeResult, err := s.repo.GetActiveGames(context.Background(), &GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Len(activeResult.Games, 0)
}

func (s *RedisRepositoryTestSuite) TestGameStatusTransition() {
	game := s.newTestGame("test-game-id")

	// Save the game in active status
	err := s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	// Verify it's in active games
	result, err := s.repo.GetActiveGames(context.Background(), &GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Len(result.Games, 1)

	// Update the game to completed status
	game.Status = models.GameStatusCompleted
	game.UpdatedAt = s.testNow.Add(time.Minute)

	// Save the updated game
	err = s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	// Verify it's no longer in active games
	result, err = s.repo.GetActiveGames(context.Background(), &GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Len(result.Games, 0)

	// But still retrievable and listed for the owner
	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.True(retrieved.IsComplete())
}
