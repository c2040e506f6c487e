package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"scoretally/internal/models"
	gameService "scoretally/internal/services/game"
	gameMocks "scoretally/internal/services/game/mocks"
)

type RestHandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *gameMocks.MockService
	router      *gin.Engine

	testGame *models.Game
}

func (s *RestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = gameMocks.NewMockService(s.mockCtrl)

	handler, err := New(&Config{
		GameService: s.mockService,
	})
	s.Require().NoError(err)
	s.router = NewRouter(handler, nil)

	s.testGame = &models.Game{
		ID:          "test-game-id",
		OwnerID:     "test-owner-id",
		Name:        "Friday Night",
		TargetScore: 100,
		Players: []*models.Player{
			{ID: "alice-id", UserID: "alice"},
			{ID: "bob-id", CustomName: "Bob"},
		},
		Rounds: []*models.Round{
			{ID: "round-1", Scores: models.ScoreMap{"alice-id": 60, "bob-id": 40}},
		},
		Status: models.GameStatusActive,
	}
}

func (s *RestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RestHandlerTestSuite))
}

func (s *RestHandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RestHandlerTestSuite) TestCreateGame() {
	s.mockService.EXPECT().
		CreateGame(gomock.Any(), &gameService.CreateGameInput{
			OwnerID:     "test-owner-id",
			Name:        "Friday Night",
			TargetScore: 100,
			Players: []gameService.PlayerEntry{
				{UserID: "alice"},
				{CustomName: "Bob"},
			},
		}).
		Return(&gameService.CreateGameOutput{Game: s.testGame}, nil)

	rec := s.request(http.MethodPost, "/api/games", gin.H{
		"owner_id":     "test-owner-id",
		"name":         "Friday Night",
		"target_score": 100,
		"players": []gin.H{
			{"user_id": "alice"},
			{"custom_name": "Bob"},
		},
	})

	s.Equal(http.StatusCreated, rec.Code)

	var game models.Game
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &game))
	s.Equal("test-game-id", game.ID)
}

func (s *RestHandlerTestSuite) TestCreateGameValidationError() {
	s.mockService.EXPECT().
		CreateGame(gomock.Any(), gomock.Any()).
		Return(nil, gameService.ErrNotEnoughPlayers)

	rec := s.request(http.MethodPost, "/api/games", gin.H{
		"owner_id":     "test-owner-id",
		"name":         "Friday Night",
		"target_score": 100,
		"players":      []gin.H{{"user_id": "alice"}},
	})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "at least 2 players")
}

func (s *RestHandlerTestSuite) TestGetGameNotFound() {
	s.mockService.EXPECT().
		GetGame(gomock.Any(), &gameService.GetGameInput{GameID: "no-such-game"}).
		Return(nil, gameService.ErrGameNotFound)

	rec := s.request(http.MethodGet, "/api/games/no-such-game", nil)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RestHandlerTestSuite) TestAddRound() {
	s.mockService.EXPECT().
		AddRound(gomock.Any(), &gameService.AddRoundInput{
			GameID: "test-game-id",
			Scores: models.ScoreMap{"alice-id": 10, "bob-id": 5},
		}).
		Return(&gameService.AddRoundOutput{
			Game:  s.testGame,
			Round: s.testGame.Rounds[0],
		}, nil)

	rec := s.request(http.MethodPost, "/api/games/test-game-id/rounds", gin.H{
		"scores": gin.H{"alice-id": 10, "bob-id": 5},
	})

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *RestHandlerTestSuite) TestAddRoundBackendFailure() {
	s.mockService.EXPECT().
		AddRound(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	rec := s.request(http.MethodPost, "/api/games/test-game-id/rounds", gin.H{
		"scores": gin.H{"alice-id": 10},
	})

	// Backend details never leak; the client gets a retryable message
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "Failed to add round. Please try again.")
	s.NotContains(rec.Body.String(), "redis")
}

func (s *RestHandlerTestSuite) TestProposeRound() {
	s.mockService.EXPECT().
		ProposeRound(gomock.Any(), &gameService.ProposeRoundInput{
			GameID: "test-game-id",
			Scores: models.ScoreMap{"alice-id": 45, "bob-id": 30},
		}).
		Return(&gameService.ProposeRoundOutput{
			WouldReachTarget: true,
			ProjectedTotals:  map[string]int{"alice-id": 105, "bob-id": 70},
		}, nil)

	rec := s.request(http.MethodPost, "/api/games/test-game-id/rounds/propose", gin.H{
		"scores": gin.H{"alice-id": 45, "bob-id": 30},
	})

	s.Equal(http.StatusOK, rec.Code)

	var output gameService.ProposeRoundOutput
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &output))
	s.True(output.WouldReachTarget)
	s.Equal(105, output.ProjectedTotals["alice-id"])
}

func (s *RestHandlerTestSuite) TestEditRoundNotFound() {
	s.mockService.EXPECT().
		EditRound(gomock.Any(), &gameService.EditRoundInput{
			GameID:  "test-game-id",
			RoundID: "no-such-round",
			Scores:  models.ScoreMap{"alice-id": 3},
		}).
		Return(nil, gameService.ErrRoundNotFound)

	rec := s.request(http.MethodPut, "/api/games/test-game-id/rounds/no-such-round", gin.H{
		"scores": gin.H{"alice-id": 3},
	})

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RestHandlerTestSuite) TestCompleteGame() {
	completed := *s.testGame
	completed.Status = models.GameStatusCompleted

	s.mockService.EXPECT().
		CompleteGame(gomock.Any(), &gameService.CompleteGameInput{GameID: "test-game-id"}).
		Return(&gameService.CompleteGameOutput{Game: &completed}, nil)

	rec := s.request(http.MethodPost, "/api/games/test-game-id/complete", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"completed"`)
}

func (s *RestHandlerTestSuite) TestStandings() {
	s.mockService.EXPECT().
		GetGame(gomock.Any(), &gameService.GetGameInput{GameID: "test-game-id"}).
		Return(&gameService.GetGameOutput{Game: s.testGame}, nil)

	rec := s.request(http.MethodGet, "/api/games/test-game-id/standings", nil)

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Totals map[string]int `json:"totals"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(60, body.Totals["alice-id"])
	s.Equal(40, body.Totals["bob-id"])
}

func (s *RestHandlerTestSuite) TestChart() {
	s.mockService.EXPECT().
		GetGame(gomock.Any(), &gameService.GetGameInput{GameID: "test-game-id"}).
		Return(&gameService.GetGameOutput{Game: s.testGame}, nil)

	rec := s.request(http.MethodGet, "/api/games/test-game-id/chart", nil)

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Points []struct {
			Round  int            `json:"round"`
			Totals map[string]int `json:"totals"`
		} `json:"points"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.Points, 2)
	s.Equal(0, body.Points[0].Totals["alice-id"])
	s.Equal(60, body.Points[1].Totals["alice-id"])
}
