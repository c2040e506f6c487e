package rest

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"scoretally/internal/models"
	gameService "scoretally/internal/services/game"
	"scoretally/internal/services/scoring"
	"scoretally/internal/ws"
)

// Handler serves the game API
type Handler struct {
	gameService gameService.Service
	hub         *ws.Hub
}

// Config holds configuration for the REST handler
type Config struct {
	// GameService performs game operations
	GameService gameService.Service

	// Hub receives broadcast events after successful mutations; optional
	Hub *ws.Hub
}

// New creates a new REST handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	return &Handler{
		gameService: cfg.GameService,
		hub:         cfg.Hub,
	}, nil
}

// respondError maps service errors onto HTTP statuses: not-found to 404,
// validation errors to 400, everything else to a generic 500
func respondError(c *gin.Context, err error, retryMessage string) {
	switch {
	case errors.Is(err, gameService.ErrGameNotFound), errors.Is(err, gameService.ErrRoundNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		var gameErr gameService.GameError
		if errors.As(err, &gameErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": retryMessage})
	}
}

func (h *Handler) broadcast(eventType string, data any) {
	if h.hub != nil {
		h.hub.Broadcast(eventType, data)
	}
}

// CreateGame handles POST /api/games
func (h *Handler) CreateGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	output, err := h.gameService.CreateGame(c.Request.Context(), &gameService.CreateGameInput{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		TargetScore: req.TargetScore,
		Players:     req.entries(),
	})
	if err != nil {
		respondError(c, err, "Failed to create game. Please try again.")
		return
	}

	h.broadcast(ws.EventGameCreated, output.Game)
	c.JSON(http.StatusCreated, output.Game)
}

// GetGame handles GET /api/games/:id
func (h *Handler) GetGame(c *gin.Context) {
	output, err := h.gameService.GetGame(c.Request.Context(), &gameService.GetGameInput{
		GameID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err, "Failed to load game. Please try again.")
		return
	}

	c.JSON(http.StatusOK, output.Game)
}

// ListGames handles GET /api/games?owner=
func (h *Handler) ListGames(c *gin.Context) {
	ownerID := c.Query("owner")

	output, err := h.gameService.ListGames(c.Request.Context(), &gameService.ListGamesInput{
		OwnerID: ownerID,
	})
	if err != nil {
		respondError(c, err, "Failed to load games. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": output.Games})
}

// ProposeRound handles POST /api/games/:id/rounds/propose
func (h *Handler) ProposeRound(c *gin.Context) {
	var req roundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	output, err := h.gameService.ProposeRound(c.Request.Context(), &gameService.ProposeRoundInput{
		GameID: c.Param("id"),
		Scores: models.ScoreMap(req.Scores),
	})
	if err != nil {
		respondError(c, err, "Failed to check round. Please try again.")
		return
	}

	c.JSON(http.StatusOK, output)
}

// AddRound handles POST /api/games/:id/rounds
func (h *Handler) AddRound(c *gin.Context) {
	var req roundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	output, err := h.gameService.AddRound(c.Request.Context(), &gameService.AddRoundInput{
		GameID: c.Param("id"),
		Scores: models.ScoreMap(req.Scores),
	})
	if err != nil {
		respondError(c, err, "Failed to add round. Please try again.")
		return
	}

	h.broadcast(ws.EventRoundAdded, output.Game)
	c.JSON(http.StatusCreated, gin.H{
		"game":  output.Game,
		"round": output.Round,
	})
}

// EditRound handles PUT /api/games/:id/rounds/:roundID
func (h *Handler) EditRound(c *gin.Context) {
	var req roundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	output, err := h.gameService.EditRound(c.Request.Context(), &gameService.EditRoundInput{
		GameID:  c.Param("id"),
		RoundID: c.Param("roundID"),
		Scores:  models.ScoreMap(req.Scores),
	})
	if err != nil {
		respondError(c, err, "Failed to update round. Please try again.")
		return
	}

	h.broadcast(ws.EventRoundUpdated, output.Game)
	c.JSON(http.StatusOK, gin.H{
		"game":  output.Game,
		"round": output.Round,
	})
}

// CompleteGame handles POST /api/games/:id/complete
func (h *Handler) CompleteGame(c *gin.Context) {
	output, err := h.gameService.CompleteGame(c.Request.Context(), &gameService.CompleteGameInput{
		GameID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err, "Failed to complete game. Please try again.")
		return
	}

	h.broadcast(ws.EventGameCompleted, output.Game)
	c.JSON(http.StatusOK, output.Game)
}

// DeleteGame handles DELETE /api/games/:id
func (h *Handler) DeleteGame(c *gin.Context) {
	gameID := c.Param("id")

	_, err := h.gameService.DeleteGame(c.Request.Context(), &gameService.DeleteGameInput{
		GameID: gameID,
	})
	if err != nil {
		respondError(c, err, "Failed to delete game. Please try again.")
		return
	}

	h.broadcast(ws.EventGameDeleted, gin.H{"id": gameID})
	c.JSON(http.StatusOK, gin.H{"deleted": gameID})
}

// Standings handles GET /api/games/:id/standings
func (h *Handler) Standings(c *gin.Context) {
	output, err := h.gameService.GetGame(c.Request.Context(), &gameService.GetGameInput{
		GameID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err, "Failed to load standings. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"standings": scoring.Standings(output.Game),
		"totals":    scoring.PlayerTotals(output.Game),
	})
}

// Chart handles GET /api/games/:id/chart
func (h *Handler) Chart(c *gin.Context) {
	output, err := h.gameService.GetGame(c.Request.Context(), &gameService.GetGameInput{
		GameID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err, "Failed to load chart data. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": scoring.ChartPoints(output.Game)})
}
