package game

import "scoretally/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type DeleteGameInput struct {
	GameID string
}

type GetGamesByOwnerInput struct {
	OwnerID string
}

type GetGamesByOwnerOutput struct {
	Games []*models.Game
}

type GetActiveGamesInput struct {
}

type GetActiveGamesOutput struct {
	Games []*models.Game
}
