package rest

import gameService "scoretally/internal/services/game"

// playerPayload is one roster entry in a create-game request
type playerPayload struct {
	UserID     string `json:"user_id"`
	CustomName string `json:"custom_name"`
}

// createGameRequest is the body of POST /api/games
type createGameRequest struct {
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	TargetScore int             `json:"target_score"`
	Players     []playerPayload `json:"players"`
}

func (r *createGameRequest) entries() []gameService.PlayerEntry {
	entries := make([]gameService.PlayerEntry, 0, len(r.Players))
	for _, p := range r.Players {
		entries = append(entries, gameService.PlayerEntry{
			UserID:     p.UserID,
			CustomName: p.CustomName,
		})
	}
	return entries
}

// roundRequest is the body of round add, propose, and edit requests
type roundRequest struct {
	Scores map[string]int `json:"scores"`
}
