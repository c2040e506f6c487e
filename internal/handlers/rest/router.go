package rest

import (
	"github.com/gin-gonic/gin"

	"scoretally/internal/ws"
)

// NewRouter builds the gin engine with all game routes attached
func NewRouter(h *Handler, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	if hub != nil {
		r.GET("/ws", func(c *gin.Context) {
			ws.ServeWs(hub, c.Writer, c.Request)
		})
	}

	api := r.Group("/api")
	{
		api.POST("/games", h.CreateGame)
		api.GET("/games", h.ListGames)
		api.GET("/games/:id", h.GetGame)
		api.DELETE("/games/:id", h.DeleteGame)
		api.POST("/games/:id/complete", h.CompleteGame)

		api.POST("/games/:id/rounds", h.AddRound)
		api.POST("/games/:id/rounds/propose", h.ProposeRound)
		api.PUT("/games/:id/rounds/:roundID", h.EditRound)

		api.GET("/games/:id/standings", h.Standings)
		api.GET("/games/:id/chart", h.Chart)
	}

	return r
}
