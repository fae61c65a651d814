// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/http/handlers"
	"tripwise/internal/http/middleware"
	"tripwise/internal/modules/chat"
)

func NewRouter(planner handlers.Planner, session *chat.Session) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	tripHandler := handlers.NewTripHandler(planner)
	r.POST("/api/trips/plan", tripHandler.Plan)
	r.GET("/api/trips/cost-chart", tripHandler.CostChart)

	chatHandler := handlers.NewChatHandler(session)
	r.POST("/api/chat/messages", chatHandler.Send)
	r.GET("/api/chat/transcript", chatHandler.Transcript)

	exportHandler := handlers.NewExportHandler()
	r.POST("/api/trips/export", exportHandler.Export)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
