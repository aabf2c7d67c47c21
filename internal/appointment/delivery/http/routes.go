package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the appointment routes on the engine root so the
// chat endpoint keeps its original path.
func RegisterRoutes(r *gin.Engine, h Handler) {
	r.POST("/chat", h.Chat)
	r.GET("/appointments", h.ListEvents)
}
