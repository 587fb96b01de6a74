package handlers

import (
	"net/http"

	"tuppershop_back_end/internal/database"

	"github.com/gin-gonic/gin"
)

// Health vérifie l'état du service : Redis joignable et catalogue chargé.
func (h *Handler) Health(c *gin.Context) {
	redisStatus := "ok"
	if database.Redis == nil {
		redisStatus = "absent"
	} else if err := database.Redis.Ping(c.Request.Context()).Err(); err != nil {
		redisStatus = "indisponible"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"redis":    redisStatus,
		"products": h.catalog.Len(),
	})
}
