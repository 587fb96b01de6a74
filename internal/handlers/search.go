package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchSuggestions retourne les suggestions de la barre de recherche.
// La liste est plafonnée ; has_more indique au client s'il doit proposer
// un lien « voir tous les résultats ».
func (h *Handler) SearchSuggestions(c *gin.Context) {
	query := c.Query("q")
	suggestions := h.search.MatchQuery(query)

	c.JSON(http.StatusOK, gin.H{
		"query":       query,
		"suggestions": suggestions,
		"has_more":    len(suggestions) > 0,
	})
}
