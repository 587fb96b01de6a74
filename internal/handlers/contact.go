package handlers

import (
	"log"
	"net/http"

	"tuppershop_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// Contact transmet un message du formulaire de contact par e-mail.
func (h *Handler) Contact(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := utils.SendContactEmail(input.Name, input.Email, input.Message); err != nil {
		log.Printf("❌ Erreur envoi e-mail de contact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible d'envoyer le message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message envoyé avec succès"})
}
