package handlers

import (
	"net/http"

	"tuppershop_back_end/internal/cart"
	"tuppershop_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// WhatsAppCheckout construit le lien de commande WhatsApp depuis le panier.
// Le panier n'est pas vidé ici : le client confirme dans la conversation.
func (h *Handler) WhatsAppCheckout(c *gin.Context) {
	if h.whatsAppNumber == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Numéro WhatsApp non configuré"})
		return
	}

	items := h.storeFor(c).Load(c.Request.Context())
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	total := cart.Total(items)
	discount := h.discountFor(total)
	message := utils.BuildOrderMessage(items, total, discount)

	c.JSON(http.StatusOK, gin.H{
		"link":     utils.WhatsAppLink(h.whatsAppNumber, message),
		"message":  message,
		"total":    total,
		"discount": discount,
		"payable":  total - discount,
	})
}

// WhatsAppCheckoutQR retourne le lien de commande sous forme de QR code PNG,
// à scanner depuis un téléphone quand le client navigue sur desktop.
func (h *Handler) WhatsAppCheckoutQR(c *gin.Context) {
	if h.whatsAppNumber == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Numéro WhatsApp non configuré"})
		return
	}

	items := h.storeFor(c).Load(c.Request.Context())
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	total := cart.Total(items)
	link := utils.WhatsAppLink(h.whatsAppNumber, utils.BuildOrderMessage(items, total, h.discountFor(total)))

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
