package handlers

import (
	"net/http"

	"tuppershop_back_end/internal/cart"
	"tuppershop_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// cartResponse construit la réponse standard du panier : articles, total,
// compteur et remise calculée par-dessus le total.
func (h *Handler) cartResponse(items []models.CartItem) gin.H {
	total := cart.Total(items)
	discount := h.discountFor(total)
	return gin.H{
		"items":    items,
		"total":    total,
		"count":    cart.Count(items),
		"discount": discount,
		"payable":  total - discount,
	}
}

// GetCart retourne le panier de la session courante.
func (h *Handler) GetCart(c *gin.Context) {
	items := h.storeFor(c).Load(c.Request.Context())
	c.JSON(http.StatusOK, h.cartResponse(items))
}

// AddToCart ajoute un produit au panier (quantité +1 s'il y est déjà).
func (h *Handler) AddToCart(c *gin.Context) {
	var input struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product, ok := h.catalog.ProductByID(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if !product.InStock {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit en rupture de stock"})
		return
	}

	items, err := h.storeFor(c).AddItem(c.Request.Context(), product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	response := h.cartResponse(items)
	response["message"] = "Produit ajouté au panier"
	c.JSON(http.StatusOK, response)
}

// UpdateCartQuantity fixe la quantité d'un article.
// Une quantité nulle ou négative supprime l'article.
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	productID := c.Param("productId")

	var input struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	items, err := h.storeFor(c).SetQuantity(c.Request.Context(), productID, *input.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, h.cartResponse(items))
}

// RemoveFromCart retire un produit du panier (no-op s'il n'y est pas).
func (h *Handler) RemoveFromCart(c *gin.Context) {
	productID := c.Param("productId")

	items, err := h.storeFor(c).RemoveItem(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	response := h.cartResponse(items)
	response["message"] = "Produit supprimé du panier"
	c.JSON(http.StatusOK, response)
}

// ClearCart vide complètement le panier.
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.storeFor(c).Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
