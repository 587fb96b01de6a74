package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProducts liste les produits, avec filtre d'égalité sur la catégorie.
func (h *Handler) GetProducts(c *gin.Context) {
	category := c.Query("category")

	products := h.catalog.Products()
	if category != "" {
		products = h.catalog.ByCategory(category)
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetProduct retourne un produit par identifiant.
func (h *Handler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.ProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetCategories retourne les catégories du catalogue.
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.Categories()})
}

// GetOffers retourne les produits en promotion.
func (h *Handler) GetOffers(c *gin.Context) {
	offers := h.catalog.Offers()
	c.JSON(http.StatusOK, gin.H{
		"products": offers,
		"total":    len(offers),
	})
}
