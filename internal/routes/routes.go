package routes

import (
	"tuppershop_back_end/internal/handlers"
	"tuppershop_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")
	api.Use(middleware.CartSession())

	api.GET("/health", h.Health)

	// Catalogue
	api.GET("/products", h.GetProducts)
	api.GET("/products/offers", h.GetOffers)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/categories", h.GetCategories)
	api.GET("/search/suggestions", h.SearchSuggestions)

	// Panier
	api.GET("/cart", h.GetCart)
	api.POST("/cart/add", h.AddToCart)
	api.PUT("/cart/:productId", h.UpdateCartQuantity)
	api.DELETE("/cart/:productId", h.RemoveFromCart)
	api.DELETE("/cart", h.ClearCart)
	api.GET("/cart/ws", h.CartWebSocket)

	// Commande manuelle via WhatsApp
	api.GET("/checkout/whatsapp", h.WhatsAppCheckout)
	api.GET("/checkout/whatsapp/qr", h.WhatsAppCheckoutQR)

	// Contact
	api.POST("/contact", middleware.ContactRateLimit(), h.Contact)
}
