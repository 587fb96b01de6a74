package handlers

import (
	"time"

	"tuppershop_back_end/internal/cart"
	"tuppershop_back_end/internal/catalog"
	"tuppershop_back_end/internal/config"
	"tuppershop_back_end/internal/search"

	"github.com/gin-gonic/gin"
)

// Handler regroupe les dépendances des endpoints de la boutique.
// Le stockage du panier est injecté pour pouvoir tester avec une
// implémentation en mémoire.
type Handler struct {
	catalog *catalog.Catalog
	storage cart.Storage
	search  *search.Index

	cartTTL           time.Duration
	discountThreshold int
	discountAmount    int
	whatsAppNumber    string
}

func New(cat *catalog.Catalog, storage cart.Storage) *Handler {
	return &Handler{
		catalog: cat,
		storage: storage,
		search:  search.New(cat, config.Int("SEARCH_SUGGESTION_LIMIT", search.DefaultLimit)),

		cartTTL:           time.Duration(config.Int("CART_TTL_DAYS", 0)) * 24 * time.Hour,
		discountThreshold: config.Int("CART_DISCOUNT_THRESHOLD", 2500),
		discountAmount:    config.Int("CART_DISCOUNT_AMOUNT", 1000),
		whatsAppNumber:    config.String("WHATSAPP_NUMBER", ""),
	}
}

// storeFor retourne le Store lié à la session du client courant.
func (h *Handler) storeFor(c *gin.Context) *cart.Store {
	return cart.New(h.storage, c.GetString("cart_id"), h.cartTTL)
}

// discountFor applique la politique promotionnelle au montant du panier.
// C'est une règle de l'appelant, pas du Store : le seuil et le montant sont
// de la configuration marketing.
func (h *Handler) discountFor(total int) int {
	if h.discountThreshold > 0 && total >= h.discountThreshold {
		return h.discountAmount
	}
	return 0
}
