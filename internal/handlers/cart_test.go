package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tuppershop_back_end/internal/cart"
	"tuppershop_back_end/internal/catalog"
	"tuppershop_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.FromData(catalog.Data{
		Products: []models.Product{
			{ID: "smart-stor-set", Name: "Smart Stor Container Set", Category: "storage", Description: "boîtes hermétiques", Size: "1L", Price: 1499, Image: "/p1.jpg", InStock: true},
			{ID: "premium-organizer", Name: "Premium Storage Organizer", Category: "storage", Description: "grand organiseur", Price: 2499, Image: "/p2.jpg", InStock: true, IsOffer: true, Discount: 16},
			{ID: "eco-water-bottle", Name: "Eco Water Bottle", Category: "water-bottles", Description: "bouteille légère", Size: "750ml", Price: 399, Image: "/p3.jpg", InStock: false},
		},
		Categories: []models.Category{
			{ID: "c1", Name: "Rangement", Slug: "storage"},
		},
		SearchKeywords: map[string][]string{
			"pantry": {"Smart Stor Container Set"},
		},
	})
	require.NoError(t, err)
	return cat
}

// newTestRouter câble les routes avec un stockage mémoire et une session fixe.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	t.Setenv("WHATSAPP_NUMBER", "919876543210")
	t.Setenv("CART_DISCOUNT_THRESHOLD", "2500")
	t.Setenv("CART_DISCOUNT_AMOUNT", "1000")

	h := New(fixtureCatalog(t), cart.NewMemoryStorage())

	r := gin.New()
	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set("cart_id", "session-test")
		c.Next()
	})

	api.GET("/products", h.GetProducts)
	api.GET("/products/offers", h.GetOffers)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/categories", h.GetCategories)
	api.GET("/search/suggestions", h.SearchSuggestions)
	api.GET("/cart", h.GetCart)
	api.POST("/cart/add", h.AddToCart)
	api.PUT("/cart/:productId", h.UpdateCartQuantity)
	api.DELETE("/cart/:productId", h.RemoveFromCart)
	api.DELETE("/cart", h.ClearCart)
	api.GET("/checkout/whatsapp", h.WhatsAppCheckout)

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestGetCartEmpty(t *testing.T) {
	r := newTestRouter(t)

	w, body := doRequest(t, r, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, body["items"])
	assert.EqualValues(t, 0, body["total"])
	assert.EqualValues(t, 0, body["count"])
}

func TestAddToCartAccumulates(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doRequest(t, r, http.MethodPost, "/api/cart/add", `{"product_id": "smart-stor-set"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, body := doRequest(t, r, http.MethodPost, "/api/cart/add", `{"product_id": "smart-stor-set"}`)
	require.Equal(t, http.StatusOK, w.Code)

	items := body["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.EqualValues(t, 2, item["cart_quantity"])
	assert.EqualValues(t, 2998, body["total"])
	assert.EqualValues(t, 2, body["count"])
}

func TestAddUnknownProduct(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doRequest(t, r, http.MethodPost, "/api/cart/add", `{"product_id": "inconnu"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddOutOfStockProduct(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doRequest(t, r, http.MethodPost, "/api/cart/add", `{"product_id": "eco-water-bottle"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiscountAppliedAboveThreshold(t *testing.T) {
	r := newTestRouter(t)

	// 1499 : sous le seuil de 2500, pas de remise
	_, body := doRequest(t, r, http.MethodPost, "/api/cart/add", `{"product_id": "smart-stor-set"}`)
	assert.EqualValues(t, 0, body["discount"])
	assert.EqualValues(t, 1499, body["payable"])

	// 1499 + 2499 = 3998 : remise de 1000
	_, body = doRequest(t, r, http.MethodPost, "/api/cart/add", `{"product_id": "premium-organizer"}`)
	assert.EqualValues(t, 3998, body["total"])
	assert.EqualValues(t, 1000, body["discount"])
	assert.EqualValues(t, 2998, body["payable"])
}

func TestUpdateQuantityAndRemove(t *testing.T) {
	r := newTestRouter(t)
	doRequest(t, r, http.MethodPost, "/api/cart/add", `{"product_id": "smart-stor-set"}`)

	_, body := doRequest(t, r, http.MethodPut, "/api/cart/smart-stor-set", `{"quantity": 3}`)
	assert.EqualValues(t, 3, body["count"])

	// Quantité zéro = suppression
	_, body = doRequest(t, r, http.MethodPut, "/api/cart/smart-stor-set", `{"quantity": 0}`)
	assert.Empty(t, body["items"])

	// Supprimer un produit absent est un no-op
	w, body := doRequest(t, r, http.MethodDelete, "/api/cart/inconnu", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["items"])
}

func TestClearCartEndpoint(t *testing.T) {
	r := newTestRouter(t)
	doRequest(t, r, http.MethodPost, "/api/cart/add", `{"product_id": "smart-stor-set"}`)

	w, _ := doRequest(t, r, http.MethodDelete, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	_, body := doRequest(t, r, http.MethodGet, "/api/cart", "")
	assert.Empty(t, body["items"])
}

func TestProductsAndCategoryFilter(t *testing.T) {
	r := newTestRouter(t)

	_, body := doRequest(t, r, http.MethodGet, "/api/products", "")
	assert.EqualValues(t, 3, body["total"])

	_, body = doRequest(t, r, http.MethodGet, "/api/products?category=storage", "")
	assert.EqualValues(t, 2, body["total"])

	w, _ := doRequest(t, r, http.MethodGet, "/api/products/smart-stor-set", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(t, r, http.MethodGet, "/api/products/inconnu", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, body = doRequest(t, r, http.MethodGet, "/api/products/offers", "")
	assert.EqualValues(t, 1, body["total"])
}

func TestSearchSuggestionsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	// Mot-clé "pantry" relié par la table éditoriale
	_, body := doRequest(t, r, http.MethodGet, "/api/search/suggestions?q=pantry", "")
	suggestions := body["suggestions"].([]any)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "smart-stor-set", suggestions[0].(map[string]any)["id"])
	assert.Equal(t, true, body["has_more"])

	// Requête trop courte : aucune suggestion
	_, body = doRequest(t, r, http.MethodGet, "/api/search/suggestions?q=a", "")
	assert.Empty(t, body["suggestions"])
	assert.Equal(t, false, body["has_more"])
}

func TestWhatsAppCheckout(t *testing.T) {
	r := newTestRouter(t)

	// Panier vide : pas de lien de commande
	w, _ := doRequest(t, r, http.MethodGet, "/api/checkout/whatsapp", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	doRequest(t, r, http.MethodPost, "/api/cart/add", `{"product_id": "premium-organizer"}`)
	doRequest(t, r, http.MethodPost, "/api/cart/add", `{"product_id": "smart-stor-set"}`)

	w, body := doRequest(t, r, http.MethodGet, "/api/checkout/whatsapp", "")
	require.Equal(t, http.StatusOK, w.Code)

	link := body["link"].(string)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))
	assert.Contains(t, body["message"], "Premium Storage Organizer")
	assert.EqualValues(t, 3998, body["total"])
	assert.EqualValues(t, 1000, body["discount"])
	assert.EqualValues(t, 2998, body["payable"])
}
