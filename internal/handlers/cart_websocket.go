package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"tuppershop_back_end/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWebSocket pousse l'état du panier à chaque changement.
// Le canal pub/sub Redis porte le même nom que la clé du panier : un autre
// onglet qui modifie le panier déclenche la mise à jour ici.
func (h *Handler) CartWebSocket(c *gin.Context) {
	if database.Redis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Synchronisation indisponible"})
		return
	}

	store := h.storeFor(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()

	pubsub := database.Redis.Subscribe(ctx, store.Key())
	defer pubsub.Close()
	ch := pubsub.Channel()

	// État initial à la connexion
	conn.WriteJSON(gin.H{
		"type": "connected",
		"cart": h.cartResponse(store.Load(ctx)),
	})

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != "updated" && msg.Payload != "cleared" {
				continue
			}
			response := gin.H{
				"type": "cart_updated",
				"cart": h.cartResponse(store.Load(ctx)),
			}
			if err := conn.WriteJSON(response); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
