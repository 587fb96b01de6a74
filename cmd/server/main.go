package main

import (
	"log"
	"os"
	"strings"
	"time"

	"tuppershop_back_end/internal/cart"
	"tuppershop_back_end/internal/catalog"
	"tuppershop_back_end/internal/config"
	"tuppershop_back_end/internal/database"
	"tuppershop_back_end/internal/handlers"
	"tuppershop_back_end/internal/middleware"
	"tuppershop_back_end/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	if err := database.Connect(); err != nil {
		log.Fatalf("❌ Échec initialisation Redis: %v", err)
	}
	defer database.Close()

	catalogFile := config.String("CATALOG_FILE", "data/catalog.json")
	cat, err := catalog.Load(catalogFile)
	if err != nil {
		log.Fatalf("❌ Échec chargement du catalogue: %v", err)
	}
	log.Printf("✅ Catalogue chargé (%d produits)", cat.Len())

	// Rechargement à chaud quand le fichier catalogue change
	stopWatch, err := cat.Watch(catalogFile)
	if err != nil {
		log.Printf("⚠️  Surveillance du catalogue désactivée: %v", err)
	} else {
		defer stopWatch()
	}

	middleware.InitSessionStore()

	h := handlers.New(cat, cart.NewRedisStorage(database.Redis))

	r := gin.Default()
	r.Use(corsMiddleware())
	routes.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur boutique lancé sur le port", port)
	r.Run(":" + port)
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := config.String("CORS_ORIGINS", "http://localhost:5173")
	cfg.AllowOrigins = strings.Split(origins, ",")

	return cors.New(cfg)
}
