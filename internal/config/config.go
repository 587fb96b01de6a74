package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load charge le fichier .env s'il existe, sinon on continue avec les
// variables d'environnement du système.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// String retourne la variable d'environnement ou la valeur par défaut.
func String(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// Int retourne la variable d'environnement convertie en entier.
// Une valeur absente ou invalide retombe sur la valeur par défaut.
func Int(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  %s invalide (%q), valeur par défaut %d utilisée", key, value, fallback)
		return fallback
	}
	return n
}
