package middleware

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "tuppershop_session"
	cartIDKey   = "cart_id"
)

var sessionStore *sessions.CookieStore

// InitSessionStore configure le store de cookies de session.
// Le shopper est anonyme : la session ne sert qu'à identifier son panier.
func InitSessionStore() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev-session-secret"
		log.Println("⚠️  SESSION_SECRET manquant — secret de développement utilisé")
	}

	sessionStore = sessions.NewCookieStore([]byte(secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365, // le panier persiste tant qu'il n'est pas vidé
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
}

// CartSession attribue un identifiant de panier à la première visite et le
// place dans le contexte gin sous "cart_id".
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := sessionStore.Get(c.Request, sessionName)

		id, ok := session.Values[cartIDKey].(string)
		if !ok || id == "" {
			id = uuid.NewString()
			session.Values[cartIDKey] = id
			if err := session.Save(c.Request, c.Writer); err != nil {
				log.Printf("⚠️  Impossible d'écrire le cookie de session: %v", err)
			}
		}

		c.Set(cartIDKey, id)
		c.Next()
	}
}
