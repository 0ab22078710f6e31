package middleware

import (
	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"
)

// CORS allows the configured frontend origins. A "*" entry opens every origin
// but then credentials are not allowed.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	wildcard := false
	for _, origin := range allowedOrigins {
		if origin == "*" {
			wildcard = true
		}
	}
	options := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: !wildcard,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
	}
	if wildcard {
		options.AllowedOrigins = []string{"*"}
	}
	return cors.New(options)
}
