package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",        // local storefront dev
	"http://localhost:5173",        // vite dev server
	"https://biteaffair.com",       // production storefront
	"https://www.biteaffair.com",   // production storefront (www)
	"https://bite-affair.web.app",  // firebase preview
}

// CORS returns middleware that applies the storefront's allowed origin policy.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   defaultCORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-BA-Session", "X-BA-Admin-Token", "X-Requested-With"},
		ExposedHeaders:   []string{"X-BA-Session"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
