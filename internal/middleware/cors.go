package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

var allowedOrigins = map[string]bool{
	"https://fitme.app":      true,
	"https://www.fitme.app":  true,
	"http://localhost:8081":  true,
	"http://localhost:19006": true,
}

// Cors handles browser preflights. The mobile app sends no Origin and is not affected.
func Cors() func(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowOriginRequestFunc: func(r *http.Request, origin string) bool {
			// MCP clients run from anywhere
			return allowedOrigins[origin] || strings.HasPrefix(r.URL.Path, "/mcp")
		},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization",
			UserIDHeader, "X-MCP-Secret", "MCP-Protocol-Version", "MCP-Session-Id",
		},
		ExposedHeaders: []string{"MCP-Session-Id"},
		MaxAge:         600,
	})
	return c.Handler
}
