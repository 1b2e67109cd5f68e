package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogRequest writes one trace line per request once the handler is done.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{w, http.StatusOK}

			next.ServeHTTP(resp, r)

			log.WithFields(log.Fields{
				"method":   r.Method,
				"route":    routeTemplate(r),
				"status":   resp.statusCode,
				"duration": time.Since(begin).String(),
				"ua":       r.Header.Get("User-Agent"),
			}).Trace("====> request")
		})
	}
}
