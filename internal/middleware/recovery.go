package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"github.com/fitme-app/fitme/internal/telemetry/metrics"
)

// PanicRecovery turns a handler panic into a 500, reports it to sentry and
// counts it. The process keeps serving.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				log.WithFields(log.Fields{
					"method": r.Method,
					"route":  routeTemplate(r),
				}).Errorf("panic serving %s: %v\n%s", r.URL.Path, recovered, debug.Stack())

				hub := sentry.GetHubFromContext(r.Context())
				if hub == nil {
					hub = sentry.CurrentHub()
				}
				hub.RecoverWithContext(r.Context(), fmt.Errorf("panic serving %s: %v", r.URL.Path, recovered))

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
