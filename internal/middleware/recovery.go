package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/2beens/squashcoach/internal/telemetry/metrics"
	"github.com/2beens/squashcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a JSON 500. http.ErrAbortHandler is passed on,
// the server uses it to drop the connection quietly.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if err, ok := r.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(r)
				}

				route := "unknown"
				if current := mux.CurrentRoute(req); current != nil && current.GetName() != "" {
					route = current.GetName()
				}
				log.WithFields(log.Fields{
					"method": req.Method,
					"path":   req.URL.Path,
					"route":  route,
				}).Errorf("http: panic: %v\n%s", r, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
