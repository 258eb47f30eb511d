package middleware

import (
	"net/http"
	"time"

	"github.com/2beens/squashcoach/pkg"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			ip, err := pkg.ReadUserIP(r)
			if err != nil {
				ip = "unknown"
			}
			log.WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"ip":     ip,
				"ua":     r.Header.Get("User-Agent"),
				"took":   time.Since(start).String(),
			}).Trace("request served")
		})
	}
}
