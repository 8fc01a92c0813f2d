package httpapi

import (
	"net/http"
	"strings"
	"time"

	"tablemenu/internal/service"
)

// Paths that never produce visitor log entries.
var trackingSkipPrefixes = []string{
	"/api/",
	"/static/",
	"/uploads/",
	"/admin/",
	"/favicon.ico",
	"/health",
}

// TrackingMiddleware classifies page requests and records a visit entry once
// the response has been served. Recording is best-effort and never blocks or
// fails the wrapped handler.
func TrackingMiddleware(tracker *service.TrackingService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipTracking(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			entry := tracker.Classify(r)
			start := time.Now()
			next.ServeHTTP(w, r)
			entry.Duration = time.Since(start).Seconds()

			go tracker.Record(entry)
		})
	}
}

func skipTracking(path string) bool {
	for _, prefix := range trackingSkipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
