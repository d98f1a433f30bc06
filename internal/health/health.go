// Package health contains a health-check handler.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// version is set via ldflags on build.
// nolint:gochecknoglobals
var version = "dev"

// Pinger pings an underlying resource.
type Pinger interface {
	Ping(ctx context.Context) error
}

// GetVersion returns service version.
func GetVersion() string {
	return version
}

// Handler returns a handler which reports ok when every pinger responds
// within the timeout.
func Handler(timeout time.Duration, p ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		status := http.StatusOK
		for _, v := range p {
			if err := v.Ping(ctx); err != nil {
				status = http.StatusServiceUnavailable
				break
			}
		}

		body, _ := json.Marshal(struct {
			Version string `json:"version"`
		}{Version: version})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}
}
