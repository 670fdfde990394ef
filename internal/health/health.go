package health

import (
	"encoding/json"
	"net/http"

	"github.com/cernym46/testys-firebase/internal/config"
)

type Status struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Target  bool   `json:"target"`
}

// HTTPHandler returns an HTTP handler that reports the health status of
// the service. The only dependency the notifier has is its delivery
// target, so health is "is a valid webhook URL configured".
func HTTPHandler(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := Status{OK: true, Message: "ok", Target: true}

		w.Header().Set("Content-Type", "application/json")
		if err := cfg.ValidateTarget(); err != nil {
			st = Status{OK: false, Message: "webhook target not configured", Target: false}
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(st)
	}
}
