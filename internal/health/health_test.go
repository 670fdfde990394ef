package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cernym46/testys-firebase/internal/config"
)

func TestHTTPHandler(t *testing.T) {
	tests := []struct {
		name       string
		webhookURL string
		wantStatus int
		wantOK     bool
	}{
		{
			name:       "configured target",
			webhookURL: "https://hooks.slack.com/services/T/B/X",
			wantStatus: http.StatusOK,
			wantOK:     true,
		},
		{
			name:       "missing target",
			webhookURL: "",
			wantStatus: http.StatusServiceUnavailable,
			wantOK:     false,
		},
		{
			name:       "invalid scheme",
			webhookURL: "ftp://hooks.slack.com/x",
			wantStatus: http.StatusServiceUnavailable,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{Slack: config.Slack{WebhookURL: tt.webhookURL}}

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rec := httptest.NewRecorder()
			HTTPHandler(cfg)(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var st Status
			if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if st.OK != tt.wantOK {
				t.Errorf("ok = %v, want %v", st.OK, tt.wantOK)
			}
			if st.Target != tt.wantOK {
				t.Errorf("target = %v, want %v", st.Target, tt.wantOK)
			}
		})
	}
}
