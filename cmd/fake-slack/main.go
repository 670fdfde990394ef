// fake-slack is a local stand-in for a Slack incoming webhook. It
// validates the Block Kit payload shape and can simulate endpoint
// flakiness for testing the notifier's failure paths.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"

	"github.com/cernym46/testys-firebase/internal/config"
)

type receiver struct {
	failFirstN    int
	responseDelay time.Duration
	reqCount      atomic.Int64
}

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	rcv := &receiver{
		failFirstN:    cfg.FakeSlack.FailFirstN,
		responseDelay: time.Duration(cfg.FakeSlack.ResponseDelayMS) * time.Millisecond,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`{"ok":true}`)) })
	mux.HandleFunc("/hook", rcv.handleHook)

	srv := &http.Server{
		Addr:         cfg.FakeSlack.Port,
		Handler:      mux,
		ReadTimeout:  cfg.FakeSlack.ReadTimeout,
		WriteTimeout: cfg.FakeSlack.WriteTimeout,
		IdleTimeout:  cfg.FakeSlack.IdleTimeout,
	}

	log.Printf("fake-slack listening on %s", cfg.FakeSlack.Port)
	log.Fatal(srv.ListenAndServe())
}

func (rcv *receiver) handleHook(w http.ResponseWriter, r *http.Request) {
	count := rcv.reqCount.Add(1)
	b, _ := io.ReadAll(r.Body)
	defer r.Body.Close()

	if rcv.responseDelay > 0 {
		time.Sleep(rcv.responseDelay)
	}

	// Slack rejects anything that is not a JSON payload with message text.
	var payload struct {
		Text   string            `json:"text"`
		Blocks []json.RawMessage `json:"blocks"`
	}
	if err := json.Unmarshal(b, &payload); err != nil || (payload.Text == "" && len(payload.Blocks) == 0) {
		log.Printf("fake-slack rejecting payload: %s", truncate(string(b), 160))
		http.Error(w, "invalid_payload", http.StatusBadRequest)
		return
	}

	// Simulate flakiness: first N requests -> 500
	if count <= int64(rcv.failFirstN) {
		log.Printf("FAILING (%d/%d) %s body=%s", count, rcv.failFirstN, r.URL.Path, truncate(string(b), 160))
		http.Error(w, "temporary failure", http.StatusInternalServerError)
		return
	}

	log.Printf("fake-slack OK %s blocks=%d text=%q", r.URL.Path, len(payload.Blocks), truncate(payload.Text, 80))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`ok`))
}

// truncate truncates a string to the specified length and adds an ellipsis if truncated
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}
