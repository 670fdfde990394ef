package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Slack struct {
	WebhookURL     string        // incoming webhook URL, injected as a platform secret
	HeaderTitle    string        // fixed title for the header block
	BlockCharLimit int           // raw-data text budget before truncation
	HTTPTimeout    time.Duration // outbound POST timeout
}

type Notifier struct {
	Collection string // watched Firestore collection
	HTTPPort   string // metrics/health port for the local server
	FuncPort   string // functions framework listen port
}

type FakeSlack struct {
	FailFirstN      int           // number of requests to fail initially
	ResponseDelayMS int           // simulated response delay in milliseconds
	Port            string        // server listen port
	ReadTimeout     time.Duration // HTTP read timeout
	WriteTimeout    time.Duration // HTTP write timeout
	IdleTimeout     time.Duration // HTTP idle timeout
}

type Config struct {
	AppName   string
	Slack     Slack
	Notifier  Notifier
	FakeSlack FakeSlack
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func FromEnv() Config {
	return Config{
		AppName: getenv("APP_NAME", "testys"),
		Slack: Slack{
			WebhookURL:     getenv("SLACK_WEBHOOK_URL", ""),
			HeaderTitle:    getenv("SLACK_HEADER_TITLE", "New Firestore message"),
			BlockCharLimit: getenvInt("SLACK_BLOCK_CHAR_LIMIT", 2900),
			HTTPTimeout:    getenvDuration("SLACK_HTTP_TIMEOUT", 15*time.Second),
		},
		Notifier: Notifier{
			Collection: getenv("MESSAGES_COLLECTION", "messages"),
			HTTPPort:   ":" + getenv("NOTIFIER_HTTP_PORT", "8082"),
			// The functions framework reads PORT itself; keep the same default.
			FuncPort: getenv("PORT", "8080"),
		},
		FakeSlack: FakeSlack{
			FailFirstN:      getenvInt("FAIL_FIRST_N", 0),
			ResponseDelayMS: getenvInt("RESPONSE_DELAY_MS", 0),
			Port:            getenv("FAKE_SLACK_PORT", ":8081"),
			ReadTimeout:     getenvDuration("FAKE_SLACK_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getenvDuration("FAKE_SLACK_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getenvDuration("FAKE_SLACK_IDLE_TIMEOUT", 60*time.Second),
		},
	}
}

// ValidateTarget checks that the configured webhook URL is a well-formed
// http(s) endpoint.
func (c Config) ValidateTarget() error {
	u, err := url.Parse(c.Slack.WebhookURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("SLACK_WEBHOOK_URL is not a valid http(s) endpoint: %q", c.Slack.WebhookURL)
	}
	return nil
}
