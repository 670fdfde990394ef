// Package notifier renders a Firestore document into a Slack Block Kit
// message and delivers it to the configured incoming webhook. One POST
// per invocation; the platform owns retries.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/cernym46/testys-firebase/internal/config"
	"github.com/cernym46/testys-firebase/internal/logging"
	"github.com/cernym46/testys-firebase/internal/metrics"
	"github.com/cernym46/testys-firebase/internal/record"
	"github.com/cernym46/testys-firebase/internal/slack"
	"github.com/cernym46/testys-firebase/internal/tracing"
)

// DeliveryError reports a webhook POST that failed, either at the
// transport level or with a non-2xx response.
type DeliveryError struct {
	StatusCode int
	Body       string
	Err        error // transport failure, when no response was received
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("slack webhook delivery failed: %v", e.Err)
	}
	return fmt.Sprintf("slack webhook delivery failed: status=%d body=%s", e.StatusCode, e.Body)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

type Notifier struct {
	cfg    config.Config
	client *http.Client
	logger *logging.Logger
}

// New builds a notifier for one invocation. A nil client gets a default
// one with the configured timeout.
func New(cfg config.Config, client *http.Client) *Notifier {
	if client == nil {
		client = &http.Client{Timeout: cfg.Slack.HTTPTimeout}
	}
	return &Notifier{
		cfg:    cfg,
		client: client,
		logger: logging.New(cfg.AppName + "-notifier"),
	}
}

// Summary picks the notification body text: the "message" field verbatim
// when it is a string, its serialization otherwise, and the serialization
// of a null value when the field is absent.
func Summary(fields map[string]record.Value) string {
	v, ok := fields["message"]
	if !ok {
		return record.Pretty(record.Null())
	}
	if v.Kind == record.KindString {
		return v.Str
	}
	return record.Pretty(v)
}

// Render assembles the Slack message for a document without sending it.
// The second return reports whether the raw-data block was truncated.
func (n *Notifier) Render(id string, fields map[string]record.Value) (slack.Message, bool) {
	summary := Summary(fields)
	raw := record.Pretty(record.Map(fields))
	fenced, truncated := slack.Fence(raw, n.cfg.Slack.BlockCharLimit)

	msg := slack.Message{
		Text: summary,
		Blocks: []slack.Block{
			slack.Header(n.cfg.Slack.HeaderTitle),
			slack.Section(summary),
			slack.Fields(
				"Collection:\n"+n.cfg.Notifier.Collection,
				"Doc ID:\n"+id,
			),
			slack.Section(fenced),
		},
	}
	return msg, truncated
}

// Notify renders the document and POSTs it to the webhook. Exactly one
// attempt; a non-2xx response or transport failure yields a DeliveryError.
func (n *Notifier) Notify(ctx context.Context, id string, fields map[string]record.Value) error {
	ctx, span := tracing.StartSpan(ctx, "notifier.deliver",
		attribute.String("doc_id", id),
		attribute.String("collection", n.cfg.Notifier.Collection),
	)
	defer span.End()

	msg, truncated := n.Render(id, fields)
	if truncated {
		metrics.RecordTruncation()
		tracing.AddSpanEvent(ctx, "payload.truncated")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		tracing.SetSpanError(ctx, err)
		return fmt.Errorf("marshal slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.Slack.WebhookURL, bytes.NewReader(body))
	if err != nil {
		tracing.SetSpanError(ctx, err)
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if traceID := tracing.GetTraceID(ctx); traceID != "" {
		req.Header.Set("X-Trace-Id", traceID)
	}

	start := time.Now()
	tracing.AddSpanEvent(ctx, "http.post_webhook")
	resp, doErr := n.client.Do(req)
	latency := time.Since(start)

	if doErr != nil {
		derr := &DeliveryError{Err: doErr}
		tracing.SetSpanError(ctx, derr)
		metrics.RecordNotification("failed", latency)
		n.logger.WithContext(ctx).WithDoc(id).WithError(doErr).Error("webhook request failed")
		return derr
	}
	defer resp.Body.Close()

	span.SetAttributes(
		attribute.Int("http.status_code", resp.StatusCode),
		attribute.Int64("http.latency_ms", latency.Milliseconds()),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Best effort: a failed body read never masks the delivery failure.
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			respBody = nil
		}
		derr := &DeliveryError{StatusCode: resp.StatusCode, Body: string(respBody)}
		tracing.SetSpanError(ctx, derr)
		metrics.RecordNotification("failed", latency)
		n.logger.WithContext(ctx).WithDoc(id).WithCollection(n.cfg.Notifier.Collection).
			WithField("status", resp.StatusCode).Error("webhook rejected notification")
		return derr
	}

	metrics.RecordNotification("delivered", latency)
	n.logger.WithContext(ctx).WithDoc(id).WithCollection(n.cfg.Notifier.Collection).
		WithField("latency_ms", latency.Milliseconds()).Info("notification delivered")
	return nil
}
