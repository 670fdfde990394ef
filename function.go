// Package testys posts a Slack notification for every document created
// in the Firestore "messages" collection. The function is triggered by
// the platform's document change notifications; it holds no state and
// performs exactly one delivery attempt per event.
package testys

import (
	"context"
	"fmt"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/cernym46/testys-firebase/internal/config"
	"github.com/cernym46/testys-firebase/internal/document"
	"github.com/cernym46/testys-firebase/internal/logging"
	"github.com/cernym46/testys-firebase/internal/metrics"
	"github.com/cernym46/testys-firebase/internal/notifier"
)

func init() {
	// Register a CloudEvent function with the Functions Framework
	functions.CloudEvent("NotifyMessageCreated", NotifyMessageCreated)
}

// NotifyMessageCreated handles a Firestore document-created event.
func NotifyMessageCreated(ctx context.Context, e event.Event) error {
	cfg := config.FromEnv()
	logger := logging.New(cfg.AppName)

	metrics.RecordEventReceived()

	if len(e.Data()) == 0 {
		metrics.RecordNoOp()
		logger.WithContext(ctx).WithEvent(e.ID()).Info("event carries no payload, skipping")
		return nil
	}

	data, err := document.Decode(e)
	if err != nil {
		return fmt.Errorf("decode firestore event: %w", err)
	}

	doc := data.GetValue()
	if doc == nil {
		// Nothing to notify about; not an error.
		metrics.RecordNoOp()
		logger.WithContext(ctx).WithEvent(e.ID()).Info("event carries no document, skipping")
		return nil
	}

	if err := cfg.ValidateTarget(); err != nil {
		return err
	}

	id := document.ID(doc.GetName())
	fields := document.Record(doc)

	logger.WithContext(ctx).WithEvent(e.ID()).WithDoc(id).
		WithCollection(cfg.Notifier.Collection).Info("handling created document")

	return notifier.New(cfg, nil).Notify(ctx, id, fields)
}
