package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
	"github.com/googleapis/google-cloudevents-go/cloud/firestoredata"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/cernym46/testys-firebase/internal/document"
)

var (
	sendDocID string
	sendData  string
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a synthetic document-created event to a running function",
	Long: `Build a Firestore document-created CloudEvent from a JSON object
literal and POST it to the function at --target.

String fields that parse as RFC 3339 instants become Firestore timestamp
values, e.g. {"message": "hi", "ts": "2024-01-01T00:00:00Z"}.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sendDocID == "" {
			sendDocID = uuid.NewString()
		}

		e, err := buildCreatedEvent(sendDocID, []byte(sendData))
		if err != nil {
			return err
		}

		c, err := cloudevents.NewClientHTTP()
		if err != nil {
			return fmt.Errorf("create cloudevents client: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ctx = cloudevents.ContextWithTarget(ctx, target)

		if result := c.Send(ctx, e); cloudevents.IsUndelivered(result) {
			return fmt.Errorf("send event: %w", result)
		}

		fmt.Printf("event %s sent for document %s\n", e.ID(), sendDocID)
		return nil
	},
}

// buildCreatedEvent wraps a JSON document literal in a Firestore
// document-created CloudEvent.
func buildCreatedEvent(docID string, data []byte) (cloudevents.Event, error) {
	e := cloudevents.NewEvent()

	doc, err := document.FromJSON(documentName(docID), data)
	if err != nil {
		return e, err
	}

	payload, err := protojson.Marshal(&firestoredata.DocumentEventData{Value: doc})
	if err != nil {
		return e, fmt.Errorf("marshal event data: %w", err)
	}

	e.SetID(uuid.NewString())
	e.SetSource(fmt.Sprintf("//firestore.googleapis.com/projects/%s/databases/(default)", project))
	e.SetType("google.cloud.firestore.document.v1.created")
	e.SetSubject(fmt.Sprintf("documents/%s/%s", collection, docID))
	if err := e.SetData(cloudevents.ApplicationJSON, json.RawMessage(payload)); err != nil {
		return e, fmt.Errorf("set event data: %w", err)
	}
	return e, nil
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().StringVar(&sendDocID, "doc-id", "", "document id (random when empty)")
	sendCmd.Flags().StringVar(&sendData, "data", `{"message": "hello from signalctl"}`, "document fields as a JSON object literal")
}
