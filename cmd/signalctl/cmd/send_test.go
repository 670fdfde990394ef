package cmd

import (
	"testing"

	"github.com/googleapis/google-cloudevents-go/cloud/firestoredata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
)

func TestBuildCreatedEvent(t *testing.T) {
	e, err := buildCreatedEvent("abc123", []byte(`{"message": "hello"}`))
	require.NoError(t, err)

	assert.Equal(t, "google.cloud.firestore.document.v1.created", e.Type())
	assert.NotEmpty(t, e.ID())
	assert.Contains(t, e.Subject(), "abc123")

	var data firestoredata.DocumentEventData
	require.NoError(t, protojson.Unmarshal(e.Data(), &data))
	require.NotNil(t, data.GetValue())
	assert.Contains(t, data.GetValue().GetName(), "/documents/messages/abc123")
	assert.Equal(t, "hello", data.GetValue().GetFields()["message"].GetStringValue())
}

func TestBuildCreatedEventBadJSON(t *testing.T) {
	_, err := buildCreatedEvent("abc123", []byte(`{`))
	assert.Error(t, err)
}

func TestDocumentName(t *testing.T) {
	got := documentName("abc123")
	assert.Equal(t, "projects/demo-project/databases/(default)/documents/messages/abc123", got)
}
