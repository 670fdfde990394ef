package document

import (
	"testing"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/googleapis/google-cloudevents-go/cloud/firestoredata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/cernym46/testys-firebase/internal/record"
)

func TestID(t *testing.T) {
	assert.Equal(t, "abc123", ID("projects/p/databases/(default)/documents/messages/abc123"))
	assert.Equal(t, "abc123", ID("abc123"))
	assert.Equal(t, "", ID("messages/"))
}

func TestCollection(t *testing.T) {
	assert.Equal(t, "messages", Collection("projects/p/databases/(default)/documents/messages/abc123"))
	assert.Equal(t, "", Collection("abc123"))
}

func TestFromJSONAndConvert(t *testing.T) {
	raw := []byte(`{
		"message": "hello",
		"count": 3,
		"ratio": 0.5,
		"ok": true,
		"nothing": null,
		"ts": "2024-01-01T00:00:00Z",
		"nested": {"inner": "2024-01-01T00:00:00Z"},
		"list": ["a", 1]
	}`)

	doc, err := FromJSON("projects/p/databases/(default)/documents/messages/abc123", raw)
	require.NoError(t, err)

	fields := Record(doc)

	assert.Equal(t, record.String("hello"), fields["message"])
	assert.Equal(t, record.Integer(3), fields["count"])
	assert.Equal(t, record.Double(0.5), fields["ratio"])
	assert.Equal(t, record.Boolean(true), fields["ok"])
	assert.Equal(t, record.Null(), fields["nothing"])

	ts := fields["ts"]
	require.Equal(t, record.KindTimestamp, ts.Kind)
	assert.True(t, ts.Time.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	nested := fields["nested"]
	require.Equal(t, record.KindMap, nested.Kind)
	assert.Equal(t, record.KindTimestamp, nested.Fields["inner"].Kind)

	list := fields["list"]
	require.Equal(t, record.KindArray, list.Kind)
	require.Len(t, list.Values, 2)
	assert.Equal(t, record.String("a"), list.Values[0])
	assert.Equal(t, record.Integer(1), list.Values[1])
}

func TestConvertNilValue(t *testing.T) {
	assert.Equal(t, record.Null(), Convert(nil))
}

func TestDecode(t *testing.T) {
	doc, err := FromJSON("projects/p/databases/(default)/documents/messages/abc123",
		[]byte(`{"message": "hello"}`))
	require.NoError(t, err)

	payload, err := protojson.Marshal(&firestoredata.DocumentEventData{Value: doc})
	require.NoError(t, err)

	e := cloudevents.NewEvent()
	e.SetID("evt-1")
	e.SetSource("//firestore.googleapis.com/projects/p/databases/(default)")
	e.SetType("google.cloud.firestore.document.v1.created")
	require.NoError(t, e.SetData(cloudevents.ApplicationJSON, payload))

	data, err := Decode(e)
	require.NoError(t, err)
	require.NotNil(t, data.GetValue())
	assert.Equal(t, "abc123", ID(data.GetValue().GetName()))
	assert.Equal(t, "hello", data.GetValue().GetFields()["message"].GetStringValue())
}

func TestDecodeBadPayload(t *testing.T) {
	e := cloudevents.NewEvent()
	require.NoError(t, e.SetData(cloudevents.ApplicationJSON, []byte(`not json`)))

	_, err := Decode(e)
	assert.Error(t, err)
}
