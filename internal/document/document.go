// Package document decodes Firestore document payloads from CloudEvents
// and converts them into the schema-less record representation.
package document

import (
	"fmt"
	"strings"

	"github.com/cloudevents/sdk-go/v2/event"
	"github.com/googleapis/google-cloudevents-go/cloud/firestoredata"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/cernym46/testys-firebase/internal/record"
)

// Decode unmarshals the Firestore document event carried by a CloudEvent.
func Decode(e event.Event) (*firestoredata.DocumentEventData, error) {
	var data firestoredata.DocumentEventData
	if err := protojson.Unmarshal(e.Data(), &data); err != nil {
		return nil, fmt.Errorf("protojson.Unmarshal: %w", err)
	}
	return &data, nil
}

// ID returns the trailing document identifier of a Firestore resource
// name, e.g. "abc123" from
// "projects/p/databases/(default)/documents/messages/abc123".
func ID(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Collection returns the parent collection segment of a Firestore
// resource name, or "" when the name has no parent path.
func Collection(name string) string {
	parts := strings.Split(name, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

// Record converts document fields into record values.
func Record(doc *firestoredata.Document) map[string]record.Value {
	fields := make(map[string]record.Value, len(doc.GetFields()))
	for k, v := range doc.GetFields() {
		fields[k] = Convert(v)
	}
	return fields
}

// Convert maps one Firestore wire value onto the record variant type.
// Timestamps become an explicit variant case here; nothing downstream
// ever sees the protobuf representation.
func Convert(v *firestoredata.Value) record.Value {
	switch vt := v.GetValueType().(type) {
	case *firestoredata.Value_NullValue:
		return record.Null()
	case *firestoredata.Value_BooleanValue:
		return record.Boolean(vt.BooleanValue)
	case *firestoredata.Value_IntegerValue:
		return record.Integer(vt.IntegerValue)
	case *firestoredata.Value_DoubleValue:
		return record.Double(vt.DoubleValue)
	case *firestoredata.Value_TimestampValue:
		return record.Timestamp(vt.TimestampValue.AsTime())
	case *firestoredata.Value_StringValue:
		return record.String(vt.StringValue)
	case *firestoredata.Value_BytesValue:
		return record.Binary(vt.BytesValue)
	case *firestoredata.Value_ReferenceValue:
		return record.Reference(vt.ReferenceValue)
	case *firestoredata.Value_GeoPointValue:
		return record.GeoPoint(vt.GeoPointValue.GetLatitude(), vt.GeoPointValue.GetLongitude())
	case *firestoredata.Value_ArrayValue:
		items := vt.ArrayValue.GetValues()
		vs := make([]record.Value, 0, len(items))
		for _, item := range items {
			vs = append(vs, Convert(item))
		}
		return record.Array(vs...)
	case *firestoredata.Value_MapValue:
		fields := make(map[string]record.Value, len(vt.MapValue.GetFields()))
		for k, item := range vt.MapValue.GetFields() {
			fields[k] = Convert(item)
		}
		return record.Map(fields)
	default:
		return record.Null()
	}
}
