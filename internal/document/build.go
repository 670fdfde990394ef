package document

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/googleapis/google-cloudevents-go/cloud/firestoredata"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// FromJSON builds a Firestore document from a plain JSON object literal.
// Strings that parse as RFC 3339 instants become timestamp values, which
// is how signalctl and tests express points in time.
func FromJSON(name string, raw []byte) (*firestoredata.Document, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse document JSON: %w", err)
	}

	fields := make(map[string]*firestoredata.Value, len(m))
	for k, v := range m {
		fields[k] = toValue(v)
	}

	now := timestamppb.Now()
	return &firestoredata.Document{
		Name:       name,
		Fields:     fields,
		CreateTime: now,
		UpdateTime: now,
	}, nil
}

func toValue(v any) *firestoredata.Value {
	switch t := v.(type) {
	case nil:
		return &firestoredata.Value{
			ValueType: &firestoredata.Value_NullValue{NullValue: structpb.NullValue_NULL_VALUE},
		}
	case bool:
		return &firestoredata.Value{ValueType: &firestoredata.Value_BooleanValue{BooleanValue: t}}
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return &firestoredata.Value{ValueType: &firestoredata.Value_IntegerValue{IntegerValue: int64(t)}}
		}
		return &firestoredata.Value{ValueType: &firestoredata.Value_DoubleValue{DoubleValue: t}}
	case string:
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return &firestoredata.Value{
				ValueType: &firestoredata.Value_TimestampValue{TimestampValue: timestamppb.New(ts)},
			}
		}
		return &firestoredata.Value{ValueType: &firestoredata.Value_StringValue{StringValue: t}}
	case []any:
		items := make([]*firestoredata.Value, 0, len(t))
		for _, item := range t {
			items = append(items, toValue(item))
		}
		return &firestoredata.Value{
			ValueType: &firestoredata.Value_ArrayValue{ArrayValue: &firestoredata.ArrayValue{Values: items}},
		}
	case map[string]any:
		fields := make(map[string]*firestoredata.Value, len(t))
		for k, item := range t {
			fields[k] = toValue(item)
		}
		return &firestoredata.Value{
			ValueType: &firestoredata.Value_MapValue{MapValue: &firestoredata.MapValue{Fields: fields}},
		}
	default:
		return &firestoredata.Value{
			ValueType: &firestoredata.Value_NullValue{NullValue: structpb.NullValue_NULL_VALUE},
		}
	}
}
