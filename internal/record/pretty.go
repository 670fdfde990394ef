package record

import (
	"encoding/base64"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// TimeLayout renders timestamps with millisecond precision and a literal
// UTC designator, matching the textual form Slack readers expect.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Pretty serializes v to readable text: 2-space indentation, map keys in
// sorted order, timestamps as ISO-8601 strings.
func Pretty(v Value) string {
	var b strings.Builder
	writeValue(&b, v, 0)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, depth int) {
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case KindInteger:
		b.WriteString(strconv.FormatInt(v.Int, 10))
	case KindDouble:
		writeJSON(b, v.Float)
	case KindString:
		writeJSON(b, v.Str)
	case KindBytes:
		writeJSON(b, base64.StdEncoding.EncodeToString(v.Bytes))
	case KindTimestamp:
		writeJSON(b, v.Time.UTC().Format(TimeLayout))
	case KindReference:
		writeJSON(b, v.Str)
	case KindGeoPoint:
		writeValue(b, Map(map[string]Value{
			"latitude":  Double(v.Lat),
			"longitude": Double(v.Lng),
		}), depth)
	case KindArray:
		writeArray(b, v.Values, depth)
	case KindMap:
		writeMap(b, v.Fields, depth)
	}
}

func writeArray(b *strings.Builder, vs []Value, depth int) {
	if len(vs) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteString("[\n")
	for i, v := range vs {
		indent(b, depth+1)
		writeValue(b, v, depth+1)
		if i < len(vs)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	indent(b, depth)
	b.WriteByte(']')
}

func writeMap(b *strings.Builder, fields map[string]Value, depth int) {
	if len(fields) == 0 {
		b.WriteString("{}")
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("{\n")
	for i, k := range keys {
		indent(b, depth+1)
		writeJSON(b, k)
		b.WriteString(": ")
		writeValue(b, fields[k], depth+1)
		if i < len(keys)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	indent(b, depth)
	b.WriteByte('}')
}

// writeJSON marshals a scalar through encoding/json so strings get proper
// escaping and floats keep JSON number formatting.
func writeJSON(b *strings.Builder, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		b.WriteString("null")
		return
	}
	b.Write(data)
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
