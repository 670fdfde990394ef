package record

import "time"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindDouble
	KindString
	KindBytes
	KindTimestamp
	KindReference
	KindGeoPoint
	KindArray
	KindMap
)

// Value is one field of a schema-less document. Firestore documents carry
// no schema, so a field is modeled as a tagged variant instead of a fixed
// struct. Exactly one payload field is meaningful for a given Kind.
type Value struct {
	Kind   Kind
	Bool   bool
	Int    int64
	Float  float64
	Str    string // KindString and KindReference
	Bytes  []byte
	Time   time.Time
	Lat    float64
	Lng    float64
	Values []Value
	Fields map[string]Value
}

func Null() Value { return Value{Kind: KindNull} }

func Boolean(b bool) Value { return Value{Kind: KindBool, Bool: b} }

func Integer(i int64) Value { return Value{Kind: KindInteger, Int: i} }

func Double(f float64) Value { return Value{Kind: KindDouble, Float: f} }

func String(s string) Value { return Value{Kind: KindString, Str: s} }

func Binary(b []byte) Value { return Value{Kind: KindBytes, Bytes: b} }

func Timestamp(t time.Time) Value { return Value{Kind: KindTimestamp, Time: t} }

func Reference(path string) Value { return Value{Kind: KindReference, Str: path} }

func GeoPoint(lat, lng float64) Value { return Value{Kind: KindGeoPoint, Lat: lat, Lng: lng} }

func Array(vs ...Value) Value { return Value{Kind: KindArray, Values: vs} }

func Map(fields map[string]Value) Value { return Value{Kind: KindMap, Fields: fields} }
