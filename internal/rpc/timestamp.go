package rpc

import (
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Timestamp is the wire form of every instant in a huddle message. It
// encodes with protobuf's JSON mapping, an RFC 3339 string in UTC.
type Timestamp struct {
	pb *timestamppb.Timestamp
}

// TimestampOf wraps t.
func TimestampOf(t time.Time) *Timestamp {
	return &Timestamp{pb: timestamppb.New(t)}
}

// Valid reports whether ts holds an in-range instant. A nil ts is invalid.
func (ts *Timestamp) Valid() bool {
	return ts != nil && ts.pb != nil && ts.pb.IsValid()
}

// Time returns the instant in UTC, or the zero time when ts is invalid.
func (ts *Timestamp) Time() time.Time {
	if !ts.Valid() {
		return time.Time{}
	}
	return ts.pb.AsTime()
}

func (ts *Timestamp) MarshalJSON() ([]byte, error) {
	if ts == nil || ts.pb == nil {
		return []byte("null"), nil
	}
	return protojson.Marshal(ts.pb)
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		ts.pb = nil
		return nil
	}
	pb := new(timestamppb.Timestamp)
	if err := protojson.Unmarshal(data, pb); err != nil {
		return err
	}
	ts.pb = pb
	return nil
}
