package rpc

import (
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var refNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestCodecRegistered(t *testing.T) {
	if encoding.GetCodec(CodecName) == nil {
		t.Fatalf("codec %q not registered", CodecName)
	}
}

func TestCodecCarriesRequestClock(t *testing.T) {
	c := codec{}
	data, err := c.Marshal(&ListConversationsRequest{Clock: ClockAt(refNow), Query: "design"})
	if err != nil {
		t.Fatal(err)
	}

	var got ListConversationsRequest
	if err := c.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Query != "design" {
		t.Errorf("query = %q", got.Query)
	}
	if at := got.At(time.Time{}); !at.Equal(refNow) {
		t.Errorf("now = %s, want %s", at, refNow)
	}
}

func TestCodecUsesProtoJSONForProtoMessages(t *testing.T) {
	c := codec{}
	data, err := c.Marshal(timestamppb.New(refNow))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "2026-10-19T12:00:00Z") {
		t.Errorf("marshaled = %s, want RFC 3339 form", data)
	}

	var ts timestamppb.Timestamp
	if err := c.Unmarshal(data, &ts); err != nil {
		t.Fatal(err)
	}
	if !ts.AsTime().Equal(refNow) {
		t.Errorf("round trip = %s", ts.AsTime())
	}
}

func TestTimestampsUseRFC3339OnTheWire(t *testing.T) {
	c := codec{}
	tests := []struct {
		name string
		msg  any
		want string
	}{
		{"request clock", &ListContactsRequest{Clock: ClockAt(refNow)}, `"now":"2026-10-19T12:00:00Z"`},
		{"status event", &StatusEvent{To: "SIGNED_IN", At: TimestampOf(refNow)}, `"at":"2026-10-19T12:00:00Z"`},
		{"status since", &GetStatusResponse{Since: TimestampOf(refNow)}, `"since":"2026-10-19T12:00:00Z"`},
		{"account", &Account{SignedInAt: TimestampOf(refNow)}, `"signed_in_at":"2026-10-19T12:00:00Z"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := c.Marshal(tt.msg)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("marshaled = %s, want %s", data, tt.want)
			}
		})
	}

	var evt StatusEvent
	if err := c.Unmarshal([]byte(`{"to":"SIGNED_OUT","at":"2026-10-19T12:00:00.5Z"}`), &evt); err != nil {
		t.Fatal(err)
	}
	if want := refNow.Add(500 * time.Millisecond); !evt.At.Time().Equal(want) {
		t.Errorf("at = %s, want %s", evt.At.Time(), want)
	}
	if err := c.Unmarshal([]byte(`{"at":{"seconds":1}}`), &evt); err == nil {
		t.Error("object-shaped timestamp should be rejected")
	}
}

func TestTimestampNil(t *testing.T) {
	var ts *Timestamp
	if ts.Valid() || !ts.Time().IsZero() {
		t.Errorf("nil timestamp: valid %v, time %s", ts.Valid(), ts.Time())
	}
	data, err := codec{}.Marshal(&StatusEvent{To: "SIGNED_OUT"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"at":null`) {
		t.Errorf("marshaled = %s", data)
	}
}

func TestClockFallsBackWhenUnset(t *testing.T) {
	var c Clock
	if got := c.At(refNow); !got.Equal(refNow) {
		t.Errorf("At() = %s, want fallback", got)
	}
}

func TestServiceDescsMatchServers(t *testing.T) {
	tests := []struct {
		name    string
		methods int
		streams int
		got     int
		gotS    int
	}{
		{"roster", 3, 0, len(RosterServiceDesc.Methods), len(RosterServiceDesc.Streams)},
		{"thread", 2, 0, len(ThreadServiceDesc.Methods), len(ThreadServiceDesc.Streams)},
		{"session", 4, 1, len(SessionServiceDesc.Methods), len(SessionServiceDesc.Streams)},
	}
	for _, tt := range tests {
		if tt.got != tt.methods || tt.gotS != tt.streams {
			t.Errorf("%s: %d methods, %d streams; want %d, %d", tt.name, tt.got, tt.gotS, tt.methods, tt.streams)
		}
	}
}
