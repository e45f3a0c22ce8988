package thread

import (
	"errors"
	"testing"
	"time"
)

var now = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

func TestDayLabel(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"today", now.Add(-time.Hour), "Today"},
		{"start of today", time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), "Today"},
		{"yesterday", time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC), "Yesterday"},
		{"older", time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC), "10/2/2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayLabel(tt.t, now); got != tt.want {
				t.Errorf("DayLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClockLabel(t *testing.T) {
	if got := ClockLabel(time.Date(2026, 1, 1, 15, 4, 0, 0, time.UTC)); got != "03:04 PM" {
		t.Errorf("ClockLabel = %q, want 03:04 PM", got)
	}
	if got := ClockLabel(time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)); got != "09:30 AM" {
		t.Errorf("ClockLabel = %q, want 09:30 AM", got)
	}
}

func TestBuildInsertsDaySeparators(t *testing.T) {
	msgs := []Message{
		{ID: "1", SenderName: "Sarah Wilson", Content: "a", SentAt: time.Date(2026, 10, 18, 22, 0, 0, 0, time.UTC)},
		{ID: "2", SenderName: "Sarah Wilson", Content: "b", SentAt: time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC)},
		{ID: "3", SenderName: "Alex Johnson", Content: "c", SentAt: now.Add(-time.Minute), Own: true},
	}
	items := Build(msgs, now)

	wantKinds := []ItemKind{KindDay, KindMessage, KindMessage, KindDay, KindMessage}
	if len(items) != len(wantKinds) {
		t.Fatalf("got %d items, want %d", len(items), len(wantKinds))
	}
	for i, k := range wantKinds {
		if items[i].Kind != k {
			t.Errorf("item %d kind = %s, want %s", i, items[i].Kind, k)
		}
	}
	if items[0].Day != "Yesterday" || items[3].Day != "Today" {
		t.Errorf("days = %q, %q", items[0].Day, items[3].Day)
	}
	if items[4].Initials != "AJ" || !items[4].Own || items[4].Clock != "03:29 PM" {
		t.Errorf("own item = %+v", items[4])
	}
}

func TestBuildEmpty(t *testing.T) {
	if items := Build(nil, now); len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestBuildKeepsReactions(t *testing.T) {
	items := Build([]Message{{
		ID: "1", SenderName: "Sarah Wilson", SentAt: now,
		Reactions: []Reaction{{Emoji: "👋", Count: 3}, {Emoji: "😊", Count: 1, HasReacted: true}},
	}}, now)
	if len(items[1].Reactions) != 2 || !items[1].Reactions[1].HasReacted {
		t.Errorf("reactions = %+v", items[1].Reactions)
	}
}

func TestCompose(t *testing.T) {
	if _, err := Compose("   "); !errors.Is(err, ErrEmptyDraft) {
		t.Errorf("Compose(blank) error = %v, want ErrEmptyDraft", err)
	}
	got, err := Compose("  hello  ")
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("Compose = %q, want hello", got)
	}
}
