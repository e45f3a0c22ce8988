package fixture

import (
	"testing"
	"time"

	"github.com/matheus3301/huddle/internal/roster"
)

func TestSampleIsRelativeToNow(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s := Sample(now)

	if len(s.Conversations) != 5 || len(s.Contacts) != 4 || len(s.Requests) != 2 || len(s.Messages) != 4 {
		t.Fatalf("sizes = %d/%d/%d/%d", len(s.Conversations), len(s.Contacts), len(s.Requests), len(s.Messages))
	}
	if got := now.Sub(s.Conversations[0].LastActivity); got != 15*time.Second {
		t.Errorf("general chat activity = %s ago, want 15s", got)
	}
	for _, m := range s.Messages {
		if m.ConversationID != GeneralChatID {
			t.Errorf("message %s belongs to %s", m.ID, m.ConversationID)
		}
		if m.SentAt.After(now) {
			t.Errorf("message %s is in the future", m.ID)
		}
	}
}

func TestSampleRendersLikeTheMockup(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s := Sample(now)

	v := roster.BuildConversationView(s.Conversations, "", now)
	if len(v.Pinned) != 1 || v.Pinned[0].Name != "General Chat" {
		t.Errorf("pinned = %+v, want General Chat only", v.Pinned)
	}
	if len(v.Regular) != 4 {
		t.Errorf("got %d regular rows, want 4", len(v.Regular))
	}

	cv := roster.BuildContactView(s.Contacts, s.Requests, "", roster.FilterOnline, now)
	if cv.OnlineTab != "Online (1)" || cv.AllTab != "All (4)" {
		t.Errorf("tabs = %q/%q", cv.OnlineTab, cv.AllTab)
	}
	if len(cv.Contacts) != 1 || cv.Contacts[0].Name != "Sarah Wilson" {
		t.Errorf("online contacts = %+v", cv.Contacts)
	}
}
