package roster

import (
	"strings"
	"testing"
	"time"
)

func sampleConversations() []Conversation {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	return []Conversation{
		{ID: "1", Name: "General Chat", LastMessage: "That sounds awesome!", LastActivity: now.Add(-15 * time.Second), UnreadCount: 3, Group: true, Pinned: true, MemberCount: 24},
		{ID: "2", Name: "Sarah Wilson", LastMessage: "Thanks for the help earlier!", LastActivity: now.Add(-5 * time.Minute), UnreadCount: 1, Online: true},
		{ID: "3", Name: "Design Team", LastMessage: "Mike: The new mockups look great!", LastActivity: now.Add(-10 * time.Minute), Group: true, MemberCount: 8},
		{ID: "4", Name: "Emma Davis", LastMessage: "See you tomorrow!", LastActivity: now.Add(-time.Hour)},
		{ID: "5", Name: "Project Alpha", LastMessage: "John: Updated the documentation", LastActivity: now.Add(-2 * time.Hour), Group: true, Muted: true, Pinned: true, MemberCount: 12},
	}
}

func ids[T any](items []T, id func(T) string) string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return strings.Join(out, ",")
}

func convID(c Conversation) string { return c.ID }
func contactID(c Contact) string   { return c.ID }

func TestFilterConversationsEmptyQuery(t *testing.T) {
	p := FilterConversations(sampleConversations(), "")
	if got := ids(p.Pinned, convID); got != "1,5" {
		t.Errorf("pinned = %q, want 1,5", got)
	}
	if got := ids(p.Regular, convID); got != "2,3,4" {
		t.Errorf("regular = %q, want 2,3,4", got)
	}
}

func TestFilterConversationsQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		pinned  string
		regular string
	}{
		{"by name", "sarah", "", "2"},
		{"by message", "mockups", "", "3"},
		{"upper case query", "GENERAL", "1", ""},
		{"name or message", "john", "5", ""},
		{"common substring", "e", "1,5", "2,3,4"},
		{"no match", "zzz", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FilterConversations(sampleConversations(), tt.query)
			if got := ids(p.Pinned, convID); got != tt.pinned {
				t.Errorf("pinned = %q, want %q", got, tt.pinned)
			}
			if got := ids(p.Regular, convID); got != tt.regular {
				t.Errorf("regular = %q, want %q", got, tt.regular)
			}
		})
	}
}

// Every record lands in at most one section, and exactly one when it matches.
func TestFilterConversationsPartitionIsExact(t *testing.T) {
	records := sampleConversations()
	for _, q := range []string{"", "a", "Chat", "!", "team", "xyz", "M"} {
		p := FilterConversations(records, q)
		seen := map[string]int{}
		for _, c := range p.Pinned {
			if !c.Pinned {
				t.Errorf("query %q: unpinned %s in pinned section", q, c.ID)
			}
			seen[c.ID]++
		}
		for _, c := range p.Regular {
			if c.Pinned {
				t.Errorf("query %q: pinned %s in regular section", q, c.ID)
			}
			seen[c.ID]++
		}
		for _, c := range records {
			want := 0
			if matches(strings.ToLower(q), c.Name, c.LastMessage) {
				want = 1
			}
			if seen[c.ID] != want {
				t.Errorf("query %q: record %s seen %d times, want %d", q, c.ID, seen[c.ID], want)
			}
		}
	}
}

func TestFilterConversationsCaseInsensitive(t *testing.T) {
	records := sampleConversations()
	for _, q := range []string{"Sarah", "MOCKUPS", "dEsIgN"} {
		a := FilterConversations(records, q)
		b := FilterConversations(records, strings.ToLower(q))
		if ids(a.Pinned, convID) != ids(b.Pinned, convID) || ids(a.Regular, convID) != ids(b.Regular, convID) {
			t.Errorf("query %q and its lower-case form disagree", q)
		}
	}

	lowered := make([]Conversation, len(records))
	for i, c := range records {
		c.Name = strings.ToLower(c.Name)
		c.LastMessage = strings.ToLower(c.LastMessage)
		lowered[i] = c
	}
	a := FilterConversations(records, "design")
	b := FilterConversations(lowered, "design")
	if a.Len() != b.Len() {
		t.Errorf("lower-casing record fields changed membership: %d vs %d", a.Len(), b.Len())
	}
}

func TestFilterConversationsEmptyInput(t *testing.T) {
	p := FilterConversations(nil, "anything")
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func sampleContacts() []Contact {
	seen := time.Date(2026, 10, 19, 11, 0, 0, 0, time.UTC)
	return []Contact{
		{ID: "1", Name: "Sarah Wilson", Handle: "@sarahw", Presence: Online, StatusMessage: "Working on something cool", MutualFriends: 5},
		{ID: "2", Name: "Mike Chen", Handle: "@mikec", Presence: Away, StatusMessage: "In a meeting", MutualFriends: 3},
		{ID: "3", Name: "Emma Davis", Handle: "@emmad", Presence: Busy, StatusMessage: "Do not disturb", MutualFriends: 8},
		{ID: "4", Name: "John Smith", Handle: "@johns", Presence: Offline, LastSeen: &seen, MutualFriends: 2},
		{ID: "5", Name: "Lena Ortiz", Handle: "@lenao", Presence: Online},
	}
}

func TestFilterContacts(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		filter ContactFilter
		want   string
	}{
		{"online only", "", FilterOnline, "1,5"},
		{"all", "", FilterAll, "1,2,3,4,5"},
		{"unknown filter shows all", "", ContactFilter("friends"), "1,2,3,4,5"},
		{"online by handle", "@LEN", FilterOnline, "5"},
		{"all by name", "smith", FilterAll, "4"},
		{"online excludes away match", "mike", FilterOnline, ""},
		{"no match", "nobody", FilterAll, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterContacts(sampleContacts(), tt.query, tt.filter), contactID)
			if got != tt.want {
				t.Errorf("FilterContacts(%q, %s) = %q, want %q", tt.query, tt.filter, got, tt.want)
			}
		})
	}
}

func TestFilterContactsNarrowsToEmpty(t *testing.T) {
	offline := []Contact{{ID: "1", Name: "A", Presence: Offline}, {ID: "2", Name: "B", Presence: Away}}
	got := FilterContacts(offline, "", FilterOnline)
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}

func TestParseContactFilter(t *testing.T) {
	if ParseContactFilter("online") != FilterOnline {
		t.Error("online should parse to FilterOnline")
	}
	for _, s := range []string{"all", "", "ONLINE", "busy"} {
		if ParseContactFilter(s) != FilterAll {
			t.Errorf("ParseContactFilter(%q) should be FilterAll", s)
		}
	}
}

func TestParsePresence(t *testing.T) {
	tests := map[string]Presence{
		"online":  Online,
		"away":    Away,
		"busy":    Busy,
		"offline": Offline,
		"":        Offline,
		"invis":   Offline,
	}
	for in, want := range tests {
		if got := ParsePresence(in); got != want {
			t.Errorf("ParsePresence(%q) = %s, want %s", in, got, want)
		}
	}
	if Presence("invis").Valid() {
		t.Error("invis should not be a valid presence")
	}
}
