package ui

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/rpc"
	"github.com/rivo/tview"
)

func TestPagesStack(t *testing.T) {
	p := NewPages()
	for _, n := range []string{"chats", "thread", "help"} {
		p.AddPage(n, tview.NewBox(), true, false)
	}
	var changes [][]string
	p.SetOnChange(func(s []string) { changes = append(changes, s) })

	p.Reset("chats")
	p.Push("thread")
	p.Push("thread")
	if got := p.Stack(); !slices.Equal(got, []string{"chats", "thread"}) {
		t.Fatalf("stack = %v", got)
	}
	if len(changes) != 2 {
		t.Errorf("onChange fired %d times, want 2", len(changes))
	}

	p.Push("help")
	p.Push("chats")
	if got := p.Stack(); !slices.Equal(got, []string{"chats"}) {
		t.Errorf("pushing the root should unwind, stack = %v", got)
	}

	if got := p.Pop(); got != "" {
		t.Errorf("Pop() at root = %q, want empty", got)
	}
	p.Push("help")
	if got := p.Pop(); got != "help" || p.Current() != "chats" || p.Depth() != 1 {
		t.Errorf("Pop() = %q, current = %q", got, p.Current())
	}
}

func TestHistory(t *testing.T) {
	var h History
	if _, ok := h.Prev(); ok {
		t.Fatal("Prev() on empty history should fail")
	}

	h.Add("chats")
	h.Add("friends")
	h.Add("friends")
	h.Add("")

	if s, ok := h.Prev(); !ok || s != "friends" {
		t.Errorf("Prev() = %q, %v", s, ok)
	}
	if s, ok := h.Prev(); !ok || s != "chats" {
		t.Errorf("Prev() = %q, %v", s, ok)
	}
	if _, ok := h.Prev(); ok {
		t.Error("Prev() past oldest entry should fail")
	}
	if s, _ := h.Next(); s != "friends" {
		t.Errorf("Next() = %q", s)
	}
	if s, ok := h.Next(); ok || s != "" {
		t.Errorf("Next() past newest = %q, %v", s, ok)
	}

	for i := 0; i < MaxHistory+10; i++ {
		h.Add(strings.Repeat("x", i+1))
	}
	if len(h.entries) != MaxHistory {
		t.Errorf("history length = %d, want %d", len(h.entries), MaxHistory)
	}
}

func TestLayoutHints(t *testing.T) {
	hints := []MenuHint{
		{Key: "enter", Description: "Open"},
		{Key: "/", Description: "Filter"},
		{Key: "?", Description: "Help"},
	}
	lines := layoutHints(hints, 2, "purple")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "[purple::b]<enter>[-:-:-] Open") || !strings.Contains(lines[0], "<?>") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if strings.Contains(lines[1], "<?>") || strings.HasSuffix(lines[1], " ") {
		t.Errorf("line 1 = %q", lines[1])
	}

	if got := layoutHints(nil, 5, "x"); got != nil {
		t.Errorf("no hints = %v", got)
	}
	if got := layoutHints(hints, 5, "x"); len(got) != 3 {
		t.Errorf("short list should use %d rows, got %d", 3, len(got))
	}
}

func TestCrumbsRender(t *testing.T) {
	c := NewCrumbs(DefaultTheme())
	got := c.render([]string{"Chats", "Thread"})
	if !strings.Contains(got, " chats ") || !strings.Contains(got, ":b] thread ") {
		t.Errorf("render = %q", got)
	}
	if c.render(nil) != "" {
		t.Error("empty stack should render nothing")
	}
}

func TestProfileInfoRender(t *testing.T) {
	pi := NewProfileInfo(DefaultTheme())
	if !strings.Contains(pi.render(nil), "connecting") {
		t.Error("nil status should render connecting")
	}
	got := pi.render(&rpc.GetStatusResponse{
		Profile:       "work",
		Status:        "SIGNED_IN",
		UptimeMs:      (90 * time.Minute).Milliseconds(),
		Account:       &rpc.Account{Handle: "@jane"},
		Conversations: 5,
		Contacts:      4,
		Requests:      2,
	})
	for _, want := range []string{"work", "@jane", "SIGNED_IN", "4 (+2)", "1h30m"} {
		if !strings.Contains(got, want) {
			t.Errorf("render missing %q: %s", want, got)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0m"},
		{59 * time.Second, "0m"},
		{45 * time.Minute, "45m"},
		{2*time.Hour + 5*time.Minute, "2h5m"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestThemePresenceColor(t *testing.T) {
	th := DefaultTheme()
	if th.PresenceColor(roster.Online) != th.OnlineColor || th.PresenceColor("bogus") != th.OfflineColor {
		t.Error("presence colors mismatched")
	}
	if Tag(tcell.ColorRed) != "red" {
		t.Errorf("Tag(red) = %q", Tag(tcell.ColorRed))
	}
	if got := Tag(tcell.NewRGBColor(1, 2, 3)); got != "#010203" {
		t.Errorf("Tag(rgb) = %q", got)
	}
}
