package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleEventPrefersView(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.AddGlobal(&Action{Name: "help", Key: tcell.KeyRune, Rune: '?', Handler: func() { got = append(got, "global-help") }})
	r.AddGlobal(&Action{Name: "quit", Key: tcell.KeyCtrlC, Handler: func() { got = append(got, "quit") }})
	r.AddView("chats", &Action{Name: "chat-help", Key: tcell.KeyRune, Rune: '?', Handler: func() { got = append(got, "chat-help") }})

	if !r.HandleEvent("chats", runeEvent('?')) {
		t.Fatal("? not handled on chats")
	}
	if !r.HandleEvent("friends", runeEvent('?')) {
		t.Fatal("? not handled on friends")
	}
	if !r.HandleEvent("friends", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Fatal("ctrl-c not handled")
	}
	if r.HandleEvent("chats", runeEvent('x')) {
		t.Error("unbound key reported as handled")
	}

	want := []string{"chat-help", "global-help", "quit"}
	if len(got) != len(want) {
		t.Fatalf("handlers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("handler %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestHintsOrderAndShadowing(t *testing.T) {
	r := NewRegistry()
	r.AddGlobal(&Action{Name: "help", Key: tcell.KeyRune, Rune: '?', Description: "Help", Visible: true})
	r.AddGlobal(&Action{Name: "cmd", Key: tcell.KeyRune, Rune: ':', Description: "Command", Visible: true})
	r.AddGlobal(&Action{Name: "hidden", Key: tcell.KeyCtrlR, Description: "Refresh"})
	r.AddView("thread", &Action{Name: "back", Key: tcell.KeyEscape, Description: "Back", Visible: true})
	r.AddView("thread", &Action{Name: "react-help", Key: tcell.KeyRune, Rune: '?', Description: "Thread help", Visible: true})

	hints := r.Hints("thread")
	want := []struct{ key, desc string }{
		{"esc", "Back"},
		{"?", "Thread help"},
		{":", "Command"},
	}
	if len(hints) != len(want) {
		t.Fatalf("hints = %+v", hints)
	}
	for i, w := range want {
		if hints[i].Key != w.key || hints[i].Description != w.desc {
			t.Errorf("hint %d = %+v, want %s %s", i, hints[i], w.key, w.desc)
		}
	}
}

func TestAddReplacesByName(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.AddGlobal(&Action{Name: "quit", Key: tcell.KeyRune, Rune: 'q', Handler: func() { calls += 10 }})
	r.AddGlobal(&Action{Name: "quit", Key: tcell.KeyRune, Rune: 'q', Handler: func() { calls++ }})
	r.HandleEvent("any", runeEvent('q'))
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{Action{Key: tcell.KeyRune, Rune: '/'}, "/"},
		{Action{Key: tcell.KeyEnter}, "enter"},
		{Action{Key: tcell.KeyCtrlN}, "ctrl-n"},
		{Action{Key: tcell.KeyTab}, "tab"},
	}
	for _, tt := range tests {
		if got := tt.a.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}
