package views

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matheus3301/huddle/internal/fixture"
	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/rpc"
	"github.com/matheus3301/huddle/internal/thread"
	"github.com/matheus3301/huddle/internal/tui/ui"
)

var refNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestConversationListSections(t *testing.T) {
	cl := NewConversationList(ui.DefaultTheme())
	set := fixture.Sample(refNow)
	cl.Update(roster.BuildConversationView(set.Conversations, "", refNow), "")

	get := func(r, c int) string { return cl.GetCell(r, c).Text }
	if got := get(0, colName); got != roster.HeaderPinned {
		t.Errorf("row 0 = %q, want pinned header", got)
	}
	if got := get(2, colName); got != roster.HeaderAllChats {
		t.Errorf("row 2 = %q, want all chats header", got)
	}
	if cl.GetRowCount() != 7 {
		t.Errorf("rows = %d, want 7", cl.GetRowCount())
	}
	if cl.Selected() != fixture.GeneralChatID {
		t.Errorf("Selected() = %q, want first conversation", cl.Selected())
	}
	if got := get(1, colBadge); got != " 3 " {
		t.Errorf("badge = %q", got)
	}
	if got := get(1, colName); !strings.Contains(got, "24 members") {
		t.Errorf("group name cell = %q", got)
	}
	if got := get(6, colName); !strings.Contains(got, "muted") {
		t.Errorf("muted name cell = %q", got)
	}
	if got := get(3, colMarker); got != " ●" {
		t.Errorf("online marker = %q", got)
	}

	cl.Select(4, 0)
	cl.Update(roster.BuildConversationView(set.Conversations, "", refNow), "")
	if cl.Selected() != "3" {
		t.Errorf("selection moved to %q after refresh", cl.Selected())
	}
}

func TestConversationListFilter(t *testing.T) {
	cl := NewConversationList(ui.DefaultTheme())
	set := fixture.Sample(refNow)

	cl.Update(roster.BuildConversationView(set.Conversations, "emma", refNow), "emma")
	if cl.GetCell(0, colName).Text == roster.HeaderAllChats {
		t.Error("no header expected without pinned matches")
	}
	if cl.Selected() != "4" {
		t.Errorf("Selected() = %q", cl.Selected())
	}
	if !strings.Contains(cl.GetTitle(), "</emma>") {
		t.Errorf("title = %q", cl.GetTitle())
	}

	cl.Update(roster.BuildConversationView(set.Conversations, "zzz", refNow), "zzz")
	if cl.GetCell(0, colName).Text != "No conversations match" || cl.Selected() != "" {
		t.Errorf("empty filter row = %q", cl.GetCell(0, colName).Text)
	}
}

func TestMessageThreadRender(t *testing.T) {
	mt := NewMessageThread(ui.DefaultTheme())
	set := fixture.Sample(refNow)
	items := thread.Build(set.Messages, refNow)

	out := mt.renderItems(items)
	if strings.Count(out, "Today") != 1 {
		t.Errorf("want one day separator:\n%s", out)
	}
	for _, want := range []string{"Sarah Wilson", "You", "11:59 AM", "👋 3", "FitTracker"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if strings.Contains(out, "Alex Johnson") {
		t.Error("own messages should be labelled You")
	}

	if got := mt.renderItems(nil); !strings.Contains(got, "No messages yet") {
		t.Errorf("empty thread = %q", got)
	}

	row := roster.ViewBuilder{}.Row(set.Conversations[0], refNow)
	header := mt.renderHeader(&rpc.ListMessagesResponse{Conversation: row})
	if !strings.Contains(header, "General Chat") || !strings.Contains(header, "24 members") {
		t.Errorf("header = %q", header)
	}
	direct := roster.ViewBuilder{}.Row(set.Conversations[1], refNow)
	if header := mt.renderHeader(&rpc.ListMessagesResponse{Conversation: direct}); !strings.Contains(header, "online") {
		t.Errorf("direct header = %q", header)
	}
}

func TestMessageThreadStopClearsDraft(t *testing.T) {
	mt := NewMessageThread(ui.DefaultTheme())
	mt.Composer().SetText("half written")
	mt.Stop()
	if mt.Composer().GetText() != "" {
		t.Error("Stop() kept the draft")
	}
}

func TestFriendsList(t *testing.T) {
	fl := NewFriendsList(ui.DefaultTheme())
	set := fixture.Sample(refNow)

	fl.Update(roster.BuildContactView(set.Contacts, set.Requests, "", roster.FilterAll, refNow), "")
	id, name, ok := fl.SelectedRequest()
	if !ok || id != "1" || name != "Alex Rodriguez" {
		t.Errorf("SelectedRequest() = %q %q %v", id, name, ok)
	}
	if !strings.Contains(fl.GetCell(0, 1).Text, "All (4)") {
		t.Errorf("tabs = %q", fl.GetCell(0, 1).Text)
	}

	// Tabs, requests header, two requests, contacts header, four contacts.
	if fl.GetRowCount() != 9 {
		t.Errorf("rows = %d, want 9", fl.GetRowCount())
	}
	fl.Select(8, 0)
	if _, _, ok := fl.SelectedRequest(); ok {
		t.Error("contact row reported as request")
	}
	if got := fl.GetCell(8, 3).Text; !strings.Contains(got, "Last seen") {
		t.Errorf("offline subtitle = %q", got)
	}

	fl.Update(roster.BuildContactView(set.Contacts, nil, "nobody", roster.FilterOnline, refNow), "nobody")
	if got := fl.GetCell(2, 1).Text; got != "No friends match" {
		t.Errorf("empty note = %q", got)
	}
}

func TestSignInView(t *testing.T) {
	sv := NewSignInView(ui.DefaultTheme())
	if sv.Active() != FormSignIn {
		t.Fatalf("Active() = %q", sv.Active())
	}
	sv.Toggle()
	if sv.Active() != FormSignUp {
		t.Errorf("Toggle() -> %q", sv.Active())
	}
	sv.Toggle()

	var gotEmail, gotPass string
	calls := 0
	sv.SetOnSignIn(func(e, p string) {
		calls++
		gotEmail, gotPass = e, p
	})
	sv.email.SetText("jane@example.com")
	sv.password.SetText("secret")

	sv.SetBusy("Signing in...")
	sv.submitSignIn()
	if calls != 0 {
		t.Error("submit while busy reached the callback")
	}
	sv.SetError(errors.New("bad"))
	sv.submitSignIn()
	if calls != 1 || gotEmail != "jane@example.com" || gotPass != "secret" {
		t.Errorf("callback got %q %q (%d calls)", gotEmail, gotPass, calls)
	}

	var req *rpc.SignUpRequest
	sv.SetOnSignUp(func(r *rpc.SignUpRequest) { req = r })
	sv.username.SetText("janed")
	sv.newPass.SetText("a")
	sv.confirmNew.SetText("b")
	sv.submitSignUp()
	if req == nil || req.Username != "janed" || req.ConfirmPassword != "b" {
		t.Errorf("sign-up request = %+v", req)
	}

	sv.Stop()
	if sv.password.GetText() != "" || sv.newPass.GetText() != "" || sv.email.GetText() == "" {
		t.Error("Stop() should clear only passwords")
	}
}

func TestInviteLink(t *testing.T) {
	tests := map[string]string{
		"@alexj": "huddle://add/alexj",
		"alexj":  "huddle://add/alexj",
		" @x_y ": "huddle://add/x_y",
	}
	for in, want := range tests {
		if got := InviteLink(in); got != want {
			t.Errorf("InviteLink(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderQR(t *testing.T) {
	out := renderQR(InviteLink("@alexj"))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) < 10 {
		t.Fatalf("QR has %d lines", len(lines))
	}
	if !strings.ContainsAny(out, "█▀▄") {
		t.Error("QR has no blocks")
	}
	width := len([]rune(lines[0]))
	for i, l := range lines {
		if len([]rune(l)) != width {
			t.Errorf("line %d width %d, want %d", i, len([]rune(l)), width)
		}
	}
}

func TestConversationInfoRender(t *testing.T) {
	ci := NewConversationInfo(ui.DefaultTheme(), "en_GB")
	set := fixture.Sample(refNow)
	out := ci.render(&set.Conversations[0], refNow)
	for _, want := range []string{"Group, 24 members", "pinned", "General Chat", "now"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	out = ci.render(&set.Conversations[1], refNow)
	if !strings.Contains(out, "Direct message") || !strings.Contains(out, "online") {
		t.Errorf("direct render:\n%s", out)
	}
}

func TestStatusBarLine(t *testing.T) {
	sb := NewStatusBar(ui.DefaultTheme())
	if got := sb.line(refNow); !strings.Contains(got, "daemon unavailable") || !strings.HasSuffix(got, "12:00") {
		t.Errorf("line = %q", got)
	}
	sb.SetStatus(&rpc.GetStatusResponse{Profile: "work", Status: "SIGNED_IN", Account: &rpc.Account{Handle: "@jane"}})
	got := sb.line(refNow)
	for _, want := range []string{"work", "SIGNED_IN", "@jane", "12:00"} {
		if !strings.Contains(got, want) {
			t.Errorf("line %q missing %q", got, want)
		}
	}
}

func TestHelpListsCommands(t *testing.T) {
	out := NewHelpView(ui.DefaultTheme()).render()
	for _, want := range []string{":invite", ":signout", "ctrl-n", "Toggle Online / All"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"👍🏽", "👍"},
		{"👨\u200d👩", "👨👩"},
		{"❤\ufe0f", "❤"},
		{"a\x07b", "ab"},
		{"line\nbreak", "line\nbreak"},
	}
	for _, tt := range tests {
		if got := sanitize(tt.in); got != tt.want {
			t.Errorf("sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := oneLine("  two\nlines [red] "); got != "two lines [red[]" {
		t.Errorf("oneLine = %q", got)
	}
}
