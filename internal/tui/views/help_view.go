package views

import (
	"fmt"
	"strings"

	"github.com/matheus3301/huddle/internal/tui/ui"
	"github.com/rivo/tview"
)

// HelpView lists every key and command.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates the help page.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Help ")
	tv.SetTitleColor(theme.TitleColor)

	hv := &HelpView{
		TextView: tv,
		theme:    theme,
	}
	_, _ = fmt.Fprint(hv, hv.render())
	return hv
}

// Name implements ui.Component.
func (hv *HelpView) Name() string { return "Help" }

// Start implements ui.Component.
func (hv *HelpView) Start() {}

// Stop implements ui.Component.
func (hv *HelpView) Stop() {}

// Hints implements ui.Component.
func (hv *HelpView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "esc", Description: "Back"},
	}
}

type helpSection struct {
	title string
	keys  [][2]string
}

var helpSections = []helpSection{
	{"Global", [][2]string{
		{":", "Command mode"},
		{"?", "This help"},
		{"esc", "Back"},
		{"ctrl-r", "Refresh"},
		{"ctrl-c", "Quit"},
	}},
	{"Sign in", [][2]string{
		{"tab", "Next field"},
		{"ctrl-n", "Switch between sign in and sign up"},
	}},
	{"Chats", [][2]string{
		{"enter", "Open conversation"},
		{"d", "Conversation details"},
		{"/", "Filter by name or last message"},
		{"f", "Friends"},
	}},
	{"Thread", [][2]string{
		{"i", "Focus composer"},
		{"enter", "Send draft (drafts are discarded)"},
		{"esc", "Leave composer"},
	}},
	{"Friends", [][2]string{
		{"tab", "Toggle Online / All"},
		{"a / x", "Accept / decline request"},
		{"/", "Filter by name or handle"},
	}},
	{"Commands", [][2]string{
		{":chats", "Conversation list"},
		{":friends [online|all]", "Friends list"},
		{":invite", "Invite QR code"},
		{":signout", "Sign out"},
		{":help", "This help"},
		{":quit", "Quit"},
	}},
}

func (hv *HelpView) render() string {
	key := ui.Tag(hv.theme.MenuKeyColor)
	var b strings.Builder
	for _, s := range helpSections {
		fmt.Fprintf(&b, "\n  [::b]%s[-:-:-]\n\n", s.title)
		for _, k := range s.keys {
			fmt.Fprintf(&b, "  [%s]%-24s[-] %s\n", key, tview.Escape(k[0]), k[1])
		}
	}
	return b.String()
}
