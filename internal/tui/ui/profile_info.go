package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/matheus3301/huddle/internal/rpc"
	"github.com/rivo/tview"
)

// ProfileInfo shows the daemon status in the header.
type ProfileInfo struct {
	*tview.TextView
	theme *Theme
}

// NewProfileInfo creates the header status panel.
func NewProfileInfo(theme *Theme) *ProfileInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 1, 1)

	return &ProfileInfo{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders st. A nil status means the daemon has not answered yet.
func (pi *ProfileInfo) Update(st *rpc.GetStatusResponse) {
	pi.Clear()
	_, _ = fmt.Fprint(pi, pi.render(st))
}

func (pi *ProfileInfo) render(st *rpc.GetStatusResponse) string {
	if st == nil {
		return fmt.Sprintf("[%s]connecting...[-]", Tag(pi.theme.MutedFgColor))
	}
	account := "-"
	if st.Account != nil {
		account = st.Account.Handle
	}
	rows := [][2]string{
		{"Profile", st.Profile},
		{"Account", account},
		{"Status", st.Status},
		{"Chats", fmt.Sprintf("%d", st.Conversations)},
		{"Friends", fmt.Sprintf("%d (+%d)", st.Contacts, st.Requests)},
		{"Uptime", formatDuration(time.Duration(st.UptimeMs) * time.Millisecond)},
	}
	label, value := Tag(pi.theme.FgColor), Tag(pi.theme.CounterColor)
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%s::b]%-8s[-:-:-] [%s]%s[-]", label, r[0]+":", value, tview.Escape(r[1]))
	}
	return b.String()
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
