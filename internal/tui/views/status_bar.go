package views

import (
	"fmt"
	"time"

	"github.com/matheus3301/huddle/internal/rpc"
	"github.com/matheus3301/huddle/internal/status"
	"github.com/matheus3301/huddle/internal/tui/ui"
	"github.com/rivo/tview"
)

// StatusBar is the bottom line: profile, sign-in state, account and clock.
type StatusBar struct {
	*tview.TextView
	theme *ui.Theme
	st    *rpc.GetStatusResponse
}

// NewStatusBar creates an empty status bar.
func NewStatusBar(theme *ui.Theme) *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)

	return &StatusBar{TextView: tv, theme: theme}
}

// SetStatus records the latest daemon status.
func (sb *StatusBar) SetStatus(st *rpc.GetStatusResponse) {
	sb.st = st
}

// Render redraws the bar at now.
func (sb *StatusBar) Render(now time.Time) {
	sb.Clear()
	_, _ = fmt.Fprint(sb, sb.line(now))
}

func (sb *StatusBar) line(now time.Time) string {
	clock := now.Format("15:04")
	if sb.st == nil {
		return fmt.Sprintf(" [%s]daemon unavailable[-] | %s", ui.Tag(sb.theme.FlashErrColor), clock)
	}

	color := sb.theme.OfflineColor
	switch status.State(sb.st.Status) {
	case status.SignedIn:
		color = sb.theme.OnlineColor
	case status.SigningIn:
		color = sb.theme.AwayColor
	}
	line := fmt.Sprintf(" [::b]%s[-:-:-] | [%s]%s[-]", tview.Escape(sb.st.Profile), ui.Tag(color), sb.st.Status)
	if a := sb.st.Account; a != nil {
		line += " | " + tview.Escape(a.Handle)
	}
	return line + " | " + clock
}
