package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/tui/ui"
	"github.com/rivo/tview"
)

// ConversationInfo shows a conversation's stored record.
type ConversationInfo struct {
	*tview.TextView
	theme *ui.Theme
	dates roster.Formatter
}

// NewConversationInfo creates the details page. Dates use the locale's
// month and day order.
func NewConversationInfo(theme *ui.Theme, locale string) *ConversationInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Details ")
	tv.SetTitleColor(theme.TitleColor)

	return &ConversationInfo{
		TextView: tv,
		theme:    theme,
		dates:    roster.NewFormatter(locale),
	}
}

// Name implements ui.Component.
func (ci *ConversationInfo) Name() string { return "Details" }

// Start implements ui.Component.
func (ci *ConversationInfo) Start() {}

// Stop implements ui.Component.
func (ci *ConversationInfo) Stop() {}

// Hints implements ui.Component.
func (ci *ConversationInfo) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "enter", Description: "Open"},
		{Key: "esc", Description: "Back"},
	}
}

// Update renders c as of now.
func (ci *ConversationInfo) Update(c *roster.Conversation, now time.Time) {
	ci.Clear()
	if c == nil {
		return
	}
	ci.SetTitle(" " + oneLine(c.Name) + " ")
	_, _ = fmt.Fprint(ci, ci.render(c, now))
}

func (ci *ConversationInfo) render(c *roster.Conversation, now time.Time) string {
	kind := "Direct message"
	if c.Group {
		kind = "Group"
		if c.MemberCount > 0 {
			kind = fmt.Sprintf("Group, %d members", c.MemberCount)
		}
	}
	var flags []string
	if c.Pinned {
		flags = append(flags, "pinned")
	}
	if c.Muted {
		flags = append(flags, "muted")
	}
	if !c.Group && c.Online {
		flags = append(flags, "online")
	}
	if len(flags) == 0 {
		flags = append(flags, "-")
	}

	rows := [][2]string{
		{"Name", c.Name},
		{"Id", c.ID},
		{"Type", kind},
		{"Unread", fmt.Sprintf("%d", c.UnreadCount)},
		{"Last active", fmt.Sprintf("%s (%s, %s)", ci.dates.RelativeTime(c.LastActivity, now), ci.dates.ShortDate(c.LastActivity), c.LastActivity.Format("15:04"))},
		{"Flags", strings.Join(flags, ", ")},
		{"Last message", c.LastMessage},
	}
	label, value := ui.Tag(ci.theme.FgColor), ui.Tag(ci.theme.CounterColor)
	var b strings.Builder
	b.WriteByte('\n')
	for _, r := range rows {
		fmt.Fprintf(&b, " [%s::b]%-13s[-:-:-] [%s]%s[-]\n", label, r[0]+":", value, oneLine(r[1]))
	}
	return b.String()
}
