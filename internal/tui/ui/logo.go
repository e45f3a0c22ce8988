package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// Logo displays the huddle wordmark in the header.
type Logo struct {
	*tview.TextView
	theme *Theme
}

// NewLogo creates the logo.
func NewLogo(theme *Theme) *Logo {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(1, 0, 1, 0)

	l := &Logo{
		TextView: tv,
		theme:    theme,
	}
	title, fg := Tag(theme.TitleColor), Tag(theme.MutedFgColor)
	_, _ = fmt.Fprintf(l,
		"[%s::b]╷ ╷╷ ╷┌┬┐┌┬┐╷  ┌─╴[-:-:-]\n"+
			"[%s::b]├─┤│ │ ││ │││  ├╴ [-:-:-]\n"+
			"[%s::b]╵ ╵└─┘╶┴┘╶┴┘└─╴└─╴[-:-:-]\n"+
			"[%s]chat, in a terminal[-:-:-]",
		title, title, title, fg,
	)
	return l
}
