package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/huddle/internal/tui/model"
	"github.com/rivo/tview"
)

// FlashBar displays the current flash message under the page area.
type FlashBar struct {
	*tview.TextView
	theme *Theme
}

// NewFlashBar creates an empty flash bar.
func NewFlashBar(theme *Theme) *FlashBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)

	return &FlashBar{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders msg, or clears the bar when msg is nil.
func (fb *FlashBar) Update(msg *model.FlashMessage) {
	fb.Clear()
	if msg == nil {
		return
	}
	_, _ = fmt.Fprintf(fb, " [%s]%s[-]", Tag(fb.levelColor(msg.Level)), tview.Escape(msg.Text))
}

func (fb *FlashBar) levelColor(l model.FlashLevel) tcell.Color {
	switch l {
	case model.FlashWarn:
		return fb.theme.FlashWarnColor
	case model.FlashErr:
		return fb.theme.FlashErrColor
	default:
		return fb.theme.FlashInfoColor
	}
}
