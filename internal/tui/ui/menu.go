package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

// MenuRows is the number of hint lines the header has room for.
const MenuRows = 5

// Menu displays keyboard shortcut hints in columns beside the logo.
type Menu struct {
	*tview.TextView
	theme *Theme
}

// NewMenu creates a new menu hint area.
func NewMenu(theme *Theme) *Menu {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 2, 0)

	return &Menu{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders hints top to bottom, then left to right.
func (m *Menu) Update(hints []MenuHint) {
	m.Clear()
	key := Tag(m.theme.MenuKeyColor)
	for _, line := range layoutHints(hints, MenuRows, key) {
		_, _ = fmt.Fprintln(m, line)
	}
}

// layoutHints arranges hints into at most rows lines, padding each column to
// its widest entry.
func layoutHints(hints []MenuHint, rows int, keyColor string) []string {
	if len(hints) == 0 || rows <= 0 {
		return nil
	}
	if len(hints) < rows {
		rows = len(hints)
	}
	lines := make([]strings.Builder, rows)
	for start := 0; start < len(hints); start += rows {
		end := min(start+rows, len(hints))
		col := hints[start:end]

		width := 0
		for _, h := range col {
			width = max(width, plainWidth(h))
		}
		for i, h := range col {
			pad := width - plainWidth(h)
			if end < len(hints) {
				pad += 2
			}
			fmt.Fprintf(&lines[i], "[%s::b]<%s>[-:-:-] %s%s", keyColor, h.Key, h.Description, strings.Repeat(" ", pad))
		}
	}
	out := make([]string, rows)
	for i := range lines {
		out[i] = strings.TrimRight(lines[i].String(), " ")
	}
	return out
}

func plainWidth(h MenuHint) int {
	return runewidth.StringWidth("<"+h.Key+"> ") + runewidth.StringWidth(h.Description)
}
