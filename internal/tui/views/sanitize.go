package views

import (
	"strings"

	"github.com/rivo/tview"
)

// sanitize drops codepoints tcell cannot lay out in a single cell run:
// skin tone modifiers, zero width joiners and variation selectors. A
// thumbs-up with a skin tone becomes a plain two-cell thumbs-up.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 0x1F3FB && r <= 0x1F3FF,
			r == 0x200D,
			r >= 0xFE00 && r <= 0xFE0F,
			r >= 0xE0100 && r <= 0xE01EF:
			return -1
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7F:
			return -1
		}
		return r
	}, s)
}

// oneLine prepares s for a table cell or header: sanitized, line breaks
// folded into spaces and tview tags escaped.
func oneLine(s string) string {
	s = sanitize(s)
	s = strings.Join(strings.Fields(s), " ")
	return tview.Escape(s)
}
