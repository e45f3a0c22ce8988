package roster

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/mattn/go-runewidth"
)

// DefaultLocale is used when no locale is configured or the configured one is unknown.
const DefaultLocale = monday.LocaleEnUS

// Formatter renders time labels in a given locale. Only the calendar-date
// branch of RelativeTime depends on the locale.
type Formatter struct {
	Locale monday.Locale
}

// NewFormatter returns a Formatter for locale, falling back to DefaultLocale.
func NewFormatter(locale string) Formatter {
	for _, l := range monday.ListLocales() {
		if string(l) == locale {
			return Formatter{Locale: l}
		}
	}
	return Formatter{Locale: DefaultLocale}
}

var defaultFormatter = Formatter{Locale: DefaultLocale}

// FormatRelativeTime renders t relative to now in the default locale.
func FormatRelativeTime(t, now time.Time) string {
	return defaultFormatter.RelativeTime(t, now)
}

// RelativeTime renders "now", "{m}m", "{h}h" or an abbreviated month/day.
func (f Formatter) RelativeTime(t, now time.Time) string {
	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Hour:
		m := int(elapsed / time.Minute)
		if m < 1 {
			return "now"
		}
		return strconv.Itoa(m) + "m"
	case elapsed < 24*time.Hour:
		return strconv.Itoa(int(elapsed/time.Hour)) + "h"
	default:
		return f.ShortDate(t)
	}
}

// ShortDate renders month abbreviation and day number the way the locale
// writes a short month/day date.
func (f Formatter) ShortDate(t time.Time) string {
	l := f.locale()
	layout, ok := shortDateLayouts[l]
	if !ok {
		layout = "2 Jan"
	}
	return monday.Format(t, layout, l)
}

func (f Formatter) locale() monday.Locale {
	if f.Locale == "" {
		return DefaultLocale
	}
	return f.Locale
}

// shortDateLayouts holds the locales whose short date is not "day month".
// monday abbreviates months as "10月" for ja_JP but as a bare "10" for zh_*,
// hence the two CJK layouts. Other locales get "2 Jan" with monday's month
// abbreviation and no locale punctuation: de_DE renders "17 Okt" where a
// browser writes "17. Okt.".
var shortDateLayouts = map[monday.Locale]string{
	monday.LocaleEnUS: "Jan 2",
	monday.LocaleJaJP: "Jan2日",
	monday.LocaleZhCN: "Jan月2日",
	monday.LocaleZhTW: "Jan月2日",
	monday.LocaleZhHK: "Jan月2日",
	monday.LocaleKoKR: "Jan 2일",
}

// FormatLastSeen renders how long ago an offline contact was last seen.
func FormatLastSeen(t, now time.Time) string {
	hours := int(now.Sub(t) / time.Hour)
	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	default:
		return fmt.Sprintf("%dd ago", hours/24)
	}
}

// Initials concatenates the first rune of every word in name, as written.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteRune(r[0])
	}
	return b.String()
}

// ConversationInitials is Initials capped at two runes. Contact and request
// avatars are not capped.
func ConversationInitials(name string) string {
	r := []rune(Initials(name))
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r)
}

// UnreadBadge renders an unread count: empty for zero, capped at "99+".
func UnreadBadge(n int) string {
	switch {
	case n <= 0:
		return ""
	case n > 99:
		return "99+"
	default:
		return strconv.Itoa(n)
	}
}

// Truncate shortens s to at most width terminal cells, ending with an
// ellipsis when cut. A non-positive width leaves s alone.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
