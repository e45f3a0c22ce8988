package roster

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
)

var refNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestFormatRelativeTime(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"same instant", 0, "now"},
		{"seconds", 59 * time.Second, "now"},
		{"ninety seconds", 90 * time.Second, "1m"},
		{"just under an hour", 59*time.Minute + 59*time.Second, "59m"},
		{"one hour", time.Hour, "1h"},
		{"five hours", 5 * time.Hour, "5h"},
		{"just under a day", 23*time.Hour + 59*time.Minute, "23h"},
		{"two days", 48 * time.Hour, "Oct 17"},
		{"future", -time.Minute, "now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRelativeTime(refNow.Add(-tt.elapsed), refNow)
			if got != tt.want {
				t.Errorf("FormatRelativeTime(now-%s) = %q, want %q", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestRelativeTimeDateBranchIsNotHourBased(t *testing.T) {
	got := FormatRelativeTime(refNow.Add(-48*time.Hour), refNow)
	if strings.HasSuffix(got, "h") || strings.HasSuffix(got, "m") || got == "now" {
		t.Errorf("48h ago rendered as %q, want a calendar date", got)
	}
}

func TestFormatterLocale(t *testing.T) {
	f := NewFormatter("de_DE")
	if f.Locale != "de_DE" {
		t.Fatalf("Locale = %q, want de_DE", f.Locale)
	}
	got := f.RelativeTime(refNow.Add(-72*time.Hour), refNow)
	if !strings.HasPrefix(got, "16 ") {
		t.Errorf("de_DE date = %q, want day first", got)
	}
	// Short spans do not depend on the locale.
	if got := f.RelativeTime(refNow.Add(-5*time.Hour), refNow); got != "5h" {
		t.Errorf("de_DE 5h = %q, want 5h", got)
	}
}

func TestShortDateLayouts(t *testing.T) {
	date := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		locale string
		want   string
	}{
		{"en_US", "Oct 17"},
		{"en_GB", "17 Oct"},
		{"de_DE", "17 Okt"},
		{"ja_JP", "10月17日"},
		{"zh_CN", "10月17日"},
		{"zh_TW", "10月17日"},
		{"ko_KR", "10월 17일"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := NewFormatter(tt.locale).ShortDate(date); got != tt.want {
				t.Errorf("ShortDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewFormatterUnknownLocale(t *testing.T) {
	if f := NewFormatter("xx_YY"); f.Locale != DefaultLocale {
		t.Errorf("Locale = %q, want %q", f.Locale, DefaultLocale)
	}
}

func TestFormatLastSeen(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "Just now"},
		{59 * time.Minute, "Just now"},
		{time.Hour, "1h ago"},
		{23*time.Hour + 59*time.Minute, "23h ago"},
		{24 * time.Hour, "1d ago"},
		{71 * time.Hour, "2d ago"},
		{10 * 24 * time.Hour, "10d ago"},
	}
	for _, tt := range tests {
		if got := FormatLastSeen(refNow.Add(-tt.elapsed), refNow); got != tt.want {
			t.Errorf("FormatLastSeen(now-%s) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name         string
		want         string
		conversation string
	}{
		{"Sarah Wilson", "SW", "SW"},
		{"Madonna", "M", "M"},
		{"Mary Jane Watson", "MJW", "MJ"},
		{"ana maria", "am", "am"},
		{"  spaced   out  ", "so", "so"},
		{"Émile Zola", "ÉZ", "ÉZ"},
		{"", "", ""},
	}
	for _, tt := range tests {
		if got := Initials(tt.name); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
		}
		if got := ConversationInitials(tt.name); got != tt.conversation {
			t.Errorf("ConversationInitials(%q) = %q, want %q", tt.name, got, tt.conversation)
		}
	}
}

func TestUnreadBadge(t *testing.T) {
	tests := map[int]string{
		-1:  "",
		0:   "",
		1:   "1",
		99:  "99",
		100: "99+",
	}
	for n, want := range tests {
		if got := UnreadBadge(n); got != want {
			t.Errorf("UnreadBadge(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("anything", 0); got != "anything" {
		t.Errorf("Truncate with width 0 = %q", got)
	}
	long := "That sounds awesome! I need to get back into a workout routine myself..."
	got := Truncate(long, 20)
	if runewidth.StringWidth(got) > 20 {
		t.Errorf("Truncate width = %d, want <= 20", runewidth.StringWidth(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Truncate(%q) = %q, want ellipsis", long, got)
	}
}
