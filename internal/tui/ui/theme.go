package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/huddle/internal/roster"
)

// Theme holds the fixed huddle palette.
type Theme struct {
	BgColor           tcell.Color
	FgColor           tcell.Color
	MutedFgColor      tcell.Color
	BorderColor       tcell.Color
	BorderFocusColor  tcell.Color
	TableHeaderFg     tcell.Color
	TableCursorFg     tcell.Color
	TableCursorBg     tcell.Color
	SectionColor      tcell.Color
	CrumbActiveFg     tcell.Color
	CrumbActiveBg     tcell.Color
	CrumbInactiveFg   tcell.Color
	CrumbInactiveBg   tcell.Color
	MenuKeyColor      tcell.Color
	TitleColor        tcell.Color
	CounterColor      tcell.Color
	BadgeColor        tcell.Color
	OwnMessageColor   tcell.Color
	DayColor          tcell.Color
	ReactedColor      tcell.Color
	FlashInfoColor    tcell.Color
	FlashWarnColor    tcell.Color
	FlashErrColor     tcell.Color
	PromptBorderColor tcell.Color

	OnlineColor  tcell.Color
	AwayColor    tcell.Color
	BusyColor    tcell.Color
	OfflineColor tcell.Color
}

// DefaultTheme returns the dark indigo palette huddle ships with.
func DefaultTheme() *Theme {
	return &Theme{
		BgColor:           tcell.ColorBlack,
		FgColor:           tcell.ColorWhiteSmoke,
		MutedFgColor:      tcell.ColorGray,
		BorderColor:       tcell.ColorSlateBlue,
		BorderFocusColor:  tcell.ColorMediumPurple,
		TableHeaderFg:     tcell.ColorLightSlateGray,
		TableCursorFg:     tcell.ColorWhite,
		TableCursorBg:     tcell.ColorRebeccaPurple,
		SectionColor:      tcell.ColorLightSlateGray,
		CrumbActiveFg:     tcell.ColorBlack,
		CrumbActiveBg:     tcell.ColorMediumPurple,
		CrumbInactiveFg:   tcell.ColorBlack,
		CrumbInactiveBg:   tcell.ColorSlateGray,
		MenuKeyColor:      tcell.ColorMediumPurple,
		TitleColor:        tcell.ColorMediumPurple,
		CounterColor:      tcell.ColorLavender,
		BadgeColor:        tcell.ColorRed,
		OwnMessageColor:   tcell.ColorLightSkyBlue,
		DayColor:          tcell.ColorSlateGray,
		ReactedColor:      tcell.ColorMediumPurple,
		FlashInfoColor:    tcell.ColorNavajoWhite,
		FlashWarnColor:    tcell.ColorOrange,
		FlashErrColor:     tcell.ColorOrangeRed,
		PromptBorderColor: tcell.ColorMediumPurple,

		OnlineColor:  tcell.ColorLimeGreen,
		AwayColor:    tcell.ColorGold,
		BusyColor:    tcell.ColorRed,
		OfflineColor: tcell.ColorGray,
	}
}

// PresenceColor returns the dot color for a presence state.
func (t *Theme) PresenceColor(p roster.Presence) tcell.Color {
	switch p {
	case roster.Online:
		return t.OnlineColor
	case roster.Away:
		return t.AwayColor
	case roster.Busy:
		return t.BusyColor
	default:
		return t.OfflineColor
	}
}

// Tag returns c as a tview color tag value, e.g. "red" or "#6a5acd".
func Tag(c tcell.Color) string {
	for name, val := range tcell.ColorNames {
		if val == c {
			return name
		}
	}
	return fmt.Sprintf("#%06x", c.Hex())
}
