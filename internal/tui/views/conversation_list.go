package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/tui/ui"
	"github.com/rivo/tview"
)

// Table columns.
const (
	colMarker = iota
	colName
	colPreview
	colTime
	colBadge
)

// ConversationList is the chat list: a PINNED section when any conversation
// is pinned, then ALL CHATS.
type ConversationList struct {
	*tview.Table
	theme  *ui.Theme
	ids    []string // conversation id per table row, "" for section rows
	onOpen func(id string)
}

// NewConversationList creates an empty chat list.
func NewConversationList(theme *ui.Theme) *ConversationList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false)
	table.SetBorder(true)
	table.SetBorderColor(theme.BorderColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetTitleColor(theme.TitleColor)
	table.SetTitle(" Chats ")
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))

	cl := &ConversationList{
		Table: table,
		theme: theme,
	}
	table.SetSelectedFunc(func(row, _ int) {
		if id := cl.idAt(row); id != "" && cl.onOpen != nil {
			cl.onOpen(id)
		}
	})
	return cl
}

// Name implements ui.Component.
func (cl *ConversationList) Name() string { return "Chats" }

// Start implements ui.Component.
func (cl *ConversationList) Start() {}

// Stop implements ui.Component.
func (cl *ConversationList) Stop() {}

// Hints implements ui.Component.
func (cl *ConversationList) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "enter", Description: "Open"},
		{Key: "d", Description: "Details"},
		{Key: "/", Description: "Filter"},
	}
}

// SetOnOpen sets the callback for Enter on a conversation row.
func (cl *ConversationList) SetOnOpen(fn func(id string)) {
	cl.onOpen = fn
}

// Update renders v, keeping the selection on the same conversation when it
// is still listed.
func (cl *ConversationList) Update(v roster.ConversationView, query string) {
	prev := cl.Selected()
	cl.Clear()
	cl.ids = cl.ids[:0]

	if query != "" {
		cl.SetTitle(fmt.Sprintf(" Chats [%s](%d)[-] </%s> ", ui.Tag(cl.theme.CounterColor), v.Total, tview.Escape(query)))
	} else {
		cl.SetTitle(fmt.Sprintf(" Chats [%s](%d)[-] ", ui.Tag(cl.theme.CounterColor), v.Total))
	}

	if v.Total == 0 {
		msg := "No conversations yet"
		if query != "" {
			msg = "No conversations match"
		}
		cl.section(msg)
		return
	}

	if v.PinnedHeader != "" {
		cl.section(v.PinnedHeader)
		for _, r := range v.Pinned {
			cl.row(r)
		}
	}
	if v.RegularHeader != "" {
		cl.section(v.RegularHeader)
	}
	for _, r := range v.Regular {
		cl.row(r)
	}

	cl.selectID(prev)
}

// Selected returns the id of the highlighted conversation.
func (cl *ConversationList) Selected() string {
	row, _ := cl.GetSelection()
	return cl.idAt(row)
}

func (cl *ConversationList) idAt(row int) string {
	if row < 0 || row >= len(cl.ids) {
		return ""
	}
	return cl.ids[row]
}

func (cl *ConversationList) selectID(id string) {
	first := -1
	for i, rid := range cl.ids {
		if rid == "" {
			continue
		}
		if first < 0 {
			first = i
		}
		if rid == id {
			cl.Select(i, 0)
			return
		}
	}
	if first >= 0 {
		cl.Select(first, 0)
	}
}

func (cl *ConversationList) section(title string) {
	row := len(cl.ids)
	cl.SetCell(row, colMarker, tview.NewTableCell("").SetSelectable(false))
	cl.SetCell(row, colName, tview.NewTableCell(title).
		SetSelectable(false).
		SetTextColor(cl.theme.SectionColor).
		SetAttributes(tcell.AttrBold))
	cl.ids = append(cl.ids, "")
}

func (cl *ConversationList) row(r roster.ConversationRow) {
	row := len(cl.ids)
	fg := cl.theme.FgColor
	if r.Muted {
		fg = cl.theme.MutedFgColor
	}

	marker, markerColor := "#", cl.theme.MutedFgColor
	if r.ShowPresence {
		marker, markerColor = "○", cl.theme.OfflineColor
		if r.Online {
			marker, markerColor = "●", cl.theme.OnlineColor
		}
	}
	cl.SetCell(row, colMarker, tview.NewTableCell(" "+marker).SetTextColor(markerColor))

	name := oneLine(r.Name)
	if r.Members != "" {
		name += fmt.Sprintf(" [%s]%s[-]", ui.Tag(cl.theme.MutedFgColor), r.Members)
	}
	if r.Muted {
		name += fmt.Sprintf(" [%s]muted[-]", ui.Tag(cl.theme.MutedFgColor))
	}
	nameCell := tview.NewTableCell(name).SetTextColor(fg).SetMaxWidth(40)
	if r.Unread {
		nameCell.SetAttributes(tcell.AttrBold)
	}
	cl.SetCell(row, colName, nameCell)

	cl.SetCell(row, colPreview, tview.NewTableCell(" "+oneLine(r.Preview)).
		SetTextColor(cl.theme.MutedFgColor).
		SetExpansion(1))
	cl.SetCell(row, colTime, tview.NewTableCell(" "+r.Time+" ").
		SetTextColor(cl.theme.MutedFgColor).
		SetAlign(tview.AlignRight))

	badge := tview.NewTableCell("")
	if r.Badge != "" {
		badge = tview.NewTableCell(" " + r.Badge + " ").SetTextColor(cl.theme.BadgeColor).SetAttributes(tcell.AttrBold)
	}
	cl.SetCell(row, colBadge, badge)

	cl.ids = append(cl.ids, r.ID)
}
