package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/tui/ui"
	"github.com/rivo/tview"
)

type friendRowKind int

const (
	rowSection friendRowKind = iota
	rowRequest
	rowContact
)

type friendRow struct {
	kind friendRowKind
	id   string
	name string
}

// FriendsList shows the Online/All tabs, pending requests and contacts.
type FriendsList struct {
	*tview.Table
	theme *ui.Theme
	rows  []friendRow
}

// NewFriendsList creates an empty friends list.
func NewFriendsList(theme *ui.Theme) *FriendsList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false)
	table.SetBorder(true)
	table.SetBorderColor(theme.BorderColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetTitleColor(theme.TitleColor)
	table.SetTitle(" Friends ")
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))

	return &FriendsList{
		Table: table,
		theme: theme,
	}
}

// Name implements ui.Component.
func (fl *FriendsList) Name() string { return "Friends" }

// Start implements ui.Component.
func (fl *FriendsList) Start() {}

// Stop implements ui.Component.
func (fl *FriendsList) Stop() {}

// Hints implements ui.Component.
func (fl *FriendsList) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "tab", Description: "Online/All"},
		{Key: "a", Description: "Accept"},
		{Key: "x", Description: "Decline"},
		{Key: "/", Description: "Filter"},
	}
}

// Update renders v.
func (fl *FriendsList) Update(v roster.ContactView, query string) {
	row, _ := fl.GetSelection()
	fl.Clear()
	fl.rows = fl.rows[:0]

	title := " Friends "
	if query != "" {
		title = fmt.Sprintf(" Friends </%s> ", tview.Escape(query))
	}
	fl.SetTitle(title)

	fl.tabs(v)

	if v.RequestsHeader != "" {
		fl.section(v.RequestsHeader)
		for _, r := range v.Requests {
			fl.request(r)
		}
	}

	header := "ALL FRIENDS"
	if v.Filter == roster.FilterOnline {
		header = "ONLINE"
	}
	fl.section(fmt.Sprintf("%s (%d)", header, len(v.Contacts)))
	if len(v.Contacts) == 0 {
		msg := "No friends online"
		if query != "" {
			msg = "No friends match"
		} else if v.Filter != roster.FilterOnline {
			msg = "No friends yet"
		}
		fl.note(msg)
	}
	for _, c := range v.Contacts {
		fl.contact(c)
	}

	fl.selectNear(row)
}

// SelectedRequest returns the highlighted pending request, if any.
func (fl *FriendsList) SelectedRequest() (id, name string, ok bool) {
	r, _ := fl.GetSelection()
	if r < 0 || r >= len(fl.rows) || fl.rows[r].kind != rowRequest {
		return "", "", false
	}
	return fl.rows[r].id, fl.rows[r].name, true
}

func (fl *FriendsList) selectNear(row int) {
	if row >= 0 && row < len(fl.rows) && fl.rows[row].kind != rowSection {
		fl.Select(row, 0)
		return
	}
	for i, r := range fl.rows {
		if r.kind != rowSection {
			fl.Select(i, 0)
			return
		}
	}
}

func (fl *FriendsList) tabs(v roster.ContactView) {
	active := fmt.Sprintf("[%s:%s:b]", ui.Tag(fl.theme.CrumbActiveFg), ui.Tag(fl.theme.CrumbActiveBg))
	idle := fmt.Sprintf("[%s]", ui.Tag(fl.theme.MutedFgColor))
	online, all := idle, idle
	if v.Filter == roster.FilterOnline {
		online = active
	} else {
		all = active
	}
	text := fmt.Sprintf("%s %s [-:-:-]  %s %s [-:-:-]", online, v.OnlineTab, all, v.AllTab)
	fl.SetCell(len(fl.rows), 1, tview.NewTableCell(text).SetSelectable(false))
	fl.rows = append(fl.rows, friendRow{kind: rowSection})
}

func (fl *FriendsList) section(title string) {
	fl.SetCell(len(fl.rows), 1, tview.NewTableCell(title).
		SetSelectable(false).
		SetTextColor(fl.theme.SectionColor).
		SetAttributes(tcell.AttrBold))
	fl.rows = append(fl.rows, friendRow{kind: rowSection})
}

func (fl *FriendsList) note(text string) {
	fl.SetCell(len(fl.rows), 1, tview.NewTableCell(text).
		SetSelectable(false).
		SetTextColor(fl.theme.MutedFgColor))
	fl.rows = append(fl.rows, friendRow{kind: rowSection})
}

func (fl *FriendsList) request(r roster.RequestRow) {
	row := len(fl.rows)
	fl.SetCell(row, 0, tview.NewTableCell(" +").SetTextColor(fl.theme.MenuKeyColor))
	fl.SetCell(row, 1, tview.NewTableCell(oneLine(r.Name)).SetTextColor(fl.theme.FgColor).SetAttributes(tcell.AttrBold))
	fl.SetCell(row, 2, tview.NewTableCell(" "+oneLine(r.Handle)).SetTextColor(fl.theme.MutedFgColor))
	fl.SetCell(row, 3, tview.NewTableCell(" "+r.Mutual).SetTextColor(fl.theme.MutedFgColor).SetExpansion(1))
	fl.SetCell(row, 4, tview.NewTableCell(" "+r.Received+" ").SetTextColor(fl.theme.MutedFgColor).SetAlign(tview.AlignRight))
	fl.rows = append(fl.rows, friendRow{kind: rowRequest, id: r.ID, name: r.Name})
}

func (fl *FriendsList) contact(c roster.ContactRow) {
	row := len(fl.rows)
	fl.SetCell(row, 0, tview.NewTableCell(" ●").SetTextColor(fl.theme.PresenceColor(c.Presence)))
	fl.SetCell(row, 1, tview.NewTableCell(oneLine(c.Name)).SetTextColor(fl.theme.FgColor))
	fl.SetCell(row, 2, tview.NewTableCell(" "+oneLine(c.Handle)).SetTextColor(fl.theme.MutedFgColor))
	fl.SetCell(row, 3, tview.NewTableCell(" "+oneLine(c.Subtitle)).SetTextColor(fl.theme.MutedFgColor).SetExpansion(1))
	fl.SetCell(row, 4, tview.NewTableCell(" "+c.Mutual+" ").SetTextColor(fl.theme.MutedFgColor).SetAlign(tview.AlignRight))
	fl.rows = append(fl.rows, friendRow{kind: rowContact, id: c.ID, name: c.Name})
}
