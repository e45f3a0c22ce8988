package views

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/huddle/internal/rpc"
	"github.com/matheus3301/huddle/internal/thread"
	"github.com/matheus3301/huddle/internal/tui/ui"
	"github.com/rivo/tview"
)

// MessageThread shows one conversation with a composer underneath.
type MessageThread struct {
	*tview.Flex
	theme    *ui.Theme
	header   *tview.TextView
	messages *tview.TextView
	composer *tview.InputField
	onSend   func(text string)
	onLeave  func()
}

// NewMessageThread creates an empty thread view.
func NewMessageThread(theme *ui.Theme) *MessageThread {
	header := tview.NewTextView().
		SetDynamicColors(true)
	header.SetBackgroundColor(theme.BgColor)
	header.SetBorderPadding(0, 0, 1, 1)

	messages := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	messages.SetBorder(true)
	messages.SetBorderColor(theme.BorderColor)
	messages.SetBackgroundColor(theme.BgColor)
	messages.SetTextColor(theme.FgColor)
	messages.SetTitleColor(theme.TitleColor)

	composer := tview.NewInputField().
		SetLabel(" > ").
		SetPlaceholder("Type a message...").
		SetFieldWidth(0)
	composer.SetBackgroundColor(theme.BgColor)
	composer.SetFieldBackgroundColor(theme.BgColor)
	composer.SetFieldTextColor(theme.FgColor)
	composer.SetLabelColor(theme.MenuKeyColor)
	composer.SetPlaceholderTextColor(theme.MutedFgColor)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(messages, 0, 1, true).
		AddItem(composer, 1, 0, false)

	mt := &MessageThread{
		Flex:     flex,
		theme:    theme,
		header:   header,
		messages: messages,
		composer: composer,
	}
	composer.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			text := composer.GetText()
			if strings.TrimSpace(text) == "" {
				return
			}
			composer.SetText("")
			if mt.onSend != nil {
				mt.onSend(text)
			}
		case tcell.KeyEscape:
			if mt.onLeave != nil {
				mt.onLeave()
			}
		}
	})
	return mt
}

// Name implements ui.Component.
func (mt *MessageThread) Name() string { return "Thread" }

// Start implements ui.Component.
func (mt *MessageThread) Start() {}

// Stop clears any unsent draft.
func (mt *MessageThread) Stop() {
	mt.composer.SetText("")
}

// Hints implements ui.Component.
func (mt *MessageThread) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "i", Description: "Compose"},
		{Key: "enter", Description: "Send"},
		{Key: "esc", Description: "Back"},
	}
}

// SetOnSend sets the callback for a submitted draft.
func (mt *MessageThread) SetOnSend(fn func(text string)) {
	mt.onSend = fn
}

// SetOnLeaveComposer sets the callback for Esc inside the composer.
func (mt *MessageThread) SetOnLeaveComposer(fn func()) {
	mt.onLeave = fn
}

// Composer returns the draft input.
func (mt *MessageThread) Composer() *tview.InputField {
	return mt.composer
}

// Messages returns the scrollable message pane.
func (mt *MessageThread) Messages() *tview.TextView {
	return mt.messages
}

// Update renders a loaded thread and scrolls to the newest message.
func (mt *MessageThread) Update(t *rpc.ListMessagesResponse) {
	mt.header.Clear()
	mt.messages.Clear()
	if t == nil {
		return
	}
	_, _ = fmt.Fprint(mt.header, mt.renderHeader(t))
	mt.messages.SetTitle(" " + oneLine(t.Conversation.Name) + " ")
	_, _ = fmt.Fprint(mt.messages, mt.renderItems(t.Items))
	mt.messages.ScrollToEnd()
}

func (mt *MessageThread) renderHeader(t *rpc.ListMessagesResponse) string {
	c := t.Conversation
	muted := ui.Tag(mt.theme.MutedFgColor)
	s := fmt.Sprintf("[%s::b]%s[-:-:-]", ui.Tag(mt.theme.FgColor), oneLine(c.Name))
	switch {
	case c.Members != "":
		s += fmt.Sprintf(" [%s]· %s[-]", muted, c.Members)
	case c.ShowPresence && c.Online:
		s += fmt.Sprintf(" [%s]● online[-]", ui.Tag(mt.theme.OnlineColor))
	case c.ShowPresence:
		s += fmt.Sprintf(" [%s]○ offline[-]", muted)
	}
	if c.Muted {
		s += fmt.Sprintf(" [%s]· muted[-]", muted)
	}
	return s
}

func (mt *MessageThread) renderItems(items []thread.Item) string {
	if len(items) == 0 {
		return fmt.Sprintf("\n  [%s]No messages yet. Say hello![-]", ui.Tag(mt.theme.MutedFgColor))
	}
	var b strings.Builder
	for _, it := range items {
		switch it.Kind {
		case thread.KindDay:
			fmt.Fprintf(&b, "\n[%s]──── %s ────[-]\n", ui.Tag(mt.theme.DayColor), tview.Escape(it.Day))
		case thread.KindMessage:
			mt.renderMessage(&b, it)
		}
	}
	return b.String()
}

func (mt *MessageThread) renderMessage(b *strings.Builder, it thread.Item) {
	muted := ui.Tag(mt.theme.MutedFgColor)
	sender, color := oneLine(it.Sender), mt.theme.CounterColor
	if it.Own {
		sender, color = "You", mt.theme.OwnMessageColor
	}
	fmt.Fprintf(b, "\n [%s]%s[-] [%s::b]%s[-:-:-] [%s]%s[-]\n",
		muted, tview.Escape("["+it.Initials+"]"), ui.Tag(color), sender, muted, it.Clock)
	for _, line := range strings.Split(sanitize(it.Content), "\n") {
		fmt.Fprintf(b, "   %s\n", tview.Escape(line))
	}
	if len(it.Reactions) == 0 {
		return
	}
	parts := make([]string, 0, len(it.Reactions))
	for _, r := range it.Reactions {
		label := fmt.Sprintf("%s %d", sanitize(r.Emoji), r.Count)
		if r.HasReacted {
			parts = append(parts, fmt.Sprintf("[%s::b]%s[-:-:-]", ui.Tag(mt.theme.ReactedColor), label))
		} else {
			parts = append(parts, fmt.Sprintf("[%s]%s[-]", muted, label))
		}
	}
	fmt.Fprintf(b, "   %s\n", strings.Join(parts, "  "))
}
