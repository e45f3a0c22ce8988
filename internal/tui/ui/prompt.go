package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// PromptMode selects what a submitted prompt means.
type PromptMode int

const (
	PromptCommand PromptMode = iota
	PromptFilter
)

// Prompt is the command and filter input bar. Command mode remembers
// submitted lines; Up and Down walk back through them.
type Prompt struct {
	*tview.InputField
	theme    *Theme
	mode     PromptMode
	history  History
	onSubmit func(mode PromptMode, text string)
	onCancel func()
}

// NewPrompt creates a prompt bar.
func NewPrompt(theme *Theme) *Prompt {
	input := tview.NewInputField()
	input.SetBorder(true)
	input.SetBorderColor(theme.PromptBorderColor)
	input.SetBackgroundColor(theme.BgColor)
	input.SetFieldBackgroundColor(theme.BgColor)
	input.SetFieldTextColor(theme.FgColor)
	input.SetLabelColor(theme.MenuKeyColor)

	p := &Prompt{
		InputField: input,
		theme:      theme,
	}

	input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			text := p.GetText()
			if p.mode == PromptCommand {
				p.history.Add(text)
			}
			p.SetText("")
			// An empty filter submission clears the filter.
			if p.onSubmit != nil && (text != "" || p.mode == PromptFilter) {
				p.onSubmit(p.mode, text)
			}
		case tcell.KeyEscape:
			p.SetText("")
			if p.onCancel != nil {
				p.onCancel()
			}
		}
	})
	input.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if p.mode != PromptCommand {
			return ev
		}
		switch ev.Key() {
		case tcell.KeyUp:
			if s, ok := p.history.Prev(); ok {
				p.SetText(s)
			}
			return nil
		case tcell.KeyDown:
			s, _ := p.history.Next()
			p.SetText(s)
			return nil
		}
		return ev
	})

	return p
}

// SetOnSubmit sets the submit callback.
func (p *Prompt) SetOnSubmit(fn func(mode PromptMode, text string)) {
	p.onSubmit = fn
}

// SetOnCancel sets the callback for Esc.
func (p *Prompt) SetOnCancel(fn func()) {
	p.onCancel = fn
}

// Activate prepares the prompt for mode. A filter prompt starts from the
// current filter text.
func (p *Prompt) Activate(mode PromptMode, initial string) {
	p.mode = mode
	p.history.Reset()
	p.SetText(initial)
	switch mode {
	case PromptCommand:
		p.SetLabel(":")
		p.SetTitle(" Command ")
	case PromptFilter:
		p.SetLabel("/")
		p.SetTitle(" Filter ")
	}
}

// Mode returns the current prompt mode.
func (p *Prompt) Mode() PromptMode {
	return p.mode
}

// History is a list of submitted commands with a browsing cursor.
type History struct {
	entries []string
	cursor  int
}

// MaxHistory bounds the number of remembered commands.
const MaxHistory = 50

// Add appends s unless it is blank or repeats the latest entry.
func (h *History) Add(s string) {
	if s == "" || (len(h.entries) > 0 && h.entries[len(h.entries)-1] == s) {
		h.Reset()
		return
	}
	h.entries = append(h.entries, s)
	if len(h.entries) > MaxHistory {
		h.entries = h.entries[len(h.entries)-MaxHistory:]
	}
	h.Reset()
}

// Prev moves one entry back. It reports false at the oldest entry.
func (h *History) Prev() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves one entry forward, returning "" past the newest entry.
func (h *History) Next() (string, bool) {
	if h.cursor >= len(h.entries)-1 {
		h.cursor = len(h.entries)
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Reset puts the cursor after the newest entry.
func (h *History) Reset() {
	h.cursor = len(h.entries)
}
