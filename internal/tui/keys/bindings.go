// Package keys maps key events to actions, per page and globally.
package keys

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/huddle/internal/tui/ui"
)

// Action is a single keybinding.
type Action struct {
	Name        string
	Key         tcell.Key
	Rune        rune
	Description string
	Handler     func()
	Visible     bool
}

// Matches reports whether ev triggers the action.
func (a *Action) Matches(ev *tcell.EventKey) bool {
	if a.Key != tcell.KeyRune {
		return ev.Key() == a.Key
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == a.Rune
}

// Label is the key as shown in the menu, e.g. "enter", "ctrl-n" or "/".
func (a *Action) Label() string {
	if a.Key == tcell.KeyRune {
		return string(a.Rune)
	}
	if name, ok := tcell.KeyNames[a.Key]; ok {
		return strings.ToLower(strings.ReplaceAll(name, "Ctrl-", "ctrl-"))
	}
	return "?"
}

// Registry holds keybindings in registration order. Page bindings shadow
// global ones for the same key.
type Registry struct {
	global []*Action
	views  map[string][]*Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		views: make(map[string][]*Action),
	}
}

// AddGlobal registers an action for every page. An action with the same
// name replaces the earlier one.
func (r *Registry) AddGlobal(a *Action) {
	r.global = upsert(r.global, a)
}

// AddView registers an action for one page.
func (r *Registry) AddView(view string, a *Action) {
	r.views[view] = upsert(r.views[view], a)
}

func upsert(list []*Action, a *Action) []*Action {
	for i, existing := range list {
		if existing.Name == a.Name {
			list[i] = a
			return list
		}
	}
	return append(list, a)
}

// Hints returns the visible bindings for view, page bindings first.
func (r *Registry) Hints(view string) []ui.MenuHint {
	var hints []ui.MenuHint
	seen := map[string]bool{}
	for _, list := range [][]*Action{r.views[view], r.global} {
		for _, a := range list {
			label := a.Label()
			if !a.Visible || seen[label] {
				continue
			}
			seen[label] = true
			hints = append(hints, ui.MenuHint{Key: label, Description: a.Description})
		}
	}
	return hints
}

// HandleEvent runs the first action in view, then globally, that matches ev.
// It reports whether one ran.
func (r *Registry) HandleEvent(view string, ev *tcell.EventKey) bool {
	for _, list := range [][]*Action{r.views[view], r.global} {
		for _, a := range list {
			if a.Matches(ev) {
				if a.Handler != nil {
					a.Handler()
				}
				return true
			}
		}
	}
	return false
}
