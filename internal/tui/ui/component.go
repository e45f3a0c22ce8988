package ui

// MenuHint describes a keyboard shortcut shown in the header menu.
type MenuHint struct {
	Key         string
	Description string
}

// Component is a page the app can push onto its stack. Start runs when the
// page becomes visible and Stop when it is popped.
type Component interface {
	Name() string
	Start()
	Stop()
	Hints() []MenuHint
}
