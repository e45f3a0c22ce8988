package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/huddle/internal/rpc"
	"github.com/matheus3301/huddle/internal/tui/ui"
	"github.com/rivo/tview"
)

// Form names inside the sign-in page.
const (
	FormSignIn = "signin"
	FormSignUp = "signup"
)

// SignInView holds the sign-in and sign-up forms and a status line.
type SignInView struct {
	*tview.Flex
	theme  *ui.Theme
	forms  *tview.Pages
	status *tview.TextView
	active string
	busy   bool

	email    *tview.InputField
	password *tview.InputField

	fullName   *tview.InputField
	username   *tview.InputField
	newEmail   *tview.InputField
	newPass    *tview.InputField
	confirmNew *tview.InputField

	onSignIn func(email, password string)
	onSignUp func(req *rpc.SignUpRequest)
}

// NewSignInView creates the page with the sign-in form showing.
func NewSignInView(theme *ui.Theme) *SignInView {
	sv := &SignInView{
		theme:  theme,
		forms:  tview.NewPages(),
		status: tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter),
	}
	sv.status.SetBackgroundColor(theme.BgColor)

	sv.email = sv.field("Email", 0)
	sv.password = sv.field("Password", '*')
	signIn := sv.form(" Welcome back ", sv.email, sv.password)
	signIn.AddButton("Sign In", sv.submitSignIn)
	signIn.AddButton("Create account", func() { sv.Show(FormSignUp) })

	sv.fullName = sv.field("Full name", 0)
	sv.username = sv.field("Username", 0)
	sv.newEmail = sv.field("Email", 0)
	sv.newPass = sv.field("Password", '*')
	sv.confirmNew = sv.field("Confirm password", '*')
	signUp := sv.form(" Create your account ", sv.fullName, sv.username, sv.newEmail, sv.newPass, sv.confirmNew)
	signUp.AddButton("Sign Up", sv.submitSignUp)
	signUp.AddButton("Back", func() { sv.Show(FormSignIn) })

	sv.forms.AddPage(FormSignIn, signIn, true, true)
	sv.forms.AddPage(FormSignUp, signUp, true, false)
	sv.active = FormSignIn

	// Center the forms horizontally.
	row := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(sv.forms, 60, 0, true).
		AddItem(nil, 0, 1, false)
	sv.Flex = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(row, 17, 0, true).
		AddItem(sv.status, 2, 0, false).
		AddItem(nil, 0, 1, false)
	sv.SetBackgroundColor(theme.BgColor)
	return sv
}

func (sv *SignInView) field(label string, mask rune) *tview.InputField {
	f := tview.NewInputField().
		SetLabel(label).
		SetFieldWidth(36)
	if mask != 0 {
		f.SetMaskCharacter(mask)
	}
	return f
}

func (sv *SignInView) form(title string, fields ...*tview.InputField) *tview.Form {
	f := tview.NewForm()
	for _, field := range fields {
		f.AddFormItem(field)
	}
	f.SetBorder(true)
	f.SetTitle(title)
	f.SetTitleColor(sv.theme.TitleColor)
	f.SetBorderColor(sv.theme.BorderColor)
	f.SetBackgroundColor(sv.theme.BgColor)
	f.SetLabelColor(sv.theme.FgColor)
	f.SetFieldBackgroundColor(sv.theme.TableCursorBg)
	f.SetFieldTextColor(sv.theme.FgColor)
	f.SetButtonBackgroundColor(sv.theme.BorderColor)
	f.SetButtonTextColor(sv.theme.FgColor)
	return f
}

// Name implements ui.Component.
func (sv *SignInView) Name() string { return "Sign in" }

// Start implements ui.Component.
func (sv *SignInView) Start() {}

// Stop clears passwords.
func (sv *SignInView) Stop() {
	for _, f := range []*tview.InputField{sv.password, sv.newPass, sv.confirmNew} {
		f.SetText("")
	}
}

// Hints implements ui.Component.
func (sv *SignInView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "tab", Description: "Next field"},
		{Key: "enter", Description: "Submit"},
		{Key: "ctrl-n", Description: "Sign in/up"},
	}
}

// SetOnSignIn sets the callback for a submitted sign-in form.
func (sv *SignInView) SetOnSignIn(fn func(email, password string)) {
	sv.onSignIn = fn
}

// SetOnSignUp sets the callback for a submitted sign-up form.
func (sv *SignInView) SetOnSignUp(fn func(req *rpc.SignUpRequest)) {
	sv.onSignUp = fn
}

// Show switches to the named form and clears the status line.
func (sv *SignInView) Show(name string) {
	sv.active = name
	sv.forms.SwitchToPage(name)
	sv.status.Clear()
}

// Toggle switches between the two forms.
func (sv *SignInView) Toggle() {
	if sv.active == FormSignIn {
		sv.Show(FormSignUp)
	} else {
		sv.Show(FormSignIn)
	}
}

// Active returns the name of the visible form.
func (sv *SignInView) Active() string {
	return sv.active
}

// SetBusy shows msg and ignores submissions until SetError or SetIdle.
func (sv *SignInView) SetBusy(msg string) {
	sv.busy = true
	sv.setStatus(sv.theme.FlashInfoColor, msg)
}

// SetError shows err and accepts submissions again.
func (sv *SignInView) SetError(err error) {
	sv.busy = false
	sv.setStatus(sv.theme.FlashErrColor, err.Error())
}

// SetIdle clears the status line.
func (sv *SignInView) SetIdle() {
	sv.busy = false
	sv.status.Clear()
}

// Busy reports whether a submission is in flight.
func (sv *SignInView) Busy() bool {
	return sv.busy
}

func (sv *SignInView) setStatus(c tcell.Color, msg string) {
	sv.status.Clear()
	_, _ = fmt.Fprintf(sv.status, "[%s]%s[-]", ui.Tag(c), tview.Escape(msg))
}

func (sv *SignInView) submitSignIn() {
	if sv.busy || sv.onSignIn == nil {
		return
	}
	sv.onSignIn(sv.email.GetText(), sv.password.GetText())
}

func (sv *SignInView) submitSignUp() {
	if sv.busy || sv.onSignUp == nil {
		return
	}
	sv.onSignUp(&rpc.SignUpRequest{
		FullName:        sv.fullName.GetText(),
		Username:        sv.username.GetText(),
		Email:           sv.newEmail.GetText(),
		Password:        sv.newPass.GetText(),
		ConfirmPassword: sv.confirmNew.GetText(),
	})
}
