// Package tui is the huddle terminal client.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/rpc"
	"github.com/matheus3301/huddle/internal/status"
	"github.com/matheus3301/huddle/internal/tui/client"
	"github.com/matheus3301/huddle/internal/tui/keys"
	"github.com/matheus3301/huddle/internal/tui/model"
	"github.com/matheus3301/huddle/internal/tui/ui"
	"github.com/matheus3301/huddle/internal/tui/views"
	"github.com/rivo/tview"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

const (
	refreshInterval = 5 * time.Second
	rewatchDelay    = 2 * time.Second
)

// App is the main TUI application shell.
type App struct {
	app    *tview.Application
	theme  *ui.Theme
	vm     *model.ViewModel
	keys   *keys.Registry
	logger *zap.Logger

	root       *tview.Flex
	body       *tview.Flex
	pages      *ui.Pages
	prompt     *ui.Prompt
	promptOpen bool
	filterFor  string
	components map[string]ui.Component

	info      *ui.ProfileInfo
	menu      *ui.Menu
	crumbs    *ui.Crumbs
	flash     *ui.FlashBar
	statusBar *views.StatusBar

	signIn  *views.SignInView
	chats   *views.ConversationList
	thread  *views.MessageThread
	friends *views.FriendsList
	invite  *views.InviteView
	details *views.ConversationInfo
	help    *views.HelpView

	detailsID     string
	shownThreadID string
	shownItems    int

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI over a connected daemon client. locale picks the
// date order on the details page.
func NewApp(c *client.Client, locale string, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	theme := ui.DefaultTheme()

	a := &App{
		app:        tview.NewApplication(),
		theme:      theme,
		vm:         model.NewViewModel(c),
		keys:       keys.NewRegistry(),
		logger:     logger,
		pages:      ui.NewPages(),
		prompt:     ui.NewPrompt(theme),
		components: make(map[string]ui.Component),
		info:       ui.NewProfileInfo(theme),
		menu:       ui.NewMenu(theme),
		crumbs:     ui.NewCrumbs(theme),
		flash:      ui.NewFlashBar(theme),
		statusBar:  views.NewStatusBar(theme),
		signIn:     views.NewSignInView(theme),
		chats:      views.NewConversationList(theme),
		thread:     views.NewMessageThread(theme),
		friends:    views.NewFriendsList(theme),
		invite:     views.NewInviteView(theme),
		details:    views.NewConversationInfo(theme, locale),
		help:       views.NewHelpView(theme),
		ctx:        ctx,
		cancel:     cancel,
	}

	a.setupPages()
	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()
	return a
}

func (a *App) setupPages() {
	add := func(c ui.Component, p tview.Primitive) {
		a.components[c.Name()] = c
		a.pages.AddPage(c.Name(), p, true, false)
	}
	add(a.signIn, a.signIn)
	add(a.chats, a.chats)
	add(a.thread, a.thread)
	add(a.friends, a.friends)
	add(a.invite, a.invite)
	add(a.details, a.details)
	add(a.help, a.help)

	a.pages.SetOnChange(func(stack []string) {
		a.crumbs.Update(stack)
		a.updateMenu()
	})
}

func (a *App) setupBindings() {
	a.keys.AddGlobal(&keys.Action{
		Name: "command", Key: tcell.KeyRune, Rune: ':',
		Description: "Command", Visible: true,
		Handler: func() { a.openPrompt(ui.PromptCommand, "") },
	})
	a.keys.AddGlobal(&keys.Action{
		Name: "help", Key: tcell.KeyRune, Rune: '?',
		Description: "Help", Visible: true,
		Handler: func() { a.show(a.help.Name()) },
	})
	a.keys.AddGlobal(&keys.Action{
		Name: "back", Key: tcell.KeyEscape,
		Description: "Back", Visible: true,
		Handler: a.back,
	})
	a.keys.AddGlobal(&keys.Action{
		Name: "refresh", Key: tcell.KeyCtrlR,
		Description: "Refresh",
		Handler:     a.refresh,
	})

	a.keys.AddView(a.signIn.Name(), &keys.Action{
		Name: "toggle-form", Key: tcell.KeyCtrlN,
		Handler: a.signIn.Toggle,
	})

	a.keys.AddView(a.chats.Name(), &keys.Action{
		Name: "filter", Key: tcell.KeyRune, Rune: '/',
		Handler: func() { a.openPrompt(ui.PromptFilter, a.vm.ChatQuery()) },
	})
	a.keys.AddView(a.chats.Name(), &keys.Action{
		Name: "details", Key: tcell.KeyRune, Rune: 'd',
		Handler: func() { a.showDetails(a.chats.Selected()) },
	})
	a.keys.AddView(a.chats.Name(), &keys.Action{
		Name: "friends", Key: tcell.KeyRune, Rune: 'f',
		Handler: func() { a.show(a.friends.Name()) },
	})

	a.keys.AddView(a.thread.Name(), &keys.Action{
		Name: "compose", Key: tcell.KeyRune, Rune: 'i',
		Handler: func() { a.app.SetFocus(a.thread.Composer()) },
	})

	a.keys.AddView(a.friends.Name(), &keys.Action{
		Name: "tab", Key: tcell.KeyTab,
		Handler: func() { a.async(a.vm.ToggleFriendsTab) },
	})
	a.keys.AddView(a.friends.Name(), &keys.Action{
		Name: "filter", Key: tcell.KeyRune, Rune: '/',
		Handler: func() { a.openPrompt(ui.PromptFilter, a.vm.FriendQuery()) },
	})
	a.keys.AddView(a.friends.Name(), &keys.Action{
		Name: "accept", Key: tcell.KeyRune, Rune: 'a',
		Handler: func() { a.respond(true) },
	})
	a.keys.AddView(a.friends.Name(), &keys.Action{
		Name: "decline", Key: tcell.KeyRune, Rune: 'x',
		Handler: func() { a.respond(false) },
	})

	a.keys.AddView(a.details.Name(), &keys.Action{
		Name: "open", Key: tcell.KeyEnter,
		Handler: func() { a.openConversation(a.detailsID) },
	})
}

func (a *App) setupCallbacks() {
	a.signIn.SetOnSignIn(func(email, password string) {
		a.signIn.SetBusy("Signing in...")
		go func() {
			_, err := a.vm.SignIn(a.ctx, email, password)
			a.app.QueueUpdateDraw(func() { a.signedIn(err) })
		}()
	})
	a.signIn.SetOnSignUp(func(req *rpc.SignUpRequest) {
		a.signIn.SetBusy("Creating account...")
		go func() {
			_, err := a.vm.SignUp(a.ctx, req)
			a.app.QueueUpdateDraw(func() { a.signedIn(err) })
		}()
	})

	a.chats.SetOnOpen(a.openConversation)

	a.thread.SetOnSend(func(text string) {
		go func() {
			err := a.vm.SendDraft(a.ctx, text)
			if err != nil && grpcstatus.Code(err) != codes.InvalidArgument {
				a.vm.Flash.Err(err)
			}
		}()
	})
	a.thread.SetOnLeaveComposer(func() {
		a.app.SetFocus(a.thread.Messages())
	})

	a.prompt.SetOnSubmit(func(mode ui.PromptMode, text string) {
		a.closePrompt()
		switch mode {
		case ui.PromptCommand:
			a.runCommand(ParseCommand(text))
		case ui.PromptFilter:
			a.applyFilter(text)
		}
	})
	a.prompt.SetOnCancel(a.closePrompt)
}

func (a *App) setupLayout() {
	header := tview.NewFlex().
		AddItem(a.info, 32, 0, false).
		AddItem(a.menu, 0, 1, false).
		AddItem(ui.NewLogo(a.theme), 22, 0, false)

	a.body = tview.NewFlex().SetDirection(tview.FlexRow)
	a.body.AddItem(a.pages, 0, 1, true)

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, ui.MenuRows+1, 0, false).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.body, 0, 1, true).
		AddItem(a.flash, 1, 0, false).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetInputCapture(a.capture)
}

// capture routes keys through the registry unless a text field owns them.
func (a *App) capture(ev *tcell.EventKey) *tcell.EventKey {
	if a.promptOpen {
		return ev
	}
	view := a.pages.Current()
	if a.typing() {
		switch ev.Key() {
		case tcell.KeyCtrlN, tcell.KeyCtrlR:
			if a.keys.HandleEvent(view, ev) {
				return nil
			}
		}
		return ev
	}
	if a.keys.HandleEvent(view, ev) {
		return nil
	}
	return ev
}

func (a *App) typing() bool {
	switch a.app.GetFocus().(type) {
	case *tview.InputField, *tview.Button:
		return true
	}
	return false
}

// Navigation.

func (a *App) show(name string) {
	if a.pages.Current() == name {
		return
	}
	a.pages.Push(name)
	a.components[name].Start()
	a.focusCurrent()
}

func (a *App) back() {
	top := a.pages.Pop()
	if top == "" {
		return
	}
	a.components[top].Stop()
	if top == a.thread.Name() {
		a.vm.CloseConversation()
		a.shownThreadID = ""
	}
	a.focusCurrent()
}

func (a *App) resetTo(name string) {
	for _, n := range a.pages.Stack() {
		a.components[n].Stop()
	}
	a.pages.Reset(name)
	a.components[name].Start()
	a.focusCurrent()
}

func (a *App) focusCurrent() {
	switch cur := a.pages.Current(); cur {
	case a.thread.Name():
		a.app.SetFocus(a.thread.Messages())
	case "":
	default:
		if p, ok := a.components[cur].(tview.Primitive); ok {
			a.app.SetFocus(p)
		}
	}
	a.updateMenu()
}

func (a *App) updateMenu() {
	cur := a.pages.Current()
	var hints []ui.MenuHint
	if c, ok := a.components[cur]; ok {
		hints = append(hints, c.Hints()...)
	}
	hints = append(hints, a.keys.Hints(cur)...)
	a.menu.Update(hints)
}

// Prompt.

func (a *App) openPrompt(mode ui.PromptMode, initial string) {
	a.filterFor = a.pages.Current()
	a.prompt.Activate(mode, initial)
	a.promptOpen = true
	a.body.Clear()
	a.body.AddItem(a.prompt, 3, 0, true)
	a.body.AddItem(a.pages, 0, 1, false)
	a.app.SetFocus(a.prompt)
}

func (a *App) closePrompt() {
	a.promptOpen = false
	a.body.Clear()
	a.body.AddItem(a.pages, 0, 1, true)
	a.focusCurrent()
}

func (a *App) applyFilter(query string) {
	switch a.filterFor {
	case a.chats.Name():
		a.async(func(ctx context.Context) error { return a.vm.SetChatQuery(ctx, query) })
	case a.friends.Name():
		a.async(func(ctx context.Context) error { return a.vm.SetFriendQuery(ctx, query) })
	}
}

func (a *App) runCommand(cmd Command) {
	a.logger.Debug("command", zap.String("name", cmd.Name), zap.String("args", cmd.Args))
	switch cmd.Name {
	case "":
	case CmdHelp:
		a.show(a.help.Name())
	case CmdQuit:
		a.Stop()
	case CmdRefresh:
		a.refresh()
	case CmdChats, CmdFriends, CmdInvite, CmdSignOut:
		if !a.vm.SignedIn() {
			a.vm.Flash.Warn("sign in first")
			return
		}
		a.runSignedIn(cmd)
	default:
		a.vm.Flash.Warn("unknown command: " + cmd.Name)
	}
}

func (a *App) runSignedIn(cmd Command) {
	switch cmd.Name {
	case CmdChats:
		a.show(a.chats.Name())
		if cmd.Args != "" {
			a.async(func(ctx context.Context) error { return a.vm.SetChatQuery(ctx, cmd.Args) })
		}
	case CmdFriends:
		a.show(a.friends.Name())
		if cmd.Args != "" {
			filter := roster.ParseContactFilter(cmd.Args)
			a.async(func(ctx context.Context) error { return a.vm.SetFriendsTab(ctx, filter) })
		}
	case CmdInvite:
		a.show(a.invite.Name())
	case CmdSignOut:
		a.async(a.vm.SignOut)
	}
}

// Actions.

func (a *App) openConversation(id string) {
	if id == "" {
		return
	}
	go func() {
		if err := a.vm.OpenConversation(a.ctx, id); err != nil {
			a.vm.Flash.Err(err)
			return
		}
		a.app.QueueUpdateDraw(func() {
			a.show(a.thread.Name())
		})
	}()
}

func (a *App) showDetails(id string) {
	if id == "" {
		return
	}
	go func() {
		c, err := a.vm.ConversationDetails(a.ctx, id)
		if err != nil {
			a.vm.Flash.Err(err)
			return
		}
		a.app.QueueUpdateDraw(func() {
			a.detailsID = id
			a.details.Update(c, a.vm.Now())
			a.show(a.details.Name())
		})
	}()
}

func (a *App) respond(accept bool) {
	if _, name, ok := a.friends.SelectedRequest(); ok {
		a.vm.RespondToRequest(name, accept)
		return
	}
	a.vm.Flash.Info("select a pending request first")
}

func (a *App) signedIn(err error) {
	if err != nil {
		a.signIn.SetError(errors.New(grpcstatus.Convert(err).Message()))
		return
	}
	a.signIn.SetIdle()
	a.enterSignedIn()
}

func (a *App) enterSignedIn() {
	if stack := a.pages.Stack(); len(stack) > 0 && stack[0] == a.chats.Name() {
		return
	}
	a.resetTo(a.chats.Name())
	a.refresh()
}

func (a *App) applyStatus(evt *rpc.StatusEvent) {
	a.logger.Info("status", zap.String("from", evt.From), zap.String("to", evt.To))
	switch status.State(evt.To) {
	case status.SignedIn:
		a.enterSignedIn()
	case status.SigningIn:
		if !a.signIn.Busy() {
			a.signIn.SetBusy("Signing in...")
		}
	case status.SignedOut:
		if a.pages.Current() != a.signIn.Name() || a.pages.Depth() > 1 {
			a.resetTo(a.signIn.Name())
		}
		if evt.From == string(status.SigningIn) || evt.From == "" {
			return
		}
		a.signIn.SetIdle()
	}
}

// async runs fn off the UI goroutine and flashes its error.
func (a *App) async(fn func(ctx context.Context) error) {
	go func() {
		if err := fn(a.ctx); err != nil && a.ctx.Err() == nil {
			a.vm.Flash.Err(err)
		}
	}()
}

func (a *App) refresh() {
	a.async(a.vm.Refresh)
}

// render copies the view model into every view. It runs on the UI goroutine.
func (a *App) render() {
	st := a.vm.Status()
	a.info.Update(st)
	a.statusBar.SetStatus(st)
	a.statusBar.Render(time.Now())
	a.flash.Update(a.vm.Flash.Current())

	a.chats.Update(a.vm.Conversations(), a.vm.ChatQuery())
	a.friends.Update(a.vm.Contacts(), a.vm.FriendQuery())
	if st != nil {
		a.invite.Update(st.Account)
	}

	if th := a.vm.Thread(); th != nil {
		if a.vm.ActiveConversation() != a.shownThreadID || len(th.Items) != a.shownItems {
			a.thread.Update(th)
			a.shownThreadID = a.vm.ActiveConversation()
			a.shownItems = len(th.Items)
		}
	}
}

// Background loops.

func (a *App) watchRefresh() {
	for {
		select {
		case <-a.vm.RefreshCh():
			a.app.QueueUpdateDraw(a.render)
		case <-a.ctx.Done():
			return
		}
	}
}

func (a *App) watchFlash() {
	for {
		select {
		case msg := <-a.vm.Flash.Watch():
			a.app.QueueUpdateDraw(func() { a.flash.Update(&msg) })
		case <-a.ctx.Done():
			return
		}
	}
}

func (a *App) watchStatus() {
	for {
		err := a.vm.WatchStatus(a.ctx, func(evt *rpc.StatusEvent) {
			a.app.QueueUpdateDraw(func() { a.applyStatus(evt) })
		})
		if a.ctx.Err() != nil {
			return
		}
		if err != nil {
			a.logger.Warn("status stream ended", zap.Error(err))
			a.vm.Flash.Err(err)
		}
		select {
		case <-time.After(rewatchDelay):
		case <-a.ctx.Done():
			return
		}
	}
}

func (a *App) refreshLoop() {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := a.vm.Refresh(a.ctx); err != nil && a.ctx.Err() == nil {
				a.logger.Warn("refresh failed", zap.Error(err))
				a.vm.Flash.Err(err)
			}
			a.app.QueueUpdateDraw(a.render)
		case <-a.ctx.Done():
			return
		}
	}
}

// Run starts the TUI and blocks until it exits.
func (a *App) Run() error {
	a.resetTo(a.signIn.Name())
	a.render()

	go a.watchRefresh()
	go a.watchFlash()
	go a.watchStatus()
	go a.refreshLoop()
	a.refresh()

	defer a.cancel()
	return a.app.SetRoot(a.root, true).Run()
}

// Stop shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
