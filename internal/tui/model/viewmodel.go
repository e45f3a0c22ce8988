// Package model caches daemon state for the TUI and signals when it changes.
package model

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/matheus3301/huddle/internal/roster"
	"github.com/matheus3301/huddle/internal/rpc"
	"github.com/matheus3301/huddle/internal/status"
	"github.com/matheus3301/huddle/internal/tui/client"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// RequestsReadOnly is flashed when a pending friend request is acted on.
const RequestsReadOnly = "friend requests are read-only"

// ViewModel caches responses from the daemon and signals UI refreshes.
//
// Each cached view has a generation that user actions bump (a new query, a
// new tab, opening or closing a thread, signing out). A load records the
// generation it started under and drops its response if the generation has
// moved on, so a slow background refresh never overwrites newer state.
type ViewModel struct {
	mu sync.RWMutex

	client *client.Client
	now    func() time.Time
	Flash  *Flash

	status        *rpc.GetStatusResponse
	chats         roster.ConversationView
	chatQuery     string
	friends       roster.ContactView
	friendQuery   string
	friendsFilter roster.ContactFilter
	thread        *rpc.ListMessagesResponse
	activeID      string

	statusSeq     uint64
	statusApplied uint64
	chatsGen      uint64
	friendsGen    uint64
	threadGen     uint64

	refreshCh chan struct{}
}

// NewViewModel creates a view model over a daemon client. An empty friends
// filter lets the daemon pick its configured default.
func NewViewModel(c *client.Client) *ViewModel {
	return &ViewModel{
		client:    c,
		now:       time.Now,
		Flash:     NewFlash(),
		refreshCh: make(chan struct{}, 1),
	}
}

// RefreshCh returns the channel that signals UI refresh.
func (vm *ViewModel) RefreshCh() <-chan struct{} {
	return vm.refreshCh
}

func (vm *ViewModel) signalRefresh() {
	select {
	case vm.refreshCh <- struct{}{}:
	default:
	}
}

func (vm *ViewModel) clock() rpc.Clock {
	return rpc.ClockAt(vm.now())
}

// LoadStatus fetches the daemon status.
// Only the most recently issued call's answer is kept.
func (vm *ViewModel) LoadStatus(ctx context.Context) error {
	vm.mu.Lock()
	vm.statusSeq++
	seq := vm.statusSeq
	vm.mu.Unlock()

	resp, err := vm.client.Session.GetStatus(ctx, &rpc.GetStatusRequest{})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	if seq < vm.statusApplied {
		vm.mu.Unlock()
		return nil
	}
	vm.statusApplied = seq
	vm.status = resp
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// LoadConversations fetches the chat list for the current query.
func (vm *ViewModel) LoadConversations(ctx context.Context) error {
	vm.mu.RLock()
	query, gen := vm.chatQuery, vm.chatsGen
	vm.mu.RUnlock()

	resp, err := vm.client.Roster.ListConversations(ctx, &rpc.ListConversationsRequest{
		Clock: vm.clock(),
		Query: query,
	})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	if gen != vm.chatsGen {
		vm.mu.Unlock()
		return nil
	}
	vm.chats = resp.View
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// SetChatQuery changes the chat list filter and reloads it.
func (vm *ViewModel) SetChatQuery(ctx context.Context, query string) error {
	vm.mu.Lock()
	vm.chatQuery = query
	vm.chatsGen++
	vm.mu.Unlock()
	return vm.LoadConversations(ctx)
}

// LoadContacts fetches the friends screen for the current query and tab.
func (vm *ViewModel) LoadContacts(ctx context.Context) error {
	vm.mu.RLock()
	query, filter, gen := vm.friendQuery, vm.friendsFilter, vm.friendsGen
	vm.mu.RUnlock()

	resp, err := vm.client.Roster.ListContacts(ctx, &rpc.ListContactsRequest{
		Clock:  vm.clock(),
		Query:  query,
		Filter: string(filter),
	})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	if gen != vm.friendsGen {
		vm.mu.Unlock()
		return nil
	}
	vm.friends = resp.View
	vm.friendsFilter = resp.View.Filter
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// SetFriendQuery changes the friends filter text and reloads the list.
func (vm *ViewModel) SetFriendQuery(ctx context.Context, query string) error {
	vm.mu.Lock()
	vm.friendQuery = query
	vm.friendsGen++
	vm.mu.Unlock()
	return vm.LoadContacts(ctx)
}

// SetFriendsTab selects the Online or All tab and reloads the list.
func (vm *ViewModel) SetFriendsTab(ctx context.Context, filter roster.ContactFilter) error {
	vm.mu.Lock()
	vm.friendsFilter = filter
	vm.friendsGen++
	vm.mu.Unlock()
	return vm.LoadContacts(ctx)
}

// ToggleFriendsTab switches between the Online and All tabs.
func (vm *ViewModel) ToggleFriendsTab(ctx context.Context) error {
	vm.mu.RLock()
	next := roster.FilterOnline
	if vm.friendsFilter == roster.FilterOnline {
		next = roster.FilterAll
	}
	vm.mu.RUnlock()
	return vm.SetFriendsTab(ctx, next)
}

// OpenConversation loads a conversation's thread and makes it active. If
// another conversation is opened or the thread is closed before the load
// finishes, the result is dropped.
func (vm *ViewModel) OpenConversation(ctx context.Context, id string) error {
	vm.mu.Lock()
	vm.threadGen++
	gen := vm.threadGen
	vm.mu.Unlock()
	return vm.loadThread(ctx, id, gen)
}

// reloadThread refreshes the open thread, if any.
func (vm *ViewModel) reloadThread(ctx context.Context) error {
	vm.mu.RLock()
	id, gen := vm.activeID, vm.threadGen
	vm.mu.RUnlock()
	if id == "" {
		return nil
	}
	return vm.loadThread(ctx, id, gen)
}

func (vm *ViewModel) loadThread(ctx context.Context, id string, gen uint64) error {
	resp, err := vm.client.Thread.ListMessages(ctx, &rpc.ListMessagesRequest{
		Clock:          vm.clock(),
		ConversationID: id,
	})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	if gen != vm.threadGen {
		vm.mu.Unlock()
		return nil
	}
	vm.activeID = id
	vm.thread = resp
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// ConversationDetails fetches the stored record for one conversation.
func (vm *ViewModel) ConversationDetails(ctx context.Context, id string) (*roster.Conversation, error) {
	resp, err := vm.client.Roster.GetConversation(ctx, &rpc.GetConversationRequest{ID: id})
	if err != nil {
		return nil, err
	}
	return &resp.Conversation, nil
}

// Now returns the clock the view model renders against.
func (vm *ViewModel) Now() time.Time {
	return vm.now()
}

// CloseConversation clears the active thread.
func (vm *ViewModel) CloseConversation() {
	vm.mu.Lock()
	vm.threadGen++
	vm.activeID = ""
	vm.thread = nil
	vm.mu.Unlock()
	vm.signalRefresh()
}

// SendDraft hands text to the daemon for the active conversation. The daemon
// never delivers it; its reply is flashed as a warning.
func (vm *ViewModel) SendDraft(ctx context.Context, text string) error {
	vm.mu.RLock()
	id := vm.activeID
	vm.mu.RUnlock()
	if id == "" {
		return errors.New("no conversation open")
	}

	resp, err := vm.client.Thread.SendText(ctx, &rpc.SendTextRequest{
		ConversationID: id,
		Text:           text,
	})
	if err != nil {
		if grpcstatus.Code(err) == codes.InvalidArgument {
			vm.Flash.Warn(grpcstatus.Convert(err).Message())
		}
		return err
	}
	if resp.Accepted {
		vm.Flash.Info("message sent")
	} else {
		vm.Flash.Warn(resp.Message)
	}
	vm.signalRefresh()
	return nil
}

// RespondToRequest acknowledges an accept or decline on a pending friend
// request. Requests are fixture data, so nothing changes.
func (vm *ViewModel) RespondToRequest(name string, accept bool) {
	verb := "decline"
	if accept {
		verb = "accept"
	}
	vm.Flash.Warn("cannot " + verb + " " + name + ": " + RequestsReadOnly)
	vm.signalRefresh()
}

// SignIn starts a simulated sign-in and blocks until it completes.
func (vm *ViewModel) SignIn(ctx context.Context, email, password string) (*rpc.Account, error) {
	resp, err := vm.client.Session.SignIn(ctx, &rpc.SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	_ = vm.LoadStatus(ctx)
	return &resp.Account, nil
}

// SignUp registers and signs in.
func (vm *ViewModel) SignUp(ctx context.Context, req *rpc.SignUpRequest) (*rpc.Account, error) {
	resp, err := vm.client.Session.SignUp(ctx, req)
	if err != nil {
		return nil, err
	}
	_ = vm.LoadStatus(ctx)
	return &resp.Account, nil
}

// SignOut ends the session and drops every cached view.
func (vm *ViewModel) SignOut(ctx context.Context) error {
	if _, err := vm.client.Session.SignOut(ctx, &rpc.SignOutRequest{}); err != nil {
		return err
	}
	vm.mu.Lock()
	vm.chats = roster.ConversationView{}
	vm.friends = roster.ContactView{}
	vm.thread = nil
	vm.activeID = ""
	vm.chatsGen++
	vm.friendsGen++
	vm.threadGen++
	vm.mu.Unlock()
	return vm.LoadStatus(ctx)
}

// Refresh reloads the status and, when signed in, every cached view.
func (vm *ViewModel) Refresh(ctx context.Context) error {
	if err := vm.LoadStatus(ctx); err != nil {
		return err
	}
	if !vm.SignedIn() {
		return nil
	}
	if err := vm.LoadConversations(ctx); err != nil {
		return err
	}
	if err := vm.LoadContacts(ctx); err != nil {
		return err
	}
	return vm.reloadThread(ctx)
}

// WatchStatus calls fn for every sign-in state change until ctx is done or
// the daemon closes the stream.
func (vm *ViewModel) WatchStatus(ctx context.Context, fn func(*rpc.StatusEvent)) error {
	stream, err := vm.client.Session.WatchStatus(ctx, &rpc.WatchStatusRequest{})
	if err != nil {
		return err
	}
	for {
		evt, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return err
		}
		fn(evt)
	}
}

// Status returns the last fetched status.
func (vm *ViewModel) Status() *rpc.GetStatusResponse {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.status
}

// SignedIn reports whether the last fetched status is SIGNED_IN.
func (vm *ViewModel) SignedIn() bool {
	st := vm.Status()
	return st != nil && st.Status == string(status.SignedIn)
}

// Conversations returns the cached chat list.
func (vm *ViewModel) Conversations() roster.ConversationView {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.chats
}

// ChatQuery returns the active chat list filter.
func (vm *ViewModel) ChatQuery() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.chatQuery
}

// Contacts returns the cached friends screen.
func (vm *ViewModel) Contacts() roster.ContactView {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.friends
}

// FriendQuery returns the active friends filter text.
func (vm *ViewModel) FriendQuery() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.friendQuery
}

// Thread returns the open conversation, or nil.
func (vm *ViewModel) Thread() *rpc.ListMessagesResponse {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.thread
}

// ActiveConversation returns the id of the open conversation.
func (vm *ViewModel) ActiveConversation() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.activeID
}
