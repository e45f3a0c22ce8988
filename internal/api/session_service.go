package api

import (
	"context"
	"time"

	"github.com/matheus3301/huddle/internal/auth"
	"github.com/matheus3301/huddle/internal/bus"
	"github.com/matheus3301/huddle/internal/rpc"
	"github.com/matheus3301/huddle/internal/status"
	"github.com/matheus3301/huddle/internal/store"
	"go.uber.org/zap"
)

// SessionService implements rpc.SessionServer on top of the auth simulator.
type SessionService struct {
	profile   string
	locale    string
	startedAt time.Time
	machine   *status.Machine
	auth      *auth.Simulator
	bus       *bus.Bus
	stats     Stats
	logger    *zap.Logger
}

// NewSessionService creates a new session service. stats may be nil.
func NewSessionService(profile, locale string, machine *status.Machine, sim *auth.Simulator, b *bus.Bus, stats Stats, logger *zap.Logger) *SessionService {
	return &SessionService{
		profile:   profile,
		locale:    locale,
		startedAt: time.Now(),
		machine:   machine,
		auth:      sim,
		bus:       b,
		stats:     stats,
		logger:    logger,
	}
}

func (s *SessionService) GetStatus(_ context.Context, _ *rpc.GetStatusRequest) (*rpc.GetStatusResponse, error) {
	resp := &rpc.GetStatusResponse{
		Profile:  s.profile,
		Status:   string(s.machine.Current()),
		Since:    rpc.TimestampOf(s.machine.Since()),
		UptimeMs: time.Since(s.startedAt).Milliseconds(),
		Locale:   s.locale,
	}
	if acct := s.auth.Account(); acct != nil {
		resp.Account = publicAccount(acct)
	}

	if s.stats != nil {
		if c, err := s.stats.Counts(); err == nil {
			resp.Conversations = c.Conversations
			resp.Contacts = c.Contacts
			resp.Requests = c.Requests
			resp.Messages = c.Messages
		} else {
			s.logger.Warn("count rows", zap.Error(err))
		}
		if v, err := s.stats.GetMeta(store.MetaSeededAt); err == nil {
			resp.SeededAt = v
		}
	}
	return resp, nil
}

func (s *SessionService) SignIn(ctx context.Context, req *rpc.SignInRequest) (*rpc.SignInResponse, error) {
	acct, err := s.auth.SignIn(ctx, auth.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, toStatus("sign in", err)
	}
	return &rpc.SignInResponse{Account: *publicAccount(acct), Token: acct.Token}, nil
}

func (s *SessionService) SignUp(ctx context.Context, req *rpc.SignUpRequest) (*rpc.SignInResponse, error) {
	acct, err := s.auth.SignUp(ctx, auth.Registration{
		FullName:        req.FullName,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return nil, toStatus("sign up", err)
	}
	return &rpc.SignInResponse{Account: *publicAccount(acct), Token: acct.Token}, nil
}

func (s *SessionService) SignOut(_ context.Context, _ *rpc.SignOutRequest) (*rpc.SignOutResponse, error) {
	if err := s.auth.SignOut(); err != nil {
		return nil, toStatus("sign out", err)
	}
	return &rpc.SignOutResponse{Status: string(s.machine.Current())}, nil
}

// WatchStatus sends the current state, then every transition until the
// client goes away.
func (s *SessionService) WatchStatus(_ *rpc.WatchStatusRequest, stream rpc.WatchStatusStream) error {
	ch, unsub := s.bus.Subscribe(bus.NamespaceSession, 64)
	defer unsub()

	if err := stream.Send(&rpc.StatusEvent{
		To: string(s.machine.Current()),
		At: rpc.TimestampOf(s.machine.Since()),
	}); err != nil {
		return err
	}

	for {
		select {
		case evt := <-ch:
			change, ok := evt.Payload.(status.StatusChange)
			if evt.Kind != bus.KindStatusChanged || !ok {
				continue
			}
			if err := stream.Send(&rpc.StatusEvent{
				ID:   evt.ID,
				From: string(change.From),
				To:   string(change.To),
				At:   rpc.TimestampOf(evt.Timestamp),
			}); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		}
	}
}

func publicAccount(a *auth.Account) *rpc.Account {
	return &rpc.Account{
		Email:       a.Email,
		DisplayName: a.DisplayName,
		Handle:      a.Handle,
		SignedInAt:  rpc.TimestampOf(a.SignedInAt),
	}
}
