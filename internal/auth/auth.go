// Package auth simulates the sign-in and sign-up flows. Nothing is checked
// against a user database: any well-formed form succeeds after a delay.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/matheus3301/huddle/internal/bus"
	"github.com/matheus3301/huddle/internal/status"
	"go.uber.org/zap"
)

// Default delays, matching the original forms.
const (
	DefaultSignInDelay = 1500 * time.Millisecond
	DefaultSignUpDelay = 2 * time.Second
)

// ErrInvalidForm is wrapped by every FormError.
var ErrInvalidForm = errors.New("invalid form")

// FormError reports which field of a form was rejected.
type FormError struct {
	Field  string
	Reason string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FormError) Unwrap() error { return ErrInvalidForm }

// Credentials is the sign-in form.
type Credentials struct {
	Email    string
	Password string
}

// Registration is the sign-up form.
type Registration struct {
	FullName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Account is the simulated signed-in identity.
type Account struct {
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Handle      string    `json:"handle"`
	Token       string    `json:"token"`
	SignedInAt  time.Time `json:"signed_in_at"`
}

// Simulator drives the status machine through a fake sign-in.
type Simulator struct {
	machine     *status.Machine
	bus         *bus.Bus
	log         *zap.Logger
	signInDelay time.Duration
	signUpDelay time.Duration
	now         func() time.Time

	mu      sync.RWMutex
	account *Account
}

// NewSimulator creates a simulator. Non-positive delays fall back to the defaults.
func NewSimulator(m *status.Machine, b *bus.Bus, log *zap.Logger, signInDelay, signUpDelay time.Duration) *Simulator {
	if signInDelay <= 0 {
		signInDelay = DefaultSignInDelay
	}
	if signUpDelay <= 0 {
		signUpDelay = DefaultSignUpDelay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulator{
		machine:     m,
		bus:         b,
		log:         log,
		signInDelay: signInDelay,
		signUpDelay: signUpDelay,
		now:         time.Now,
	}
}

// Account returns the signed-in account, or nil when signed out.
func (s *Simulator) Account() *Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.account == nil {
		return nil
	}
	a := *s.account
	return &a
}

// SignIn validates the credentials and, after the sign-in delay, signs in.
// Cancelling ctx while waiting returns the machine to SIGNED_OUT.
func (s *Simulator) SignIn(ctx context.Context, c Credentials) (*Account, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	local, _, _ := strings.Cut(strings.TrimSpace(c.Email), "@")
	return s.run(ctx, s.signInDelay, Account{
		Email:       strings.TrimSpace(c.Email),
		DisplayName: local,
		Handle:      "@" + strings.ToLower(local),
	})
}

// SignUp validates the registration and, after the sign-up delay, signs in
// as the new account.
func (s *Simulator) SignUp(ctx context.Context, r Registration) (*Account, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return s.run(ctx, s.signUpDelay, Account{
		Email:       strings.TrimSpace(r.Email),
		DisplayName: strings.TrimSpace(r.FullName),
		Handle:      "@" + strings.TrimPrefix(strings.TrimSpace(r.Username), "@"),
	})
}

// SignOut forgets the account and returns to SIGNED_OUT.
func (s *Simulator) SignOut() error {
	if err := s.machine.Transition(status.SignedOut); err != nil {
		return err
	}
	s.mu.Lock()
	s.account = nil
	s.mu.Unlock()

	s.log.Info("signed out")
	if s.bus != nil {
		s.bus.Publish(bus.NewEvent(bus.KindSignedOut, s.now(), nil))
	}
	return nil
}

func (s *Simulator) run(ctx context.Context, delay time.Duration, acct Account) (*Account, error) {
	if err := s.machine.Transition(status.SigningIn); err != nil {
		return nil, err
	}
	s.log.Info("signing in", zap.String("email", acct.Email), zap.Duration("delay", delay))

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		if err := s.machine.Transition(status.SignedOut); err != nil {
			s.log.Warn("reset after cancelled sign-in", zap.Error(err))
		}
		s.log.Info("sign-in cancelled", zap.Error(ctx.Err()))
		return nil, ctx.Err()
	case <-timer.C:
	}

	acct.Token = uuid.NewString()
	acct.SignedInAt = s.now()
	s.mu.Lock()
	s.account = &acct
	s.mu.Unlock()

	if err := s.machine.Transition(status.SignedIn); err != nil {
		s.mu.Lock()
		s.account = nil
		s.mu.Unlock()
		return nil, err
	}
	s.log.Info("signed in", zap.String("handle", acct.Handle))
	if s.bus != nil {
		s.bus.Publish(bus.NewEvent(bus.KindSignedIn, acct.SignedInAt, acct))
	}
	out := acct
	return &out, nil
}

// Validate checks the sign-in form.
func (c Credentials) Validate() error {
	if err := validateEmail(c.Email); err != nil {
		return err
	}
	if c.Password == "" {
		return &FormError{Field: "password", Reason: "required"}
	}
	return nil
}

// Validate checks the sign-up form.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return &FormError{Field: "full_name", Reason: "required"}
	}
	username := strings.TrimPrefix(strings.TrimSpace(r.Username), "@")
	if username == "" {
		return &FormError{Field: "username", Reason: "required"}
	}
	if strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return &FormError{Field: "username", Reason: "must not contain spaces"}
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return &FormError{Field: "password", Reason: "required"}
	}
	if r.ConfirmPassword != r.Password {
		return &FormError{Field: "confirm_password", Reason: "does not match"}
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &FormError{Field: "email", Reason: "required"}
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return &FormError{Field: "email", Reason: "must look like name@host"}
	}
	return nil
}
