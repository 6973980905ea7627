package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/harifurniture/internal/client/api"
	"github.com/dmitrijs2005/harifurniture/internal/client/models"
	"github.com/dmitrijs2005/harifurniture/internal/logging"
)

var (
	ErrNotSignedIn       = errors.New("not signed in")
	ErrEmptyCredential   = errors.New("credential is empty")
	ErrMissingToken      = errors.New("login response carries no token")
	ErrSessionSuperseded = errors.New("session changed while the request was in flight")
)

// Backend is the part of the REST API the controller talks to.
type Backend interface {
	VerifyUser(ctx context.Context) (*models.UserProfile, error)
	GoogleLogin(ctx context.Context, credential string) (*models.LoginResponse, error)
	UpdateProfile(ctx context.Context, name, phone string) (*models.UserProfile, error)
}

// CredentialStore persists the bearer token.
type CredentialStore interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Evict(ctx context.Context) error
}

type Controller struct {
	backend Backend
	creds   CredentialStore
	logger  logging.Logger

	bootstrapOnce sync.Once

	mu    sync.RWMutex
	state State
	// gen changes whenever the signed-in user changes, so results of
	// requests started before the change can be discarded.
	gen uint64

	subMu     sync.Mutex
	subs      map[int]func(State)
	nextSubID int
}

func NewController(backend Backend, creds CredentialStore, logger logging.Logger) *Controller {
	return &Controller{
		backend: backend,
		creds:   creds,
		logger:  logger.With("component", "session"),
		state:   State{IsLoading: true},
		subs:    make(map[int]func(State)),
	}
}

// State returns a snapshot of the current session.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every state change.
// The returned func removes the subscription.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.subMu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// Bootstrap restores the session from the persisted credential. Only the
// first call does anything; failures are logged and leave nobody signed in.
func (c *Controller) Bootstrap(ctx context.Context) {
	c.bootstrapOnce.Do(func() { c.bootstrap(ctx) })
}

func (c *Controller) bootstrap(ctx context.Context) {
	c.mu.RLock()
	gen := c.gen
	c.mu.RUnlock()

	var (
		user  *models.UserProfile
		evict bool
	)
	defer func() {
		c.mu.Lock()
		if c.gen == gen {
			switch {
			case user != nil:
				c.state.User = user
				c.gen++
			case evict:
				if err := c.creds.Evict(context.WithoutCancel(ctx)); err != nil {
					c.logger.Warn(ctx, "failed to evict rejected credential", "error", err)
				}
			}
		}
		c.state.IsLoading = false
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
	}()

	token, err := c.creds.Token(ctx)
	if err != nil {
		c.logger.Warn(ctx, "failed to read stored credential", "error", err)
		return
	}
	if token == "" {
		return
	}

	verified, err := c.backend.VerifyUser(ctx)
	if err != nil {
		if ctx.Err() != nil {
			c.logger.Info(ctx, "session restore cancelled", "error", err)
			return
		}
		c.logger.Info(ctx, "stored credential rejected", "error", err)
		evict = true
		return
	}
	user = verified.Clone()
	c.logger.Debug(ctx, "session restored", "user", user.ID)
}

// LoginWithExternalCredential exchanges an identity-provider credential for
// a bearer token, persists it and signs the user in. When the response asks
// for a phone number the login modal stays open for the phone step;
// otherwise it is closed.
func (c *Controller) LoginWithExternalCredential(ctx context.Context, credential string) (*models.LoginResponse, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, fmt.Errorf("login: %w", ErrEmptyCredential)
	}

	resp, err := c.backend.GoogleLogin(ctx, credential)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login: %w", ErrMissingToken)
	}

	c.mu.Lock()
	if err := c.creds.Save(ctx, resp.Token); err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("login: %w", err)
	}
	c.state.User = resp.User.Clone()
	c.gen++
	if resp.NeedsPhone {
		c.state.PhoneEntryPending = true
		c.state.LoginModalVisible = true
	} else {
		c.state.PhoneEntryPending = false
		c.state.LoginModalVisible = false
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	c.logger.Info(ctx, "signed in", "user", resp.User.ID, "needsPhone", resp.NeedsPhone)
	return resp, nil
}

// UpdateProfile saves name and phone and replaces the cached user with the
// server's answer. Completing the phone step also closes the login modal.
// An authorization failure signs the user out.
func (c *Controller) UpdateProfile(ctx context.Context, name, phone string) (*models.UserProfile, error) {
	c.mu.RLock()
	signedIn := c.state.User != nil
	gen := c.gen
	c.mu.RUnlock()
	if !signedIn {
		return nil, fmt.Errorf("update profile: %w", ErrNotSignedIn)
	}

	updated, err := c.backend.UpdateProfile(ctx, name, phone)
	if err != nil {
		if errors.Is(err, api.ErrAuth) {
			c.HandleUnauthorized(ctx)
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	c.mu.Lock()
	if c.gen != gen || c.state.User == nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("update profile: %w", ErrSessionSuperseded)
	}
	c.state.User = updated.Clone()
	c.gen++
	if c.state.PhoneEntryPending {
		c.state.PhoneEntryPending = false
		c.state.LoginModalVisible = false
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	return updated.Clone(), nil
}

// Logout forgets the credential and the user. It never calls the network
// and may be called any number of times. The user is cleared even when the
// credential could not be removed from storage.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// HandleUnauthorized drops the session after a protected call was rejected
// with an authorization error.
func (c *Controller) HandleUnauthorized(ctx context.Context) {
	if err := c.clear(ctx); err != nil {
		c.logger.Warn(ctx, "failed to evict credential after authorization failure", "error", err)
		return
	}
	c.logger.Info(ctx, "credential rejected by server, signed out")
}

func (c *Controller) clear(ctx context.Context) error {
	c.mu.Lock()
	err := c.creds.Evict(ctx)
	changed := c.state.User != nil || c.state.ProfileModalVisible || c.state.PhoneEntryPending
	c.state.User = nil
	c.state.ProfileModalVisible = false
	c.state.PhoneEntryPending = false
	c.gen++
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
	return err
}

// SetLoginModalVisible opens or closes the login modal. Closing is refused
// while the phone step is pending. It reports whether the request was applied.
func (c *Controller) SetLoginModalVisible(visible bool) bool {
	c.mu.Lock()
	if !visible && c.state.PhoneEntryPending {
		c.mu.Unlock()
		return false
	}
	changed := c.state.LoginModalVisible != visible
	c.state.LoginModalVisible = visible
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
	return true
}

// SetProfileModalVisible opens or closes the profile editor. Opening is
// refused when nobody is signed in.
func (c *Controller) SetProfileModalVisible(visible bool) bool {
	c.mu.Lock()
	if visible && c.state.User == nil {
		c.mu.Unlock()
		return false
	}
	changed := c.state.ProfileModalVisible != visible
	c.state.ProfileModalVisible = visible
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
	return true
}

func (c *Controller) snapshotLocked() State {
	s := c.state
	s.User = s.User.Clone()
	return s
}

func (c *Controller) notify(s State) {
	c.subMu.Lock()
	fns := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		own := s
		own.User = s.User.Clone()
		fn(own)
	}
}
