package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/harifurniture/internal/client/api"
	"github.com/dmitrijs2005/harifurniture/internal/client/session"
)

var (
	// ErrLoginRequired means the action needs a signed-in user. The login
	// modal has been opened when it is returned.
	ErrLoginRequired = errors.New("login required")
	ErrInvalidInput  = errors.New("invalid input")
)

// Session is the part of the session controller the services depend on.
type Session interface {
	State() session.State
	HandleUnauthorized(ctx context.Context)
	SetLoginModalVisible(visible bool) bool
}

// requireUser opens the login modal and fails when nobody is signed in.
func requireUser(s Session) error {
	if s.State().SignedIn() {
		return nil
	}
	s.SetLoginModalVisible(true)
	return ErrLoginRequired
}

// authFailure turns a server-side authorization rejection into
// ErrLoginRequired after dropping the session. Other errors pass through.
func authFailure(ctx context.Context, s Session, err error) error {
	if !errors.Is(err, api.ErrAuth) {
		return err
	}
	s.HandleUnauthorized(ctx)
	s.SetLoginModalVisible(true)
	return errors.Join(ErrLoginRequired, err)
}
