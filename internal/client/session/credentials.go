package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/harifurniture/internal/client/storage"
	"github.com/dmitrijs2005/harifurniture/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Credentials persists the opaque bearer token under the userToken key.
// It also serves as the api.TokenSource.
type Credentials struct {
	store storage.Store
}

func NewCredentials(store storage.Store) *Credentials {
	return &Credentials{store: store}
}

func (c *Credentials) Token(ctx context.Context) (string, error) {
	token, ok, err := c.store.Get(ctx, common.UserTokenKey)
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

func (c *Credentials) Save(ctx context.Context, token string) error {
	if err := c.store.Set(ctx, common.UserTokenKey, token); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (c *Credentials) Evict(ctx context.Context) error {
	if err := c.store.Delete(ctx, common.UserTokenKey); err != nil {
		return fmt.Errorf("evict credential: %w", err)
	}
	return nil
}

var ErrNoExpiry = errors.New("credential carries no expiry")

// CredentialExpiry reads the exp claim of a JWT bearer token. The signature
// is not checked; the result is for display only.
func CredentialExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse credential: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("parse credential: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}
