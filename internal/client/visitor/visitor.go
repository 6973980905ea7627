// Package visitor owns the anonymous visitor identifier used to track likes
// without requiring a login.
//
// The identifier is resolved once at start-up and handed to every page that
// needs it, so at most one identifier is ever generated per device.
package visitor

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/harifurniture/internal/common"
	"github.com/google/uuid"
)

const prefix = "v_"

// Store is the persistence the identifier needs.
type Store interface {
	GetOrCreate(ctx context.Context, key string, create func() string) (string, error)
}

// Ensure returns the persisted visitor identifier, creating it on first use.
func Ensure(ctx context.Context, s Store) (string, error) {
	id, err := s.GetOrCreate(ctx, common.VisitorIDKey, NewID)
	if err != nil {
		return "", fmt.Errorf("resolve visitor id: %w", err)
	}
	return id, nil
}

// NewID generates a fresh identifier such as "v_3f1c9a0e5b6d4b2f8a7e6d5c4b3a2910".
func NewID() string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
