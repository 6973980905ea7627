package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, ok, err := m.Get(ctx, "loginPopupShown")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "loginPopupShown", "true"))
	v, ok, err := m.Get(ctx, "loginPopupShown")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	v, err = m.GetOrCreate(ctx, "loginPopupShown", func() string { return "other" })
	require.NoError(t, err)
	assert.Equal(t, "true", v)

	require.NoError(t, m.Delete(ctx, "loginPopupShown"))
	_, ok, _ = m.Get(ctx, "loginPopupShown")
	assert.False(t, ok)
}

func TestStoresSatisfyInterface(t *testing.T) {
	var _ Store = NewMemoryStore()
	var _ Store = (*SQLiteStore)(nil)
}
