package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session := &domain.Session{ID: "s1"}
	session.AppendMessage(domain.RoleUser, "hello", domain.DefaultHistoryLimit)

	require.NoError(t, store.Save(ctx, session))

	loaded, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", loaded.ID)
	require.Len(t, loaded.Messages, 1)
	assert.Equal(t, "hello", loaded.Messages[0].Content)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session := &domain.Session{ID: "s1"}
	session.AppendMessage(domain.RoleUser, "original", domain.DefaultHistoryLimit)
	require.NoError(t, store.Save(ctx, session))

	loaded, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	loaded.Messages[0].Content = "mutated"

	reloaded, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "original", reloaded.Messages[0].Content)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Session{ID: "s1"}))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
