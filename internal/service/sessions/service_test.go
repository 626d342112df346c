package sessions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	sessionStore "github.com/m04kA/SMC-AssistantService/internal/infra/session"
	"github.com/m04kA/SMC-AssistantService/internal/service/ragindex"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newService() (*Service, *sessionStore.MemoryStore, *ragindex.Registry) {
	store := sessionStore.NewMemoryStore()
	registry := ragindex.NewRegistry()
	return NewService(store, registry, nopLogger{}), store, registry
}

func TestService_Create(t *testing.T) {
	svc, store, _ := newService()

	session, err := svc.Create(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.False(t, session.CreatedAt.IsZero())

	saved, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, saved.ID)
}

func TestService_Create_UniqueIDs(t *testing.T) {
	svc, _, _ := newService()

	first, err := svc.Create(context.Background())
	require.NoError(t, err)
	second, err := svc.Create(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestService_Get_NotFound(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_Get_NotFound_EvictsOrphanedIndex(t *testing.T) {
	svc, _, registry := newService()
	registry.Put("expired", ragindex.NewIndex(nil))

	_, err := svc.Get(context.Background(), "expired")

	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Nil(t, registry.Get("expired"))
}

func TestService_History(t *testing.T) {
	svc, store, _ := newService()
	require.NoError(t, store.Save(context.Background(), &domain.Session{
		ID: "s1",
		Messages: []domain.ChatMessage{
			{Role: domain.RoleUser, Content: "hi"},
			{Role: domain.RoleAssistant, Content: "hello"},
		},
	}))

	messages, err := svc.History(context.Background(), "s1")

	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestService_ClearHistory_KeepsSessionAndDropsIndex(t *testing.T) {
	svc, store, registry := newService()
	require.NoError(t, store.Save(context.Background(), &domain.Session{
		ID:       "s1",
		Messages: []domain.ChatMessage{{Role: domain.RoleUser, Content: "hi"}},
	}))
	registry.Put("s1", ragindex.NewIndex(nil))

	require.NoError(t, svc.ClearHistory(context.Background(), "s1"))

	session, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, session.Messages)
	assert.Nil(t, registry.Get("s1"))
}
