package bookingform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	sessionStore "github.com/m04kA/SMC-AssistantService/internal/infra/session"
	"github.com/m04kA/SMC-AssistantService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newServiceWithSession(t *testing.T) (*Service, *sessionStore.MemoryStore) {
	t.Helper()
	store := sessionStore.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), &domain.Session{ID: "s1"}))
	return NewService(store, nopLogger{}), store
}

func TestService_Update_FillsFieldsIncrementally(t *testing.T) {
	svc, _ := newServiceWithSession(t)
	ctx := context.Background()

	resp, err := svc.Update(ctx, "s1", &UpdateRequest{Name: ptr.Ptr("Ann"), Email: ptr.Ptr("ann@x.com")})
	require.NoError(t, err)
	assert.False(t, resp.Complete)
	assert.Empty(t, resp.Summary)

	resp, err = svc.Update(ctx, "s1", &UpdateRequest{
		Phone:       ptr.Ptr("555"),
		BookingType: ptr.Ptr("salon"),
		Date:        ptr.Ptr("2024-05-01"),
		Time:        ptr.Ptr("10:00"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Complete)
	assert.Equal(t, "Ann", resp.State.Name)
	assert.Contains(t, resp.Summary, "ann@x.com")
	assert.Contains(t, resp.Summary, "2024-05-01")
}

func TestService_Update_NilFieldsUntouched(t *testing.T) {
	svc, _ := newServiceWithSession(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "s1", &UpdateRequest{Name: ptr.Ptr("Ann")})
	require.NoError(t, err)

	resp, err := svc.Update(ctx, "s1", &UpdateRequest{Email: ptr.Ptr("ann@x.com")})
	require.NoError(t, err)
	assert.Equal(t, "Ann", resp.State.Name)
}

func TestService_Update_EmptyStringClearsField(t *testing.T) {
	svc, _ := newServiceWithSession(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "s1", &UpdateRequest{Name: ptr.Ptr("Ann")})
	require.NoError(t, err)

	resp, err := svc.Update(ctx, "s1", &UpdateRequest{Name: ptr.Ptr("")})
	require.NoError(t, err)
	assert.Equal(t, "", resp.State.Name)
}

func TestService_Update_EnablesBookingMode(t *testing.T) {
	svc, store := newServiceWithSession(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "s1", &UpdateRequest{Name: ptr.Ptr("Ann")})
	require.NoError(t, err)

	session, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, session.BookingMode)
}

func TestService_Get_MissingSession(t *testing.T) {
	svc := NewService(sessionStore.NewMemoryStore(), nopLogger{})

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
