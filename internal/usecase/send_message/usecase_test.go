package send_message

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	sessionStore "github.com/m04kA/SMC-AssistantService/internal/infra/session"
	"github.com/m04kA/SMC-AssistantService/internal/integrations/gemini"
	"github.com/m04kA/SMC-AssistantService/internal/service/ragindex"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeLLM struct {
	reply   string
	err     error
	invoked bool
	prompt  string
}

func (f *fakeLLM) Invoke(ctx context.Context, prompt string) (string, error) {
	f.invoked = true
	f.prompt = prompt
	return f.reply, f.err
}

type fakeAnswerer struct {
	answer  string
	err     error
	invoked bool
	query   string
}

func (f *fakeAnswerer) Execute(ctx context.Context, sessionID, query string) (string, error) {
	f.invoked = true
	f.query = query
	return f.answer, f.err
}

type fakeMetrics struct {
	routes []string
}

func (f *fakeMetrics) RecordChatTurn(route string) {
	f.routes = append(f.routes, route)
}

type env struct {
	store    *sessionStore.MemoryStore
	llm      *fakeLLM
	answerer *fakeAnswerer
	registry *ragindex.Registry
	metrics  *fakeMetrics
	uc       *UseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{
		store:    sessionStore.NewMemoryStore(),
		llm:      &fakeLLM{reply: "model reply"},
		answerer: &fakeAnswerer{answer: "doc answer"},
		registry: ragindex.NewRegistry(),
		metrics:  &fakeMetrics{},
	}
	require.NoError(t, e.store.Save(context.Background(), &domain.Session{ID: "s1"}))
	e.uc = NewUseCase(e.store, e.llm, e.answerer, e.registry, e.metrics, 25, nopLogger{})
	return e
}

func TestExecute_BookingIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"keyword book", "I want to book a visit"},
		{"keyword appointment", "need an APPOINTMENT tomorrow"},
		{"keyword reservation", "do you take reservation requests?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)

			resp, err := e.uc.Execute(context.Background(), "s1", tt.message)

			require.NoError(t, err)
			assert.Equal(t, BookingIntentMessage, resp.Reply)
			assert.Equal(t, RouteBookingIntent, resp.Route)
			assert.True(t, resp.BookingMode)
			assert.False(t, e.llm.invoked)
			assert.False(t, e.answerer.invoked)

			session, err := e.store.Get(context.Background(), "s1")
			require.NoError(t, err)
			assert.True(t, session.BookingMode)
		})
	}
}

func TestExecute_PlainChat_WhenNoDocuments(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background(), "s1", "hello there")

	require.NoError(t, err)
	assert.Equal(t, "model reply", resp.Reply)
	assert.Equal(t, RouteChat, resp.Route)
	assert.True(t, e.llm.invoked)
	assert.Equal(t, "hello there", e.llm.prompt)
	assert.False(t, e.answerer.invoked)
	assert.Equal(t, []string{RouteChat}, e.metrics.routes)
}

func TestExecute_DocumentsRoute_WhenIndexExists(t *testing.T) {
	e := newEnv(t)
	e.registry.Put("s1", ragindex.NewIndex(nil))

	resp, err := e.uc.Execute(context.Background(), "s1", "what does the document say?")

	require.NoError(t, err)
	assert.Equal(t, "doc answer", resp.Reply)
	assert.Equal(t, RouteDocuments, resp.Route)
	assert.True(t, e.answerer.invoked)
	assert.Equal(t, "what does the document say?", e.answerer.query)
	assert.False(t, e.llm.invoked)
}

func TestExecute_AppendsBothMessagesToHistory(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background(), "s1", "hello")
	require.NoError(t, err)

	require.Len(t, resp.History, 2)
	assert.Equal(t, domain.ChatMessage{Role: domain.RoleUser, Content: "hello"}, resp.History[0])
	assert.Equal(t, domain.ChatMessage{Role: domain.RoleAssistant, Content: "model reply"}, resp.History[1])

	session, err := e.store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, session.Messages, 2)
}

func TestExecute_TrimsHistoryToLimit(t *testing.T) {
	e := newEnv(t)
	e.uc = NewUseCase(e.store, e.llm, e.answerer, e.registry, e.metrics, 4, nopLogger{})

	for i := 0; i < 5; i++ {
		_, err := e.uc.Execute(context.Background(), "s1", "hello")
		require.NoError(t, err)
	}

	session, err := e.store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, session.Messages, 4)
}

func TestExecute_SessionNotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), "missing", "hello")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_SessionNotFound_EvictsOrphanedIndex(t *testing.T) {
	e := newEnv(t)
	e.registry.Put("expired", ragindex.NewIndex(nil))

	_, err := e.uc.Execute(context.Background(), "expired", "hello")

	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Nil(t, e.registry.Get("expired"))
}

func TestExecute_NilModel_ReturnsNotConfigured(t *testing.T) {
	e := newEnv(t)
	e.uc = NewUseCase(e.store, nil, e.answerer, e.registry, e.metrics, 25, nopLogger{})

	_, err := e.uc.Execute(context.Background(), "s1", "hello")

	assert.ErrorIs(t, err, ErrLLMNotConfigured)

	// Намерение бронирования обрабатывается и без модели
	resp, err := e.uc.Execute(context.Background(), "s1", "book me in")
	require.NoError(t, err)
	assert.Equal(t, BookingIntentMessage, resp.Reply)
}

func TestExecute_MapsGeminiNotConfigured(t *testing.T) {
	e := newEnv(t)
	e.llm.err = gemini.ErrNotConfigured

	_, err := e.uc.Execute(context.Background(), "s1", "hello")

	assert.ErrorIs(t, err, ErrLLMNotConfigured)

	// Неудачный ход диалога не попадает в историю
	session, storeErr := e.store.Get(context.Background(), "s1")
	require.NoError(t, storeErr)
	assert.Empty(t, session.Messages)
}

func TestExecute_ModelErrorDoesNotTouchHistory(t *testing.T) {
	e := newEnv(t)
	e.llm.err = assert.AnError

	_, err := e.uc.Execute(context.Background(), "s1", "hello")

	assert.ErrorIs(t, err, ErrUpstream)

	session, storeErr := e.store.Get(context.Background(), "s1")
	require.NoError(t, storeErr)
	assert.Empty(t, session.Messages)
	assert.Empty(t, e.metrics.routes)
}

func TestExecute_AnswererErrorReturnsUpstream(t *testing.T) {
	e := newEnv(t)
	e.registry.Put("s1", ragindex.NewIndex(nil))
	e.answerer.err = assert.AnError

	_, err := e.uc.Execute(context.Background(), "s1", "what does the document say?")

	assert.ErrorIs(t, err, ErrUpstream)
	assert.NotErrorIs(t, err, ErrInternal)
}
