package send_message

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	sendMessage "github.com/m04kA/SMC-AssistantService/internal/usecase/send_message"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *sendMessage.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, sessionID, message string) (*sendMessage.Response, error) {
	return f.resp, f.err
}

func doRequest(uc SendMessageUseCase, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	handler := NewHandler(uc, nopLogger{})
	router.HandleFunc("/api/v1/sessions/{sessionId}/messages", handler.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s1/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &sendMessage.Response{Reply: "hi there", Route: sendMessage.RouteChat}}

	rec := doRequest(uc, `{"message": "hello"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hi there")
}

func TestHandle_EmptyMessage(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(uc, `{"message": "   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(uc, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_SessionNotFound(t *testing.T) {
	uc := &fakeUseCase{err: sendMessage.ErrSessionNotFound}

	rec := doRequest(uc, `{"message": "hello"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_LLMNotConfigured(t *testing.T) {
	uc := &fakeUseCase{err: sendMessage.ErrLLMNotConfigured}

	rec := doRequest(uc, `{"message": "hello"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandle_UpstreamFailure(t *testing.T) {
	uc := &fakeUseCase{err: sendMessage.ErrUpstream}

	rec := doRequest(uc, `{"message": "hello"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: sendMessage.ErrInternal}

	rec := doRequest(uc, `{"message": "hello"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
