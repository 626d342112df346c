package upload_documents

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantService/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantService/internal/service/sessions"
	buildIndex "github.com/m04kA/SMC-AssistantService/internal/usecase/build_index"
)

const (
	msgInvalidForm       = "некорректная multipart-форма"
	msgNoFiles           = "не переданы файлы, ожидается поле files"
	msgSessionNotFound   = "сессия не найдена"
	msgInvalidDocument   = "файл не является корректным PDF-документом"
	msgNoExtractableText = "в загруженных документах нет извлекаемого текста"
	msgLLMNotConfigured  = "языковая модель не настроена"
	msgFileReadFailed    = "не удалось прочитать загруженный файл"
)

// maxUploadBytes ограничение на суммарный размер multipart-формы
const maxUploadBytes = 32 << 20

type Handler struct {
	useCase  BuildIndexUseCase
	sessions SessionService
	logger   Logger
}

func NewHandler(useCase BuildIndexUseCase, sessions SessionService, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/documents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if _, err := h.sessions.Get(r.Context(), sessionID); err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("POST /sessions/{id}/documents - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/documents - Failed to get session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.Warn("POST /sessions/{id}/documents - Invalid multipart form: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		h.logger.Warn("POST /sessions/{id}/documents - No files in form: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgNoFiles)
		return
	}

	files := make([]buildIndex.File, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		file, err := header.Open()
		if err != nil {
			h.logger.Error("POST /sessions/{id}/documents - Failed to open %s: session_id=%s, error=%v",
				header.Filename, sessionID, err)
			handlers.RespondBadRequest(w, msgFileReadFailed)
			return
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			h.logger.Error("POST /sessions/{id}/documents - Failed to read %s: session_id=%s, error=%v",
				header.Filename, sessionID, err)
			handlers.RespondBadRequest(w, msgFileReadFailed)
			return
		}

		files = append(files, buildIndex.File{Name: header.Filename, Data: data})
	}

	result, err := h.useCase.Execute(r.Context(), sessionID, files)
	if err != nil {
		switch {
		case errors.Is(err, buildIndex.ErrInvalidDocument):
			h.logger.Warn("POST /sessions/{id}/documents - Invalid document: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidDocument)

		case errors.Is(err, buildIndex.ErrNoExtractableText):
			h.logger.Warn("POST /sessions/{id}/documents - No extractable text: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoExtractableText)

		case errors.Is(err, buildIndex.ErrLLMNotConfigured):
			h.logger.Warn("POST /sessions/{id}/documents - LLM not configured: session_id=%s", sessionID)
			handlers.RespondServiceUnavailable(w, msgLLMNotConfigured)

		default:
			h.logger.Error("POST /sessions/{id}/documents - Failed to build index: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/documents - Index built: session_id=%s, documents=%d, chunks=%d",
		sessionID, result.Documents, result.Chunks)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
