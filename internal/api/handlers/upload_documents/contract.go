package upload_documents

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	buildIndex "github.com/m04kA/SMC-AssistantService/internal/usecase/build_index"
)

type BuildIndexUseCase interface {
	Execute(ctx context.Context, sessionID string, files []buildIndex.File) (*buildIndex.Response, error)
}

type SessionService interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
