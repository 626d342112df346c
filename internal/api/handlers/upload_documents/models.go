package upload_documents

import (
	buildIndex "github.com/m04kA/SMC-AssistantService/internal/usecase/build_index"
)

// UploadResponse HTTP response model
type UploadResponse struct {
	Documents int `json:"documents"`
	Chunks    int `json:"chunks"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildIndex.Response) *UploadResponse {
	return &UploadResponse{
		Documents: resp.Documents,
		Chunks:    resp.Chunks,
	}
}
