package requestresponse

import (
	"medical-document-server/internal/model"
	"time"
)

// DocumentResponse : описывает документ для JSON-ответа
type DocumentResponse struct {
	ID             int64      `json:"id" example:"1"`
	Filename       string     `json:"filename" example:"report.pdf"`
	Filesize       int64      `json:"filesize" example:"2048"`
	CreatedAt      string     `json:"created_at" example:"2025-08-23T12:34:56Z"`
	AnalysisStatus string     `json:"analysis_status" example:"pending"`
	AnalyzedAt     *time.Time `json:"analyzed_at"`
}

// DocumentResponseFromModel : конвертирует model.Document в DocumentResponse
func DocumentResponseFromModel(doc *model.Document) DocumentResponse {
	return DocumentResponse{
		ID:             doc.ID,
		Filename:       doc.Filename,
		Filesize:       doc.Filesize,
		CreatedAt:      doc.CreatedAt.Format(time.RFC3339),
		AnalysisStatus: doc.AnalysisStatus,
		AnalyzedAt:     doc.AnalyzedAt,
	}
}

// UploadDocumentResponse : ответ при успешной загрузке документа
type UploadDocumentResponse struct {
	DocumentResponse
	Message string `json:"message" example:"файл успешно загружен"`
}

// ListDocumentsResponse : ответ API со списком документов
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Count     int                `json:"count" example:"10"`
}

// DeleteDocumentResponse : ответ при удалении документа
type DeleteDocumentResponse struct {
	Message string `json:"message" example:"документ успешно удалён"`
}

// AnalyzeDocumentResponse : ответ при запуске анализа документа
type AnalyzeDocumentResponse struct {
	Message    string     `json:"message" example:"документ успешно проанализирован"`
	Analysis   string     `json:"analysis,omitempty"`
	Status     string     `json:"status" example:"completed"`
	AnalyzedAt *time.Time `json:"analyzed_at"`
}

// AnalysisResultResponse : ответ с сохранёнными результатами анализа
type AnalysisResultResponse struct {
	Analysis   *string    `json:"analysis"`
	Status     string     `json:"status" example:"pending"`
	AnalyzedAt *time.Time `json:"analyzed_at"`
}

// ErrorResponse : общий объект ошибки
type ErrorResponse struct {
	Error   string `json:"error" example:"Bad Request"`
	Message string `json:"message" example:"описание ошибки"`
	Code    int    `json:"code" example:"400"`
}
