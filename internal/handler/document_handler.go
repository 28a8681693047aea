package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"medical-document-server/internal/model/requestresponse"
	"medical-document-server/internal/ports"
	"medical-document-server/internal/service"
	"medical-document-server/internal/util"
	"medical-document-server/internal/validation"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

type DocumentHandler struct {
	documentService ports.DocumentService
	analyzerService ports.AnalyzerService // nil, если анализатор не сконфигурирован
	maxUploadBytes  int64
}

func NewDocumentHandler(documentService ports.DocumentService, analyzerService ports.AnalyzerService, maxUploadBytes int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		analyzerService: analyzerService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// UploadDocument godoc
// @Summary Загрузка PDF-документа
// @Description Принимает multipart/form-data с полем file, проверяет имя, расширение,
// размер и содержимое файла, сохраняет файл и создаёт запись метаданных.
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF-файл"
// @Success 201 {object} requestresponse.UploadDocumentResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Файл не прошёл валидацию"
// @Failure 500 {object} requestresponse.ErrorResponse "Ошибка сохранения файла"
// @Router /api/documents/upload/ [post]
func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	log.Println("[DocumentHandler] получен запрос на загрузку документа")

	if err := r.ParseMultipartForm(h.maxUploadBytes + 1<<20); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		util.HandleError(w, "файл не найден в запросе", http.StatusBadRequest)
		return
	}
	defer file.Close()

	document, err := h.documentService.UploadDocument(ctx, file, header.Filename, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, requestresponse.UploadDocumentResponse{
		DocumentResponse: requestresponse.DocumentResponseFromModel(document),
		Message:          "файл успешно загружен",
	})
}

// ListDocuments godoc
// @Summary Список всех документов
// @Description Возвращает метаданные всех документов, новые первыми.
// @Tags Documents
// @Produce json
// @Success 200 {object} requestresponse.ListDocumentsResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/documents/ [get]
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	documents, err := h.documentService.ListDocuments(ctx)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	responses := make([]requestresponse.DocumentResponse, 0, len(documents))
	for i := range documents {
		responses = append(responses, requestresponse.DocumentResponseFromModel(&documents[i]))
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.ListDocumentsResponse{
		Documents: responses,
		Count:     len(responses),
	})
}

// DownloadDocument godoc
// @Summary Скачивание документа
// @Description Отдаёт содержимое PDF для просмотра в браузере (inline).
// @Tags Documents
// @Produce application/pdf
// @Param document_id path int true "Идентификатор документа"
// @Success 200 {file} file
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный идентификатор"
// @Failure 404 {object} requestresponse.ErrorResponse "Документ или файл не найден"
// @Router /api/documents/{document_id}/ [get]
func (h *DocumentHandler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	id, err := validation.ParseDocumentID(chi.URLParam(r, "document_id"))
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	document, reader, err := h.documentService.DownloadDocument(ctx, id)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	defer reader.Close()

	safeFilename := strings.ReplaceAll(document.Filename, `"`, `\"`)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, safeFilename))
	w.Header().Set("Content-Length", strconv.FormatInt(document.Filesize, 10))

	if _, err := io.Copy(w, reader); err != nil {
		log.Printf("[DocumentHandler] ошибка отдачи файла документа %d: %v", id, err)
	}
}

// DeleteDocument godoc
// @Summary Удаление документа
// @Description Удаляет файл из хранилища и запись из БД. Уже отсутствующий файл
// не считается ошибкой — конечное состояние достигнуто в любом случае.
// @Tags Documents
// @Produce json
// @Param document_id path int true "Идентификатор документа"
// @Success 200 {object} requestresponse.DeleteDocumentResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный идентификатор"
// @Failure 404 {object} requestresponse.ErrorResponse "Документ не найден"
// @Router /api/documents/{document_id}/ [delete]
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := validation.ParseDocumentID(chi.URLParam(r, "document_id"))
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	fileWasMissing, err := h.documentService.DeleteDocument(ctx, id)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	message := "документ успешно удалён"
	if fileWasMissing {
		message += " (файл уже отсутствовал в хранилище)"
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.DeleteDocumentResponse{Message: message})
}

// AnalyzeDocument godoc
// @Summary AI-анализ документа
// @Description Извлекает текст из PDF и запрашивает структурированный анализ у внешнего
// AI-сервиса. Повторный запрос во время обработки возвращает 202 без нового вызова API.
// @Tags Analysis
// @Produce json
// @Param document_id path int true "Идентификатор документа"
// @Success 200 {object} requestresponse.AnalyzeDocumentResponse
// @Success 202 {object} requestresponse.AnalyzeDocumentResponse "Анализ уже выполняется"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный идентификатор"
// @Failure 404 {object} requestresponse.ErrorResponse "Документ или файл не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Ошибка анализа"
// @Failure 503 {object} requestresponse.ErrorResponse "Анализатор не сконфигурирован"
// @Router /api/documents/{document_id}/analyze/ [post]
func (h *DocumentHandler) AnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 90*time.Second)
	defer cancel()

	id, err := validation.ParseDocumentID(chi.URLParam(r, "document_id"))
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if h.analyzerService == nil {
		util.HandleError(w, "AI-анализатор недоступен, проверьте конфигурацию API-ключа", http.StatusServiceUnavailable)
		return
	}

	document, err := h.analyzerService.Analyze(ctx, id)
	if errors.Is(err, service.ErrAnalysisInProgress) {
		util.WriteJSON(w, http.StatusAccepted, requestresponse.AnalyzeDocumentResponse{
			Message: "анализ документа уже выполняется",
			Status:  document.AnalysisStatus,
		})
		return
	}
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	var analysis string
	if document.AnalysisResult != nil {
		analysis = *document.AnalysisResult
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.AnalyzeDocumentResponse{
		Message:    "документ успешно проанализирован",
		Analysis:   analysis,
		Status:     document.AnalysisStatus,
		AnalyzedAt: document.AnalyzedAt,
	})
}

// GetDocumentAnalysis godoc
// @Summary Результаты анализа документа
// @Description Возвращает сохранённые результаты AI-анализа и текущий статус.
// @Tags Analysis
// @Produce json
// @Param document_id path int true "Идентификатор документа"
// @Success 200 {object} requestresponse.AnalysisResultResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный идентификатор"
// @Failure 404 {object} requestresponse.ErrorResponse "Документ не найден"
// @Router /api/documents/{document_id}/analysis/ [get]
func (h *DocumentHandler) GetDocumentAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := validation.ParseDocumentID(chi.URLParam(r, "document_id"))
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	document, err := h.documentService.GetDocumentByID(ctx, id)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.AnalysisResultResponse{
		Analysis:   document.AnalysisResult,
		Status:     document.AnalysisStatus,
		AnalyzedAt: document.AnalyzedAt,
	})
}

// HealthCheck godoc
// @Summary Health-check системы
// @Description Проверяет доступность БД, файлового хранилища и количество документов.
// @Tags Health
// @Produce json
// @Success 200 {object} model.HealthStatus
// @Failure 503 {object} model.HealthStatus
// @Router /api/documents/health/ [get]
func (h *DocumentHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	health := h.documentService.HealthCheck(ctx)

	statusCode := http.StatusOK
	if !health.Healthy() {
		statusCode = http.StatusServiceUnavailable
	}

	util.WriteJSON(w, statusCode, health)
}
