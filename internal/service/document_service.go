package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"medical-document-server/internal/apperrors"
	"medical-document-server/internal/model"
	"medical-document-server/internal/ports"
	"medical-document-server/internal/util"
	"medical-document-server/internal/validation"
	"time"
)

type DocumentService struct {
	documentRepository ports.DocumentRepository
	cacheRepository    ports.CacheRepository
	fileStorage        ports.FileStorage
	validator          *validation.DocumentValidator
	contentVerifier    validation.ContentVerifier
}

func NewDocumentService(
	documentRepository ports.DocumentRepository,
	cacheRepository ports.CacheRepository,
	fileStorage ports.FileStorage,
	validator *validation.DocumentValidator,
	contentVerifier validation.ContentVerifier,
) *DocumentService {
	return &DocumentService{
		documentRepository: documentRepository,
		cacheRepository:    cacheRepository,
		fileStorage:        fileStorage,
		validator:          validator,
		contentVerifier:    contentVerifier,
	}
}

// UploadDocument : конвейер загрузки — валидация, запись файла, проверка содержимого,
// создание записи в БД. Любой сбой после записи файла обязан удалить файл:
// осиротевших файлов и записей после ошибки не остаётся
func (s *DocumentService) UploadDocument(ctx context.Context, file io.Reader, originalName string, declaredSize int64, contentType string) (*model.Document, error) {
	if err := s.validator.ValidateUploadedFile(originalName, declaredSize, contentType); err != nil {
		return nil, err
	}

	safeFilename := validation.SanitizeFilename(originalName)

	path, written, err := s.fileStorage.Save(file, originalName)
	if err != nil {
		return nil, util.LogError("[DocumentService] не удалось сохранить файл", err)
	}

	if !s.fileStorage.Exists(path) {
		log.Printf("[DocumentService] файл не найден после сохранения: %s", path)
		return nil, apperrors.NewStorage("не удалось сохранить файл в хранилище", nil)
	}

	if err := s.contentVerifier.Verify(path); err != nil {
		log.Printf("[DocumentService] проверка содержимого не пройдена: %v", err)
		s.removeStoredFile(path)
		return nil, err
	}

	// в записи хранится фактически записанный размер, а не заявленный клиентом
	document := &model.Document{
		Filename: safeFilename,
		Filepath: path,
		Filesize: written,
	}

	if err := s.documentRepository.Create(ctx, document); err != nil {
		s.removeStoredFile(path)
		return nil, apperrors.NewStorage("не удалось сохранить документ в БД", err)
	}

	log.Printf("[DocumentService] документ %s успешно загружен, id=%d", document.Filename, document.ID)

	return document, nil
}

// ListDocuments : все документы, новые первыми
func (s *DocumentService) ListDocuments(ctx context.Context) ([]model.Document, error) {
	documents, err := s.documentRepository.ListAll(ctx)
	if err != nil {
		return nil, util.LogError("[DocumentService] не удалось получить список документов", err)
	}

	return documents, nil
}

// GetDocumentByID : возвращает документ из кэша или БД
func (s *DocumentService) GetDocumentByID(ctx context.Context, id int64) (*model.Document, error) {
	document, err := s.cacheRepository.GetDocument(ctx, id)
	if err != nil {
		log.Printf("[DocumentService] ошибка кэширования: %v", err)
	}
	if document != nil {
		log.Printf("[DocumentService] документ %d взят из кэша Redis", id)
		return document, nil
	}

	document, err = s.documentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, util.LogError("[DocumentService] ошибка чтения документа из БД", err)
	}
	if document == nil {
		return nil, apperrors.NewNotFound("документ не найден")
	}

	if err := s.cacheRepository.SetDocument(ctx, document); err != nil {
		log.Printf("[DocumentService] ошибка кэширования документа: %v", err)
	}

	return document, nil
}

// DownloadDocument : возвращает документ и поток его содержимого.
// Отсутствие файла на диске при живой записи — ожидаемое расхождение, отдаём 404
func (s *DocumentService) DownloadDocument(ctx context.Context, id int64) (*model.Document, io.ReadCloser, error) {
	document, err := s.GetDocumentByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !s.fileStorage.Exists(document.Filepath) {
		return nil, nil, apperrors.NewNotFound("файл не найден на диске")
	}

	reader, err := s.fileStorage.Open(document.Filepath)
	if err != nil {
		return nil, nil, util.LogError("[DocumentService] не удалось открыть файл документа", err)
	}

	return document, reader, nil
}

// DeleteDocument : удаляет файл и запись; уже отсутствующий файл не считается ошибкой,
// возвращается true, если файла на диске не было
func (s *DocumentService) DeleteDocument(ctx context.Context, id int64) (bool, error) {
	document, err := s.GetDocumentByID(ctx, id)
	if err != nil {
		return false, err
	}

	fileDeleted, err := s.fileStorage.Delete(document.Filepath)
	if err != nil {
		return false, util.LogError("[DocumentService] ошибка удаления файла из хранилища", err)
	}

	recordDeleted, err := s.documentRepository.Delete(ctx, id)
	if err != nil {
		return false, apperrors.NewStorage("не удалось удалить запись документа", err)
	}
	if !recordDeleted {
		return false, apperrors.NewStorage("не удалось удалить запись документа", nil)
	}

	if err := s.cacheRepository.DeleteDocument(ctx, id); err != nil {
		log.Printf("[DocumentService] ошибка удаления документа из кэша: %v", err)
	}

	log.Printf("[DocumentService] документ %d успешно удалён", id)

	return !fileDeleted, nil
}

// HealthCheck : проверка БД, файлового хранилища и количества документов
func (s *DocumentService) HealthCheck(ctx context.Context) *model.HealthStatus {
	health := &model.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Checks:    map[string]interface{}{},
	}

	if err := s.documentRepository.Ping(ctx); err != nil {
		health.Checks["database"] = fmt.Sprintf("unhealthy: %v", err)
		health.Status = "unhealthy"
	} else {
		health.Checks["database"] = "healthy"
	}

	health.Checks["file_storage"] = s.checkFileStorage()
	if health.Checks["file_storage"] != "healthy" {
		health.Status = "unhealthy"
	}

	if count, err := s.documentRepository.Count(ctx); err != nil {
		health.Checks["document_count"] = fmt.Sprintf("error: %v", err)
		health.Status = "unhealthy"
	} else {
		health.Checks["document_count"] = count
	}

	return health
}

// checkFileStorage : пробная запись, проверка и удаление файла в хранилище
func (s *DocumentService) checkFileStorage() string {
	probe := bytes.NewReader([]byte("health check content"))

	path, _, err := s.fileStorage.Save(probe, "health_check.pdf")
	if err != nil {
		return fmt.Sprintf("unhealthy: %v", err)
	}

	exists := s.fileStorage.Exists(path)
	if _, err := s.fileStorage.Delete(path); err != nil {
		log.Printf("[DocumentService] не удалось удалить пробный файл: %v", err)
	}

	if !exists {
		return "unhealthy: пробный файл не найден после записи"
	}

	return "healthy"
}

func (s *DocumentService) removeStoredFile(path string) {
	if _, err := s.fileStorage.Delete(path); err != nil {
		log.Printf("[DocumentService] не удалось удалить файл после сбоя: %v", err)
	}
}
