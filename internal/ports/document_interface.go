package ports

import (
	"context"
	"io"
	"medical-document-server/internal/model"
	"time"
)

// DocumentRepository : SQL слой
type DocumentRepository interface {
	Create(ctx context.Context, document *model.Document) error
	GetByID(ctx context.Context, id int64) (*model.Document, error)
	ListAll(ctx context.Context) ([]model.Document, error)
	Delete(ctx context.Context, id int64) (bool, error)
	MarkProcessing(ctx context.Context, id int64) (bool, error)
	UpdateAnalysis(ctx context.Context, id int64, status string, result string, analyzedAt *time.Time) error
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

type DocumentService interface {
	UploadDocument(ctx context.Context, file io.Reader, originalName string, declaredSize int64, contentType string) (*model.Document, error)
	ListDocuments(ctx context.Context) ([]model.Document, error)
	GetDocumentByID(ctx context.Context, id int64) (*model.Document, error)
	DownloadDocument(ctx context.Context, id int64) (*model.Document, io.ReadCloser, error)
	DeleteDocument(ctx context.Context, id int64) (bool, error)
	HealthCheck(ctx context.Context) *model.HealthStatus
}
