package ports

import (
	"context"
	"medical-document-server/internal/model"
)

// CacheRepository : Redis слой
type CacheRepository interface {
	SetDocument(ctx context.Context, document *model.Document) error
	GetDocument(ctx context.Context, id int64) (*model.Document, error)
	DeleteDocument(ctx context.Context, id int64) error
}
