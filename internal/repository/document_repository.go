package repository

import (
	"context"
	"database/sql"
	"errors"
	"medical-document-server/config"
	"medical-document-server/internal/model"
	"time"

	"github.com/jmoiron/sqlx"
)

type DocumentRepository struct {
	*config.Database
}

func NewDocumentRepository(database *config.Database) *DocumentRepository {
	return &DocumentRepository{database}
}

// Create : сохраняет новый документ, заполняет ID и CreatedAt из БД
func (r *DocumentRepository) Create(ctx context.Context, document *model.Document) error {
	query := `
		INSERT INTO documents (filename, filepath, filesize)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, analysis_status
	`

	row := r.DB.QueryRowxContext(ctx, query, document.Filename, document.Filepath, document.Filesize)
	return row.Scan(&document.ID, &document.CreatedAt, &document.AnalysisStatus)
}

// GetByID : возвращает документ или nil, если документ не найден
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*model.Document, error) {
	query := `
		SELECT id, filename, filepath, filesize, created_at, analysis_result, analysis_status, analyzed_at
		FROM documents
		WHERE id = $1
	`

	var document model.Document
	err := sqlx.GetContext(ctx, r.DB, &document, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &document, nil
}

// ListAll : все документы, новые первыми
func (r *DocumentRepository) ListAll(ctx context.Context) ([]model.Document, error) {
	query := `
		SELECT id, filename, filepath, filesize, created_at, analysis_result, analysis_status, analyzed_at
		FROM documents
		ORDER BY created_at DESC, id DESC
	`

	documents := []model.Document{}
	if err := sqlx.SelectContext(ctx, r.DB, &documents, query); err != nil {
		return nil, err
	}

	return documents, nil
}

// Delete : удаляет запись, false если документа не было
func (r *DocumentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// MarkProcessing : переводит документ в статус processing одним условным UPDATE,
// false — документ уже обрабатывается параллельным запросом
func (r *DocumentRepository) MarkProcessing(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE documents
		SET analysis_status = $1
		WHERE id = $2 AND analysis_status <> $1
	`

	result, err := r.DB.ExecContext(ctx, query, model.AnalysisStatusProcessing, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// UpdateAnalysis : записывает итог анализа (completed или failed)
func (r *DocumentRepository) UpdateAnalysis(ctx context.Context, id int64, status string, result string, analyzedAt *time.Time) error {
	query := `
		UPDATE documents
		SET analysis_status = $1, analysis_result = $2, analyzed_at = $3
		WHERE id = $4
	`

	_, err := r.DB.ExecContext(ctx, query, status, result, analyzedAt, id)
	return err
}

// Count : количество документов для health-check
func (r *DocumentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, r.DB, &count, `SELECT COUNT(*) FROM documents`); err != nil {
		return 0, err
	}

	return count, nil
}

// Ping : проверка соединения с БД
func (r *DocumentRepository) Ping(ctx context.Context) error {
	var one int
	return sqlx.GetContext(ctx, r.DB, &one, `SELECT 1`)
}
