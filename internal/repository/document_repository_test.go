package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"medical-document-server/config"
	"medical-document-server/internal/model"
	"medical-document-server/internal/repository"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*repository.DocumentRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return repository.NewDocumentRepository(&config.Database{DB: sqlxDB}), mock
}

// ===== Тестируем Create =====

func TestCreate(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO documents`)).
		WithArgs("report.pdf", "/storage/abc.pdf", int64(2048)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "analysis_status"}).
			AddRow(int64(7), createdAt, model.AnalysisStatusPending))

	document := &model.Document{Filename: "report.pdf", Filepath: "/storage/abc.pdf", Filesize: 2048}
	err := repo.Create(context.Background(), document)

	require.NoError(t, err)
	assert.Equal(t, int64(7), document.ID)
	assert.Equal(t, createdAt, document.CreatedAt)
	assert.Equal(t, model.AnalysisStatusPending, document.AnalysisStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ===== Тестируем GetByID =====

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "filename", "filepath", "filesize", "created_at", "analysis_result", "analysis_status", "analyzed_at"}).
		AddRow(int64(1), "report.pdf", "/storage/abc.pdf", int64(2048), createdAt, nil, model.AnalysisStatusPending, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, filename, filepath, filesize, created_at, analysis_result, analysis_status, analyzed_at`)).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	document, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, document)
	assert.Equal(t, int64(1), document.ID)
	assert.Equal(t, "report.pdf", document.Filename)
	assert.Nil(t, document.AnalysisResult)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	document, err := repo.GetByID(context.Background(), 99)

	// отсутствие документа не ошибка
	require.NoError(t, err)
	assert.Nil(t, document)
}

// ===== Тестируем ListAll =====

func TestListAll(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Now().UTC()
	analysis := "итог анализа"

	rows := sqlmock.NewRows([]string{"id", "filename", "filepath", "filesize", "created_at", "analysis_result", "analysis_status", "analyzed_at"}).
		AddRow(int64(2), "new.pdf", "/storage/new.pdf", int64(100), createdAt, analysis, model.AnalysisStatusCompleted, createdAt).
		AddRow(int64(1), "old.pdf", "/storage/old.pdf", int64(200), createdAt.Add(-time.Hour), nil, model.AnalysisStatusPending, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC, id DESC`)).
		WillReturnRows(rows)

	documents, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, documents, 2)
	assert.Equal(t, int64(2), documents[0].ID)
	require.NotNil(t, documents[0].AnalysisResult)
	assert.Equal(t, analysis, *documents[0].AnalysisResult)
	assert.Nil(t, documents[1].AnalysisResult)
}

func TestListAll_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "filepath", "filesize", "created_at", "analysis_result", "analysis_status", "analyzed_at"}))

	documents, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, documents) // пустой список, а не nil
	assert.Len(t, documents, 0)
}

// ===== Тестируем Delete =====

func TestDelete(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 99)

	require.NoError(t, err)
	assert.False(t, deleted)
}

// ===== Тестируем MarkProcessing =====

func TestMarkProcessing(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE documents`)).
		WithArgs(model.AnalysisStatusProcessing, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	started, err := repo.MarkProcessing(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, started)
}

func TestMarkProcessing_AlreadyProcessing(t *testing.T) {
	repo, mock := newMockRepository(t)

	// условный UPDATE не затронул строк: документ уже в processing
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE documents`)).
		WithArgs(model.AnalysisStatusProcessing, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	started, err := repo.MarkProcessing(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, started)
}

// ===== Тестируем UpdateAnalysis =====

func TestUpdateAnalysis(t *testing.T) {
	repo, mock := newMockRepository(t)
	analyzedAt := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE documents`)).
		WithArgs(model.AnalysisStatusCompleted, "итог анализа", analyzedAt, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateAnalysis(context.Background(), 1, model.AnalysisStatusCompleted, "итог анализа", &analyzedAt)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAnalysis_Failed(t *testing.T) {
	repo, mock := newMockRepository(t)

	// статус failed пишется без analyzed_at
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE documents`)).
		WithArgs(model.AnalysisStatusFailed, "анализ не выполнен: timeout", (*time.Time)(nil), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateAnalysis(context.Background(), 1, model.AnalysisStatusFailed, "анализ не выполнен: timeout", nil)

	require.NoError(t, err)
}

// ===== Тестируем Count и Ping =====

func TestCount(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM documents`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestPing(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	assert.NoError(t, repo.Ping(context.Background()))
}

func TestPing_Error(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1`)).
		WillReturnError(errors.New("connection refused"))

	assert.Error(t, repo.Ping(context.Background()))
}
