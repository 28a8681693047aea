package service_test

import (
	"bytes"
	"crypto/rand"
	"medical-document-server/config"
	"medical-document-server/internal/service"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *service.FileStorageService {
	t.Helper()

	storage, err := service.NewFileStorageService(&config.StorageConfig{
		Root:           t.TempDir(),
		MaxUploadBytes: 10 * 1024 * 1024,
	})
	require.NoError(t, err)

	return storage
}

func TestFileStorage_SaveRoundTrip(t *testing.T) {
	storage := newTestStorage(t)

	content := make([]byte, 2000)
	_, err := rand.Read(content)
	require.NoError(t, err)

	path, written, err := storage.Save(bytes.NewReader(content), "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), written)
	assert.True(t, storage.Exists(path))
	assert.Equal(t, int64(len(content)), storage.SizeOf(path))

	// сохранённые байты идентичны исходным
	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestFileStorage_UniqueNames(t *testing.T) {
	storage := newTestStorage(t)

	// N загрузок с одинаковым исходным именем получают попарно разные пути
	paths := map[string]bool{}
	for i := 0; i < 20; i++ {
		path, _, err := storage.Save(strings.NewReader("%PDF-1.4 данные"), "report.pdf")
		require.NoError(t, err)
		assert.False(t, paths[path], "путь %s сгенерирован повторно", path)
		paths[path] = true
		assert.Equal(t, ".pdf", filepath.Ext(path))
	}
}

func TestFileStorage_GenerateUniqueFilename(t *testing.T) {
	storage := newTestStorage(t)

	first := storage.GenerateUniqueFilename("report.pdf")
	second := storage.GenerateUniqueFilename("report.pdf")

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".pdf"))
}

func TestFileStorage_DeleteIdempotent(t *testing.T) {
	storage := newTestStorage(t)

	path, _, err := storage.Save(strings.NewReader("данные"), "report.pdf")
	require.NoError(t, err)

	deleted, err := storage.Delete(path)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, storage.Exists(path))

	// повторное удаление не ошибка, файла просто уже нет
	deleted, err = storage.Delete(path)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFileStorage_SizeOfMissing(t *testing.T) {
	storage := newTestStorage(t)

	assert.Equal(t, int64(0), storage.SizeOf(filepath.Join(t.TempDir(), "missing.pdf")))
	assert.False(t, storage.Exists(filepath.Join(t.TempDir(), "missing.pdf")))
}

func TestFileStorage_Open(t *testing.T) {
	storage := newTestStorage(t)

	path, _, err := storage.Save(strings.NewReader("%PDF-1.4 содержимое"), "report.pdf")
	require.NoError(t, err)

	reader, err := storage.Open(path)
	require.NoError(t, err)
	defer reader.Close()

	stored := new(bytes.Buffer)
	_, err = stored.ReadFrom(reader)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 содержимое", stored.String())

	_, err = storage.Open(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
