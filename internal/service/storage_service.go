package service

import (
	"io"
	"log"
	"medical-document-server/config"
	"medical-document-server/internal/apperrors"
	"medical-document-server/internal/util"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const saveChunkSize = 32 * 1024

// FileStorageService : локальное файловое хранилище, все файлы лежат
// в одном настроенном каталоге под случайными именами
type FileStorageService struct {
	root string
}

func NewFileStorageService(cfg *config.StorageConfig) (*FileStorageService, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, util.LogError("[FileStorageService] некорректный путь к каталогу хранилища", err)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, util.LogError("[FileStorageService] не удалось создать каталог хранилища", err)
	}

	log.Printf("[FileStorageService] каталог хранилища: %s", root)

	return &FileStorageService{root: root}, nil
}

// GenerateUniqueFilename : случайный идентификатор + расширение оригинала,
// коллизии при параллельных загрузках исключены с подавляющей вероятностью
func (s *FileStorageService) GenerateUniqueFilename(originalName string) string {
	return uuid.New().String() + filepath.Ext(originalName)
}

// Save : записывает поток в новый файл, возвращает абсолютный путь и число записанных байт.
// Существующие файлы никогда не перезаписываются — имена генерируются, а не переиспользуются
func (s *FileStorageService) Save(file io.Reader, originalName string) (string, int64, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", 0, apperrors.NewStorage("не удалось создать каталог хранилища", err)
	}

	path := filepath.Join(s.root, s.GenerateUniqueFilename(originalName))

	destination, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, apperrors.NewStorage("не удалось создать файл в хранилище", err)
	}

	written, err := io.CopyBuffer(destination, file, make([]byte, saveChunkSize))
	if closeErr := destination.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path) // неполный файл не должен остаться в хранилище
		return "", 0, apperrors.NewStorage("ошибка записи файла в хранилище", err)
	}

	return path, written, nil
}

// Open : открывает сохранённый файл для чтения
func (s *FileStorageService) Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorage("не удалось открыть файл из хранилища", err)
	}

	return file, nil
}

func (s *FileStorageService) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Delete : false, nil — файла уже не было, это не ошибка
func (s *FileStorageService) Delete(path string) (bool, error) {
	if !s.Exists(path) {
		return false, nil
	}

	if err := os.Remove(path); err != nil {
		return false, apperrors.NewStorage("не удалось удалить файл из хранилища", err)
	}

	return true, nil
}

// SizeOf : размер файла в байтах, 0 если файла нет
func (s *FileStorageService) SizeOf(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}

	return info.Size()
}
