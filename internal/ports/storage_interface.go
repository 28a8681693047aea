package ports

import "io"

// FileStorage : единственный владелец жизненного цикла физических файлов
type FileStorage interface {
	GenerateUniqueFilename(originalName string) string
	Save(file io.Reader, originalName string) (string, int64, error)
	Open(path string) (io.ReadCloser, error)
	Exists(path string) bool
	Delete(path string) (bool, error)
	SizeOf(path string) int64
}
