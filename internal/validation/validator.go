package validation

import (
	"fmt"
	"medical-document-server/internal/apperrors"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var allowedExtensions = []string{".pdf"}

var allowedMimeTypes = []string{"application/pdf"}

// DocumentValidator : проверки загружаемого файла, все проверки без побочных эффектов
type DocumentValidator struct {
	maxFileSize int64
}

func NewDocumentValidator(maxFileSize int64) *DocumentValidator {
	return &DocumentValidator{maxFileSize: maxFileSize}
}

// ValidateFilenameSafety : защита от path traversal и управляющих символов
func (v *DocumentValidator) ValidateFilenameSafety(filename string) error {
	if filename == "" {
		return apperrors.NewValidation("имя файла не может быть пустым")
	}

	if strings.Contains(filename, "..") || strings.Contains(filename, "/") || strings.Contains(filename, "\\") {
		return apperrors.NewValidation("имя файла содержит недопустимые символы пути")
	}

	for _, r := range filename {
		if r < 32 {
			return apperrors.NewValidation("имя файла содержит управляющие символы")
		}
	}

	// лимит в символах, а не в байтах: кириллическое имя занимает два байта на символ
	if utf8.RuneCountInString(filename) > 255 {
		return apperrors.NewValidation("имя файла слишком длинное (максимум 255 символов)")
	}

	return nil
}

// ValidateFileExtension : разрешены только PDF-файлы
func (v *DocumentValidator) ValidateFileExtension(filename string) error {
	if filename == "" {
		return apperrors.NewValidation("имя файла не может быть пустым")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return nil
		}
	}

	return apperrors.NewValidation(fmt.Sprintf(
		"расширение файла '%s' не разрешено, допустимые расширения: %s",
		ext, strings.Join(allowedExtensions, ", "),
	))
}

// ValidateFileSize : ограничение размера загружаемого файла
func (v *DocumentValidator) ValidateFileSize(fileSize int64) error {
	if fileSize > v.maxFileSize {
		return apperrors.NewValidation(fmt.Sprintf(
			"размер файла %.1fMB превышает максимально допустимый %.1fMB",
			float64(fileSize)/(1024*1024), float64(v.maxFileSize)/(1024*1024),
		))
	}

	return nil
}

// ValidateMimeType : пустой content type пропускается, остальное должно быть application/pdf
func (v *DocumentValidator) ValidateMimeType(contentType string) error {
	if contentType == "" {
		return nil
	}

	for _, allowed := range allowedMimeTypes {
		if contentType == allowed {
			return nil
		}
	}

	return apperrors.NewValidation(fmt.Sprintf(
		"MIME-тип '%s' не разрешён, допустимые типы: %s",
		contentType, strings.Join(allowedMimeTypes, ", "),
	))
}

// ValidateUploadedFile : полная проверка файла в порядке: имя, расширение, размер, MIME
func (v *DocumentValidator) ValidateUploadedFile(filename string, fileSize int64, contentType string) error {
	if err := v.ValidateFilenameSafety(filename); err != nil {
		return err
	}
	if err := v.ValidateFileExtension(filename); err != nil {
		return err
	}
	if err := v.ValidateFileSize(fileSize); err != nil {
		return err
	}
	return v.ValidateMimeType(contentType)
}

// SanitizeFilename : приводит отображаемое имя файла к безопасному виду,
// не влияет на имя файла на диске (оно генерируется отдельно)
func SanitizeFilename(filename string) string {
	if filename == "" {
		return "unnamed_file.pdf"
	}

	var builder strings.Builder
	for _, r := range filename {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			builder.WriteRune(r)
		case strings.ContainsRune(".-_()[]{}", r):
			builder.WriteRune(r)
		default:
			builder.WriteRune('_')
		}
	}

	sanitized := builder.String()
	if !strings.HasSuffix(strings.ToLower(sanitized), ".pdf") {
		sanitized += ".pdf"
	}

	// обрезка по символам: срез по байтам мог бы разрезать многобайтовый символ
	if utf8.RuneCountInString(sanitized) > 255 {
		sanitized = string([]rune(sanitized)[:255])
	}

	return sanitized
}

// ParseDocumentID : идентификатор документа — положительное целое
func ParseDocumentID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidation("идентификатор документа должен быть целым числом")
	}
	if id <= 0 {
		return 0, apperrors.NewValidation("идентификатор документа должен быть положительным числом")
	}

	return id, nil
}
