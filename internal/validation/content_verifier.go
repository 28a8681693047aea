package validation

import (
	"bytes"
	"fmt"
	"github.com/gabriel-vasile/mimetype"
	"io"
	"medical-document-server/internal/apperrors"
	"os"
)

var pdfHeader = []byte("%PDF")

// ContentVerifier : проверка фактического содержимого сохранённого файла.
// Проверка, которую невозможно выполнить (файл не читается), проходит молча;
// выполненная проверка с несовпадением — ошибка валидации.
type ContentVerifier interface {
	Verify(path string) error
}

// NewContentVerifier : выбирает стратегию проверки при старте приложения
func NewContentVerifier(mode string) ContentVerifier {
	if mode == "header" {
		return &HeaderVerifier{}
	}
	return &SignatureVerifier{}
}

// SignatureVerifier : определение типа файла по сигнатуре через библиотеку mimetype
type SignatureVerifier struct{}

func (v *SignatureVerifier) Verify(path string) error {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil
	}

	if !mtype.Is("application/pdf") {
		return apperrors.NewValidation(fmt.Sprintf(
			"содержимое файла имеет тип '%s' и не соответствует формату PDF", mtype.String(),
		))
	}

	return nil
}

// HeaderVerifier : запасная стратегия — проверка первых байт заголовка
type HeaderVerifier struct{}

func (v *HeaderVerifier) Verify(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	header := make([]byte, len(pdfHeader))
	if _, err := io.ReadFull(file, header); err != nil {
		return apperrors.NewValidation("файл не является корректным PDF (проверка заголовка не пройдена)")
	}

	if !bytes.Equal(header, pdfHeader) {
		return apperrors.NewValidation("файл не является корректным PDF (проверка заголовка не пройдена)")
	}

	return nil
}
