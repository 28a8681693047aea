package service

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// FitzTextExtractor : извлечение текста из PDF через go-fitz (MuPDF)
type FitzTextExtractor struct{}

func NewFitzTextExtractor() *FitzTextExtractor {
	return &FitzTextExtractor{}
}

// ExtractText : собирает текст всех страниц, нечитаемые страницы пропускаются
func (e *FitzTextExtractor) ExtractText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("не удалось открыть PDF: %w", err)
	}
	defer doc.Close()

	var builder strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			continue
		}

		builder.WriteString(text)
		builder.WriteString("\n\n")
	}

	return strings.TrimSpace(builder.String()), nil
}
