package ports

import (
	"context"
	"medical-document-server/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// TextExtractor : извлечение текста из PDF-файла
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// ChatCompleter : внешний text-completion API, сигнатура совпадает с go-openai клиентом
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type AnalyzerService interface {
	Analyze(ctx context.Context, id int64) (*model.Document, error)
	GetAnalysis(ctx context.Context, id int64) (*model.Document, error)
}
