package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"medical-document-server/config"
	"medical-document-server/internal/apperrors"
	"medical-document-server/internal/model"
	"medical-document-server/internal/ports"
	"medical-document-server/internal/util"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrAnalysisInProgress : документ уже анализируется параллельным запросом
var ErrAnalysisInProgress = errors.New("анализ документа уже выполняется")

// максимум символов содержимого документа, передаваемых в prompt
const maxPromptContentRunes = 12000

const analysisPromptTemplate = `Please analyze this medical document and provide a comprehensive summary. The document filename is: %s

Document content:
%s

Please provide analysis in the following structured format:

**Document Type**: [Identify if this is a prescription, lab report, medical record, etc.]

**Key Medical Information**:
- Patient information (if mentioned)
- Medical conditions or diagnoses
- Medications prescribed
- Test results or measurements
- Treatment recommendations

**Important Dates**: [Any relevant dates mentioned]

**Summary**: [2-3 sentence summary of the document's purpose and key findings]

**Recommendations**: [Any follow-up actions or recommendations mentioned]

**Risk Factors**: [Any potential health risks or concerns identified]

Note: If this doesn't appear to be a medical document, please indicate that and provide a general document analysis instead.`

// AnalyzerService : AI-анализ документов через OpenAI-совместимый API Mistral
type AnalyzerService struct {
	client             ports.ChatCompleter
	extractor          ports.TextExtractor
	documentRepository ports.DocumentRepository
	cacheRepository    ports.CacheRepository
	fileStorage        ports.FileStorage
	model              string
	timeout            time.Duration
}

func NewAnalyzerService(
	cfg *config.AnalyzerConfig,
	documentRepository ports.DocumentRepository,
	cacheRepository ports.CacheRepository,
	fileStorage ports.FileStorage,
	extractor ports.TextExtractor,
) (*AnalyzerService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("[AnalyzerService] api_key не задан в конфигурации")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	timeout := 60 * time.Second
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &AnalyzerService{
		client:             openai.NewClientWithConfig(clientConfig),
		extractor:          extractor,
		documentRepository: documentRepository,
		cacheRepository:    cacheRepository,
		fileStorage:        fileStorage,
		model:              cfg.Model,
		timeout:            timeout,
	}, nil
}

// Analyze : полный цикл анализа документа.
// Статусы: pending -> processing -> completed | failed. Повторный запрос,
// пока документ в processing, получает ErrAnalysisInProgress и не дёргает внешний API
func (s *AnalyzerService) Analyze(ctx context.Context, id int64) (*model.Document, error) {
	document, err := s.documentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, util.LogError("[AnalyzerService] ошибка чтения документа из БД", err)
	}
	if document == nil {
		return nil, apperrors.NewNotFound("документ не найден")
	}

	if !s.fileStorage.Exists(document.Filepath) {
		return nil, apperrors.NewNotFound("файл не найден на диске")
	}

	if document.AnalysisStatus == model.AnalysisStatusProcessing {
		return document, ErrAnalysisInProgress
	}

	started, err := s.documentRepository.MarkProcessing(ctx, id)
	if err != nil {
		return nil, apperrors.NewStorage("не удалось обновить статус анализа", err)
	}
	if !started {
		// параллельный запрос успел перевести документ в processing
		document.AnalysisStatus = model.AnalysisStatusProcessing
		return document, ErrAnalysisInProgress
	}
	s.invalidateCache(ctx, id)

	result, err := s.runAnalysis(ctx, document)
	if err != nil {
		return s.markFailed(ctx, document, err)
	}

	analyzedAt := time.Now().UTC()
	if err := s.documentRepository.UpdateAnalysis(ctx, id, model.AnalysisStatusCompleted, result, &analyzedAt); err != nil {
		return s.markFailed(ctx, document, fmt.Errorf("не удалось сохранить результат анализа: %w", err))
	}
	s.invalidateCache(ctx, id)

	document.AnalysisStatus = model.AnalysisStatusCompleted
	document.AnalysisResult = &result
	document.AnalyzedAt = &analyzedAt

	log.Printf("[AnalyzerService] документ %d успешно проанализирован", id)

	return document, nil
}

// GetAnalysis : сохранённые результаты анализа документа
func (s *AnalyzerService) GetAnalysis(ctx context.Context, id int64) (*model.Document, error) {
	document, err := s.documentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, util.LogError("[AnalyzerService] ошибка чтения документа из БД", err)
	}
	if document == nil {
		return nil, apperrors.NewNotFound("документ не найден")
	}

	return document, nil
}

// runAnalysis : извлечение текста и запрос к внешнему API с ограничением по времени
func (s *AnalyzerService) runAnalysis(ctx context.Context, document *model.Document) (string, error) {
	text, err := s.extractor.ExtractText(document.Filepath)
	if err != nil {
		return "", fmt.Errorf("не удалось извлечь текст из PDF: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("из PDF не удалось извлечь текстовое содержимое")
	}

	content := []rune(text)
	if len(content) > maxPromptContentRunes {
		content = content[:maxPromptContentRunes]
	}
	prompt := fmt.Sprintf(analysisPromptTemplate, document.Filename, string(content))

	requestCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	response, err := s.client.CreateChatCompletion(requestCtx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", fmt.Errorf("ошибка запроса к AI API: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("AI API вернул пустой ответ")
	}

	return response.Choices[0].Message.Content, nil
}

// markFailed : фиксирует сбой анализа, текст ошибки сохраняется в analysis_result
func (s *AnalyzerService) markFailed(ctx context.Context, document *model.Document, cause error) (*model.Document, error) {
	failureMessage := fmt.Sprintf("анализ не выполнен: %v", cause)

	if err := s.documentRepository.UpdateAnalysis(ctx, document.ID, model.AnalysisStatusFailed, failureMessage, nil); err != nil {
		log.Printf("[AnalyzerService] не удалось сохранить статус failed для документа %d: %v", document.ID, err)
	}
	s.invalidateCache(ctx, document.ID)

	document.AnalysisStatus = model.AnalysisStatusFailed
	document.AnalysisResult = &failureMessage

	return document, apperrors.NewExternalService("ошибка AI-анализа документа", cause)
}

func (s *AnalyzerService) invalidateCache(ctx context.Context, id int64) {
	if err := s.cacheRepository.DeleteDocument(ctx, id); err != nil {
		log.Printf("[AnalyzerService] ошибка удаления документа из кэша: %v", err)
	}
}
