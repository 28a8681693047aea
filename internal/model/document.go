package model

import "time"

// Статусы AI-анализа документа
const (
	AnalysisStatusPending    = "pending"
	AnalysisStatusProcessing = "processing"
	AnalysisStatusCompleted  = "completed"
	AnalysisStatusFailed     = "failed"
)

type Document struct {
	ID             int64      `db:"id" json:"id"`
	Filename       string     `db:"filename" json:"filename"`
	Filepath       string     `db:"filepath" json:"filepath"`
	Filesize       int64      `db:"filesize" json:"filesize"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	AnalysisResult *string    `db:"analysis_result" json:"analysis_result,omitempty"`
	AnalysisStatus string     `db:"analysis_status" json:"analysis_status"`
	AnalyzedAt     *time.Time `db:"analyzed_at" json:"analyzed_at"`
}

// HealthStatus : результат health-check всей системы
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]interface{} `json:"checks"`
}

func (h *HealthStatus) Healthy() bool {
	return h.Status == "healthy"
}
