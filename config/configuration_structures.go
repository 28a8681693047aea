package config

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// StorageConfig : настройки локального файлового хранилища
type StorageConfig struct {
	Root           string `yaml:"root"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	ContentCheck   string `yaml:"content_check"` // signature или header
}

// AnalyzerConfig : настройки внешнего AI-сервиса (OpenAI-совместимый API Mistral)
type AnalyzerConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type TTL struct {
	RedisSeconds int `yaml:"redis_seconds"`
}
