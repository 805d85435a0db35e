package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultGeminiModel    = "gemini-3-flash-preview"
	DefaultVideoModel     = "veo-3.1-generate-preview"
	DefaultPollInterval   = 10 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// Config は Go Film Kit の各 Runner を動作させるための基本設定です。
type Config struct {
	// --- AI Model Settings ---
	GeminiModel string
	VideoModel  string

	// --- Google AI (Gemini API) Settings ---
	GeminiAPIKey string

	// --- Video Generation Settings ---
	PollInterval time.Duration
	// MaxPollWait が 0 の場合、待機時間の上限は設けません。
	MaxPollWait time.Duration

	// --- Timeout & Retries ---
	RequestTimeout time.Duration
}

// NewConfig はデフォルト値で初期化された Config を作成し、API キーをセットして返すのだ。
func NewConfig(apiKey string) Config {
	cfg := DefaultConfig()
	cfg.GeminiAPIKey = apiKey
	return cfg
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		GeminiModel:    DefaultGeminiModel,
		VideoModel:     DefaultVideoModel,
		PollInterval:   DefaultPollInterval,
		RequestTimeout: DefaultRequestTimeout,
	}
}
