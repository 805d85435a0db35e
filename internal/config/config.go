package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"

	pkgconfig "github.com/shouni/go-film-kit/pkg/config"
)

// デフォルト値の定義なのだ
const (
	DefaultModel        = "gemini-3-flash-preview"
	DefaultVideoModel   = "veo-3.1-generate-preview"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultPollInterval = 10 * time.Second
	DefaultAspectRatio  = "16:9"
	DefaultOutputDir    = "output" // パブリッシャーで使用するデフォルト保存先なのだ
)

// Config はアプリケーション全体の環境設定（APIキーやモデル設定）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	VideoModel   string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		GeminiAPIKey: envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:  envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		VideoModel:   envutil.GetEnv("VIDEO_MODEL", DefaultVideoModel),
	}
	return cfg
}

// RunnerConfig は pkg/workflow へ渡す実行用設定へ変換するのだ。
func (c *Config) RunnerConfig() pkgconfig.Config {
	cfg := pkgconfig.DefaultConfig()
	cfg.GeminiAPIKey = c.GeminiAPIKey
	cfg.GeminiModel = c.GeminiModel
	cfg.VideoModel = c.VideoModel
	if c.Options.PollInterval > 0 {
		cfg.PollInterval = c.Options.PollInterval
	}
	if c.Options.MaxPollWait > 0 {
		cfg.MaxPollWait = c.Options.MaxPollWait
	}
	if c.Options.HTTPTimeout > 0 {
		cfg.RequestTimeout = c.Options.HTTPTimeout
	}
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	FeatureID string   // --feature
	Inputs    []string // --input key=value（複数指定可）
	ScriptURL string   // --script-url
	SceneFile string   // --scene-file
	Prompt    string   // --prompt
	ImageFile string   // --image

	// 生成結果の出力設定
	OutputDir string // --output-dir

	// AI挙動設定
	AIModel     string // --model: テキスト生成用のGeminiモデル
	VideoModel  string // --video-model: 動画生成用のVeoモデル
	AspectRatio string // --aspect-ratio

	// 実行制御
	HTTPTimeout  time.Duration // --http-timeout
	PollInterval time.Duration // --poll-interval
	MaxPollWait  time.Duration // --max-poll-wait
	Refine       bool          // --refine
}
