package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("VIDEO_MODEL", "")

	cfg := LoadConfig()
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("GeminiAPIKey = %q, want %q", cfg.GeminiAPIKey, "test-key")
	}
	if cfg.GeminiModel != DefaultModel {
		t.Errorf("GeminiModel = %q, want %q", cfg.GeminiModel, DefaultModel)
	}
	if cfg.VideoModel != DefaultVideoModel {
		t.Errorf("VideoModel = %q, want %q", cfg.VideoModel, DefaultVideoModel)
	}
}

func TestRunnerConfigAppliesOptions(t *testing.T) {
	cfg := &Config{
		GeminiAPIKey: "k",
		GeminiModel:  "gemini-custom",
		VideoModel:   "veo-custom",
		Options: GenerateOptions{
			PollInterval: 3 * time.Second,
			MaxPollWait:  time.Minute,
		},
	}

	rc := cfg.RunnerConfig()
	if rc.GeminiModel != "gemini-custom" || rc.VideoModel != "veo-custom" {
		t.Errorf("モデル名が引き継がれていないのだ: %+v", rc)
	}
	if rc.PollInterval != 3*time.Second {
		t.Errorf("PollInterval = %v, want %v", rc.PollInterval, 3*time.Second)
	}
	if rc.MaxPollWait != time.Minute {
		t.Errorf("MaxPollWait = %v, want %v", rc.MaxPollWait, time.Minute)
	}
}

func TestRunnerConfigZeroOptionsKeepDefaults(t *testing.T) {
	cfg := &Config{GeminiAPIKey: "k", GeminiModel: DefaultModel, VideoModel: DefaultVideoModel}

	rc := cfg.RunnerConfig()
	if rc.PollInterval != DefaultPollInterval {
		t.Errorf("PollInterval = %v, want %v", rc.PollInterval, DefaultPollInterval)
	}
	if rc.MaxPollWait != 0 {
		t.Errorf("MaxPollWait は未指定なら無制限（0）のはずなのだ: %v", rc.MaxPollWait)
	}
}
