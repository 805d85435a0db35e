// Package gen はリモート生成AIサービスに対する2つの操作
// （同期テキスト生成・非同期動画生成）を司るクライアント層です。
// リモート失敗はすべてこのパッケージ内で分類してから呼び出し側へ返します。
package gen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-gemini-client/gemini"
	"golang.org/x/sync/singleflight"
)

const (
	defaultCacheExpiration = 5 * time.Minute
	cacheCleanupInterval   = 15 * time.Minute
)

// TextModel は Gemini テキスト生成クライアントの契約です。
// go-gemini-client の GenerativeModel がこれを満たします。テスト時はフェイクを注入します。
type TextModel interface {
	GenerateContent(ctx context.Context, prompt string, model string) (*gemini.Response, error)
}

// TextClient はプロンプト→テキストの同期生成を行うファサードです。
// 同一プロンプトの同時要求は singleflight で合流させ、応答は短期キャッシュに保持します。
type TextClient struct {
	ai    TextModel
	model string
	cache *cache.Cache
	group singleflight.Group
}

// NewTextClient は TextClient を初期化します。ai は必須です。
func NewTextClient(ai TextModel, model string) (*TextClient, error) {
	if ai == nil {
		return nil, fmt.Errorf("aiクライアントは必須です")
	}
	if model == "" {
		return nil, fmt.Errorf("モデル名は必須です")
	}
	return &TextClient{
		ai:    ai,
		model: model,
		cache: cache.New(defaultCacheExpiration, cacheCleanupInterval),
	}, nil
}

// GenerateText はプロンプトを送信し、生成テキストをそのまま返します。
// 空のプロンプトはリモートへ送らず Precondition エラーになります。
func (c *TextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", NewPreconditionError("プロンプトが空です")
	}

	if cached, ok := c.cache.Get(prompt); ok {
		if text, ok := cached.(string); ok {
			slog.Debug("TextClient: cache hit", "model", c.model)
			return text, nil
		}
	}

	val, err, _ := c.group.Do(prompt, func() (interface{}, error) {
		slog.Info("TextClient: Calling Gemini API", "model", c.model)
		resp, err := c.ai.GenerateContent(ctx, prompt, c.model)
		if err != nil {
			return nil, Classify(err)
		}
		c.cache.Set(prompt, resp.Text, cache.DefaultExpiration)
		return resp.Text, nil
	})
	if err != nil {
		return "", Classify(err)
	}

	text, ok := val.(string)
	if !ok {
		return "", Classify(fmt.Errorf("unexpected return type from singleflight: %T", val))
	}
	return text, nil
}
