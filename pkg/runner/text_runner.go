// Package runner は各フィーチャーの実行工程をひとまとめにした実行体を提供します。
// 依存はすべてコンストラクタで注入され、Runner 自体は状態を持ちません。
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shouni/go-film-kit/pkg/config"
	"github.com/shouni/go-film-kit/pkg/feature"
	"github.com/shouni/go-film-kit/pkg/gen"
	"github.com/shouni/go-film-kit/pkg/publisher"
	"github.com/shouni/go-web-exact/v2/extract"
)

// FeatureTextRunner はテンプレート型フィーチャーのプロンプト合成と
// テキスト生成を担当します。
type FeatureTextRunner struct {
	cfg       config.Config
	registry  *feature.Registry
	extractor *extract.Extractor
	client    *gen.TextClient
	publisher *publisher.DocumentPublisher
}

// NewFeatureTextRunner は依存関係を注入して初期化します。
// extractor は任意（nil のとき --script-url 相当の取り込みは無効）です。
func NewFeatureTextRunner(
	cfg config.Config,
	reg *feature.Registry,
	ext *extract.Extractor,
	client *gen.TextClient,
	pub *publisher.DocumentPublisher,
) *FeatureTextRunner {
	return &FeatureTextRunner{
		cfg:       cfg,
		registry:  reg,
		extractor: ext,
		client:    client,
		publisher: pub,
	}
}

// Compose はフィーチャーを解決して入力値からプロンプトを合成します。
// scriptURL が指定された場合、最初の空の長文フィールドへ抽出テキストを流し込みます。
func (tr *FeatureTextRunner) Compose(ctx context.Context, id feature.ID, inputs map[string]string, scriptURL string) (*feature.Descriptor, string, error) {
	desc, err := tr.registry.Resolve(id)
	if err != nil {
		return nil, "", err
	}
	if desc.Kind != feature.KindTemplated {
		return nil, "", gen.NewPreconditionError(fmt.Sprintf("フィーチャー %q はテキスト生成に対応していません", id))
	}

	if scriptURL != "" {
		inputs, err = tr.fillFromURL(ctx, desc, inputs, scriptURL)
		if err != nil {
			return nil, "", err
		}
	}

	if err := validateRequired(desc, inputs); err != nil {
		return nil, "", err
	}

	prompt, err := desc.Compose(inputs)
	if err != nil {
		return nil, "", fmt.Errorf("プロンプト生成に失敗: %w", err)
	}
	return desc, prompt, nil
}

// Run はプロンプトを合成し、Gemini を呼び出して生成テキストを返します。
func (tr *FeatureTextRunner) Run(ctx context.Context, id feature.ID, inputs map[string]string, scriptURL string) (string, error) {
	desc, prompt, err := tr.Compose(ctx, id, inputs, scriptURL)
	if err != nil {
		return "", err
	}

	slog.Info("FeatureTextRunner: Calling Gemini API", "feature", desc.ID, "model", tr.cfg.GeminiModel)
	return tr.client.GenerateText(ctx, prompt)
}

// RunAndPublish は生成したテキストを Markdown/HTML として保存します。
func (tr *FeatureTextRunner) RunAndPublish(ctx context.Context, id feature.ID, inputs map[string]string, scriptURL, outputDir string) (publisher.PublishResult, error) {
	desc, prompt, err := tr.Compose(ctx, id, inputs, scriptURL)
	if err != nil {
		return publisher.PublishResult{}, err
	}

	slog.Info("FeatureTextRunner: Calling Gemini API", "feature", desc.ID, "model", tr.cfg.GeminiModel)
	output, err := tr.client.GenerateText(ctx, prompt)
	if err != nil {
		return publisher.PublishResult{}, err
	}

	doc := publisher.Document{
		FeatureName: desc.Name,
		Prompt:      prompt,
		Output:      output,
		GeneratedAt: time.Now(),
	}
	return tr.publisher.Publish(ctx, doc, publisher.Options{OutputDir: outputDir})
}

// fillFromURL は Web ページから本文を抽出し、値が未指定の最初の長文フィールドに充当します。
func (tr *FeatureTextRunner) fillFromURL(ctx context.Context, desc *feature.Descriptor, inputs map[string]string, scriptURL string) (map[string]string, error) {
	if tr.extractor == nil {
		return nil, gen.NewPreconditionError("URL抽出は設定されていません")
	}

	slog.Info("FeatureTextRunner: Extracting text", "url", scriptURL)
	text, _, err := tr.extractor.FetchAndExtractText(ctx, scriptURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from URL: %w", err)
	}

	merged := make(map[string]string, len(inputs)+1)
	for k, v := range inputs {
		merged[k] = v
	}
	for _, f := range desc.Fields {
		if f.Kind != feature.FieldLongText {
			continue
		}
		if strings.TrimSpace(merged[f.ID]) == "" {
			merged[f.ID] = text
			return merged, nil
		}
	}
	return merged, nil
}

func validateRequired(desc *feature.Descriptor, inputs map[string]string) error {
	for _, f := range desc.Fields {
		if f.Required && strings.TrimSpace(inputs[f.ID]) == "" {
			return gen.NewPreconditionError(fmt.Sprintf("必須フィールド %q が未入力です", f.ID))
		}
	}
	return nil
}
