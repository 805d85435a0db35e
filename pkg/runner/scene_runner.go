package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shouni/go-film-kit/pkg/composer"
	"github.com/shouni/go-film-kit/pkg/config"
	"github.com/shouni/go-film-kit/pkg/domain"
	"github.com/shouni/go-film-kit/pkg/gen"
	"github.com/shouni/go-film-kit/pkg/publisher"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// ScenePromptRunner はシーン定義ファイルから Veo 向けプロンプトを組み立てます。
type ScenePromptRunner struct {
	cfg       config.Config
	reader    remoteio.InputReader
	client    *gen.TextClient
	publisher *publisher.DocumentPublisher
}

// NewScenePromptRunner は依存関係を注入して初期化します。
// client は任意（nil のとき RunAndRefine は利用不可）です。
func NewScenePromptRunner(
	cfg config.Config,
	r remoteio.InputReader,
	client *gen.TextClient,
	pub *publisher.DocumentPublisher,
) *ScenePromptRunner {
	return &ScenePromptRunner{
		cfg:       cfg,
		reader:    r,
		client:    client,
		publisher: pub,
	}
}

// LoadScene はシーン定義 JSON を読み込んでドメインモデルへ変換します。
func (sr *ScenePromptRunner) LoadScene(ctx context.Context, scenePath string) (domain.Scene, error) {
	rc, err := sr.reader.Open(ctx, scenePath)
	if err != nil {
		return domain.Scene{}, fmt.Errorf("シーンファイルの読み込みに失敗しました: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return domain.Scene{}, fmt.Errorf("シーンファイルの読み込みに失敗しました: %w", err)
	}

	var scene domain.Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return domain.Scene{}, fmt.Errorf("シーン定義の解析に失敗しました: %w", err)
	}

	if orphans := scene.OrphanedDialogues(); len(orphans) > 0 {
		slog.Warn("ScenePromptRunner: dialogues reference unknown characters", "count", len(orphans))
	}
	return scene, nil
}

// Run はシーン定義からプロンプト文字列を組み立てて返します。
func (sr *ScenePromptRunner) Run(ctx context.Context, scenePath string) (string, error) {
	scene, err := sr.LoadScene(ctx, scenePath)
	if err != nil {
		return "", err
	}

	c := composer.New()
	c.Load(scene)
	return c.Prompt(), nil
}

// RunAndRefine は組み立てたプロンプトを Gemini へ渡し、映像演出の観点で
// 磨き込んだプロンプトを返します。
func (sr *ScenePromptRunner) RunAndRefine(ctx context.Context, scenePath string) (string, error) {
	if sr.client == nil {
		return "", gen.NewPreconditionError("テキスト生成クライアントは設定されていません")
	}

	prompt, err := sr.Run(ctx, scenePath)
	if err != nil {
		return "", err
	}

	slog.Info("ScenePromptRunner: Calling Gemini API", "model", sr.cfg.GeminiModel)
	return sr.client.GenerateText(ctx, refineInstruction+prompt)
}

// RunAndPublish は組み立てたプロンプトを Markdown/HTML として保存します。
func (sr *ScenePromptRunner) RunAndPublish(ctx context.Context, scenePath, outputDir string) (publisher.PublishResult, error) {
	scene, err := sr.LoadScene(ctx, scenePath)
	if err != nil {
		return publisher.PublishResult{}, err
	}

	c := composer.New()
	c.Load(scene)
	prompt := c.Prompt()

	doc := publisher.Document{
		FeatureName: "Veo Scene Prompt",
		Prompt:      prompt,
		Output:      prompt,
		GeneratedAt: time.Now(),
	}
	return sr.publisher.Publish(ctx, doc, publisher.Options{OutputDir: outputDir})
}

const refineInstruction = "You are a cinematography assistant. Refine the following video generation prompt, keeping every stated fact while enriching visual detail:\n\n"
