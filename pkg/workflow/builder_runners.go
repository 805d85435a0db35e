package workflow

import (
	"context"
	"fmt"

	"github.com/shouni/go-film-kit/pkg/gen"
	"github.com/shouni/go-film-kit/pkg/publisher"
	"github.com/shouni/go-film-kit/pkg/runner"

	"github.com/shouni/go-text-format/pkg/builder"
	"github.com/shouni/go-web-exact/v2/extract"
)

// BuildTextRunner は、テンプレート型フィーチャーの実行を担当する Runner を作成します。
func (m *Manager) BuildTextRunner() (TextRunner, error) {
	extractor, err := extract.NewExtractor(m.httpClient)
	if err != nil {
		return nil, fmt.Errorf("extractor の初期化に失敗しました: %w", err)
	}

	client, err := gen.NewTextClient(m.aiClient, m.cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("テキストクライアントの作成に失敗しました: %w", err)
	}

	pub, err := m.buildPublisher()
	if err != nil {
		return nil, err
	}

	return runner.NewFeatureTextRunner(m.cfg, m.registry, extractor, client, pub), nil
}

// BuildSceneRunner は、シーンプロンプトの組み立てを担当する Runner を作成します。
func (m *Manager) BuildSceneRunner() (SceneRunner, error) {
	client, err := gen.NewTextClient(m.aiClient, m.cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("テキストクライアントの作成に失敗しました: %w", err)
	}

	pub, err := m.buildPublisher()
	if err != nil {
		return nil, err
	}

	return runner.NewScenePromptRunner(m.cfg, m.reader, client, pub), nil
}

// BuildVideoRunner は、動画生成ジョブの実行を担当する Runner を作成します。
func (m *Manager) BuildVideoRunner(ctx context.Context) (VideoRunner, error) {
	backend, err := gen.NewVeoBackend(ctx, m.cfg.GeminiAPIKey, m.cfg.VideoModel)
	if err != nil {
		return nil, fmt.Errorf("動画バックエンドの初期化に失敗しました: %w", err)
	}

	fetcher, err := gen.NewKeyedFetcher(m.httpClient, m.cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("成果物フェッチャーの初期化に失敗しました: %w", err)
	}

	opts := []gen.VideoOption{gen.WithPollInterval(m.cfg.PollInterval)}
	if m.cfg.MaxPollWait > 0 {
		opts = append(opts, gen.WithMaxPollWait(m.cfg.MaxPollWait))
	}
	orch := gen.NewVideoOrchestrator(backend, fetcher, opts...)

	return runner.NewVideoJobRunner(m.cfg, orch, m.writer), nil
}

// buildPublisher は Markdown→HTML 変換器込みの DocumentPublisher を作成します。
func (m *Manager) buildPublisher() (*publisher.DocumentPublisher, error) {
	htmlCfg := builder.BuilderConfig{
		EnableHardWraps: true,
	}
	md2htmlBuilder, err := builder.NewBuilder(htmlCfg)
	if err != nil {
		return nil, fmt.Errorf("md2htmlBuilder の初期化に失敗しました: %w", err)
	}
	md2htmlRunner, err := md2htmlBuilder.BuildRunner()
	if err != nil {
		return nil, fmt.Errorf("md2htmlRunner の初期化に失敗しました: %w", err)
	}

	return publisher.NewDocumentPublisher(m.writer, md2htmlRunner), nil
}
