package workflow

import (
	"context"

	"github.com/shouni/go-film-kit/pkg/asset"
	"github.com/shouni/go-film-kit/pkg/domain"
	"github.com/shouni/go-film-kit/pkg/feature"
	"github.com/shouni/go-film-kit/pkg/gen"
	"github.com/shouni/go-film-kit/pkg/publisher"
)

// Workflow は、映像制作ワークフローの各工程を担当する Runner を構築するためのインターフェースを定義します。
type Workflow interface {
	BuildTextRunner() (TextRunner, error)
	BuildSceneRunner() (SceneRunner, error)
	BuildVideoRunner(ctx context.Context) (VideoRunner, error)
}

// TextRunner は、フィーチャー入力からプロンプトを合成し、テキスト成果物を生成する責務を持ちます。
type TextRunner interface {
	Run(ctx context.Context, id feature.ID, inputs map[string]string, scriptURL string) (string, error)
	RunAndPublish(ctx context.Context, id feature.ID, inputs map[string]string, scriptURL, outputDir string) (publisher.PublishResult, error)
}

// SceneRunner は、シーン定義から動画生成向けのプロンプトを組み立てる責務を持ちます。
type SceneRunner interface {
	LoadScene(ctx context.Context, scenePath string) (domain.Scene, error)
	Run(ctx context.Context, scenePath string) (string, error)
	RunAndRefine(ctx context.Context, scenePath string) (string, error)
	RunAndPublish(ctx context.Context, scenePath, outputDir string) (publisher.PublishResult, error)
}

// VideoRunner は、動画生成ジョブの投入から成果物の保存までを担う責務を持ちます。
type VideoRunner interface {
	Run(ctx context.Context, prompt string, image asset.ImagePayload, aspectRatio string) (gen.Artifact, error)
	RunAndSave(ctx context.Context, prompt string, image asset.ImagePayload, aspectRatio, outputDir string) (string, error)
}
