package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-film-kit/pkg/asset"
	"github.com/shouni/go-film-kit/pkg/config"
	"github.com/shouni/go-film-kit/pkg/gen"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// VideoJobRunner は動画生成ジョブの投入から成果物の保存までを担当します。
type VideoJobRunner struct {
	cfg          config.Config
	orchestrator *gen.VideoOrchestrator
	writer       remoteio.OutputWriter
}

// NewVideoJobRunner は依存関係を注入して初期化します。
func NewVideoJobRunner(cfg config.Config, orch *gen.VideoOrchestrator, w remoteio.OutputWriter) *VideoJobRunner {
	return &VideoJobRunner{
		cfg:          cfg,
		orchestrator: orch,
		writer:       w,
	}
}

// Run はジョブを投入し、完了まで待機して成果物を返します。
// image はゼロ値のとき送信ペイロードから完全に省かれます。
func (vr *VideoJobRunner) Run(ctx context.Context, prompt string, image asset.ImagePayload, aspectRatio string) (gen.Artifact, error) {
	req := gen.SubmitRequest{
		Prompt:      prompt,
		AspectRatio: aspectRatio,
	}

	if !image.IsZero() {
		raw, err := image.Decode()
		if err != nil {
			return gen.Artifact{}, fmt.Errorf("参照画像のデコードに失敗しました: %w", err)
		}
		req.Image = &gen.ReferenceImage{Data: raw, MIMEType: image.MIMEType}
	}

	slog.Info("VideoJobRunner: Submitting video job", "model", vr.cfg.VideoModel, "aspect_ratio", aspectRatio)
	return vr.orchestrator.Run(ctx, req)
}

// RunAndSave はジョブを実行し、成果物を outputDir 配下に書き出してパスを返します。
func (vr *VideoJobRunner) RunAndSave(ctx context.Context, prompt string, image asset.ImagePayload, aspectRatio, outputDir string) (string, error) {
	artifact, err := vr.Run(ctx, prompt, image, aspectRatio)
	if err != nil {
		return "", err
	}

	outputPath, err := asset.ResolveOutputPath(outputDir, asset.DefaultVideoFileName)
	if err != nil {
		return "", fmt.Errorf("出力パスの解決に失敗しました: %w", err)
	}

	if err := vr.writer.Write(ctx, outputPath, bytes.NewReader(artifact.Data), artifact.MIMEType); err != nil {
		return "", fmt.Errorf("動画の保存に失敗しました: %w", err)
	}

	slog.Info("VideoJobRunner: Video saved", "path", outputPath, "bytes", len(artifact.Data))
	return outputPath, nil
}
