package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-film-kit/internal/config"
	"github.com/shouni/go-film-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// videoCmd は、Veo による動画生成ジョブの投入から成果物の保存までを実行するのだ。
var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Veo で動画を生成して保存するのだ。",
	Long: `プロンプト（またはシーン定義JSON）を基に Veo へ動画生成ジョブを投入し、
完了までポーリングして成果物の動画ファイルを保存するのだ。
参照画像（--image）を渡すと、その画像を開始フレームとして利用するのだよ。`,
	RunE: videoCommand,
}

func init() {
}

func videoCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.Prompt == "" && opts.SceneFile == "" {
		return fmt.Errorf("プロンプト（--prompt または --scene-file）を指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.VideoModel = opts.VideoModel
	cfg.Options = opts

	slog.Info("動画生成パイプラインを起動するのだ！",
		"video_model", cfg.VideoModel,
		"aspect_ratio", opts.AspectRatio,
		"output", opts.OutputDir)

	// 3. 実行
	if err := pipeline.ExecuteVideo(ctx, cfg); err != nil {
		return fmt.Errorf("動画生成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}
