package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-film-kit/internal/config"
	"github.com/shouni/go-film-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// sceneCmd は、シーン定義からの Veo プロンプト組み立てのみを実行するのだ。
var sceneCmd = &cobra.Command{
	Use:   "scene",
	Short: "シーン定義から動画生成用プロンプトを組み立てるのだ。",
	Long: `キャラクター、台詞、カメラ設定を記述したシーン定義JSONを解析し、
Veo へ渡せる1つの自然文プロンプトへ組み立てるのだ。動画生成は行わないのだよ。`,
	RunE: sceneCommand,
}

func init() {
}

func sceneCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 入力ソースの必須チェック (opts は addAppFlags で紐付け済みと想定)
	if opts.SceneFile == "" {
		return fmt.Errorf("シーン定義（--scene-file）を指定してほしいのだ")
	}

	// 2. 設定のロード
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.Options = opts

	slog.Info("シーンプロンプト組み立てモードを起動するのだ！",
		"scene_file", opts.SceneFile,
		"refine", opts.Refine,
		"output", opts.OutputDir)

	// 3. 実行
	if err := pipeline.ExecuteScene(ctx, cfg); err != nil {
		return fmt.Errorf("シーンプロンプトの組み立て中にエラーが発生したのだ: %w", err)
	}

	slog.Info("シーンプロンプトの組み立てが完了したのだ！")
	return nil
}
