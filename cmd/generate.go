package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-film-kit/internal/config"
	"github.com/shouni/go-film-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// generateCmd は、テンプレート型フィーチャーによるテキスト生成を実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "フィーチャーを実行してテキスト成果物を生成するのだ。",
	Long: `ログライン、脚本、あらすじなどのフィーチャーに入力を流し込み、
Gemini でテキストを生成して Markdown / HTML として保存するのだ。
フィーチャーのIDと入力項目は list コマンドで確認できるのだよ。`,
	RunE: generateCommand,
}

func init() {
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.FeatureID == "" {
		return fmt.Errorf("フィーチャー（--feature）を指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.Options = opts

	slog.Info("テキスト生成パイプラインを起動するのだ！",
		"feature", opts.FeatureID,
		"text_model", cfg.GeminiModel,
		"output", opts.OutputDir)

	// 3. 実行
	if err := pipeline.ExecuteFeature(ctx, cfg); err != nil {
		return fmt.Errorf("テキスト生成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}
