package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/go-film-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は各コマンドで共有される実行時パラメータなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.ScriptURL, "script-url", "u", "", "Webページからコンテンツを取得するためのURLなのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.SceneFile, "scene-file", "f", "", "シーン定義JSONのパス（ローカル or gs://...）なのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "成果物の保存先ディレクトリ（ローカル or gs://...）なのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultModel, "使用する Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.VideoModel, "video-model", config.DefaultVideoModel, "使用する Veo モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")

	// --- 動画生成固有設定 ---
	videoCmd.Flags().StringVarP(&opts.Prompt, "prompt", "p", "", "動画生成へそのまま渡すプロンプトなのだ。")
	videoCmd.Flags().StringVarP(&opts.ImageFile, "image", "i", "", "参照画像（開始フレーム）のパスなのだ。")
	videoCmd.Flags().StringVar(&opts.AspectRatio, "aspect-ratio", config.DefaultAspectRatio, "動画のアスペクト比（16:9 / 9:16 など）なのだ。")
	videoCmd.Flags().DurationVar(&opts.PollInterval, "poll-interval", config.DefaultPollInterval, "ジョブ完了確認のポーリング間隔なのだ。")
	videoCmd.Flags().DurationVar(&opts.MaxPollWait, "max-poll-wait", 0, "ポーリングの待機上限（0で無制限）なのだ。")

	// --- テキスト生成固有設定 ---
	generateCmd.Flags().StringVarP(&opts.FeatureID, "feature", "F", "", "実行するフィーチャーのIDなのだ（list で一覧表示）。")
	generateCmd.Flags().StringArrayVar(&opts.Inputs, "input", nil, "フィーチャーへの入力（key=value、複数指定可）なのだ。")

	// --- シーン固有設定 ---
	sceneCmd.Flags().BoolVar(&opts.Refine, "refine", false, "組み立てたプロンプトを Gemini で磨き込むのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// Gemini / Veo APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"ap-film-go",
		addAppFlags,
		preRunAppE,
		listCmd,
		generateCmd,
		sceneCmd,
		videoCmd,
	)
}
