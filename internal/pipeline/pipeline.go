package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-film-kit/internal/config"
	"github.com/shouni/go-film-kit/pkg/asset"
	"github.com/shouni/go-film-kit/pkg/feature"
	"github.com/shouni/go-film-kit/pkg/workflow"

	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

// ExecuteFeature は、テンプレート型フィーチャーのプロンプト合成→テキスト生成→保存を実行するのだ。
func ExecuteFeature(ctx context.Context, cfg *config.Config) error {
	manager, err := setupManager(ctx, cfg)
	if err != nil {
		return err
	}

	textRunner, err := manager.BuildTextRunner()
	if err != nil {
		return fmt.Errorf("TextRunnerの構築に失敗したのだ: %w", err)
	}

	inputs, err := parseInputs(cfg.Options.Inputs)
	if err != nil {
		return err
	}

	result, err := textRunner.RunAndPublish(ctx, feature.ID(cfg.Options.FeatureID), inputs, cfg.Options.ScriptURL, cfg.Options.OutputDir)
	if err != nil {
		return fmt.Errorf("テキスト生成に失敗したのだ: %w", err)
	}

	slog.Info("テキスト成果物を保存したのだ！", "markdown", result.MarkdownPath, "html", result.HTMLPath)
	return nil
}

// ExecuteScene は、シーン定義からの Veo プロンプト組み立て→保存を実行するのだ。
func ExecuteScene(ctx context.Context, cfg *config.Config) error {
	manager, err := setupManager(ctx, cfg)
	if err != nil {
		return err
	}

	sceneRunner, err := manager.BuildSceneRunner()
	if err != nil {
		return fmt.Errorf("SceneRunnerの構築に失敗したのだ: %w", err)
	}

	prompt, err := sceneRunner.Run(ctx, cfg.Options.SceneFile)
	if err != nil {
		return fmt.Errorf("シーンプロンプトの組み立てに失敗したのだ: %w", err)
	}
	fmt.Println(prompt)

	if cfg.Options.Refine {
		refined, err := sceneRunner.RunAndRefine(ctx, cfg.Options.SceneFile)
		if err != nil {
			return fmt.Errorf("プロンプトの磨き込みに失敗したのだ: %w", err)
		}
		fmt.Println(refined)
	}

	result, err := sceneRunner.RunAndPublish(ctx, cfg.Options.SceneFile, cfg.Options.OutputDir)
	if err != nil {
		return fmt.Errorf("シーンプロンプトの保存に失敗したのだ: %w", err)
	}

	slog.Info("シーンプロンプトを保存したのだ！", "markdown", result.MarkdownPath)
	return nil
}

// ExecuteVideo は、動画生成ジョブの投入→完了待機→成果物の保存までを実行するのだ。
func ExecuteVideo(ctx context.Context, cfg *config.Config) error {
	manager, err := setupManager(ctx, cfg)
	if err != nil {
		return err
	}

	prompt, err := resolveVideoPrompt(ctx, manager, cfg)
	if err != nil {
		return err
	}

	var image asset.ImagePayload
	if cfg.Options.ImageFile != "" {
		image, err = asset.EncodeImageFile(cfg.Options.ImageFile)
		if err != nil {
			return fmt.Errorf("参照画像の読み込みに失敗したのだ: %w", err)
		}
	}

	videoRunner, err := manager.BuildVideoRunner(ctx)
	if err != nil {
		return fmt.Errorf("VideoRunnerの構築に失敗したのだ: %w", err)
	}

	outputPath, err := videoRunner.RunAndSave(ctx, prompt, image, cfg.Options.AspectRatio, cfg.Options.OutputDir)
	if err != nil {
		return fmt.Errorf("動画生成に失敗したのだ: %w", err)
	}

	slog.Info("動画の生成が完了したのだ！", "path", outputPath)
	return nil
}

// resolveVideoPrompt は --prompt と --scene-file のどちらかからプロンプトを決定するのだ。
func resolveVideoPrompt(ctx context.Context, manager *workflow.Manager, cfg *config.Config) (string, error) {
	if cfg.Options.Prompt != "" {
		return cfg.Options.Prompt, nil
	}
	if cfg.Options.SceneFile == "" {
		return "", fmt.Errorf("プロンプト（--prompt または --scene-file）を指定してほしいのだ")
	}

	sceneRunner, err := manager.BuildSceneRunner()
	if err != nil {
		return "", fmt.Errorf("SceneRunnerの構築に失敗したのだ: %w", err)
	}
	prompt, err := sceneRunner.Run(ctx, cfg.Options.SceneFile)
	if err != nil {
		return "", fmt.Errorf("シーンプロンプトの組み立てに失敗したのだ: %w", err)
	}
	return prompt, nil
}

// setupManager は、提供された設定と共有コンポーネントを使用して workflow.Manager を初期化して返すのだ。
func setupManager(ctx context.Context, cfg *config.Config) (*workflow.Manager, error) {
	httpClient := httpkit.New(config.DefaultHTTPTimeout)

	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	return workflow.New(ctx, workflow.ManagerArgs{
		Config:     cfg.RunnerConfig(),
		HTTPClient: httpClient,
		Reader:     reader,
		Writer:     writer,
	})
}

// parseInputs は --input で渡された key=value の組をマップへ変換するのだ。
func parseInputs(pairs []string) (map[string]string, error) {
	inputs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("--input は key=value 形式で指定してほしいのだ: %q", pair)
		}
		inputs[key] = value
	}
	return inputs, nil
}
