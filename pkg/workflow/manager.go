// Package workflow は、フィルムキットの各工程を担う Runner 群の構築と
// 依存関係の束ね上げを担当します。
package workflow

import (
	"context"
	"fmt"

	"github.com/shouni/go-film-kit/pkg/config"
	"github.com/shouni/go-film-kit/pkg/feature"
	"github.com/shouni/go-film-kit/pkg/gen"

	"github.com/shouni/go-gemini-client/gemini"
	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"
)

// ManagerArgs は Manager の生成に必要な依存一式です。
type ManagerArgs struct {
	Config     config.Config
	HTTPClient httpkit.ClientInterface
	Reader     remoteio.InputReader
	Writer     remoteio.OutputWriter
}

// Manager は、ワークフローの各工程を担う Runner 群を構築・管理します。
type Manager struct {
	cfg        config.Config
	httpClient httpkit.ClientInterface
	reader     remoteio.InputReader
	writer     remoteio.OutputWriter
	aiClient   gemini.GenerativeModel
	registry   *feature.Registry
}

// New は、設定と入出力の依存を基に新しい Manager を初期化します。
func New(ctx context.Context, args ManagerArgs) (*Manager, error) {
	if args.HTTPClient == nil {
		return nil, fmt.Errorf("httpClient は必須です")
	}
	if args.Reader == nil {
		return nil, fmt.Errorf("InputReader は必須です")
	}
	if args.Writer == nil {
		return nil, fmt.Errorf("OutputWriter は必須です")
	}
	if args.Config.GeminiAPIKey == "" {
		return nil, gen.NewMissingCredentialError()
	}

	aiClient, err := initializeAIClient(ctx, args.Config.GeminiAPIKey)
	if err != nil {
		return nil, err
	}

	registry, err := feature.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("フィーチャーレジストリの初期化に失敗しました: %w", err)
	}

	return &Manager{
		cfg:        args.Config,
		httpClient: args.HTTPClient,
		reader:     args.Reader,
		writer:     args.Writer,
		aiClient:   aiClient,
		registry:   registry,
	}, nil
}

// Registry は構築済みのフィーチャーレジストリを返します。
func (m *Manager) Registry() *feature.Registry {
	return m.registry
}

// initializeAIClient は gemini クライアントを初期化します。
func initializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}
