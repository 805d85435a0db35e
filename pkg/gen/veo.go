package gen

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// VeoBackend は google.golang.org/genai の Veo 長時間実行オペレーションを
// VideoBackend として適合させる実装です。クライアントはプロセスで一度だけ
// 構築し、参照で引き回します。
type VeoBackend struct {
	client *genai.Client
	model  string
}

// NewVeoBackend は Gemini API バックエンドの Veo クライアントを構築します。
// APIキーが空の場合は即座に MissingCredential で失敗します。
func NewVeoBackend(ctx context.Context, apiKey, model string) (*VeoBackend, error) {
	if apiKey == "" {
		return nil, NewMissingCredentialError()
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("Veoクライアントの初期化に失敗しました: %w", err)
	}
	return &VeoBackend{client: client, model: model}, nil
}

// Submit は動画生成オペレーションを開始します。参照画像が無い場合は image 引数を
// nil のまま渡し、添付フィールド自体を省略します。
func (b *VeoBackend) Submit(ctx context.Context, req SubmitRequest) (Job, error) {
	var image *genai.Image
	if req.Image != nil {
		image = &genai.Image{
			ImageBytes: req.Image.Data,
			MIMEType:   req.Image.MIMEType,
		}
	}

	cfg := &genai.GenerateVideosConfig{NumberOfVideos: 1}
	if req.AspectRatio != "" {
		cfg.AspectRatio = req.AspectRatio
	}

	op, err := b.client.Models.GenerateVideos(ctx, b.model, req.Prompt, image, cfg)
	if err != nil {
		return Job{}, err
	}
	return jobFromOperation(op), nil
}

// Poll はオペレーションの最新状態を取得します。
func (b *VeoBackend) Poll(ctx context.Context, job Job) (Job, error) {
	op, ok := job.raw.(*genai.GenerateVideosOperation)
	if !ok {
		// ハンドル文字列しか無い場合（プロセスをまたいだ再開など）もポーリング可能にする
		op = &genai.GenerateVideosOperation{Name: job.Handle}
	}

	op, err := b.client.Operations.GetVideosOperation(ctx, op, nil)
	if err != nil {
		return Job{}, err
	}
	return jobFromOperation(op), nil
}

// jobFromOperation はSDKのオペレーションを不透明な Job へ写します。
// 完了していても動画が無い場合は ArtifactURI を空のままにします
// （IncompleteResult の判定はオーケストレーター側の責務）。
func jobFromOperation(op *genai.GenerateVideosOperation) Job {
	job := Job{
		Handle: op.Name,
		Done:   op.Done,
		raw:    op,
	}
	if op.Done && op.Response != nil && len(op.Response.GeneratedVideos) > 0 {
		if v := op.Response.GeneratedVideos[0].Video; v != nil {
			job.ArtifactURI = v.URI
		}
	}
	return job
}
