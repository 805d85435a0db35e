package gen

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// JobState は動画生成ジョブの状態です。
type JobState string

const (
	StateIdle      JobState = "idle"
	StateSubmitted JobState = "submitted"
	StatePolling   JobState = "polling"
	StateSucceeded JobState = "succeeded"
	StateFailed    JobState = "failed"
)

// ReferenceImage は動画生成に添付する参照画像です。境界アダプタでbase64から
// 復元済みの生バイト列を保持します。
type ReferenceImage struct {
	Data     []byte
	MIMEType string
}

// SubmitRequest は動画生成ジョブの投入要求です。Image が nil の場合、送信
// ペイロードに画像フィールド自体を含めません（「画像なし」と「空の画像」を
// リモート契約が区別するため）。
type SubmitRequest struct {
	Prompt      string
	Image       *ReferenceImage
	AspectRatio string
}

// Job はリモートの長時間実行オペレーションへの不透明なハンドルです。
type Job struct {
	Handle      string
	Done        bool
	ArtifactURI string

	// raw はバックエンド実装が持ち回るSDK固有のオペレーション実体です。
	raw any
}

// VideoBackend は動画生成ジョブの投入とポーリングの契約です。
// 実体は Veo ですが、テストではフェイクを注入します。
type VideoBackend interface {
	Submit(ctx context.Context, req SubmitRequest) (Job, error)
	Poll(ctx context.Context, job Job) (Job, error)
}

// Artifact は取得済みの生成動画です。
type Artifact struct {
	Data     []byte
	MIMEType string
}

// ArtifactFetcher は完了したジョブの成果物URIからバイナリを取得する契約です。
type ArtifactFetcher interface {
	Fetch(ctx context.Context, uri string) (Artifact, error)
}

// VideoOrchestrator は動画生成ジョブを投入から成果物取得まで運転します。
// 状態遷移: Idle → Submitted → Polling →（self-loop）→ Succeeded | Failed。
// ポーリングは1ジョブにつき常に1つで、間隔はレートリミッタで刻みます。
// コンテキストのキャンセルで即座に停止できます。
type VideoOrchestrator struct {
	backend  VideoBackend
	fetcher  ArtifactFetcher
	interval time.Duration
	maxWait  time.Duration // 0 は無制限（リファレンス挙動）
	onState  func(JobState)
}

// VideoOption は VideoOrchestrator の挙動を調整します。
type VideoOption func(*VideoOrchestrator)

// WithPollInterval はポーリング間隔を変更します（デフォルト10秒）。
func WithPollInterval(d time.Duration) VideoOption {
	return func(o *VideoOrchestrator) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithMaxPollWait はポーリングの総待機時間に上限を設けます。0 は無制限です。
func WithMaxPollWait(d time.Duration) VideoOption {
	return func(o *VideoOrchestrator) { o.maxWait = d }
}

// WithStateObserver は状態遷移の通知先を設定します（表示層向け、任意）。
func WithStateObserver(fn func(JobState)) VideoOption {
	return func(o *VideoOrchestrator) { o.onState = fn }
}

const defaultPollInterval = 10 * time.Second

// NewVideoOrchestrator は VideoOrchestrator を初期化します。
func NewVideoOrchestrator(backend VideoBackend, fetcher ArtifactFetcher, opts ...VideoOption) *VideoOrchestrator {
	o := &VideoOrchestrator{
		backend:  backend,
		fetcher:  fetcher,
		interval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *VideoOrchestrator) setState(s JobState) {
	if o.onState != nil {
		o.onState(s)
	}
}

// Run はジョブを投入し、完了までポーリングして成果物を取得します。
// 失敗時に中途半端な成果物を返すことはありません（Artifact のゼロ値とエラーのみ）。
func (o *VideoOrchestrator) Run(ctx context.Context, req SubmitRequest) (Artifact, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return Artifact{}, NewPreconditionError("プロンプトが空です")
	}

	slog.Info("VideoOrchestrator: submitting job", "has_image", req.Image != nil)
	job, err := o.backend.Submit(ctx, req)
	if err != nil {
		o.setState(StateFailed)
		return Artifact{}, Classify(err)
	}
	o.setState(StateSubmitted)

	limiter := rate.NewLimiter(rate.Every(o.interval), 1)
	started := time.Now()

	o.setState(StatePolling)
	for !job.Done {
		if err := limiter.Wait(ctx); err != nil {
			o.setState(StateFailed)
			return Artifact{}, Classify(err)
		}
		if o.maxWait > 0 && time.Since(started) > o.maxWait {
			o.setState(StateFailed)
			return Artifact{}, &Error{
				Kind:    KindTransientNetwork,
				Message: "動画生成が時間内に完了しませんでした。再実行してください",
			}
		}

		job, err = o.backend.Poll(ctx, job)
		if err != nil {
			o.setState(StateFailed)
			return Artifact{}, Classify(err)
		}
		slog.Debug("VideoOrchestrator: polled", "handle", job.Handle, "done", job.Done)
	}

	if job.ArtifactURI == "" {
		// 完了報告はあるのに成果物が無い。トランスポート失敗とは別系統のエラー。
		o.setState(StateFailed)
		return Artifact{}, &Error{
			Kind:    KindIncompleteResult,
			Message: "動画ジョブは完了しましたが、成果物が返されませんでした",
		}
	}

	artifact, err := o.fetcher.Fetch(ctx, job.ArtifactURI)
	if err != nil {
		o.setState(StateFailed)
		return Artifact{}, Classify(err)
	}

	o.setState(StateSucceeded)
	slog.Info("VideoOrchestrator: job succeeded", "handle", job.Handle, "bytes", len(artifact.Data))
	return artifact, nil
}
