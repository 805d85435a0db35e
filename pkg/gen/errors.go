package gen

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind は生成処理の失敗分類です。リモート呼び出しの失敗はすべて
// オーケストレーション境界でこのいずれかへ変換され、そのまま利用者へ提示できる
// メッセージを持ちます。
type Kind int

const (
	// KindService は分類できなかったリモート側の失敗（フォールバック）です。
	KindService Kind = iota
	// KindMissingCredential はAPIキーが未設定の状態での生成要求です。リトライ不可。
	KindMissingCredential
	// KindInvalidCredential はリモートサービスがクレデンシャルを拒否した状態です。
	KindInvalidCredential
	// KindTransientNetwork はトランスポート層の一時的失敗です。再送信はユーザー操作に委ねます。
	KindTransientNetwork
	// KindIncompleteResult はジョブが完了報告したのに成果物が無い状態です。
	KindIncompleteResult
	// KindDownloadFailure は成果物の取得が非成功ステータスで終わった状態です。
	KindDownloadFailure
	// KindPrecondition はローカルの契約違反（空プロンプト等）です。リモートへは到達しません。
	KindPrecondition
)

// Error は分類済みの生成エラーです。Err には元のエラーを保持し、errors.Is/As で
// 辿れるようにします。
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewPreconditionError はローカル契約違反のエラーを生成します。
func NewPreconditionError(message string) *Error {
	return &Error{Kind: KindPrecondition, Message: message}
}

// NewMissingCredentialError はAPIキー未設定のエラーを生成します。
func NewMissingCredentialError() *Error {
	return &Error{
		Kind:    KindMissingCredential,
		Message: "APIキーが設定されていません。環境変数 GEMINI_API_KEY を設定してください",
	}
}

// invalidCredentialMarkers / transientMarkers は、リモートSDKが返す不透明な
// エラーメッセージを分類するための既知の部分文字列です。構造化エラーを提供しない
// 依存先との境界でのみ使う、ベストエフォートな判定です。
var (
	invalidCredentialMarkers = []string{
		"api key not valid",
		"api_key_invalid",
		"invalid api key",
		"permission denied",
		"unauthenticated",
	}
	transientMarkers = []string{
		"deadline exceeded",
		"connection refused",
		"connection reset",
		"no such host",
		"timeout",
		"unavailable",
		"temporarily",
		"eof",
	}
)

// Classify はリモート呼び出しの失敗を Kind 付きの Error へ変換する唯一の翻訳関数です。
// すでに分類済みの *Error はそのまま返します。判定できないものは KindService に落とします。
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{
			Kind:    KindTransientNetwork,
			Message: "リクエストが中断されました。再実行してください",
			Err:     err,
		}
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range invalidCredentialMarkers {
		if strings.Contains(msg, marker) {
			return &Error{
				Kind:    KindInvalidCredential,
				Message: "APIキーが拒否されました。キーを確認してください",
				Err:     err,
			}
		}
	}
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return &Error{
				Kind:    KindTransientNetwork,
				Message: "通信に失敗しました。時間を置いて再実行してください",
				Err:     err,
			}
		}
	}

	return &Error{
		Kind:    KindService,
		Message: "生成サービスがエラーを返しました",
		Err:     err,
	}
}
