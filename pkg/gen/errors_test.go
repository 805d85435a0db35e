package gen

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"APIキー拒否", errors.New("rpc error: API key not valid. Please pass a valid API key."), KindInvalidCredential},
		{"認証失敗", errors.New("code 401: UNAUTHENTICATED"), KindInvalidCredential},
		{"接続拒否", errors.New("dial tcp: connection refused"), KindTransientNetwork},
		{"タイムアウト", errors.New("Post \"https://...\": context deadline exceeded"), KindTransientNetwork},
		{"サービス過負荷", errors.New("503 Service UNAVAILABLE"), KindTransientNetwork},
		{"未知のエラー", errors.New("something completely different"), KindService},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.err)
			if got.Kind != tc.want {
				t.Errorf("期待 %v, 実際 %v (err=%v)", tc.want, got.Kind, tc.err)
			}
		})
	}

	t.Run("nilはnilのまま", func(t *testing.T) {
		if Classify(nil) != nil {
			t.Error("nilを分類してはいけないのだ")
		}
	})

	t.Run("コンテキストキャンセルは一時的失敗扱い", func(t *testing.T) {
		got := Classify(context.Canceled)
		if got.Kind != KindTransientNetwork {
			t.Errorf("期待 KindTransientNetwork, 実際 %v", got.Kind)
		}
	})

	t.Run("分類済みエラーは再分類しないこと", func(t *testing.T) {
		original := NewPreconditionError("empty prompt")
		wrapped := fmt.Errorf("wrapped: %w", original)
		got := Classify(wrapped)
		if got.Kind != KindPrecondition {
			t.Errorf("ラップ済みエラーの分類が失われたのだ: %v", got.Kind)
		}
	})
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("inner failure")
	e := &Error{Kind: KindService, Message: "outer", Err: inner}

	if !errors.Is(e, inner) {
		t.Error("errors.Is で内側のエラーへ辿れないのだ")
	}

	var target *Error
	if !errors.As(fmt.Errorf("wrap: %w", e), &target) {
		t.Error("errors.As で *Error を取り出せないのだ")
	}
}
