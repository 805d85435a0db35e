package gen

import (
	"context"
	"errors"
	"testing"

	"github.com/shouni/go-gemini-client/gemini"
)

// fakeTextModel は TextModel のテスト用実装です。
type fakeTextModel struct {
	calls int
	text  string
	err   error
}

func (f *fakeTextModel) GenerateContent(ctx context.Context, prompt string, model string) (*gemini.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &gemini.Response{Text: f.text}, nil
}

func TestTextClient_GenerateText(t *testing.T) {
	t.Run("生成テキストをそのまま返すこと", func(t *testing.T) {
		fake := &fakeTextModel{text: "INT. DINER - NIGHT"}
		client, err := NewTextClient(fake, "gemini-3-flash-preview")
		if err != nil {
			t.Fatal(err)
		}

		got, err := client.GenerateText(context.Background(), "write a scene")
		if err != nil {
			t.Fatalf("生成に失敗したのだ: %v", err)
		}
		if got != "INT. DINER - NIGHT" {
			t.Errorf("応答テキストが一致しないのだ: %q", got)
		}
	})

	t.Run("空のプロンプトはリモートへ到達しないこと", func(t *testing.T) {
		fake := &fakeTextModel{text: "unused"}
		client, _ := NewTextClient(fake, "m")

		_, err := client.GenerateText(context.Background(), "   ")
		var genErr *Error
		if !errors.As(err, &genErr) || genErr.Kind != KindPrecondition {
			t.Fatalf("Preconditionエラーが返るべきなのだ: %v", err)
		}
		if fake.calls != 0 {
			t.Errorf("リモート呼び出しが発生しているのだ: %d", fake.calls)
		}
	})

	t.Run("同一プロンプトはキャッシュされること", func(t *testing.T) {
		fake := &fakeTextModel{text: "cached result"}
		client, _ := NewTextClient(fake, "m")

		ctx := context.Background()
		if _, err := client.GenerateText(ctx, "same prompt"); err != nil {
			t.Fatal(err)
		}
		if _, err := client.GenerateText(ctx, "same prompt"); err != nil {
			t.Fatal(err)
		}
		if fake.calls != 1 {
			t.Errorf("キャッシュが効いていないのだ。呼び出し回数: %d", fake.calls)
		}
	})

	t.Run("リモート失敗は分類されること", func(t *testing.T) {
		fake := &fakeTextModel{err: errors.New("API key not valid")}
		client, _ := NewTextClient(fake, "m")

		_, err := client.GenerateText(context.Background(), "prompt")
		var genErr *Error
		if !errors.As(err, &genErr) || genErr.Kind != KindInvalidCredential {
			t.Fatalf("InvalidCredentialに分類されるべきなのだ: %v", err)
		}
	})

	t.Run("aiクライアント無しでは構築できないこと", func(t *testing.T) {
		if _, err := NewTextClient(nil, "m"); err == nil {
			t.Error("nilクライアントでの構築はエラーになるべきなのだ")
		}
	})
}
