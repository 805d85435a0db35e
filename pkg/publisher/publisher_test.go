package publisher

import (
	"strings"
	"testing"
	"time"
)

func TestDocumentPublisher_BuildMarkdown(t *testing.T) {
	p := NewDocumentPublisher(nil, nil)

	doc := Document{
		FeatureName: "Script Generation",
		Prompt:      "  write a scene  ",
		Output:      "INT. DINER - NIGHT",
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	md := p.buildMarkdown(doc)

	t.Run("見出しがフィーチャー名になること", func(t *testing.T) {
		if !strings.HasPrefix(md, "# Script Generation\n") {
			t.Errorf("見出しが期待と違うのだ:\n%s", md)
		}
	})

	t.Run("プロンプトと結果の両方が含まれること", func(t *testing.T) {
		if !strings.Contains(md, "write a scene") {
			t.Error("プロンプトが欠けているのだ")
		}
		if !strings.Contains(md, "INT. DINER - NIGHT") {
			t.Error("生成結果が欠けているのだ")
		}
	})

	t.Run("生成時刻が記録されること", func(t *testing.T) {
		if !strings.Contains(md, "2026-08-01T12:00:00Z") {
			t.Errorf("生成時刻が欠けているのだ:\n%s", md)
		}
	})
}
