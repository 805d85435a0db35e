package gen

import (
	"strings"
	"testing"
)

func TestAppendKey(t *testing.T) {
	t.Run("クエリなしのURIにキーが付与されること", func(t *testing.T) {
		got, err := appendKey("https://dl.example/v/file.mp4", "secret")
		if err != nil {
			t.Fatal(err)
		}
		if got != "https://dl.example/v/file.mp4?key=secret" {
			t.Errorf("期待と違うのだ: %s", got)
		}
	})

	t.Run("既存のクエリが保持されること", func(t *testing.T) {
		got, err := appendKey("https://dl.example/v?alt=media", "secret")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(got, "alt=media") || !strings.Contains(got, "key=secret") {
			t.Errorf("クエリの合成が正しくないのだ: %s", got)
		}
	})
}
