package asset

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// pngHeader はPNGのマジックナンバーを含む最小のダミーデータです。
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

func TestImagePayload_RoundTrip(t *testing.T) {
	payload := EncodeImageBytes(pngHeader)

	decoded, err := payload.Decode()
	if err != nil {
		t.Fatalf("デコードに失敗したのだ: %v", err)
	}
	if !bytes.Equal(decoded, pngHeader) {
		t.Error("エンコード→デコードで内容が一致しないのだ")
	}
	if payload.MIMEType != "image/png" {
		t.Errorf("メディアタイプの判定が違うのだ: %s", payload.MIMEType)
	}
}

func TestEncodeImageFile(t *testing.T) {
	t.Run("ファイルからペイロードを作れること", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ref.png")
		if err := os.WriteFile(path, pngHeader, 0o644); err != nil {
			t.Fatal(err)
		}

		payload, err := EncodeImageFile(path)
		if err != nil {
			t.Fatalf("エンコードに失敗したのだ: %v", err)
		}
		if payload.IsZero() {
			t.Error("ペイロードが空なのだ")
		}
	})

	t.Run("存在しないファイルはエラーになること", func(t *testing.T) {
		if _, err := EncodeImageFile("/no/such/file.png"); err == nil {
			t.Error("存在しないファイルでエラーが返らないのだ")
		}
	})
}

func TestImagePayload_IsZero(t *testing.T) {
	var empty ImagePayload
	if !empty.IsZero() {
		t.Error("ゼロ値はIsZeroであるべきなのだ")
	}
	if EncodeImageBytes(pngHeader).IsZero() {
		t.Error("内容のあるペイロードがIsZeroなのだ")
	}
}
