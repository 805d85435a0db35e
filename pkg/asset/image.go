package asset

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// ImagePayload は、ローカル画像ファイルを生成コアへ渡すための転送表現です。
// Data はbase64文字列、MIMEType は内容判定によるメディアタイプです。
// ファイル→ペイロードの変換は境界アダプタであり、コアのロジックではありません。
type ImagePayload struct {
	Data     string `json:"data"`
	MIMEType string `json:"mime_type"`
}

// EncodeImageFile はローカルの画像ファイルを読み込み、転送ペイロードへ変換します。
func EncodeImageFile(path string) (ImagePayload, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ImagePayload{}, fmt.Errorf("参照画像の読み込みに失敗しました: %w", err)
	}
	return EncodeImageBytes(raw), nil
}

// EncodeImageBytes はバイト列を転送ペイロードへ変換します。
// メディアタイプは先頭バイトのスニッフィングで決定します。
func EncodeImageBytes(raw []byte) ImagePayload {
	return ImagePayload{
		Data:     base64.StdEncoding.EncodeToString(raw),
		MIMEType: http.DetectContentType(raw),
	}
}

// Decode はペイロードから元のバイト列を復元します。
// Encode→Decode は元の内容を正確に再現します（ラウンドトリップ保証）。
func (p ImagePayload) Decode() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(p.Data)
	if err != nil {
		return nil, fmt.Errorf("画像ペイロードのデコードに失敗しました: %w", err)
	}
	return data, nil
}

// IsZero はペイロードが未設定（画像なし）かどうかを返します。
func (p ImagePayload) IsZero() bool {
	return p.Data == ""
}
