package gen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/shouni/go-http-kit/httpkit"
)

const defaultVideoMIMEType = "video/mp4"

// KeyedFetcher は成果物URIにサービスクレデンシャルを付与してダウンロードする
// ArtifactFetcher 実装です。Veo のダウンロードURLはAPIキーをクエリで要求します。
type KeyedFetcher struct {
	http   httpkit.ClientInterface
	apiKey string
}

// NewKeyedFetcher は KeyedFetcher を初期化します。
func NewKeyedFetcher(httpClient httpkit.ClientInterface, apiKey string) (*KeyedFetcher, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient は必須です")
	}
	if apiKey == "" {
		return nil, NewMissingCredentialError()
	}
	return &KeyedFetcher{http: httpClient, apiKey: apiKey}, nil
}

// Fetch は成果物をバイナリとして取得します。非成功ステータスは DownloadFailure に
// なります。取得したバイト列の寿命は呼び出し側が管理します。
func (f *KeyedFetcher) Fetch(ctx context.Context, uri string) (Artifact, error) {
	signed, err := appendKey(uri, f.apiKey)
	if err != nil {
		return Artifact{}, Classify(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, signed, nil)
	if err != nil {
		return Artifact{}, Classify(err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return Artifact{}, Classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Artifact{}, &Error{
			Kind:    KindDownloadFailure,
			Message: fmt.Sprintf("成果物のダウンロードに失敗しました (status: %s)", resp.Status),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Artifact{}, Classify(err)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = defaultVideoMIMEType
	}
	return Artifact{Data: data, MIMEType: mimeType}, nil
}

// appendKey はURIのクエリにAPIキーを追加します。既存のクエリは保持します。
func appendKey(uri, apiKey string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("成果物URIの解析に失敗しました: %w", err)
	}
	q := u.Query()
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
