package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/shouni/go-film-kit/pkg/asset"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-text-format/pkg/md2htmlrunner"
)

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	MarkdownPath string // 生成された Markdown のパス
	HTMLPath     string // 生成された HTML のパス（変換が有効な場合のみ）
}

// Document は保存対象となる1回分の生成結果です。
type Document struct {
	FeatureName string    // 利用したフィーチャーの表示名
	Prompt      string    // 送信したプロンプト
	Output      string    // 生成されたテキスト
	GeneratedAt time.Time // 生成時刻
}

// DocumentPublisher は生成結果の永続化とフォーマット変換を担います。
// 書き込み先は remoteio 経由でローカル/GCSを透過的に扱います。
type DocumentPublisher struct {
	writer     remoteio.OutputWriter
	htmlRunner md2htmlrunner.Runner
}

// NewDocumentPublisher は DocumentPublisher を初期化します。htmlRunner は任意
// （nil のときはHTML変換をスキップ）です。
func NewDocumentPublisher(writer remoteio.OutputWriter, htmlRunner md2htmlrunner.Runner) *DocumentPublisher {
	return &DocumentPublisher{
		writer:     writer,
		htmlRunner: htmlRunner,
	}
}

// Publish はMarkdownの構築・保存と、必要ならHTML変換までを一括して実行するのだ！
func (p *DocumentPublisher) Publish(ctx context.Context, doc Document, opts Options) (PublishResult, error) {
	result := PublishResult{}

	markdownPath, err := asset.ResolveOutputPath(opts.OutputDir, asset.DefaultDocumentName)
	if err != nil {
		return result, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
	}
	result.MarkdownPath = markdownPath

	content := p.buildMarkdown(doc)
	if err := p.writer.Write(ctx, markdownPath, strings.NewReader(content), "text/markdown; charset=utf-8"); err != nil {
		return result, fmt.Errorf("markdownファイルの書き込みに失敗しました: %w", err)
	}

	if p.htmlRunner != nil {
		slog.Info("Converting document to HTML", "feature", doc.FeatureName)
		htmlBuffer, err := p.htmlRunner.Run(ctx, doc.FeatureName, []byte(content))
		if err != nil {
			return result, fmt.Errorf("HTMLの変換に失敗しました: %w", err)
		}

		htmlPath := strings.TrimSuffix(markdownPath, filepath.Ext(markdownPath)) + ".html"
		if err := p.writer.Write(ctx, htmlPath, htmlBuffer, "text/html; charset=utf-8"); err != nil {
			return result, fmt.Errorf("HTMLファイルの書き込みに失敗しました: %w", err)
		}
		result.HTMLPath = htmlPath
	}

	return result, nil
}

// buildMarkdown は生成結果を1つの制作ドキュメントへ組み立てます。
func (p *DocumentPublisher) buildMarkdown(doc Document) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", doc.FeatureName))
	if !doc.GeneratedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("- generated: %s\n\n", doc.GeneratedAt.Format(time.RFC3339)))
	}

	sb.WriteString("## Prompt\n\n")
	sb.WriteString("```\n")
	sb.WriteString(strings.TrimSpace(doc.Prompt))
	sb.WriteString("\n```\n\n")

	sb.WriteString("## Result\n\n")
	sb.WriteString(strings.TrimSpace(doc.Output))
	sb.WriteString("\n")

	return sb.String()
}
