package asset

import (
	"github.com/shouni/go-utils/urlpath"
)

const (
	// DefaultDocumentName は生成テキストのデフォルト Markdown ファイル名です。
	DefaultDocumentName = "production_notes.md"
	// DefaultVideoFileName は生成動画のデフォルトファイル名です。
	DefaultVideoFileName = "generated_video.mp4"
	// DefaultSceneFileName はシーン定義ファイルのデフォルト名です。
	DefaultSceneFileName = "scene.json"
)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// GCS/ローカルを考慮した最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolveOutputPath(baseDir, fileName)
}

// ResolveBaseURL は、入力パス（URLまたはローカルパス）から
// 親ディレクトリのパスを解決し、末尾がセパレータで終わるように正規化します。
func ResolveBaseURL(rawPath string) string {
	return urlpath.ResolveBaseURL(rawPath)
}

// GenerateIndexedPath は、指定されたベースパスの拡張子の前に連番を挿入し、
// 新しいパス文字列を生成します。index は1以上の整数である必要があります。
// 例: "path/to/video.mp4", 1 -> "path/to/video_1.mp4"
func GenerateIndexedPath(basePath string, index int) (string, error) {
	return urlpath.GenerateIndexedPath(basePath, index)
}
