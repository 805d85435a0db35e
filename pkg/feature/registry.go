package feature

import (
	"errors"
	"fmt"
	"text/template"
)

// ErrNotFound は未知のフィーチャーIDを解決しようとしたときに返されます。
// 列挙値経由の呼び出しでは発生しないはずの防御的チェックです。
var ErrNotFound = errors.New("feature not found")

// Registry はフィーチャーの静的カタログを保持し、IDによる解決とカテゴリ順の
// 列挙を提供します。プロセス起動時に一度構築され、以後不変です。
type Registry struct {
	categories []Category
	byID       map[ID]*Descriptor
}

// NewRegistry はカタログを読み込み、テンプレート展開型フィーチャーのテンプレートを
// 事前パースした Registry を構築します。
func NewRegistry() (*Registry, error) {
	categories := make([]Category, len(catalog))
	copy(categories, catalog)

	byID := make(map[ID]*Descriptor)
	for ci := range categories {
		feats := make([]Descriptor, len(catalog[ci].Features))
		copy(feats, catalog[ci].Features)
		categories[ci].Features = feats

		for fi := range feats {
			d := &feats[fi]
			if d.Kind == KindTemplated {
				src, ok := templateSources[d.ID]
				if !ok || src == "" {
					return nil, fmt.Errorf("フィーチャー '%s' のテンプレート (go:embed) の読み込みに失敗しました: 内容が空です", d.ID)
				}
				tmpl, err := template.New(string(d.ID)).Parse(src)
				if err != nil {
					return nil, fmt.Errorf("テンプレート '%s' の解析に失敗: %w", d.ID, err)
				}
				d.tmpl = tmpl
			}
			byID[d.ID] = d
		}
	}

	return &Registry{
		categories: categories,
		byID:       byID,
	}, nil
}

// Categories はカテゴリの一覧を表示順で返します。返り値は防御的コピーです。
func (r *Registry) Categories() []Category {
	out := make([]Category, len(r.categories))
	for i, cat := range r.categories {
		feats := make([]Descriptor, len(cat.Features))
		copy(feats, cat.Features)
		out[i] = Category{Name: cat.Name, Features: feats}
	}
	return out
}

// Resolve はIDからフィーチャー定義を解決します。未知のIDには ErrNotFound を返します。
func (r *Registry) Resolve(id ID) (*Descriptor, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("フィーチャー '%s' が見つかりません: %w", id, ErrNotFound)
	}
	return d, nil
}
