package feature

import (
	"fmt"
	"strings"
	"text/template"
)

// ID は選択可能なフィーチャーの閉じた列挙値です。
type ID string

const (
	IDLogline   ID = "logline"
	IDScript    ID = "script"
	IDSynopsis  ID = "synopsis"
	IDShotList  ID = "shot-list"
	IDCasting   ID = "casting"
	IDLocation  ID = "location"
	IDVeoPrompt ID = "veo-prompt"
	IDVeoVideo  ID = "veo-video"
)

// Kind はフィーチャーの処理経路を示すタグです。
// 汎用テンプレート型か、専用フロー（シーンコンポーザー / 動画オーケストレーター）かを
// 解決時に一度だけ判定し、呼び出し側での場当たり的なID比較を排除します。
type Kind int

const (
	// KindTemplated は入力フォーム→テンプレート展開→テキスト生成の汎用経路です。
	KindTemplated Kind = iota
	// KindSceneComposer はシーンコンポーザーへルーティングされる専用経路です。
	KindSceneComposer
	// KindVideoOrchestrator は動画生成ジョブへルーティングされる専用経路です。
	KindVideoOrchestrator
)

// FieldKind は入力フィールドのUI上の種別です。
type FieldKind string

const (
	FieldShortText FieldKind = "short-text"
	FieldLongText  FieldKind = "long-text"
	FieldNumber    FieldKind = "number"
)

// InputFieldSpec はフィーチャーが要求する入力項目1つの定義です。
// Fallback は値が未入力・空白のときにテンプレートへ代入される既定リテラルです。
type InputFieldSpec struct {
	ID          string
	Label       string
	Kind        FieldKind
	Placeholder string
	Required    bool
	Fallback    string
}

// Descriptor は1つのフィーチャーの定義（表示メタデータ・入力スキーマ・プロンプト展開）を
// 保持します。プロセス起動時に構築され、以後は不変です。
type Descriptor struct {
	ID          ID
	Name        string
	Description string
	Kind        Kind
	Fields      []InputFieldSpec

	tmpl *template.Template
}

// Category はプレゼンテーション向けのフィーチャー分類です。順序は表示順です。
type Category struct {
	Name     string
	Features []Descriptor
}

// Compose は収集済みの入力値からプロンプト文字列を展開します。
// 副作用のない決定論的な文字列テンプレート展開で、未入力・空白のフィールドには
// フィールド定義の Fallback が代入されます。入力テキストはエスケープも検証もせず
// そのまま自然文として流し込みます（受け手のAIサービスが純粋な自然言語として
// 扱うための仕様です）。
func (d *Descriptor) Compose(inputs map[string]string) (string, error) {
	if d.tmpl == nil {
		return "", fmt.Errorf("フィーチャー '%s' はテンプレート展開型ではありません", d.ID)
	}

	data := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		v := inputs[f.ID]
		if strings.TrimSpace(v) == "" {
			v = f.Fallback
		}
		data[f.ID] = v
	}

	var sb strings.Builder
	if err := d.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("プロンプトテンプレートの実行に失敗しました: %w", err)
	}

	return sb.String(), nil
}
