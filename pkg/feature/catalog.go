package feature

import (
	_ "embed"
)

var (
	//go:embed templates/logline.md
	loglineTemplate string
	//go:embed templates/script.md
	scriptTemplate string
	//go:embed templates/synopsis.md
	synopsisTemplate string
	//go:embed templates/shotlist.md
	shotListTemplate string
	//go:embed templates/casting.md
	castingTemplate string
	//go:embed templates/location.md
	locationTemplate string
)

// templateSources はテンプレート展開型フィーチャーのIDと原文を紐づけるマップなのだ。
var templateSources = map[ID]string{
	IDLogline:  loglineTemplate,
	IDScript:   scriptTemplate,
	IDSynopsis: synopsisTemplate,
	IDShotList: shotListTemplate,
	IDCasting:  castingTemplate,
	IDLocation: locationTemplate,
}

// catalog はフィーチャーの静的カタログです。カテゴリとフィーチャーの順序が表示順に
// なります。プロセス起動時に Registry へ読み込まれ、以後変更されません。
var catalog = []Category{
	{
		Name: "Development",
		Features: []Descriptor{
			{
				ID:          IDLogline,
				Name:        "Logline Pitch",
				Description: "アイデアから売り込み用のログラインを3案生成する",
				Kind:        KindTemplated,
				Fields: []InputFieldSpec{
					{ID: "idea", Label: "Idea / Premise", Kind: FieldLongText, Placeholder: "A retired stunt double is mistaken for a hitman...", Required: true},
					{ID: "genre", Label: "Genre", Kind: FieldShortText, Placeholder: "Action comedy", Fallback: "Drama"},
				},
			},
			{
				ID:          IDScript,
				Name:        "Script Generation",
				Description: "アイデアから短編映画の脚本を生成する",
				Kind:        KindTemplated,
				Fields: []InputFieldSpec{
					{ID: "idea", Label: "Idea", Kind: FieldLongText, Placeholder: "Two strangers share the last train home...", Required: true},
					{ID: "genre", Label: "Genre", Kind: FieldShortText, Placeholder: "Sci-fi", Fallback: "Drama"},
					{ID: "duration", Label: "Duration (seconds)", Kind: FieldNumber, Placeholder: "15", Fallback: "15"},
				},
			},
			{
				ID:          IDSynopsis,
				Name:        "Synopsis Writer",
				Description: "プロットからフェスティバル提出用のシノプシスを書く",
				Kind:        KindTemplated,
				Fields: []InputFieldSpec{
					{ID: "title", Label: "Working Title", Kind: FieldShortText, Placeholder: "Last Train", Fallback: "Untitled"},
					{ID: "plot", Label: "Plot Outline", Kind: FieldLongText, Placeholder: "Act by act, what happens...", Required: true},
					{ID: "tone", Label: "Tone", Kind: FieldShortText, Placeholder: "melancholic", Fallback: "grounded"},
				},
			},
		},
	},
	{
		Name: "Pre-Production",
		Features: []Descriptor{
			{
				ID:          IDShotList,
				Name:        "Shot List Builder",
				Description: "シーン描写から撮影用のショットリストを作る",
				Kind:        KindTemplated,
				Fields: []InputFieldSpec{
					{ID: "scene", Label: "Scene Description", Kind: FieldLongText, Placeholder: "INT. DINER - NIGHT. Two characters argue...", Required: true},
					{ID: "style", Label: "Visual Style", Kind: FieldShortText, Placeholder: "handheld, naturalistic", Fallback: "classic coverage"},
				},
			},
			{
				ID:          IDCasting,
				Name:        "Casting Ideas",
				Description: "キャラクター描写から配役のアイデアを出す",
				Kind:        KindTemplated,
				Fields: []InputFieldSpec{
					{ID: "character", Label: "Character Description", Kind: FieldLongText, Placeholder: "A weary detective in her 50s...", Required: true},
					{ID: "genre", Label: "Genre", Kind: FieldShortText, Placeholder: "Neo-noir", Fallback: "Drama"},
				},
			},
			{
				ID:          IDLocation,
				Name:        "Location Scouting",
				Description: "シーンに合うロケーション候補を提案する",
				Kind:        KindTemplated,
				Fields: []InputFieldSpec{
					{ID: "scene", Label: "Scene Description", Kind: FieldLongText, Placeholder: "An abandoned railway depot at dawn...", Required: true},
					{ID: "mood", Label: "Mood", Kind: FieldShortText, Placeholder: "oppressive", Fallback: "cinematic"},
					{ID: "era", Label: "Era", Kind: FieldShortText, Placeholder: "1970s", Fallback: "present-day"},
				},
			},
		},
	},
	{
		Name: "AI Studio",
		Features: []Descriptor{
			{
				ID:          IDVeoPrompt,
				Name:        "VEO Prompt Builder",
				Description: "キャラクター・台詞・シーン設定から動画生成プロンプトを組み立てる",
				Kind:        KindSceneComposer,
			},
			{
				ID:          IDVeoVideo,
				Name:        "VEO Video Generation",
				Description: "プロンプト（と参照画像）から動画を生成する",
				Kind:        KindVideoOrchestrator,
			},
		},
	},
}
