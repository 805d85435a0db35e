package domain

import "github.com/google/uuid"

// AspectRatio は生成する映像・シーンの画角です。
type AspectRatio string

const (
	AspectLandscape AspectRatio = "16:9"
	AspectPortrait  AspectRatio = "9:16"
	AspectSquare    AspectRatio = "1:1"
	AspectClassic   AspectRatio = "4:3"
	AspectTall      AspectRatio = "3:4"
)

// AspectRatios は選択可能な画角の一覧（表示順）です。
var AspectRatios = []AspectRatio{
	AspectLandscape, AspectPortrait, AspectSquare, AspectClassic, AspectTall,
}

// Dialogue はキャラクターの台詞1行を保持します。
// CharacterID は Scene.Characters 内の生存するキャラクターを参照する外部キーです。
type Dialogue struct {
	ID          string `json:"id"`
	CharacterID string `json:"character_id"`
	Line        string `json:"line"`
}

// NewDialogue は指定キャラクターを話者とする空の台詞を生成します。
func NewDialogue(characterID string) Dialogue {
	return Dialogue{
		ID:          uuid.NewString(),
		CharacterID: characterID,
	}
}

// SceneSettings はシーン全体にかかる環境・カメラ設定です。全項目自由記述です。
type SceneSettings struct {
	Environment    string      `json:"environment"`
	Lighting       string      `json:"lighting"`
	CameraAngle    string      `json:"camera_angle"`
	CameraMovement string      `json:"camera_movement"`
	AspectRatio    AspectRatio `json:"aspect_ratio"`
}

// DefaultSceneSettings は編集の出発点となる標準設定を返します。
func DefaultSceneSettings() SceneSettings {
	return SceneSettings{
		Environment:    "a neon-lit city street at night, rain on the asphalt",
		Lighting:       "cinematic",
		CameraAngle:    "eye-level",
		CameraMovement: "slow dolly-in",
		AspectRatio:    AspectLandscape,
	}
}

// Scene はコンポーザーが編集するシーングラフ全体のスナップショットです。
// Characters / Dialogues は挿入順を保持します。
type Scene struct {
	Settings   SceneSettings `json:"settings"`
	Characters []Character   `json:"characters"`
	Dialogues  []Dialogue    `json:"dialogues"`
}

// NewScene はデフォルト設定を持つ空のシーンを返します。
func NewScene() Scene {
	return Scene{Settings: DefaultSceneSettings()}
}
