// Package composer は、キャラクター・台詞・シーン設定からなる小さなシーングラフを
// 編集し、変更のたびに1つの自然文プロンプトを導出するステートフルなビルダーです。
// 状態はセッション内メモリのみで、永続化はしません。
package composer

import (
	"sync"

	"github.com/shouni/go-film-kit/pkg/domain"
)

// Composer はシーングラフの編集操作と導出済みプロンプトを管理します。
// すべての変更操作は同一のクリティカルセクション内でプロンプトを再計算するため、
// 変更とプロンプトが食い違った状態は外部から観測されません。
type Composer struct {
	mu     sync.Mutex
	scene  domain.Scene
	prompt string
}

// New はデフォルトのシーン設定を持つ空のコンポーザーを返します。
func New() *Composer {
	c := &Composer{scene: domain.NewScene()}
	c.prompt = BuildScenePrompt(&c.scene)
	return c
}

// Load は既存のシーンスナップショット（JSONから復元したもの等）を取り込み、
// プロンプトを再計算します。渡されたシーンは防御的にコピーされます。
func (c *Composer) Load(scene domain.Scene) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scene = scene.Clone()
	c.prompt = BuildScenePrompt(&c.scene)
}

// Scene は現在のシーングラフの防御的コピーを返します。
func (c *Composer) Scene() domain.Scene {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scene.Clone()
}

// Prompt は最後の変更時点で導出されたプロンプトを返します。
func (c *Composer) Prompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prompt
}

// AddCharacter はデフォルト値を持つキャラクターを末尾に追加し、そのIDを返します。
// 追加数に上限はありません。
func (c *Composer) AddCharacter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	char := domain.NewCharacter()
	c.scene.Characters = append(c.scene.Characters, char)
	c.prompt = BuildScenePrompt(&c.scene)
	return char.ID
}

// CharacterField はUpdateCharacterで編集可能なフィールドの識別子です。
type CharacterField string

const (
	CharName       CharacterField = "name"
	CharRace       CharacterField = "race"
	CharCustomRace CharacterField = "custom_race"
	CharGender     CharacterField = "gender"
	CharAge        CharacterField = "age"
	CharOutfit     CharacterField = "outfit"
	CharHairstyle  CharacterField = "hairstyle"
	CharVoice      CharacterField = "voice"
	CharAction     CharacterField = "action"
)

// UpdateCharacter は指定キャラクターの1フィールドを置き換えます。
// IDが未知の場合は何もしません。値の内容は検証しません（自由記述）。
func (c *Composer) UpdateCharacter(id string, field CharacterField, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.scene.Characters {
		if c.scene.Characters[i].ID != id {
			continue
		}
		applyCharacterField(&c.scene.Characters[i], field, value)
		c.prompt = BuildScenePrompt(&c.scene)
		return
	}
}

func applyCharacterField(ch *domain.Character, field CharacterField, value string) {
	switch field {
	case CharName:
		ch.Name = value
	case CharRace:
		ch.Race = domain.Race(value)
	case CharCustomRace:
		ch.CustomRace = value
	case CharGender:
		ch.Gender = value
	case CharAge:
		ch.Age = value
	case CharOutfit:
		ch.Outfit = value
	case CharHairstyle:
		ch.Hairstyle = value
	case CharVoice:
		ch.Voice = value
	case CharAction:
		ch.Action = value
	}
}

// RemoveCharacter はキャラクターを削除し、同じ状態遷移の中でそのキャラクターを
// 参照する台詞をすべて削除します（参照整合性のカスケード）。IDが未知なら何もしません。
func (c *Composer) RemoveCharacter(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.scene.Characters {
		if c.scene.Characters[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	c.scene.Characters = append(c.scene.Characters[:idx], c.scene.Characters[idx+1:]...)

	kept := c.scene.Dialogues[:0]
	for _, d := range c.scene.Dialogues {
		if d.CharacterID != id {
			kept = append(kept, d)
		}
	}
	c.scene.Dialogues = kept

	c.prompt = BuildScenePrompt(&c.scene)
}

// AddDialogue は台詞を末尾に追加し、そのIDを返します。話者は先頭のキャラクターに
// デフォルトで紐づきます。キャラクターが1人もいない場合は何も追加せず空文字を返します。
func (c *Composer) AddDialogue() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.scene.Characters) == 0 {
		return ""
	}
	d := domain.NewDialogue(c.scene.Characters[0].ID)
	c.scene.Dialogues = append(c.scene.Dialogues, d)
	c.prompt = BuildScenePrompt(&c.scene)
	return d.ID
}

// DialogueField はUpdateDialogueで編集可能なフィールドの識別子です。
type DialogueField string

const (
	DialogueSpeaker DialogueField = "character_id"
	DialogueLine    DialogueField = "line"
)

// UpdateDialogue は指定台詞の1フィールドを置き換えます。IDが未知なら何もしません。
func (c *Composer) UpdateDialogue(id string, field DialogueField, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.scene.Dialogues {
		if c.scene.Dialogues[i].ID != id {
			continue
		}
		switch field {
		case DialogueSpeaker:
			c.scene.Dialogues[i].CharacterID = value
		case DialogueLine:
			c.scene.Dialogues[i].Line = value
		}
		c.prompt = BuildScenePrompt(&c.scene)
		return
	}
}

// RemoveDialogue は台詞を削除します。IDが未知なら何もしません。
func (c *Composer) RemoveDialogue(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.scene.Dialogues {
		if c.scene.Dialogues[i].ID != id {
			continue
		}
		c.scene.Dialogues = append(c.scene.Dialogues[:i], c.scene.Dialogues[i+1:]...)
		c.prompt = BuildScenePrompt(&c.scene)
		return
	}
}

// SettingField はUpdateSettingで編集可能なシーン設定の識別子です。
type SettingField string

const (
	SettingEnvironment    SettingField = "environment"
	SettingLighting       SettingField = "lighting"
	SettingCameraAngle    SettingField = "camera_angle"
	SettingCameraMovement SettingField = "camera_movement"
	SettingAspectRatio    SettingField = "aspect_ratio"
)

// UpdateSetting はシーン設定の1フィールドを置き換えます。
func (c *Composer) UpdateSetting(field SettingField, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch field {
	case SettingEnvironment:
		c.scene.Settings.Environment = value
	case SettingLighting:
		c.scene.Settings.Lighting = value
	case SettingCameraAngle:
		c.scene.Settings.CameraAngle = value
	case SettingCameraMovement:
		c.scene.Settings.CameraMovement = value
	case SettingAspectRatio:
		c.scene.Settings.AspectRatio = domain.AspectRatio(value)
	}
	c.prompt = BuildScenePrompt(&c.scene)
}
