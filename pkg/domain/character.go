package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Race はキャラクターの種族を表す列挙値です。
// RaceOther を選択した場合は Character.CustomRace が優先されます。
type Race string

const (
	RaceHuman   Race = "Human"
	RaceElf     Race = "Elf"
	RaceOrc     Race = "Orc"
	RaceAndroid Race = "Android"
	RaceAlien   Race = "Alien"
	RaceOther   Race = "Other"
)

// Races は選択可能な種族の一覧（表示順）です。
var Races = []Race{RaceHuman, RaceElf, RaceOrc, RaceAndroid, RaceAlien, RaceOther}

// UnknownSpeakerName は、参照先キャラクターが見つからない台詞を表示する際の話者名です。
const UnknownSpeakerName = "Unknown"

// Character はシーンに登場する人物の定義を保持します。
// フィールドはすべて自由記述で、バリデーションは行いません（プロンプト素材として
// そのまま自然文へ流し込むため）。
type Character struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Race       Race   `json:"race"`
	CustomRace string `json:"custom_race,omitempty"` // Race が Other のときの自由記述
	Gender     string `json:"gender"`
	Age        string `json:"age"`
	Outfit     string `json:"outfit,omitempty"`
	Hairstyle  string `json:"hairstyle,omitempty"`
	Voice      string `json:"voice,omitempty"`
	Action     string `json:"action,omitempty"`
}

// NewCharacter は一意なIDと編集の出発点となるデフォルト値を持つキャラクターを生成します。
func NewCharacter() Character {
	return Character{
		ID:     uuid.NewString(),
		Name:   "New Character",
		Race:   RaceHuman,
		Gender: "female",
		Age:    "20s",
	}
}

// EffectiveRace は、Other が選択されている場合に CustomRace を適用した種族名を返します。
func (c Character) EffectiveRace() string {
	if c.Race == RaceOther && strings.TrimSpace(c.CustomRace) != "" {
		return c.CustomRace
	}
	return string(c.Race)
}

// String はキャラクターの情報を文字列で返すのだ。
func (c Character) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.ID)
}
