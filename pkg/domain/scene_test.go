package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCharacter_JSON(t *testing.T) {
	t.Run("Character構造体が正しくJSON変換できるのだ", func(t *testing.T) {
		char := Character{
			ID:         "char-001",
			Name:       "ミラ",
			Race:       RaceOther,
			CustomRace: "Cyborg",
			Gender:     "female",
			Age:        "20s",
			Outfit:     "a worn leather jacket",
			Hairstyle:  "silver bob",
			Voice:      "soft, slightly raspy",
			Action:     "staring at the rain",
		}

		data, err := json.Marshal(char)
		if err != nil {
			t.Fatalf("Marshal失敗なのだ: %v", err)
		}

		var decoded Character
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal失敗なのだ: %v", err)
		}

		if !reflect.DeepEqual(char, decoded) {
			t.Errorf("変換前後でデータが一致しないのだ。期待: %+v, 実際: %+v", char, decoded)
		}
	})
}

func TestCharacter_EffectiveRace(t *testing.T) {
	t.Run("Otherの場合はCustomRaceが優先されること", func(t *testing.T) {
		c := Character{Race: RaceOther, CustomRace: "Dragonkin"}
		if got := c.EffectiveRace(); got != "Dragonkin" {
			t.Errorf("期待値 'Dragonkin', 実際の値 '%s'", got)
		}
	})

	t.Run("OtherでもCustomRaceが空白なら列挙値を返すこと", func(t *testing.T) {
		c := Character{Race: RaceOther, CustomRace: "   "}
		if got := c.EffectiveRace(); got != "Other" {
			t.Errorf("期待値 'Other', 実際の値 '%s'", got)
		}
	})

	t.Run("通常の種族はそのまま返すこと", func(t *testing.T) {
		c := Character{Race: RaceElf, CustomRace: "ignored"}
		if got := c.EffectiveRace(); got != "Elf" {
			t.Errorf("期待値 'Elf', 実際の値 '%s'", got)
		}
	})
}

func TestScene_SpeakerName(t *testing.T) {
	scene := Scene{
		Characters: []Character{
			{ID: "a", Name: "Alice"},
			{ID: "b", Name: "Bob"},
		},
	}

	t.Run("生存するキャラクターの名前を解決できること", func(t *testing.T) {
		name := scene.SpeakerName(Dialogue{CharacterID: "b"})
		if name != "Bob" {
			t.Errorf("期待値 'Bob', 実際の値 '%s'", name)
		}
	})

	t.Run("参照切れの台詞はUnknownとして扱うこと", func(t *testing.T) {
		name := scene.SpeakerName(Dialogue{CharacterID: "ghost"})
		if name != UnknownSpeakerName {
			t.Errorf("期待値 '%s', 実際の値 '%s'", UnknownSpeakerName, name)
		}
	})
}

func TestScene_OrphanedDialogues(t *testing.T) {
	scene := Scene{
		Characters: []Character{{ID: "a", Name: "Alice"}},
		Dialogues: []Dialogue{
			{ID: "d1", CharacterID: "a", Line: "hi"},
			{ID: "d2", CharacterID: "gone", Line: "yo"},
		},
	}

	orphans := scene.OrphanedDialogues()
	if len(orphans) != 1 || orphans[0] != "d2" {
		t.Errorf("参照切れ台詞の検出が正しくないのだ: %v", orphans)
	}
}

func TestScene_Clone(t *testing.T) {
	original := Scene{
		Settings:   DefaultSceneSettings(),
		Characters: []Character{{ID: "a", Name: "Alice"}},
		Dialogues:  []Dialogue{{ID: "d1", CharacterID: "a", Line: "hi"}},
	}

	copied := original.Clone()
	copied.Characters[0].Name = "Mallory"
	copied.Dialogues[0].Line = "bye"

	if original.Characters[0].Name != "Alice" {
		t.Error("コピー側の変更が元のCharactersへ波及しているのだ")
	}
	if original.Dialogues[0].Line != "hi" {
		t.Error("コピー側の変更が元のDialoguesへ波及しているのだ")
	}
}
