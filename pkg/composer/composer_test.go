package composer

import (
	"strings"
	"testing"

	"github.com/shouni/go-film-kit/pkg/domain"
)

func TestComposer_AddAndRemoveCharacter(t *testing.T) {
	c := New()

	idA := c.AddCharacter()
	idB := c.AddCharacter()
	c.UpdateCharacter(idA, CharName, "Alice")
	c.UpdateCharacter(idB, CharName, "Bob")

	d1 := c.AddDialogue()
	c.UpdateDialogue(d1, DialogueLine, "hi")
	d2 := c.AddDialogue()
	c.UpdateDialogue(d2, DialogueSpeaker, idB)
	c.UpdateDialogue(d2, DialogueLine, "yo")

	t.Run("キャラクター削除が台詞をカスケード削除すること", func(t *testing.T) {
		c.RemoveCharacter(idA)

		scene := c.Scene()
		if len(scene.Characters) != 1 || scene.Characters[0].Name != "Bob" {
			t.Fatalf("キャラクターの削除結果が正しくないのだ: %+v", scene.Characters)
		}
		if len(scene.Dialogues) != 1 {
			t.Fatalf("カスケード後の台詞数が1であるべきなのだ: %+v", scene.Dialogues)
		}
		if scene.Dialogues[0].CharacterID != idB || scene.Dialogues[0].Line != "yo" {
			t.Errorf("無関係な台詞が消えているのだ: %+v", scene.Dialogues[0])
		}
	})

	t.Run("未知のIDの削除は何もしないこと", func(t *testing.T) {
		before := c.Scene()
		c.RemoveCharacter("no-such-id")
		after := c.Scene()
		if len(after.Characters) != len(before.Characters) || len(after.Dialogues) != len(before.Dialogues) {
			t.Error("未知IDの削除で状態が変わったのだ")
		}
	})
}

func TestComposer_AddDialoguePrecondition(t *testing.T) {
	c := New()

	if id := c.AddDialogue(); id != "" {
		t.Errorf("キャラクター不在時のAddDialogueはno-opであるべきなのだ: %s", id)
	}
	if len(c.Scene().Dialogues) != 0 {
		t.Error("台詞リストの長さが変わっているのだ")
	}

	charID := c.AddCharacter()
	d := c.AddDialogue()
	if d == "" {
		t.Fatal("キャラクター追加後のAddDialogueが失敗したのだ")
	}
	if got := c.Scene().Dialogues[0].CharacterID; got != charID {
		t.Errorf("新しい台詞は先頭キャラクターを指すべきなのだ。期待 %s, 実際 %s", charID, got)
	}
}

func TestComposer_UpdateUnknownIDIsNoop(t *testing.T) {
	c := New()
	id := c.AddCharacter()
	c.UpdateCharacter(id, CharName, "Mira")

	before := c.Prompt()
	c.UpdateCharacter("ghost", CharName, "Nobody")
	c.UpdateDialogue("ghost", DialogueLine, "nothing")
	c.RemoveDialogue("ghost")

	if c.Prompt() != before {
		t.Error("未知IDの操作でプロンプトが変化したのだ")
	}
}

func TestComposer_PromptRecomputedOnEveryMutation(t *testing.T) {
	c := New()

	base := c.Prompt()
	c.UpdateSetting(SettingEnvironment, "a foggy mountain pass")
	if c.Prompt() == base {
		t.Error("設定変更後にプロンプトが再計算されていないのだ")
	}
	if !strings.Contains(c.Prompt(), "a foggy mountain pass") {
		t.Errorf("変更した環境がプロンプトに現れないのだ: %s", c.Prompt())
	}
}

func TestBuildScenePrompt_ClauseOrder(t *testing.T) {
	scene := domain.Scene{
		Settings: domain.SceneSettings{
			Environment:    "an empty diner",
			Lighting:       "neon",
			CameraAngle:    "low",
			CameraMovement: "static",
			AspectRatio:    domain.AspectPortrait,
		},
		Characters: []domain.Character{
			{ID: "a", Name: "Alice", Race: domain.RaceHuman, Gender: "Female", Age: "30s"},
			{ID: "b", Name: "Bob", Race: domain.RaceAndroid, Gender: "Male", Age: "Ageless"},
		},
		Dialogues: []domain.Dialogue{
			{ID: "d1", CharacterID: "a", Line: "Where were you?"},
		},
	}

	prompt := BuildScenePrompt(&scene)

	t.Run("画角の節で始まること", func(t *testing.T) {
		if !strings.HasPrefix(prompt, "A cinematic scene in 9:16 aspect ratio") {
			t.Errorf("プロンプトの先頭が画角の節ではないのだ: %s", prompt)
		}
	})

	t.Run("キャラクターが挿入順に一度ずつ現れること", func(t *testing.T) {
		ai := strings.Index(prompt, "Alice")
		bi := strings.Index(prompt, "Bob")
		if ai < 0 || bi < 0 {
			t.Fatalf("キャラクター名が欠けているのだ: %s", prompt)
		}
		if strings.Count(prompt, "Bob") != 1 {
			t.Errorf("Bob が複数回現れているのだ: %s", prompt)
		}
		if ai > bi {
			t.Errorf("挿入順が保たれていないのだ: %s", prompt)
		}
	})

	t.Run("属性が小文字化されること", func(t *testing.T) {
		if !strings.Contains(prompt, "Bob is a ageless male android") {
			t.Errorf("Bobの描写が期待と違うのだ: %s", prompt)
		}
	})

	t.Run("台詞が話者名付きで現れること", func(t *testing.T) {
		if !strings.Contains(prompt, `Alice says, "Where were you?"`) {
			t.Errorf("台詞の節が期待と違うのだ: %s", prompt)
		}
	})
}

func TestBuildScenePrompt_OrphanedDialogueOmitted(t *testing.T) {
	scene := domain.Scene{
		Settings: domain.DefaultSceneSettings(),
		Characters: []domain.Character{
			{ID: "a", Name: "Alice", Race: domain.RaceHuman, Gender: "female", Age: "30s"},
		},
		Dialogues: []domain.Dialogue{
			{ID: "d1", CharacterID: "a", Line: "kept"},
			{ID: "d2", CharacterID: "ghost", Line: "dropped"},
		},
	}

	prompt := BuildScenePrompt(&scene)
	if !strings.Contains(prompt, "kept") {
		t.Errorf("生存キャラクターの台詞が欠けているのだ: %s", prompt)
	}
	if strings.Contains(prompt, "dropped") {
		t.Errorf("参照切れの台詞が出力されているのだ: %s", prompt)
	}
}

func TestBuildScenePrompt_WhitespaceCollapsed(t *testing.T) {
	scene := domain.Scene{
		Settings: domain.SceneSettings{
			Environment:    "  a   windy\tcliff  ",
			Lighting:       "overcast",
			CameraAngle:    "high",
			CameraMovement: "pan",
			AspectRatio:    domain.AspectLandscape,
		},
	}

	prompt := BuildScenePrompt(&scene)
	if strings.Contains(prompt, "  ") || strings.Contains(prompt, "\t") {
		t.Errorf("空白が畳み込まれていないのだ: %q", prompt)
	}
	if strings.HasPrefix(prompt, " ") || strings.HasSuffix(prompt, " ") {
		t.Errorf("前後の空白が残っているのだ: %q", prompt)
	}
}

func TestBuildScenePrompt_CustomRace(t *testing.T) {
	scene := domain.Scene{
		Settings: domain.DefaultSceneSettings(),
		Characters: []domain.Character{
			{ID: "a", Name: "Nyx", Race: domain.RaceOther, CustomRace: "Shadowkin", Gender: "female", Age: "ancient"},
		},
	}

	prompt := BuildScenePrompt(&scene)
	if !strings.Contains(prompt, "shadowkin") {
		t.Errorf("カスタム種族が反映されていないのだ: %s", prompt)
	}
	if strings.Contains(prompt, "other") {
		t.Errorf("Otherがそのまま出力されているのだ: %s", prompt)
	}
}
