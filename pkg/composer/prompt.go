package composer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shouni/go-film-kit/pkg/domain"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// BuildScenePrompt はシーングラフから1つの自然文プロンプトを決定論的に導出します。
// 節の順序は固定です: 画角 → 環境/照明 → カメラ → キャラクター（挿入順）→ 台詞（挿入順）。
// 参照先キャラクターが存在しない台詞はエラーにせず黙って省きます。
// 最後に連続する空白を1つへ畳み込み、前後の空白を落とします。
func BuildScenePrompt(scene *domain.Scene) string {
	s := scene.Settings

	clauses := make([]string, 0, 3+len(scene.Characters)+len(scene.Dialogues))

	clauses = append(clauses, fmt.Sprintf("A cinematic scene in %s aspect ratio", s.AspectRatio))
	clauses = append(clauses, fmt.Sprintf("Setting: %s, with %s lighting", s.Environment, s.Lighting))
	clauses = append(clauses, fmt.Sprintf("Camera: %s angle, %s movement", s.CameraAngle, s.CameraMovement))

	for _, c := range scene.Characters {
		clauses = append(clauses, characterClause(c))
	}

	for _, d := range scene.Dialogues {
		ch, ok := scene.CharacterByID(d.CharacterID)
		if !ok {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s says, \"%s\"", ch.Name, d.Line))
	}

	prompt := strings.Join(clauses, ". ") + "."
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(prompt, " "))
}

// characterClause は1キャラクター分の描写文を組み立てます。
// 名前に年齢・性別・種族（小文字化）を続け、任意項目は接続句を付けて連結します。
func characterClause(c domain.Character) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s is a %s %s %s",
		c.Name,
		strings.ToLower(c.Age),
		strings.ToLower(c.Gender),
		strings.ToLower(c.EffectiveRace()),
	))
	if c.Outfit != "" {
		sb.WriteString(fmt.Sprintf(" wearing %s", c.Outfit))
	}
	if c.Hairstyle != "" {
		sb.WriteString(fmt.Sprintf(", with %s hairstyle", c.Hairstyle))
	}
	if c.Voice != "" {
		sb.WriteString(fmt.Sprintf(", speaking in a %s voice", c.Voice))
	}
	if c.Action != "" {
		sb.WriteString(fmt.Sprintf(", %s", c.Action))
	}
	return sb.String()
}
