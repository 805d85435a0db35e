package domain

// CharacterByID は挿入順のスライスからIDが一致するキャラクターを探します。
func (s *Scene) CharacterByID(id string) (Character, bool) {
	for _, c := range s.Characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

// SpeakerName は台詞の話者名を解決します。参照先が存在しない場合は
// UnknownSpeakerName を返します（表示用のフォールバック）。
func (s *Scene) SpeakerName(d Dialogue) string {
	if c, ok := s.CharacterByID(d.CharacterID); ok {
		return c.Name
	}
	return UnknownSpeakerName
}

// OrphanedDialogues は、参照先キャラクターが存在しない台詞のID一覧を返します。
// カスケード削除が守られている限り空になります。
func (s *Scene) OrphanedDialogues() []string {
	var orphans []string
	for _, d := range s.Dialogues {
		if _, ok := s.CharacterByID(d.CharacterID); !ok {
			orphans = append(orphans, d.ID)
		}
	}
	return orphans
}

// Clone はシーンの防御的コピーを返します。内部スライスも新しく割り当てるため、
// 呼び出し元による変更が元のシーンへ波及しません。
func (s *Scene) Clone() Scene {
	copied := Scene{Settings: s.Settings}
	if s.Characters != nil {
		copied.Characters = make([]Character, len(s.Characters))
		copy(copied.Characters, s.Characters)
	}
	if s.Dialogues != nil {
		copied.Dialogues = make([]Dialogue, len(s.Dialogues))
		copy(copied.Dialogues, s.Dialogues)
	}
	return copied
}
