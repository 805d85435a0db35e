package pipeline

import (
	"testing"
)

func TestParseInputs(t *testing.T) {
	inputs, err := parseInputs([]string{"idea=脱出劇", "genre=Sci-fi", "note=a=b"})
	if err != nil {
		t.Fatalf("parseInputs がエラーを返したのだ: %v", err)
	}
	if inputs["idea"] != "脱出劇" || inputs["genre"] != "Sci-fi" {
		t.Errorf("入力が正しく解析されていないのだ: %+v", inputs)
	}
	// 値側の = は値の一部として扱う
	if inputs["note"] != "a=b" {
		t.Errorf("note = %q, want %q", inputs["note"], "a=b")
	}
}

func TestParseInputsRejectsMalformedPair(t *testing.T) {
	for _, pair := range []string{"idea", "=value", ""} {
		if _, err := parseInputs([]string{pair}); err == nil {
			t.Errorf("不正な形式 %q はエラーになるはずなのだ", pair)
		}
	}
}
