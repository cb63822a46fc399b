package platform

import (
	"strings"
	"testing"
)

func TestDecodePreservesGroupOrder(t *testing.T) {
	raw := `{
		"q9": {"843": {"body": "b9", "alternatives": []}},
		"q1": {"843": {"body": "b1", "alternatives": []}},
		"q5": {"843": {"body": "b5", "alternatives": []}}
	}`
	groups, err := DecodeQuestionGroups(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"q9", "q1", "q5"}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}
	for i, w := range want {
		if groups[i].Key != w {
			t.Errorf("group[%d] = %q, want %q", i, groups[i].Key, w)
		}
	}
}

func TestDecodePreservesVariantOrder(t *testing.T) {
	raw := `{"q1": {
		"900": {"body": "hindi", "alternatives": []},
		"843": {"body": "english", "alternatives": []}
	}}`
	groups, err := DecodeQuestionGroups(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	vs := groups[0].Variants
	if len(vs) != 2 {
		t.Fatalf("got %d variants, want 2", len(vs))
	}
	if vs[0].Locale != "900" || vs[1].Locale != "843" {
		t.Errorf("variant order = %q, %q; want 900, 843", vs[0].Locale, vs[1].Locale)
	}
}

func TestDecodeRejectsNonObject(t *testing.T) {
	for _, raw := range []string{`[]`, `"nope"`, `42`} {
		if _, err := DecodeQuestionGroups(strings.NewReader(raw)); err == nil {
			t.Errorf("decode(%s): expected error", raw)
		}
	}
}

func TestDecodeInvalidVariantKeepsSlot(t *testing.T) {
	// alternatives is not an array: the variant stays in place but is invalid,
	// so fallback scanning still sees server order.
	raw := `{"q1": {
		"843": {"body": "b", "alternatives": "bogus"},
		"900": {"body": "b", "alternatives": []}
	}}`
	groups, err := DecodeQuestionGroups(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	vs := groups[0].Variants
	if len(vs) != 2 {
		t.Fatalf("got %d variants, want 2", len(vs))
	}
	if vs[0].Valid() {
		t.Error("variant with non-array alternatives should be invalid")
	}
	if !vs[1].Valid() {
		t.Error("variant with empty alternatives array should be valid")
	}
}

func TestScalarAcceptsStringAndNumber(t *testing.T) {
	raw := `{"q1": {"843": {"body": "b", "alternatives": [
		{"answer": "x", "score_if_chosen": "1"},
		{"answer": "y", "score_if_chosen": 1},
		{"answer": "z", "score_if_chosen": 0}
	]}}}`
	groups, err := DecodeQuestionGroups(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	alts := *groups[0].Variants[0].Alternatives
	for i, want := range []string{"1", "1", "0"} {
		if got := alts[i].ScoreIfChosen.String(); got != want {
			t.Errorf("alt[%d] score = %q, want %q", i, got, want)
		}
	}
}
