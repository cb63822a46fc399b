package quiz

import (
	"errors"
	"strings"
	"testing"

	"github.com/paperforge/paperforge/internal/platform"
)

func groupsFrom(t *testing.T, raw string) []platform.QuestionGroup {
	t.Helper()
	groups, err := platform.DecodeQuestionGroups(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return groups
}

func TestNormalizePreferredLocale(t *testing.T) {
	groups := groupsFrom(t, `{"q1": {
		"843": {"body": "2+2=?", "alternatives": [
			{"answer": "3", "score_if_chosen": "0"},
			{"answer": "4", "score_if_chosen": "1"}
		]},
		"900": {"body": "hindi body", "alternatives": []}
	}}`)

	qs, err := Normalize(groups, "843")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if qs[0].Body != "2+2=?" {
		t.Errorf("body = %q", qs[0].Body)
	}
	if len(qs[0].Alternatives) != 2 {
		t.Fatalf("got %d alternatives, want 2", len(qs[0].Alternatives))
	}
	if !qs[0].Alternatives[1].Correct() || qs[0].Alternatives[0].Correct() {
		t.Error("correctness flags wrong")
	}
}

func TestNormalizeFallsBackToAnyValidVariant(t *testing.T) {
	groups := groupsFrom(t, `{"q1": {
		"900": {"body": "other language", "alternatives": [], "language_names": ["Hindi"]}
	}}`)

	qs, err := Normalize(groups, "843")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if qs[0].Body != "other language" {
		t.Errorf("body = %q", qs[0].Body)
	}
	if qs[0].Language != "Hindi" {
		t.Errorf("language = %q, want Hindi", qs[0].Language)
	}
}

func TestNormalizeLanguageDefaultsToUnknown(t *testing.T) {
	groups := groupsFrom(t, `{"q1": {"843": {"body": "b", "alternatives": []}}}`)
	qs, err := Normalize(groups, "843")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if qs[0].Language != "Unknown" {
		t.Errorf("language = %q, want Unknown", qs[0].Language)
	}
}

func TestNormalizeDropsGroupWithoutValidVariant(t *testing.T) {
	// q2's only variant lacks a body: the whole group is skipped.
	groups := groupsFrom(t, `{
		"q1": {"843": {"body": "b1", "alternatives": []}},
		"q2": {"843": {"alternatives": []}},
		"q3": {"843": {"body": "b3", "alternatives": []}}
	}`)

	qs, err := Normalize(groups, "843")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Body != "b1" || qs[1].Body != "b3" {
		t.Errorf("bodies = %q, %q", qs[0].Body, qs[1].Body)
	}
}

func TestNormalizeEmptyAlternativesIsValid(t *testing.T) {
	groups := groupsFrom(t, `{"q1": {"843": {"body": "b", "alternatives": []}}}`)
	qs, err := Normalize(groups, "843")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if qs[0].Alternatives == nil {
		t.Fatal("alternatives must never be nil")
	}
	if len(qs[0].Alternatives) != 0 {
		t.Errorf("got %d alternatives, want 0", len(qs[0].Alternatives))
	}
}

func TestNormalizeNoUsableData(t *testing.T) {
	groups := groupsFrom(t, `{"q1": {"843": {"solution": "only a solution"}}}`)
	if _, err := Normalize(groups, "843"); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}

	if _, err := Normalize(nil, "843"); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions for empty input", err)
	}
}
