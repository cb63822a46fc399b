package extract

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/paperforge/paperforge/internal/history"
	"github.com/paperforge/paperforge/internal/platform"
	"github.com/paperforge/paperforge/internal/quiz"
	"github.com/paperforge/paperforge/internal/render"
)

type fakeAPI struct {
	questionsRaw string
	questionsErr error
	info         platform.QuizInfo
	infoErr      error
	calls        int
}

func (f *fakeAPI) LocaleQuestions(ctx context.Context, testID string) ([]platform.QuestionGroup, error) {
	f.calls++
	if f.questionsErr != nil {
		return nil, f.questionsErr
	}
	return platform.DecodeQuestionGroups(strings.NewReader(f.questionsRaw))
}

func (f *fakeAPI) QuizInfo(ctx context.Context, testID string) (platform.QuizInfo, error) {
	if f.infoErr != nil {
		return platform.QuizInfo{}, f.infoErr
	}
	return f.info, nil
}

type fakeEvents struct {
	appended []history.Event
}

func (f *fakeEvents) Append(ctx context.Context, e history.Event) error {
	f.appended = append(f.appended, e)
	return nil
}

type fakeArtifacts struct {
	stored map[string]string
}

func (f *fakeArtifacts) Put(key string, r io.Reader) (string, error) {
	if f.stored == nil {
		f.stored = map[string]string{}
	}
	var buf bytes.Buffer
	io.Copy(&buf, r)
	f.stored[key] = buf.String()
	return key, nil
}

const twoQuestionFixture = `{
	"q1": {"843": {"body": "first", "alternatives": [
		{"answer": "a", "score_if_chosen": "1"},
		{"answer": "b", "score_if_chosen": "0"}
	]}},
	"q2": {"843": {"body": "second", "alternatives": [
		{"answer": "c", "score_if_chosen": "0"},
		{"answer": "d", "score_if_chosen": "1"}
	]}}
}`

func TestExtractProducesThreeDocuments(t *testing.T) {
	api := &fakeAPI{
		questionsRaw: twoQuestionFixture,
		info:         platform.QuizInfo{Title: "Unit Test Paper"},
	}
	events := &fakeEvents{}
	store := &fakeArtifacts{}
	svc := NewService(api, events, store, "843", "modern")

	res, err := svc.Extract(context.Background(), 42, "123")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(res.Documents) != 3 {
		t.Fatalf("got %d documents, want 3", len(res.Documents))
	}
	wantFiles := map[string]bool{
		"QP_with_Answers.html":     false,
		"Only_Answer_Key.html":     false,
		"Only_Question_Paper.html": false,
	}
	for _, d := range res.Documents {
		if _, ok := wantFiles[d.Filename]; !ok {
			t.Errorf("unexpected filename %q", d.Filename)
		}
		wantFiles[d.Filename] = true
		if !strings.Contains(d.HTML, "Unit Test Paper") {
			t.Errorf("%s: title missing", d.Filename)
		}
	}
	for name, seen := range wantFiles {
		if !seen {
			t.Errorf("document %q not produced", name)
		}
	}

	if len(res.Questions) != 2 || res.Meta.Title != "Unit Test Paper" {
		t.Errorf("result = %d questions, title %q", len(res.Questions), res.Meta.Title)
	}

	if len(events.appended) != 1 {
		t.Fatalf("got %d events, want 1", len(events.appended))
	}
	e := events.appended[0]
	if e.UserID != 42 || e.TestID != "123" || e.QuestionCount != 2 || e.Title != "Unit Test Paper" {
		t.Errorf("event = %+v", e)
	}

	if len(store.stored) != 3 {
		t.Fatalf("got %d artifacts, want 3", len(store.stored))
	}
	if _, ok := store.stored["papers/123/QP_with_Answers.html"]; !ok {
		t.Error("artifact keys must be namespaced under papers/<id>")
	}
}

func TestExtractRejectsBadIDBeforeFetch(t *testing.T) {
	api := &fakeAPI{questionsRaw: twoQuestionFixture}
	svc := NewService(api, nil, nil, "843", "modern")

	for _, id := range []string{"", "abc", "12x", "-1", "1 2"} {
		if _, err := svc.Extract(context.Background(), 1, id); !errors.Is(err, ErrBadTestID) {
			t.Errorf("Extract(%q) err = %v, want ErrBadTestID", id, err)
		}
	}
	if api.calls != 0 {
		t.Errorf("upstream called %d times for invalid ids", api.calls)
	}
}

func TestExtractNoQuestions(t *testing.T) {
	api := &fakeAPI{questionsRaw: `{}`}
	svc := NewService(api, nil, nil, "843", "modern")

	if _, err := svc.Extract(context.Background(), 1, "123"); !errors.Is(err, quiz.ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}

func TestExtractFetchFailure(t *testing.T) {
	boom := errors.New("upstream down")
	api := &fakeAPI{questionsErr: boom}
	svc := NewService(api, nil, nil, "843", "modern")

	if _, err := svc.Extract(context.Background(), 1, "123"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped upstream error", err)
	}
}

func TestExtractMetadataFailureUsesFallbackTitle(t *testing.T) {
	api := &fakeAPI{
		questionsRaw: twoQuestionFixture,
		infoErr:      errors.New("info endpoint broken"),
	}
	svc := NewService(api, nil, nil, "843", "modern")

	res, err := svc.Extract(context.Background(), 1, "123")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Meta.Title != "Test_123" {
		t.Errorf("title = %q, want Test_123", res.Meta.Title)
	}
	if !strings.Contains(res.Documents[0].HTML, "Test_123") {
		t.Error("fallback title must appear in rendered output")
	}
}

func TestPaperSingleMode(t *testing.T) {
	api := &fakeAPI{questionsRaw: twoQuestionFixture, info: platform.QuizInfo{Title: "T"}}
	svc := NewService(api, nil, nil, "843", "modern")

	doc, err := svc.Paper(context.Background(), "123", render.ModeQuestionsOnly, "")
	if err != nil {
		t.Fatalf("Paper: %v", err)
	}
	if strings.Contains(doc, "option correct") {
		t.Error("questions-only paper must not mark answers")
	}

	if _, err := svc.Paper(context.Background(), "nope", render.ModeQuestionsOnly, ""); !errors.Is(err, ErrBadTestID) {
		t.Errorf("err = %v, want ErrBadTestID", err)
	}
}

func TestInfo(t *testing.T) {
	api := &fakeAPI{info: platform.QuizInfo{Title: "Meta"}}
	svc := NewService(api, nil, nil, "843", "modern")

	info, err := svc.Info(context.Background(), "55")
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Title != "Meta" {
		t.Errorf("title = %q", info.Title)
	}
	if _, err := svc.Info(context.Background(), "x"); !errors.Is(err, ErrBadTestID) {
		t.Errorf("err = %v, want ErrBadTestID", err)
	}
}

func TestValidTestID(t *testing.T) {
	valid := []string{"1", "0042", "987654321"}
	invalid := []string{"", " ", "1.5", "1e3", "١٢٣", "12 "}
	for _, s := range valid {
		if !ValidTestID(s) {
			t.Errorf("ValidTestID(%q) = false", s)
		}
	}
	for _, s := range invalid {
		if ValidTestID(s) {
			t.Errorf("ValidTestID(%q) = true", s)
		}
	}
}
