package extract

import (
	"context"
	"errors"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/paperforge/paperforge/internal/history"
	"github.com/paperforge/paperforge/internal/platform"
	"github.com/paperforge/paperforge/internal/quiz"
	"github.com/paperforge/paperforge/internal/render"
)

// ErrBadTestID rejects identifiers before any network call.
var ErrBadTestID = errors.New("test id must be numeric")

var numericID = regexp.MustCompile(`^[0-9]+$`)

func ValidTestID(s string) bool { return numericID.MatchString(s) }

// PlatformAPI is the upstream surface the service needs.
type PlatformAPI interface {
	LocaleQuestions(ctx context.Context, testID string) ([]platform.QuestionGroup, error)
	QuizInfo(ctx context.Context, testID string) (platform.QuizInfo, error)
}

// Events records completed extractions.
type Events interface {
	Append(ctx context.Context, e history.Event) error
}

// Artifacts persists rendered documents.
type Artifacts interface {
	Put(key string, r io.Reader) (string, error)
}

type Document struct {
	Filename string
	HTML     string
}

type Result struct {
	TestID    string
	Meta      quiz.TestMeta
	Questions []quiz.Question
	Documents []Document
}

// Service runs the full pipeline: fetch both endpoints, normalize, render the
// three documents, persist artifacts and an event. Each call is isolated; a
// failure never corrupts stored state.
type Service struct {
	api       PlatformAPI
	events    Events
	artifacts Artifacts
	locale    string
	theme     string
	log       *logrus.Entry
}

func NewService(api PlatformAPI, events Events, artifacts Artifacts, locale, theme string) *Service {
	if locale == "" {
		locale = quiz.DefaultLocaleID
	}
	if theme == "" {
		theme = "modern"
	}
	return &Service{
		api:       api,
		events:    events,
		artifacts: artifacts,
		locale:    locale,
		theme:     theme,
		log:       logrus.WithField("component", "extract"),
	}
}

// Extract generates all three documents for a test id on behalf of userID.
func (s *Service) Extract(ctx context.Context, userID int64, testID string) (*Result, error) {
	if !ValidTestID(testID) {
		return nil, ErrBadTestID
	}
	log := s.log.WithFields(logrus.Fields{"user_id": userID, "test_id": testID})

	groups, err := s.api.LocaleQuestions(ctx, testID)
	if err != nil {
		return nil, err
	}
	questions, err := quiz.Normalize(groups, s.locale)
	if err != nil {
		return nil, err
	}
	meta := s.fetchMeta(ctx, testID)

	docs := make([]Document, 0, 3)
	for _, m := range render.AllModes() {
		html, err := render.Assemble(questions, meta, m, s.theme)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{Filename: m.Filename(), HTML: html})

		if s.artifacts != nil {
			key := path.Join("papers", testID, m.Filename())
			if _, err := s.artifacts.Put(key, strings.NewReader(html)); err != nil {
				log.WithError(err).Warn("artifact write failed")
			}
		}
	}

	if s.events != nil {
		e := history.Event{UserID: userID, TestID: testID, Title: meta.Title, QuestionCount: len(questions)}
		if err := s.events.Append(ctx, e); err != nil {
			log.WithError(err).Warn("event append failed")
		}
	}

	log.WithField("questions", len(questions)).Info("extraction complete")
	return &Result{TestID: testID, Meta: meta, Questions: questions, Documents: docs}, nil
}

// Paper renders a single document variant on demand.
func (s *Service) Paper(ctx context.Context, testID string, mode render.Mode, theme string) (string, error) {
	if !ValidTestID(testID) {
		return "", ErrBadTestID
	}
	if theme == "" {
		theme = s.theme
	}
	groups, err := s.api.LocaleQuestions(ctx, testID)
	if err != nil {
		return "", err
	}
	questions, err := quiz.Normalize(groups, s.locale)
	if err != nil {
		return "", err
	}
	return render.Assemble(questions, s.fetchMeta(ctx, testID), mode, theme)
}

// Info fetches metadata only, for the /info command.
func (s *Service) Info(ctx context.Context, testID string) (platform.QuizInfo, error) {
	if !ValidTestID(testID) {
		return platform.QuizInfo{}, ErrBadTestID
	}
	return s.api.QuizInfo(ctx, testID)
}

// fetchMeta tolerates metadata failures: the paper still renders under a
// fallback title, matching the questions-first contract.
func (s *Service) fetchMeta(ctx context.Context, testID string) quiz.TestMeta {
	meta := quiz.TestMeta{Title: "Test_" + testID}
	info, err := s.api.QuizInfo(ctx, testID)
	if err != nil {
		s.log.WithError(err).WithField("test_id", testID).Warn("quiz info unavailable")
		return meta
	}
	if info.Title != "" {
		meta.Title = info.Title
	}
	meta.Syllabus = info.Description
	return meta
}
