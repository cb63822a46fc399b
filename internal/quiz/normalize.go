package quiz

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/paperforge/paperforge/internal/platform"
)

// ErrNoQuestions means the payload was well-formed but no group carried a
// usable language variant.
var ErrNoQuestions = errors.New("no usable question data")

// DefaultLocaleID is the platform's internal code for English.
const DefaultLocaleID = "843"

// Normalize flattens the locale-keyed question groups into one record per
// group. The preferred locale wins; otherwise the first valid variant in
// server order is taken. Groups with no valid variant are skipped silently.
func Normalize(groups []platform.QuestionGroup, preferredLocale string) ([]Question, error) {
	if preferredLocale == "" {
		preferredLocale = DefaultLocaleID
	}

	out := make([]Question, 0, len(groups))
	for _, g := range groups {
		v, ok := pickVariant(g, preferredLocale)
		if !ok {
			logrus.WithField("group", g.Key).Debug("normalize: no valid variant, skipping")
			continue
		}

		q := Question{
			Body:         *v.Body,
			Alternatives: make([]Alternative, 0, len(*v.Alternatives)),
			Solution:     v.Solution,
			Language:     "Unknown",
		}
		if len(v.LanguageNames) > 0 {
			q.Language = v.LanguageNames[0]
		}
		for _, a := range *v.Alternatives {
			q.Alternatives = append(q.Alternatives, Alternative{
				Answer:        a.Answer,
				ScoreIfChosen: a.ScoreIfChosen.String(),
			})
		}
		out = append(out, q)
	}

	if len(out) == 0 {
		return nil, ErrNoQuestions
	}
	return out, nil
}

func pickVariant(g platform.QuestionGroup, locale string) (platform.LanguageVariant, bool) {
	for _, v := range g.Variants {
		if v.Locale == locale && v.Valid() {
			return v.LanguageVariant, true
		}
	}
	for _, v := range g.Variants {
		if v.Valid() {
			return v.LanguageVariant, true
		}
	}
	return platform.LanguageVariant{}, false
}
