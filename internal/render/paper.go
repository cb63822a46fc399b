package render

import (
	"html/template"

	"github.com/paperforge/paperforge/internal/quiz"
)

// Option is one labeled alternative in the view model.
type Option struct {
	Label   string
	HTML    template.HTML
	Correct bool
}

type QuestionView struct {
	Number  int
	Body    template.HTML
	Options []Option
}

// KeyRow is one line of the answer-key table.
type KeyRow struct {
	Number int
	Label  string
	Answer template.HTML
}

// Paper is the structural document handed to a theme. Bodies and answers are
// trusted HTML fragments from the platform and pass through unescaped.
type Paper struct {
	Title     string
	Mode      Mode
	Questions []QuestionView
	Key       []KeyRow
}

func (p Paper) IsAnswerKey() bool { return p.Mode == ModeAnswerKey }

var optionLabels = [...]string{"A", "B", "C", "D"}

// BuildPaper maps records to the view model for one mode. Only the first four
// alternatives are labeled; the first alternative whose flag is "1" wins. In
// questions-only mode correctness is stripped here so no theme can leak it.
func BuildPaper(questions []quiz.Question, meta quiz.TestMeta, mode Mode) Paper {
	p := Paper{Title: meta.Title, Mode: mode}

	for i, q := range questions {
		alts := q.Alternatives
		if len(alts) > len(optionLabels) {
			alts = alts[:len(optionLabels)]
		}
		correct := -1
		for j, a := range alts {
			if a.Correct() {
				correct = j
				break
			}
		}

		if mode == ModeAnswerKey {
			row := KeyRow{Number: i + 1, Answer: "No answer"}
			if correct >= 0 {
				row.Label = optionLabels[correct]
				row.Answer = template.HTML(FixProtocolRelative(alts[correct].Answer))
			}
			p.Key = append(p.Key, row)
			continue
		}

		qv := QuestionView{
			Number: i + 1,
			Body:   template.HTML(FixProtocolRelative(q.Body)),
		}
		for j, a := range alts {
			qv.Options = append(qv.Options, Option{
				Label:   optionLabels[j],
				HTML:    template.HTML(FixProtocolRelative(a.Answer)),
				Correct: mode == ModeWithAnswers && j == correct,
			})
		}
		p.Questions = append(p.Questions, qv)
	}
	return p
}
