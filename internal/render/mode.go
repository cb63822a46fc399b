package render

import "fmt"

// Mode selects which of the three document variants to emit.
type Mode string

const (
	ModeWithAnswers   Mode = "with-answers"
	ModeQuestionsOnly Mode = "questions"
	ModeAnswerKey     Mode = "answer-key"
)

// AllModes lists the modes in the order the bot sends them.
func AllModes() []Mode {
	return []Mode{ModeWithAnswers, ModeAnswerKey, ModeQuestionsOnly}
}

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeWithAnswers, ModeQuestionsOnly, ModeAnswerKey:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Filename is the attachment name used when sending the document.
func (m Mode) Filename() string {
	switch m {
	case ModeWithAnswers:
		return "QP_with_Answers.html"
	case ModeQuestionsOnly:
		return "Only_Question_Paper.html"
	case ModeAnswerKey:
		return "Only_Answer_Key.html"
	}
	return "paper.html"
}
