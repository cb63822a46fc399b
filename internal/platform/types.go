package platform

import (
	"encoding/json"
	"strings"
)

// Scalar is a JSON value the platform serves inconsistently as either a
// string or a bare number. It is kept in textual form; score flags and unix
// timestamps both arrive this way.
type Scalar string

func (s *Scalar) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = Scalar(str)
		return nil
	}
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*s = ""
		return nil
	}
	*s = Scalar(raw)
	return nil
}

func (s Scalar) String() string { return string(s) }

// Alternative is one answer option as served by the locale-questions endpoint.
type Alternative struct {
	Answer        string `json:"answer"`
	ScoreIfChosen Scalar `json:"score_if_chosen"`
}

// LanguageVariant is one language rendition of a question group. Optional
// fields are pointers so presence can be checked: a variant is usable only
// when it carries both a body and an alternatives array.
type LanguageVariant struct {
	Body          *string        `json:"body"`
	Alternatives  *[]Alternative `json:"alternatives"`
	Solution      string         `json:"solution"`
	LanguageNames []string       `json:"language_names"`
}

func (v LanguageVariant) Valid() bool {
	return v.Body != nil && v.Alternatives != nil
}

// Variant pairs a language variant with its locale key, in server order.
type Variant struct {
	Locale string
	LanguageVariant
}

// QuestionGroup is one top-level entry of the locale-questions object.
type QuestionGroup struct {
	Key      string
	Variants []Variant
}

// QuizInfo is the first element of the getquizfromid response.
type QuizInfo struct {
	Title       string `json:"title"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	QuizOpen    Scalar `json:"quiz_open"`
	QuizClose   Scalar `json:"quiz_close"`
}
