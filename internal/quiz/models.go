package quiz

// Alternative is one answer option of a normalized question. ScoreIfChosen
// keeps the upstream flag in textual form; correctness is the literal "1".
type Alternative struct {
	Answer        string
	ScoreIfChosen string
}

func (a Alternative) Correct() bool { return a.ScoreIfChosen == "1" }

// Question is one language-resolved quiz question. Alternatives is never nil;
// only the first four are used downstream.
type Question struct {
	Body         string
	Alternatives []Alternative
	Solution     string
	Language     string
}

// TestMeta carries the display title and the raw syllabus/description HTML.
type TestMeta struct {
	Title    string
	Syllabus string
}
