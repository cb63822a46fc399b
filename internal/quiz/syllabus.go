package quiz

import (
	"html"
	"regexp"
	"strings"
)

// Descriptions embed per-subject syllabus lines as
// "<strong>Physics :</strong> Units and Measurements<br>".
var subjectRe = regexp.MustCompile(`(?i)<strong>([^<:]+)\s*:\s*</strong>(.*?)<br>`)

type SyllabusEntry struct {
	Subject string
	Content string
}

// ParseSyllabus extracts subject/content pairs from the quiz description.
// Returns nil when the description carries no syllabus markup.
func ParseSyllabus(description string) []SyllabusEntry {
	if description == "" {
		return nil
	}
	decoded := html.UnescapeString(description)

	var out []SyllabusEntry
	for _, m := range subjectRe.FindAllStringSubmatch(decoded, -1) {
		out = append(out, SyllabusEntry{
			Subject: strings.TrimSpace(m[1]),
			Content: strings.TrimSpace(m[2]),
		})
	}
	return out
}
