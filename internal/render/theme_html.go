package render

import (
	"html/template"
	"strings"
)

// htmlTheme is a Theme backed by a single html/template document. Rendering
// is pure: same Paper in, byte-identical document out.
type htmlTheme struct {
	name string
	tmpl *template.Template
}

func newHTMLTheme(name, text string) *htmlTheme {
	return &htmlTheme{
		name: name,
		tmpl: template.Must(template.New(name).Parse(text)),
	}
}

func (t *htmlTheme) Name() string { return t.name }

func (t *htmlTheme) Render(p Paper) (string, error) {
	var b strings.Builder
	if err := t.tmpl.Execute(&b, p); err != nil {
		return "", err
	}
	return b.String(), nil
}
