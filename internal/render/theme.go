package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/paperforge/paperforge/internal/quiz"
)

// Theme renders a structural Paper into a complete standalone HTML document.
// Visual styling is the theme's business; structure and correctness marking
// come from the Paper.
type Theme interface {
	Name() string
	Render(p Paper) (string, error)
}

// Registry of themes by name. Built-ins register from init().
var registry = map[string]Theme{}

func Register(t Theme) { registry[t.Name()] = t }

func Lookup(name string) (Theme, bool) { t, ok := registry[name]; return t, ok }

func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Assemble renders one document for the given mode and theme.
func Assemble(questions []quiz.Question, meta quiz.TestMeta, mode Mode, themeName string) (string, error) {
	th, ok := Lookup(themeName)
	if !ok {
		return "", fmt.Errorf("unknown theme %q (have %s)", themeName, strings.Join(Names(), ", "))
	}
	return th.Render(BuildPaper(questions, meta, mode))
}
