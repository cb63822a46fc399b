package platform

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodeQuestionGroups parses the locale-questions payload preserving the
// server's object key order at both nesting levels. Question numbering in the
// generated papers is defined by that order, and Go maps would shuffle it.
func DecodeQuestionGroups(r io.Reader) ([]QuestionGroup, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("locale questions: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("locale questions: payload is not a JSON object")
	}

	var groups []QuestionGroup
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("locale questions: %w", err)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("locale questions: group %q: %w", key, err)
		}
		groups = append(groups, QuestionGroup{Key: key, Variants: decodeVariants(raw)})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("locale questions: %w", err)
	}
	return groups, nil
}

// decodeVariants reads one group's language map in key order. A variant that
// fails to unmarshal (e.g. alternatives is not an array) keeps its slot as an
// invalid variant so fallback scanning still sees server order.
func decodeVariants(raw json.RawMessage) []Variant {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	var out []Variant
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return out
		}
		locale, _ := keyTok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return out
		}
		var v LanguageVariant
		if err := json.Unmarshal(value, &v); err != nil {
			out = append(out, Variant{Locale: locale})
			continue
		}
		out = append(out, Variant{Locale: locale, LanguageVariant: v})
	}
	return out
}
