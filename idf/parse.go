package idf

import "strings"

// ParsedObject is one (kind, field values) pair recovered from IDF
// text by the permissive tokenizer. Used by round-trip tests to
// confirm the emitted text reproduces the in-memory emit sequence.
type ParsedObject struct {
	Kind   string
	Values []string
}

// Parse tokenizes IDF text permissively: comments are stripped,
// surrounding whitespace trimmed from each field, and objects split on the terminating
// semicolon. It makes no schema judgements — unknown kinds and odd
// field counts pass through untouched.
func Parse(text string) []ParsedObject {
	var objects []ParsedObject
	var tokens []string
	var current strings.Builder

	flushToken := func() {
		tokens = append(tokens, strings.TrimSpace(current.String()))
		current.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		if i := strings.Index(line, "!"); i >= 0 {
			line = line[:i]
		}
		for _, ch := range line {
			switch ch {
			case ',':
				flushToken()
			case ';':
				flushToken()
				if len(tokens) > 0 {
					objects = append(objects, ParsedObject{Kind: tokens[0], Values: tokens[1:]})
				}
				tokens = nil
			default:
				current.WriteRune(ch)
			}
		}
	}
	return objects
}
