// Package llm reads structured values out of free-form text produced by a
// language-model plan generator. Models wrap JSON in markdown fences, add
// prose around it, leave comments and trailing commas, and write ".5" for 0.5.
package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded value. It returns nil if the value is usable.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON object in raw into T. Mistyped fields
// fail the decode. If validator is non-nil it runs on the decoded value.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	block := firstObject(stripCodeFences(raw))
	if block == "" {
		return zero, fmt.Errorf("%w: %w", ErrInvalidOutput, ErrNoJSON)
	}
	block = repair(block)

	var result T
	dec := json.NewDecoder(bytes.NewReader([]byte(block)))
	if err := dec.Decode(&result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

// stripCodeFences drops markdown fence lines and keeps everything else.
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// firstObject returns the first balanced { ... } block, or "".
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	var sc stringScanner
	for i := start; i < len(s); i++ {
		if sc.step(s[i]) {
			continue
		}
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// repair rewrites the common non-JSON habits of generators outside string
// literals: // and /* */ comments, ".5" style numbers and trailing commas.
func repair(s string) string {
	return normalizeLiterals(stripComments(s))
}

func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var sc stringScanner
	for i := 0; i < len(s); i++ {
		c := s[i]
		if sc.step(c) {
			b.WriteByte(c)
			continue
		}

		switch {
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end == -1 {
				i = len(s)
			} else {
				i += end + 3
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func normalizeLiterals(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	var sc stringScanner
	for i := 0; i < len(s); i++ {
		c := s[i]
		if sc.step(c) {
			b.WriteByte(c)
			continue
		}

		switch {
		case c == ',' && closesNext(s, i+1):
			continue
		case c == '.' && i+1 < len(s) && isDigit(s[i+1]) && isNumericBoundary(lastNonSpace(b.String())):
			b.WriteByte('0')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// stringScanner tracks whether a byte stream is inside a JSON string literal.
type stringScanner struct {
	inString bool
	escaped  bool
}

// step consumes c and reports whether it belongs to a string literal,
// quotes included.
func (sc *stringScanner) step(c byte) bool {
	switch {
	case sc.escaped:
		sc.escaped = false
		return true
	case sc.inString && c == '\\':
		sc.escaped = true
		return true
	case c == '"':
		sc.inString = !sc.inString
		return true
	}
	return sc.inString
}

// closesNext reports whether the next non-space byte from i closes an
// object or array.
func closesNext(s string, i int) bool {
	for ; i < len(s); i++ {
		switch s[i] {
		case ' ', '\n', '\r', '\t':
			continue
		case '}', ']':
			return true
		default:
			return false
		}
	}
	return false
}

func lastNonSpace(s string) byte {
	trimmed := strings.TrimRight(s, " \n\r\t")
	if trimmed == "" {
		return 0
	}
	return trimmed[len(trimmed)-1]
}

func isNumericBoundary(c byte) bool {
	switch c {
	case 0, ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
