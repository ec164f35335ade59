// Package jsonc cleans up the lenient JSON dialect VS Code uses for theme
// files (C-style comments, trailing commas) so it can be fed to the strict
// encoding/json parser.
package jsonc

import "strings"

// Clean strips comments, then trailing commas. The order matters: a comment
// sitting right before a closing bracket can hide a comma that only becomes
// trailing once the comment is gone.
func Clean(text string) string {
	return StripTrailingCommas(StripComments(text))
}

// StripComments removes //-line and /* block */ comments. String literals
// (single- or double-quoted, with backslash escapes) pass through untouched,
// so a "//" inside a URL string survives.
func StripComments(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	i, n := 0, len(text)
	for i < n {
		c := text[i]
		switch {
		case c == '"' || c == '\'':
			i = copyString(&b, text, i)
		case c == '/' && i+1 < n && text[i+1] == '/':
			i += 2
			for i < n && text[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < n && text[i+1] == '*':
			i += 2
			for i < n {
				if text[i] == '*' && i+1 < n && text[i+1] == '/' {
					i += 2
					break
				}
				i++
			}
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// StripTrailingCommas drops any comma whose next non-whitespace character is
// a closing '}' or ']', outside string literals. Successive and nested
// trailing commas are all handled in one pass since the lookahead never
// consumes input.
func StripTrailingCommas(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	i, n := 0, len(text)
	for i < n {
		c := text[i]
		switch {
		case c == '"' || c == '\'':
			i = copyString(&b, text, i)
		case c == ',' && nextNonSpaceIsCloser(text, i+1):
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// copyString copies the quoted string starting at text[start] verbatim,
// honoring backslash escapes, and returns the index past its closing quote.
func copyString(b *strings.Builder, text string, start int) int {
	quote := text[start]
	b.WriteByte(quote)
	i := start + 1
	n := len(text)
	for i < n {
		b.WriteByte(text[i])
		if text[i] == '\\' {
			if i+1 < n {
				b.WriteByte(text[i+1])
			}
			i += 2
			continue
		}
		if text[i] == quote {
			return i + 1
		}
		i++
	}
	return i
}

func nextNonSpaceIsCloser(text string, i int) bool {
	for ; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t', '\n', '\r':
		case '}', ']':
			return true
		default:
			return false
		}
	}
	return false
}
