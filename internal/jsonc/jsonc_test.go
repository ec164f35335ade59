package jsonc

import (
	"encoding/json"
	"testing"
)

func TestStripCommentsLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "line comment to end of line",
			input:    "{\"a\": 1 // note\n}",
			expected: "{\"a\": 1 \n}",
		},
		{
			name:     "block comment",
			input:    `{"a": /* gone */ 1}`,
			expected: `{"a":  1}`,
		},
		{
			name:     "multiline block comment",
			input:    "{\"a\": 1 /* spans\nlines */}",
			expected: "{\"a\": 1 }",
		},
		{
			name:     "slashes inside double-quoted string survive",
			input:    `{"url": "http://x"}`,
			expected: `{"url": "http://x"}`,
		},
		{
			name:     "block opener inside string survives",
			input:    `{"glob": "/* not a comment"}`,
			expected: `{"glob": "/* not a comment"}`,
		},
		{
			name:     "single-quoted string survives",
			input:    `{'url': 'http://x'} // tail`,
			expected: `{'url': 'http://x'} `,
		},
		{
			name:     "escaped quote does not end string",
			input:    `{"s": "a\"b//c"}`,
			expected: `{"s": "a\"b//c"}`,
		},
		{
			name:     "division-looking slash is kept",
			input:    `{"path": a/b}`,
			expected: `{"path": a/b}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripComments(tt.input); got != tt.expected {
				t.Errorf("StripComments(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripTrailingCommas(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "array trailing comma",
			input:    `[1,2,]`,
			expected: `[1,2]`,
		},
		{
			name:     "no trailing comma untouched",
			input:    `[1,2,3]`,
			expected: `[1,2,3]`,
		},
		{
			name:     "object trailing comma across whitespace",
			input:    "{\"a\": 1,\n}",
			expected: "{\"a\": 1\n}",
		},
		{
			name:     "nested and successive",
			input:    `{"a": [1,2,], "b": {"c": 3,},}`,
			expected: `{"a": [1,2], "b": {"c": 3}}`,
		},
		{
			name:     "comma inside string survives",
			input:    `{"s": ",]"}`,
			expected: `{"s": ",]"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTrailingCommas(tt.input); got != tt.expected {
				t.Errorf("StripTrailingCommas(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanOrderExposesTrailingComma(t *testing.T) {
	// The comment hides the trailing comma until it is stripped.
	input := "[1,2, // last\n]"
	out := Clean(input)
	var v []int
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("cleaned output is not valid JSON: %v (%q)", err, out)
	}
	if len(v) != 2 || v[0] != 1 || v[1] != 2 {
		t.Errorf("unexpected value %v", v)
	}
}

func TestCleanRoundTripOnStrictJSON(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"a": [1, 2, 3], "b": {"c": "x//y"}}`,
		"{\n  \"name\": \"dark\",\n  \"tokenColors\": []\n}",
	}
	for _, input := range inputs {
		if got := Clean(input); got != input {
			t.Errorf("Clean(%q) = %q, expected identity", input, got)
		}
	}
}
