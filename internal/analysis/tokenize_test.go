package analysis

import (
	"regexp"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"basic", "Hello, World!", []string{"hello", "world"}},
		{"empty", "", nil},
		{"whitespace only", "  \t\n ", nil},
		{"punctuation only", "!!! ... ???", nil},
		{"numbers", "route 66 and 2fast", []string{"route", "66", "and", "2fast"}},
		{"apostrophe inside token", "don't stop", []string{"don't", "stop"}},
		{"mixed case", "GoLang GOLANG golang", []string{"golang", "golang", "golang"}},
		{"separators collapse", "one--two__three..four", []string{"one", "two", "three", "four"}},
		{"non-ascii letters separate", "café au lait", []string{"caf", "au", "lait"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !stringSlicesEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeShape(t *testing.T) {
	// Every token matches the token alphabet regardless of input.
	shape := regexp.MustCompile(`^[a-z0-9']+$`)
	inputs := []string{
		"The Quick Brown Fox!",
		"tab\tseparated\nlines",
		"símbolos: ñ, ü, ß und émojis 🙂",
		"a.b,c;d:e(f)g[h]i{j}k",
	}
	for _, input := range inputs {
		for _, tok := range Tokenize(input) {
			if !shape.MatchString(tok) {
				t.Errorf("token %q from %q escapes the token alphabet", tok, input)
			}
		}
	}
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
