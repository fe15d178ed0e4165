package textproc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips diacritics",
			input: "Offres pour étudiants à Paris",
			want:  "offres pour etudiants a paris",
		},
		{
			name:  "collapses whitespace runs",
			input: "  jobs \t\n paris   data  ",
			want:  "jobs paris data",
		},
		{
			name:  "lowercases",
			input: "PYTHON Développeur",
			want:  "python developpeur",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "already normalized",
			input: "stage python paris",
			want:  "stage python paris",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "punctuation becomes separators",
			input: "jobs, paris: python/data!",
			want:  []string{"jobs", "paris", "python", "data"},
		},
		{
			name:  "lowercases tokens",
			input: "Stage Python",
			want:  []string{"stage", "python"},
		},
		{
			name:  "digits kept",
			input: "publié il y a 24h",
			want:  []string{"publié", "il", "y", "a", "24h"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			assert.ElementsMatch(t, tt.want, got)
			assert.Equal(t, len(tt.want), len(got))
		})
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	inputs := []string{
		"jobs etudiants a paris dans la data et python",
		"C++ / C# dev @ Lyon (CDI)",
		"offre/stage: télétravail, 24h",
	}

	for _, input := range inputs {
		first := Tokenize(input)
		second := Tokenize(strings.Join(first, " "))
		assert.Equal(t, first, second, "re-tokenizing joined output must be stable for %q", input)
	}
}

func TestTokenSet(t *testing.T) {
	set := TokenSet([]string{"a", "b", "a"})
	assert.Len(t, set, 2)
	_, ok := set["a"]
	assert.True(t, ok)
	_, ok = set["c"]
	assert.False(t, ok)
}
