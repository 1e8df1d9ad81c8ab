package useragent_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/viewkit/pkg/useragent"
)

func TestTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ua   string
		want []useragent.Token
	}{
		{
			name: "empty",
			ua:   "",
			want: nil,
		},
		{
			name: "product with version",
			ua:   "Chrome/91.0.4472.124",
			want: []useragent.Token{{Name: "Chrome", Next: '/', Major: "91", Minor: "0"}},
		},
		{
			name: "words and versions",
			ua:   "Windows NT 10.0; Win64",
			want: []useragent.Token{
				{Name: "Windows", Next: ' '},
				{Name: "NT", Next: ' ', Major: "10", Minor: "0"},
				{Name: "Win64", Next: ';'},
			},
		},
		{
			name: "underscore version",
			ua:   "CPU iPhone OS 14_4 like",
			want: []useragent.Token{
				{Name: "CPU", Next: ' '},
				{Name: "iPhone", Next: ' '},
				{Name: "OS", Next: ' ', Major: "14", Minor: "4"},
				{Name: "like", Next: ';'},
			},
		},
		{
			name: "hyphenated name",
			ua:   "SM-G991B)",
			want: []useragent.Token{{Name: "SM-G991B", Next: ')'}},
		},
		{
			name: "colon separator",
			ua:   "rv:89.0) Gecko",
			want: []useragent.Token{
				{Name: "rv", Next: ':', Major: "89", Minor: "0"},
				{Name: "Gecko", Next: ';'},
			},
		},
		{
			name: "major only with letter suffix",
			ua:   "SymbianOS/7.0s Mobile/15E148",
			want: []useragent.Token{
				{Name: "SymbianOS", Next: '/', Major: "7", Minor: "0"},
				{Name: "Mobile", Next: '/', Major: "15"},
			},
		},
		{
			name: "punctuation only",
			ua:   "();/ 123 ...",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, slices.Collect(useragent.Tokens(tt.ua)))
		})
	}
}

func TestTokens_Restartable(t *testing.T) {
	t.Parallel()

	seq := useragent.Tokens("Mozilla/5.0 (X11; Linux x86_64)")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}

func TestTokens_EarlyBreak(t *testing.T) {
	t.Parallel()

	var names []string
	for tok := range useragent.Tokens("a b c d e") {
		names = append(names, tok.Name)
		if len(names) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, names)
}
