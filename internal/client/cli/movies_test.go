package cli

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "short stays intact", input: "Stalker", maxLen: 40, want: "Stalker"},
		{name: "exact length stays intact", input: "abcde", maxLen: 5, want: "abcde"},
		{name: "long ascii", input: "a very long movie title that will not fit", maxLen: 20, want: "a very long movie..."},
		{name: "cyrillic counted by runes", input: "Сталкер", maxLen: 40, want: "Сталкер"},
		{name: "long cyrillic", input: "Иваново детство и другие ранние фильмы", maxLen: 20, want: "Иваново детство и..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			assert.Equal(t, tt.want, got)
			// Срез по рунам никогда не дает битый UTF-8
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestMovieID(t *testing.T) {
	id, err := movieID([]string{"42", "extra"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = movieID(nil)
	assert.Error(t, err)

	_, err = movieID([]string{"not-a-number"})
	assert.Error(t, err)
}
