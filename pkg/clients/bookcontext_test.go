package clients

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTruncateRunes verifies the cap counts characters, not bytes, and never
// produces invalid UTF-8 on Korean text.
func TestTruncateRunes(t *testing.T) {
	long := strings.Repeat("청계천 ", 100)
	require.Greater(t, utf8.RuneCountInString(long), 200)

	got := truncateRunes(long, 200)
	assert.Equal(t, 200, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))

	short := "남산타워"
	assert.Equal(t, short, truncateRunes(short, 200))
}

// TestExtractBackgroundHints verifies cue extraction keeps first-seen order,
// dedups, and returns valid UTF-8.
func TestExtractBackgroundHints(t *testing.T) {
	text := "소설의 배경은 청계천과 세운상가, 그리고 다시 청계천이다. 서울의 밤."
	got := ExtractBackgroundHints(text)

	assert.Equal(t, "서울, 청계천, 세운상가", got)
	assert.True(t, utf8.ValidString(got))

	assert.Equal(t, "", ExtractBackgroundHints(""))
}
