package fasthash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodedLen(t *testing.T) {
	for _, text := range []string{
		"",
		"ascii only",
		"héllo wörld",
		"漢字テキスト",
		strings.Repeat("é", 300),
	} {
		rs := []rune(text)
		assert.Equal(t, len(text), encodedLen(rs), "text %q", text)
	}

	// Invalid runes size as the replacement character, matching what
	// encodeRunes will actually write.
	assert.Equal(t, len("�"), encodedLen([]rune{0xD800}))
	assert.Equal(t, len("�"), encodedLen([]rune{0x110000}))
}

func TestEncodeRunes(t *testing.T) {
	for _, text := range []string{"", "ascii only", "héllo wörld", "漢字テキスト"} {
		rs := []rune(text)
		dst := make([]byte, encodedLen(rs))
		n := encodeRunes(dst, rs)
		assert.Equal(t, len(dst), n)
		assert.Equal(t, []byte(text), dst[:n])
	}
}

func TestSumString_MatchesByteHash(t *testing.T) {
	hasher := NewXXH3Hasher()
	for _, text := range []string{
		"",
		"hello world",
		strings.Repeat("z", localBufferSize),
		strings.Repeat("z", localBufferSize*8),
	} {
		assert.Equal(t, hasher.Sum64([]byte(text)), sumString(hasher, text), "len %d", len(text))
	}
}
