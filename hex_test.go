package fasthash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDigest(t *testing.T) {
	assert.Equal(t, "0000000000000000", FormatDigest(0))
	assert.Equal(t, "0000000000000001", FormatDigest(1))
	assert.Equal(t, "00000000deadbeef", FormatDigest(0xdeadbeef))
	assert.Equal(t, "0123456789abcdef", FormatDigest(0x0123456789abcdef))
	assert.Equal(t, "ffffffffffffffff", FormatDigest(math.MaxUint64))
	assert.Equal(t, "8000000000000000", FormatDigest(1<<63))
}

func TestParseDigest_RoundTrip(t *testing.T) {
	values := []uint64{
		0,
		1,
		0xf,
		0x10,
		0xdeadbeef,
		0x0123456789abcdef,
		0xfedcba9876543210,
		1 << 63,
		math.MaxUint64,
	}
	for _, v := range values {
		parsed, ok := ParseDigest(FormatDigest(v))
		assert.True(t, ok, "value %#x", v)
		assert.Equal(t, v, parsed)
	}
	for i := 0; i < 64; i++ {
		v := uint64(1) << i
		parsed, ok := ParseDigest(FormatDigest(v))
		assert.True(t, ok)
		assert.Equal(t, v, parsed)
	}
}

func TestParseDigest_RejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"0",
		"000000000000000",   // 15 chars
		"00000000000000000", // 17 chars
		"0x00000000000000",
		"0123456789ABCDEF", // uppercase is rejected
		"0123456789abcdeg",
		"0123456789 bcdef",
		"-123456789abcdef",
	} {
		sum, ok := ParseDigest(s)
		assert.False(t, ok, "input %q", s)
		assert.Zero(t, sum, "input %q", s)
	}
}
