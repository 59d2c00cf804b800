// Package fasthash hashes text and binary data with a fast 64-bit
// non-cryptographic hash (XXH3 by default) and renders digests as
// fixed-width lowercase hex. The hot paths avoid heap allocation by
// encoding small inputs into call-local buffers and larger ones into a
// shared buffer pool.
package fasthash

import "unicode/utf8"

// Adapter turns string-like input into 64-bit digests and hex digests
// using an injected Hasher. The zero value is not usable; construct with
// New. All methods are safe for concurrent use.
type Adapter struct {
	hasher Hasher
}

// New creates an Adapter from config. A nil config or nil config fields
// fall back to DefaultConfig.
func New(c *Config) *Adapter {
	config := mergeConfig(c)
	return &Adapter{hasher: config.Hasher}
}

// Sum64 returns the digest of data. A nil slice hashes as empty input.
func (a *Adapter) Sum64(data []byte) uint64 {
	return a.hasher.Sum64(data)
}

// Sum64String returns the digest of the UTF-8 bytes of text. It returns
// ErrInvalidText when text is not well-formed UTF-8.
func (a *Adapter) Sum64String(text string) (uint64, error) {
	if !utf8.ValidString(text) {
		return 0, ErrInvalidText
	}
	return sumString(a.hasher, text), nil
}

// Sum64Runes returns the digest of the UTF-8 encoding of text. Invalid
// runes encode as utf8.RuneError, so every rune slice is hashable.
func (a *Adapter) Sum64Runes(text []rune) uint64 {
	return sumRunes(a.hasher, text)
}

// Hash returns the 16-character lowercase hex digest of text. It returns
// ErrInvalidText when text is not well-formed UTF-8.
func (a *Adapter) Hash(text string) (string, error) {
	sum, err := a.Sum64String(text)
	if err != nil {
		return "", err
	}
	return FormatDigest(sum), nil
}

// Verify reports whether the digest of text equals expectedHex. A
// malformed expectedHex is not an error: it verifies as false, without
// hashing text. ErrInvalidText is returned when text is not well-formed
// UTF-8.
func (a *Adapter) Verify(text string, expectedHex string) (bool, error) {
	if !utf8.ValidString(text) {
		return false, ErrInvalidText
	}
	expected, ok := ParseDigest(expectedHex)
	if !ok {
		return false, nil
	}
	return sumString(a.hasher, text) == expected, nil
}

var defaultAdapter = New(nil)

// Sum64 returns the XXH3 digest of data.
func Sum64(data []byte) uint64 {
	return defaultAdapter.Sum64(data)
}

// Sum64String returns the XXH3 digest of the UTF-8 bytes of text.
func Sum64String(text string) (uint64, error) {
	return defaultAdapter.Sum64String(text)
}

// Sum64Runes returns the XXH3 digest of the UTF-8 encoding of text.
func Sum64Runes(text []rune) uint64 {
	return defaultAdapter.Sum64Runes(text)
}

// Hash returns the 16-character lowercase hex XXH3 digest of text.
func Hash(text string) (string, error) {
	return defaultAdapter.Hash(text)
}

// Verify reports whether the XXH3 digest of text equals expectedHex.
func Verify(text string, expectedHex string) (bool, error) {
	return defaultAdapter.Verify(text, expectedHex)
}
