package fasthash

import "unicode/utf8"

// sumString hashes the UTF-8 bytes of s with h. Small inputs are copied
// into a call-local buffer, larger ones into a pooled buffer that is
// released on every exit path. The hashed range is always exactly len(s)
// bytes, so both tiers produce the same digest as hashing the bytes
// directly.
func sumString(h Hasher, s string) uint64 {
	n := len(s)
	if n <= localBufferSize {
		var buf [localBufferSize]byte
		copy(buf[:], s)
		return h.Sum64(buf[:n])
	}
	bp := acquireBuffer(n)
	defer releaseBuffer(bp)
	b := (*bp)[:n]
	copy(b, s)
	return h.Sum64(b)
}

// sumRunes UTF-8 encodes rs and hashes the result with h. A sizing pass
// computes the exact byte length before any buffer is touched; invalid
// runes count and encode as utf8.RuneError, matching utf8.EncodeRune.
func sumRunes(h Hasher, rs []rune) uint64 {
	n := encodedLen(rs)
	if n <= localBufferSize {
		var buf [localBufferSize]byte
		return h.Sum64(buf[:encodeRunes(buf[:n], rs)])
	}
	bp := acquireBuffer(n)
	defer releaseBuffer(bp)
	b := (*bp)[:n]
	return h.Sum64(b[:encodeRunes(b, rs)])
}

// encodedLen returns the exact UTF-8 byte length of rs without allocating.
func encodedLen(rs []rune) int {
	n := 0
	for _, r := range rs {
		l := utf8.RuneLen(r)
		if l < 0 {
			l = utf8.RuneLen(utf8.RuneError)
		}
		n += l
	}
	return n
}

// encodeRunes writes the UTF-8 encoding of rs into dst and returns the
// number of bytes written. dst must hold at least encodedLen(rs) bytes.
func encodeRunes(dst []byte, rs []rune) int {
	w := 0
	for _, r := range rs {
		w += utf8.EncodeRune(dst[w:], r)
	}
	return w
}
