package fasthash

// DigestLen is the length of a hex digest produced by FormatDigest.
const DigestLen = 16

const hexDigits = "0123456789abcdef"

// FormatDigest renders sum as exactly 16 lowercase hex characters, most
// significant nibble first, zero-padded and without a prefix.
func FormatDigest(sum uint64) string {
	var buf [DigestLen]byte
	for i := DigestLen - 1; i >= 0; i-- {
		buf[i] = hexDigits[sum&0xf]
		sum >>= 4
	}
	return string(buf[:])
}

// ParseDigest parses a hex digest in the exact form FormatDigest emits:
// 16 characters drawn from 0-9a-f. Uppercase, prefixes, and any other
// length or alphabet fail with ok == false.
func ParseDigest(s string) (sum uint64, ok bool) {
	if len(s) != DigestLen {
		return 0, false
	}
	for i := 0; i < DigestLen; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			sum = sum<<4 | uint64(c-'0')
		case c >= 'a' && c <= 'f':
			sum = sum<<4 | uint64(c-'a'+10)
		default:
			return 0, false
		}
	}
	return sum, true
}
