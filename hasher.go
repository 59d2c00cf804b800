package fasthash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// Hasher generates an unsigned 64-bit hash of the provided byte slice.
// Implementations must be deterministic, defined for empty input and safe
// for concurrent use.
type Hasher interface {
	Sum64(data []byte) uint64
}

// NewXXH3Hasher returns the default Hasher, the unseeded 64-bit variant of
// XXH3. The output is bit-compatible with the reference xxHash library.
func NewXXH3Hasher() Hasher {
	return xxh3Hasher{}
}

type xxh3Hasher struct{}

func (xxh3Hasher) Sum64(data []byte) uint64 {
	return xxh3.Hash(data)
}

// NewXXH64Hasher returns a Hasher implementing the classic 64-bit xxHash
// (XXH64) with seed 0.
func NewXXH64Hasher() Hasher {
	return xxh64Hasher{}
}

type xxh64Hasher struct{}

func (xxh64Hasher) Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
