package fasthash

import "sync"

// localBufferSize is the largest input encoded into a call-local buffer.
// Anything bigger borrows from the shared pool. Tuning it moves the
// allocation source, never the hash result.
const localBufferSize = 256

var bufferPool = sync.Pool{
	New: func() any {
		b := make([]byte, 2*localBufferSize)
		return &b
	},
}

// acquireBuffer returns a pooled buffer with capacity of at least n bytes.
// The caller must hand it back with releaseBuffer.
func acquireBuffer(n int) *[]byte {
	bp := bufferPool.Get().(*[]byte)
	if cap(*bp) < n {
		*bp = make([]byte, n)
	}
	return bp
}

func releaseBuffer(bp *[]byte) {
	bufferPool.Put(bp)
}
