package reader

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 4096 // max pooled token buffer capacity
	poolInitCap = 64
)

// token buffer pool for word/line accumulation
var tokenPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, poolInitCap)
		return &buf
	},
}

func getBuf() *[]byte {
	return tokenPool.Get().(*[]byte)
}

func putBuf(buf *[]byte) {
	if buf == nil || cap(*buf) > poolMaxCap {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	tokenPool.Put(buf)
}
