package morse

import (
	"bytes"
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Rendering produces a lot of short-lived buffers, one for every Word or
// Sentence printed. To avoid allocating them over and over we will pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

const initialBufferSize = 256

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			buf := bytes.NewBuffer(make([]byte, 0, initialBufferSize))
			return buf, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// borrowBuffer returns an empty buffer from the pool. If the pool fails to
// deliver, a fresh buffer is allocated.
func borrowBuffer() *bytes.Buffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil || o == nil {
		CT().Debugf("buffer pool exhausted: %v", err)
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	}
	return o.(*bytes.Buffer)
}

// releaseBuffer clears buf and puts it back into the pool.
// Buffers not borrowed from the pool are silently dropped.
func releaseBuffer(buf *bytes.Buffer) {
	buf.Reset()
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}

func writeWord(buf *bytes.Buffer, w Word) {
	for i, c := range w {
		if i > 0 {
			buf.WriteString(CharSeparator)
		}
		for _, sym := range c {
			buf.WriteRune(sym.Rune())
		}
	}
}
