// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

import (
	"bytes"
	"sync"
)

const (
	initialScratchSize   = 512
	maxRecycleBufferSize = 8 << 20
)

// scratchPool recycles *bytes.Buffer values for staging payloads.
// globalScratchPool is the package-wide instance; the send paths
// (SendCall, SendReply, SendError) and the server loop marshal with
// json.Marshal and do not draw from it.
type scratchPool struct {
	pool sync.Pool
}

var globalScratchPool = newScratchPool()

func newScratchPool() *scratchPool {
	return &scratchPool{
		pool: sync.Pool{
			New: func() any {
				buf := bytes.NewBuffer(make([]byte, 0, initialScratchSize))
				return buf
			},
		},
	}
}

// Get returns an empty *bytes.Buffer, either recycled or freshly allocated.
func (p *scratchPool) Get() *bytes.Buffer {
	return p.pool.Get().(*bytes.Buffer)
}

// Put returns buf to the pool. Buffers grown past maxRecycleBufferSize are
// dropped instead of pooled, so one oversized payload doesn't permanently
// inflate the pool's steady-state memory.
func (p *scratchPool) Put(buf *bytes.Buffer) {
	if buf.Cap() > maxRecycleBufferSize {
		return
	}
	buf.Reset()
	p.pool.Put(buf)
}
