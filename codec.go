// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

import (
	"bytes"
	"io"
	"runtime"
	"time"
	"unicode/utf8"
)

// frameCodec drives one direction's worth of NUL-terminated JSON framing
// over a Socket half. One frameCodec never mixes read and write state; a
// connection holds one for its receive buffer and one for its send buffer.
//
// Wire format: a single JSON object per frame, followed by exactly one 0x00
// byte. Multiple frames may arrive batched in one underlying Read; the codec
// advances across them without re-reading already-buffered bytes.
type frameCodec struct {
	rd ReadHalf
	wr WriteHalf

	retryDelay time.Duration

	// rbuf is the fixed-capacity receive buffer. rbuf[:filled] holds bytes
	// already read from rd that have not yet been dropped by consume;
	// scanned records how far into that region the NUL search has got.
	rbuf    []byte
	filled  int
	scanned int // how much of rbuf[:filled] has been scanned for a NUL already

	// pendingConsume is how many bytes at the front of rbuf belong to the
	// frame most recently returned by readFrame (including its NUL
	// terminator) and must be dropped before scanning for the next one.
	// Compaction is deferred to the start of the next readFrame call
	// instead of happening immediately, so the slice readFrame returns
	// keeps aliasing valid, untouched memory until the caller is done
	// with it — shifting a batched second frame over rbuf[0:] before
	// returning the first would otherwise corrupt it in place.
	pendingConsume int

	// wbuf is the fixed-capacity send buffer, reused across writeFrame calls.
	wbuf []byte
	// wbufOff is how much of wbuf has already been written to wr for the
	// frame currently in flight. A nonzero value means a previous writeFrame
	// call returned ErrWouldBlock/ErrMore mid-frame; the next call resumes
	// from wbufOff instead of re-encoding (no bytes are ever duplicated).
	wbufOff int
	// wbufPending is true while a partially-written frame is in flight.
	wbufPending bool
}

func newFrameCodec(rd ReadHalf, wr WriteHalf, bufferSize int) *frameCodec {
	return &frameCodec{
		rd:   rd,
		wr:   wr,
		rbuf: make([]byte, bufferSize),
		wbuf: make([]byte, 0, bufferSize),
	}
}

func (c *frameCodec) yieldOnce() { runtime.Gosched() }

// waitOnceOnWouldBlock reports whether the caller should retry after
// ErrWouldBlock, honoring RetryDelay the same way the teacher framer's
// internal.go does.
func (c *frameCodec) waitOnceOnWouldBlock() bool {
	if c.retryDelay < 0 {
		return false
	}
	if c.retryDelay == 0 {
		c.yieldOnce()
		return true
	}
	time.Sleep(c.retryDelay)
	return true
}

func (c *frameCodec) readOnce(p []byte) (int, error) {
	for {
		n, err := c.rd.Read(p)
		if len(p) != 0 && n == 0 && err == nil {
			return 0, io.ErrNoProgress
		}
		if n > 0 {
			return n, err
		}
		if err != ErrWouldBlock {
			return n, err
		}
		if !c.waitOnceOnWouldBlock() {
			return n, err
		}
	}
}

func (c *frameCodec) writeOnce(p []byte) (int, error) {
	for {
		n, err := c.wr.Write(p)
		if len(p) != 0 && n == 0 && err == nil {
			return 0, io.ErrShortWrite
		}
		if n > 0 {
			return n, err
		}
		if err != ErrWouldBlock {
			return n, err
		}
		if !c.waitOnceOnWouldBlock() {
			return n, err
		}
	}
}

// readFrame returns the bytes of exactly one frame (the prefix up to, but
// not including, the NUL terminator). The returned slice aliases rbuf and is
// only valid until the next call to readFrame.
func (c *frameCodec) readFrame() ([]byte, error) {
	if c.pendingConsume > 0 {
		c.consume(c.pendingConsume)
		c.pendingConsume = 0
	}

	for {
		if idx := bytes.IndexByte(c.rbuf[c.scanned:c.filled], 0x00); idx >= 0 {
			frame := c.rbuf[:c.scanned+idx]
			c.pendingConsume = c.scanned + idx + 1
			if !utf8.Valid(frame) {
				return nil, ErrInvalidUTF8
			}
			return frame, nil
		}
		c.scanned = c.filled

		if c.filled == len(c.rbuf) {
			return nil, &BufferOverflowError{Fatal: true, Need: c.filled + 1}
		}

		n, err := c.readOnce(c.rbuf[c.filled:])
		c.filled += n
		if err != nil {
			if err == io.EOF {
				if c.filled == 0 {
					return nil, io.EOF
				}
				return nil, ErrUnexpectedEOF
			}
			if err == ErrWouldBlock || err == ErrMore {
				return nil, err
			}
			return nil, err
		}
	}
}

// consume drops the first n bytes of rbuf[:filled], shifting any remaining
// batched bytes (from a read that returned more than one frame) to the
// front so the next readFrame call can resume scanning from offset 0.
func (c *frameCodec) consume(n int) {
	remaining := c.filled - n
	if remaining > 0 {
		copy(c.rbuf, c.rbuf[n:c.filled])
	}
	c.filled = remaining
	c.scanned = 0
}

// writeFrame writes payload followed by a single NUL byte. If payload does
// not fit in the fixed send buffer, ErrBufferOverflow is returned without
// touching the underlying socket half.
//
// If a prior call returned ErrWouldBlock/ErrMore mid-frame, payload is
// ignored and the in-flight frame resumes from where it left off — this is
// what makes partial writes cancel-safe: a dropped/retried send never
// duplicates or loses bytes.
func (c *frameCodec) writeFrame(payload []byte) error {
	if !c.wbufPending {
		need := len(payload) + 1
		if need > cap(c.wbuf) {
			return &BufferOverflowError{Fatal: false, Need: need}
		}
		c.wbuf = c.wbuf[:need]
		copy(c.wbuf, payload)
		c.wbuf[need-1] = 0x00
		c.wbufOff = 0
		c.wbufPending = true
	}

	for c.wbufOff < len(c.wbuf) {
		n, err := c.writeOnce(c.wbuf[c.wbufOff:])
		c.wbufOff += n
		if err != nil {
			return err
		}
	}
	c.wbufPending = false
	c.wbufOff = 0
	return nil
}
