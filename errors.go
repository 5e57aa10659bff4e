// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

var (
	// ErrInvalidArgument reports a nil socket half or malformed configuration.
	ErrInvalidArgument = errors.New("varlink: invalid argument")

	// ErrBufferOverflow reports that a frame did not fit in the fixed-capacity
	// buffer. On write, the underlying sink was not touched. On read, framing
	// is lost and the connection must be dropped.
	ErrBufferOverflow = errors.New("varlink: buffer overflow")

	// ErrInvalidUTF8 reports that bytes between NUL boundaries were not valid
	// UTF-8.
	ErrInvalidUTF8 = errors.New("varlink: invalid utf-8 in frame")

	// ErrUnexpectedEOF reports that the underlying stream closed mid-frame.
	ErrUnexpectedEOF = errors.New("varlink: unexpected eof mid-frame")

	// ErrMissingParameters reports that a reply had no parameters but the
	// caller's schema requires them.
	ErrMissingParameters = errors.New("varlink: reply missing required parameters")

	// ErrBorrowed reports that a receive was attempted while a previously
	// returned Call/Reply still borrows the connection's receive buffer.
	ErrBorrowed = errors.New("varlink: previous receive still borrowed")

	// ErrExpectedMore is returned by ServerCall.ReplyMore and
	// ServerCall.ReplyLast when the call was not sent with more=true.
	ErrExpectedMore = errors.New("varlink: continues=true on a non-more call")

	// ErrCloseWithReplyNotCalled is returned by ServerCall's Reply,
	// ReplyMore, ReplyLast and Fail when the call has already been closed
	// by an earlier Reply, ReplyLast or Fail. A handler that returns
	// without a terminal reply is logged by the server loop, not reported
	// with this error.
	ErrCloseWithReplyNotCalled = errors.New("varlink: handler did not close the call with a reply")
)

// These are re-exported so callers don't need to import iox directly to
// recognize the cancel-safe, resumable-I/O control-flow signals a Socket
// half may surface.
var (
	// ErrWouldBlock means the half made no progress and must be retried
	// later; any returned byte count still represents real progress.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means the half's last read/write is usable but the operation
	// is still in flight and must be driven again.
	ErrMore = iox.ErrMore
)

// BufferOverflowError distinguishes write-side overflow (recoverable; the
// frame was never written) from read-side overflow (fatal; framing lost).
type BufferOverflowError struct {
	// Fatal is true when the overflow happened while reading: the
	// connection's framing is now desynchronized and must be dropped.
	Fatal bool
	// Need is the number of bytes the frame would have required, if known.
	Need int
}

func (e *BufferOverflowError) Error() string {
	if e.Fatal {
		return fmt.Sprintf("%v (fatal, need %d bytes)", ErrBufferOverflow, e.Need)
	}
	return fmt.Sprintf("%v (need %d bytes)", ErrBufferOverflow, e.Need)
}

func (e *BufferOverflowError) Unwrap() error { return ErrBufferOverflow }
