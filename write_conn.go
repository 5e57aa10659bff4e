// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

// WriteConnection holds the send buffer and the write half of a split
// connection. Not safe for concurrent use: callers that pipeline calls
// across goroutines must serialize their own Send* invocations (Chain does
// this for them).
type WriteConnection struct {
	id ConnID
	c  *frameCodec
}

// NewWriteConnection constructs a WriteConnection over wr, with its own
// fixed-capacity send buffer.
func NewWriteConnection(wr WriteHalf, opts ...Option) *WriteConnection {
	o := newOptions(opts...)
	c := newFrameCodec(nil, wr, o.BufferSize)
	c.retryDelay = o.RetryDelay
	return &WriteConnection{id: nextConnID(), c: c}
}

// ID returns this connection's process-local identifier.
func (wc *WriteConnection) ID() ConnID { return wc.id }

// SendCall serializes and writes call as one NUL-terminated frame.
//
// SendCall is cancel-safe and resumable: if it returns ErrWouldBlock (or any
// other error, on a transport where retrying after a partial failure is
// meaningful), the caller may invoke SendCall again with the SAME call value
// to resume the in-flight write from where it left off. Passing a different
// call after a partial failure is a programmer error: frameCodec ignores the
// new payload, finishes the frame already in flight, and reports success
// without ever sending the new call.
func SendCall[P any](wc *WriteConnection, call Call[P]) error {
	payload, err := json.Marshal(call)
	if err != nil {
		return err
	}
	return wc.c.writeFrame(payload)
}

// SendReply serializes and writes a successful reply for parameter type P.
func SendReply[P any](wc *WriteConnection, reply Reply[P]) error {
	payload, err := json.Marshal(reply)
	if err != nil {
		return err
	}
	return wc.c.writeFrame(payload)
}

// SendError serializes and writes an error reply for error-parameter type E.
func SendError[E any](wc *WriteConnection, errReply ErrorReply[E]) error {
	payload, err := json.Marshal(errReply)
	if err != nil {
		return err
	}
	return wc.c.writeFrame(payload)
}
