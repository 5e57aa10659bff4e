// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

// ReadConnection holds the receive buffer and the read half of a split
// connection. It is not safe for concurrent use: at most one goroutine may
// own it at a time, and the value returned by ReceiveCall/ReceiveReply
// borrows the receive buffer until the next receive.
type ReadConnection struct {
	id ConnID
	c  *frameCodec

	// busy is true while a previously returned Call/Reply's Parameters may
	// still alias the receive buffer. It is cleared only by an explicit
	// call to Release; every caller that receives more than once on the
	// same ReadConnection (ReplyStream is the package's own example) must
	// call Release once it is done with the previous value, even if its
	// own Parameters type happens to copy on unmarshal.
	busy bool
}

// NewReadConnection constructs a ReadConnection over rd, with its own
// fixed-capacity receive buffer.
func NewReadConnection(rd ReadHalf, opts ...Option) *ReadConnection {
	o := newOptions(opts...)
	c := newFrameCodec(rd, nil, o.BufferSize)
	c.retryDelay = o.RetryDelay
	return &ReadConnection{id: nextConnID(), c: c}
}

// ID returns this connection's process-local identifier.
func (rc *ReadConnection) ID() ConnID { return rc.id }

// Release acknowledges that the caller is done with any slices borrowed
// from the most recent ReceiveCall/ReceiveReply, allowing the next receive
// to reuse the buffer. Callers that decode Parameters into a
// jsoniter.RawMessage and intend to keep it past the next receive must
// copy it first (for example with bytes.Clone); Release does not copy
// anything.
func (rc *ReadConnection) Release() { rc.busy = false }

func (rc *ReadConnection) checkNotBusy() error {
	if rc.busy {
		return ErrBorrowed
	}
	return nil
}

// ReceiveCall reads one frame and deserializes it as a call envelope with
// parameter type P. The returned Call's Parameters may borrow the
// connection's receive buffer (if P is or contains jsoniter.RawMessage
// fields); the next receive is forbidden until Release is called.
func ReceiveCall[P any](rc *ReadConnection) (Call[P], error) {
	var zero Call[P]
	if err := rc.checkNotBusy(); err != nil {
		return zero, err
	}
	frame, err := rc.c.readFrame()
	if err != nil {
		return zero, err
	}
	var call Call[P]
	if err := json.Unmarshal(frame, &call); err != nil {
		return zero, err
	}
	rc.busy = true
	return call, nil
}

// ReceiveReply reads one frame and deserializes it as either a success
// Reply[P] or an ErrorReply[E], discriminated by the presence of an
// "error" key (spec.md 4.C: "a single field name, not a tag").
//
// On a successful reply, the Reply is returned and err is nil. On an
// application-level error reply, a non-nil *ErrorReply[E] is returned
// together with a nil transport error: this is the "Ok(Err(E))" shape
// spec.md 7 describes, distinct from a transport failure.
func ReceiveReply[P any, E any](rc *ReadConnection) (*Reply[P], *ErrorReply[E], error) {
	if err := rc.checkNotBusy(); err != nil {
		return nil, nil, err
	}
	frame, err := rc.c.readFrame()
	if err != nil {
		return nil, nil, err
	}

	isErr, err := isErrorReply(frame)
	if err != nil {
		return nil, nil, err
	}
	rc.busy = true

	if isErr {
		var er ErrorReply[E]
		if err := json.Unmarshal(frame, &er); err != nil {
			return nil, nil, err
		}
		return nil, &er, nil
	}

	var reply Reply[P]
	if err := json.Unmarshal(frame, &reply); err != nil {
		return nil, nil, err
	}
	return &reply, nil, nil
}
