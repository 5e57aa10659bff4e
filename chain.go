// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

// chainEntry is a type-erased pending call: a boxed closure that writes
// it, plus its More/Oneway flags. Boxing the write step per entry is what
// lets Chain hold calls of different parameter types in one ordered
// pipeline. Entries do not decode replies; the caller reads those itself.
type chainEntry struct {
	write  func(*WriteConnection) error
	more   bool
	oneway bool
}

// Chain builds a pipelined batch of calls: every call is written back to
// back before any reply is read, then replies are consumed in the same
// order the calls were sent (spec.md 4.F, "pipelining"). A Chain is single
// use; call Send once, then drain replies in call order with ReceiveReply
// (or NewReplyStream for a More=true call) on the matching ReadConnection.
// Chain itself never reads from a ReadConnection.
type Chain struct {
	wc      *WriteConnection
	entries []chainEntry
	sent    bool
}

// NewChain starts a pipeline over wc.
func NewChain(wc *WriteConnection) *Chain {
	return &Chain{wc: wc}
}

// AppendCall queues call for sending. It returns ch, so calls can be
// nested: AppendCall(AppendCall(ch, a), b).Send().
func AppendCall[P any](ch *Chain, call Call[P]) *Chain {
	ch.entries = append(ch.entries, chainEntry{
		write: func(wc *WriteConnection) error {
			return SendCall(wc, call)
		},
		more:   call.More,
		oneway: call.Oneway,
	})
	return ch
}

// Send writes every queued call in order. It returns as soon as the first
// write fails; calls after the failing one are not sent. On success, the
// caller reads replies with ReceiveReply, once per non-oneway entry (and,
// for an entry with More=true, until a reply with Continues=false).
func (ch *Chain) Send() error {
	if ch.sent {
		return ErrInvalidArgument
	}
	ch.sent = true
	for _, e := range ch.entries {
		if err := e.write(ch.wc); err != nil {
			return err
		}
	}
	return nil
}

// ExpectedReplies reports how many non-oneway entries are in this chain,
// i.e. how many times the caller should invoke ReceiveReply/ReceiveCall
// against the matching ReadConnection (not counting additional multi-reply
// continuations for More=true entries).
func (ch *Chain) ExpectedReplies() int {
	n := 0
	for _, e := range ch.entries {
		if !e.oneway {
			n++
		}
	}
	return n
}

// ReplyStream reads the (possibly multiple) replies belonging to a single
// More=true call out of rc, stopping after the first reply with
// Continues=false. It is a single-shot, forward-only iterator: callers
// drive it with Next until it returns false, then check Err.
type ReplyStream[P any, E any] struct {
	rc   *ReadConnection
	done bool
	err  error
}

// NewReplyStream begins iterating the replies to a call already sent with
// More=true.
func NewReplyStream[P any, E any](rc *ReadConnection) *ReplyStream[P, E] {
	return &ReplyStream[P, E]{rc: rc}
}

// Next reads the next reply. It returns false once the stream is
// exhausted (the last Continues=false reply was already delivered), once
// an error reply arrives (returned as the second value, which ends the
// stream), or when a transport error occurred; check Err for the latter.
func (s *ReplyStream[P, E]) Next() (Reply[P], *ErrorReply[E], bool) {
	var zero Reply[P]
	if s.done {
		return zero, nil, false
	}
	reply, errReply, err := ReceiveReply[P, E](s.rc)
	if err != nil {
		s.done = true
		s.err = err
		return zero, nil, false
	}
	// The reply has already been decoded into reply/errReply above, so
	// nothing further borrows the receive buffer; release it now so the
	// next Next() call (or any other receive on this connection) isn't
	// rejected with ErrBorrowed.
	s.rc.Release()
	if errReply != nil {
		s.done = true
		return zero, errReply, false
	}
	if !reply.Continues {
		s.done = true
	}
	return *reply, nil, true
}

// Err returns the transport error that ended the stream, if any.
func (s *ReplyStream[P, E]) Err() error { return s.err }
