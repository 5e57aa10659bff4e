// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

import "net"

// ReadHalf is the read side of a split Socket. Read may return
// ErrWouldBlock or ErrMore as control-flow signals on non-blocking
// transports; any returned byte count still represents real, non-duplicated
// progress.
type ReadHalf interface {
	Read(p []byte) (int, error)
}

// WriteHalf is the write side of a split Socket. Write must honor the
// io.Writer short-write contract; like ReadHalf it may surface
// ErrWouldBlock or ErrMore.
type WriteHalf interface {
	Write(p []byte) (int, error)
}

// Socket is a duplex byte-stream transport that can be split into
// independently driven halves. Implementations are expected to be backed by
// a stream socket (typically Unix domain), but any duplex byte stream
// (net.Conn, net.Pipe, an in-memory pipe) works.
type Socket interface {
	// Split consumes the socket and returns two independent handles. The
	// halves may be driven concurrently from separate goroutines; they
	// share no state.
	Split() (ReadHalf, WriteHalf)

	// Close closes the underlying transport. Calling Close concurrently
	// with an in-flight Read/Write unblocks it with an error, matching
	// net.Conn's documented behavior.
	Close() error
}

// netConnSocket adapts a net.Conn (TCP, Unix domain, or any other
// net.Conn-compatible transport) to Socket.
type netConnSocket struct {
	conn net.Conn
}

// NewSocket wraps conn as a Socket. This is the default transport binding;
// the core itself is transport-agnostic (see Socket), but nearly every
// caller starts from a net.Conn (typically net.Dial("unix", path) or an
// Accept()-ed connection).
func NewSocket(conn net.Conn) Socket {
	return &netConnSocket{conn: conn}
}

func (s *netConnSocket) Split() (ReadHalf, WriteHalf) {
	return s.conn, s.conn
}

func (s *netConnSocket) Close() error {
	return s.conn.Close()
}
