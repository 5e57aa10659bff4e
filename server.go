// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

import (
	"context"
	stdjson "encoding/json"
	"errors"
	"log"
	"net"

	"golang.org/x/sync/semaphore"
)

// RawParameters is the undecoded "parameters" object of an incoming call.
// Handlers decode it into their method's concrete parameter type once the
// method name has been dispatched on.
type RawParameters = stdjson.RawMessage

// ServerCall represents one in-flight method invocation on the server
// side. A Handler must eventually close it with exactly one of Reply,
// ReplyLast, or Fail (on a More=true call, any number of ReplyMore calls
// may come first), unless the call was made with Oneway=true (in which
// case the framework never writes a reply regardless of what the handler
// does).
type ServerCall struct {
	wc     *WriteConnection
	req    Call[RawParameters]
	closed bool
}

// NewServerCall builds a ServerCall directly from a received call and the
// connection to reply on. Server.serveConn uses this internally after
// ReceiveCall; composed handlers (e.g. a dispatcher that tries several
// Handlers in turn) and tests that want to drive a Handler without a full
// Server/Serve loop can use it too.
func NewServerCall(wc *WriteConnection, req Call[RawParameters]) *ServerCall {
	return &ServerCall{wc: wc, req: req}
}

// Method is the fully qualified method name being invoked.
func (c *ServerCall) Method() string { return c.req.Method }

// Parameters returns the call's undecoded parameter object.
func (c *ServerCall) Parameters() RawParameters { return c.req.Parameters }

// WantsMore reports whether the caller requested a multi-reply exchange.
func (c *ServerCall) WantsMore() bool { return c.req.More }

// IsOneway reports whether the caller asked for no reply at all.
func (c *ServerCall) IsOneway() bool { return c.req.Oneway }

// Reply sends a single, final successful reply. It is an error to call
// Reply on a call with WantsMore true followed by anything other than
// treating this as the (only) final reply; use ReplyMore/ReplyLast for a
// streaming exchange instead.
func (c *ServerCall) Reply(params any) error {
	if c.closed {
		return ErrCloseWithReplyNotCalled
	}
	c.closed = true
	if c.req.Oneway {
		return nil
	}
	return SendReply(c.wc, Reply[any]{Parameters: params})
}

// ReplyMore sends one reply in a multi-reply exchange, with Continues=true.
// The call must have been made with More=true; ReplyMore may be invoked any
// number of times before a final ReplyLast.
func (c *ServerCall) ReplyMore(params any) error {
	if c.closed {
		return ErrCloseWithReplyNotCalled
	}
	if !c.req.More {
		return ErrExpectedMore
	}
	if c.req.Oneway {
		return nil
	}
	return SendReply(c.wc, Reply[any]{Parameters: params, Continues: true})
}

// ReplyLast sends the final reply of a multi-reply exchange, with
// Continues=false, and closes the call.
func (c *ServerCall) ReplyLast(params any) error {
	if c.closed {
		return ErrCloseWithReplyNotCalled
	}
	c.closed = true
	if !c.req.More {
		return ErrExpectedMore
	}
	if c.req.Oneway {
		return nil
	}
	return SendReply(c.wc, Reply[any]{Parameters: params, Continues: false})
}

// Fail sends an error reply identified by name, with the given error
// parameters, and closes the call.
func (c *ServerCall) Fail(name string, params any) error {
	if c.closed {
		return ErrCloseWithReplyNotCalled
	}
	c.closed = true
	if c.req.Oneway {
		return nil
	}
	return SendError(c.wc, ErrorReply[any]{Name: name, Parameters: params})
}

// Handler dispatches one method call. Implementations type-switch on
// call.Method() and decode call.Parameters() into the method's concrete
// parameter struct before replying.
type Handler interface {
	HandleVarlink(ctx context.Context, call *ServerCall) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(ctx context.Context, call *ServerCall) error

func (f HandlerFunc) HandleVarlink(ctx context.Context, call *ServerCall) error {
	return f(ctx, call)
}

// Server accepts connections on a listener and dispatches each call on each
// connection to Handler, one connection per goroutine (mirroring the
// accept-loop shape of a typical Unix-socket daemon), bounded to
// MaxConnections concurrently active connections via a weighted semaphore.
type Server struct {
	Handler Handler
	Options Options

	// ErrorLog receives per-connection errors that aren't protocol
	// violations worth terminating the whole listener over. Defaults to
	// the standard logger if nil.
	ErrorLog *log.Logger

	sem *semaphore.Weighted
}

// NewServer constructs a Server with the given handler and options.
func NewServer(h Handler, opts ...Option) *Server {
	o := newOptions(opts...)
	return &Server{
		Handler: h,
		Options: o,
		sem:     semaphore.NewWeighted(int64(o.MaxConnections)),
	}
}

func (s *Server) logf(format string, args ...any) {
	if s.ErrorLog != nil {
		s.ErrorLog.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Serve accepts connections from ln until ctx is canceled or Accept returns
// a permanent error. Each accepted connection is handled in its own
// goroutine, admitted only once a semaphore slot is available, so a burst
// of connection attempts past MaxConnections blocks in Accept's caller
// rather than spawning unbounded goroutines.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			return err
		}

		conn, err := ln.Accept()
		if err != nil {
			s.sem.Release(1)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Temporary() {
				continue
			}
			return err
		}

		go func() {
			defer s.sem.Release(1)
			defer conn.Close()
			s.serveConn(ctx, conn)
		}()
	}
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	sock := NewSocket(conn)
	rh, wh := sock.Split()
	rc := NewReadConnection(rh, WithBufferSize(s.Options.BufferSize))
	wc := NewWriteConnection(wh, WithBufferSize(s.Options.BufferSize))

	for {
		if ctx.Err() != nil {
			return
		}

		call, err := ReceiveCall[RawParameters](rc)
		if err != nil {
			if !errors.Is(err, ErrWouldBlock) {
				return
			}
			continue
		}
		rc.Release()

		sc := &ServerCall{wc: wc, req: call}
		if err := s.Handler.HandleVarlink(ctx, sc); err != nil {
			s.logf("varlink: handler error for %s: %v", call.Method, err)
			if !sc.closed && !call.Oneway {
				_ = sc.Fail("org.varlink.service.MethodNotImplemented", struct {
					Method string `json:"method"`
				}{Method: call.Method})
			}
			continue
		}
		if !sc.closed && !call.Oneway {
			s.logf("varlink: handler for %s returned without replying", call.Method)
			return
		}
	}
}
