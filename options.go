// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

import "time"

// DefaultBufferSize is the frame buffer capacity used when no positive
// BufferSize is configured. A single frame (call or reply) must fit within
// the configured capacity.
const DefaultBufferSize = 8 * 1024

// DefaultMaxConnections bounds the number of connections a Server drives
// concurrently.
const DefaultMaxConnections = 16

// Options configures a connection pair or a Server.
type Options struct {
	// BufferSize is the fixed capacity of the read and write frame buffers,
	// in bytes. Must be at least 4KiB; newOptions does not reject smaller
	// positive values. Zero or negative means DefaultBufferSize.
	BufferSize int

	// RetryDelay controls how the codec handles ErrWouldBlock from the
	// underlying socket half:
	//   - negative: nonblocking, return ErrWouldBlock immediately
	//   - zero: cooperative yield (runtime.Gosched) and retry
	//   - positive: sleep for the duration and retry
	RetryDelay time.Duration

	// MaxConnections bounds the number of connections a Server drives
	// concurrently. Zero means DefaultMaxConnections.
	MaxConnections int
}

var defaultOptions = Options{
	BufferSize:     DefaultBufferSize,
	RetryDelay:     0,
	MaxConnections: DefaultMaxConnections,
}

// Option configures Options.
type Option func(*Options)

func newOptions(opts ...Option) Options {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	if o.BufferSize <= 0 {
		o.BufferSize = DefaultBufferSize
	}
	if o.MaxConnections <= 0 {
		o.MaxConnections = DefaultMaxConnections
	}
	return o
}

// WithBufferSize sets the fixed read/write buffer capacity.
func WithBufferSize(size int) Option {
	return func(o *Options) { o.BufferSize = size }
}

// WithRetryDelay sets the retry/wait policy used when a socket half returns
// ErrWouldBlock.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on ErrWouldBlock.
func WithBlock() Option {
	return func(o *Options) { o.RetryDelay = 0 }
}

// WithNonblock forces non-blocking behavior: ErrWouldBlock is returned to
// the caller immediately instead of being retried internally.
func WithNonblock() Option {
	return func(o *Options) { o.RetryDelay = -1 }
}

// WithMaxConnections bounds how many connections a Server drives
// concurrently.
func WithMaxConnections(n int) Option {
	return func(o *Options) { o.MaxConnections = n }
}
