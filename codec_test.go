// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// scriptedReader returns each chunk in order on successive Read calls,
// simulating a transport that delivers bytes in arbitrary-sized pieces.
type scriptedReader struct {
	chunks [][]byte
	idx    int
}

func (r *scriptedReader) Read(p []byte) (int, error) {
	if r.idx >= len(r.chunks) {
		return 0, io.EOF
	}
	c := r.chunks[r.idx]
	r.idx++
	n := copy(p, c)
	return n, nil
}

// wouldBlockWriter fails the first N writes with ErrWouldBlock (with zero
// progress), then succeeds.
type wouldBlockWriter struct {
	buf       bytes.Buffer
	blockLeft int
}

func (w *wouldBlockWriter) Write(p []byte) (int, error) {
	if w.blockLeft > 0 {
		w.blockLeft--
		return 0, ErrWouldBlock
	}
	return w.buf.Write(p)
}

func TestReadFrameSingle(t *testing.T) {
	rd := &scriptedReader{chunks: [][]byte{[]byte(`{"method":"org.example.Ping"}` + "\x00")}}
	c := newFrameCodec(rd, nil, 256)

	frame, err := c.readFrame()
	if err != nil {
		t.Fatalf("readFrame: %v", err)
	}
	want := `{"method":"org.example.Ping"}`
	if string(frame) != want {
		t.Fatalf("got %q want %q", frame, want)
	}
}

func TestReadFrameAcrossChunks(t *testing.T) {
	rd := &scriptedReader{chunks: [][]byte{
		[]byte(`{"method":"org.exam`),
		[]byte(`ple.Ping"}` + "\x00"),
	}}
	c := newFrameCodec(rd, nil, 256)

	frame, err := c.readFrame()
	if err != nil {
		t.Fatalf("readFrame: %v", err)
	}
	want := `{"method":"org.example.Ping"}`
	if string(frame) != want {
		t.Fatalf("got %q want %q", frame, want)
	}
}

func TestReadFrameBatched(t *testing.T) {
	rd := &scriptedReader{chunks: [][]byte{
		[]byte(`{"method":"a"}` + "\x00" + `{"method":"b"}` + "\x00"),
	}}
	c := newFrameCodec(rd, nil, 256)

	f1, err := c.readFrame()
	if err != nil {
		t.Fatalf("readFrame 1: %v", err)
	}
	if string(f1) != `{"method":"a"}` {
		t.Fatalf("got %q", f1)
	}

	f2, err := c.readFrame()
	if err != nil {
		t.Fatalf("readFrame 2: %v", err)
	}
	if string(f2) != `{"method":"b"}` {
		t.Fatalf("got %q", f2)
	}
}

func TestReadFrameBufferOverflow(t *testing.T) {
	rd := &scriptedReader{chunks: [][]byte{bytes.Repeat([]byte("a"), 32)}}
	c := newFrameCodec(rd, nil, 16)

	_, err := c.readFrame()
	var overflow *BufferOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("expected *BufferOverflowError, got %v", err)
	}
}

func TestWriteFrameResumesAfterWouldBlock(t *testing.T) {
	w := &wouldBlockWriter{blockLeft: 2}
	c := newFrameCodec(nil, w, 64)
	c.retryDelay = -1 // nonblocking: fail fast instead of spinning

	payload := []byte(`{"method":"org.example.Ping"}`)

	err := c.writeFrame(payload)
	if !errors.Is(err, ErrWouldBlock) {
		t.Fatalf("expected ErrWouldBlock on first attempt, got %v", err)
	}
	err = c.writeFrame(payload)
	if !errors.Is(err, ErrWouldBlock) {
		t.Fatalf("expected ErrWouldBlock on second attempt, got %v", err)
	}
	if err := c.writeFrame(payload); err != nil {
		t.Fatalf("expected success on third attempt, got %v", err)
	}

	want := string(payload) + "\x00"
	if w.buf.String() != want {
		t.Fatalf("got %q want %q (duplicated or missing bytes)", w.buf.String(), want)
	}
}

func TestWriteFrameBufferOverflow(t *testing.T) {
	w := &wouldBlockWriter{}
	c := newFrameCodec(nil, w, 4)

	err := c.writeFrame([]byte("way too long for four bytes"))
	var overflow *BufferOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("expected *BufferOverflowError, got %v", err)
	}
	if overflow.Fatal {
		t.Fatalf("write overflow should not be fatal (caller can retry with backpressure relieved elsewhere)")
	}
}
