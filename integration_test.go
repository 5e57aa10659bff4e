// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

import (
	"net"
	"testing"
)

func TestSendReceiveCallRoundTrip(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	wc := NewWriteConnection(clientConn)
	rc := NewReadConnection(serverConn)

	done := make(chan error, 1)
	go func() {
		done <- SendCall(wc, NewCall("org.example.Echo", echoParams{Text: "hi"}))
	}()

	call, err := ReceiveCall[echoParams](rc)
	if err != nil {
		t.Fatalf("ReceiveCall: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("SendCall: %v", err)
	}

	if call.Method != "org.example.Echo" || call.Parameters.Text != "hi" {
		t.Fatalf("got %+v", call)
	}
}

func TestSendReceiveReplyRoundTrip(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	wc := NewWriteConnection(serverConn)
	rc := NewReadConnection(clientConn)

	done := make(chan error, 1)
	go func() {
		done <- SendReply(wc, Reply[echoParams]{Parameters: echoParams{Text: "pong"}})
	}()

	reply, errReply, err := ReceiveReply[echoParams, pingParams](rc)
	if err != nil {
		t.Fatalf("ReceiveReply: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("SendReply: %v", err)
	}
	if errReply != nil {
		t.Fatalf("unexpected error reply: %+v", errReply)
	}
	if reply.Parameters.Text != "pong" {
		t.Fatalf("got %+v", reply)
	}
}

func TestReceiveRejectsReentrantReceiveBeforeRelease(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	wc := NewWriteConnection(clientConn)
	rc := NewReadConnection(serverConn)

	go SendCall(wc, NewCall("org.example.Echo", echoParams{Text: "hi"}))

	if _, err := ReceiveCall[echoParams](rc); err != nil {
		t.Fatalf("ReceiveCall: %v", err)
	}
	if _, err := ReceiveCall[echoParams](rc); err != ErrBorrowed {
		t.Fatalf("expected ErrBorrowed, got %v", err)
	}

	rc.Release()

	go SendCall(wc, NewCall("org.example.Echo", echoParams{Text: "again"}))
	if _, err := ReceiveCall[echoParams](rc); err != nil {
		t.Fatalf("ReceiveCall after Release: %v", err)
	}
}

func TestChainPipelinesMultipleCallsInOrder(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	wc := NewWriteConnection(clientConn)
	rc := NewReadConnection(serverConn)

	ch := NewChain(wc)
	AppendCall(ch, NewCall("org.example.Echo", echoParams{Text: "one"}))
	AppendCall(ch, NewCall("org.example.Echo", echoParams{Text: "two"}))

	done := make(chan error, 1)
	go func() { done <- ch.Send() }()

	first, err := ReceiveCall[echoParams](rc)
	if err != nil {
		t.Fatalf("first ReceiveCall: %v", err)
	}
	rc.Release()
	second, err := ReceiveCall[echoParams](rc)
	if err != nil {
		t.Fatalf("second ReceiveCall: %v", err)
	}

	if err := <-done; err != nil {
		t.Fatalf("Chain.Send: %v", err)
	}
	if first.Parameters.Text != "one" || second.Parameters.Text != "two" {
		t.Fatalf("got %q then %q, expected pipelined order one, two", first.Parameters.Text, second.Parameters.Text)
	}
	if got := ch.ExpectedReplies(); got != 2 {
		t.Fatalf("ExpectedReplies() = %d, want 2", got)
	}
}

func TestReplyStreamStopsAtContinuesFalse(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	wc := NewWriteConnection(serverConn)
	rc := NewReadConnection(clientConn)

	go func() {
		_ = SendReply(wc, Reply[echoParams]{Parameters: echoParams{Text: "1"}, Continues: true})
		_ = SendReply(wc, Reply[echoParams]{Parameters: echoParams{Text: "2"}, Continues: true})
		_ = SendReply(wc, Reply[echoParams]{Parameters: echoParams{Text: "3"}, Continues: false})
	}()

	stream := NewReplyStream[echoParams, pingParams](rc)
	var got []string
	for {
		reply, errReply, ok := stream.Next()
		if errReply != nil {
			t.Fatalf("unexpected error reply: %+v", errReply)
		}
		if !ok {
			break
		}
		got = append(got, reply.Parameters.Text)
	}
	if err := stream.Err(); err != nil {
		t.Fatalf("stream.Err(): %v", err)
	}
	if len(got) != 3 || got[0] != "1" || got[1] != "2" || got[2] != "3" {
		t.Fatalf("got %v", got)
	}
}
