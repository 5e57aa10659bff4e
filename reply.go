// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

import "fmt"

// Reply is a successful server-to-client envelope. Continues signals
// another reply will follow for the same call; it is only meaningful for
// calls sent with More=true.
type Reply[P any] struct {
	Parameters P
	Continues  bool
}

type replyWire[P any] struct {
	Parameters P    `json:"parameters,omitempty"`
	Continues  bool `json:"continues,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r Reply[P]) MarshalJSON() ([]byte, error) {
	if isEmptyParamsType[P]() {
		type noParams struct {
			Continues bool `json:"continues,omitempty"`
		}
		return json.Marshal(noParams{Continues: r.Continues})
	}
	return json.Marshal(replyWire[P]{Parameters: r.Parameters, Continues: r.Continues})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Reply[P]) UnmarshalJSON(data []byte) error {
	var w replyWire[P]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = Reply[P](w)
	return nil
}

// ErrorReply is the error-shaped server-to-client envelope: a fully
// qualified error name plus its parameter payload.
type ErrorReply[E any] struct {
	Name       string
	Parameters E
}

type errorReplyWire[E any] struct {
	Name       string `json:"error"`
	Parameters E      `json:"parameters,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e ErrorReply[E]) MarshalJSON() ([]byte, error) {
	if isEmptyParamsType[E]() {
		type noParams struct {
			Name string `json:"error"`
		}
		return json.Marshal(noParams{Name: e.Name})
	}
	return json.Marshal(errorReplyWire[E]{Name: e.Name, Parameters: e.Parameters})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *ErrorReply[E]) UnmarshalJSON(data []byte) error {
	var w errorReplyWire[E]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*e = ErrorReply[E](w)
	return nil
}

// Error implements the error interface so ErrorReply can be used as a Go
// error and recognized with errors.As by callers that don't need the typed
// Parameters. A Handler that returns one from HandleVarlink does not have
// it sent to the peer: the server loop replies with
// org.varlink.service.MethodNotImplemented instead, unless the call was
// already closed.
func (e *ErrorReply[E]) Error() string {
	return fmt.Sprintf("varlink: %s", e.Name)
}

// replyDiscriminator is used to peek a raw frame and decide whether it is a
// success Reply or an ErrorReply without re-reading the frame, per spec.md
// 4.C ("the reply discriminator is a single field name, not a tag").
type replyDiscriminator struct {
	Error string `json:"error"`
}

func isErrorReply(frame []byte) (bool, error) {
	var d replyDiscriminator
	if err := json.Unmarshal(frame, &d); err != nil {
		return false, err
	}
	return d.Error != "", nil
}
