// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

import (
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Call is the client-to-server envelope: a fully-qualified method name, its
// parameter payload P, and the three optional protocol flags. P plays the
// role spec.md calls "M", the user method representation; since Go structs
// can carry both the method's parameters and be parametrized generically,
// Call[P] flattens the method identity into the same object the flags live
// on without needing a hand-rolled streaming map adapter (see DESIGN.md).
type Call[P any] struct {
	Method     string
	Parameters P
	Oneway     bool
	More       bool
	Upgrade    bool
}

// NewCall builds a Call with all flags absent (false).
func NewCall[P any](method string, params P) Call[P] {
	return Call[P]{Method: method, Parameters: params}
}

// callWire is the literal wire shape; Call's MarshalJSON/UnmarshalJSON only
// adds/strips the zero-params omission, which jsoniter's struct tags can't
// express generically (omitempty doesn't know how to test an arbitrary P
// for "empty").
type callWire[P any] struct {
	Method     string `json:"method"`
	Parameters P      `json:"parameters,omitempty"`
	Oneway     bool   `json:"oneway,omitempty"`
	More       bool   `json:"more,omitempty"`
	Upgrade    bool   `json:"upgrade,omitempty"`
}

// isEmptyParamsType reports whether P is a struct type with no fields (the
// idiomatic "this method takes no parameters" shape). Such values are
// omitted from the wire entirely, matching spec.md scenario 1 ("Basic
// call"), rather than emitted as "{}".
func isEmptyParamsType[P any]() bool {
	var zero P
	t := reflect.TypeOf(zero)
	return t != nil && t.Kind() == reflect.Struct && t.NumField() == 0
}

// MarshalJSON implements json.Marshaler.
func (c Call[P]) MarshalJSON() ([]byte, error) {
	if isEmptyParamsType[P]() {
		type noParams struct {
			Method  string `json:"method"`
			Oneway  bool   `json:"oneway,omitempty"`
			More    bool   `json:"more,omitempty"`
			Upgrade bool   `json:"upgrade,omitempty"`
		}
		return json.Marshal(noParams{Method: c.Method, Oneway: c.Oneway, More: c.More, Upgrade: c.Upgrade})
	}
	return json.Marshal(callWire[P]{
		Method:     c.Method,
		Parameters: c.Parameters,
		Oneway:     c.Oneway,
		More:       c.More,
		Upgrade:    c.Upgrade,
	})
}

// UnmarshalJSON implements json.Unmarshaler. oneway/more/upgrade are
// stripped into the flag fields, "method" fills Method, and only the value
// of "parameters" is handed to P's own unmarshaling; other keys are ignored.
func (c *Call[P]) UnmarshalJSON(data []byte) error {
	var w callWire[P]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = Call[P](w)
	return nil
}
