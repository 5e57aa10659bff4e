// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idl

// ReplyErrors enumerates the fully-qualified error names a method's reply
// may carry, alongside each one's field shape, so generated client/server
// bindings can exhaustively type-switch on them. It plays the same role
// as the Rust original's ReplyErrors associated type: a closed set known
// at the point a method is declared, rather than any error registered
// anywhere in the process.
type ReplyErrors struct {
	Errors []ErrorDef
}

// Lookup finds the ErrorDef for a fully-qualified error name, if it is one
// of this method's declared reply errors.
func (re ReplyErrors) Lookup(name string) (ErrorDef, bool) {
	for _, e := range re.Errors {
		if e.Name == name {
			return e, true
		}
	}
	return ErrorDef{}, false
}
