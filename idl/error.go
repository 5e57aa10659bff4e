// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idl

// ErrorDef is an "error Name (fields)" declaration. Named ErrorDef rather
// than Error to avoid shadowing Go's built-in error interface in code that
// imports this package unqualified.
type ErrorDef struct {
	Name     string
	Fields   []Field
	Comments []Comment
}

// NewErrorDef builds an ErrorDef with no attached comments.
func NewErrorDef(name string, fields []Field) ErrorDef {
	return ErrorDef{Name: name, Fields: fields}
}
