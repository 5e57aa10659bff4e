// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idl

// Field is one "name: type" member of an object type (a method's
// parameter list, a method's return list, or a named custom struct type).
// Parameter is the same shape under a different name, matching the Rust
// original's type alias.
type Field struct {
	Name     string
	Type     *Type
	Comments []Comment
}

// Parameter is an alias for Field: in the grammar a method's inputs and
// outputs are themselves object-type field lists.
type Parameter = Field

// NewField builds a Field with no attached comments.
func NewField(name string, ty *Type) Field {
	return Field{Name: name, Type: ty}
}
