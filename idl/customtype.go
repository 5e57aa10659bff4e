// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idl

// CustomType is a named "type Name (...)" object declaration or a
// "type Name (variant, ...)" enum declaration. Exactly one of Fields or
// Variants is populated, discriminated by IsEnum.
type CustomType struct {
	Name     string
	IsEnum   bool
	Fields   []Field  // object form
	Variants []string // enum form
	Comments []Comment
}

// NewObjectType builds a named struct-shaped custom type.
func NewObjectType(name string, fields []Field) CustomType {
	return CustomType{Name: name, Fields: fields}
}

// NewEnumType builds a named enum custom type. Varlink enum variants are
// unit-only (no associated data); the parser enforces this, since an
// entry followed by ":" makes it parse the declaration as an object.
func NewEnumType(name string, variants []string) CustomType {
	return CustomType{Name: name, IsEnum: true, Variants: variants}
}

// AsType returns the Type value referencing this custom type by name, for
// use as a field's type elsewhere in the same interface.
func (ct CustomType) AsType() *Type {
	return Custom(ct.Name)
}
