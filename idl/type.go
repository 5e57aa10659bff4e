// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package idl models the Varlink interface definition language: the type
// grammar, method/error/custom-type declarations an interface is made of,
// a recursive-descent parser from source text, and a canonical re-emission
// formatter.
package idl

// Kind discriminates the leaves and compound forms of the Type grammar.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindObject
	KindOptional
	KindArray
	KindMap
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindOptional:
		return "optional"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Type is the Varlink IDL type grammar: the eight primitive/compound forms
// plus a named reference to a custom type declared elsewhere in the
// interface. Optional, Array, and Map wrap an inner Type via Elem; Custom
// carries the referenced type's name in CustomName.
type Type struct {
	Kind       Kind
	Elem       *Type  // set for KindOptional, KindArray, KindMap
	CustomName string // set for KindCustom
	Fields     []Field
}

var (
	Bool   = &Type{Kind: KindBool}
	Int    = &Type{Kind: KindInt}
	Float  = &Type{Kind: KindFloat}
	String = &Type{Kind: KindString}
	Object = &Type{Kind: KindObject}
)

// Optional builds the "?T" optional-type wrapper.
func Optional(elem *Type) *Type { return &Type{Kind: KindOptional, Elem: elem} }

// Array builds the "[]T" array-type wrapper.
func Array(elem *Type) *Type { return &Type{Kind: KindArray, Elem: elem} }

// Map builds the "[string]T" map-type wrapper; Varlink maps are always
// string-keyed.
func Map(elem *Type) *Type { return &Type{Kind: KindMap, Elem: elem} }

// Custom builds a reference to a named custom type (struct/enum) declared
// elsewhere in the interface.
func Custom(name string) *Type { return &Type{Kind: KindCustom, CustomName: name} }

// AnonymousObject builds an inline "(field: type, ...)" object type, as
// opposed to a named CustomType declared with its own "type Name (...)".
func AnonymousObject(fields []Field) *Type {
	return &Type{Kind: KindObject, Fields: fields}
}

// Equal reports whether t and other describe the same type, recursively.
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindOptional, KindArray, KindMap:
		return t.Elem.Equal(other.Elem)
	case KindCustom:
		return t.CustomName == other.CustomName
	case KindObject:
		if len(t.Fields) != len(other.Fields) {
			return false
		}
		for i := range t.Fields {
			if t.Fields[i].Name != other.Fields[i].Name || !t.Fields[i].Type.Equal(other.Fields[i].Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
