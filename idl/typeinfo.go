// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idl

import "reflect"

// TypeInfo is implemented by a Go type that knows its own Varlink IDL
// shape. Rust's original expresses this as an associated const
// (TYPE_INFO) resolved entirely at compile time; Go has no const of
// pointer-to-struct type, so here it is a method, and the package-level
// TypeOf function supplies the blanket behavior for primitives, pointers,
// slices, and maps without requiring every type to implement the
// interface by hand.
type TypeInfo interface {
	VarlinkTypeInfo() *Type
}

// TypeOf derives the Type for T: if T implements TypeInfo directly, its
// method is used; otherwise TypeOf falls back to structural inference for
// bool/numeric/string/pointer/slice/map shapes, mirroring the Rust
// original's blanket impls for Option<T>/Vec<T>/&[T].
func TypeOf[T any]() *Type {
	var zero T
	if ti, ok := any(zero).(TypeInfo); ok {
		return ti.VarlinkTypeInfo()
	}
	return typeOfReflect(reflect.TypeOf(zero))
}

func typeOfReflect(rt reflect.Type) *Type {
	if rt == nil {
		// an untyped nil, e.g. T = any: the most permissive shape.
		return Object
	}
	switch rt.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.String:
		return String
	case reflect.Ptr:
		return Optional(typeOfReflect(rt.Elem()))
	case reflect.Slice, reflect.Array:
		return Array(typeOfReflect(rt.Elem()))
	case reflect.Map:
		return Map(typeOfReflect(rt.Elem()))
	case reflect.Struct:
		if rt.NumField() == 0 {
			return Object
		}
		fields := make([]Field, 0, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			fields = append(fields, Field{Name: jsonFieldName(sf), Type: typeOfReflect(sf.Type)})
		}
		return AnonymousObject(fields)
	default:
		return Object
	}
}

func jsonFieldName(sf reflect.StructField) string {
	tag, ok := sf.Tag.Lookup("json")
	if !ok || tag == "" {
		return sf.Name
	}
	name := tag
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			name = tag[:i]
			break
		}
	}
	if name == "" {
		return sf.Name
	}
	return name
}
