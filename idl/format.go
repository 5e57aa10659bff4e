// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idl

import "strings"

// String renders t in canonical Varlink IDL syntax.
func (t *Type) String() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindObject:
		if len(t.Fields) == 0 {
			return "object"
		}
		return "(" + joinFields(t.Fields) + ")"
	case KindOptional:
		return "?" + t.Elem.String()
	case KindArray:
		return "[]" + t.Elem.String()
	case KindMap:
		return "[string]" + t.Elem.String()
	case KindCustom:
		return t.CustomName
	default:
		return "?"
	}
}

func joinFields(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}

// String renders f as "name: type".
func (f Field) String() string {
	return f.Name + ": " + f.Type.String()
}

// String renders m as "method Name(inputs) -> (outputs)".
func (m Method) String() string {
	return "method " + m.Name + "(" + joinFields(m.Inputs) + ") -> (" + joinFields(m.Outputs) + ")"
}

// String renders ct as "type Name (...)", in object or enum form.
func (ct CustomType) String() string {
	if ct.IsEnum {
		return "type " + ct.Name + " (" + strings.Join(ct.Variants, ", ") + ")"
	}
	return "type " + ct.Name + " (" + joinFields(ct.Fields) + ")"
}

// String renders e as "error Name (fields)".
func (e ErrorDef) String() string {
	return "error " + e.Name + " (" + joinFields(e.Fields) + ")"
}

// String renders m according to its underlying kind.
func (m Member) String() string {
	switch m.Kind {
	case MemberMethod:
		return m.Method.String()
	case MemberCustomType:
		return m.CustomType.String()
	case MemberError:
		return m.Error.String()
	default:
		return ""
	}
}

// String renders the interface in canonical re-emission form: the
// "interface name" header followed by one member declaration per line, in
// declaration order, with no blank lines between members — matching the
// byte-for-byte canonical form scenario 6 requires (parse(text) then
// format == canonical(text)).
func (i Interface) String() string {
	var b strings.Builder
	b.WriteString("interface ")
	b.WriteString(i.Name)
	b.WriteString("\n")
	for _, m := range i.Members {
		for _, c := range memberComments(m) {
			b.WriteString("# ")
			b.WriteString(c.Text)
			b.WriteString("\n")
		}
		b.WriteString(m.String())
		b.WriteString("\n")
	}
	return b.String()
}

func memberComments(m Member) []Comment {
	switch m.Kind {
	case MemberMethod:
		return m.Method.Comments
	case MemberCustomType:
		return m.CustomType.Comments
	case MemberError:
		return m.Error.Comments
	default:
		return nil
	}
}
