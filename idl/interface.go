// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idl

// Interface is a parsed "interface reverse.dns.name" declaration and the
// member declarations that follow it: its fully qualified name plus the
// ordered list of methods, custom types, and errors it declares.
type Interface struct {
	Name     string
	Members  []Member
	Comments []Comment
}

// Methods returns the interface's method members, in declaration order.
func (i Interface) Methods() []Method {
	var out []Method
	for _, m := range i.Members {
		if m.Kind == MemberMethod {
			out = append(out, m.Method)
		}
	}
	return out
}

// CustomTypes returns the interface's named custom-type members, in
// declaration order.
func (i Interface) CustomTypes() []CustomType {
	var out []CustomType
	for _, m := range i.Members {
		if m.Kind == MemberCustomType {
			out = append(out, m.CustomType)
		}
	}
	return out
}

// Errors returns the interface's error members, in declaration order.
func (i Interface) Errors() []ErrorDef {
	var out []ErrorDef
	for _, m := range i.Members {
		if m.Kind == MemberError {
			out = append(out, m.Error)
		}
	}
	return out
}

// Method looks up a method by name.
func (i Interface) Method(name string) (Method, bool) {
	for _, m := range i.Methods() {
		if m.Name == name {
			return m, true
		}
	}
	return Method{}, false
}
