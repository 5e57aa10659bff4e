// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idl

// MemberKind discriminates which of Method, CustomType, or ErrorDef a
// Member wraps.
type MemberKind int

const (
	MemberMethod MemberKind = iota
	MemberCustomType
	MemberError
)

// Member is one top-level declaration inside an interface block: a
// method, a named custom type, or an error. Exactly one of the typed
// fields is populated, matching Kind.
type Member struct {
	Kind       MemberKind
	Method     Method
	CustomType CustomType
	Error      ErrorDef
}

func MethodMember(m Method) Member           { return Member{Kind: MemberMethod, Method: m} }
func CustomTypeMember(ct CustomType) Member  { return Member{Kind: MemberCustomType, CustomType: ct} }
func ErrorMember(e ErrorDef) Member          { return Member{Kind: MemberError, Error: e} }

// Name returns the declared identifier regardless of which kind this
// member is.
func (m Member) Name() string {
	switch m.Kind {
	case MemberMethod:
		return m.Method.Name
	case MemberCustomType:
		return m.CustomType.Name
	case MemberError:
		return m.Error.Name
	default:
		return ""
	}
}
