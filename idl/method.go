// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idl

// Method is a "method Name(inputs) -> (outputs)" declaration.
type Method struct {
	Name     string
	Inputs   []Parameter
	Outputs  []Parameter
	Comments []Comment
}

// NewMethod builds a Method with no attached comments.
func NewMethod(name string, inputs, outputs []Parameter) Method {
	return Method{Name: name, Inputs: inputs, Outputs: outputs}
}

// HasNoInputs reports whether the method takes an empty parameter object.
func (m Method) HasNoInputs() bool { return len(m.Inputs) == 0 }

// HasNoOutputs reports whether the method returns an empty parameter
// object.
func (m Method) HasNoOutputs() bool { return len(m.Outputs) == 0 }
