// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idl

import "testing"

const sampleSource = `
interface org.example.more

# Says hello to name.
method Ping(name: string) -> (reply: string)

type State (
	up, down
)

type Point (
	x: int,
	y: int
)

method Watch(id: string, limit: ?int) -> (points: []Point, tags: [string]string)

error NotFound (id: string)
`

func TestParseInterfaceName(t *testing.T) {
	iface, err := Parse(sampleSource)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if iface.Name != "org.example.more" {
		t.Fatalf("got name %q", iface.Name)
	}
}

func TestParseMethodWithComment(t *testing.T) {
	iface, err := Parse(sampleSource)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m, ok := iface.Method("Ping")
	if !ok {
		t.Fatal("Ping method not found")
	}
	if len(m.Comments) != 1 || m.Comments[0].Text != "Says hello to name." {
		t.Fatalf("got comments %+v", m.Comments)
	}
	if len(m.Inputs) != 1 || m.Inputs[0].Name != "name" || m.Inputs[0].Type.Kind != KindString {
		t.Fatalf("got inputs %+v", m.Inputs)
	}
	if len(m.Outputs) != 1 || m.Outputs[0].Name != "reply" {
		t.Fatalf("got outputs %+v", m.Outputs)
	}
}

func TestParseEnumType(t *testing.T) {
	iface, err := Parse(sampleSource)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var state CustomType
	found := false
	for _, ct := range iface.CustomTypes() {
		if ct.Name == "State" {
			state = ct
			found = true
		}
	}
	if !found {
		t.Fatal("State type not found")
	}
	if !state.IsEnum || len(state.Variants) != 2 || state.Variants[0] != "up" || state.Variants[1] != "down" {
		t.Fatalf("got %+v", state)
	}
}

func TestParseObjectTypeAndNestedTypes(t *testing.T) {
	iface, err := Parse(sampleSource)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m, ok := iface.Method("Watch")
	if !ok {
		t.Fatal("Watch method not found")
	}
	if m.Inputs[1].Type.Kind != KindOptional || m.Inputs[1].Type.Elem.Kind != KindInt {
		t.Fatalf("got limit type %+v", m.Inputs[1].Type)
	}
	if m.Outputs[0].Type.Kind != KindArray || m.Outputs[0].Type.Elem.Kind != KindCustom || m.Outputs[0].Type.Elem.CustomName != "Point" {
		t.Fatalf("got points type %+v", m.Outputs[0].Type)
	}
	if m.Outputs[1].Type.Kind != KindMap || m.Outputs[1].Type.Elem.Kind != KindString {
		t.Fatalf("got tags type %+v", m.Outputs[1].Type)
	}
}

func TestParseErrorDef(t *testing.T) {
	iface, err := Parse(sampleSource)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	errs := iface.Errors()
	if len(errs) != 1 || errs[0].Name != "NotFound" {
		t.Fatalf("got errors %+v", errs)
	}
	if len(errs[0].Fields) != 1 || errs[0].Fields[0].Name != "id" {
		t.Fatalf("got fields %+v", errs[0].Fields)
	}
}

func TestParseRejectsMalformedInterface(t *testing.T) {
	_, err := Parse("not an interface at all")
	if err == nil {
		t.Fatal("expected a parse error")
	}
}
