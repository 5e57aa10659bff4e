// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idl

import (
	"fmt"
	"strings"
)

// ParseError reports a syntax error together with the byte offset and
// line it was found at, so a caller can point a user at the offending
// source text.
type ParseError struct {
	Offset int
	Line   int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("idl: %d:%d: %s", e.Line, e.Offset, e.Msg)
}

// parser is a single-pass, byte-cursor recursive-descent parser over
// interface source text. It borrows directly from the input string; no
// Field/Method/CustomType/ErrorDef it produces outlives the string it was
// parsed from needing a copy, since Go strings are themselves immutable
// and safely shared.
type parser struct {
	src  string
	pos  int
	line int
}

// Parse parses one interface declaration from src.
func Parse(src string) (Interface, error) {
	p := &parser{src: src, line: 1}
	return p.parseInterface()
}

func (p *parser) errf(format string, args ...any) error {
	return &ParseError{Offset: p.pos, Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) advance() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
	}
	return c
}

// skipSpaceAndComments advances past whitespace and "#"-prefixed comment
// lines, collecting the comment text (without the "# " prefix) so the
// caller can attach it to the next declaration.
func (p *parser) skipSpaceAndComments() []Comment {
	var comments []Comment
	for !p.eof() {
		c := p.peek()
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			p.advance()
			continue
		}
		if c == '#' {
			start := p.pos
			for !p.eof() && p.peek() != '\n' {
				p.advance()
			}
			text := strings.TrimPrefix(strings.TrimSpace(p.src[start:p.pos]), "#")
			comments = append(comments, Comment{Text: strings.TrimSpace(text)})
			continue
		}
		break
	}
	return comments
}

func (p *parser) skipSpace() {
	for !p.eof() {
		c := p.peek()
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			p.advance()
			continue
		}
		break
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '.'
}

func (p *parser) parseIdent() (string, error) {
	if p.eof() || !isIdentStart(p.peek()) {
		return "", p.errf("expected identifier")
	}
	start := p.pos
	for !p.eof() && isIdentPart(p.peek()) {
		p.advance()
	}
	return p.src[start:p.pos], nil
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.eof() || p.peek() != c {
		return p.errf("expected %q", c)
	}
	p.advance()
	return nil
}

func (p *parser) parseInterface() (Interface, error) {
	comments := p.skipSpaceAndComments()
	if err := p.expectKeyword("interface"); err != nil {
		return Interface{}, err
	}
	p.skipSpace()
	name, err := p.parseIdent()
	if err != nil {
		return Interface{}, err
	}

	iface := Interface{Name: name, Comments: comments}
	for {
		memberComments := p.skipSpaceAndComments()
		if p.eof() {
			break
		}
		member, err := p.parseMember(memberComments)
		if err != nil {
			return Interface{}, err
		}
		iface.Members = append(iface.Members, member)
	}
	return iface, nil
}

func (p *parser) expectKeyword(kw string) error {
	p.skipSpace()
	if !strings.HasPrefix(p.src[p.pos:], kw) {
		return p.errf("expected keyword %q", kw)
	}
	end := p.pos + len(kw)
	if end < len(p.src) && isIdentPart(p.src[end]) {
		return p.errf("expected keyword %q", kw)
	}
	for p.pos < end {
		p.advance()
	}
	return nil
}

func (p *parser) tryKeyword(kw string) bool {
	save := p.pos
	saveLine := p.line
	if p.expectKeyword(kw) == nil {
		return true
	}
	p.pos = save
	p.line = saveLine
	return false
}

func (p *parser) parseMember(comments []Comment) (Member, error) {
	switch {
	case p.tryKeyword("method"):
		m, err := p.parseMethod(comments)
		return MethodMember(m), err
	case p.tryKeyword("type"):
		ct, err := p.parseCustomType(comments)
		return CustomTypeMember(ct), err
	case p.tryKeyword("error"):
		e, err := p.parseErrorDef(comments)
		return ErrorMember(e), err
	default:
		return Member{}, p.errf("expected method, type, or error declaration")
	}
}

func (p *parser) parseMethod(comments []Comment) (Method, error) {
	p.skipSpace()
	name, err := p.parseIdent()
	if err != nil {
		return Method{}, err
	}
	inputs, err := p.parseFieldList()
	if err != nil {
		return Method{}, err
	}
	p.skipSpace()
	if err := p.expectString("->"); err != nil {
		return Method{}, err
	}
	outputs, err := p.parseFieldList()
	if err != nil {
		return Method{}, err
	}
	return Method{Name: name, Inputs: inputs, Outputs: outputs, Comments: comments}, nil
}

func (p *parser) expectString(s string) error {
	p.skipSpace()
	if !strings.HasPrefix(p.src[p.pos:], s) {
		return p.errf("expected %q", s)
	}
	for i := 0; i < len(s); i++ {
		p.advance()
	}
	return nil
}

func (p *parser) parseCustomType(comments []Comment) (CustomType, error) {
	p.skipSpace()
	name, err := p.parseIdent()
	if err != nil {
		return CustomType{}, err
	}
	p.skipSpace()
	if err := p.expect('('); err != nil {
		return CustomType{}, err
	}

	// Disambiguate enum vs object: an enum is a bare comma-separated
	// identifier list with no ": type" after any entry.
	save, saveLine := p.pos, p.line
	if variants, ok := p.tryParseEnumVariants(); ok {
		return CustomType{Name: name, IsEnum: true, Variants: variants, Comments: comments}, nil
	}
	p.pos, p.line = save, saveLine

	fields, err := p.parseFieldsUntilParen()
	if err != nil {
		return CustomType{}, err
	}
	return CustomType{Name: name, Fields: fields, Comments: comments}, nil
}

func (p *parser) tryParseEnumVariants() ([]string, bool) {
	var variants []string
	for {
		p.skipSpace()
		if p.peek() == ')' {
			p.advance()
			return variants, true
		}
		if !isIdentStart(p.peek()) {
			return nil, false
		}
		v, err := p.parseIdent()
		if err != nil {
			return nil, false
		}
		variants = append(variants, v)
		p.skipSpace()
		if p.peek() == ':' {
			return nil, false
		}
		if p.peek() == ',' {
			p.advance()
			continue
		}
		if p.peek() == ')' {
			p.advance()
			return variants, true
		}
		return nil, false
	}
}

func (p *parser) parseErrorDef(comments []Comment) (ErrorDef, error) {
	p.skipSpace()
	name, err := p.parseIdent()
	if err != nil {
		return ErrorDef{}, err
	}
	fields, err := p.parseFieldList()
	if err != nil {
		return ErrorDef{}, err
	}
	return ErrorDef{Name: name, Fields: fields, Comments: comments}, nil
}

// parseFieldList parses a full "(a: t, b: t)" parenthesized field list.
func (p *parser) parseFieldList() ([]Field, error) {
	p.skipSpace()
	if err := p.expect('('); err != nil {
		return nil, err
	}
	return p.parseFieldsUntilParen()
}

// parseFieldsUntilParen parses comma-separated "name: type" entries up to
// (and consuming) a closing ')'; the opening '(' must already be consumed.
func (p *parser) parseFieldsUntilParen() ([]Field, error) {
	var fields []Field
	for {
		p.skipSpace()
		if p.peek() == ')' {
			p.advance()
			return fields, nil
		}
		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.advance()
		case ')':
			p.advance()
			return fields, nil
		default:
			return nil, p.errf("expected ',' or ')'")
		}
	}
}

func (p *parser) parseField() (Field, error) {
	p.skipSpace()
	name, err := p.parseIdent()
	if err != nil {
		return Field{}, err
	}
	if err := p.expect(':'); err != nil {
		return Field{}, err
	}
	ty, err := p.parseType()
	if err != nil {
		return Field{}, err
	}
	return Field{Name: name, Type: ty}, nil
}

func (p *parser) parseType() (*Type, error) {
	p.skipSpace()
	if p.peek() == '?' {
		p.advance()
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return Optional(inner), nil
	}
	if p.peek() == '[' {
		p.advance()
		if p.peek() == ']' {
			p.advance()
			inner, err := p.parseType()
			if err != nil {
				return nil, err
			}
			return Array(inner), nil
		}
		if err := p.expectString("string"); err != nil {
			return nil, err
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return Map(inner), nil
	}
	if p.peek() == '(' {
		p.advance()
		fields, err := p.parseFieldsUntilParen()
		if err != nil {
			return nil, err
		}
		return AnonymousObject(fields), nil
	}

	ident, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	switch ident {
	case "bool":
		return Bool, nil
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	case "string":
		return String, nil
	case "object":
		return Object, nil
	default:
		return Custom(ident), nil
	}
}
