package gen

import (
	"fmt"
	"strings"
	"unicode"
)

// goType is a Go type expression for a field, and whether it can prefix a
// length.
type goType struct {
	expr   string
	length bool
}

var scalarTypes = map[string]goType{
	"bool": {expr: "codec.Bool"},
	"u8":   {expr: "codec.U8", length: true},
	"i8":   {expr: "codec.I8", length: true},
	"u16":  {expr: "codec.U16", length: true},
	"i16":  {expr: "codec.I16", length: true},
	"u32":  {expr: "codec.U32", length: true},
	"i32":  {expr: "codec.I32", length: true},
	"u64":  {expr: "codec.U64"},
	"i64":  {expr: "codec.I64"},
	"f32":  {expr: "codec.F32"},
	"f64":  {expr: "codec.F64"},
	"Rest": {expr: "codec.Rest"},

	"VarInt":     {expr: "types.VarInt", length: true},
	"VarLong":    {expr: "types.VarLong", length: true},
	"String":     {expr: "types.String"},
	"Identifier": {expr: "types.Identifier"},
	"UUID":       {expr: "types.UUID"},
	"Position":   {expr: "types.Position"},
	"Angle":      {expr: "types.Angle"},
	"Component":  {expr: "types.Component"},
	"JSON":       {expr: "types.JSONValue"},
	"NBT":        {expr: "types.NBT"},
	"Slot":       {expr: "types.Slot"},
	"Bytes":      {expr: "types.VarIntBytes"},
}

var genericArity = map[string]int{
	"Option":           1,
	"Box":              1,
	"PrefixedOptional": 1,
	"Array":            2,
	"Bytes":            1,
}

// parseType translates a grammar type such as "Array<VarInt, String>"
// into its Go type expression.
func parseType(s string) (string, error) {
	p := typeParser{s: s}
	t, err := p.parse()
	if err != nil {
		return "", err
	}

	p.skipSpace()
	if p.pos != len(p.s) {
		return "", fmt.Errorf("unexpected %q in type %q", p.s[p.pos:], s)
	}
	return t.expr, nil
}

type typeParser struct {
	s   string
	pos int
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.s) && p.s[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) accept(c byte) bool {
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *typeParser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) {
		r := rune(p.s[p.pos])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		p.pos++
	}
	return p.s[start:p.pos]
}

func (p *typeParser) parse() (goType, error) {
	name := p.ident()
	if name == "" {
		return goType{}, fmt.Errorf("expected a type name in %q", p.s)
	}

	if !p.accept('<') {
		t, ok := scalarTypes[name]
		if !ok {
			if _, generic := genericArity[name]; generic {
				return goType{}, fmt.Errorf("%s needs type arguments", name)
			}
			return goType{}, fmt.Errorf("unknown type %s", name)
		}
		return t, nil
	}

	arity, ok := genericArity[name]
	if !ok {
		return goType{}, fmt.Errorf("%s takes no type arguments", name)
	}

	var args []goType
	for {
		arg, err := p.parse()
		if err != nil {
			return goType{}, err
		}
		args = append(args, arg)

		if p.accept('>') {
			break
		}
		if !p.accept(',') {
			return goType{}, fmt.Errorf("expected ',' or '>' in %q", p.s)
		}
	}

	if len(args) != arity {
		return goType{}, fmt.Errorf("%s takes %d type arguments, got %d", name, arity, len(args))
	}
	return expandGeneric(name, args)
}

func expandGeneric(name string, args []goType) (goType, error) {
	switch name {
	case "Array":
		l, t := args[0], args[1]
		if !l.length {
			return goType{}, fmt.Errorf("%s cannot prefix an Array", l.expr)
		}
		return goType{expr: fmt.Sprintf("codec.Array[%s, *%s, %s, *%s]", l.expr, l.expr, t.expr, t.expr)}, nil
	case "Bytes":
		l := args[0]
		if !l.length {
			return goType{}, fmt.Errorf("%s cannot prefix Bytes", l.expr)
		}
		return goType{expr: fmt.Sprintf("codec.Bytes[%s, *%s]", l.expr, l.expr)}, nil
	default:
		t := args[0]
		return goType{expr: fmt.Sprintf("codec.%s[%s, *%s]", name, t.expr, t.expr)}, nil
	}
}

// usesTypes reports whether a Go type expression needs the types package.
func usesTypes(expr string) bool {
	return strings.Contains(expr, "types.")
}
