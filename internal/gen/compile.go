package gen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/gstoney/mcproto/protocol"
)

// Schema is a validated grammar ready for rendering.
type Schema struct {
	Name    string
	Version int32
	Package string
	Packets []Packet
}

type Packet struct {
	Name      string
	Doc       string
	State     protocol.State
	Direction protocol.Direction
	ID        int32
	Fields    []Field
}

type Field struct {
	Name string
	Doc  string
	// Type is the Go type expression of the field.
	Type string
	// When is the presence predicate as a Go expression, empty when the
	// field is always present.
	When string
}

// Identifiers the generated code declares next to the records.
var reservedPackets = map[string]bool{"Packet": true, "Protocol": true}

// Method names of a generated record.
var reservedFields = map[string]bool{"ID": true, "Decode": true, "Encode": true}

// Identifiers a predicate may use besides p.
var predicateIdents = map[string]bool{
	"true": true, "false": true, "nil": true, "len": true,
	"bool": true, "byte": true, "string": true, "int": true,
	"int8": true, "int16": true, "int32": true, "int64": true,
	"uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"float32": true, "float64": true,
}

// Compile validates g and lowers it to a Schema. Every problem found is
// reported as a *GrammarError joined into the returned error.
func Compile(g *Grammar) (*Schema, error) {
	c := compiler{
		names:   make(map[string]bool),
		opcodes: make(map[protocol.Key]string),
		states:  make(map[protocol.State]bool),
	}

	if g.Name == "" {
		c.fail("", "", "grammar has no name")
	}
	if !token.IsIdentifier(g.Package) {
		c.fail("", "", fmt.Sprintf("package %q is not a Go identifier", g.Package))
	}

	s := &Schema{Name: g.Name, Version: g.Version, Package: g.Package}
	for _, sd := range g.States {
		state, err := protocol.ParseState(sd.Name)
		if err != nil {
			c.fail("", "", err.Error())
			continue
		}
		if c.states[state] {
			c.fail("", "", fmt.Sprintf("state %s declared twice", state))
			continue
		}
		c.states[state] = true

		for _, pd := range sd.ServerBound {
			if p, ok := c.packet(state, protocol.ServerBound, pd); ok {
				s.Packets = append(s.Packets, p)
			}
		}
		for _, pd := range sd.ClientBound {
			if p, ok := c.packet(state, protocol.ClientBound, pd); ok {
				s.Packets = append(s.Packets, p)
			}
		}
	}

	if err := errors.Join(c.errs...); err != nil {
		return nil, err
	}
	return s, nil
}

type compiler struct {
	names   map[string]bool
	opcodes map[protocol.Key]string
	states  map[protocol.State]bool
	errs    []error
}

func (c *compiler) fail(packet, field, reason string) {
	c.errs = append(c.errs, &GrammarError{Packet: packet, Field: field, Reason: reason})
}

func (c *compiler) packet(s protocol.State, d protocol.Direction, pd PacketDef) (Packet, bool) {
	n := len(c.errs)

	switch {
	case !isExported(pd.Name):
		c.fail(pd.Name, "", "packet name must be an exported Go identifier")
	case reservedPackets[pd.Name]:
		c.fail(pd.Name, "", "packet name is reserved")
	case c.names[pd.Name]:
		c.fail(pd.Name, "", "packet declared twice")
	}
	c.names[pd.Name] = true

	if pd.ID < 0 {
		c.fail(pd.Name, "", fmt.Sprintf("negative opcode %d", pd.ID))
	}
	k := protocol.Key{State: s, Direction: d, ID: pd.ID}
	if other, ok := c.opcodes[k]; ok {
		c.fail(pd.Name, "", fmt.Sprintf("%v: %v already used by %s", protocol.ErrDuplicateOpcode, k, other))
	} else {
		c.opcodes[k] = pd.Name
	}

	p := Packet{
		Name:      pd.Name,
		Doc:       strings.TrimSpace(pd.Doc),
		State:     s,
		Direction: d,
		ID:        pd.ID,
	}

	declared := make(map[string]bool, len(pd.Fields))
	all := make(map[string]bool, len(pd.Fields))
	for _, fd := range pd.Fields {
		all[fd.Name] = true
	}

	for _, fd := range pd.Fields {
		switch {
		case !isExported(fd.Name):
			c.fail(pd.Name, fd.Name, "field name must be an exported Go identifier")
		case reservedFields[fd.Name]:
			c.fail(pd.Name, fd.Name, "field name collides with a record method")
		case declared[fd.Name]:
			c.fail(pd.Name, fd.Name, "field declared twice")
		}

		typ, err := parseType(fd.Type)
		if err != nil {
			c.fail(pd.Name, fd.Name, err.Error())
		}

		when := strings.TrimSpace(fd.When)
		if when != "" {
			if err := checkPredicate(when, declared, all); err != nil {
				c.fail(pd.Name, fd.Name, err.Error())
			}
		}

		declared[fd.Name] = true
		p.Fields = append(p.Fields, Field{
			Name: fd.Name,
			Doc:  strings.TrimSpace(fd.Doc),
			Type: typ,
			When: when,
		})
	}

	return p, len(c.errs) == n
}

// checkPredicate parses a presence predicate and checks that every p.X it
// reads names a field in declared. all holds every field of the record so
// that a reference to a later field is told apart from an unknown one.
func checkPredicate(expr string, declared, all map[string]bool) error {
	e, err := parser.ParseExpr(expr)
	if err != nil {
		return fmt.Errorf("predicate %q: %w", expr, err)
	}

	var errs []error
	var visit func(n ast.Node) bool
	visit = func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			id, ok := n.X.(*ast.Ident)
			if !ok {
				ast.Inspect(n.X, visit)
				return false
			}
			switch {
			case id.Name != "p":
				errs = append(errs, fmt.Errorf("predicate %q: unknown identifier %s", expr, id.Name))
			case declared[n.Sel.Name]:
			case all[n.Sel.Name]:
				errs = append(errs, fmt.Errorf("predicate %q: field %s is not declared before this field", expr, n.Sel.Name))
			default:
				errs = append(errs, fmt.Errorf("predicate %q: unknown field %s", expr, n.Sel.Name))
			}
			return false
		case *ast.Ident:
			if n.Name == "p" {
				errs = append(errs, fmt.Errorf("predicate %q: p must be used as p.Field", expr))
			} else if !predicateIdents[n.Name] {
				errs = append(errs, fmt.Errorf("predicate %q: unknown identifier %s", expr, n.Name))
			}
		case *ast.FuncLit, *ast.CompositeLit:
			errs = append(errs, fmt.Errorf("predicate %q: only simple expressions are allowed", expr))
			return false
		}
		return true
	}
	ast.Inspect(e, visit)

	return errors.Join(errs...)
}

func isExported(name string) bool {
	return token.IsIdentifier(name) && token.IsExported(name)
}
