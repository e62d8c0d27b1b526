// Package gen compiles a protocol grammar into Go source.
//
// A grammar is a TOML document naming one protocol version and listing,
// per connection state and direction, the packets with their fields in
// wire order:
//
//	name = "Java 1.17"
//	version = 755
//	package = "v1_17"
//
//	[[state]]
//	name = "handshaking"
//
//	[[state.serverbound]]
//	id = 0x00
//	name = "Handshake"
//	fields = [
//	  { name = "ProtocolVersion", type = "VarInt" },
//	  { name = "Host", type = "String" },
//	]
//
// A field may carry a presence predicate in "when", a Go boolean
// expression over the fields declared before it, written as p.Field.
package gen

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Grammar is the decoded grammar document.
type Grammar struct {
	Name    string     `toml:"name"`
	Version int32      `toml:"version"`
	Package string     `toml:"package"`
	States  []StateDef `toml:"state"`
}

type StateDef struct {
	Name        string      `toml:"name"`
	ServerBound []PacketDef `toml:"serverbound"`
	ClientBound []PacketDef `toml:"clientbound"`
}

type PacketDef struct {
	ID     int32      `toml:"id"`
	Name   string     `toml:"name"`
	Doc    string     `toml:"doc"`
	Fields []FieldDef `toml:"fields"`
}

type FieldDef struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
	When string `toml:"when"`
	Doc  string `toml:"doc"`
}

// GrammarError is a problem found in a grammar. Packet and Field locate it
// when known.
type GrammarError struct {
	Packet string
	Field  string
	Reason string
}

func (e *GrammarError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("packet %s field %s: %s", e.Packet, e.Field, e.Reason)
	case e.Packet != "":
		return fmt.Sprintf("packet %s: %s", e.Packet, e.Reason)
	default:
		return e.Reason
	}
}

// Parse decodes a grammar from r. Keys the grammar does not define are
// reported as errors so that misspelled keys are not silently ignored.
func Parse(r io.Reader) (*Grammar, error) {
	var g Grammar
	meta, err := toml.NewDecoder(r).Decode(&g)
	if err != nil {
		return nil, fmt.Errorf("decode grammar: %w", err)
	}

	var errs []error
	for _, k := range meta.Undecoded() {
		errs = append(errs, &GrammarError{Reason: fmt.Sprintf("unknown key %q", k.String())})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &g, nil
}

// ParseFile decodes the grammar stored at path.
func ParseFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Load parses and compiles the grammar stored at path.
func Load(path string) (*Schema, error) {
	g, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	s, err := Compile(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
