package protocol

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gstoney/mcproto/codec"
	"github.com/gstoney/mcproto/wire"
)

var ErrDuplicateOpcode = errors.New("duplicate opcode")

// Key identifies a record within one protocol version.
type Key struct {
	State     State
	Direction Direction
	ID        int32
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/0x%02X", k.State, k.Direction, k.ID)
}

// ConflictError reports two records registered under the same Key.
type ConflictError struct {
	Key       Key
	Existing  string
	Duplicate string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v %v: %s and %s", ErrDuplicateOpcode, e.Key, e.Existing, e.Duplicate)
}

func (e *ConflictError) Unwrap() error {
	return ErrDuplicateOpcode
}

type entry[P Packet] struct {
	name string
	new  func() P
}

// Builder collects the records of one protocol version.
type Builder[P Packet] struct {
	name    string
	version int32
	entries map[Key]entry[P]
	errs    []error
}

func NewBuilder[P Packet](name string, version int32) *Builder[P] {
	return &Builder[P]{
		name:    name,
		version: version,
		entries: make(map[Key]entry[P]),
	}
}

// Register adds the record made by newFn under its own opcode. Conflicts
// are reported by Build.
func (b *Builder[P]) Register(s State, d Direction, newFn func() P) *Builder[P] {
	p := newFn()
	k := Key{State: s, Direction: d, ID: p.ID()}
	name := recordName(p)

	if e, ok := b.entries[k]; ok {
		b.errs = append(b.errs, &ConflictError{Key: k, Existing: e.name, Duplicate: name})
		return b
	}
	b.entries[k] = entry[P]{name: name, new: newFn}
	return b
}

// Build returns the finished Protocol, or every conflict found while
// registering.
func (b *Builder[P]) Build() (*Protocol[P], error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("build protocol %s: %w", b.name, err)
	}

	table := make(map[Key]entry[P], len(b.entries))
	for k, e := range b.entries {
		table[k] = e
	}
	return &Protocol[P]{name: b.name, version: b.version, table: table}, nil
}

// Must panics when err is not nil. It is meant for package-level protocol
// variables.
func Must[P Packet](p *Protocol[P], err error) *Protocol[P] {
	if err != nil {
		panic(err)
	}
	return p
}

func recordName(p Packet) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", p), "*")
}

// Protocol maps (State, Direction, opcode) to record constructors. It is
// immutable and safe for concurrent use.
type Protocol[P Packet] struct {
	name    string
	version int32
	table   map[Key]entry[P]
}

func (p *Protocol[P]) Name() string   { return p.name }
func (p *Protocol[P]) Version() int32 { return p.version }

// Lookup returns the constructor registered for the key.
func (p *Protocol[P]) Lookup(s State, d Direction, id int32) (func() P, bool) {
	e, ok := p.table[Key{State: s, Direction: d, ID: id}]
	return e.new, ok
}

// Dispatch decodes the payload of opcode id from r.
//
// An opcode with no record is reported with ok false and a nil error, and
// nothing is read from r. Otherwise ok is true and err is the record's
// decode error, unchanged.
func (p *Protocol[P]) Dispatch(s State, d Direction, id int32, r codec.Reader) (pk P, ok bool, err error) {
	e, ok := p.table[Key{State: s, Direction: d, ID: id}]
	if !ok {
		return
	}

	v := e.new()
	if err = v.Decode(r); err != nil {
		return
	}
	pk = v
	return
}

// ReadPacket reads a VarInt opcode followed by its payload. A stream that
// ends before the opcode returns io.EOF.
func (p *Protocol[P]) ReadPacket(s State, d Direction, r codec.Reader) (id int32, pk P, ok bool, err error) {
	if id, err = wire.ReadVarInt(r); err != nil {
		return
	}
	pk, ok, err = p.Dispatch(s, d, id, r)
	return
}

// Entry describes one registered record.
type Entry struct {
	Key
	Name string
}

// Entries lists the registered records ordered by state, direction and
// opcode.
func (p *Protocol[P]) Entries() []Entry {
	entries := make([]Entry, 0, len(p.table))
	for k, e := range p.table {
		entries = append(entries, Entry{Key: k, Name: e.name})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.State, b.State),
			cmp.Compare(a.Direction, b.Direction),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return entries
}

// WritePacket writes the VarInt opcode of pk followed by its payload.
func WritePacket(w io.Writer, pk Packet) error {
	if err := wire.WriteVarInt(w, pk.ID()); err != nil {
		return err
	}
	return pk.Encode(w)
}

// Marshal returns the opcode and payload of pk as one buffer.
func Marshal(pk Packet) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePacket(&buf, pk); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
