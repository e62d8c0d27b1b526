package types

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"

	"github.com/gstoney/mcproto/codec"
)

var (
	ErrNBTTagType = errors.New("unknown nbt tag type")
	ErrNoNBT      = errors.New("no nbt tag present")
)

// NBT is a named binary tag kept in its encoded form. A lone end tag on
// the wire means no tag and decodes to the zero NBT.
//
// Values are converted with go-mc's nbt package through NewNBT and
// Unmarshal. Decode reads the tag as an nbt.RawMessage, so exactly the
// tag's bytes are taken from the stream.
type NBT struct {
	Name string
	Raw  []byte
}

// NewNBT marshals v into a tag named name.
func NewNBT(name string, v any) (NBT, error) {
	var buf bytes.Buffer
	if err := nbt.NewEncoder(&buf).Encode(v, name); err != nil {
		return NBT{}, fmt.Errorf("encode nbt: %w", err)
	}
	return NBT{Name: name, Raw: buf.Bytes()}, nil
}

// Present reports whether a tag is held.
func (t NBT) Present() bool {
	return len(t.Raw) > 0 && t.Raw[0] != nbt.TagEnd
}

// Unmarshal decodes the held tag into v.
func (t NBT) Unmarshal(v any) error {
	if !t.Present() {
		return ErrNoNBT
	}
	if _, err := nbt.NewDecoder(bytes.NewReader(t.Raw)).Decode(v); err != nil {
		return fmt.Errorf("decode nbt: %w", err)
	}
	return nil
}

func (t NBT) Encode(w io.Writer) error {
	if !t.Present() {
		_, err := w.Write([]byte{nbt.TagEnd})
		return err
	}
	_, err := w.Write(t.Raw)
	return err
}

func (t *NBT) Decode(r codec.Reader) error {
	typ, err := r.ReadByte()
	if err != nil {
		return shortRead(err)
	}
	if typ == nbt.TagEnd {
		*t = NBT{}
		return nil
	}
	if typ > nbt.TagLongArray {
		return fmt.Errorf("%w: %d", ErrNBTTagType, typ)
	}
	if err := r.UnreadByte(); err != nil {
		return err
	}

	var raw nbt.RawMessage
	name, err := nbt.NewDecoder(r).Decode(&raw)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("decode nbt: %w", err)
	}

	// RawMessage drops the root header; put it back so Raw stays a full tag.
	var buf bytes.Buffer
	if err := nbt.NewEncoder(&buf).Encode(raw, name); err != nil {
		return fmt.Errorf("decode nbt: %w", err)
	}
	*t = NBT{Name: name, Raw: buf.Bytes()}
	return nil
}
