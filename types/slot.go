package types

import (
	"io"

	"github.com/gstoney/mcproto/codec"
)

// Slot is an inventory item stack. An empty slot is a single false byte.
type Slot struct {
	Present bool
	ItemID  VarInt
	Count   codec.I8
	Tag     NBT
}

func (s Slot) Encode(w io.Writer) (err error) {
	if err = codec.Bool(s.Present).Encode(w); err != nil {
		return
	}
	if !s.Present {
		return
	}

	if err = s.ItemID.Encode(w); err != nil {
		return
	}
	if err = s.Count.Encode(w); err != nil {
		return
	}
	err = s.Tag.Encode(w)
	return
}

func (s *Slot) Decode(r codec.Reader) (err error) {
	var v Slot
	var present codec.Bool
	if err = present.Decode(r); err != nil {
		return
	}

	if present {
		v.Present = true
		if err = v.ItemID.Decode(r); err != nil {
			return
		}
		if err = v.Count.Decode(r); err != nil {
			return
		}
		if err = v.Tag.Decode(r); err != nil {
			return
		}
	}
	*s = v
	return
}
