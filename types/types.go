// Package types adapts the protocol's domain values to codec.Codec.
//
// Each adapter forwards to the value's native serializer (package wire,
// google/uuid, goccy/go-json, go-mc/nbt) and reports failures as codec
// errors: a stream that ends inside a value is io.ErrUnexpectedEOF.
package types

import (
	"io"
	"math"

	"github.com/google/uuid"

	"github.com/gstoney/mcproto/codec"
	"github.com/gstoney/mcproto/wire"
)

type (
	VarInt     int32
	VarLong    int64
	String     string
	// Identifier is a namespaced key such as "minecraft:brand", sent as a String.
	Identifier string
	UUID       uuid.UUID
	Position   wire.Position
	// Angle is a rotation in steps of 1/256 of a full turn.
	Angle uint8
)

// VarIntBytes is a byte blob prefixed by its VarInt length.
type VarIntBytes = codec.Bytes[VarInt, *VarInt]

func (v VarInt) Encode(w io.Writer) error {
	return wire.WriteVarInt(w, int32(v))
}

func (v *VarInt) Decode(r codec.Reader) error {
	n, err := wire.ReadVarInt(r)
	if err != nil {
		return shortRead(err)
	}
	*v = VarInt(n)
	return nil
}

func (v VarInt) Count() int { return int(v) }

func (v *VarInt) SetCount(n int) error {
	if n < 0 || n > math.MaxInt32 {
		return codec.ErrLengthOverflow
	}
	*v = VarInt(n)
	return nil
}

func (v VarLong) Encode(w io.Writer) error {
	return wire.WriteVarLong(w, int64(v))
}

func (v *VarLong) Decode(r codec.Reader) error {
	n, err := wire.ReadVarLong(r)
	if err != nil {
		return shortRead(err)
	}
	*v = VarLong(n)
	return nil
}

func (v VarLong) Count() int { return int(v) }

func (v *VarLong) SetCount(n int) error {
	if n < 0 {
		return codec.ErrLengthOverflow
	}
	*v = VarLong(n)
	return nil
}

func (v String) Encode(w io.Writer) error {
	return wire.WriteString(w, string(v))
}

func (v *String) Decode(r codec.Reader) error {
	s, err := wire.ReadString(r)
	if err != nil {
		return shortRead(err)
	}
	*v = String(s)
	return nil
}

func (v Identifier) Encode(w io.Writer) error {
	return wire.WriteString(w, string(v))
}

func (v *Identifier) Decode(r codec.Reader) error {
	s, err := wire.ReadString(r)
	if err != nil {
		return shortRead(err)
	}
	*v = Identifier(s)
	return nil
}

func (v UUID) Encode(w io.Writer) error {
	b, err := uuid.UUID(v).MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func (v *UUID) Decode(r codec.Reader) error {
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return shortRead(err)
	}

	var u uuid.UUID
	if err := u.UnmarshalBinary(b[:]); err != nil {
		return err
	}
	*v = UUID(u)
	return nil
}

func (v UUID) String() string {
	return uuid.UUID(v).String()
}

func (v Position) Encode(w io.Writer) error {
	return wire.WritePosition(w, wire.Position(v))
}

func (v *Position) Decode(r codec.Reader) error {
	p, err := wire.ReadPosition(r)
	if err != nil {
		return shortRead(err)
	}
	*v = Position(p)
	return nil
}

func (v Angle) Encode(w io.Writer) error {
	return codec.U8(v).Encode(w)
}

func (v *Angle) Decode(r codec.Reader) error {
	return (*codec.U8)(v).Decode(r)
}

// Degrees converts the angle to degrees in [0, 360).
func (v Angle) Degrees() float32 {
	return float32(v) * 360 / 256
}

// AngleOf converts degrees to the nearest Angle, wrapping around a full turn.
func AngleOf(deg float32) Angle {
	return Angle(int64(math.Round(float64(deg)*256/360)) & 0xFF)
}

func shortRead(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
