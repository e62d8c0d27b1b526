// Package wire holds the native serializers for the protocol's variable
// length and packed values. The types package adapts them to codec.Codec.
package wire

import (
	"encoding/binary"
	"errors"
	"io"
)

// Reader is what the readers of this package need from a stream.
type Reader interface {
	io.Reader
	io.ByteReader
}

var (
	ErrVarIntTooLong  = errors.New("VarInt is too long")
	ErrVarLongTooLong = errors.New("VarLong is too long")
	ErrNegativeLength = errors.New("negative length")
	ErrStringTooLong  = errors.New("string exceeds maximum length")
)

// MaxStringLen bounds the byte length of a String: 32767 UTF-16 code
// units, each taking at most 4 bytes in UTF-8.
const MaxStringLen = 32767 * 4

func WriteVarInt(w io.Writer, v int32) error {
	var buf [5]byte
	_, err := w.Write(AppendVarInt(buf[:0], v))
	return err
}

// AppendVarInt appends the VarInt encoding of v to b.
func AppendVarInt(b []byte, v int32) []byte {
	uv := uint32(v)
	for {
		c := byte(uv & 0x7F)
		uv >>= 7

		if uv != 0 {
			c |= 0x80
		}
		b = append(b, c)

		if uv == 0 {
			return b
		}
	}
}

// VarIntLen reports how many bytes the VarInt encoding of v takes.
func VarIntLen(v int32) int {
	uv := uint32(v)
	n := 1
	for uv >= 0x80 {
		uv >>= 7
		n++
	}
	return n
}

// ReadVarInt returns io.EOF only when the stream ends before the first
// byte; a stream ending inside the value is io.ErrUnexpectedEOF.
func ReadVarInt(r io.ByteReader) (int32, error) {
	var v int32
	var shift uint

	for n := 0; n < 5; n++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				err = io.ErrUnexpectedEOF
			}
			return v, err
		}

		segment := b & 0x7F
		v |= int32(segment) << shift

		shift += 7

		if (b & 0x80) == 0 {
			return v, nil
		}
	}
	return v, ErrVarIntTooLong
}

func WriteVarLong(w io.Writer, v int64) error {
	var buf [10]byte
	b := buf[:0]
	uv := uint64(v)
	for {
		c := byte(uv & 0x7F)
		uv >>= 7

		if uv != 0 {
			c |= 0x80
		}
		b = append(b, c)

		if uv == 0 {
			break
		}
	}
	_, err := w.Write(b)
	return err
}

func ReadVarLong(r io.ByteReader) (int64, error) {
	var v int64
	var shift uint

	for n := 0; n < 10; n++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				err = io.ErrUnexpectedEOF
			}
			return v, err
		}

		v |= int64(b&0x7F) << shift
		shift += 7

		if (b & 0x80) == 0 {
			return v, nil
		}
	}
	return v, ErrVarLongTooLong
}

func WriteString(w io.Writer, v string) (err error) {
	if len(v) > MaxStringLen {
		return ErrStringTooLong
	}
	err = WriteVarInt(w, int32(len(v)))
	if err != nil {
		return
	}
	_, err = io.WriteString(w, v)
	return
}

func ReadString(r Reader) (v string, err error) {
	length := int32(0)
	length, err = ReadVarInt(r)
	if err != nil {
		return
	}

	if length < 0 {
		err = ErrNegativeLength
		return
	}
	if length > MaxStringLen {
		err = ErrStringTooLong
		return
	}

	buf := make([]byte, length)
	if _, err = io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return
	}
	return string(buf), nil
}

// Position's serialized form is composed of X, Z which are 26 bits each, and 12 bits of Y.
// Thus, unintended content can be written when the values are out of range
type Position struct {
	X int32
	Y int16
	Z int32
}

func WritePosition(w io.Writer, v Position) (err error) {
	packed := (uint64(v.X&0x3FFFFFF) << 38) |
		(uint64(v.Z&0x3FFFFFF) << 12) |
		(uint64(v.Y & 0xFFF))

	err = binary.Write(w, binary.BigEndian, packed)
	return
}

func ReadPosition(r io.Reader) (v Position, err error) {
	var b [8]byte
	if _, err = io.ReadFull(r, b[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return
	}

	packed := int64(binary.BigEndian.Uint64(b[:]))

	// arithmetic shifts sign-extend each packed component
	v.X = int32(packed >> 38)
	v.Z = int32(packed << 26 >> 38)
	v.Y = int16(packed << 52 >> 52)
	return
}
