package codec

import (
	"encoding/binary"
	"io"
	"math"
)

// Bool is a single byte. Zero decodes as false, anything else as true.
type Bool bool

type (
	U8  uint8
	I8  int8
	U16 uint16
	I16 int16
	U32 uint32
	I32 int32
	U64 uint64
	I64 int64
	F32 float32
	F64 float64
)

func (v Bool) Encode(w io.Writer) (err error) {
	b := byte(0)
	if v {
		b = 1
	}

	_, err = w.Write([]byte{b})
	return
}

func (v *Bool) Decode(r Reader) error {
	b, err := readByte(r)
	if err != nil {
		return err
	}
	*v = b != 0
	return nil
}

func (v U8) Encode(w io.Writer) (err error) {
	_, err = w.Write([]byte{byte(v)})
	return
}

func (v *U8) Decode(r Reader) error {
	b, err := readByte(r)
	if err != nil {
		return err
	}
	*v = U8(b)
	return nil
}

func (v I8) Encode(w io.Writer) (err error) {
	_, err = w.Write([]byte{byte(v)})
	return
}

func (v *I8) Decode(r Reader) error {
	b, err := readByte(r)
	if err != nil {
		return err
	}
	*v = I8(b)
	return nil
}

func (v U16) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, uint16(v))
}

func (v *U16) Decode(r Reader) error {
	var b [2]byte
	if err := readFull(r, b[:]); err != nil {
		return err
	}
	*v = U16(binary.BigEndian.Uint16(b[:]))
	return nil
}

func (v I16) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, int16(v))
}

func (v *I16) Decode(r Reader) error {
	var b [2]byte
	if err := readFull(r, b[:]); err != nil {
		return err
	}
	*v = I16(binary.BigEndian.Uint16(b[:]))
	return nil
}

func (v U32) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, uint32(v))
}

func (v *U32) Decode(r Reader) error {
	var b [4]byte
	if err := readFull(r, b[:]); err != nil {
		return err
	}
	*v = U32(binary.BigEndian.Uint32(b[:]))
	return nil
}

func (v I32) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, int32(v))
}

func (v *I32) Decode(r Reader) error {
	var b [4]byte
	if err := readFull(r, b[:]); err != nil {
		return err
	}
	*v = I32(binary.BigEndian.Uint32(b[:]))
	return nil
}

func (v U64) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, uint64(v))
}

func (v *U64) Decode(r Reader) error {
	var b [8]byte
	if err := readFull(r, b[:]); err != nil {
		return err
	}
	*v = U64(binary.BigEndian.Uint64(b[:]))
	return nil
}

func (v I64) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, int64(v))
}

func (v *I64) Decode(r Reader) error {
	var b [8]byte
	if err := readFull(r, b[:]); err != nil {
		return err
	}
	*v = I64(binary.BigEndian.Uint64(b[:]))
	return nil
}

func (v F32) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, math.Float32bits(float32(v)))
}

func (v *F32) Decode(r Reader) error {
	var b [4]byte
	if err := readFull(r, b[:]); err != nil {
		return err
	}
	*v = F32(math.Float32frombits(binary.BigEndian.Uint32(b[:])))
	return nil
}

func (v F64) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, math.Float64bits(float64(v)))
}

func (v *F64) Decode(r Reader) error {
	var b [8]byte
	if err := readFull(r, b[:]); err != nil {
		return err
	}
	*v = F64(math.Float64frombits(binary.BigEndian.Uint64(b[:])))
	return nil
}

func readByte(r Reader) (byte, error) {
	b, err := r.ReadByte()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return b, err
}

// Fixed width integers can prefix sequences.

func (v U8) Count() int  { return int(v) }
func (v I8) Count() int  { return int(v) }
func (v U16) Count() int { return int(v) }
func (v I16) Count() int { return int(v) }
func (v U32) Count() int { return int(v) }
func (v I32) Count() int { return int(v) }

func (v *U8) SetCount(n int) error {
	if n < 0 || n > math.MaxUint8 {
		return ErrLengthOverflow
	}
	*v = U8(n)
	return nil
}

func (v *I8) SetCount(n int) error {
	if n < 0 || n > math.MaxInt8 {
		return ErrLengthOverflow
	}
	*v = I8(n)
	return nil
}

func (v *U16) SetCount(n int) error {
	if n < 0 || n > math.MaxUint16 {
		return ErrLengthOverflow
	}
	*v = U16(n)
	return nil
}

func (v *I16) SetCount(n int) error {
	if n < 0 || n > math.MaxInt16 {
		return ErrLengthOverflow
	}
	*v = I16(n)
	return nil
}

func (v *U32) SetCount(n int) error {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return ErrLengthOverflow
	}
	*v = U32(n)
	return nil
}

func (v *I32) SetCount(n int) error {
	if n < 0 || n > math.MaxInt32 {
		return ErrLengthOverflow
	}
	*v = I32(n)
	return nil
}
