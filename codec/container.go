package codec

import (
	"bytes"
	"io"
)

// Option holds a value whose presence is decided outside the codec,
// normally by a presence predicate of the enclosing record.
//
// Decode always reads a value and marks it valid. Encode writes nothing
// when the option is not valid.
type Option[T any, PT Ptr[T]] struct {
	Value T
	Valid bool
}

// Some returns a valid Option holding v.
func Some[T any, PT Ptr[T]](v T) Option[T, PT] {
	return Option[T, PT]{Value: v, Valid: true}
}

func (o *Option[T, PT]) Decode(r Reader) error {
	var v T
	if err := PT(&v).Decode(r); err != nil {
		return err
	}
	o.Value, o.Valid = v, true
	return nil
}

func (o *Option[T, PT]) Encode(w io.Writer) error {
	if !o.Valid {
		return nil
	}
	return PT(&o.Value).Encode(w)
}

// PrefixedOptional is an optional value preceded by a Bool telling whether
// the value follows.
type PrefixedOptional[T any, PT Ptr[T]] struct {
	Value T
	Valid bool
}

func (o *PrefixedOptional[T, PT]) Decode(r Reader) (err error) {
	var exists Bool
	if err = exists.Decode(r); err != nil {
		return
	}

	var v T
	if exists {
		if err = PT(&v).Decode(r); err != nil {
			return
		}
	}
	o.Value, o.Valid = v, bool(exists)
	return
}

func (o *PrefixedOptional[T, PT]) Encode(w io.Writer) (err error) {
	if err = Bool(o.Valid).Encode(w); err != nil {
		return
	}

	if o.Valid {
		err = PT(&o.Value).Encode(w)
	}
	return
}

// Box keeps a large value behind a pointer. The wire format is the boxed
// value's own; a nil box encodes the zero value.
type Box[T any, PT Ptr[T]] struct {
	V *T
}

func NewBox[T any, PT Ptr[T]](v T) Box[T, PT] {
	return Box[T, PT]{V: &v}
}

func (b *Box[T, PT]) Decode(r Reader) error {
	if b.V == nil {
		b.V = new(T)
	}
	return PT(b.V).Decode(r)
}

func (b *Box[T, PT]) Encode(w io.Writer) error {
	if b.V == nil {
		var zero T
		return PT(&zero).Encode(w)
	}
	return PT(b.V).Encode(w)
}

// Array is a sequence of T prefixed by its element count encoded as L.
type Array[L any, PL LengthPtr[L], T any, PT Ptr[T]] []T

func (a *Array[L, PL, T, PT]) Decode(r Reader) (err error) {
	n, err := decodeCount[L, PL](r)
	if err != nil {
		return
	}

	size, err := preallocCap(r, n)
	if err != nil {
		return
	}

	if n == 0 {
		*a = nil
		return
	}

	v := make([]T, 0, size)
	for range n {
		var e T
		if err = PT(&e).Decode(r); err != nil {
			return
		}
		v = append(v, e)
	}
	*a = v
	return
}

func (a *Array[L, PL, T, PT]) Encode(w io.Writer) (err error) {
	if err = encodeCount[L, PL](w, len(*a)); err != nil {
		return
	}

	for i := range *a {
		if err = PT(&(*a)[i]).Encode(w); err != nil {
			return
		}
	}
	return
}

// Bytes is a raw byte blob prefixed by its length encoded as L.
type Bytes[L any, PL LengthPtr[L]] []byte

func (b *Bytes[L, PL]) Decode(r Reader) (err error) {
	n, err := decodeCount[L, PL](r)
	if err != nil {
		return
	}

	if n == 0 {
		*b = nil
		return
	}

	switch src := r.(type) {
	case *FrameReader:
		var p []byte
		if p, err = src.Next(n); err != nil {
			return
		}
		*b = append([]byte(nil), p...)
	case lener:
		if src.Len() < n {
			return io.ErrUnexpectedEOF
		}
		v := make([]byte, n)
		if err = readFull(r, v); err != nil {
			return
		}
		*b = v
	default:
		var buf bytes.Buffer
		buf.Grow(min(n, maxPrealloc))
		if _, err = io.CopyN(&buf, r, int64(n)); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return
		}
		*b = buf.Bytes()
	}
	return
}

func (b *Bytes[L, PL]) Encode(w io.Writer) (err error) {
	if err = encodeCount[L, PL](w, len(*b)); err != nil {
		return
	}
	_, err = w.Write(*b)
	return
}

// Rest is every remaining byte of the payload. It must be the last field
// read from a bounded stream.
type Rest []byte

func (b *Rest) Decode(r Reader) error {
	v, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(v) == 0 {
		v = nil
	}
	*b = v
	return nil
}

func (b *Rest) Encode(w io.Writer) (err error) {
	_, err = w.Write(*b)
	return
}

func decodeCount[L any, PL LengthPtr[L]](r Reader) (int, error) {
	var l L
	if err := PL(&l).Decode(r); err != nil {
		return 0, err
	}

	n := PL(&l).Count()
	if n < 0 {
		return 0, ErrNegativeLength
	}
	return n, nil
}

func encodeCount[L any, PL LengthPtr[L]](w io.Writer, n int) error {
	var l L
	if err := PL(&l).SetCount(n); err != nil {
		return err
	}
	return PL(&l).Encode(w)
}
