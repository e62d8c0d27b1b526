// Package codec defines the capability shared by every value that can be
// read from or written to a packet payload, together with the built-in
// primitive and container implementations.
package codec

import (
	"bufio"
	"errors"
	"io"
)

var (
	ErrNegativeLength = errors.New("negative length")
	ErrLengthOverflow = errors.New("length does not fit prefix type")
)

// Reader is the byte stream a Codec decodes from.
//
// UnreadByte lets adapters of external serializers peek at a tag byte
// before handing the stream over.
type Reader interface {
	io.Reader
	io.ByteScanner
}

// Codec is implemented by every value with a wire representation.
//
// Decode must consume exactly the bytes Encode produces for the same value.
// The zero value of an implementing type is its default.
type Codec interface {
	Decode(r Reader) error
	Encode(w io.Writer) error
}

// Ptr constrains PT to be *T implementing Codec, so generic containers can
// default-construct a T and decode into it.
type Ptr[T any] interface {
	*T
	Codec
}

// Length is a codec usable as the prefix of a sequence.
type Length interface {
	Codec
	Count() int
	SetCount(n int) error
}

// LengthPtr constrains PL to be *L implementing Length.
type LengthPtr[L any] interface {
	*L
	Length
}

// NewReader returns r as a Reader, wrapping it with bufio when it cannot
// unread bytes. A bufio wrapper may read ahead of what was decoded, so the
// same wrapper has to be kept for the lifetime of the stream.
func NewReader(r io.Reader) Reader {
	if cr, ok := r.(Reader); ok {
		return cr
	}
	return bufio.NewReader(r)
}

// readFull reads len(buf) bytes. A stream ending before the value is
// complete is always a short read.
func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type lener interface {
	Len() int
}

// maxPrealloc caps what a count read from a stream of unknown length may
// reserve before the items behind it have arrived.
const maxPrealloc = 1024

// preallocCap returns how many of n items to reserve up front. Every item
// takes at least one byte, so a reader that knows its length refuses n
// early when it cannot fit. Other streams get a bounded reservation and
// grow as items are read.
func preallocCap(r Reader, n int) (int, error) {
	if l, ok := r.(lener); ok {
		if n > l.Len() {
			return 0, io.ErrUnexpectedEOF
		}
		return n, nil
	}
	return min(n, maxPrealloc), nil
}
