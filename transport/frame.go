package transport

import (
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/mcproto/wire"
)

var (
	ErrNotExhausted        = errors.New("not exhausted")
	ErrInvalidFrameLength  = errors.New("invalid frame length")
	ErrInvalidDataLength   = errors.New("invalid data length")
	ErrZlibPayloadOverrun  = errors.New("zlib stream exceeds declared payload length")
	ErrZlibPayloadUnderrun = errors.New("zlib stream shorter than declared payload length")
	ErrZlibTrailingData    = errors.New("trailing data in frame after zlib stream ends")
)

// FrameReader wraps a source reader to provide bounded access to one frame at a time.
// It ensures packet frame alignment.
type FrameReader struct {
	src       byteReader
	remaining int32
}

func (f *FrameReader) Read(p []byte) (n int, err error) {
	if f.remaining <= 0 {
		return 0, io.EOF
	}
	if int32(len(p)) > f.remaining {
		p = p[0:f.remaining]
	}
	n, err = f.src.Read(p)
	f.remaining -= int32(n)

	if err == io.EOF && f.remaining > 0 {
		err = io.ErrUnexpectedEOF
	}
	return
}

func (f *FrameReader) ReadByte() (byte, error) {
	if f.remaining <= 0 {
		return 0, io.EOF
	}
	v, err := f.src.ReadByte()
	if err == nil {
		f.remaining -= 1
	} else if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return v, err
}

// Next reads the length prefix of the following frame. The current frame
// must be exhausted first. A stream that ends cleanly between frames
// returns io.EOF.
func (f *FrameReader) Next() (length int32, err error) {
	if f.remaining > 0 {
		return f.remaining, ErrNotExhausted
	}

	length, err = wire.ReadVarInt(f.src)
	if err != nil {
		return
	}
	if length <= 0 {
		return length, ErrInvalidFrameLength
	}
	f.remaining = length
	return
}

func (f *FrameReader) Skip() (n int32, err error) {
	n64, err := io.CopyN(io.Discard, f, int64(f.remaining))
	n = int32(n64)
	return
}

func (f *FrameReader) Remaining() int32 {
	return f.remaining
}

// PayloadReader yields the payload of the frame returned by Transport.Recv.
// The payload must be drained or dropped before the next Recv.
//
// Close reports whether the frame was consumed exactly and leaves the
// stream where it is. Discard drops whatever is left of the frame so the
// next Recv starts on a frame boundary.
type PayloadReader interface {
	io.ReadCloser
	// Skip reads and drops the rest of the payload.
	Skip() (n int32, err error)
	Discard() (n int32, err error)
	// Remaining is the number of payload bytes not yet read.
	Remaining() int32
}

// rawPayload is an uncompressed payload read straight off the frame.
type rawPayload struct {
	*FrameReader
}

func (p rawPayload) Close() error {
	if p.remaining > 0 {
		return fmt.Errorf("%w: %d payload bytes unread", ErrNotExhausted, p.remaining)
	}
	return nil
}

func (p rawPayload) Discard() (int32, error) {
	return p.Skip()
}

// inflatedPayload is the decompressed view of a compressed frame. size is
// the part of the declared data length not yet read.
type inflatedPayload struct {
	zr    io.ReadCloser
	frame *FrameReader
	size  int32
}

func (p *inflatedPayload) Read(b []byte) (int, error) {
	if p.size <= 0 {
		return 0, io.EOF
	}
	b = b[:min(int32(len(b)), p.size)]

	n, err := p.zr.Read(b)
	p.size -= int32(n)
	if err == io.EOF && p.size > 0 {
		return n, fmt.Errorf("%w: %d bytes missing", ErrZlibPayloadUnderrun, p.size)
	}
	return n, err
}

func (p *inflatedPayload) Skip() (int32, error) {
	n, err := io.CopyN(io.Discard, p, int64(p.size))
	return int32(n), err
}

func (p *inflatedPayload) Discard() (int32, error) {
	p.size = 0
	return p.frame.Skip()
}

// Close checks that the zlib stream ends at the declared data length and
// that nothing follows it inside the frame.
func (p *inflatedPayload) Close() error {
	if p.size > 0 {
		return fmt.Errorf("%w: %d payload bytes unread", ErrNotExhausted, p.size)
	}
	if err := p.streamEnded(); err != nil {
		return err
	}
	if p.frame.remaining > 0 {
		return fmt.Errorf("%w: %d bytes", ErrZlibTrailingData, p.frame.remaining)
	}
	return p.zr.Close()
}

// streamEnded fails unless the zlib stream has nothing past the payload.
func (p *inflatedPayload) streamEnded() error {
	var extra [1]byte
	n, err := p.zr.Read(extra[:])
	switch {
	case n > 0 || err == nil:
		return ErrZlibPayloadOverrun
	case err == io.EOF:
		return nil
	default:
		return fmt.Errorf("inflate payload: %w", err)
	}
}

func (p *inflatedPayload) Remaining() int32 {
	return p.size
}
