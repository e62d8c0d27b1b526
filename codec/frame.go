package codec

import "io"

// FrameReader reads a payload that is fully held in memory.
type FrameReader struct {
	buf []byte
	off int
}

func NewFrameReader(buf []byte) *FrameReader {
	return &FrameReader{
		buf: buf,
		off: 0,
	}
}

// Len reports the number of unread bytes.
func (r *FrameReader) Len() int {
	return len(r.buf) - r.off
}

// Offset reports the number of bytes consumed so far.
func (r *FrameReader) Offset() int {
	return r.off
}

func (r *FrameReader) ReadByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, io.EOF
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *FrameReader) UnreadByte() error {
	if r.off <= 0 {
		return io.ErrNoProgress
	}
	r.off--
	return nil
}

func (r *FrameReader) Read(p []byte) (n int, err error) {
	if r.off >= len(r.buf) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n = copy(p, r.buf[r.off:])
	r.off += n
	return
}

// Next returns the next n bytes without copying them.
func (r *FrameReader) Next(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if r.off+n > len(r.buf) {
		return nil, io.ErrUnexpectedEOF
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}
