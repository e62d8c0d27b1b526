// Package transport frames packet payloads on a byte stream. It handles the
// length prefix and zlib compression, and Conn layers a Protocol on top to
// read and write packet records.
package transport

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"errors"
	"io"

	"github.com/gstoney/mcproto/wire"
)

var ErrPacketTooBig = errors.New("packet too big")

// Config bounds what a Transport accepts from its peer.
type Config struct {
	MaxPacketLen       int32
	MaxDecompressedLen int32
}

// DefaultConfig matches the limits of a vanilla server.
func DefaultConfig() Config {
	return Config{
		MaxPacketLen:       1 << 21,
		MaxDecompressedLen: 1 << 23,
	}
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

type byteWriter interface {
	io.Writer
	io.ByteWriter
}

// Transport provides read and write access to a framed stream,
// with compression handled internally.
// Transport does not deserialize packets.
type Transport struct {
	reader byteReader
	writer byteWriter

	fReader FrameReader
	zReader io.ReadCloser

	zBuffer bytes.Buffer
	zWriter *zlib.Writer

	threshold int
	cfg       Config
}

// NewTransport creates a Transport with compression disabled.
//
// For readers/writers that perform syscalls (e.g. net.Conn), buffering is
// required. Indicate buffered I/O by implementing io.ByteReader/io.ByteWriter.
// If these interfaces are not implemented, the reader/writer will be wrapped
// with bufio.
func NewTransport(r io.Reader, w io.Writer, cfg Config) *Transport {
	var br byteReader
	var bw byteWriter

	if b, ok := r.(byteReader); ok {
		br = b
	} else if r != nil {
		br = bufio.NewReader(r)
	}

	if b, ok := w.(byteWriter); ok {
		bw = b
	} else if w != nil {
		bw = bufio.NewWriter(w)
	}

	return &Transport{
		reader:    br,
		writer:    bw,
		fReader:   FrameReader{src: br},
		threshold: -1,
		cfg:       cfg,
	}
}

// SetCompression enables compression of payloads at least threshold bytes
// long. A negative threshold disables compression.
func (t *Transport) SetCompression(threshold int) {
	t.threshold = threshold
}

// Compression returns the current threshold, negative when disabled.
func (t *Transport) Compression() int {
	return t.threshold
}

// Recv reads the header of the next frame and returns a reader over its
// payload. The previous payload must be exhausted or discarded first.
func (t *Transport) Recv() (r PayloadReader, err error) {
	frameLength, err := t.fReader.Next()
	if err != nil {
		return nil, err
	}

	if frameLength > t.cfg.MaxPacketLen {
		return nil, ErrPacketTooBig
	}

	r = rawPayload{&t.fReader}

	if t.threshold < 0 {
		return
	}

	dataLen, err := wire.ReadVarInt(&t.fReader)
	if err != nil {
		return nil, err
	}

	switch {
	case dataLen < 0:
		return nil, ErrInvalidDataLength
	case dataLen == 0:
		return
	case dataLen > t.cfg.MaxDecompressedLen:
		return nil, ErrPacketTooBig
	}

	if t.zReader == nil {
		t.zReader, err = zlib.NewReader(&t.fReader)
	} else {
		err = t.zReader.(zlib.Resetter).Reset(&t.fReader, nil)
	}
	if err != nil {
		return nil, err
	}

	return &inflatedPayload{zr: t.zReader, frame: &t.fReader, size: dataLen}, nil
}

// Send writes b as one frame and flushes buffered output.
func (t *Transport) Send(b []byte) (err error) {
	length := len(b)

	switch {
	case t.threshold < 0:
		if err = wire.WriteVarInt(t.writer, int32(length)); err != nil {
			return
		}
		if _, err = t.writer.Write(b); err != nil {
			return
		}

	case length >= t.threshold:
		t.zBuffer.Reset()
		if t.zWriter == nil {
			t.zWriter = zlib.NewWriter(&t.zBuffer)
		} else {
			t.zWriter.Reset(&t.zBuffer)
		}
		if err = wire.WriteVarInt(&t.zBuffer, int32(length)); err != nil {
			return
		}
		// zlib writes its header lazily, so the data length stays plain.
		if _, err = t.zWriter.Write(b); err != nil {
			return
		}
		if err = t.zWriter.Close(); err != nil {
			return
		}

		if err = wire.WriteVarInt(t.writer, int32(t.zBuffer.Len())); err != nil {
			return
		}
		if _, err = t.zBuffer.WriteTo(t.writer); err != nil {
			return
		}

	default:
		if err = wire.WriteVarInt(t.writer, int32(length+1)); err != nil {
			return
		}
		if err = t.writer.WriteByte(0); err != nil {
			return
		}
		if _, err = t.writer.Write(b); err != nil {
			return
		}
	}

	return t.flush()
}

func (t *Transport) flush() error {
	if bw, ok := t.writer.(*bufio.Writer); ok {
		return bw.Flush()
	}
	return nil
}
