package wire

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type TestCase[T any] struct {
	desc      string
	expectErr error
	v         T
	ser       []byte
}

var varintTc = []TestCase[int32]{
	{
		desc: "Zero",
		v:    0,
		ser:  []byte{0x00},
	},
	{
		desc: "One",
		v:    1,
		ser:  []byte{0x01},
	},
	{
		desc: "Max single byte (127)",
		v:    127,
		ser:  []byte{0x7f},
	},
	{
		desc: "Min two bytes (128)",
		v:    128,
		ser:  []byte{0x80, 0x01},
	},
	{
		desc: "Max two bytes (255)",
		v:    255,
		ser:  []byte{0xff, 0x01},
	},
	{
		desc: "Small three bytes (25565)",
		v:    25565,
		ser:  []byte{0xdd, 0xc7, 0x01},
	},
	{
		desc: "Max three bytes (2097151)",
		v:    2097151,
		ser:  []byte{0xff, 0xff, 0x7f},
	},
	{
		desc: "Max positive int32 (2147483647)",
		v:    2147483647,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc: "Negative one (-1)",
		v:    -1,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x0f},
	},
	{
		desc: "Min negative int32 (-2147483648)",
		v:    -2147483648,
		ser:  []byte{0x80, 0x80, 0x80, 0x80, 0x08},
	},
	{
		desc:      "VarInt too long",
		expectErr: ErrVarIntTooLong,
		v:         2147483647,
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc:      "Unexpected EOF",
		expectErr: io.ErrUnexpectedEOF,
		v:         2147483647,
		ser:       []byte{0xff, 0xff, 0xff, 0xff},
	},
	{
		desc:      "EOF before first byte",
		expectErr: io.EOF,
		ser:       []byte{},
	},
}

func TestWriteVarInt(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0, 5))
	for _, tC := range varintTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			err := WriteVarInt(buf, tC.v)
			if err != nil {
				t.Fatalf("WriteVarInt failed: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteVarInt expected %x, got %x", tC.ser, buf.Bytes())
			}
			if VarIntLen(tC.v) != len(tC.ser) {
				t.Errorf("VarIntLen expected %d, got %d", len(tC.ser), VarIntLen(tC.v))
			}
		})
		buf.Reset()
	}
}

func TestReadVarInt(t *testing.T) {
	for _, tC := range varintTc {
		t.Run(tC.desc, func(t *testing.T) {
			r := bytes.NewReader(tC.ser)

			got, err := ReadVarInt(r)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("ReadVarInt expected error %v, but succeeded and returned value %d", tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadVarInt expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadVarInt failed: %v", err)
			}

			if got != tC.v {
				t.Errorf("ReadVarInt expected %d, got %d", tC.v, got)
			}

			if r.Len() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Len())
			}
		})
	}
}

var varlongTc = []TestCase[int64]{
	{
		desc: "Zero",
		v:    0,
		ser:  []byte{0x00},
	},
	{
		desc: "Max int32",
		v:    2147483647,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc: "Max int64",
		v:    9223372036854775807,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
	},
	{
		desc: "Negative one",
		v:    -1,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
	},
	{
		desc:      "VarLong too long",
		expectErr: ErrVarLongTooLong,
		ser:       bytes.Repeat([]byte{0xff}, 11),
	},
}

func TestVarLong(t *testing.T) {
	for _, tC := range varlongTc {
		t.Run(tC.desc, func(t *testing.T) {
			if tC.expectErr == nil {
				var buf bytes.Buffer
				if err := WriteVarLong(&buf, tC.v); err != nil {
					t.Fatalf("WriteVarLong failed: %v", err)
				}
				if !bytes.Equal(buf.Bytes(), tC.ser) {
					t.Errorf("WriteVarLong expected %x, got %x", tC.ser, buf.Bytes())
				}
			}

			got, err := ReadVarLong(bytes.NewReader(tC.ser))
			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadVarLong expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadVarLong failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadVarLong expected %d, got %d", tC.v, got)
			}
		})
	}
}

var stringTc = []TestCase[string]{
	{
		desc: "Empty string",
		v:    "",
		ser:  []byte{0x00},
	},
	{
		desc: "ASCII string",
		v:    "Hello",
		ser:  []byte{0x05, 0x48, 0x65, 0x6c, 0x6c, 0x6f},
	},
	{
		desc: "Unicode string",
		v:    "Go \U0001F389", // the emoji is 4 bytes in UTF-8
		ser:  []byte{0x07, 0x47, 0x6f, 0x20, 0xf0, 0x9f, 0x8e, 0x89},
	},
	{
		desc: "Multi byte length (128 bytes)",
		v:    string(bytes.Repeat([]byte{'a'}, 128)),
		ser:  append([]byte{0x80, 0x01}, bytes.Repeat([]byte{'a'}, 128)...),
	},
	{
		desc:      "Read fail: EOF on length VarInt (Length is 0x80)",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{0x80},
	},
	{
		desc:      "Read fail: EOF reading string content",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{0x05, 0x48, 0x65, 0x6c},
	},
	{
		desc:      "Read fail: Negative length prefix",
		expectErr: ErrNegativeLength,
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0x0f},
	},
	{
		desc:      "Read fail: Length over maximum",
		expectErr: ErrStringTooLong,
		ser:       []byte{0xff, 0xff, 0xff, 0x07},
	},
}

func TestWriteString(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0))
	for _, tC := range stringTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			err := WriteString(buf, tC.v)
			if err != nil {
				t.Fatalf("WriteString failed: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteString expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
		buf.Reset()
	}
}

func TestReadString(t *testing.T) {
	for _, tC := range stringTc {
		t.Run(tC.desc, func(t *testing.T) {
			r := bytes.NewReader(tC.ser)

			got, err := ReadString(r)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("ReadString expected error %v, but succeeded and returned value %s", tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadString expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadString failed: %v", err)
			}

			if got != tC.v {
				t.Errorf("ReadString expected %s, got %s", tC.v, got)
			}

			if r.Len() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Len())
			}
		})
	}
}

func TestWriteStringTooLong(t *testing.T) {
	err := WriteString(io.Discard, string(make([]byte, MaxStringLen+1)))
	if !errors.Is(err, ErrStringTooLong) {
		t.Errorf("WriteString expected ErrStringTooLong, got %v", err)
	}
}

var positionTc = []TestCase[Position]{
	{
		desc: "Origin",
		v:    Position{},
		ser:  make([]byte, 8),
	},
	{
		desc: "Positive components",
		v:    Position{X: 18357644, Y: 831, Z: -20882616},
		ser:  []byte{0x46, 0x07, 0x63, 0x2c, 0x15, 0xb4, 0x83, 0x3f},
	},
	{
		desc: "Negative one everywhere",
		v:    Position{X: -1, Y: -1, Z: -1},
		ser:  bytes.Repeat([]byte{0xff}, 8),
	},
	{
		desc:      "Unexpected EOF",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{0x46, 0x07},
	},
}

func TestPosition(t *testing.T) {
	for _, tC := range positionTc {
		t.Run(tC.desc, func(t *testing.T) {
			if tC.expectErr == nil {
				var buf bytes.Buffer
				if err := WritePosition(&buf, tC.v); err != nil {
					t.Fatalf("WritePosition failed: %v", err)
				}
				if !bytes.Equal(buf.Bytes(), tC.ser) {
					t.Errorf("WritePosition expected %x, got %x", tC.ser, buf.Bytes())
				}
			}

			got, err := ReadPosition(bytes.NewReader(tC.ser))
			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadPosition expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadPosition failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadPosition expected %+v, got %+v", tC.v, got)
			}
		})
	}
}
