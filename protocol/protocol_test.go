package protocol

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/gstoney/mcproto/codec"
	"github.com/gstoney/mcproto/types"
)

type testPacket interface {
	Packet
	isTestPacket()
}

type handshake struct {
	ProtocolVersion types.VarInt
	Host            types.String
	Port            codec.U16
	Next            types.VarInt
}

var handshakeLayout = Layout[handshake]{
	{Name: "ProtocolVersion", Ref: func(p *handshake) codec.Codec { return &p.ProtocolVersion }},
	{Name: "Host", Ref: func(p *handshake) codec.Codec { return &p.Host }},
	{Name: "Port", Ref: func(p *handshake) codec.Codec { return &p.Port }},
	{Name: "Next", Ref: func(p *handshake) codec.Codec { return &p.Next }},
}

func (handshake) ID() int32                      { return 0x00 }
func (handshake) isTestPacket()                  {}
func (p *handshake) Decode(r codec.Reader) error { return handshakeLayout.Decode(p, r) }
func (p *handshake) Encode(w io.Writer) error    { return handshakeLayout.Encode(p, w) }

type flagged struct {
	Flag  codec.Bool
	Value codec.U8
}

var flaggedLayout = Layout[flagged]{
	{Name: "Flag", Ref: func(p *flagged) codec.Codec { return &p.Flag }},
	{
		Name: "Value",
		Ref:  func(p *flagged) codec.Codec { return &p.Value },
		When: func(p *flagged) bool { return bool(p.Flag) },
	},
}

func (flagged) ID() int32                      { return 0x01 }
func (flagged) isTestPacket()                  {}
func (p *flagged) Decode(r codec.Reader) error { return flaggedLayout.Decode(p, r) }
func (p *flagged) Encode(w io.Writer) error    { return flaggedLayout.Encode(p, w) }

type ping struct {
	Payload codec.I64
}

var pingLayout = Layout[ping]{
	{Name: "Payload", Ref: func(p *ping) codec.Codec { return &p.Payload }},
}

func (ping) ID() int32                      { return 0x01 }
func (ping) isTestPacket()                  {}
func (p *ping) Decode(r codec.Reader) error { return pingLayout.Decode(p, r) }
func (p *ping) Encode(w io.Writer) error    { return pingLayout.Encode(p, w) }

func testProtocol(t *testing.T) *Protocol[testPacket] {
	t.Helper()

	p, err := NewBuilder[testPacket]("test", 758).
		Register(Handshaking, ServerBound, func() testPacket { return &handshake{} }).
		Register(Play, ServerBound, func() testPacket { return &flagged{} }).
		Register(Status, ServerBound, func() testPacket { return &ping{} }).
		Register(Status, ClientBound, func() testPacket { return &ping{} }).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return p
}

func TestHandshakeDispatch(t *testing.T) {
	p := testProtocol(t)

	want := &handshake{ProtocolVersion: 758, Host: "play.example.com", Port: 25565, Next: 2}
	var buf bytes.Buffer
	if err := want.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	r := codec.NewFrameReader(buf.Bytes())
	got, ok, err := p.Dispatch(Handshaking, ServerBound, 0, r)
	if err != nil || !ok {
		t.Fatalf("Dispatch expected a match, got ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got, testPacket(want)) {
		t.Errorf("Dispatch expected %+v, got %+v", want, got)
	}
	if r.Len() != 0 {
		t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Len())
	}
}

func TestConditionalField(t *testing.T) {
	type TestCase struct {
		desc string
		v    flagged
		ser  []byte
		want flagged
	}

	tests := []TestCase{
		{"flag unset omits value", flagged{Flag: false, Value: 7}, []byte{0x00}, flagged{}},
		{"flag set writes value", flagged{Flag: true, Value: 7}, []byte{0x01, 0x07}, flagged{Flag: true, Value: 7}},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tc.v.Encode(&buf); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tc.ser) {
				t.Errorf("Encode expected %x, got %x", tc.ser, buf.Bytes())
			}

			// a stale value must not survive decoding
			got := flagged{Value: 99}
			if err := got.Decode(codec.NewFrameReader(buf.Bytes())); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Decode expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestPresentStableUnderRoundTrip(t *testing.T) {
	for _, v := range []flagged{{}, {Flag: true}, {Flag: true, Value: 200}, {Value: 3}} {
		before := flaggedLayout.Present(&v)

		var buf bytes.Buffer
		if err := v.Encode(&buf); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		var got flagged
		if err := got.Decode(codec.NewFrameReader(buf.Bytes())); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}

		after := flaggedLayout.Present(&got)
		if !reflect.DeepEqual(before, after) {
			t.Errorf("present fields of %+v changed from %v to %v", v, before, after)
		}
	}
}

type lookahead struct {
	A codec.U8
	B codec.U8
}

func TestPredicateSeesOnlyEarlierFields(t *testing.T) {
	l := Layout[lookahead]{
		{
			Name: "A",
			Ref:  func(p *lookahead) codec.Codec { return &p.A },
			When: func(p *lookahead) bool { return p.B != 0 },
		},
		{Name: "B", Ref: func(p *lookahead) codec.Codec { return &p.B }},
	}

	got := lookahead{A: 1, B: 1}
	if err := l.Decode(&got, codec.NewFrameReader([]byte{0x05})); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != (lookahead{B: 5}) {
		t.Errorf("Decode expected {A:0 B:5}, got %+v", got)
	}
}

func TestUnknownOpcode(t *testing.T) {
	p := testProtocol(t)

	r := codec.NewFrameReader([]byte{0x01, 0x02, 0x03})
	got, ok, err := p.Dispatch(Login, ServerBound, 0x00, r)
	if err != nil {
		t.Fatalf("Dispatch on unknown opcode returned error: %v", err)
	}
	if ok || got != nil {
		t.Errorf("Dispatch expected no match, got %+v", got)
	}
	if r.Len() != 3 {
		t.Errorf("Dispatch consumed %d bytes of an unknown opcode", 3-r.Len())
	}
}

func TestDispatchDecodeError(t *testing.T) {
	p := testProtocol(t)

	got, ok, err := p.Dispatch(Status, ServerBound, 0x01, codec.NewFrameReader([]byte{0x00, 0x01}))
	if !ok {
		t.Fatalf("Dispatch expected a match")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Dispatch expected io.ErrUnexpectedEOF, got %v", err)
	}
	if got != nil {
		t.Errorf("Dispatch returned a partial packet %+v", got)
	}
}

func TestDuplicateOpcode(t *testing.T) {
	_, err := NewBuilder[testPacket]("test", 1).
		Register(Status, ServerBound, func() testPacket { return &ping{} }).
		Register(Status, ServerBound, func() testPacket { return &flagged{} }).
		Build()

	if !errors.Is(err, ErrDuplicateOpcode) {
		t.Fatalf("Build expected ErrDuplicateOpcode, got %v", err)
	}

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Build expected a *ConflictError, got %T", err)
	}
	want := Key{State: Status, Direction: ServerBound, ID: 0x01}
	if conflict.Key != want {
		t.Errorf("ConflictError expected key %v, got %v", want, conflict.Key)
	}
	if conflict.Existing != "protocol.ping" || conflict.Duplicate != "protocol.flagged" {
		t.Errorf("ConflictError names %q and %q", conflict.Existing, conflict.Duplicate)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Must did not panic on a conflicting schema")
		}
	}()

	Must(NewBuilder[testPacket]("test", 1).
		Register(Play, ServerBound, func() testPacket { return &flagged{} }).
		Register(Play, ServerBound, func() testPacket { return &flagged{} }).
		Build())
}

func TestReadWritePacket(t *testing.T) {
	p := testProtocol(t)

	var buf bytes.Buffer
	if err := WritePacket(&buf, &ping{Payload: 0x1122334455667788}); err != nil {
		t.Fatalf("WritePacket failed: %v", err)
	}
	want := []byte{0x01, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WritePacket expected %x, got %x", want, buf.Bytes())
	}

	id, got, ok, err := p.ReadPacket(Status, ClientBound, codec.NewFrameReader(buf.Bytes()))
	if err != nil || !ok {
		t.Fatalf("ReadPacket expected a match, got ok=%v err=%v", ok, err)
	}
	if id != 0x01 {
		t.Errorf("ReadPacket expected id 1, got %d", id)
	}
	if pk, _ := got.(*ping); pk == nil || pk.Payload != 0x1122334455667788 {
		t.Errorf("ReadPacket returned %+v", got)
	}

	if _, _, _, err := p.ReadPacket(Status, ClientBound, codec.NewFrameReader(nil)); err != io.EOF {
		t.Errorf("ReadPacket on empty stream expected io.EOF, got %v", err)
	}
}

func TestEntries(t *testing.T) {
	p := testProtocol(t)

	want := []Entry{
		{Key{Handshaking, ServerBound, 0x00}, "protocol.handshake"},
		{Key{Status, ClientBound, 0x01}, "protocol.ping"},
		{Key{Status, ServerBound, 0x01}, "protocol.ping"},
		{Key{Play, ServerBound, 0x01}, "protocol.flagged"},
	}
	if got := p.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries expected %v, got %v", want, got)
	}
	if p.Name() != "test" || p.Version() != 758 {
		t.Errorf("unexpected name %q version %d", p.Name(), p.Version())
	}
	if _, ok := p.Lookup(Play, ClientBound, 0x01); ok {
		t.Errorf("Lookup matched an unregistered direction")
	}
}

func TestLayoutValidate(t *testing.T) {
	if err := handshakeLayout.Validate(); err != nil {
		t.Errorf("Validate rejected a valid layout: %v", err)
	}

	bad := Layout[flagged]{
		{Name: "Flag", Ref: func(p *flagged) codec.Codec { return &p.Flag }},
		{Name: "Flag", Ref: func(p *flagged) codec.Codec { return &p.Value }},
		{Name: ""},
	}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("Validate expected ErrInvalidLayout, got %v", err)
	}
}

func TestParseState(t *testing.T) {
	for _, s := range []State{Handshaking, Status, Login, Play} {
		got, err := ParseState(s.String())
		if err != nil || got != s {
			t.Errorf("ParseState(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseState("config"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("ParseState expected ErrUnknownState, got %v", err)
	}

	d, err := ParseDirection("ServerBound")
	if err != nil || d != ServerBound {
		t.Errorf("ParseDirection(ServerBound) = %v, %v", d, err)
	}
	if d.Opposite() != ClientBound {
		t.Errorf("Opposite of serverbound expected clientbound")
	}
}
