package transport

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/gstoney/mcproto/protocol"
	"github.com/gstoney/mcproto/protocol/v1_17"
)

// newPair returns a client and a server Conn sharing one loopback buffer.
func newPair(threshold int) (client, server *Conn[v1_17.Packet], buf *bytes.Buffer) {
	buf = &bytes.Buffer{}

	ct := NewTransport(buf, buf, testConfig())
	ct.SetCompression(threshold)
	st := NewTransport(buf, buf, testConfig())
	st.SetCompression(threshold)

	client = NewConn(ct, v1_17.Protocol, protocol.ClientBound)
	server = NewConn(st, v1_17.Protocol, protocol.ServerBound)
	return
}

func TestConn_StatusExchange(t *testing.T) {
	for _, threshold := range []int{-1, 0, 256} {
		client, server, _ := newPair(threshold)

		hs := &v1_17.Handshake{ProtocolVersion: 755, Host: "localhost", Port: 25565, Next: 1}
		if err := client.WritePacket(hs); err != nil {
			t.Fatalf("WritePacket: %v", err)
		}

		id, pk, ok, err := server.ReadPacket()
		if err != nil || !ok {
			t.Fatalf("ReadPacket: ok=%v err=%v", ok, err)
		}
		if id != 0x00 || !reflect.DeepEqual(pk, v1_17.Packet(hs)) {
			t.Errorf("expected %+v, got 0x%02X %+v", hs, id, pk)
		}

		client.SetState(protocol.Status)
		server.SetState(protocol.Status)

		client.WritePacket(&v1_17.StatusPing{Ping: 42})
		_, pk, ok, err = server.ReadPacket()
		if err != nil || !ok {
			t.Fatalf("ReadPacket: ok=%v err=%v", ok, err)
		}
		ping, isPing := pk.(*v1_17.StatusPing)
		if !isPing || ping.Ping != 42 {
			t.Fatalf("expected StatusPing 42, got %+v", pk)
		}

		server.WritePacket(&v1_17.StatusPong{Ping: ping.Ping})
		_, pk, _, err = client.ReadPacket()
		if err != nil {
			t.Fatalf("client ReadPacket: %v", err)
		}
		if pong, ok := pk.(*v1_17.StatusPong); !ok || pong.Ping != 42 {
			t.Errorf("expected StatusPong 42, got %+v", pk)
		}

		if _, _, _, err := server.ReadPacket(); err != io.EOF {
			t.Errorf("ReadPacket on drained stream: got %v, want io.EOF", err)
		}
	}
}

// A frame with an unknown opcode is consumed so the next one can be read.
func TestConn_UnknownOpcode(t *testing.T) {
	_, server, _ := newPair(-1)
	server.SetState(protocol.Status)

	server.Transport().Send([]byte{0x7f, 0x01, 0x02})
	server.Transport().Send([]byte{0x00})

	id, pk, ok, err := server.ReadPacket()
	if err != nil || ok || pk != nil || id != 0x7f {
		t.Fatalf("expected no match for 0x7f, got 0x%02X %+v ok=%v err=%v", id, pk, ok, err)
	}

	_, pk, ok, err = server.ReadPacket()
	if err != nil || !ok {
		t.Fatalf("ReadPacket after unknown opcode: ok=%v err=%v", ok, err)
	}
	if _, isReq := pk.(*v1_17.StatusRequest); !isReq {
		t.Errorf("expected StatusRequest, got %T", pk)
	}
}

func TestConn_Errors(t *testing.T) {
	type TestCase struct {
		desc  string
		frame []byte
		err   error
	}

	tests := []TestCase{
		{"trailing bytes", []byte{0x01, 0, 0, 0, 0, 0, 0, 0, 0x2a, 0xff}, ErrNotExhausted},
		{"short record", []byte{0x01, 0x00, 0x00}, io.ErrUnexpectedEOF},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			_, server, _ := newPair(-1)
			server.SetState(protocol.Status)
			server.Transport().Send(tc.frame)

			id, _, ok, err := server.ReadPacket()
			if !errors.Is(err, tc.err) {
				t.Errorf("ReadPacket: got %v, want %v", err, tc.err)
			}
			if !ok || id != 0x01 {
				t.Errorf("expected a match for 0x01, got 0x%02X ok=%v", id, ok)
			}
		})
	}
}

// A payload that fails to read is dropped, and a failure to drop it is
// reported along with the read error.
func TestConn_ReadErrorJoinsDiscard(t *testing.T) {
	_, server, buf := newPair(0)
	server.SetState(protocol.Status)

	payload := bytes.Repeat([]byte{0x01}, 40)
	var frame bytes.Buffer
	forge(&frame, int32(len(payload)+8), append(compress(payload), 0xaa, 0xbb, 0xcc, 0xdd))
	buf.Write(frame.Bytes()[:frame.Len()-4])

	_, _, _, err := server.ReadPacket()
	if !errors.Is(err, ErrZlibPayloadUnderrun) {
		t.Errorf("ReadPacket: got %v, want ErrZlibPayloadUnderrun", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadPacket: discard failure missing from %v", err)
	}
}

// After a failed read the next frame is still readable.
func TestConn_ReadErrorRealigns(t *testing.T) {
	client, server, buf := newPair(0)
	server.SetState(protocol.Status)
	client.SetState(protocol.Status)

	payload := bytes.Repeat([]byte{0x01}, 40)
	forge(buf, int32(len(payload)+8), compress(payload))
	if err := client.WritePacket(&v1_17.StatusRequest{}); err != nil {
		t.Fatalf("WritePacket: %v", err)
	}

	if _, _, _, err := server.ReadPacket(); !errors.Is(err, ErrZlibPayloadUnderrun) {
		t.Fatalf("ReadPacket: got %v, want ErrZlibPayloadUnderrun", err)
	}
	_, pk, ok, err := server.ReadPacket()
	if err != nil || !ok {
		t.Fatalf("ReadPacket after discard: ok=%v err=%v", ok, err)
	}
	if _, isReq := pk.(*v1_17.StatusRequest); !isReq {
		t.Errorf("expected StatusRequest, got %T", pk)
	}
}

// The state selects which table the opcode is looked up in.
func TestConn_StateSelectsTable(t *testing.T) {
	_, server, _ := newPair(-1)
	server.SetState(protocol.Login)
	server.Transport().Send(append([]byte{0x00, 0x05}, "alice"...))

	_, pk, ok, err := server.ReadPacket()
	if err != nil || !ok {
		t.Fatalf("ReadPacket: ok=%v err=%v", ok, err)
	}
	if ls, isLogin := pk.(*v1_17.LoginStart); !isLogin || ls.Username != "alice" {
		t.Errorf("expected LoginStart alice, got %+v", pk)
	}
}
