package transport

import (
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/mcproto/codec"
	"github.com/gstoney/mcproto/protocol"
)

// Conn reads and writes the records of one protocol version over a
// Transport and tracks the connection state.
type Conn[P protocol.Packet] struct {
	t       *Transport
	proto   *protocol.Protocol[P]
	inbound protocol.Direction
	state   protocol.State
	buf     []byte
}

// NewConn returns a Conn in the handshaking state. inbound is the
// direction of the packets this side receives.
func NewConn[P protocol.Packet](t *Transport, proto *protocol.Protocol[P], inbound protocol.Direction) *Conn[P] {
	return &Conn[P]{t: t, proto: proto, inbound: inbound}
}

func (c *Conn[P]) Transport() *Transport           { return c.t }
func (c *Conn[P]) State() protocol.State           { return c.state }
func (c *Conn[P]) SetState(s protocol.State)       { c.state = s }
func (c *Conn[P]) Protocol() *protocol.Protocol[P] { return c.proto }

// ReadPacket receives one frame and decodes it in the current state.
//
// A frame whose opcode has no record is consumed and reported with ok
// false. A record that leaves payload bytes unread is an error wrapping
// ErrNotExhausted.
func (c *Conn[P]) ReadPacket() (id int32, pk P, ok bool, err error) {
	payload, err := c.t.Recv()
	if err != nil {
		return
	}

	n := int(payload.Remaining())
	if cap(c.buf) < n {
		c.buf = make([]byte, n)
	}
	buf := c.buf[:n]

	if _, err = io.ReadFull(payload, buf); err != nil {
		if _, derr := payload.Discard(); derr != nil {
			err = errors.Join(err, fmt.Errorf("discard frame: %w", derr))
		}
		return
	}
	if err = payload.Close(); err != nil {
		return
	}

	r := codec.NewFrameReader(buf)
	id, pk, ok, err = c.proto.ReadPacket(c.state, c.inbound, r)
	if err != nil {
		err = fmt.Errorf("read %v packet 0x%02X: %w", c.state, id, err)
		return
	}
	if ok && r.Len() > 0 {
		err = fmt.Errorf("read %v packet 0x%02X: %w: %d bytes left", c.state, id, ErrNotExhausted, r.Len())
	}
	return
}

// WritePacket sends pk as one frame.
func (c *Conn[P]) WritePacket(pk P) error {
	b, err := protocol.Marshal(pk)
	if err != nil {
		return fmt.Errorf("encode packet 0x%02X: %w", pk.ID(), err)
	}
	return c.t.Send(b)
}
