// Package client performs the server list ping against a remote server.
package client

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gstoney/mcproto/codec"
	"github.com/gstoney/mcproto/protocol"
	"github.com/gstoney/mcproto/protocol/v1_17"
	"github.com/gstoney/mcproto/server"
	"github.com/gstoney/mcproto/transport"
	"github.com/gstoney/mcproto/types"
)

// Result is what a server reported about itself.
type Result struct {
	Addr    string
	Status  server.Status
	Latency time.Duration
}

// Ping dials addr, asks for its status and measures the ping round trip.
// version is sent in the handshake; servers usually answer any version.
func Ping(ctx context.Context, addr string, version int32) (Result, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return Result{}, err
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return Result{}, fmt.Errorf("port %q: %w", portStr, err)
	}

	var d net.Dialer
	nc, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return Result{}, err
	}
	defer nc.Close()
	if deadline, ok := ctx.Deadline(); ok {
		nc.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() { nc.Close() })
	defer stop()

	c := transport.NewConn(transport.NewTransport(nc, nc, transport.DefaultConfig()), v1_17.Protocol, protocol.ClientBound)

	err = c.WritePacket(&v1_17.Handshake{
		ProtocolVersion: types.VarInt(version),
		Host:            types.String(host),
		Port:            codec.U16(port),
		Next:            server.IntentStatus,
	})
	if err != nil {
		return Result{}, err
	}
	c.SetState(protocol.Status)

	if err := c.WritePacket(&v1_17.StatusRequest{}); err != nil {
		return Result{}, err
	}
	resp, err := expect[*v1_17.StatusResponse](c)
	if err != nil {
		return Result{}, err
	}
	st, err := server.ParseStatus(string(resp.Status))
	if err != nil {
		return Result{}, fmt.Errorf("status document: %w", err)
	}

	sent := time.Now()
	if err := c.WritePacket(&v1_17.StatusPing{Ping: codec.I64(sent.UnixMilli())}); err != nil {
		return Result{}, err
	}
	pong, err := expect[*v1_17.StatusPong](c)
	if err != nil {
		return Result{}, err
	}
	if int64(pong.Ping) != sent.UnixMilli() {
		return Result{}, fmt.Errorf("%w: pong %d for ping %d", server.ErrUnexpectedPacket, pong.Ping, sent.UnixMilli())
	}

	return Result{Addr: addr, Status: st, Latency: time.Since(sent)}, nil
}

func expect[T v1_17.Packet](c *transport.Conn[v1_17.Packet]) (T, error) {
	var zero T

	id, pk, ok, err := c.ReadPacket()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, fmt.Errorf("%w: unknown opcode 0x%02X", server.ErrUnexpectedPacket, id)
	}
	want, ok := pk.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T, want %T", server.ErrUnexpectedPacket, pk, zero)
	}
	return want, nil
}
