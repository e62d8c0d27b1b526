// Package server answers the handshaking, status and login states of the
// 1.17 protocol. Clients that ask to log in are told why they cannot.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/gstoney/mcproto/internal/config"
	"github.com/gstoney/mcproto/protocol"
	"github.com/gstoney/mcproto/protocol/v1_17"
	"github.com/gstoney/mcproto/transport"
	"github.com/gstoney/mcproto/types"
)

var (
	ErrUnexpectedPacket = errors.New("unexpected packet")
	ErrUnknownIntent    = errors.New("unknown handshake intent")
)

// Handshake intents.
const (
	IntentStatus = 1
	IntentLogin  = 2
)

const DefaultTimeout = 10 * time.Second

// A Server defines parameters for running a status server.
type Server struct {
	MOTD       string
	MaxPlayers int
	// LoginMessage is the disconnect reason sent to clients that try to
	// log in.
	LoginMessage string
	// CompressionThreshold is announced before the disconnect. Negative
	// disables compression.
	CompressionThreshold int
	Timeout              time.Duration
	Transport            transport.Config

	logger zerolog.Logger
	active atomic.Int32
}

func New(cfg config.Server) *Server {
	return &Server{
		MOTD:                 cfg.MOTD,
		MaxPlayers:           cfg.MaxPlayers,
		LoginMessage:         "This server only answers status requests.",
		CompressionThreshold: cfg.CompressionThreshold,
		Timeout:              DefaultTimeout,
		Transport:            cfg.Transport,
		logger:               config.ComponentLogger("server"),
	}
}

// A Session stores connection and states of a client.
type Session struct {
	LocalAddr  net.Addr
	RemoteAddr net.Addr

	State protocol.State

	ProtocolVersion int32
	ServerAddr      string
	ServerPort      uint16
	Intent          int32
	Name            string
}

// Serve accepts incoming connections on the Listener l,
// creating a new goroutine for each.
// The goroutines read handshake packet and either respond to
// status request or reject a login request.
// Serve returns nil once ctx is done and every connection has finished.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	stop := context.AfterFunc(ctx, func() { l.Close() })
	defer stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	s.logger.Info().Str("addr", l.Addr().String()).Msg("serving")

	for {
		c, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			s.logger.Warn().Err(err).Msg("accept failed")
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := s.ServeConn(ctx, c); err != nil {
				s.logger.Debug().Err(err).Str("remote", c.RemoteAddr().String()).Msg("connection failed")
			}
		}()
	}
}

// ServeConn runs one connection to completion and closes it.
func (s *Server) ServeConn(ctx context.Context, c net.Conn) error {
	defer c.Close()
	stop := context.AfterFunc(ctx, func() { c.Close() })
	defer stop()

	s.active.Add(1)
	defer s.active.Add(-1)

	start := time.Now()
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c.SetDeadline(start.Add(timeout))

	t := transport.NewTransport(c, c, s.Transport)
	conn := transport.NewConn(t, v1_17.Protocol, protocol.ServerBound)
	sess := &Session{
		LocalAddr:  c.LocalAddr(),
		RemoteAddr: c.RemoteAddr(),
		State:      protocol.Handshaking,
	}

	err := s.handshake(conn, sess)
	if err == nil {
		switch sess.State {
		case protocol.Status:
			err = s.status(conn)
		case protocol.Login:
			err = s.login(conn, sess)
		}
	}

	recordConnection(sess.State, err, time.Since(start))
	return err
}

func (s *Server) handshake(conn *transport.Conn[v1_17.Packet], sess *Session) error {
	pk, err := s.next(conn)
	if err != nil {
		return err
	}
	hs, ok := pk.(*v1_17.Handshake)
	if !ok {
		return fmt.Errorf("%w: %T during handshake", ErrUnexpectedPacket, pk)
	}

	sess.ProtocolVersion = int32(hs.ProtocolVersion)
	sess.ServerAddr = string(hs.Host)
	sess.ServerPort = uint16(hs.Port)
	sess.Intent = int32(hs.Next)

	switch sess.Intent {
	case IntentStatus:
		sess.State = protocol.Status
	case IntentLogin:
		sess.State = protocol.Login
	default:
		return fmt.Errorf("%w: %d", ErrUnknownIntent, sess.Intent)
	}
	conn.SetState(sess.State)

	s.logger.Debug().
		Str("remote", sess.RemoteAddr.String()).
		Int32("protocol", sess.ProtocolVersion).
		Str("host", sess.ServerAddr).
		Stringer("state", sess.State).
		Msg("handshake")
	return nil
}

// status answers status requests until the client pings.
func (s *Server) status(conn *transport.Conn[v1_17.Packet]) error {
	for {
		pk, err := s.next(conn)
		if err != nil {
			return err
		}

		switch pk := pk.(type) {
		case *v1_17.StatusRequest:
			doc, err := s.Status().Marshal()
			if err != nil {
				return err
			}
			if err := conn.WritePacket(&v1_17.StatusResponse{Status: types.String(doc)}); err != nil {
				return err
			}
		case *v1_17.StatusPing:
			return conn.WritePacket(&v1_17.StatusPong{Ping: pk.Ping})
		default:
			return fmt.Errorf("%w: %T in status", ErrUnexpectedPacket, pk)
		}
	}
}

func (s *Server) login(conn *transport.Conn[v1_17.Packet], sess *Session) error {
	pk, err := s.next(conn)
	if err != nil {
		return err
	}
	start, ok := pk.(*v1_17.LoginStart)
	if !ok {
		return fmt.Errorf("%w: %T in login", ErrUnexpectedPacket, pk)
	}
	sess.Name = string(start.Username)

	if s.CompressionThreshold >= 0 {
		err := conn.WritePacket(&v1_17.SetInitialCompression{Threshold: types.VarInt(s.CompressionThreshold)})
		if err != nil {
			return err
		}
		conn.Transport().SetCompression(s.CompressionThreshold)
	}

	s.logger.Info().Str("player", sess.Name).Str("remote", sess.RemoteAddr.String()).Msg("login rejected")
	return conn.WritePacket(&v1_17.LoginDisconnect{Reason: types.Text(s.LoginMessage)})
}

// next reads the following known packet. Frames with unknown opcodes are
// counted and skipped.
func (s *Server) next(conn *transport.Conn[v1_17.Packet]) (v1_17.Packet, error) {
	for {
		id, pk, ok, err := conn.ReadPacket()
		if err != nil {
			return nil, err
		}
		if !ok {
			recordUnknown(conn.State())
			s.logger.Debug().Stringer("state", conn.State()).Int32("id", id).Msg("unknown packet skipped")
			continue
		}
		recordPacket(conn.State(), pk)
		return pk, nil
	}
}

// Active returns the number of connections being served.
func (s *Server) Active() int {
	return int(s.active.Load())
}
