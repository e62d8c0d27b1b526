// Package protocol is the runtime half of the protocol engine.
//
// A version package describes each packet as a record struct with a Layout
// that lists its fields in wire order, and registers the records with a
// Builder. The resulting Protocol is an immutable table keyed by
// (State, Direction, opcode) that dispatches a payload to the matching
// record.
package protocol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gstoney/mcproto/codec"
)

var (
	ErrUnknownState     = errors.New("unknown state")
	ErrUnknownDirection = errors.New("unknown direction")
)

// State is the connection phase that decides which opcodes are valid.
type State byte

const (
	Handshaking State = iota
	Status
	Login
	Play
)

var stateNames = [...]string{
	Handshaking: "handshaking",
	Status:      "status",
	Login:       "login",
	Play:        "play",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", byte(s))
}

// ParseState accepts a state name in any case.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if strings.EqualFold(n, name) {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// Direction tells which endpoint sends a packet.
type Direction byte

const (
	ClientBound Direction = iota
	ServerBound
)

var directionNames = [...]string{
	ClientBound: "clientbound",
	ServerBound: "serverbound",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", byte(d))
}

// Opposite returns the direction of replies to d.
func (d Direction) Opposite() Direction {
	if d == ClientBound {
		return ServerBound
	}
	return ClientBound
}

// ParseDirection accepts a direction name in any case.
func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if strings.EqualFold(n, name) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// Packet is a record with a fixed opcode. Implementations are pointers to
// record structs; ID must not depend on the record's contents.
type Packet interface {
	ID() int32
	codec.Codec
}
