package v1_17

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/gstoney/mcproto/codec"
	"github.com/gstoney/mcproto/protocol"
	"github.com/gstoney/mcproto/types"
)

// roundTrip writes pk with its opcode and reads it back through Protocol.
func roundTrip(t *testing.T, s protocol.State, d protocol.Direction, pk Packet) (Packet, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if err := protocol.WritePacket(&buf, pk); err != nil {
		t.Fatalf("WritePacket failed: %v", err)
	}
	ser := bytes.Clone(buf.Bytes())

	r := codec.NewFrameReader(buf.Bytes())
	id, got, ok, err := Protocol.ReadPacket(s, d, r)
	if err != nil {
		t.Fatalf("ReadPacket failed: %v", err)
	}
	if !ok {
		t.Fatalf("ReadPacket found no record for %v/%v/0x%02X", s, d, id)
	}
	if r.Len() != 0 {
		t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Len())
	}
	return got, ser[1:]
}

func TestProtocol(t *testing.T) {
	if Protocol.Name() != "1.17" || Protocol.Version() != 755 {
		t.Errorf("unexpected protocol %q %d", Protocol.Name(), Protocol.Version())
	}
	if n := len(Protocol.Entries()); n != 68 {
		t.Errorf("expected 68 records, got %d", n)
	}
}

func TestHandshake(t *testing.T) {
	want := &Handshake{ProtocolVersion: 758, Host: "play.example.com", Port: 25565, Next: 2}
	got, ser := roundTrip(t, protocol.Handshaking, protocol.ServerBound, want)

	if !reflect.DeepEqual(got, Packet(want)) {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	expected := append([]byte{0xf6, 0x05, 16}, "play.example.com"...)
	expected = append(expected, 0x63, 0xdd, 0x02)
	if !bytes.Equal(ser, expected) {
		t.Errorf("Encode expected %x, got %x", expected, ser)
	}
}

// Every record whose zero value is consistent with its predicates must
// survive a round trip.
func TestZeroRecords(t *testing.T) {
	// Mode 0 requires the team options to be set.
	inconsistent := map[string]bool{"v1_17.Teams": true}

	for _, e := range Protocol.Entries() {
		if inconsistent[e.Name] {
			continue
		}

		t.Run(e.Name, func(t *testing.T) {
			newFn, ok := Protocol.Lookup(e.State, e.Direction, e.ID)
			if !ok {
				t.Fatalf("Lookup failed for listed entry %v", e.Key)
			}

			pk := newFn()
			if pk.ID() != e.ID {
				t.Errorf("record id 0x%02X registered as 0x%02X", pk.ID(), e.ID)
			}

			got, _ := roundTrip(t, e.State, e.Direction, pk)
			if !reflect.DeepEqual(got, pk) {
				t.Errorf("expected %+v, got %+v", pk, got)
			}
		})
	}
}

func TestLayoutsValid(t *testing.T) {
	layouts := map[string]interface{ Validate() error }{
		"Handshake":   handshakeLayout,
		"TabComplete": tabCompleteLayout,
		"UseEntity":   useEntityLayout,
		"BossBar":     bossBarLayout,
		"Teams":       teamsLayout,
		"Particle":    particleLayout,
	}
	for name, l := range layouts {
		if err := l.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestTabComplete(t *testing.T) {
	pos := types.Position{X: 1, Y: 2, Z: 3}

	t.Run("with target", func(t *testing.T) {
		want := &TabComplete{
			Text:      "/gi",
			HasTarget: true,
			Target:    codec.Some[types.Position, *types.Position](pos),
		}
		got, ser := roundTrip(t, protocol.Play, protocol.ServerBound, want)

		if !reflect.DeepEqual(got, Packet(want)) {
			t.Errorf("expected %+v, got %+v", want, got)
		}
		expected := []byte{0x03, '/', 'g', 'i', 0x00, 0x01, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x30, 0x02}
		if !bytes.Equal(ser, expected) {
			t.Errorf("Encode expected %x, got %x", expected, ser)
		}
	})

	t.Run("without target", func(t *testing.T) {
		v := &TabComplete{Text: "/gi", Target: codec.Some[types.Position, *types.Position](pos)}
		got, ser := roundTrip(t, protocol.Play, protocol.ServerBound, v)

		if len(ser) != 6 {
			t.Errorf("target written although HasTarget is false: %x", ser)
		}
		if tc := got.(*TabComplete); tc.Target.Valid {
			t.Errorf("absent target decoded as %+v", tc.Target)
		}
	})

	t.Run("stale target", func(t *testing.T) {
		got := &TabComplete{Target: codec.Some[types.Position, *types.Position](pos)}
		if err := got.Decode(codec.NewFrameReader([]byte{0x00, 0x00, 0x00})); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got.Target.Valid {
			t.Errorf("Decode kept a target that is not on the wire")
		}
	})
}

func TestUseEntity(t *testing.T) {
	type TestCase struct {
		desc string
		v    UseEntity
		size int
	}

	tests := []TestCase{
		{"interact", UseEntity{TargetID: 5, Type: 0, Hand: 1, Sneaking: true}, 4},
		{"attack", UseEntity{TargetID: 5, Type: 1, Sneaking: true}, 3},
		{"interact at", UseEntity{TargetID: 5, Type: 2, TargetX: 0.5, TargetY: 1, TargetZ: -0.5, Hand: 0}, 16},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			got, ser := roundTrip(t, protocol.Play, protocol.ServerBound, &tc.v)
			if len(ser) != tc.size {
				t.Errorf("expected %d bytes, got %d: %x", tc.size, len(ser), ser)
			}
			if !reflect.DeepEqual(got, Packet(&tc.v)) {
				t.Errorf("expected %+v, got %+v", tc.v, got)
			}
		})
	}
}

func TestBossBar(t *testing.T) {
	id := types.UUID(uuid.MustParse("4566e69f-c907-48ee-8d71-d7ba5aa00d20"))

	add := &BossBar{UUID: id, Action: 0, Title: types.Text("Wither"), Health: 1, Color: 5, Style: 0, Flags: 1}
	got, _ := roundTrip(t, protocol.Play, protocol.ClientBound, add)
	if !reflect.DeepEqual(got, Packet(add)) {
		t.Errorf("expected %+v, got %+v", add, got)
	}

	health := &BossBar{UUID: id, Action: 2, Title: types.Text("ignored"), Health: 0.5}
	got, ser := roundTrip(t, protocol.Play, protocol.ClientBound, health)
	if len(ser) != 16+1+4 {
		t.Errorf("health update expected 21 bytes, got %d", len(ser))
	}
	want := &BossBar{UUID: id, Action: 2, Health: 0.5}
	if !reflect.DeepEqual(got, Packet(want)) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestTeams(t *testing.T) {
	str := func(s string) codec.Option[types.String, *types.String] {
		return codec.Some[types.String, *types.String](types.String(s))
	}
	players := codec.Some[codec.Array[types.VarInt, *types.VarInt, types.String, *types.String]](
		codec.Array[types.VarInt, *types.VarInt, types.String, *types.String]{"alice", "bob"},
	)

	create := &Teams{
		Name:              "blue",
		Mode:              0,
		DisplayName:       str("Blue Team"),
		Flags:             codec.Some[codec.U8, *codec.U8](1),
		NameTagVisibility: str("always"),
		CollisionRule:     str("never"),
		Formatting:        codec.Some[types.VarInt, *types.VarInt](9),
		Prefix:            str("[B] "),
		Suffix:            str(""),
		Players:           players,
	}
	got, _ := roundTrip(t, protocol.Play, protocol.ClientBound, create)
	if !reflect.DeepEqual(got, Packet(create)) {
		t.Errorf("expected %+v, got %+v", create, got)
	}

	remove := &Teams{Name: "blue", Mode: 1}
	got, ser := roundTrip(t, protocol.Play, protocol.ClientBound, remove)
	if !bytes.Equal(ser, []byte{0x04, 'b', 'l', 'u', 'e', 0x01}) {
		t.Errorf("remove expected only name and mode, got %x", ser)
	}
	if !reflect.DeepEqual(got, Packet(remove)) {
		t.Errorf("expected %+v, got %+v", remove, got)
	}
}

func TestWindowItems(t *testing.T) {
	tag, err := types.NewNBT("", map[string]int32{"Damage": 12})
	if err != nil {
		t.Fatalf("NewNBT failed: %v", err)
	}

	want := &WindowItems{
		WindowID: 1,
		Items: codec.Array[codec.I16, *codec.I16, types.Slot, *types.Slot]{
			{},
			{Present: true, ItemID: 586, Count: 1, Tag: tag},
			{Present: true, ItemID: 1, Count: 64},
		},
	}
	got, _ := roundTrip(t, protocol.Play, protocol.ClientBound, want)
	if !reflect.DeepEqual(got, Packet(want)) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestPluginMessage(t *testing.T) {
	want := &PluginMessageClientbound{Channel: "minecraft:brand", Data: codec.Rest("\x07vanilla")}
	got, ser := roundTrip(t, protocol.Play, protocol.ClientBound, want)

	if !reflect.DeepEqual(got, Packet(want)) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if !bytes.HasSuffix(ser, []byte("\x07vanilla")) {
		t.Errorf("payload not written verbatim: %x", ser)
	}
}

func TestUnknownOpcode(t *testing.T) {
	r := codec.NewFrameReader([]byte{0x7f, 0x01})
	id, got, ok, err := Protocol.ReadPacket(protocol.Status, protocol.ServerBound, r)
	if err != nil || ok || got != nil {
		t.Errorf("expected no match, got %+v ok=%v err=%v", got, ok, err)
	}
	if id != 0x7f || r.Len() != 1 {
		t.Errorf("expected id 0x7f with the payload untouched, got 0x%02X and %d bytes", id, r.Len())
	}
}
