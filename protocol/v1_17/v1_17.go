// Package v1_17 holds the packet records of Minecraft: Java Edition 1.17
// (protocol 755).
//
// The records, their layouts and Protocol are generated from grammar.toml.
// Every record is used through a pointer, which is what implements Packet.
package v1_17

//go:generate go run ../../cmd/protogen -in grammar.toml -out zz_generated.go
