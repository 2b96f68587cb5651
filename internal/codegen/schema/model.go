// Package schema holds the in-memory model of a PGN registry and the parsers
// that build it from canboat-style XML, YAML or JSON documents.
package schema

import "github.com/n2kgen/n2kgen/internal/codegen/typeresolve"

// Registry is the parsed definition document. It is never mutated after Parse.
type Registry struct {
	Comment     string
	CreatorCode string
	License     string
	Messages    []Message
}

// Message is one parameter group definition.
type Message struct {
	PGN             uint32
	ID              string
	Description     string
	Length          int // declared length, bytes in canboat registries
	RepeatingFields int
	Fields          []Field
}

// Field is one bit-packed field of a message.
type Field struct {
	Order         int
	ID            string
	Name          string
	BitLength     int
	BitOffset     int
	HasBitOffset  bool // false means contiguous after the previous field
	Type          typeresolve.Tag
	Resolution    float64
	HasResolution bool
	Units         string
	Signed        bool
	Lookup        []LookupValue
}

// LookupValue is one entry of a lookup table field.
type LookupValue struct {
	Value int64
	Name  string
}

// Message returns the definition with the given PGN.
func (r *Registry) Message(pgn uint32) (Message, bool) {
	for _, m := range r.Messages {
		if m.PGN == pgn {
			return m, true
		}
	}
	return Message{}, false
}

// Select returns the messages whose PGN is in pgns, in registry order.
// Registries may define several variants of the same PGN; all are kept.
func (r *Registry) Select(pgns []uint32) []Message {
	want := make(map[uint32]bool, len(pgns))
	for _, p := range pgns {
		want[p] = true
	}
	var out []Message
	for _, m := range r.Messages {
		if want[m.PGN] {
			out = append(out, m)
		}
	}
	return out
}
