// Package meta turns selected registry messages into the resolved, named
// description that every language generator renders.
package meta

import (
	"github.com/n2kgen/n2kgen/internal/codegen/common"
	"github.com/n2kgen/n2kgen/internal/codegen/typeresolve"
)

// Metadata holds everything needed for code generation.
// Shared between generator orchestrator and language-specific generators.
type Metadata struct {
	Header   common.HeaderInfo
	Messages []Message
	Enums    []Enum
	Warnings []typeresolve.UnresolvedFieldType
	Skipped  []SkippedMessage
}

// Message is a selected definition with names derived for emission.
type Message struct {
	PGN         uint32
	ID          string
	Description string
	Length      int
	TypeName    string // ToTypeName(ID)
	ModuleName  string // ToSnakeCase(ID), used for module and file names
	Fields      []Field
}

// Members returns the fields that become type members, in declaration order.
func (m Message) Members() []Field {
	out := make([]Field, 0, len(m.Fields))
	for _, f := range m.Fields {
		if !f.Reserved {
			out = append(out, f)
		}
	}
	return out
}

// Field is a resolved field. Reserved fields keep their storage but are
// emitted only as a comment.
type Field struct {
	ID            string
	Name          string
	SnakeName     string
	Order         int
	BitLength     int
	BitOffset     int
	HasBitOffset  bool
	Tag           typeresolve.Tag
	Resolution    float64
	HasResolution bool
	Units         string
	Storage       typeresolve.Storage
	Reserved      bool
}

// Enum is a lookup table turned into a named enumeration.
type Enum struct {
	Name    string
	Message string
	FieldID string
	Repr    typeresolve.Kind
	Values  []EnumValue
}

// EnumValue is one member of an Enum. Ident is a sanitized identifier,
// Label the registry text.
type EnumValue struct {
	Ident string
	Label string
	Value int64
}

// SkippedMessage records a message left out under PolicySkip.
type SkippedMessage struct {
	PGN uint32
	ID  string
	Err error
}

// Options carries target specific settings from the command line.
type Options struct {
	GoModule  string // import path of the generated Go module
	GoPackage string // package name of the Go entry file
}
