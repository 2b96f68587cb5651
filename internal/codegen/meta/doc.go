package meta

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/n2kgen/n2kgen/internal/codegen/common"
)

// Summary is the one-line description used in generated doc comments:
// "Engine speed (PGN 60928)".
func (m Message) Summary() string {
	doc := m.Description
	if doc == "" {
		doc = m.ID
	}
	return fmt.Sprintf("%s (PGN %d)", common.OneLine(doc), m.PGN)
}

// Summary describes the wire layout of a field:
// "Engine speed: 16 bits at offset 8, type Integer, resolution 1".
// Unresolved tags are called out so reviewers cannot miss them.
func (f Field) Summary() string {
	var b strings.Builder
	name := f.Name
	if name == "" {
		name = f.ID
	}
	b.WriteString(common.OneLine(name))
	fmt.Fprintf(&b, ": %d bits", f.BitLength)
	if f.HasBitOffset {
		fmt.Fprintf(&b, " at offset %d", f.BitOffset)
	}
	fmt.Fprintf(&b, ", type %s", f.Tag)
	if f.HasResolution {
		b.WriteString(", resolution " + strconv.FormatFloat(f.Resolution, 'g', -1, 64))
	}
	if f.Units != "" {
		b.WriteString(", units " + common.OneLine(f.Units))
	}
	if f.Storage.Unknown() {
		fmt.Fprintf(&b, " (unresolved type %q)", f.Tag.Raw)
	}
	return b.String()
}
