package typeresolve

import (
	"fmt"
	"strconv"
)

// UnsupportedScalingError is returned for a plain "Integer" field whose
// resolution is not exactly 1. Scaled integers have no storage mapping yet
// and the run has to stop.
type UnsupportedScalingError struct {
	FieldID    string
	BitLength  int
	Resolution float64
}

func (e *UnsupportedScalingError) Error() string {
	return fmt.Sprintf("field %q: scaled integer (resolution %s, %d bits) is not supported",
		e.FieldID, strconv.FormatFloat(e.Resolution, 'g', -1, 64), e.BitLength)
}

// UnresolvedFieldType describes a field whose semantic tag is not in the
// known set. It is a warning: generation continues with an UNKNOWN type.
type UnresolvedFieldType struct {
	Message string
	FieldID string
	Tag     string
}

func (w UnresolvedFieldType) Error() string {
	if w.Message == "" {
		return fmt.Sprintf("field %q: unresolved semantic type %q", w.FieldID, w.Tag)
	}
	return fmt.Sprintf("%s.%s: unresolved semantic type %q", w.Message, w.FieldID, w.Tag)
}
