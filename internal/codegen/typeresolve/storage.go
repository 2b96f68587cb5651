package typeresolve

import "fmt"

// Kind is the language-neutral storage representation of a decoded field.
type Kind int

const (
	KindUnknown Kind = iota
	KindBool
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindBytes
	KindFloat8
	KindFloat16
	KindFloat32
	KindText
	KindTemperature
	KindTemperatureHighRes
	KindPressure
	KindPressureHighRes
	KindDate
	KindTime
	KindLatitude
	KindLongitude
	KindBitfield
	KindLookup
)

var kindNames = [...]string{
	KindUnknown:            "unknown",
	KindBool:               "bool",
	KindUint8:              "uint8",
	KindUint16:             "uint16",
	KindUint32:             "uint32",
	KindUint64:             "uint64",
	KindBytes:              "bytes",
	KindFloat8:             "float8",
	KindFloat16:            "float16",
	KindFloat32:            "float32",
	KindText:               "text",
	KindTemperature:        "temperature",
	KindTemperatureHighRes: "temperature-hires",
	KindPressure:           "pressure",
	KindPressureHighRes:    "pressure-hires",
	KindDate:               "date",
	KindTime:               "time",
	KindLatitude:           "latitude",
	KindLongitude:          "longitude",
	KindBitfield:           "bitfield",
	KindLookup:             "lookup",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Storage is the resolved representation of one field.
// Lookup is set for KindLookup, Tag carries the unrecognised text for
// KindUnknown.
type Storage struct {
	Kind   Kind
	Lookup string
	Tag    string
}

func (s Storage) String() string {
	switch s.Kind {
	case KindLookup:
		return "lookup(" + s.Lookup + ")"
	case KindUnknown:
		return fmt.Sprintf("unknown(%q)", s.Tag)
	default:
		return s.Kind.String()
	}
}

// Unknown reports whether the field needs manual follow-up.
func (s Storage) Unknown() bool { return s.Kind == KindUnknown }
