package typeresolve

import "sort"

// Semantic is the closed set of semantic-type tags the resolver understands.
// Tags outside the set parse to SemanticOther and keep their raw text.
type Semantic int

const (
	SemanticNone Semantic = iota
	SemanticBinaryData
	SemanticLookupTable
	SemanticManufacturerCode
	SemanticTemperature
	SemanticTemperatureHighRes
	SemanticPressure
	SemanticPressureHighRes
	SemanticASCIIText
	SemanticStringLengthControl
	SemanticStringLength
	SemanticStringStartStop
	SemanticDate
	SemanticTime
	SemanticLatitude
	SemanticLongitude
	SemanticBitfield
	SemanticIEEEFloat
	SemanticDecimal
	SemanticInteger
	SemanticOther
)

var semanticTags = map[string]Semantic{
	"":                    SemanticNone,
	"Binary data":         SemanticBinaryData,
	"Lookup table":        SemanticLookupTable,
	"Manufacturer code":   SemanticManufacturerCode,
	"Temperature":         SemanticTemperature,
	"Temperature (hires)": SemanticTemperatureHighRes,
	"Pressure":            SemanticPressure,
	"Pressure (hires)":    SemanticPressureHighRes,
	"ASCII text":          SemanticASCIIText,

	"ASCII or UNICODE string starting with length and control byte": SemanticStringLengthControl,
	"ASCII string starting with length byte":                        SemanticStringLength,
	"String with start/stop byte":                                   SemanticStringStartStop,

	"Date":                   SemanticDate,
	"Time":                   SemanticTime,
	"Latitude":               SemanticLatitude,
	"Longitude":              SemanticLongitude,
	"Bitfield":               SemanticBitfield,
	"IEEE Float":             SemanticIEEEFloat,
	"Decimal encoded number": SemanticDecimal,
	"Integer":                SemanticInteger,
}

// Tag is a parsed semantic-type tag. Raw always holds the text found in the
// registry so unknown tags can be reported verbatim.
type Tag struct {
	Semantic Semantic
	Raw      string
}

// ParseTag maps registry text to a Tag by exact match.
func ParseTag(raw string) Tag {
	if s, ok := semanticTags[raw]; ok {
		return Tag{Semantic: s, Raw: raw}
	}
	return Tag{Semantic: SemanticOther, Raw: raw}
}

// Known reports whether the tag belongs to the closed set.
func (t Tag) Known() bool { return t.Semantic != SemanticOther }

func (t Tag) String() string {
	if t.Raw == "" {
		return "(none)"
	}
	return t.Raw
}

// KnownTags returns every recognised tag text in sorted order.
func KnownTags() []string {
	tags := make([]string, 0, len(semanticTags))
	for t := range semanticTags {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
