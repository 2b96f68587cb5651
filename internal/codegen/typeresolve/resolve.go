// Package typeresolve decides which storage type holds the decoded value of a
// registry field, from its semantic tag, bit length and resolution.
package typeresolve

import "log/slog"

// DefaultLookup is the placeholder type used for lookup fields that have no
// generated enumeration.
const DefaultLookup = "Dummy"

// LookupNamer names the type of a lookup-table field.
type LookupNamer func(fieldID string) string

// Resolver maps field attributes to a Storage.
type Resolver struct {
	lookup LookupNamer
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookupNamer overrides how lookup-table fields are named.
func WithLookupNamer(n LookupNamer) Option {
	return func(r *Resolver) { r.lookup = n }
}

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

func New(opts ...Option) *Resolver {
	r := &Resolver{
		lookup: func(string) string { return DefaultLookup },
		logger: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Resolve returns the storage for one field.
//
// An unknown tag resolves to KindUnknown without error; the caller is
// expected to surface it. A scaled "Integer" returns *UnsupportedScalingError.
func (r *Resolver) Resolve(fieldID string, tag Tag, bitLength int, resolution float64) (Storage, error) {
	switch tag.Semantic {
	case SemanticBinaryData, SemanticDecimal, SemanticNone:
		return IntegerFor(bitLength), nil
	case SemanticLookupTable:
		return Storage{Kind: KindLookup, Lookup: r.lookup(fieldID)}, nil
	case SemanticManufacturerCode:
		return Storage{Kind: KindUint16}, nil
	case SemanticTemperature:
		return Storage{Kind: KindTemperature}, nil
	case SemanticTemperatureHighRes:
		return Storage{Kind: KindTemperatureHighRes}, nil
	case SemanticPressure:
		return Storage{Kind: KindPressure}, nil
	case SemanticPressureHighRes:
		return Storage{Kind: KindPressureHighRes}, nil
	case SemanticASCIIText, SemanticStringLengthControl, SemanticStringLength, SemanticStringStartStop:
		return Storage{Kind: KindText}, nil
	case SemanticDate:
		return Storage{Kind: KindDate}, nil
	case SemanticTime:
		return Storage{Kind: KindTime}, nil
	case SemanticLatitude:
		return Storage{Kind: KindLatitude}, nil
	case SemanticLongitude:
		return Storage{Kind: KindLongitude}, nil
	case SemanticBitfield:
		return Storage{Kind: KindBitfield}, nil
	case SemanticIEEEFloat:
		return FloatFor(bitLength), nil
	case SemanticInteger:
		if resolution == 1.0 {
			return IntegerFor(bitLength), nil
		}
		r.logger.Error("Scaled integer field", "field", fieldID, "resolution", resolution, "bitLength", bitLength)
		return Storage{}, &UnsupportedScalingError{FieldID: fieldID, BitLength: bitLength, Resolution: resolution}
	default:
		r.logger.Warn("Unresolved semantic type", "field", fieldID, "type", tag.Raw)
		return Storage{Kind: KindUnknown, Tag: tag.Raw}, nil
	}
}

// IntegerFor sizes an unsigned integer by bit length. A single bit is a
// boolean, anything wider than 64 bits (or zero) is a byte sequence.
func IntegerFor(bitLength int) Storage {
	switch {
	case bitLength == 1:
		return Storage{Kind: KindBool}
	case bitLength >= 2 && bitLength <= 8:
		return Storage{Kind: KindUint8}
	case bitLength >= 9 && bitLength <= 16:
		return Storage{Kind: KindUint16}
	case bitLength >= 17 && bitLength <= 32:
		return Storage{Kind: KindUint32}
	case bitLength >= 33 && bitLength <= 64:
		return Storage{Kind: KindUint64}
	default:
		return Storage{Kind: KindBytes}
	}
}

// FloatFor sizes a floating point value by bit length. Widths below 17 bits
// map to placeholder types the message library has to provide.
func FloatFor(bitLength int) Storage {
	switch {
	case bitLength < 8:
		return Storage{Kind: KindFloat8}
	case bitLength <= 16:
		return Storage{Kind: KindFloat16}
	case bitLength <= 32:
		return Storage{Kind: KindFloat32}
	default:
		return Storage{Kind: KindBytes}
	}
}
