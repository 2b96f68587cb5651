package meta

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/n2kgen/n2kgen/internal/codegen/common"
	"github.com/n2kgen/n2kgen/internal/codegen/schema"
	"github.com/n2kgen/n2kgen/internal/codegen/typeresolve"
)

// UnsupportedPolicy decides what happens when a field cannot be resolved
// because of unsupported scaling.
type UnsupportedPolicy int

const (
	// PolicyAbort stops the whole run. This is the default.
	PolicyAbort UnsupportedPolicy = iota
	// PolicySkip leaves the offending message out and continues.
	PolicySkip
)

func (p UnsupportedPolicy) String() string {
	if p == PolicySkip {
		return "skip"
	}
	return "abort"
}

// ParsePolicy accepts "abort" (or "") and "skip".
func ParsePolicy(s string) (UnsupportedPolicy, error) {
	switch s {
	case "", "abort":
		return PolicyAbort, nil
	case "skip":
		return PolicySkip, nil
	default:
		return PolicyAbort, fmt.Errorf("unknown unsupported-field policy %q (expected abort or skip)", s)
	}
}

// Builder resolves registry messages into Metadata.
type Builder struct {
	logger *slog.Logger
	policy UnsupportedPolicy
}

func NewBuilder(logger *slog.Logger, policy UnsupportedPolicy) *Builder {
	return &Builder{logger: logger, policy: policy}
}

// Build resolves every field of msgs. Under PolicyAbort the first
// *typeresolve.UnsupportedScalingError is returned and nothing is built.
func (b *Builder) Build(header common.HeaderInfo, msgs []schema.Message) (*Metadata, error) {
	md := &Metadata{Header: header}

	for _, sm := range msgs {
		m, enums, warnings, err := b.buildMessage(sm)
		if err != nil {
			var scaling *typeresolve.UnsupportedScalingError
			if b.policy == PolicySkip && errors.As(err, &scaling) {
				b.logger.Warn("Skipping message with unsupported field", "pgn", sm.PGN, "message", sm.ID, "error", err)
				md.Skipped = append(md.Skipped, SkippedMessage{PGN: sm.PGN, ID: sm.ID, Err: err})
				continue
			}
			return nil, err
		}
		md.Messages = append(md.Messages, m)
		md.Enums = append(md.Enums, enums...)
		md.Warnings = append(md.Warnings, warnings...)
	}
	return md, nil
}

func (b *Builder) buildMessage(sm schema.Message) (Message, []Enum, []typeresolve.UnresolvedFieldType, error) {
	m := Message{
		PGN:         sm.PGN,
		ID:          sm.ID,
		Description: sm.Description,
		Length:      sm.Length,
		TypeName:    common.ToTypeName(sm.ID),
		ModuleName:  common.ToSnakeCase(sm.ID),
		Fields:      make([]Field, 0, len(sm.Fields)),
	}

	var enums []Enum
	lookups := make(map[string]string)
	for _, f := range sm.Fields {
		if len(f.Lookup) == 0 || common.IsReserved(f.ID) {
			continue
		}
		e := buildEnum(m.TypeName, sm.ID, f)
		lookups[f.ID] = e.Name
		enums = append(enums, e)
	}

	resolver := typeresolve.New(
		typeresolve.WithLogger(b.logger.With("pgn", sm.PGN, "message", sm.ID)),
		typeresolve.WithLookupNamer(func(fieldID string) string {
			if name, ok := lookups[fieldID]; ok {
				return name
			}
			return typeresolve.DefaultLookup
		}),
	)

	var warnings []typeresolve.UnresolvedFieldType
	for _, f := range sm.Fields {
		st, err := resolver.Resolve(f.ID, f.Type, f.BitLength, f.Resolution)
		if err != nil {
			return Message{}, nil, nil, fmt.Errorf("message %s (PGN %d): %w", sm.ID, sm.PGN, err)
		}
		if st.Unknown() {
			warnings = append(warnings, typeresolve.UnresolvedFieldType{Message: sm.ID, FieldID: f.ID, Tag: f.Type.Raw})
		}
		m.Fields = append(m.Fields, Field{
			ID:            f.ID,
			Name:          f.Name,
			SnakeName:     common.ToSnakeCase(f.ID),
			Order:         f.Order,
			BitLength:     f.BitLength,
			BitOffset:     f.BitOffset,
			HasBitOffset:  f.HasBitOffset,
			Tag:           f.Type,
			Resolution:    f.Resolution,
			HasResolution: f.HasResolution,
			Units:         f.Units,
			Storage:       st,
			Reserved:      common.IsReserved(f.ID),
		})
	}

	b.logger.Debug("Resolved message", "pgn", sm.PGN, "message", sm.ID, "fields", len(m.Fields), "enums", len(enums))
	return m, enums, warnings, nil
}

func buildEnum(typeName, messageID string, f schema.Field) Enum {
	e := Enum{
		Name:    typeName + common.ToTypeName(f.ID),
		Message: messageID,
		FieldID: f.ID,
		Repr:    enumRepr(f.BitLength),
		Values:  make([]EnumValue, 0, len(f.Lookup)),
	}
	seen := make(map[string]bool, len(f.Lookup))
	for _, l := range f.Lookup {
		ident := common.SanitizeLeadingDigit(common.ToPascalCase(l.Name))
		if ident == "" {
			ident = "Value" + strconv.FormatInt(l.Value, 10)
		}
		if seen[ident] {
			ident += strconv.FormatInt(l.Value, 10)
		}
		seen[ident] = true
		e.Values = append(e.Values, EnumValue{Ident: ident, Label: common.OneLine(l.Name), Value: l.Value})
	}
	return e
}

func enumRepr(bitLength int) typeresolve.Kind {
	switch k := typeresolve.IntegerFor(bitLength).Kind; k {
	case typeresolve.KindBool:
		return typeresolve.KindUint8
	case typeresolve.KindBytes:
		return typeresolve.KindUint64
	default:
		return k
	}
}
