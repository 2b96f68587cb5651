package schema

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/n2kgen/n2kgen/internal/codegen/typeresolve"
)

// Format identifies the syntax of a registry document.
type Format int

const (
	FormatXML Format = iota
	FormatYAML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unsupported registry format %q (expected .xml, .yaml, .yml or .json)", filepath.Ext(path))
	}
}

type options struct {
	logger *slog.Logger
}

// Option configures parsing.
type Option func(*options)

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Load reads and parses the registry document at path.
func Load(path string, opts ...Option) (*Registry, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data, format, opts...)
}

// Parse builds a Registry from a document. Structural problems, missing
// required attributes and malformed numbers are reported as *Error.
func Parse(data []byte, format Format, opts ...Option) (*Registry, error) {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		raw rawDocument
		err error
	)
	switch format {
	case FormatXML:
		raw, err = decodeXML(data)
	case FormatYAML:
		raw, err = decodeYAML(data)
	case FormatJSON:
		raw, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("unsupported registry format %s", format)
	}
	if err != nil {
		return nil, &Error{Reason: "malformed " + format.String() + " document", Err: err}
	}

	reg, err := build(raw, o.logger)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("Parsed registry", "format", format, "messages", len(reg.Messages))
	return reg, nil
}

func build(raw rawDocument, logger *slog.Logger) (*Registry, error) {
	switch {
	case raw.Comment == nil:
		return nil, errorf("", "", "missing Comment")
	case raw.CreatorCode == nil:
		return nil, errorf("", "", "missing CreatorCode")
	case raw.License == nil:
		return nil, errorf("", "", "missing License")
	case !raw.HasMessages:
		return nil, errorf("", "", "missing PGNs container")
	}

	reg := &Registry{
		Comment:     trim(*raw.Comment),
		CreatorCode: trim(*raw.CreatorCode),
		License:     trim(*raw.License),
		Messages:    make([]Message, 0, len(raw.Messages)),
	}
	for i, rm := range raw.Messages {
		m, err := buildMessage(i, rm, logger)
		if err != nil {
			return nil, err
		}
		reg.Messages = append(reg.Messages, m)
	}
	return reg, nil
}

func buildMessage(index int, rm rawMessage, logger *slog.Logger) (Message, error) {
	id := trim(rm.ID)
	name := id
	if name == "" {
		name = fmt.Sprintf("PGNInfo[%d]", index)
	}
	if r, _ := utf8.DecodeRuneInString(id); id == "" || !unicode.IsLetter(r) {
		return Message{}, errorf(name, "", "identifier %q must start with a letter", id)
	}

	pgn, err := strconv.ParseUint(trim(rm.PGN), 10, 32)
	if err != nil {
		return Message{}, &Error{Message: name, Reason: "invalid PGN", Err: err}
	}
	length, err := parseInt(rm.Length, 32)
	if err != nil {
		return Message{}, &Error{Message: name, Reason: "invalid Length", Err: err}
	}
	var repeating int64
	if trim(rm.RepeatingFields) != "" {
		if repeating, err = parseInt(rm.RepeatingFields, 32); err != nil {
			return Message{}, &Error{Message: name, Reason: "invalid RepeatingFields", Err: err}
		}
	}

	m := Message{
		PGN:             uint32(pgn),
		ID:              id,
		Description:     trim(rm.Description),
		Length:          int(length),
		RepeatingFields: int(repeating),
		Fields:          make([]Field, 0, len(rm.Fields)),
	}
	for i, rf := range rm.Fields {
		f, err := buildField(name, i, rf, logger)
		if err != nil {
			return Message{}, err
		}
		m.Fields = append(m.Fields, f)
	}
	return m, nil
}

func buildField(msg string, index int, rf rawField, logger *slog.Logger) (Field, error) {
	id := trim(rf.ID)
	if id == "" {
		return Field{}, errorf(msg, fmt.Sprintf("Field[%d]", index), "missing Id")
	}

	f := Field{
		Order: index + 1,
		ID:    id,
		Name:  trim(rf.Name),
		Type:  typeresolve.ParseTag(trim(rf.Type)),
		Units: trim(rf.Units),
	}

	if trim(rf.Order) != "" {
		order, err := parseInt(rf.Order, 32)
		if err != nil {
			return Field{}, &Error{Message: msg, Field: id, Reason: "invalid Order", Err: err}
		}
		f.Order = int(order)
	}

	if rf.BitLength == nil {
		return Field{}, errorf(msg, id, "missing BitLength")
	}
	bits, err := strconv.ParseUint(trim(*rf.BitLength), 10, 31)
	if err != nil {
		return Field{}, &Error{Message: msg, Field: id, Reason: "invalid BitLength", Err: err}
	}
	f.BitLength = int(bits)

	if trim(rf.BitOffset) != "" {
		off, err := strconv.ParseUint(trim(rf.BitOffset), 10, 31)
		if err != nil {
			return Field{}, &Error{Message: msg, Field: id, Reason: "invalid BitOffset", Err: err}
		}
		f.BitOffset = int(off)
		f.HasBitOffset = true
	}

	if res := trim(rf.Resolution); res != "" {
		v, err := strconv.ParseFloat(res, 64)
		if err != nil {
			logger.Warn("Unparsable resolution, using 0", "message", msg, "field", id, "resolution", res)
		} else {
			f.Resolution = v
			f.HasResolution = true
		}
	}

	if s := trim(rf.Signed); s != "" {
		signed, err := strconv.ParseBool(s)
		if err != nil {
			return Field{}, &Error{Message: msg, Field: id, Reason: "invalid Signed", Err: err}
		}
		f.Signed = signed
	}

	for _, l := range rf.EnumValues {
		v, err := parseInt(l.Value, 64)
		if err != nil {
			return Field{}, &Error{Message: msg, Field: id, Reason: "invalid lookup value", Err: err}
		}
		f.Lookup = append(f.Lookup, LookupValue{Value: v, Name: l.name()})
	}
	return f, nil
}

func trim(t text) string {
	return strings.TrimSpace(string(t))
}
