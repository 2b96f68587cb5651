package schema

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n2kgen/n2kgen/internal/codegen/typeresolve"
)

func expectedTwoMessages() *Registry {
	return &Registry{
		Comment:     "Two message fixture",
		CreatorCode: "n2kgen tests",
		License:     "MIT",
		Messages: []Message{
			{
				PGN:         60928,
				ID:          "isoAddressClaim",
				Description: "ISO Address Claim",
				Length:      8,
				Fields: []Field{
					{Order: 1, ID: "sourceAddress", Name: "Source Address", BitLength: 8, HasBitOffset: true, Type: typeresolve.ParseTag("")},
					{Order: 2, ID: "engineSpeed", Name: "Engine Speed", BitLength: 16, BitOffset: 8, HasBitOffset: true, Type: typeresolve.ParseTag("")},
					{Order: 4, ID: "arbitraryAddressCapable", Name: "Arbitrary address capable", BitLength: 1, Type: typeresolve.ParseTag("")},
				},
			},
			{
				PGN:         59904,
				ID:          "isoRequest",
				Description: "ISO Request",
				Length:      3,
				Fields: []Field{
					{
						Order:         1,
						ID:            "manufacturerCode",
						Name:          "Manufacturer Code",
						BitLength:     11,
						HasBitOffset:  true,
						Type:          typeresolve.ParseTag("Manufacturer code"),
						Resolution:    1,
						HasResolution: true,
						Lookup:        []LookupValue{{Value: 135, Name: "Airmar"}, {Value: 229, Name: "Garmin"}},
					},
				},
			},
		},
	}
}

func TestLoadFormats(t *testing.T) {
	for _, name := range []string{"two_messages.xml", "two_messages.yaml", "two_messages.json"} {
		t.Run(name, func(t *testing.T) {
			reg, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, expectedTwoMessages(), reg)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"pgns.xml", FormatXML, true},
		{"pgns.XML", FormatXML, true},
		{"dir/pgns.yaml", FormatYAML, true},
		{"pgns.yml", FormatYAML, true},
		{"pgns.json", FormatJSON, true},
		{"pgns.txt", 0, false},
		{"pgns", 0, false},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if !tt.ok {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestMissingRequiredAttributes(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		reason string
	}{
		{
			name:   "comment",
			doc:    `<PGNDefinitions><CreatorCode>c</CreatorCode><License>l</License><PGNs/></PGNDefinitions>`,
			reason: "missing Comment",
		},
		{
			name:   "creator code",
			doc:    `<PGNDefinitions><Comment>c</Comment><License>l</License><PGNs/></PGNDefinitions>`,
			reason: "missing CreatorCode",
		},
		{
			name:   "license",
			doc:    `<PGNDefinitions><Comment>c</Comment><CreatorCode>c</CreatorCode><PGNs/></PGNDefinitions>`,
			reason: "missing License",
		},
		{
			name:   "pgns",
			doc:    `<PGNDefinitions><Comment>c</Comment><CreatorCode>c</CreatorCode><License>l</License></PGNDefinitions>`,
			reason: "missing PGNs container",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatXML)
			var schemaErr *Error
			require.True(t, errors.As(err, &schemaErr), "got %v", err)
			assert.Equal(t, tt.reason, schemaErr.Reason)
		})
	}
}

func TestMissingLicenseFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing_license.xml"))
	var schemaErr *Error
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "schema: missing License", err.Error())
}

func TestEmptyPGNsContainer(t *testing.T) {
	reg, err := Parse([]byte(`<PGNDefinitions><Comment/><CreatorCode/><License/><PGNs></PGNs></PGNDefinitions>`), FormatXML)
	require.NoError(t, err)
	assert.Empty(t, reg.Messages)

	reg, err = Parse([]byte("Comment: ''\nCreatorCode: ''\nLicense: ''\nPGNs: []\n"), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, reg.Messages)

	_, err = Parse([]byte("Comment: ''\nCreatorCode: ''\nLicense: ''\n"), FormatYAML)
	assert.Error(t, err)
}

func TestMalformedDocument(t *testing.T) {
	tests := []struct {
		format Format
		doc    string
	}{
		{FormatXML, `<PGNDefinitions><Comment>unterminated</PGNDefinitions>`},
		{FormatYAML, "Comment: [unterminated\n"},
		{FormatJSON, `{"Comment": `},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), tt.format)
			var schemaErr *Error
			require.True(t, errors.As(err, &schemaErr), "got %v", err)
			assert.NotNil(t, schemaErr.Unwrap())
		})
	}
}

const header = "Comment: c\nCreatorCode: c\nLicense: l\nPGNs:\n"

func TestEagerNumericValidation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		message string
		field   string
		reason  string
	}{
		{
			name:    "pgn",
			doc:     header + "  - {PGN: abc, Id: foo, Length: 8}\n",
			message: "foo",
			reason:  "invalid PGN",
		},
		{
			name:    "length",
			doc:     header + "  - {PGN: 1, Id: foo, Length: eight}\n",
			message: "foo",
			reason:  "invalid Length",
		},
		{
			name:    "bit length",
			doc:     header + "  - {PGN: 1, Id: foo, Length: 8, Fields: [{Id: bar, BitLength: x}]}\n",
			message: "foo",
			field:   "bar",
			reason:  "invalid BitLength",
		},
		{
			name:    "negative bit length",
			doc:     header + "  - {PGN: 1, Id: foo, Length: 8, Fields: [{Id: bar, BitLength: -3}]}\n",
			message: "foo",
			field:   "bar",
			reason:  "invalid BitLength",
		},
		{
			name:    "missing bit length",
			doc:     header + "  - {PGN: 1, Id: foo, Length: 8, Fields: [{Id: bar}]}\n",
			message: "foo",
			field:   "bar",
			reason:  "missing BitLength",
		},
		{
			name:    "order",
			doc:     header + "  - {PGN: 1, Id: foo, Length: 8, Fields: [{Id: bar, BitLength: 3, Order: first}]}\n",
			message: "foo",
			field:   "bar",
			reason:  "invalid Order",
		},
		{
			name:    "offset",
			doc:     header + "  - {PGN: 1, Id: foo, Length: 8, Fields: [{Id: bar, BitLength: 3, BitOffset: 1.5}]}\n",
			message: "foo",
			field:   "bar",
			reason:  "invalid BitOffset",
		},
		{
			name:    "missing field id",
			doc:     header + "  - {PGN: 1, Id: foo, Length: 8, Fields: [{BitLength: 3}]}\n",
			message: "foo",
			field:   "Field[0]",
			reason:  "missing Id",
		},
		{
			name:    "identifier starts with digit",
			doc:     header + "  - {PGN: 1, Id: 2foo, Length: 8}\n",
			message: "2foo",
			reason:  `identifier "2foo" must start with a letter`,
		},
		{
			name:    "empty identifier",
			doc:     header + "  - {PGN: 1, Length: 8}\n",
			message: "PGNInfo[0]",
			reason:  `identifier "" must start with a letter`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatYAML)
			var schemaErr *Error
			require.True(t, errors.As(err, &schemaErr), "got %v", err)
			assert.Equal(t, tt.message, schemaErr.Message)
			assert.Equal(t, tt.field, schemaErr.Field)
			assert.Equal(t, tt.reason, schemaErr.Reason)
		})
	}
}

func TestUnparsableResolutionDefaultsToZero(t *testing.T) {
	reg, err := Parse([]byte(header+"  - {PGN: 1, Id: foo, Length: 8, Fields: [{Id: bar, BitLength: 3, Resolution: n/a}]}\n"), FormatYAML)
	require.NoError(t, err)
	f := reg.Messages[0].Fields[0]
	assert.Equal(t, 0.0, f.Resolution)
	assert.False(t, f.HasResolution)
}

func TestFieldOrderDefaultsToPosition(t *testing.T) {
	reg, err := Parse([]byte(header+"  - {PGN: 1, Id: foo, Length: 8, Fields: [{Id: a, BitLength: 3}, {Id: b, BitLength: 5}]}\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Messages[0].Fields[0].Order)
	assert.Equal(t, 2, reg.Messages[0].Fields[1].Order)
}

func TestSelectKeepsRegistryOrder(t *testing.T) {
	reg := expectedTwoMessages()

	got := reg.Select([]uint32{59904, 60928})
	require.Len(t, got, 2)
	assert.Equal(t, "isoAddressClaim", got[0].ID)
	assert.Equal(t, "isoRequest", got[1].ID)

	assert.Empty(t, reg.Select([]uint32{1}))

	_, ok := reg.Message(59904)
	assert.True(t, ok)
	_, ok = reg.Message(42)
	assert.False(t, ok)
}

func TestErrorString(t *testing.T) {
	err := &Error{Message: "foo", Field: "bar", Reason: "invalid BitLength", Err: errors.New("boom")}
	assert.Equal(t, "schema: foo.bar: invalid BitLength: boom", err.Error())
}
