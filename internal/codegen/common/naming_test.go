package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToTypeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"engineSpeed", "EngineSpeed"},
		{"EngineSpeed", "EngineSpeed"},
		{"isoAddressClaim", "IsoAddressClaim"},
		{"x", "X"},
		{"pgn", "Pgn"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToTypeName(tt.in), "ToTypeName(%q)", tt.in)
	}
}

func TestToTypeNameIdempotent(t *testing.T) {
	for _, id := range []string{"engineSpeed", "isoRequest", "a1b2", "Already"} {
		once := ToTypeName(id)
		assert.Equal(t, once, ToTypeName(once))
		assert.Equal(t, id[1:], once[1:], "only the first character may change")
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"EngineSpeed", "engine_speed"},
		{"engineSpeed", "engine_speed"},
		{"pgn", "pgn"},
		{"isoAddressClaim", "iso_address_claim"},
		{"reserved", "reserved"},
		{"Reserved", "reserved"},
		{"pgnID", "pgn_i_d"},
		{"ABC", "a_b_c"},
		{"field2Value", "field2_value"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ToSnakeCase(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, byte('_'), firstByte(got), "no leading separator")
		})
	}
}

func firstByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Non-specific", "NonSpecific"},
		{"ISO Request", "IsoRequest"},
		{"Deep sea (all)", "DeepSeaAll"},
		{"  ", ""},
		{"11 Marine", "11Marine"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToPascalCase(tt.in), "ToPascalCase(%q)", tt.in)
	}
}

func TestSanitizeLeadingDigit(t *testing.T) {
	assert.Equal(t, "Num11Marine", SanitizeLeadingDigit("11Marine"))
	assert.Equal(t, "Marine", SanitizeLeadingDigit("Marine"))
	assert.Equal(t, "", SanitizeLeadingDigit(""))
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("reserved"))
	assert.True(t, IsReserved("Reserved"))
	assert.False(t, IsReserved("reserved1"))
	assert.False(t, IsReserved("reservedBits"))
	assert.False(t, IsReserved("deviceInstance"))
}
