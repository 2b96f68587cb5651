package registry

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedRegistryParses(t *testing.T) {
	reg, err := Load("", slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	assert.Equal(t, "Canboat NMEA2000 Analyzer", reg.CreatorCode)
	assert.Equal(t, "Apache License Version 2.0", reg.License)
	assert.NotEmpty(t, reg.Comment)

	claim, ok := reg.Message(60928)
	require.True(t, ok)
	assert.Equal(t, "isoAddressClaim", claim.ID)
	assert.Len(t, claim.Fields, 10)

	req, ok := reg.Message(59904)
	require.True(t, ok)
	assert.Equal(t, "isoRequest", req.ID)
	require.Len(t, req.Fields, 1)
	assert.Equal(t, 24, req.Fields[0].BitLength)
	assert.Equal(t, 1.0, req.Fields[0].Resolution)
}

func TestDocumentIsCopy(t *testing.T) {
	doc := Document()
	require.NotEmpty(t, doc)
	doc[0] = 'X'
	assert.NotEqual(t, byte('X'), Document()[0])
}
