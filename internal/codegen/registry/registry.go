// Package registry embeds the default PGN definition document.
package registry

import (
	_ "embed"
	"log/slog"

	"github.com/n2kgen/n2kgen/internal/codegen/schema"
)

//go:embed pgns.xml
var pgnsXML []byte

// Name is how the embedded document is referred to in logs.
const Name = "embedded:pgns.xml"

// Document returns a copy of the embedded registry document.
func Document() []byte {
	return append([]byte(nil), pgnsXML...)
}

// Load parses the embedded registry, or the document at path when path is set.
func Load(path string, logger *slog.Logger) (*schema.Registry, error) {
	if path == "" {
		logger.Debug("Using embedded registry", "registry", Name)
		return schema.Parse(pgnsXML, schema.FormatXML, schema.WithLogger(logger))
	}
	logger.Debug("Loading registry", "registry", path)
	return schema.Load(path, schema.WithLogger(logger))
}
