package schema

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// mapDocument is the YAML and JSON shape: PGNs is a list of messages and
// Fields a list of fields.
type mapDocument struct {
	Comment     *text        `yaml:"Comment" json:"Comment"`
	CreatorCode *text        `yaml:"CreatorCode" json:"CreatorCode"`
	License     *text        `yaml:"License" json:"License"`
	PGNs        []rawMessage `yaml:"PGNs" json:"PGNs"`
}

func (d mapDocument) raw() rawDocument {
	return rawDocument{
		Comment:     d.Comment,
		CreatorCode: d.CreatorCode,
		License:     d.License,
		Messages:    d.PGNs,
		HasMessages: d.PGNs != nil,
	}
}

func decodeYAML(data []byte) (rawDocument, error) {
	var doc mapDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return rawDocument{}, err
	}
	return doc.raw(), nil
}

func decodeJSON(data []byte) (rawDocument, error) {
	var doc mapDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return rawDocument{}, err
	}
	return doc.raw(), nil
}
