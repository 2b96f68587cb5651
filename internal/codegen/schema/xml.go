package schema

import (
	"bytes"
	"encoding/xml"
)

type xmlDocument struct {
	Comment     *text `xml:"Comment"`
	CreatorCode *text `xml:"CreatorCode"`
	License     *text `xml:"License"`
	PGNs        *struct {
		Infos []rawMessage `xml:"PGNInfo"`
	} `xml:"PGNs"`
}

func decodeXML(data []byte) (rawDocument, error) {
	var doc xmlDocument
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	if err := dec.Decode(&doc); err != nil {
		return rawDocument{}, err
	}
	out := rawDocument{
		Comment:     doc.Comment,
		CreatorCode: doc.CreatorCode,
		License:     doc.License,
	}
	if doc.PGNs != nil {
		out.Messages = doc.PGNs.Infos
		out.HasMessages = true
	}
	return out, nil
}
