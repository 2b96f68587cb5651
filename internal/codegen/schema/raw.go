package schema

import (
	"encoding/json"
	"strconv"
)

// text is a scalar kept verbatim from the document. JSON registries may use
// numbers or booleans where XML has text, so those are accepted too.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	}
	if string(data) == "null" {
		*t = ""
		return nil
	}
	// numbers and booleans keep their literal spelling
	*t = text(data)
	return nil
}

type rawDocument struct {
	Comment     *text
	CreatorCode *text
	License     *text
	Messages    []rawMessage
	HasMessages bool
}

type rawMessage struct {
	PGN             text       `xml:"PGN" yaml:"PGN" json:"PGN"`
	ID              text       `xml:"Id" yaml:"Id" json:"Id"`
	Description     text       `xml:"Description" yaml:"Description" json:"Description"`
	Length          text       `xml:"Length" yaml:"Length" json:"Length"`
	RepeatingFields text       `xml:"RepeatingFields" yaml:"RepeatingFields" json:"RepeatingFields"`
	Fields          []rawField `xml:"Fields>Field" yaml:"Fields" json:"Fields"`
}

type rawField struct {
	Order      text        `xml:"Order" yaml:"Order" json:"Order"`
	ID         text        `xml:"Id" yaml:"Id" json:"Id"`
	Name       text        `xml:"Name" yaml:"Name" json:"Name"`
	BitLength  *text       `xml:"BitLength" yaml:"BitLength" json:"BitLength"`
	BitOffset  text        `xml:"BitOffset" yaml:"BitOffset" json:"BitOffset"`
	Type       text        `xml:"Type" yaml:"Type" json:"Type"`
	Resolution text        `xml:"Resolution" yaml:"Resolution" json:"Resolution"`
	Units      text        `xml:"Units" yaml:"Units" json:"Units"`
	Signed     text        `xml:"Signed" yaml:"Signed" json:"Signed"`
	EnumValues []rawLookup `xml:"EnumValues>EnumPair" yaml:"EnumValues" json:"EnumValues"`
}

type rawLookup struct {
	Value text `xml:"Value,attr" yaml:"Value" json:"Value"`
	Name  text `xml:"Name,attr" yaml:"Name" json:"Name"`
	Text  text `xml:",chardata" yaml:"-" json:"-"`
}

func (l rawLookup) name() string {
	if n := trim(l.Name); n != "" {
		return n
	}
	return trim(l.Text)
}

func parseInt(t text, bits int) (int64, error) {
	return strconv.ParseInt(trim(t), 10, bits)
}
