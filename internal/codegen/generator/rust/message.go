package rust

import (
	"fmt"
	"log/slog"
	"text/template"

	"github.com/n2kgen/n2kgen/internal/codegen/meta"
	"github.com/n2kgen/n2kgen/internal/codegen/output"
)

const messageTemplate = `{{.Header}}
use crate::generated::enums::*;
use crate::types::*;

/// {{.Doc}}
pub struct {{.TypeName}} {
{{- range .Fields}}
{{- if .Reserved}}
    // reserved field, length = {{.BitLength}} bits
{{- else}}
    /// {{.Doc}}
    pub {{.Ident}}: {{.Type}},
{{- end}}
{{- end}}
}

impl {{.TypeName}} {
    pub fn decode(_data: &[u8]) -> {{.TypeName}} {
{{- range .Fields}}
{{- if .Reserved}}
        // not decoding reserved field with {{.BitLength}} bits
{{- else}}
        let {{.Ident}}: {{.Type}} = Default::default(); // not yet implemented
{{- end}}
{{- end}}
        {{.TypeName}} {
{{- range .Fields}}{{if not .Reserved}}
            {{.Ident}},
{{- end}}{{end}}
        }
    }

    pub fn encode(&self) -> Vec<u8> {
        unimplemented!();
    }
}
`

var messageTmpl = template.Must(template.New("message").Parse(messageTemplate))

type rustFieldInfo struct {
	Ident     string
	Type      string
	Doc       string
	BitLength int
	Reserved  bool
}

type rustMessageInfo struct {
	Header   string
	TypeName string
	Doc      string
	Fields   []rustFieldInfo
}

func generateMessage(logger *slog.Logger, files *output.FileSet, header string, m meta.Message) error {
	logger.Debug("Generating message", "pgn", m.PGN, "message", m.ID)
	path := "generated/structs/" + m.ModuleName + ".rs"

	data := rustMessageInfo{
		Header:   header,
		TypeName: m.TypeName,
		Doc:      m.Summary(),
		Fields:   make([]rustFieldInfo, 0, len(m.Fields)),
	}
	for _, f := range m.Fields {
		data.Fields = append(data.Fields, rustFieldInfo{
			Ident:     rustIdent(f.SnakeName),
			Type:      rustType(f.Storage),
			Doc:       f.Summary(),
			BitLength: f.BitLength,
			Reserved:  f.Reserved,
		})
	}

	if err := messageTmpl.Execute(files.Create(path), data); err != nil {
		return fmt.Errorf("execute template for %s: %w", m.ID, err)
	}

	logger.Debug("Generated message", "file", path)
	return nil
}
