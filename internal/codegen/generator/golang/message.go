package golang

import (
	"log/slog"
	"text/template"

	"github.com/n2kgen/n2kgen/internal/codegen/meta"
	"github.com/n2kgen/n2kgen/internal/codegen/output"
)

const messageTemplate = `{{.Header}}
package structs

import "{{.Module}}/types"

// {{.TypeName}} is {{.Doc}}.
type {{.TypeName}} struct {
{{- range .Fields}}
{{- if .Reserved}}
	// reserved field, length = {{.BitLength}} bits
{{- else}}
	// {{.Doc}}
	{{.Member}} {{.Type}}
{{- end}}
{{- end}}
}

// Decode{{.TypeName}} builds a {{.TypeName}} from a message payload.
func Decode{{.TypeName}}(data []byte) ({{.TypeName}}, error) {
{{- range .Fields}}
{{- if .Reserved}}
	// not decoding reserved field with {{.BitLength}} bits
{{- else}}
	var {{.Local}} {{.Type}} // not yet implemented
{{- end}}
{{- end}}
	return {{.TypeName}}{
{{- range .Fields}}{{if not .Reserved}}
		{{.Member}}: {{.Local}},
{{- end}}{{end}}
	}, nil
}

// Encode serializes m into a message payload.
func (m *{{.TypeName}}) Encode() ([]byte, error) {
	return nil, ErrNotImplemented
}
`

var messageTmpl = template.Must(template.New("message").Parse(messageTemplate))

type goFieldInfo struct {
	Member    string
	Local     string
	Type      string
	Doc       string
	BitLength int
	Reserved  bool
}

func generateMessage(logger *slog.Logger, files *output.FileSet, base fileData, m meta.Message) error {
	logger.Debug("Generating message", "pgn", m.PGN, "message", m.ID)

	data := struct {
		fileData
		TypeName string
		Doc      string
		Fields   []goFieldInfo
	}{
		fileData: base,
		TypeName: m.TypeName,
		Doc:      m.Summary(),
		Fields:   make([]goFieldInfo, 0, len(m.Fields)),
	}
	for _, f := range m.Fields {
		data.Fields = append(data.Fields, goFieldInfo{
			Member:    memberName(f.ID),
			Local:     localName(f.ID),
			Type:      goType(f.Storage),
			Doc:       f.Summary(),
			BitLength: f.BitLength,
			Reserved:  f.Reserved,
		})
	}

	return render(logger, files, structsDir+"/"+m.ModuleName+".go", messageTmpl, data)
}
