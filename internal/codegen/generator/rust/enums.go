package rust

import (
	"fmt"
	"log/slog"
	"text/template"

	"github.com/n2kgen/n2kgen/internal/codegen/meta"
	"github.com/n2kgen/n2kgen/internal/codegen/output"
	"github.com/n2kgen/n2kgen/internal/codegen/typeresolve"
)

const enumsTemplate = `{{.Header}}
/// Placeholder for lookup fields without generated values.
#[derive(Debug, Clone, Copy, Default, PartialEq, Eq)]
pub struct {{.Dummy}};
{{range .Enums}}
/// Lookup values of {{.Message}}.{{.FieldID}}.
#[derive(Debug, Clone, Copy, Default, PartialEq, Eq)]
#[repr({{.Repr}})]
pub enum {{.Name}} {
{{- range $i, $v := .Values}}
{{- if eq $i 0}}
    #[default]
{{- end}}
    /// {{$v.Label}}
    {{$v.Ident}} = {{$v.Value}},
{{- end}}
}
{{end}}`

var enumsTmpl = template.Must(template.New("enums").Parse(enumsTemplate))

type rustEnumInfo struct {
	Name    string
	Message string
	FieldID string
	Repr    string
	Values  []meta.EnumValue
}

func generateEnums(logger *slog.Logger, files *output.FileSet, header string, md *meta.Metadata) error {
	const path = "generated/enums.rs"
	logger.Debug("Generating enums.rs")

	enums := make([]rustEnumInfo, 0, len(md.Enums))
	for _, e := range md.Enums {
		if len(e.Values) == 0 {
			continue
		}
		enums = append(enums, rustEnumInfo{
			Name:    e.Name,
			Message: e.Message,
			FieldID: e.FieldID,
			Repr:    rustType(typeresolve.Storage{Kind: e.Repr}),
			Values:  e.Values,
		})
	}

	data := struct {
		Header string
		Dummy  string
		Enums  []rustEnumInfo
	}{
		Header: header,
		Dummy:  typeresolve.DefaultLookup,
		Enums:  enums,
	}
	if err := enumsTmpl.Execute(files.Create(path), data); err != nil {
		return fmt.Errorf("execute enums template: %w", err)
	}

	logger.Debug("Generated enums.rs", "file", path, "enums", len(enums))
	return nil
}
