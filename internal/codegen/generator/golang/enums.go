package golang

import (
	"log/slog"
	"text/template"

	"github.com/n2kgen/n2kgen/internal/codegen/meta"
	"github.com/n2kgen/n2kgen/internal/codegen/output"
	"github.com/n2kgen/n2kgen/internal/codegen/typeresolve"
)

const enumsTemplate = `{{.Header}}
package structs

// {{.Dummy}} is the placeholder for lookup fields without generated values.
type {{.Dummy}} struct{}
{{range .Enums}}
// {{.Name}} holds the lookup values of {{.Message}}.{{.FieldID}}.
type {{.Name}} {{.Repr}}

const (
{{- $enum := .Name}}
{{- range .Values}}
	{{$enum}}{{.Ident}} {{$enum}} = {{.Value}} // {{.Label}}
{{- end}}
)
{{end}}`

var enumsTmpl = template.Must(template.New("enums").Parse(enumsTemplate))

type goEnumInfo struct {
	Name    string
	Message string
	FieldID string
	Repr    string
	Values  []meta.EnumValue
}

func generateEnums(logger *slog.Logger, files *output.FileSet, base fileData, md *meta.Metadata) error {
	enums := make([]goEnumInfo, 0, len(md.Enums))
	for _, e := range md.Enums {
		if len(e.Values) == 0 {
			continue
		}
		enums = append(enums, goEnumInfo{
			Name:    e.Name,
			Message: e.Message,
			FieldID: e.FieldID,
			Repr:    goType(typeresolve.Storage{Kind: e.Repr}),
			Values:  e.Values,
		})
	}

	data := struct {
		fileData
		Dummy string
		Enums []goEnumInfo
	}{base, typeresolve.DefaultLookup, enums}
	return render(logger, files, structsDir+"/enums.go", enumsTmpl, data)
}
