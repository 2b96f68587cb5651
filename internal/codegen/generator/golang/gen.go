package golang

import (
	"bytes"
	"fmt"
	"go/token"
	"log/slog"
	"path"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/n2kgen/n2kgen/internal/codegen/common"
	"github.com/n2kgen/n2kgen/internal/codegen/meta"
	"github.com/n2kgen/n2kgen/internal/codegen/output"
)

// DefaultModule is the import path used when none is configured. The entry
// package is named after its last element.
const DefaultModule = "github.com/n2kgen/n2kmessages"

const structsDir = "generated/structs"

type fileData struct {
	Header  string
	Module  string
	Package string
}

// Generate renders the Go message package sources into files. Every file is
// passed through goimports before it is staged.
func Generate(logger *slog.Logger, files *output.FileSet, md *meta.Metadata, opts meta.Options) error {
	base := fileData{
		Header:  common.FileHeader("//", md.Header),
		Module:  opts.GoModule,
		Package: opts.GoPackage,
	}
	if base.Module == "" {
		base.Module = DefaultModule
	}
	if base.Package == "" {
		base.Package = path.Base(base.Module)
	}
	if !token.IsIdentifier(base.Package) {
		return fmt.Errorf("invalid Go package name %q (set --go-package)", base.Package)
	}

	for _, m := range md.Messages {
		if err := generateMessage(logger, files, base, m); err != nil {
			return err
		}
	}

	if err := generateEnums(logger, files, base, md); err != nil {
		return err
	}
	if err := generateRegistry(logger, files, base, md); err != nil {
		return err
	}
	if err := generateEntry(logger, files, base, md); err != nil {
		return err
	}

	logger.Info("Generated Go message sources", "messages", len(md.Messages), "enums", len(md.Enums), "module", base.Module)
	return nil
}

const registryTemplate = `{{.Header}}
package structs

import "errors"

// ErrNotImplemented is returned by encoders that have no logic yet.
var ErrNotImplemented = errors.New("not yet implemented")

// MessageInfo describes one generated message type.
type MessageInfo struct {
	PGN  uint32
	ID   string
	Type string
}

// Messages lists the generated messages in registry order.
var Messages = []MessageInfo{
{{- range .Messages}}
	{PGN: {{.PGN}}, ID: {{printf "%q" .ID}}, Type: {{printf "%q" .TypeName}}},
{{- end}}
}
`

const entryTemplate = `{{.Header}}
package {{.Package}}

import "{{.Module}}/generated/structs"

type (
{{- range .Messages}}
	{{.TypeName}} = structs.{{.TypeName}}
{{- end}}
)

// Messages lists the generated messages in registry order.
var Messages = structs.Messages
`

var (
	registryTmpl = template.Must(template.New("registry").Parse(registryTemplate))
	entryTmpl    = template.Must(template.New("entry").Parse(entryTemplate))
)

func generateRegistry(logger *slog.Logger, files *output.FileSet, base fileData, md *meta.Metadata) error {
	data := struct {
		fileData
		Messages []meta.Message
	}{base, md.Messages}
	return render(logger, files, structsDir+"/structs.go", registryTmpl, data)
}

func generateEntry(logger *slog.Logger, files *output.FileSet, base fileData, md *meta.Metadata) error {
	data := struct {
		fileData
		Messages []meta.Message
	}{base, md.Messages}
	return render(logger, files, base.Package+".go", entryTmpl, data)
}

func render(logger *slog.Logger, files *output.FileSet, name string, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template for %s: %w", name, err)
	}
	return writeFormatted(logger, files, name, buf.Bytes())
}

func writeFormatted(logger *slog.Logger, files *output.FileSet, name string, code []byte) error {
	formatted, err := imports.Process(name, code, nil)
	if err != nil {
		logger.Debug("Unformatted source", "file", name, "source", string(code))
		return fmt.Errorf("goimports %s: %w", path.Base(name), err)
	}
	files.Put(name, formatted)
	logger.Debug("Generated file", "file", name)
	return nil
}
