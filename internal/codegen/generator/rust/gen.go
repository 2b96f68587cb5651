package rust

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/n2kgen/n2kgen/internal/codegen/common"
	"github.com/n2kgen/n2kgen/internal/codegen/meta"
	"github.com/n2kgen/n2kgen/internal/codegen/output"
)

// Generate renders the Rust message crate sources into files.
func Generate(logger *slog.Logger, files *output.FileSet, md *meta.Metadata, _ meta.Options) error {
	header := common.FileHeader("//", md.Header)

	for _, m := range md.Messages {
		if err := generateMessage(logger, files, header, m); err != nil {
			return err
		}
	}

	if err := generateEnums(logger, files, header, md); err != nil {
		return err
	}

	generateStructsModFile(logger, files, header, md)
	generateGeneratedModFile(logger, files, header)
	generateLibFile(logger, files, header, md)

	logger.Info("Generated Rust message sources", "messages", len(md.Messages), "enums", len(md.Enums))
	return nil
}

func generateLibFile(logger *slog.Logger, files *output.FileSet, header string, md *meta.Metadata) {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\npub mod generated;\npub mod types;\n\n")
	for _, m := range md.Messages {
		fmt.Fprintf(&b, "pub use generated::structs::%s::%s;\n", m.ModuleName, m.TypeName)
	}
	files.Put("lib.rs", []byte(b.String()))
	logger.Debug("Generated lib.rs", "file", "lib.rs")
}

func generateGeneratedModFile(logger *slog.Logger, files *output.FileSet, header string) {
	files.Put("generated/mod.rs", []byte(header+"\npub mod enums;\npub mod structs;\n"))
	logger.Debug("Generated generated/mod.rs", "file", "generated/mod.rs")
}

func generateStructsModFile(logger *slog.Logger, files *output.FileSet, header string, md *meta.Metadata) {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, m := range md.Messages {
		fmt.Fprintf(&b, "pub mod %s;\n", m.ModuleName)
	}
	files.Put("generated/structs/mod.rs", []byte(b.String()))
	logger.Debug("Generated generated/structs/mod.rs", "file", "generated/structs/mod.rs")
}
