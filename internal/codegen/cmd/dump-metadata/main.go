package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/n2kgen/n2kgen/internal/codegen/common"
	"github.com/n2kgen/n2kgen/internal/codegen/generator"
	"github.com/n2kgen/n2kgen/internal/codegen/meta"
	"github.com/n2kgen/n2kgen/internal/codegen/registry"
)

// Prints the resolved metadata of the selected messages as JSON, the input
// every language generator renders from.
func main() {
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	reg, err := registry.Load(path, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load registry: %v\n", err)
		os.Exit(1)
	}

	header := common.HeaderInfo{CreatorCode: reg.CreatorCode, License: reg.License}
	md, err := meta.NewBuilder(logger, meta.PolicySkip).Build(header, reg.Select(generator.Selection))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve messages: %v\n", err)
		os.Exit(1)
	}

	output, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(output))
}
