package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/n2kgen/n2kgen/internal/codegen/registry"
)

// Prints the parsed registry as JSON. Reads the embedded registry unless a
// document path is given as the first argument.
func main() {
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	reg, err := registry.Load(path, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load registry: %v\n", err)
		os.Exit(1)
	}

	output, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(output))
}
