package cmd

import (
	"log/slog"

	"github.com/n2kgen/n2kgen/internal/codegen/generator"
	"github.com/n2kgen/n2kgen/internal/codegen/meta"
)

type Generate struct {
	Registry      string `help:"Registry document (.xml, .yaml, .yml or .json). Uses the embedded canboat subset when empty" env:"N2KGEN_REGISTRY"`
	Output        string `help:"Output directory; every language gets its own subdirectory" default:"./generated" env:"N2KGEN_OUTPUT"`
	Lang          string `help:"Target language: go, rust, or 'all'" default:"all" enum:"go,rust,all" env:"N2KGEN_LANG"`
	OnUnsupported string `help:"Scaled integer fields: 'abort' the run or 'skip' the message" default:"abort" enum:"abort,skip" env:"N2KGEN_ON_UNSUPPORTED"`
	GoModule      string `help:"Import path of the generated Go module" default:"github.com/n2kgen/n2kmessages" env:"N2KGEN_GO_MODULE"`
	GoPackage     string `help:"Package name of the Go entry file. Defaults to the last element of --go-module" env:"N2KGEN_GO_PACKAGE"`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger) error {
	policy, err := meta.ParsePolicy(c.OnUnsupported)
	if err != nil {
		return err
	}

	logger.Info("Starting code generation", "output", c.Output, "lang", c.Lang, "policy", policy)

	gen := generator.New(c.Output, logger,
		generator.WithRegistry(c.Registry),
		generator.WithPolicy(policy),
		generator.WithTargetOptions(meta.Options{GoModule: c.GoModule, GoPackage: c.GoPackage}),
	)

	var res *generator.Result
	if c.Lang == "all" {
		res, err = gen.GenAll()
	} else {
		res, err = gen.GenerateLang(c.Lang)
	}
	if err != nil {
		return err
	}

	if n := len(res.Warnings); n > 0 {
		logger.Warn("Generated code contains UNKNOWN placeholder types", "fields", n)
	}
	for _, s := range res.Skipped {
		logger.Warn("Message was not generated", "pgn", s.PGN, "message", s.ID, "reason", s.Err)
	}
	return nil
}
