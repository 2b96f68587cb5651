package generator

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/n2kgen/n2kgen/internal/codegen/common"
	"github.com/n2kgen/n2kgen/internal/codegen/generator/golang"
	"github.com/n2kgen/n2kgen/internal/codegen/generator/rust"
	"github.com/n2kgen/n2kgen/internal/codegen/meta"
	"github.com/n2kgen/n2kgen/internal/codegen/output"
	"github.com/n2kgen/n2kgen/internal/codegen/registry"
	"github.com/n2kgen/n2kgen/internal/codegen/schema"
	"github.com/n2kgen/n2kgen/internal/codegen/typeresolve"
)

// Selection is the allow-list of PGNs that get generated. Coverage grows by
// extending this list.
var Selection = []uint32{
	60928, // ISO Address Claim
	59904, // ISO Request
}

type LanguageGenerator func(logger *slog.Logger, files *output.FileSet, md *meta.Metadata, opts meta.Options) error

var generators = map[string]LanguageGenerator{
	"go":   golang.Generate,
	"rust": rust.Generate,
}

// Languages returns the supported target languages, sorted.
func Languages() []string {
	langs := make([]string, 0, len(generators))
	for k := range generators {
		langs = append(langs, k)
	}
	slices.Sort(langs)
	return langs
}

// IsSelected reports whether pgn is in Selection.
func IsSelected(pgn uint32) bool {
	return slices.Contains(Selection, pgn)
}

type Generator struct {
	outputDir    string
	logger       *slog.Logger
	registryPath string
	policy       meta.UnsupportedPolicy
	options      meta.Options
	selection    []uint32
}

type Option func(*Generator)

// WithRegistry reads definitions from path instead of the embedded registry.
func WithRegistry(path string) Option {
	return func(g *Generator) { g.registryPath = path }
}

func WithPolicy(p meta.UnsupportedPolicy) Option {
	return func(g *Generator) { g.policy = p }
}

func WithTargetOptions(o meta.Options) Option {
	return func(g *Generator) { g.options = o }
}

func New(outputDir string, logger *slog.Logger, opts ...Option) *Generator {
	g := &Generator{
		outputDir: outputDir,
		logger:    logger,
		selection: Selection,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Result summarizes a successful run.
type Result struct {
	Files    []string
	Warnings []typeresolve.UnresolvedFieldType
	Skipped  []meta.SkippedMessage
}

func (g *Generator) GenAll() (*Result, error) {
	return g.run(Languages()...)
}

func (g *Generator) GenerateLang(lang string) (*Result, error) {
	return g.run(lang)
}

func (g *Generator) run(langs ...string) (*Result, error) {
	reg, err := registry.Load(g.registryPath, g.logger)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}

	files, res, err := g.Generate(reg, langs...)
	if err != nil {
		return nil, err
	}

	if err := files.Commit(g.outputDir, g.logger); err != nil {
		return nil, fmt.Errorf("write generated sources: %w", err)
	}

	for _, w := range res.Warnings {
		g.logger.Warn("Generated placeholder type for unresolved field", "message", w.Message, "field", w.FieldID, "type", w.Tag)
	}
	g.logger.Info("Code generation complete", "languages", strings.Join(langs, ","), "files", len(res.Files), "output", g.outputDir)
	return res, nil
}

// Generate renders langs for the selected messages of reg without touching
// the file system. File paths are prefixed with the language name.
func (g *Generator) Generate(reg *schema.Registry, langs ...string) (*output.FileSet, *Result, error) {
	for _, lang := range langs {
		if _, ok := generators[lang]; !ok {
			return nil, nil, fmt.Errorf("unsupported language '%s' (supported: %v)", lang, Languages())
		}
	}

	version, err := common.GetVersion()
	if err != nil {
		return nil, nil, fmt.Errorf("get version: %w", err)
	}

	msgs := reg.Select(g.selection)
	g.logger.Info("Selected messages", "count", len(msgs), "registry", len(reg.Messages))

	header := common.HeaderInfo{Version: version, CreatorCode: reg.CreatorCode, License: reg.License}
	md, err := meta.NewBuilder(g.logger, g.policy).Build(header, msgs)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve message types: %w", err)
	}

	files := output.NewFileSet()
	for _, lang := range langs {
		g.logger.Info("Generating message sources", "language", lang)
		staged := output.NewFileSet()
		if err := generators[lang](g.logger, staged, md, g.options); err != nil {
			return nil, nil, fmt.Errorf("generate %s sources: %w", lang, err)
		}
		files.Merge(lang, staged)
	}

	return files, &Result{
		Files:    files.Paths(),
		Warnings: md.Warnings,
		Skipped:  md.Skipped,
	}, nil
}
