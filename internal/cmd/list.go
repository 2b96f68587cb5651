package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/n2kgen/n2kgen/internal/codegen/common"
	"github.com/n2kgen/n2kgen/internal/codegen/generator"
	"github.com/n2kgen/n2kgen/internal/codegen/meta"
	"github.com/n2kgen/n2kgen/internal/codegen/registry"
	"github.com/n2kgen/n2kgen/internal/codegen/schema"
)

type List struct {
	Registry string `help:"Registry document (.xml, .yaml, .yml or .json). Uses the embedded canboat subset when empty" env:"N2KGEN_REGISTRY"`
	All      bool   `help:"Include messages outside the generation selection"`
	Fields   bool   `help:"Show every field with the storage it resolves to" short:"f"`
	Color    string `help:"Colorize output: auto, always or never" default:"auto" enum:"auto,always,never" env:"N2KGEN_COLOR"`
}

// Run is called by Kong when the list command is executed.
func (c *List) Run(logger *slog.Logger) error {
	reg, err := registry.Load(c.Registry, logger)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}

	fd := int(os.Stdout.Fd())
	tty := term.IsTerminal(fd)
	p := newListPrinter(os.Stdout, c.Color == "always" || (c.Color == "auto" && tty))
	if tty {
		if w, _, err := term.GetSize(fd); err == nil {
			p.width = w
		}
	}
	return p.print(reg, c.All, c.Fields)
}

type listPrinter struct {
	w     io.Writer
	width int // 0 disables truncation

	selected *color.Color
	warn     *color.Color
	fail     *color.Color
	dim      *color.Color
}

func newListPrinter(w io.Writer, colorize bool) *listPrinter {
	p := &listPrinter{
		w:        w,
		selected: color.New(color.FgGreen, color.Bold),
		warn:     color.New(color.FgYellow),
		fail:     color.New(color.FgRed, color.Bold),
		dim:      color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.selected, p.warn, p.fail, p.dim} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *listPrinter) print(reg *schema.Registry, all, fields bool) error {
	idWidth := len("ID")
	for _, m := range reg.Messages {
		idWidth = max(idWidth, len(m.ID))
	}

	if _, err := fmt.Fprintf(p.w, "  %-7s %-*s %6s  %s\n", "PGN", idWidth, "ID", "FIELDS", "DESCRIPTION"); err != nil {
		return err
	}

	builder := meta.NewBuilder(slog.New(slog.DiscardHandler), meta.PolicyAbort)
	for _, sm := range reg.Messages {
		isSelected := generator.IsSelected(sm.PGN)
		if !all && !isSelected {
			continue
		}

		mark := " "
		if isSelected {
			mark = p.selected.Sprint("*")
		}
		line := fmt.Sprintf("%-7d %-*s %6d  ", sm.PGN, idWidth, sm.ID, len(sm.Fields))
		desc := p.truncate(sm.Description, 2+len(line))
		if _, err := fmt.Fprintf(p.w, "%s %s%s\n", mark, line, desc); err != nil {
			return err
		}

		md, err := builder.Build(common.HeaderInfo{}, []schema.Message{sm})
		if err != nil {
			if _, err := fmt.Fprintf(p.w, "    %s\n", p.fail.Sprint(err)); err != nil {
				return err
			}
			continue
		}
		if err := p.printFields(md.Messages[0], fields); err != nil {
			return err
		}
	}
	return nil
}

// printFields lists every field when verbose is set, otherwise only the
// fields that would become UNKNOWN.
func (p *listPrinter) printFields(m meta.Message, verbose bool) error {
	for _, f := range m.Fields {
		var err error
		switch {
		case f.Storage.Unknown():
			_, err = fmt.Fprintf(p.w, "    %-3d %s %s\n", f.Order, f.ID,
				p.warn.Sprintf("unresolved type %q (%d bits)", f.Tag.Raw, f.BitLength))
		case !verbose:
		case f.Reserved:
			_, err = fmt.Fprintf(p.w, "    %-3d %s %s\n", f.Order, f.ID, p.dim.Sprintf("reserved, %d bits", f.BitLength))
		default:
			_, err = fmt.Fprintf(p.w, "    %-3d %s %s (%d bits, %s)\n", f.Order, f.ID, f.Storage, f.BitLength, f.Tag)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *listPrinter) truncate(s string, used int) string {
	s = common.OneLine(s)
	r := []rune(s)
	room := p.width - used
	if p.width == 0 || len(r) <= room {
		return s
	}
	if room <= 3 {
		return ""
	}
	return strings.TrimRight(string(r[:room-3]), " ") + "..."
}
