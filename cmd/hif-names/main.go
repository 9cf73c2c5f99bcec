// hif-names validates forbidden-name configuration files and previews
// the fresh names a design tool would generate against them.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/esd-univr/hif-core-sub003/internal/names"
)

var CLI struct {
	NoColor bool `name:"no-color" help:"Disable colored output."`

	Check CheckCmd `cmd:"" help:"Validate a forbidden-name list file."`
	Fresh FreshCmd `cmd:"" help:"Preview generated fresh names for a prefix."`
}

// CheckCmd loads a forbidden-name list and reports its contents.
type CheckCmd struct {
	File    string `arg:"" help:"Path to the forbidden-name list (YAML)." type:"existingfile"`
	Verbose bool   `short:"v" help:"List every reserved word per language."`
}

func (c *CheckCmd) Run() error {
	list, err := names.LoadForbidden(c.File)
	if err != nil {
		return err
	}

	okMark := "ok"
	if useColor() {
		okMark = color.GreenString("ok")
	}

	fmt.Printf("%s: %s (version %s, %d languages)\n", c.File, okMark, list.Version, len(list.Languages))

	for _, lang := range list.Languages {
		fmt.Printf("  %-12s %d reserved\n", lang.Name, len(lang.Reserved))
		if !c.Verbose {
			continue
		}

		for _, word := range lang.Reserved {
			fmt.Printf("    %s\n", word)
		}
	}

	return nil
}

// FreshCmd shows the names a generator would hand out for a prefix,
// with an optional forbidden list and pre-registered names applied.
type FreshCmd struct {
	Prefix string   `arg:"" help:"Prefix to generate from."`
	Count  int      `short:"n" default:"5" help:"How many names to generate."`
	File   string   `short:"f" help:"Forbidden-name list to honor." type:"existingfile"`
	Taken  []string `short:"t" help:"Names to treat as already in use."`
}

func (c *FreshCmd) Run() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}

	table := names.NewTable()

	if c.File != "" {
		list, err := names.LoadForbidden(c.File)
		if err != nil {
			return err
		}

		for _, lang := range list.Languages {
			for _, word := range lang.Reserved {
				table.Forbid(word)
			}
		}
	}

	for _, taken := range c.Taken {
		table.Intern(taken)
	}

	if table.IsForbidden(c.Prefix) {
		note := "prefix is reserved"
		if useColor() {
			note = color.YellowString(note)
		}

		fmt.Fprintf(os.Stderr, "%s: %s\n", c.Prefix, note)
	}

	for i := 0; i < c.Count; i++ {
		fmt.Println(table.FreshName(c.Prefix).String())
	}

	return nil
}

func useColor() bool {
	return !CLI.NoColor && isatty.IsTerminal(os.Stdout.Fd())
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("hif-names"),
		kong.Description("Forbidden-name list validation and fresh-name preview."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
