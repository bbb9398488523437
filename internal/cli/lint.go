package cli

import (
	"fmt"
	"os"

	"github.com/Jehops/portfmt/internal/edit"
	"github.com/Jehops/portfmt/internal/emit"
	"github.com/spf13/cobra"
)

// newLintCmd builds `portfmt lint` (spec.md §6): reports whether a
// Makefile's variable order already matches canonical order, exiting 1
// with a rendered diff if not.
func newLintCmd() *cobra.Command {
	cfg := NewConfig()
	cmd := &cobra.Command{
		Use:   "lint [FILE]",
		Short: "Report whether a port Makefile is already in canonical order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.MakefilePath = args[0]
			}
			return runLint(cfg)
		},
	}
	cmd.Flags().BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI color in diff output")
	annotateFlag(cmd, "no-color", outputGroupLabel)
	return cmd
}

func runLint(cfg *Config) error {
	settings, err := settingsFor(cfg)
	if err != nil {
		return err
	}
	_, doc, err := loadDocument(cfg.MakefilePath, settings)
	if err != nil {
		return err
	}

	result := &edit.LintResult{}
	data := edit.UserData{"result": result}
	runErr := runPasses(doc, []string{"lint-order"}, data)

	if result.HasDiff {
		scheme := emit.NewColorScheme(emit.ShouldColor(settings.OutputNoColor))
		fmt.Fprint(os.Stdout, emit.RenderDiff(result.Entries, scheme))
	}
	return runErr
}
