package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/Jehops/portfmt/internal/diff"
	"github.com/Jehops/portfmt/internal/edit"
	"github.com/Jehops/portfmt/internal/emit"
	"github.com/Jehops/portfmt/internal/errors"
	"github.com/Jehops/portfmt/internal/lexer"
	"github.com/Jehops/portfmt/internal/token"
	"github.com/spf13/cobra"
)

// newFormatCmd builds the `portfmt format` subcommand (spec.md §6):
// reformat into canonical order, in place or to stdout, optionally as a
// unified diff or a roundtrip self-check.
func newFormatCmd() *cobra.Command {
	cfg := NewConfig()

	cmd := &cobra.Command{
		Use:   "format [FILE]",
		Short: "Reformat a port Makefile into canonical order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.MakefilePath = args[0]
			}
			return runFormat(cfg)
		},
	}

	annotateFormatFlags(cmd, cfg)
	return cmd
}

func annotateFormatFlags(cmd *cobra.Command, cfg *Config) {
	cmd.Flags().BoolVarP(&cfg.InPlace, "in-place", "i", false, "rewrite the file in place instead of printing to stdout")
	cmd.Flags().BoolVarP(&cfg.UnifiedDiff, "unified-diff", "u", false, "print a unified diff instead of the reformatted text")
	cmd.Flags().BoolVarP(&cfg.TestRoundtrip, "test-roundtrip", "t", false, "verify the reformat is idempotent; write nothing")
	cmd.Flags().IntVarP(&cfg.WrapColumn, "wrap-column", "w", 0, "target wrap column (default from config, else 80)")
	cmd.Flags().StringArrayVarP(&cfg.EnablePasses, "enable-pass", "D", nil, "enable an additional edit pass (repeatable)")
	cmd.Flags().StringArrayVarP(&cfg.DisablePasses, "disable-pass", "d", nil, "disable a default edit pass (repeatable)")
	cmd.Flags().BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI color in diff output")

	annotateFlag(cmd, "in-place", modeGroupLabel)
	annotateFlag(cmd, "unified-diff", modeGroupLabel)
	annotateFlag(cmd, "test-roundtrip", modeGroupLabel)
	annotateFlag(cmd, "wrap-column", outputGroupLabel)
	annotateFlag(cmd, "enable-pass", outputGroupLabel)
	annotateFlag(cmd, "disable-pass", outputGroupLabel)
	annotateFlag(cmd, "no-color", outputGroupLabel)
}

func runFormat(cfg *Config) error {
	settings, err := settingsFor(cfg)
	if err != nil {
		return err
	}

	order, err := resolvePassOrder(cfg)
	if err != nil {
		return err
	}

	origin, doc, err := loadDocument(cfg.MakefilePath, settings)
	if err != nil {
		return err
	}

	original := emit.Emit(doc, settings)

	if err := runPasses(doc, order, edit.UserData{}); err != nil {
		return err
	}
	formatted := emit.Emit(doc, settings)

	if cfg.TestRoundtrip {
		return checkRoundtrip(origin, formatted, settings, order)
	}

	if cfg.UnifiedDiff {
		scheme := emit.NewColorScheme(emit.ShouldColor(settings.OutputNoColor))
		fmt.Fprint(os.Stdout, emit.RenderDiff(lineDiff(original, formatted), scheme))
		return nil
	}

	return writeResult(cfg, formatted)
}

// checkRoundtrip re-lexes formatted text, re-runs the same pass order,
// and fails if the second emission differs from the first: spec.md §8's
// roundtrip-idempotence property, exercised here as a CLI self-check
// rather than left only as a unit-test property.
func checkRoundtrip(origin, formatted string, settings token.Settings, order []string) error {
	doc, err := lexer.Lex(origin, []byte(formatted), settings)
	if err != nil {
		return err
	}
	if err := runPasses(doc, order, edit.UserData{}); err != nil {
		return err
	}
	second := emit.Emit(doc, settings)
	if second != formatted {
		return errors.NewEditError("format", "reformat is not idempotent: a second pass produced a different result")
	}
	return nil
}

// lineDiff splits two text blobs on newline and computes the edit
// script between them, the input internal/emit's color renderer wants.
func lineDiff(old, new string) []diff.Entry {
	return diff.Diff(splitLines(old), splitLines(new))
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
