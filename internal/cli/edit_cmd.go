package cli

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/Jehops/portfmt/internal/edit"
	"github.com/Jehops/portfmt/internal/emit"
	"github.com/Jehops/portfmt/internal/errors"
	"github.com/Jehops/portfmt/internal/lexer"
	"github.com/Jehops/portfmt/internal/token"
	"github.com/spf13/cobra"
)

// newEditCmd builds the `portfmt edit` command group (spec.md §6): six
// targeted transformations, each a thin wrapper around one
// edit.Registry pass (or, for get, a direct query with no corresponding
// Pass).
func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Apply one targeted transformation to a port Makefile",
	}

	cmd.AddCommand(
		newEditPassCmd("bump-epoch", "Increment PORTEPOCH, or add it at 1 if absent", nil),
		newEditPassCmd("bump-revision", "Increment PORTREVISION, or add it at 1 if absent", nil),
		newEditGetCmd(),
		newEditMergeCmd(),
		newEditSetVersionCmd(),
		newEditPassCmd("unknown-vars", "List variables and targets portfmt does not recognize", nil),
	)
	return cmd
}

// editPassName maps a user-facing edit subcommand name to its
// edit.Registry key, where they differ.
func editPassName(name string) string {
	if name == "unknown-vars" {
		return "output-unknown-variables"
	}
	return name
}

func newEditPassCmd(name, short string, extra func(cmd *cobra.Command, cfg *Config)) *cobra.Command {
	cfg := NewConfig()
	cmd := &cobra.Command{
		Use:   name + " [FILE]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.MakefilePath = args[0]
			}
			if name == "unknown-vars" {
				return runUnknownVars(cfg)
			}
			return runSimplePass(cfg, name)
		},
	}
	annotateEditFlags(cmd, cfg)
	if extra != nil {
		extra(cmd, cfg)
	}
	return cmd
}

func annotateEditFlags(cmd *cobra.Command, cfg *Config) {
	cmd.Flags().BoolVarP(&cfg.InPlace, "in-place", "i", false, "rewrite the file in place instead of printing to stdout")
	cmd.Flags().BoolVarP(&cfg.UnifiedDiff, "unified-diff", "u", false, "print a unified diff instead of the result")
	cmd.Flags().IntVarP(&cfg.WrapColumn, "wrap-column", "w", 0, "target wrap column (default from config, else 80)")
	annotateFlag(cmd, "in-place", modeGroupLabel)
	annotateFlag(cmd, "unified-diff", modeGroupLabel)
	annotateFlag(cmd, "wrap-column", outputGroupLabel)
}

// runSimplePass runs one registered pass with no caller-supplied
// UserData, then emits the result per cfg (in place, diff, or stdout).
func runSimplePass(cfg *Config, passName string) error {
	settings, err := settingsFor(cfg)
	if err != nil {
		return err
	}
	_, doc, err := loadDocument(cfg.MakefilePath, settings)
	if err != nil {
		return err
	}
	original := emit.Emit(doc, settings)

	if err := runPasses(doc, []string{editPassName(passName)}, edit.UserData{}); err != nil {
		return err
	}
	formatted := emit.Emit(doc, settings)

	return emitResult(cfg, settings, original, formatted)
}

// emitResult writes a pass's result the same way format does: a unified
// diff, an in-place rewrite, or stdout, per cfg's flags.
func emitResult(cfg *Config, settings token.Settings, original, formatted string) error {
	if cfg.UnifiedDiff {
		scheme := emit.NewColorScheme(emit.ShouldColor(settings.OutputNoColor))
		fmt.Fprint(os.Stdout, emit.RenderDiff(lineDiff(original, formatted), scheme))
		return nil
	}
	return writeResult(cfg, formatted)
}

// newEditGetCmd implements `portfmt edit get <regex>`: prints every
// live variable assignment whose name matches regex, one per line, in
// document order. There is no corresponding edit.Registry pass since
// this is a read-only query, not a document transformation.
func newEditGetCmd() *cobra.Command {
	cfg := NewConfig()
	cmd := &cobra.Command{
		Use:   "get <regex> [FILE]",
		Short: "Print variable assignments matching a regular expression",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				cfg.MakefilePath = args[1]
			}
			return runGet(cfg, args[0])
		},
	}
	return cmd
}

func runGet(cfg *Config, pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return errors.NewInvalidArgumentError("regex", err.Error())
	}

	settings, err := settingsFor(cfg)
	if err != nil {
		return err
	}
	_, doc, err := loadDocument(cfg.MakefilePath, settings)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, v := range doc.Variables {
		if v.StartIndex < 0 || v.StartIndex >= len(doc.Tokens) || doc.Tokens[v.StartIndex].GC {
			continue
		}
		if !re.MatchString(v.Name) {
			continue
		}
		var words []string
		for _, idx := range doc.VariableRange(v) {
			words = append(words, doc.Tokens[idx].Data)
		}
		fmt.Fprintf(w, "%s%s %s\n", v.Name, v.Modifier, strings.Join(words, " "))
	}
	return nil
}

// newEditMergeCmd implements `portfmt edit merge`: reads an overlay
// Makefile from a second file argument and merges it into the first.
func newEditMergeCmd() *cobra.Command {
	cfg := NewConfig()
	var overlayPath string
	cmd := &cobra.Command{
		Use:   "merge <overlay> [FILE]",
		Short: "Merge another Makefile's variable assignments into this one",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			overlayPath = args[0]
			if len(args) == 2 {
				cfg.MakefilePath = args[1]
			}
			return runMergeCmd(cfg, overlayPath)
		},
	}
	annotateEditFlags(cmd, cfg)
	return cmd
}

func runMergeCmd(cfg *Config, overlayPath string) error {
	settings, err := settingsFor(cfg)
	if err != nil {
		return err
	}
	_, doc, err := loadDocument(cfg.MakefilePath, settings)
	if err != nil {
		return err
	}

	overlayData, err := os.ReadFile(overlayPath)
	if err != nil {
		return errors.NewIOError(overlayPath, err)
	}
	overlay, err := lexer.Lex(overlayPath, overlayData, settings)
	if err != nil {
		return err
	}

	original := emit.Emit(doc, settings)
	if err := runPasses(doc, []string{"merge"}, edit.UserData{"overlay": overlay}); err != nil {
		return err
	}
	formatted := emit.Emit(doc, settings)
	return emitResult(cfg, settings, original, formatted)
}

// newEditSetVersionCmd implements `portfmt edit set-version <version>`.
func newEditSetVersionCmd() *cobra.Command {
	cfg := NewConfig()
	cmd := &cobra.Command{
		Use:   "set-version <version> [FILE]",
		Short: "Set DISTVERSION/PORTVERSION, clearing a stale PORTREVISION",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				cfg.MakefilePath = args[1]
			}
			return runSetVersion(cfg, args[0])
		},
	}
	annotateEditFlags(cmd, cfg)
	return cmd
}

func runSetVersion(cfg *Config, version string) error {
	settings, err := settingsFor(cfg)
	if err != nil {
		return err
	}
	_, doc, err := loadDocument(cfg.MakefilePath, settings)
	if err != nil {
		return err
	}
	original := emit.Emit(doc, settings)
	if err := runPasses(doc, []string{"set-version"}, edit.UserData{"version": version}); err != nil {
		return err
	}
	formatted := emit.Emit(doc, settings)
	return emitResult(cfg, settings, original, formatted)
}

// runUnknownVars runs both output-unknown-variables and
// output-unknown-targets and prints their combined findings.
func runUnknownVars(cfg *Config) error {
	settings, err := settingsFor(cfg)
	if err != nil {
		return err
	}
	_, doc, err := loadDocument(cfg.MakefilePath, settings)
	if err != nil {
		return err
	}

	var vars, targets []string
	data := edit.UserData{"result": &vars}
	if err := runPasses(doc, []string{"output-unknown-variables"}, data); err != nil {
		return err
	}
	data = edit.UserData{"result": &targets}
	if err := runPasses(doc, []string{"output-unknown-targets"}, data); err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, v := range vars {
		fmt.Fprintf(w, "V %s\n", v)
	}
	for _, t := range targets {
		fmt.Fprintf(w, "T %s\n", t)
	}
	return nil
}
