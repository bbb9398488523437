package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/config"
	"github.com/Jehops/portfmt/internal/edit"
	"github.com/Jehops/portfmt/internal/errors"
	"github.com/Jehops/portfmt/internal/lexer"
	"github.com/Jehops/portfmt/internal/sandbox"
	"github.com/Jehops/portfmt/internal/token"
)

// defaultFormatPasses is the canonical-reorder pipeline spec.md §4.3
// describes for plain reformatting, in the order canonical-reorder
// expects to see a document (sort before sanitize, since the sanitizers
// operate on already-ordered values).
var defaultFormatPasses = []string{
	"canonical-reorder",
	"sort-variable-values",
	"sanitize-append-modifier",
	"sanitize-cmake-args",
	"sanitize-eol-comments",
}

// readSource opens path (or stdin if path is empty) and enters the
// sandbox immediately afterward, per spec.md §6 ("sandbox entered
// immediately after opening the target paths").
func readSource(path string) (string, []byte, error) {
	var origin string
	var f *os.File
	if path == "" {
		origin = "<stdin>"
		f = os.Stdin
	} else {
		origin = path
		var err error
		f, err = os.Open(path)
		if err != nil {
			return origin, nil, errors.NewIOError(path, err)
		}
		defer f.Close()
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return origin, nil, errors.NewIOError(origin, err)
	}

	if err := sandbox.Enter(1); err != nil {
		return origin, nil, errors.NewIOError(origin, err)
	}

	return origin, data, nil
}

// settingsFor builds the token.Settings a subcommand's lex/emit pair
// should use: start from token.DefaultSettings() with the wrap column
// unset, apply cfg's explicit flags, let config.Merge fill what the flags
// left unset from the optional .portfmtrc.yaml file (so flags always
// win), and fall back to the default wrap column if neither set one.
func settingsFor(cfg *Config) (token.Settings, error) {
	settings := token.DefaultSettings()
	settings.TargetWrapColumn = 0
	if cfg.WrapColumn > 0 {
		settings.TargetWrapColumn = cfg.WrapColumn
	}
	if cfg.NoColor {
		settings.OutputNoColor = true
	}

	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	file, err := config.Load(path)
	if err != nil {
		return settings, errors.NewIOError(path, err)
	}
	settings = config.Merge(settings, file)

	if settings.TargetWrapColumn <= 0 {
		settings.TargetWrapColumn = token.DefaultSettings().TargetWrapColumn
	}

	return settings, nil
}

// loadDocument reads and lexes path (or stdin) under settings.
func loadDocument(path string, settings token.Settings) (string, *ast.Document, error) {
	origin, data, err := readSource(path)
	if err != nil {
		return origin, nil, err
	}
	doc, err := lexer.Lex(origin, data, settings)
	if err != nil {
		return origin, nil, err
	}
	return origin, doc, nil
}

// resolvePassOrder applies -D/-d to the default format pipeline:
// disabled names are dropped, enabled names are appended if not already
// present, and every name is validated against edit.Registry.
func resolvePassOrder(cfg *Config) ([]string, error) {
	disabled := make(map[string]bool, len(cfg.DisablePasses))
	for _, name := range cfg.DisablePasses {
		disabled[name] = true
	}

	var order []string
	seen := make(map[string]bool)
	for _, name := range defaultFormatPasses {
		if disabled[name] {
			continue
		}
		order = append(order, name)
		seen[name] = true
	}
	for _, name := range cfg.EnablePasses {
		if seen[name] {
			continue
		}
		order = append(order, name)
		seen[name] = true
	}

	for _, name := range order {
		if _, ok := edit.Registry[name]; !ok {
			return nil, errors.NewNotFoundError("edit pass", name)
		}
	}
	return order, nil
}

// runPasses runs each named pass from edit.Registry against doc in
// order, the shared engine both format and edit subcommands use.
func runPasses(doc *ast.Document, names []string, data edit.UserData) error {
	for _, name := range names {
		pass, ok := edit.Registry[name]
		if !ok {
			return errors.NewNotFoundError("edit pass", name)
		}
		if err := pass.Run(doc, data); err != nil {
			return err
		}
	}
	return nil
}

// writeResult writes text to cfg.MakefilePath (in place) or stdout,
// depending on cfg.InPlace.
func writeResult(cfg *Config, text string) error {
	if cfg.InPlace {
		if cfg.MakefilePath == "" {
			return errors.NewInvalidArgumentError("-i", "cannot write in place when reading from stdin")
		}
		if err := os.WriteFile(cfg.MakefilePath, []byte(text), 0o644); err != nil {
			return errors.NewIOError(cfg.MakefilePath, err)
		}
		return nil
	}
	fmt.Fprint(os.Stdout, text)
	return nil
}
