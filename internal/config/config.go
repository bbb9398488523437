// Package config loads the optional .portfmtrc.yaml settings file and
// merges it under CLI-flag overrides, per SPEC_FULL.md §8.
package config

import (
	"os"

	"github.com/Jehops/portfmt/internal/token"
	"gopkg.in/yaml.v3"
)

// File is the decoded shape of .portfmtrc.yaml. Zero values mean
// "unset"; Merge only overrides a Settings field when the corresponding
// File field is non-zero, so flags that were explicitly passed on the
// command line always win.
type File struct {
	WrapColumn      int      `yaml:"wrap_column"`
	DisabledPasses  []string `yaml:"disabled_passes"`
	EnabledPasses   []string `yaml:"enabled_passes"`
	PluginPath      string   `yaml:"plugin_path"`
	NoColor         *bool    `yaml:"no_color"`
	UnsortedVars    []string `yaml:"unsorted_variables"`
}

// Load reads and decodes path. A missing file is not an error: it
// returns a zero File, the "no config present" case.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Merge layers f's settings under base, returning the combined
// Settings. Fields explicitly set on base (via CLI flags, already
// applied before this call) are never touched; only base's remaining
// zero-valued fields are filled in from f. Only WrapColumn and NoColor
// are applied; DisabledPasses, EnabledPasses, PluginPath and
// UnsortedVars are decoded by Load but not used anywhere.
func Merge(base token.Settings, f *File) token.Settings {
	if f == nil {
		return base
	}
	if base.TargetWrapColumn == 0 && f.WrapColumn != 0 {
		base.TargetWrapColumn = f.WrapColumn
	}
	if f.NoColor != nil && !base.OutputNoColor {
		base.OutputNoColor = *f.NoColor
	}
	return base
}

// DefaultPath is the config file name portfmt looks for in the current
// working directory when cli.Config.ConfigPath is empty (no command-line
// flag sets ConfigPath).
const DefaultPath = ".portfmtrc.yaml"
