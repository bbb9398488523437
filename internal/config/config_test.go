package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Jehops/portfmt/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &File{}, f)
}

func TestLoadDecodesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".portfmtrc.yaml")
	content := "wrap_column: 100\nno_color: true\ndisabled_passes:\n  - sanitize-eol-comments\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, f.WrapColumn)
	require.NotNil(t, f.NoColor)
	assert.True(t, *f.NoColor)
	assert.Equal(t, []string{"sanitize-eol-comments"}, f.DisabledPasses)
}

func TestMergeFillsOnlyUnsetFields(t *testing.T) {
	base := token.Settings{TargetWrapColumn: 80}
	noColor := true
	f := &File{WrapColumn: 120, NoColor: &noColor}

	merged := Merge(base, f)

	assert.Equal(t, 80, merged.TargetWrapColumn, "CLI-set wrap column must win over the config file")
	assert.True(t, merged.OutputNoColor)
}

func TestMergeAppliesConfigWhenBaseIsZero(t *testing.T) {
	base := token.Settings{}
	f := &File{WrapColumn: 120}

	merged := Merge(base, f)

	assert.Equal(t, 120, merged.TargetWrapColumn)
}

func TestMergeNilFileIsNoop(t *testing.T) {
	base := token.DefaultSettings()
	assert.Equal(t, base, Merge(base, nil))
}
