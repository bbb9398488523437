package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePort(t *testing.T, portsdir, origin, content string) {
	t.Helper()
	dir := filepath.Join(portsdir, origin)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Makefile"), []byte(content), 0o644))
}

func TestDiscoverOriginsWalksCategoryPortTree(t *testing.T) {
	portsdir := t.TempDir()
	writePort(t, portsdir, "devel/foo", "PORTNAME=\tfoo\n")
	writePort(t, portsdir, "www/bar", "PORTNAME=\tbar\n")

	origins, err := DiscoverOrigins(portsdir, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"devel/foo", "www/bar"}, origins)
}

func TestDiscoverOriginsHonorsExplicitList(t *testing.T) {
	portsdir := t.TempDir()
	writePort(t, portsdir, "devel/foo", "PORTNAME=\tfoo\n")
	writePort(t, portsdir, "www/bar", "PORTNAME=\tbar\n")

	origins, err := DiscoverOrigins(portsdir, []string{"devel/foo"})
	require.NoError(t, err)
	require.Equal(t, []string{"devel/foo"}, origins)
}

func TestDiscoverOriginsRejectsMissingMakefile(t *testing.T) {
	portsdir := t.TempDir()

	_, err := DiscoverOrigins(portsdir, []string{"devel/missing"})
	require.Error(t, err)
}

func TestRunAggregatesSortedByOrigin(t *testing.T) {
	portsdir := t.TempDir()
	writePort(t, portsdir, "www/bar", "SOME_MADE_UP_VAR=\tx\n")
	writePort(t, portsdir, "devel/foo", "ANOTHER_MADE_UP_VAR=\ty\n")

	origins, err := DiscoverOrigins(portsdir, nil)
	require.NoError(t, err)

	report := Run(portsdir, origins)
	require.Empty(t, report.Errors)
	require.Len(t, report.Results, 2)
	require.Equal(t, "devel/foo", report.Results[0].Origin)
	require.Equal(t, "www/bar", report.Results[1].Origin)
}

func TestWriteLogDetectsChangeAndUpdatesLatest(t *testing.T) {
	logdir := t.TempDir()

	first := Report{Results: []Result{{Origin: "devel/foo", UnknownVariables: []string{"X"}}}}
	changed, err := WriteLog(logdir, "run1", first)
	require.NoError(t, err)
	require.True(t, changed)

	target, err := os.Readlink(filepath.Join(logdir, "latest"))
	require.NoError(t, err)
	require.Equal(t, "run1", target)

	changed, err = WriteLog(logdir, "run2", first)
	require.NoError(t, err)
	require.False(t, changed)

	second := Report{Results: []Result{{Origin: "devel/foo", UnknownVariables: []string{"X", "Y"}}}}
	changed, err = WriteLog(logdir, "run3", second)
	require.NoError(t, err)
	require.True(t, changed)

	target, err = os.Readlink(filepath.Join(logdir, "latest"))
	require.NoError(t, err)
	require.Equal(t, "run3", target)
}
