//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicPortMakefile = `PORTNAME=	example
PORTVERSION=	1.2.3
CATEGORIES=	net
MAINTAINER=	test@example.com
COMMENT=	An example port

USES=		cmake

.include <bsd.port.mk>
`

func getProjectRoot(t *testing.T) string {
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root")
		}
		dir = parent
	}
}

func buildBinary(t *testing.T) string {
	projectRoot := getProjectRoot(t)
	binaryPath := filepath.Join(t.TempDir(), "portfmt")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/portfmt")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build binary: %s", output)

	return binaryPath
}

func runPortfmt(t *testing.T, binary string, args ...string) (string, string, error) {
	cmd := exec.Command(binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func writeMakefile(t *testing.T, content string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "Makefile")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormatIsIdempotent(t *testing.T) {
	binary := buildBinary(t)
	path := writeMakefile(t, basicPortMakefile)

	first, stderr, err := runPortfmt(t, binary, "format", path)
	require.NoError(t, err, "stderr: %s", stderr)

	require.NoError(t, os.WriteFile(path, []byte(first), 0o644))
	second, stderr, err := runPortfmt(t, binary, "format", path)
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Equal(t, first, second, "formatting an already-formatted Makefile should be a no-op")
}

func TestFormatTestRoundtripFlag(t *testing.T) {
	binary := buildBinary(t)
	path := writeMakefile(t, basicPortMakefile)

	_, stderr, err := runPortfmt(t, binary, "format", "-t", path)
	require.NoError(t, err, "stderr: %s", stderr)
}

func TestFormatInPlace(t *testing.T) {
	binary := buildBinary(t)
	path := writeMakefile(t, "PORTVERSION=\t1.0\nPORTNAME=\texample\n.include <bsd.port.mk>\n")

	_, stderr, err := runPortfmt(t, binary, "format", "-i", path)
	require.NoError(t, err, "stderr: %s", stderr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "PORTNAME")
}

func TestEditBumpRevision(t *testing.T) {
	binary := buildBinary(t)
	path := writeMakefile(t, basicPortMakefile)

	stdout, stderr, err := runPortfmt(t, binary, "edit", "bump-revision", path)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "PORTREVISION")
}

func TestEditSetVersion(t *testing.T) {
	binary := buildBinary(t)
	path := writeMakefile(t, basicPortMakefile)

	stdout, stderr, err := runPortfmt(t, binary, "edit", "set-version", "2.0.0", path)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "2.0.0")
}

func TestEditGet(t *testing.T) {
	binary := buildBinary(t)
	path := writeMakefile(t, basicPortMakefile)

	stdout, stderr, err := runPortfmt(t, binary, "edit", "get", "^PORTNAME$", path)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "example")
}

func TestLintCleanMakefile(t *testing.T) {
	binary := buildBinary(t)
	path := writeMakefile(t, basicPortMakefile)

	formatted, stderr, err := runPortfmt(t, binary, "format", path)
	require.NoError(t, err, "stderr: %s", stderr)
	require.NoError(t, os.WriteFile(path, []byte(formatted), 0o644))

	stdout, stderr, err := runPortfmt(t, binary, "lint", path)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Empty(t, stdout)
}

func TestLintOutOfOrderMakefile(t *testing.T) {
	binary := buildBinary(t)
	path := writeMakefile(t, "MAINTAINER=\ttest@example.com\nPORTNAME=\texample\n.include <bsd.port.mk>\n")

	_, _, err := runPortfmt(t, binary, "lint", path)
	require.Error(t, err, "out-of-order Makefile should fail lint")

	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "error should be ExitError")
	assert.Equal(t, 1, exitErr.ExitCode())
}

func TestScanPortsTree(t *testing.T) {
	binary := buildBinary(t)
	portsdir := t.TempDir()
	portDir := filepath.Join(portsdir, "net", "example")
	require.NoError(t, os.MkdirAll(portDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(portDir, "Makefile"), []byte(basicPortMakefile+"NOT_A_REAL_VARIABLE=\tyes\n"), 0o644))

	stdout, stderr, err := runPortfmt(t, binary, "scan", "-p", portsdir)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "net/example")
	assert.Contains(t, stdout, "NOT_A_REAL_VARIABLE")
}

func TestScanOnlyOnChangeExitsTwoWhenUnchanged(t *testing.T) {
	binary := buildBinary(t)
	portsdir := t.TempDir()
	portDir := filepath.Join(portsdir, "net", "example")
	require.NoError(t, os.MkdirAll(portDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(portDir, "Makefile"), []byte(basicPortMakefile), 0o644))

	logdir := t.TempDir()

	_, stderr, err := runPortfmt(t, binary, "scan", "-p", portsdir, "-l", logdir, "-o")
	require.NoError(t, err, "stderr: %s", stderr)

	_, _, err = runPortfmt(t, binary, "scan", "-p", portsdir, "-l", logdir, "-o")
	require.Error(t, err, "second scan with no change should exit 2")
	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "error should be ExitError")
	assert.Equal(t, 2, exitErr.ExitCode())
}

func TestVersionFlag(t *testing.T) {
	binary := buildBinary(t)

	stdout, _, err := runPortfmt(t, binary, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "portfmt version")
}

func TestMissingMakefileIsAnError(t *testing.T) {
	binary := buildBinary(t)

	_, stderr, err := runPortfmt(t, binary, "format", "/nonexistent/path/to/Makefile")
	require.Error(t, err)
	assert.Contains(t, stderr, "/nonexistent/path/to/Makefile")
}
