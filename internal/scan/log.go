package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jehops/portfmt/internal/diff"
)

// RenderLines renders report as the newline-delimited `TAG ORIGIN NAME`
// lines spec.md §6 describes for the scan log format, one line per
// finding, origins already sorted by Run.
func RenderLines(report Report) []string {
	var lines []string
	for _, r := range report.Results {
		for _, n := range r.UnknownVariables {
			lines = append(lines, fmt.Sprintf("V %s %s", r.Origin, n))
		}
		for _, n := range r.UnknownTargets {
			lines = append(lines, fmt.Sprintf("T %s %s", r.Origin, n))
		}
		for _, n := range r.DuplicateVariables {
			lines = append(lines, fmt.Sprintf("Vc %s %s", r.Origin, n))
		}
		for _, n := range r.OptionGroups {
			lines = append(lines, fmt.Sprintf("Og %s %s", r.Origin, n))
		}
		for _, n := range r.Options {
			lines = append(lines, fmt.Sprintf("O %s %s", r.Origin, n))
		}
	}
	return lines
}

// WriteLog persists report's rendered lines as a new run directory
// named stamp under logdir, repoints the "latest" symlink at it, and
// reports whether the new log differs from the run "latest" pointed at
// beforehand (the scan -o dedupe check, spec.md §6). The caller supplies
// stamp (typically time.Now().UTC().Format of some layout) so this
// package never reads the wall clock itself.
func WriteLog(logdir, stamp string, report Report) (changed bool, err error) {
	lines := RenderLines(report)

	previous, err := readLatestLines(logdir)
	if err != nil {
		return false, err
	}
	changed = !diff.Equal(previous, lines)

	runDir := filepath.Join(logdir, stamp)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return false, err
	}

	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	logPath := filepath.Join(runDir, "scan.log")
	if err := os.WriteFile(logPath, []byte(content), 0o644); err != nil {
		return false, err
	}

	latest := filepath.Join(logdir, "latest")
	tmp := latest + ".tmp"
	_ = os.Remove(tmp)
	if err := os.Symlink(stamp, tmp); err != nil {
		return changed, err
	}
	if err := os.Rename(tmp, latest); err != nil {
		return changed, err
	}

	return changed, nil
}

// readLatestLines reads the log pointed at by logdir's "latest" symlink,
// if any. A missing symlink or log (the first run in a fresh logdir) is
// not an error: it reads as an empty previous report.
func readLatestLines(logdir string) ([]string, error) {
	latest := filepath.Join(logdir, "latest")
	target, err := os.Readlink(latest)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(logdir, target, "scan.log"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	text := string(data)
	if text == "" {
		return nil, nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n"), nil
}
