package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/Jehops/portfmt/internal/errors"
	"github.com/Jehops/portfmt/internal/sandbox"
	"github.com/Jehops/portfmt/internal/scan"
	"github.com/spf13/cobra"
)

// newScanCmd builds `portfmt scan` (spec.md §6): walks a ports tree in
// parallel, aggregates every origin's findings, and writes a
// timestamped log, exiting 2 when -o is given and nothing changed since
// the previous run.
func newScanCmd() *cobra.Command {
	var logdir string
	var onlyOnChange bool
	var portsdir string

	cmd := &cobra.Command{
		Use:   "scan [ORIGIN...]",
		Short: "Scan a ports tree for unknown variables, targets, and options",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(portsdir, logdir, onlyOnChange, args)
		},
	}

	cmd.Flags().StringVarP(&logdir, "log-dir", "l", "", "directory to write the timestamped scan log under")
	cmd.Flags().BoolVarP(&onlyOnChange, "only-on-change", "o", false, "exit 2 when the new log matches the previous run's")
	cmd.Flags().StringVarP(&portsdir, "ports-dir", "p", "", "root of the ports tree to scan")
	cmd.MarkFlagRequired("ports-dir")

	annotateFlag(cmd, "log-dir", outputGroupLabel)
	annotateFlag(cmd, "only-on-change", modeGroupLabel)
	annotateFlag(cmd, "ports-dir", inputGroupLabel)

	return cmd
}

// scanNoChangeError is returned when -o is given and a scan found no
// difference from the previous logged run; ExitCode reports 2 per
// spec.md §6 rather than the generic 1.
type scanNoChangeError struct{}

func (scanNoChangeError) Error() string { return "scan: no change since previous run" }
func (scanNoChangeError) ExitCode() int { return 2 }

func runScan(portsdir, logdir string, onlyOnChange bool, origins []string) error {
	if portsdir == "" {
		return errors.NewInvalidArgumentError("-p", "ports-dir is required")
	}

	discovered, err := scan.DiscoverOrigins(portsdir, origins)
	if err != nil {
		return err
	}

	// Entered after discovery, not before, and sized to scan.Run's
	// actual worker count: a fixed descriptor cap here would starve
	// legitimate concurrent scanning on any host with more cores than
	// the cap allowed, since each worker holds its own input file open
	// independently of the others.
	if err := sandbox.Enter(scan.WorkerCount(len(discovered))); err != nil {
		return errors.NewIOError(portsdir, err)
	}

	report := scan.Run(portsdir, discovered)

	for origin, err := range report.Errors {
		fmt.Fprintf(os.Stderr, "%s\n", FormatError(errors.NewIOError(origin, err)))
	}

	if logdir == "" {
		for _, line := range scan.RenderLines(report) {
			fmt.Fprintln(os.Stdout, line)
		}
		return nil
	}

	stamp := time.Now().UTC().Format("20060102T150405Z")
	changed, err := scan.WriteLog(logdir, stamp, report)
	if err != nil {
		return errors.NewIOError(logdir, err)
	}

	if onlyOnChange && !changed {
		return scanNoChangeError{}
	}
	return nil
}
