package cli

import (
	"fmt"
	"strings"

	"github.com/Jehops/portfmt/internal/errors"
	"github.com/Jehops/portfmt/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	modeGroupLabel   = "Mode"
	inputGroupLabel  = "Input"
	outputGroupLabel = "Output/formatting"
	miscGroupLabel   = "Misc"
)

func init() {
	cobra.AddTemplateFunc("flagGroups", flagGroupsFunc)
}

// NewRootCmd builds the portfmt root command and wires its four
// subcommands (spec.md §6): format, edit, lint, scan.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfmt",
		Short:         "Format, edit, lint, and scan FreeBSD port Makefiles",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newFormatCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newLintCmd())
	root.AddCommand(newScanCmd())

	root.SetUsageTemplate(usageTemplate)
	return root
}

// exitCoder is implemented by errors that already know their process
// exit status (scan's "no change" result, for instance); ExitCode falls
// back to the error-kind-based mapping for everything else.
type exitCoder interface {
	ExitCode() int
}

// ExitCode maps err to the process exit status spec.md §6 specifies: 0
// for nil, a command-supplied code for exitCoder errors, 78 (EX_USAGE)
// for malformed arguments, 1 for every other parse/edit/IO failure.
func ExitCode(err error) (int, bool) {
	if err == nil {
		return 0, true
	}
	if ec, ok := err.(exitCoder); ok {
		return ec.ExitCode(), true
	}
	if _, ok := err.(*errors.InvalidArgumentError); ok {
		return 78, true
	}
	return 1, true
}

// FormatError renders err the way portfmt prints CLI failures to
// stderr: "portfmt: <message>".
func FormatError(err error) string {
	return errors.Format("portfmt", "", err)
}

// annotateFlag adds a group annotation to a flag for the custom usage
// template's grouped flag listing.
func annotateFlag(cmd *cobra.Command, flagName, group string) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		flag = cmd.PersistentFlags().Lookup(flagName)
	}
	if flag != nil {
		if flag.Annotations == nil {
			flag.Annotations = make(map[string][]string)
		}
		flag.Annotations["group"] = []string{group}
	}
}

const usageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{flagGroups .}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

func flagGroupsFunc(cmd *cobra.Command) string {
	groupOrder := []string{modeGroupLabel, inputGroupLabel, outputGroupLabel, miscGroupLabel}

	flagsByGroup := make(map[string][]string)
	seenFlags := make(map[string]bool)

	processFlags := func(flags *pflag.FlagSet) {
		flags.VisitAll(func(flag *pflag.Flag) {
			if flag.Hidden || seenFlags[flag.Name] {
				return
			}
			seenFlags[flag.Name] = true

			group := miscGroupLabel
			if flag.Annotations != nil {
				if groups, ok := flag.Annotations["group"]; ok && len(groups) > 0 {
					group = groups[0]
				}
			}
			flagsByGroup[group] = append(flagsByGroup[group], formatFlagUsage(flag))
		})
	}
	processFlags(cmd.Flags())
	processFlags(cmd.PersistentFlags())

	var sb strings.Builder
	for _, group := range groupOrder {
		flags, ok := flagsByGroup[group]
		if !ok || len(flags) == 0 {
			continue
		}
		sb.WriteString(group)
		sb.WriteString(":\n")
		for _, flagUsage := range flags {
			sb.WriteString(flagUsage)
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func formatFlagUsage(flag *pflag.Flag) string {
	var sb strings.Builder

	if flag.Shorthand != "" && flag.ShorthandDeprecated == "" {
		sb.WriteString("  -")
		sb.WriteString(flag.Shorthand)
		sb.WriteString(", ")
	} else {
		sb.WriteString("      ")
	}

	sb.WriteString("--")
	sb.WriteString(flag.Name)

	if flag.Value.Type() != "bool" {
		sb.WriteString(" ")
		typeName := flag.Value.Type()
		switch typeName {
		case "stringArray", "stringSlice":
			typeName = "strings"
		case "intSlice":
			typeName = "ints"
		}
		sb.WriteString(typeName)
	}

	currentLen := sb.Len()
	if padding := 36 - currentLen; padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	} else {
		sb.WriteString("   ")
	}

	sb.WriteString(flag.Usage)
	if shouldShowDefault(flag) {
		sb.WriteString(fmt.Sprintf(" (default %s)", flag.DefValue))
	}
	sb.WriteString("\n")
	return sb.String()
}

func shouldShowDefault(flag *pflag.Flag) bool {
	if flag.DefValue == "" || flag.DefValue == "[]" {
		return false
	}
	if flag.Value.Type() == "bool" && flag.DefValue == "false" {
		return false
	}
	if flag.Value.Type() != "bool" && flag.DefValue == "0" {
		return false
	}
	return true
}
