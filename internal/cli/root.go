// Package cli implements the clearprose command line.
package cli

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/dgallion1/clearprose/internal/readability"
)

// Version is set at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = ""

// rootOptions holds global flags.
type rootOptions struct {
	ConfigPath string
	LogLevel   string
}

// NewRootCommand creates the clearprose command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "clearprose",
		Short:         "Flag hard-to-read prose",
		Long:          "clearprose finds adverbs, passive voice, weak and wordy phrases and\nhard sentences, and grades text by reading level.",
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default: nearest "+configFileName+")")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newAnalyzeCmd(opts),
		newTargetsCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the command tree with ctx and returns the error to report.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "clearprose %s\n", version())
		},
	}
}

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List reading-level targets and their thresholds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, t := range readability.Targets() {
				p := readability.ProfileFor(t)
				fmt.Fprintf(out, "%-10s  hard >= %d, very hard >= %d, min words %d\n",
					t, p.HardReadabilityLevel, p.VeryHardReadabilityLevel, p.TooFewWordCount)
			}
		},
	}
}

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
