// Package cli wires the selectkit command line.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"selectkit/internal/config"
)

type rootOptions struct {
	configPath  string
	mode        string
	orientation string
	logFile     string
	debug       bool
	print       bool
}

// NewRootCmd creates the root command. Without a subcommand it runs the
// interactive selection demo.
func NewRootCmd(ver string) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:     "selectkit",
		Short:   "Terminal list and select box driven by a selection engine",
		Long:    "selectkit: a list with single, multi, additive and one selection modes, plus a select box.",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", config.FileName, "path to the TOML config file")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "selection mode: single, multi, additive or one")
	cmd.Flags().StringVar(&opts.orientation, "orientation", "", "list orientation: vertical or horizontal")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "log file (default from config)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&opts.print, "print", false, "print the selected labels on exit")

	cmd.AddCommand(newConfigCmd(&opts))
	return cmd
}

const rootCmdExample = `  # Run with the config in the current directory
  selectkit

  # Start in additive mode and print the picks on exit
  selectkit --mode additive --print

  # Write a default config file
  selectkit config init`

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute(ver string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := NewRootCmd(ver).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
