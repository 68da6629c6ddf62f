package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kobzarvs/hecto"
	"github.com/kobzarvs/hecto/internal/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hecto:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options
	cmd := &cobra.Command{
		Use:   "hecto [path]",
		Short: "A small modeless terminal text editor",
		Long: `hecto opens a UTF-8 text file (or an empty buffer) in the terminal.
Edits are never written back to disk. Press Ctrl-C to quit.`,
		Version:       hecto.Version(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.New(args, opts).Run()
		},
	}
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/hecto/config.toml)")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	return cmd
}
