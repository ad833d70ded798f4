package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smathieu/dualpane/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "dualpane",
		Short: "Dual-pane folder comparison and theming toolkit",
		Long: `dualpane provides the core services of a dual-pane file manager without
the widget layer: it compares two folder listings the way a dual-pane view
would, marking entries that are missing or newer on the other side, and
manages the visual themes used to render the results.`,
		Version:       cli.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewCompareCommand())
	rootCmd.AddCommand(cli.NewThemeCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}
