package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/smathieu/dualpane/pkg/config"
	"github.com/smathieu/dualpane/pkg/logging"
	"github.com/smathieu/dualpane/pkg/theme"
)

// NewThemeCommand creates the theme command and its subcommands
func NewThemeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage visual themes",
		Long: `List, inspect and select the themes used to render comparison output.
Custom themes are YAML files in the themes directory; the user theme is the
only modifiable one.`,
	}

	cmd.AddCommand(newThemeListCommand())
	cmd.AddCommand(newThemeShowCommand())
	cmd.AddCommand(newThemeSetCommand())
	cmd.AddCommand(newThemeWatchCommand())

	return cmd
}

func newThemeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, manager, logger, err := themeSetup(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Close()

			current := manager.CurrentTheme()
			for _, t := range manager.Themes() {
				marker := " "
				if t == current {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-24s %s\n", marker, t.Name(), t.Type())
			}
			return nil
		},
	}
}

func newThemeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show a theme's fonts and colors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, manager, logger, err := themeSetup(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Close()

			t := manager.CurrentTheme()
			if len(args) == 1 {
				found, ok := manager.Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown theme: %s", args[0])
				}
				t = found
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n\n", t.Name(), t.Type())

			fmt.Fprintf(out, "Fonts:\n")
			for _, id := range theme.FontIDs() {
				font := t.Font(id)
				origin := "default"
				if t.FontSet(id) {
					origin = "set"
				}
				style := ""
				if font.Bold {
					style += " bold"
				}
				if font.Italic {
					style += " italic"
				}
				fmt.Fprintf(out, "  %-32s %s %d%s (%s)\n", id, font.Family, font.Size, style, origin)
			}

			fmt.Fprintf(out, "\nColors:\n")
			for _, id := range theme.ColorIDs() {
				color := t.Color(id)
				origin := "default"
				if t.ColorSet(id) {
					origin = "set"
				}
				swatch := ""
				if cfg.Output.Color {
					swatch = lipgloss.NewStyle().Background(lipgloss.Color(string(color))).Render("  ")
				}
				fmt.Fprintf(out, "  %-32s %s %s (%s)\n", id, color, swatch, origin)
			}

			return nil
		},
	}
}

func newThemeSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set NAME",
		Short: "Select the active theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, manager, logger, err := themeSetup(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Close()

			if err := manager.SetCurrent(args[0]); err != nil {
				return err
			}

			cfg.Theme.Current = args[0]
			path := globalFlags.ConfigFile
			if path == "" {
				path, err = config.DefaultConfigPath()
				if err != nil {
					return err
				}
			}
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Active theme set to %q\n", args[0])
			return nil
		},
	}
}

func newThemeWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the themes directory and reload on change",
		Long: `Watch the custom themes directory and reload themes whenever a theme
file is added, changed or removed. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, manager, logger, err := themeSetup(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Close()

			watcher, err := theme.NewWatcher(manager, logger)
			if err != nil {
				return err
			}
			defer watcher.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (ctrl-c to stop)\n", manager.ThemesDir())
			if err := watcher.Start(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}
}

// themeSetup loads the configuration and builds the theme manager and logger
// shared by the theme subcommands
func themeSetup(ctx context.Context) (*config.Config, *theme.Manager, logging.Logger, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	manager, err := newThemeManager(ctx, cfg, logger)
	if err != nil {
		logger.Close()
		return nil, nil, nil, fmt.Errorf("failed to load themes: %w", err)
	}

	return cfg, manager, logger, nil
}
