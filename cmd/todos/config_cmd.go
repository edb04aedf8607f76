package main

import (
	"fmt"
	"io"

	"github.com/mmcdole/todos/internal/adapter"
	"github.com/spf13/cobra"
)

func newConfigCmd(stdout io.Writer, configDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change the configuration",
	}
	cmd.AddCommand(newConfigShowCmd(stdout, configDir))
	cmd.AddCommand(newConfigSetServerCmd(stdout, configDir))
	return cmd
}

func newConfigShowCmd(stdout io.Writer, configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "server.url: %s\n", cfg.Server.URL)
			fmt.Fprintf(stdout, "server.user_id: %d\n", cfg.Server.UserID)
			fmt.Fprintf(stdout, "server.timeout: %s\n", cfg.Server.Timeout)
			fmt.Fprintf(stdout, "ui.error_timeout: %s\n", cfg.UI.ErrorTimeout)
			fmt.Fprintf(stdout, "ui.default_filter: %s\n", cfg.Filter())
			fmt.Fprintf(stdout, "logging.file: %s\n", cfg.Logging.File)
			fmt.Fprintf(stdout, "logging.level: %s\n", cfg.Logging.Level)
			return nil
		},
		SilenceUsage: true,
	}
}

func newConfigSetServerCmd(stdout io.Writer, configDir *string) *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "set-server <url>",
		Short: "Point todos at a different server and user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configDir)
			if err != nil {
				return err
			}

			cfg.Server.URL = args[0]
			if cmd.Flags().Changed("user") {
				cfg.Server.UserID = userID
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			dir := *configDir
			if dir == "" {
				dir = adapter.DefaultConfigPath()
			}
			if err := adapter.SaveConfigTo(cfg, dir); err != nil {
				return err
			}

			fmt.Fprintf(stdout, "✓ Server set to %s (user %d)\n", cfg.Server.URL, cfg.Server.UserID)
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVarP(&userID, "user", "u", 0, "User ID that owns the todos")
	return cmd
}
