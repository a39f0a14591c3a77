package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"searchbar/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the searchbar configuration",
	Long: `Manage the searchbar configuration file.

Configuration is stored in ~/.config/searchbar/config.toml unless --config is given.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := configService()
		if _, err := os.Stat(svc.Path()); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", svc.Path())
		}
		if err := svc.Save(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return writeConfig(cmd.OutOrStdout(), cfg)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the config, history and log files live",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config:  %s\n", configService().Path())
		fmt.Fprintf(out, "history: %s\n", defaultPath("history.toml"))
		fmt.Fprintf(out, "log:     %s\n", defaultPath("searchbar.log"))
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd, configShowCmd, configPathCmd)
}
