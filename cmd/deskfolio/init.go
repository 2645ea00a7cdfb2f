package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/deskfolio/internal/config"
	"github.com/jmylchreest/deskfolio/internal/portfolio"
)

var initOpts struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config and a sample portfolio",
	Long: `Write the default configuration and a sample portfolio to their
default locations. Existing files are kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initOpts.force, "force", false,
		"Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	configPath := globalOpts.configPath
	if configPath == "" {
		configPath = config.ConfigPath()
	}
	if initOpts.force || !exists(configPath) {
		if err := config.DefaultConfig().Save(configPath); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintln(out, "wrote", configPath)
	} else {
		fmt.Fprintln(out, "kept", configPath)
	}

	if err := config.EnsureDataDir(); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	portfolioPath := source.Path()
	if initOpts.force || !exists(portfolioPath) {
		if err := portfolio.Save(portfolioPath, portfolio.Default()); err != nil {
			return fmt.Errorf("failed to write portfolio: %w", err)
		}
		fmt.Fprintln(out, "wrote", portfolioPath)
	} else {
		fmt.Fprintln(out, "kept", portfolioPath)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
