// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the prdgen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the prdgen CLI.
var rootCmd = &cobra.Command{
	Use:   "prdgen",
	Short: "Convert plain-text PRDs into formatted PDF documents",
	Long: `prdgen turns a loosely structured plain-text Product Requirements Document
into a formatted, paginated PDF with a cover page, table of contents, and
sixteen numbered sections. Sections missing from the input degrade to
placeholders rather than failing the build.

Each operation is a subcommand: generate renders PDFs, sections shows the
extraction result, and history lists past generation runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./prdgen.yaml or ~/.config/prdgen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("prdgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "prdgen"))
		}
	}

	viper.SetEnvPrefix("PRDGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
