// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the vaxlit CLI: it tags scholarly
// publication records with a controlled research vocabulary and manages
// per-source tagging runs.
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

// rootCmd is the base command for the vaxlit CLI.
var rootCmd = &cobra.Command{
	Use:   "vaxlit",
	Short: "Tag vaccine-literature records with a controlled vocabulary",
	Long: `vaxlit annotates scholarly publication records with research tags:
population groups, age bands, study counts, interventions, outcomes, and
vaccine-preventable diseases. Records are read from a local database per
source, their full text fetched by DOI, tagged by a deterministic
regex-driven engine, and written back alongside a CSV export.

Tagged records feed a filterable research dashboard.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./vaxlit.yaml or ~/.config/vaxlit/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("vaxlit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vaxlit"))
		}
	}

	viper.SetEnvPrefix("VAXLIT")
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
