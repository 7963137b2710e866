// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command iconforge converts a directory of SVG icons into an icon
// registry and emits JSON, CSS, React, React Native, and Flutter
// artifacts from it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "iconforge",
		Short: "Icon registry and multi-target artifact generator",
		Long:  "iconforge enumerates SVG icon files, assigns each a code point, and regenerates every enabled target artifact from the same registry.",
	}

	// Global flags.
	rootCmd.PersistentFlags().String("src", "", "Source directory of .svg icons")
	rootCmd.PersistentFlags().String("out", "", "Destination directory for generated artifacts")
	rootCmd.PersistentFlags().String("name", "", "Target font name")
	rootCmd.PersistentFlags().Uint32("base", 0xE001, "First assigned code point")
	rootCmd.PersistentFlags().StringSlice("targets", nil, "Targets to emit (default: all)")
	rootCmd.PersistentFlags().String("optimizer", "", "External SVG optimizer command line")
	rootCmd.PersistentFlags().StringSlice("plugins", nil, "Extra optimizer plugins, appended after the built-in pipeline")
	rootCmd.PersistentFlags().String("font-compiler", "", "External font compiler command line")
	rootCmd.PersistentFlags().Int("workers", 0, "Extraction concurrency (0 = number of CPUs)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress progress logging")

	// Bind flags to viper.
	viper.BindPFlag("src", rootCmd.PersistentFlags().Lookup("src"))
	viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
	viper.BindPFlag("name", rootCmd.PersistentFlags().Lookup("name"))
	viper.BindPFlag("base", rootCmd.PersistentFlags().Lookup("base"))
	viper.BindPFlag("targets", rootCmd.PersistentFlags().Lookup("targets"))
	viper.BindPFlag("optimizer", rootCmd.PersistentFlags().Lookup("optimizer"))
	viper.BindPFlag("plugins", rootCmd.PersistentFlags().Lookup("plugins"))
	viper.BindPFlag("font-compiler", rootCmd.PersistentFlags().Lookup("font-compiler"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	// Env vars: ICONFORGE_SRC, ICONFORGE_OUT, etc.
	viper.SetEnvPrefix("ICONFORGE")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".iconforge")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the iconforge version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("iconforge %s\n", version)
		},
	}
}
