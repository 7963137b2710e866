// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/iconforge/pkg/iconforge"
)

// newGenerateCmd creates the "generate" command.
func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate all enabled target artifacts",
		Long:  "Generate enumerates the source icons, assembles the registry, and emits every enabled target. The run either completes fully or fails without partial silent success.",
		RunE:  runGenerate,
	}
}

// runGenerate executes one generation run.
func runGenerate(cmd *cobra.Command, args []string) error {
	var logger *slog.Logger
	if !viper.GetBool("quiet") {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	cfg := iconforge.Config{
		SrcDir:        viper.GetString("src"),
		OutDir:        viper.GetString("out"),
		FontName:      viper.GetString("name"),
		BaseCodePoint: viper.GetUint32("base"),
		Targets:       viper.GetStringSlice("targets"),
		Optimizer:     viper.GetString("optimizer"),
		ExtraPlugins:  viper.GetStringSlice("plugins"),
		FontCompiler:  viper.GetString("font-compiler"),
		Workers:       viper.GetInt("workers"),
		Logger:        logger,
	}

	gen, err := iconforge.New(cfg)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := gen.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	printResult(result)
	return nil
}

// printResult outputs the result as JSON to stdout.
func printResult(result *iconforge.Result) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling result: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
