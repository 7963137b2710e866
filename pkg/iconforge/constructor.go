// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package iconforge

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/petar-djukic/iconforge/internal/emit"
	"github.com/petar-djukic/iconforge/internal/extract"
	"github.com/petar-djukic/iconforge/internal/fontc"
	"github.com/petar-djukic/iconforge/internal/optimize"
	"github.com/petar-djukic/iconforge/internal/pipeline"
	"github.com/petar-djukic/iconforge/pkg/types"
)

// New validates the config and returns a ready-to-use Generator. It does
// not touch the source directory's contents; that happens in Run.
func New(cfg Config) (Generator, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	var opt optimize.Optimizer = optimize.Passthrough{}
	if cfg.Optimizer != "" {
		name, args := splitCommand(cfg.Optimizer)
		opt = optimize.Command{Name: name, Args: args}
	}

	var compiler fontc.Compiler
	if cfg.FontCompiler != "" {
		name, args := splitCommand(cfg.FontCompiler)
		compiler = fontc.Command{Name: name, Args: args, FontName: cfg.FontName}
	}

	runner := pipeline.NewRunner(pipeline.Deps{
		SrcDir:        cfg.SrcDir,
		OutDir:        cfg.OutDir,
		FontName:      cfg.FontName,
		BaseCodePoint: types.CodePoint(cfg.BaseCodePoint),
		Targets:       cfg.Targets,
		Extractor:     extract.Extractor{Optimizer: opt, Plugins: cfg.ExtraPlugins},
		Compiler:      compiler,
		Workers:       cfg.Workers,
		Logger:        cfg.Logger,
	})

	return &generatorAdapter{runner: runner}, nil
}

// generatorAdapter adapts internal/pipeline.Runner to the public
// Generator interface.
type generatorAdapter struct {
	runner *pipeline.Runner
}

func (a *generatorAdapter) Run(ctx context.Context) (*Result, error) {
	pr, err := a.runner.Run(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{
		Icons:     pr.Icons,
		Artifacts: pr.Artifacts,
		FontFile:  pr.FontFile,
		Elapsed:   pr.Elapsed,
	}, nil
}

// validateConfig checks that required fields are present and that every
// requested target is known.
func validateConfig(cfg Config) error {
	if cfg.SrcDir == "" {
		return fmt.Errorf("SrcDir is required")
	}
	if info, err := os.Stat(cfg.SrcDir); err != nil || !info.IsDir() {
		return fmt.Errorf("SrcDir %q does not exist or is not a directory", cfg.SrcDir)
	}
	if cfg.OutDir == "" {
		return fmt.Errorf("OutDir is required")
	}
	if cfg.FontName == "" {
		return fmt.Errorf("FontName is required")
	}
	for _, target := range cfg.Targets {
		if _, ok := emit.ForTarget(target); !ok {
			return fmt.Errorf("unknown target %q (known: %s)", target, strings.Join(emit.Targets(), ", "))
		}
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.BaseCodePoint == 0 {
		cfg.BaseCodePoint = DefaultBaseCodePoint
	}
	if len(cfg.Targets) == 0 {
		cfg.Targets = emit.Targets()
	}
}

// splitCommand separates a command line into binary and arguments.
func splitCommand(cmdline string) (string, []string) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
