// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pipeline wires enumeration, registry assembly, font compilation,
// and emission into one run. A run either completes with every enabled
// target emitted or fails fast; a partial registry is never emitted.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/petar-djukic/iconforge/internal/emit"
	"github.com/petar-djukic/iconforge/internal/fontc"
	"github.com/petar-djukic/iconforge/internal/registry"
	"github.com/petar-djukic/iconforge/internal/source"
	"github.com/petar-djukic/iconforge/pkg/types"
)

// Stage errors. Every failure a run reports wraps exactly one of these,
// so callers can classify which phase broke without parsing messages.
var (
	ErrSource  = errors.New("source enumeration failed")
	ErrExtract = errors.New("geometry extraction failed")
	ErrEmit    = errors.New("artifact emission failed")
)

// Deps holds injected dependencies for the runner.
type Deps struct {
	SrcDir        string
	OutDir        string
	FontName      string
	BaseCodePoint types.CodePoint
	Targets       []string // Emitted in the given order
	Extractor     registry.Extractor
	Compiler      fontc.Compiler // nil disables font compilation
	Workers       int
	Logger        *slog.Logger // nil discards logs
}

// Result holds the outcome of a Runner.Run invocation.
type Result struct {
	Icons     int            // Registry size
	Artifacts map[string]int // Target name -> files written
	FontFile  string         // Compiled font path, empty when disabled
	Elapsed   time.Duration
}

// Runner orchestrates one generation run.
type Runner struct {
	deps Deps
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	return &Runner{deps: deps}
}

// Run executes the full pipeline: enumerate sources, assemble the
// registry concurrently, compile the font if configured, then run each
// enabled emitter over the same immutable registry. Emitters write
// disjoint subtrees; targets already written are not rolled back when a
// later one fails, since every target's write is idempotent.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	log := r.deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	start := time.Now()
	result := &Result{Artifacts: make(map[string]int)}

	sources, err := source.Enumerate(r.deps.SrcDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSource, err)
	}
	log.Info("enumerated icons", "dir", r.deps.SrcDir, "count", len(sources))

	assembleStart := time.Now()
	reg, err := registry.Assemble(ctx, sources, r.deps.Extractor, r.deps.BaseCodePoint, r.deps.Workers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtract, err)
	}
	result.Icons = reg.Len()
	log.Info("assembled registry", "icons", reg.Len(), "base", r.deps.BaseCodePoint.Literal(),
		"elapsed", time.Since(assembleStart))

	// Compile the font before emitting so the Flutter bundle can carry it.
	cfg := emit.Config{FontName: r.deps.FontName}
	if r.deps.Compiler != nil {
		fontDir := filepath.Join(r.deps.OutDir, "fonts")
		fontFile, err := r.deps.Compiler.Compile(ctx, reg, fontDir)
		if err != nil {
			return nil, fmt.Errorf("%w: compiling font: %v", ErrEmit, err)
		}
		cfg.FontFile = fontFile
		result.FontFile = fontFile
		log.Info("compiled font", "file", fontFile)
	}

	for _, target := range r.deps.Targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		em, ok := emit.ForTarget(target)
		if !ok {
			return nil, fmt.Errorf("%w: unknown target %q", ErrEmit, target)
		}
		artifacts, err := em.Emit(reg, cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: emitting %s: %v", ErrEmit, target, err)
		}
		if err := emit.WriteArtifacts(r.deps.OutDir, artifacts); err != nil {
			return nil, fmt.Errorf("%w: writing %s artifacts: %v", ErrEmit, target, err)
		}
		result.Artifacts[target] = len(artifacts)
		log.Info("emitted target", "target", target, "files", len(artifacts))
	}

	result.Elapsed = time.Since(start)
	return result, nil
}
