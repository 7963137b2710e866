// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package iconforge defines the public interface for iconforge, a tool
// that turns a directory of SVG icons into a canonical icon registry and
// fans it out into JSON, CSS, React, React Native, and Flutter artifacts.
package iconforge

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/petar-djukic/iconforge/internal/pipeline"
)

// Error types for the iconforge API. A run's failure wraps exactly one of
// the stage errors, so callers can errors.Is-classify what broke: sources
// (missing or unreadable icons), extraction (no registry was assembled),
// or emission (a target's artifacts could not be produced or written).
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrSource        = pipeline.ErrSource
	ErrExtract       = pipeline.ErrExtract
	ErrEmit          = pipeline.ErrEmit
)

// DefaultBaseCodePoint is the first assigned code point when the config
// does not set one. It sits in the Unicode private use area.
const DefaultBaseCodePoint = 0xE001

// Config configures a Generator. Every recognized option is listed here;
// zero values take the documented defaults.
type Config struct {
	SrcDir        string       // Directory of .svg sources (required)
	OutDir        string       // Destination directory (required)
	FontName      string       // Target font name (required)
	BaseCodePoint uint32       // First code point (default DefaultBaseCodePoint)
	Targets       []string     // Targets to emit (default: all known targets)
	Optimizer     string       // External optimizer command line (empty: passthrough)
	ExtraPlugins  []string     // Optimizer plugins appended after the built-in pipeline
	FontCompiler  string       // External font compiler command line (empty: skip)
	Workers       int          // Extraction concurrency (default: NumCPU)
	Logger        *slog.Logger // Progress logging (nil: silent)
}

// Result holds the outcome of a Generator.Run invocation.
type Result struct {
	Icons     int            // Number of icons in the registry
	Artifacts map[string]int // Files written per target
	FontFile  string         // Compiled font path, empty when compilation is disabled
	Elapsed   time.Duration  // Wall-clock run time
}

// Generator executes one full generation run. A run either completes with
// every enabled target emitted, or fails with no partial silent success.
type Generator interface {
	Run(ctx context.Context) (*Result, error)
}
