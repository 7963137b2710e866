// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package optimize is the boundary to the external SVG optimizer. The
// pipeline treats the optimizer as a black box that rewrites SVG text; the
// only contract is that its output still carries literal path-data
// attributes for extraction.
package optimize

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// requiredPlugins are the normalization passes every invocation runs.
// Transform flattening must happen before path extraction or group
// transforms would be silently lost from the geometry.
var requiredPlugins = []string{"flattenTransforms"}

// Request carries one icon's text through the optimizer.
type Request struct {
	Source  string   // Raw SVG text
	Path    string   // Source file path, for diagnostics only
	Plugins []string // Full plugin pipeline, in execution order
}

// Result is the optimizer's output.
type Result struct {
	Data string
}

// Optimizer rewrites SVG text. Implementations must be safe for
// concurrent use; extraction runs one call per icon in parallel.
type Optimizer interface {
	Optimize(ctx context.Context, req Request) (Result, error)
}

// MergePlugins builds the full plugin pipeline: the built-in normalization
// passes first, then the caller's extras in their given order. Callers can
// extend the pipeline but never displace the required passes; duplicates
// keep their first position.
func MergePlugins(extra []string) []string {
	merged := make([]string, 0, len(requiredPlugins)+len(extra))
	seen := make(map[string]bool, len(requiredPlugins)+len(extra))
	for _, p := range requiredPlugins {
		merged = append(merged, p)
		seen[p] = true
	}
	for _, p := range extra {
		if seen[p] {
			continue
		}
		merged = append(merged, p)
		seen[p] = true
	}
	return merged
}

// Passthrough returns the source unchanged. It is the default when no
// external optimizer is configured, and keeps extraction working on
// sources that are already normalized.
type Passthrough struct{}

func (Passthrough) Optimize(_ context.Context, req Request) (Result, error) {
	return Result{Data: req.Source}, nil
}

// Command pipes the source through an external optimizer binary, stdin to
// stdout. Plugins are passed as repeated --enable flags after any
// configured args.
type Command struct {
	Name    string
	Args    []string
	Timeout time.Duration // Zero means no per-invocation timeout
}

func (c Command) Optimize(ctx context.Context, req Request) (Result, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := append([]string(nil), c.Args...)
	for _, p := range req.Plugins {
		args = append(args, "--enable", p)
	}

	cmd := exec.CommandContext(ctx, c.Name, args...)
	cmd.Stdin = strings.NewReader(req.Source)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return Result{}, fmt.Errorf("optimizer %s on %s: %w: %s", c.Name, req.Path, err, msg)
		}
		return Result{}, fmt.Errorf("optimizer %s on %s: %w", c.Name, req.Path, err)
	}
	return Result{Data: stdout.String()}, nil
}
