// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package extract turns raw icon sources into path geometry by running
// the optimizer and scanning its output for path-data attributes.
package extract

import (
	"context"
	"fmt"
	"regexp"

	"github.com/petar-djukic/iconforge/internal/optimize"
	"github.com/petar-djukic/iconforge/pkg/types"
)

// pathData matches d attributes in optimized SVG text, single or double
// quoted. Matches are taken in document order, never sorted.
var pathData = regexp.MustCompile(`\bd="([^"]*)"|\bd='([^']*)'`)

// Extractor produces geometry for icon sources. The zero value uses the
// passthrough optimizer with no extra plugins.
type Extractor struct {
	Optimizer optimize.Optimizer // nil means optimize.Passthrough
	Plugins   []string           // Appended after the built-in pipeline
}

// Extract optimizes one icon's text and returns its path-data strings in
// document order. An icon with no extractable paths yields an empty,
// non-nil Geometry; that is a valid result, not an error. A failed
// optimizer invocation fails the extraction.
func (e Extractor) Extract(ctx context.Context, src types.IconSource) (types.Geometry, error) {
	opt := e.Optimizer
	if opt == nil {
		opt = optimize.Passthrough{}
	}

	res, err := opt.Optimize(ctx, optimize.Request{
		Source:  src.RawContent,
		Path:    src.Path,
		Plugins: optimize.MergePlugins(e.Plugins),
	})
	if err != nil {
		return nil, fmt.Errorf("optimizing %s: %w", src.Path, err)
	}

	geometry := types.Geometry{}
	for _, m := range pathData.FindAllStringSubmatch(res.Data, -1) {
		d := m[1]
		if d == "" && m[2] != "" {
			d = m[2]
		}
		geometry = append(geometry, d)
	}
	return geometry, nil
}
