// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package source enumerates icon files from a source directory.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/iconforge/pkg/types"
)

// Enumerate lists the vector icon files directly under dir and reads their
// contents. The order is the directory's lexical entry order, which is
// stable across runs for a fixed directory state; everything downstream
// (code-point assignment in particular) depends on this order and nothing
// else. Subdirectories and non-SVG entries are skipped. A missing directory
// or an unreadable file aborts the enumeration.
func Enumerate(dir string) ([]types.IconSource, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory: %w", err)
	}

	var sources []types.IconSource
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		ext := filepath.Ext(d.Name())
		if !strings.EqualFold(ext, ".svg") {
			continue
		}
		path := filepath.Join(dir, d.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading icon %s: %w", path, err)
		}
		sources = append(sources, types.IconSource{
			Name:       strings.TrimSuffix(d.Name(), ext),
			Path:       path,
			RawContent: string(data),
		})
	}
	return sources, nil
}
