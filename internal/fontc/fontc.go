// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fontc is the boundary to the external font compiler. The
// compiler consumes the registry's geometry and code points and produces
// a binary font file; this system only ever handles that file by path and
// never inspects its bytes.
package fontc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/iconforge/pkg/types"
)

// Compiler produces a binary font for the registry under dir and returns
// the font file's path.
type Compiler interface {
	Compile(ctx context.Context, reg *types.Registry, dir string) (string, error)
}

// glyphSpec is one icon as handed to the external compiler.
type glyphSpec struct {
	Name      string   `json:"name"`
	CodePoint uint32   `json:"codepoint"`
	Paths     []string `json:"paths"`
}

// Command runs an external font compiler binary. The registry is
// serialized as a JSON array on stdin, in assignment order; the compiler
// is expected to write its output to the path passed via --out.
type Command struct {
	Name     string
	Args     []string
	FontName string
}

func (c Command) Compile(ctx context.Context, reg *types.Registry, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating font directory %s: %w", dir, err)
	}
	dest := filepath.Join(dir, c.FontName+".ttf")

	glyphs := make([]glyphSpec, 0, reg.Len())
	for _, e := range reg.Entries() {
		glyphs = append(glyphs, glyphSpec{
			Name:      e.Name,
			CodePoint: uint32(e.CodePoint),
			Paths:     []string(e.Geometry),
		})
	}
	payload, err := json.Marshal(glyphs)
	if err != nil {
		return "", fmt.Errorf("marshaling glyphs: %w", err)
	}

	args := append(append([]string(nil), c.Args...), "--out", dest)
	cmd := exec.CommandContext(ctx, c.Name, args...)
	cmd.Stdin = bytes.NewReader(payload)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("font compiler %s: %w: %s", c.Name, err, msg)
		}
		return "", fmt.Errorf("font compiler %s: %w", c.Name, err)
	}

	if _, err := os.Stat(dest); err != nil {
		return "", fmt.Errorf("font compiler produced no file at %s: %w", dest, err)
	}
	return dest, nil
}
