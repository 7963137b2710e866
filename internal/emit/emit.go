// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package emit produces per-target artifacts from the finalized icon
// registry. Every emitter is a pure function of the registry plus the
// shared Config: emitters never mutate the registry, never talk to each
// other, and write disjoint subtrees under the output directory. Each one
// recomputes its own identifiers through internal/naming, which keeps
// names consistent across artifacts without any shared cache.
package emit

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/petar-djukic/iconforge/pkg/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Config carries the target-independent emitter inputs.
type Config struct {
	FontName string
	FontFile string // Compiled font path; empty when no compiler ran
}

// Artifact is one output file, path relative to the output directory in
// slash form.
type Artifact struct {
	RelPath string
	Data    []byte
}

// Emitter turns the registry into one target's artifacts.
type Emitter interface {
	Target() string
	Emit(reg *types.Registry, cfg Config) ([]Artifact, error)
}

// emitters lists every known emitter in canonical target order.
var emitters = []Emitter{JSON{}, CSS{}, React{}, ReactNative{}, Flutter{}}

// ForTarget returns the emitter for a target name.
func ForTarget(name string) (Emitter, bool) {
	for _, e := range emitters {
		if e.Target() == name {
			return e, true
		}
	}
	return nil, false
}

// Targets returns every known target name in canonical order.
func Targets() []string {
	names := make([]string, len(emitters))
	for i, e := range emitters {
		names[i] = e.Target()
	}
	return names
}

func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// WriteArtifacts writes artifacts under dir, creating parent directories
// as needed. Each file is written atomically: temp file in the target
// directory, then rename. Rerunning a target overwrites its files cleanly.
func WriteArtifacts(dir string, artifacts []Artifact) error {
	for _, a := range artifacts {
		path := filepath.Join(dir, filepath.FromSlash(a.RelPath))
		if err := writeFileAtomic(path, a.Data); err != nil {
			return fmt.Errorf("writing %s: %w", a.RelPath, err)
		}
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".iconforge-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any error.
	success := false
	defer func() {
		if !success {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	success = true
	return nil
}
