// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestEnumerate_OrderAndNaming(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"home.svg":  "<svg/>",
		"2fa.svg":   "<svg/>",
		"react.svg": "<svg/>",
	})

	sources, err := Enumerate(dir)
	require.NoError(t, err)
	require.Len(t, sources, 3)

	// Directory entry order is lexical, stable across runs.
	assert.Equal(t, "2fa", sources[0].Name)
	assert.Equal(t, "home", sources[1].Name)
	assert.Equal(t, "react", sources[2].Name)
	assert.Equal(t, "<svg/>", sources[0].RawContent)
	assert.Equal(t, filepath.Join(dir, "2fa.svg"), sources[0].Path)

	// Repeated enumeration of an unchanged directory is identical.
	again, err := Enumerate(dir)
	require.NoError(t, err)
	assert.Equal(t, sources, again)
}

func TestEnumerate_SkipsNonIcons(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"home.svg":   "<svg/>",
		"notes.txt":  "not an icon",
		"legacy.SVG": "<svg/>", // Extension match is case-insensitive.
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	sources, err := Enumerate(dir)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "home", sources[0].Name)
	assert.Equal(t, "legacy", sources[1].Name)
}

func TestEnumerate_MissingDirectory(t *testing.T) {
	_, err := Enumerate(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading source directory")
}
