// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package emit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlutter_Emit(t *testing.T) {
	artifacts, err := Flutter{}.Emit(testRegistry(), testConfig())
	require.NoError(t, err)
	require.Len(t, artifacts, 2) // No font file configured.

	class := string(artifactByPath(t, artifacts, "flutter/lib/myfont_icons.dart").Data)
	assert.Contains(t, class, "class MyfontIcons {")
	assert.Contains(t, class, "static const String _fontFamily = 'myfont';")
	assert.Contains(t, class, "static const IconData home = IconData(0xe001, fontFamily: _fontFamily);")
	assert.Contains(t, class, "static const IconData Myfont2fa = IconData(0xe002, fontFamily: _fontFamily);")
	assert.Contains(t, class, "static const IconData react = IconData(0xe003, fontFamily: _fontFamily);")

	pubspec := string(artifactByPath(t, artifacts, "flutter/pubspec.yaml").Data)
	assert.Contains(t, pubspec, "name: myfont_icons")
	assert.Contains(t, pubspec, "family: myfont")
	assert.Contains(t, pubspec, "asset: fonts/myfont.ttf")
}

func TestFlutter_BundlesCompiledFont(t *testing.T) {
	fontFile := filepath.Join(t.TempDir(), "myfont.ttf")
	require.NoError(t, os.WriteFile(fontFile, []byte("not really a font"), 0o644))

	cfg := testConfig()
	cfg.FontFile = fontFile

	artifacts, err := Flutter{}.Emit(testRegistry(), cfg)
	require.NoError(t, err)
	require.Len(t, artifacts, 3)

	font := artifactByPath(t, artifacts, "flutter/fonts/myfont.ttf")
	// The font is copied opaquely, never parsed.
	assert.Equal(t, "not really a font", string(font.Data))
}

func TestFlutter_MissingFontFileFails(t *testing.T) {
	cfg := testConfig()
	cfg.FontFile = filepath.Join(t.TempDir(), "absent.ttf")

	_, err := Flutter{}.Emit(testRegistry(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading compiled font")
}
