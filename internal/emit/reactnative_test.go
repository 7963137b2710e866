// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/iconforge/pkg/types"
)

func TestReactNative_Emit(t *testing.T) {
	artifacts, err := ReactNative{}.Emit(testRegistry(), testConfig())
	require.NoError(t, err)
	require.Len(t, artifacts, 2)

	component := string(artifactByPath(t, artifacts, "react-native/index.js").Data)
	// Raw names key the glyph map; code points are embedded verbatim as
	// string escapes.
	assert.Contains(t, component, `'home': '\ue001',`)
	assert.Contains(t, component, `'2fa': '\ue002',`)
	assert.Contains(t, component, `'react': '\ue003',`)
	assert.Contains(t, component, "fontFamily: 'myfont'")
	assert.Contains(t, component, "export default Myfont;")

	decl := string(artifactByPath(t, artifacts, "react-native/index.d.ts").Data)
	// The name union is closed: exactly the registry's names.
	assert.Contains(t, decl, "export type MyfontIconName =")
	assert.Contains(t, decl, "| 'home'")
	assert.Contains(t, decl, "| '2fa'")
	assert.Contains(t, decl, "| 'react';")
	assert.Contains(t, decl, "name: MyfontIconName;")
}

func TestReactNative_EmptyRegistry(t *testing.T) {
	artifacts, err := ReactNative{}.Emit(types.NewRegistry(nil), testConfig())
	require.NoError(t, err)

	// An empty registry still yields well-formed output: the closed name
	// union degrades to never instead of an empty union.
	decl := string(artifactByPath(t, artifacts, "react-native/index.d.ts").Data)
	assert.Contains(t, decl, "export type MyfontIconName = never;")
	assert.NotContains(t, decl, "=;")
}
