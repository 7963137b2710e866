// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSS_Emit(t *testing.T) {
	artifacts, err := CSS{}.Emit(testRegistry(), testConfig())
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "css/myfont.css", artifacts[0].RelPath)

	out := string(artifacts[0].Data)
	assert.Contains(t, out, "font-family: 'myfont';")
	assert.Contains(t, out, "url('./myfont.ttf')")
	assert.Contains(t, out, ".myfont-home:before {\n  content: '\\e001';\n}")
	assert.Contains(t, out, ".myfont-2fa:before {\n  content: '\\e002';\n}")
	assert.Contains(t, out, ".myfont-react:before {\n  content: '\\e003';\n}")
}
