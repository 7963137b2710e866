// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package emit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_Emit(t *testing.T) {
	artifacts, err := JSON{}.Emit(testRegistry(), testConfig())
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "json/myfont.json", artifacts[0].RelPath)

	want := `{
  "home": ["M0 0h10","M5 5v5"],
  "2fa": [],
  "react": ["M9 9z"]
}
`
	assert.Equal(t, want, string(artifacts[0].Data))

	// The artifact is valid JSON despite the hand-built framing.
	var decoded map[string][]string
	require.NoError(t, json.Unmarshal(artifacts[0].Data, &decoded))
	assert.Len(t, decoded, 3)
	assert.Empty(t, decoded["2fa"])
}

func TestJSON_Deterministic(t *testing.T) {
	first, err := JSON{}.Emit(testRegistry(), testConfig())
	require.NoError(t, err)
	second, err := JSON{}.Emit(testRegistry(), testConfig())
	require.NoError(t, err)
	assert.Equal(t, first[0].Data, second[0].Data)
}
