// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodePoint_Forms(t *testing.T) {
	tests := []struct {
		name    string
		cp      CodePoint
		hex     string
		literal string
		glyph   string
	}{
		{"private use area start", 0xE001, "e001", "0xe001", `\ue001`},
		{"low value pads glyph", 0x41, "41", "0x41", `\u0041`},
		{"beyond BMP uses braced form", 0x1F600, "1f600", "0x1f600", `\u{1f600}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hex, tt.cp.Hex())
			assert.Equal(t, tt.literal, tt.cp.Literal())
			assert.Equal(t, tt.glyph, tt.cp.Glyph())
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry([]IconEntry{
		{Name: "home", Geometry: Geometry{"M0 0h10"}, CodePoint: 0xE001},
		{Name: "lock", Geometry: Geometry{}, CodePoint: 0xE002},
	})

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"home", "lock"}, reg.Names())

	e, ok := reg.Lookup("lock")
	assert.True(t, ok)
	assert.Equal(t, CodePoint(0xE002), e.CodePoint)
	assert.Empty(t, e.Geometry)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
}
