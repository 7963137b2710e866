// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types holds the value types shared between the pipeline and the
// public iconforge API.
package types

import "strconv"

// IconSource is one input vector file as enumerated from the source
// directory. Immutable once produced.
type IconSource struct {
	Name       string // Filename stem, pre-normalization
	Path       string // Source file path, kept for diagnostics
	RawContent string // File contents
}

// Geometry is the ordered sequence of path-data strings extracted from one
// icon's optimized content. Empty is valid: the icon renders nothing but
// still occupies a code point.
type Geometry []string

// CodePoint identifies one icon inside a font-based rendering scheme.
type CodePoint uint32

// Hex returns the bare lowercase hex form, e.g. "e001".
func (c CodePoint) Hex() string {
	return strconv.FormatUint(uint64(c), 16)
}

// Literal returns the 0x-prefixed form used in generated source, e.g. "0xe001".
func (c CodePoint) Literal() string {
	return "0x" + c.Hex()
}

// Glyph returns the code point as the string-literal escape used in
// generated JavaScript, e.g. `\ue001`. Code points beyond the BMP use the
// braced ES2015 form.
func (c CodePoint) Glyph() string {
	if c > 0xFFFF {
		return `\u{` + c.Hex() + `}`
	}
	h := c.Hex()
	for len(h) < 4 {
		h = "0" + h
	}
	return `\u` + h
}

// IconEntry is the unit every emitter consumes: one icon's name, geometry,
// and assigned code point.
type IconEntry struct {
	Name      string
	Geometry  Geometry
	CodePoint CodePoint
}

// Registry is the canonical ordered map from icon name to geometry and
// assigned code point. It is built once per run by assembly and read-only
// thereafter; emitters hold only a reference to it.
type Registry struct {
	entries []IconEntry
	byName  map[string]int
}

// NewRegistry builds a Registry from entries in their final assignment
// order. Names must already be unique; assembly enforces that.
func NewRegistry(entries []IconEntry) *Registry {
	byName := make(map[string]int, len(entries))
	for i, e := range entries {
		byName[e.Name] = i
	}
	return &Registry{entries: entries, byName: byName}
}

// Entries returns the entries in assignment order. Callers must treat the
// returned slice as read-only.
func (r *Registry) Entries() []IconEntry {
	return r.entries
}

// Lookup returns the entry for name, if present.
func (r *Registry) Lookup(name string) (IconEntry, bool) {
	i, ok := r.byName[name]
	if !ok {
		return IconEntry{}, false
	}
	return r.entries[i], true
}

// Names returns the icon names in assignment order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
