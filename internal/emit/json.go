// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package emit

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/petar-djukic/iconforge/pkg/types"
)

// JSON emits the geometry map: icon name to path-data array, keys in
// registry order. This is the machine-readable form of the registry
// itself, so the object is built by hand rather than through a Go map,
// which would sort the keys and lose the assignment order.
type JSON struct{}

func (JSON) Target() string { return "json" }

func (JSON) Emit(reg *types.Registry, cfg Config) ([]Artifact, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	entries := reg.Entries()
	for i, e := range entries {
		name, err := json.Marshal(e.Name)
		if err != nil {
			return nil, fmt.Errorf("marshaling name %q: %w", e.Name, err)
		}
		geom := e.Geometry
		if geom == nil {
			geom = types.Geometry{}
		}
		paths, err := json.Marshal([]string(geom))
		if err != nil {
			return nil, fmt.Errorf("marshaling geometry for %q: %w", e.Name, err)
		}
		buf.WriteString("  ")
		buf.Write(name)
		buf.WriteString(": ")
		buf.Write(paths)
		if i < len(entries)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	return []Artifact{{
		RelPath: "json/" + cfg.FontName + ".json",
		Data:    buf.Bytes(),
	}}, nil
}
