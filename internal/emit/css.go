// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package emit

import (
	"fmt"

	"github.com/petar-djukic/iconforge/internal/naming"
	"github.com/petar-djukic/iconforge/pkg/types"
)

// CSS emits the class-map artifact: a @font-face block plus one
// `.<prefix>-<class>:before` rule per icon carrying its code point as a
// CSS character escape.
type CSS struct{}

func (CSS) Target() string { return "css" }

type cssIcon struct {
	Class string
	Hex   string
}

type cssData struct {
	FontName string
	Prefix   string
	Icons    []cssIcon
}

func (CSS) Emit(reg *types.Registry, cfg Config) ([]Artifact, error) {
	classes, err := naming.ResolveAll(reg.Names(), cfg.FontName, naming.CSS())
	if err != nil {
		return nil, fmt.Errorf("css classes: %w", err)
	}

	data := cssData{
		FontName: cfg.FontName,
		Prefix:   naming.Normalize(cfg.FontName, cfg.FontName, naming.CSS()),
	}
	for _, e := range reg.Entries() {
		data.Icons = append(data.Icons, cssIcon{
			Class: classes[e.Name],
			Hex:   e.CodePoint.Hex(),
		})
	}

	out, err := render("style.css.tmpl", data)
	if err != nil {
		return nil, err
	}
	return []Artifact{{
		RelPath: "css/" + cfg.FontName + ".css",
		Data:    out,
	}}, nil
}
