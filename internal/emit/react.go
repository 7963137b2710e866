// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package emit

import (
	"fmt"

	"github.com/petar-djukic/iconforge/internal/naming"
	"github.com/petar-djukic/iconforge/pkg/types"
)

// React emits one component stub plus one type declaration per icon, and
// an index re-exporting every component in registry order. Identifier
// collisions with the React ecosystem are resolved by the naming policy;
// the same identifier appears in the component file name, the declaration,
// and the index entry.
type React struct{}

func (React) Target() string { return "react" }

type reactIcon struct {
	Ident    string
	Geometry []string
}

func (React) Emit(reg *types.Registry, cfg Config) ([]Artifact, error) {
	ids, err := naming.ResolveAll(reg.Names(), cfg.FontName, naming.React())
	if err != nil {
		return nil, fmt.Errorf("react identifiers: %w", err)
	}

	var artifacts []Artifact
	var icons []reactIcon
	for _, e := range reg.Entries() {
		icon := reactIcon{Ident: ids[e.Name], Geometry: e.Geometry}

		component, err := render("react_component.js.tmpl", icon)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{
			RelPath: "react/" + icon.Ident + ".js",
			Data:    component,
		})

		decl, err := render("react_component.d.ts.tmpl", icon)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{
			RelPath: "react/" + icon.Ident + ".d.ts",
			Data:    decl,
		})

		icons = append(icons, icon)
	}

	index, err := render("react_index.js.tmpl", struct{ Icons []reactIcon }{icons})
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, Artifact{RelPath: "react/index.js", Data: index})

	return artifacts, nil
}
