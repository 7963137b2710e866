// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package emit

import (
	"github.com/petar-djukic/iconforge/internal/naming"
	"github.com/petar-djukic/iconforge/pkg/types"
)

// ReactNative emits one aggregate text-icon component embedding the
// name-to-glyph map, plus a type declaration enumerating the valid icon
// names as a closed string-literal union. Icon names are used verbatim as
// map keys; registry uniqueness guarantees the map loses nothing.
type ReactNative struct{}

func (ReactNative) Target() string { return "react-native" }

type rnIcon struct {
	Name  string
	Glyph string
}

type rnData struct {
	FontName      string
	ComponentName string
	TypeName      string
	Icons         []rnIcon
}

func (ReactNative) Emit(reg *types.Registry, cfg Config) ([]Artifact, error) {
	data := rnData{
		FontName:      cfg.FontName,
		ComponentName: naming.Normalize(cfg.FontName, cfg.FontName, naming.React()),
	}
	data.TypeName = data.ComponentName + "IconName"
	for _, e := range reg.Entries() {
		data.Icons = append(data.Icons, rnIcon{
			Name:  e.Name,
			Glyph: e.CodePoint.Glyph(),
		})
	}

	component, err := render("rn_index.js.tmpl", data)
	if err != nil {
		return nil, err
	}
	decl, err := render("rn_index.d.ts.tmpl", data)
	if err != nil {
		return nil, err
	}

	return []Artifact{
		{RelPath: "react-native/index.js", Data: component},
		{RelPath: "react-native/index.d.ts", Data: decl},
	}, nil
}
