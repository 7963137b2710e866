// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package emit

import (
	"fmt"
	"os"

	"github.com/petar-djukic/iconforge/internal/naming"
	"github.com/petar-djukic/iconforge/pkg/types"
)

// Flutter emits the cross-platform toolkit bundle: a Dart class with one
// IconData constant per icon, a pubspec declaring the font asset, and a
// copy of the compiled font file under fonts/. The font file is copied by
// path, never parsed. When no compiled font is available the bundle is
// emitted without it.
type Flutter struct{}

func (Flutter) Target() string { return "flutter" }

type flutterIcon struct {
	Ident   string
	Literal string
}

type flutterData struct {
	FontName  string
	ClassName string
	Package   string
	Icons     []flutterIcon
}

func (Flutter) Emit(reg *types.Registry, cfg Config) ([]Artifact, error) {
	ids, err := naming.ResolveAll(reg.Names(), cfg.FontName, naming.Flutter())
	if err != nil {
		return nil, fmt.Errorf("flutter identifiers: %w", err)
	}

	snake := naming.Normalize(cfg.FontName, cfg.FontName, naming.Policy{Case: naming.Snake})
	data := flutterData{
		FontName:  cfg.FontName,
		ClassName: naming.Normalize(cfg.FontName, cfg.FontName, naming.React()) + "Icons",
		Package:   snake + "_icons",
	}
	for _, e := range reg.Entries() {
		data.Icons = append(data.Icons, flutterIcon{
			Ident:   ids[e.Name],
			Literal: e.CodePoint.Literal(),
		})
	}

	class, err := render("flutter_icons.dart.tmpl", data)
	if err != nil {
		return nil, err
	}
	pubspec, err := render("pubspec.yaml.tmpl", data)
	if err != nil {
		return nil, err
	}

	artifacts := []Artifact{
		{RelPath: "flutter/lib/" + snake + "_icons.dart", Data: class},
		{RelPath: "flutter/pubspec.yaml", Data: pubspec},
	}

	if cfg.FontFile != "" {
		font, err := os.ReadFile(cfg.FontFile)
		if err != nil {
			return nil, fmt.Errorf("reading compiled font: %w", err)
		}
		artifacts = append(artifacts, Artifact{
			RelPath: "flutter/fonts/" + cfg.FontName + ".ttf",
			Data:    font,
		})
	}
	return artifacts, nil
}
