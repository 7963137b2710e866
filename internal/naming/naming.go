// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package naming maps raw icon names to identifiers valid in each target
// ecosystem. Normalization is pure: emitters recompute identifiers
// independently from the same names and must always agree, so there is no
// hidden state anywhere in this package.
package naming

import (
	"fmt"
	"strings"
	"unicode"
)

// Case selects a target's identifier convention.
type Case int

const (
	Pascal     Case = iota // Component-style targets (React)
	LowerCamel             // Constant-style targets (Flutter)
	Kebab                  // Class-style targets (CSS)
	Snake                  // File and package names (Dart)
)

// Policy describes one target ecosystem's identifier rules.
type Policy struct {
	Case       Case
	Reserved   map[string]bool // Identifiers the ecosystem claims for itself
	GuardDigit bool            // Whether a leading digit is invalid
}

// dartReserved covers Dart keywords plus the Flutter names a generated
// constant would shadow.
var dartReserved = map[string]bool{
	"assert": true, "break": true, "case": true, "catch": true,
	"class": true, "const": true, "continue": true, "default": true,
	"do": true, "else": true, "enum": true, "extends": true,
	"false": true, "final": true, "finally": true, "for": true,
	"if": true, "in": true, "is": true, "new": true, "null": true,
	"rethrow": true, "return": true, "super": true, "switch": true,
	"this": true, "throw": true, "true": true, "try": true,
	"var": true, "void": true, "while": true, "with": true,
	"iconData": true, "icons": true,
}

// React returns the naming policy for React component identifiers.
func React() Policy {
	return Policy{
		Case:       Pascal,
		Reserved:   map[string]bool{"React": true},
		GuardDigit: true,
	}
}

// Flutter returns the naming policy for Flutter constant identifiers.
func Flutter() Policy {
	return Policy{
		Case:       LowerCamel,
		Reserved:   dartReserved,
		GuardDigit: true,
	}
}

// CSS returns the naming policy for CSS class suffixes. Generated classes
// are always prefixed with the font name, so a leading digit is harmless.
func CSS() Policy {
	return Policy{Case: Kebab}
}

// Normalize maps a raw icon name to an identifier under the given policy.
// Rules, in order: convert case; append the capitalized font name when the
// result is reserved by the target ecosystem; prepend the capitalized font
// name when the result starts with a digit. Identical inputs always
// produce identical outputs.
func Normalize(rawName, fontName string, p Policy) string {
	id := convertCase(rawName, p.Case)
	if p.Reserved[id] {
		id += Capitalize(fontName)
	}
	if p.GuardDigit && leadingDigit(id) {
		id = Capitalize(fontName) + id
	}
	return id
}

// ResolveAll computes the identifier for every name under one policy. Two
// distinct names mapping to the same identifier reject the whole set: the
// collision cannot be disambiguated deterministically, and overwriting
// would silently drop an icon from the emitted artifact.
func ResolveAll(names []string, fontName string, p Policy) (map[string]string, error) {
	ids := make(map[string]string, len(names))
	first := make(map[string]string, len(names)) // identifier -> claiming name
	for _, name := range names {
		id := Normalize(name, fontName, p)
		if prev, ok := first[id]; ok {
			return nil, fmt.Errorf("icons %q and %q both normalize to identifier %q", prev, name, id)
		}
		first[id] = name
		ids[name] = id
	}
	return ids, nil
}

// Capitalize upper-cases the first rune and leaves the rest unchanged.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func leadingDigit(s string) bool {
	if s == "" {
		return false
	}
	return unicode.IsDigit([]rune(s)[0])
}

func convertCase(raw string, c Case) string {
	words := splitWords(raw)
	switch c {
	case Pascal:
		var b strings.Builder
		for _, w := range words {
			b.WriteString(Capitalize(w))
		}
		return b.String()
	case LowerCamel:
		var b strings.Builder
		for i, w := range words {
			if i == 0 {
				b.WriteString(strings.ToLower(w))
			} else {
				b.WriteString(Capitalize(strings.ToLower(w)))
			}
		}
		return b.String()
	case Kebab:
		lower := make([]string, len(words))
		for i, w := range words {
			lower[i] = strings.ToLower(w)
		}
		return strings.Join(lower, "-")
	case Snake:
		lower := make([]string, len(words))
		for i, w := range words {
			lower[i] = strings.ToLower(w)
		}
		return strings.Join(lower, "_")
	default:
		return raw
	}
}

// splitWords breaks a raw name on separator runes and on lower-to-upper
// case boundaries, so kebab, snake, and camel inputs all split the same
// way. Digits stay attached to their surrounding word.
func splitWords(raw string) []string {
	var words []string
	var cur []rune
	var prev rune
	for _, r := range raw {
		switch {
		case r == '-' || r == '_' || r == '.' || r == ' ':
			if len(cur) > 0 {
				words = append(words, string(cur))
				cur = cur[:0]
			}
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			words = append(words, string(cur))
			cur = []rune{r}
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	if len(cur) > 0 {
		words = append(words, string(cur))
	}
	return words
}
