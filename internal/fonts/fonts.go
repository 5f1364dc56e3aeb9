// Package fonts resolves font face names to TrueType data and builds glyph
// atlases for GPU text rendering.
package fonts

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// builtin maps lower-cased family names to embedded font data.
var builtin = map[string][]byte{
	"go":             goregular.TTF,
	"go regular":     goregular.TTF,
	"go bold":        gobold.TTF,
	"go italic":      goitalic.TTF,
	"go bold italic": gobolditalic.TTF,
	"go medium":      gomedium.TTF,
	"go mono":        gomono.TTF,
	"go mono bold":   gomonobold.TTF,
	"go smallcaps":   gosmallcaps.TTF,
}

// Default is the face used when a configuration names none.
const Default = "Go"

// Families returns the built-in family names, sorted.
func Families() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns font data for face, which is either a built-in family name
// (case insensitive) or a path to a .ttf/.otf file.
func Load(face string) ([]byte, error) {
	if face == "" {
		face = Default
	}
	if data, ok := builtin[strings.ToLower(strings.TrimSpace(face))]; ok {
		return data, nil
	}
	if !looksLikePath(face) {
		return nil, fmt.Errorf("unknown font face %q", face)
	}
	data, err := os.ReadFile(face)
	if err != nil {
		return nil, fmt.Errorf("read font %q: %w", face, err)
	}
	return data, nil
}

func looksLikePath(face string) bool {
	if strings.ContainsAny(face, `/\`) {
		return true
	}
	lower := strings.ToLower(face)
	return strings.HasSuffix(lower, ".ttf") || strings.HasSuffix(lower, ".otf")
}
