// Package palette maps vertex group tags to display colors.
//
// A vertex's color field is a small integer that doubles as its group key.
// A [Palette] turns that tag into a named color for renderers and terminal
// output. Lookups wrap around, so any non-negative tag resolves to some
// entry and negative tags resolve to the first one.
package palette

import (
	"fmt"
	"strings"
)

// Entry is one named color.
type Entry struct {
	Name string `toml:"name" json:"name"`
	Hex  string `toml:"hex" json:"hex"` // "#rrggbb"
}

// Palette is an ordered list of colors indexed by group tag.
type Palette []Entry

// Default returns the eight built-in group colors in tag order.
func Default() Palette {
	return Palette{
		{Name: "yellow", Hex: "#ffff00"},
		{Name: "purple", Hex: "#c040c0"},
		{Name: "red", Hex: "#ff0000"},
		{Name: "orange", Hex: "#ffa500"},
		{Name: "white", Hex: "#ffffff"},
		{Name: "black", Hex: "#000000"},
		{Name: "green", Hex: "#00ff00"},
		{Name: "blue", Hex: "#0000ff"},
	}
}

// At returns the entry for a group tag. Tags past the end wrap around;
// negative tags and an empty palette fall back to the first default color.
func (p Palette) At(tag int) Entry {
	if len(p) == 0 {
		return Default()[0]
	}
	if tag < 0 {
		return p[0]
	}
	return p[tag%len(p)]
}

// Hex is shorthand for p.At(tag).Hex.
func (p Palette) Hex(tag int) string { return p.At(tag).Hex }

// Name is shorthand for p.At(tag).Name.
func (p Palette) Name(tag int) string { return p.At(tag).Name }

// Index returns the tag of the first entry with the given name, compared
// case-insensitively, or -1.
func (p Palette) Index(name string) int {
	for i, e := range p {
		if strings.EqualFold(e.Name, name) {
			return i
		}
	}
	return -1
}

// Validate checks that every entry has a name and a #rrggbb hex value.
func (p Palette) Validate() error {
	for i, e := range p {
		if e.Name == "" {
			return fmt.Errorf("palette entry %d: missing name", i)
		}
		if !validHex(e.Hex) {
			return fmt.Errorf("palette entry %d (%s): invalid hex color %q", i, e.Name, e.Hex)
		}
	}
	return nil
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
