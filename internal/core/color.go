package core

import (
	"fmt"
	"strings"
)

// Colour is a palette tag for a game entity.
// Game logic only ever references these tags; mapping to real terminal
// colours is the platform layer's job.
type Colour uint8

// The closed breakout palette.
const (
	ColourRed Colour = iota
	ColourBlue
	ColourGray
	ColourCyan
	ColourPink
	ColourOrange
	ColourMagenta
	ColourGreen
	ColourWhite
	ColourYellow
	ColourBlack
	ColourLightGray
)

var colourNames = [...]string{
	ColourRed:       "red",
	ColourBlue:      "blue",
	ColourGray:      "gray",
	ColourCyan:      "cyan",
	ColourPink:      "pink",
	ColourOrange:    "orange",
	ColourMagenta:   "magenta",
	ColourGreen:     "green",
	ColourWhite:     "white",
	ColourYellow:    "yellow",
	ColourBlack:     "black",
	ColourLightGray: "light_gray",
}

// Colours returns every palette entry in declaration order.
func Colours() []Colour {
	out := make([]Colour, len(colourNames))
	for i := range colourNames {
		out[i] = Colour(i)
	}
	return out
}

// String returns the lower-case palette name.
func (c Colour) String() string {
	if int(c) < len(colourNames) {
		return colourNames[c]
	}
	return fmt.Sprintf("colour(%d)", uint8(c))
}

// ParseColour resolves a palette name. Matching ignores case, and
// "light-gray", "lightgray" and "light_gray" are all accepted.
func ParseColour(name string) (Colour, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.ReplaceAll(norm, "-", "_")
	if norm == "lightgray" {
		norm = "light_gray"
	}
	for _, c := range Colours() {
		if c.String() == norm {
			return c, nil
		}
	}
	return ColourWhite, fmt.Errorf("core: unknown colour %q", name)
}
