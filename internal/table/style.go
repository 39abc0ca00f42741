package table

import (
	"fmt"
	"sort"
)

// Style is the set of box-drawing glyphs used to render a table. The
// junction glyphs are named by their position: the top row frames the
// first border, the mid row separates the label row from the data
// rows, and the bottom row closes the table.
type Style struct {
	Vertical   rune
	Horizontal rune

	TopLeft, TopMid, TopRight          rune
	MidLeft, Cross, MidRight           rune
	BottomLeft, BottomMid, BottomRight rune
}

// styles maps the named glyph sets. Each is parsed from a compact
// eleven-rune encoding in the order: vertical, horizontal, then the
// top, middle, and bottom junction rows left to right.
var styles = map[string]Style{
	"light":             mustStyle("│─┌┬┐├┼┤└┴┘"),
	"heavy":             mustStyle("┃━┏┳┓┣╋┫┗┻┛"),
	"curved":            mustStyle("│─╭┬╮├┼┤╰┴╯"),
	"ascii":             mustStyle("|-+++++++++"),
	"double":            mustStyle("║═╔╦╗╠╬╣╚╩╝"),
	"double-vertical":   mustStyle("║─╓╥╖╟╫╢╙╨╜"),
	"double-horizontal": mustStyle("│═╒╤╕╞╪╡╘╧╛"),
}

// mustStyle decodes an eleven-rune style encoding, panicking on
// malformed data. It is only called on the package's own definitions,
// so a panic here means the source itself is wrong.
func mustStyle(glyphs string) Style {
	runes := []rune(glyphs)
	if len(runes) != 11 {
		panic(fmt.Sprintf("style encoding must be 11 glyphs, got %d in %q", len(runes), glyphs))
	}
	return Style{
		Vertical:    runes[0],
		Horizontal:  runes[1],
		TopLeft:     runes[2],
		TopMid:      runes[3],
		TopRight:    runes[4],
		MidLeft:     runes[5],
		Cross:       runes[6],
		MidRight:    runes[7],
		BottomLeft:  runes[8],
		BottomMid:   runes[9],
		BottomRight: runes[10],
	}
}

// StyleNamed returns the glyph set registered under name.
func StyleNamed(name string) (Style, error) {
	s, ok := styles[name]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return s, nil
}

// StyleNames returns the names of all registered styles, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
