package diagram

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color identifies a fill or stroke color. Diagrams store colors without
// interpreting them; it is up to the renderer to make sense of them.
type Color string

// NoColor means that a color has not been set.
const NoColor Color = ""

// IsSet reports whether c is not [NoColor].
func (c Color) IsSet() bool { return c != NoColor }

// Resolve interprets c the way most renderers would: as one of the SVG 1.1
// color keywords ("red", "steelblue") or as a hex triplet in the "#f0c" or
// "#ff00cc" forms. It is a convenience for renderers; no diagram operation
// calls it.
func (c Color) Resolve() (colorful.Color, error) {
	if !c.IsSet() {
		return colorful.Color{}, fmt.Errorf("%w: color is unset", ErrLookup)
	}
	s := strings.TrimSpace(string(c))
	if rgba, ok := colornames.Map[strings.ToLower(s)]; ok {
		col, _ := colorful.MakeColor(rgba)
		return col, nil
	}
	if strings.HasPrefix(s, "#") {
		col, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: color %q: %v", ErrLookup, s, err)
		}
		return col, nil
	}
	return colorful.Color{}, fmt.Errorf("%w: color %q", ErrLookup, s)
}
