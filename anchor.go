package diagram

import (
	"fmt"
	"strings"
)

// Anchor names one of nine reference points on a bounding box. Names follow
// the y-down convention: Top is the edge with the smallest Y.
type Anchor int

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	CenterLeft
	CenterCenter
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

var anchorNames = [...]string{
	TopLeft:      "TopLeft",
	TopCenter:    "TopCenter",
	TopRight:     "TopRight",
	CenterLeft:   "CenterLeft",
	CenterCenter: "CenterCenter",
	CenterRight:  "CenterRight",
	BottomLeft:   "BottomLeft",
	BottomCenter: "BottomCenter",
	BottomRight:  "BottomRight",
}

func (a Anchor) valid() bool { return a >= TopLeft && a <= BottomRight }

func (a Anchor) String() string {
	if !a.valid() {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor returns the anchor with the given name, ignoring case.
func ParseAnchor(s string) (Anchor, error) {
	for i, name := range anchorNames {
		if strings.EqualFold(name, s) {
			return Anchor(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownAnchor, s)
}

// Anchor returns the point of r named by a.
func (r Rect) Anchor(a Anchor) (Point, error) {
	if !a.valid() {
		return Point{}, fmt.Errorf("%w %d", ErrUnknownAnchor, int(a))
	}
	col, row := int(a)%3, int(a)/3
	xs := [3]float64{r.X0, 0.5 * (r.X0 + r.X1), r.X1}
	ys := [3]float64{r.Y0, 0.5 * (r.Y0 + r.Y1), r.Y1}
	return Point{X: xs[col], Y: ys[row]}, nil
}
