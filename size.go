package diagram

import (
	"fmt"
)

// Size is the extent of a bounding box.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{
		X: sz.Width,
		Y: sz.Height,
	}
}

func (sz Size) MaxSide() float64 {
	return max(sz.Width, sz.Height)
}

func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}
