// Package enclosure builds printable enclosure solids: a ventilated rag
// basket, a two-part HC-SR501 PIR sensor case and a prototype-board case.
// Every part is a pure function of its configuration struct and returns an
// sdf.SDF3 ready for meshing; all dimensions are millimetres.
package enclosure

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// openTopBox returns a box of the given outer size shelled inward by wall,
// with a solid floor and an open top. Centered at the origin.
func openTopBox(size r3.Vec, wall float64) sdf.SDF3 {
	outer := must3.Box(size, 0)
	// The cavity keeps the outer height and is raised by one wall thickness
	// so it pierces the top face while leaving the floor solid.
	var cavity sdf.SDF3 = must3.Box(r3.Vec{X: size.X - 2*wall, Y: size.Y - 2*wall, Z: size.Z}, 0)
	cavity = translate(cavity, r3.Vec{Z: wall})
	return sdf.Difference3D(outer, cavity)
}

// diamond returns a rhombus profile of the given width and height centered
// at the origin.
func diamond(width, height float64) sdf.SDF2 {
	return form2.Polygon([]r2.Vec{
		{Y: height / 2},
		{X: width / 2},
		{Y: -height / 2},
		{X: -width / 2},
	})
}

// alongY reorients an extrusion so its axis lies along Y. Profile X stays
// world X, profile Y becomes world Z.
func alongY(s sdf.SDF3) sdf.SDF3 {
	return sdf.Transform3D(s, sdf.RotateX(math.Pi/2))
}

// alongX reorients an extrusion so its axis lies along X. Profile X becomes
// world Y, profile Y becomes world Z.
func alongX(s sdf.SDF3) sdf.SDF3 {
	return sdf.Transform3D(s, sdf.RotateZ(math.Pi/2).Mul(sdf.RotateX(math.Pi/2)))
}

func translate(s sdf.SDF3, v r3.Vec) sdf.SDF3 {
	return sdf.Transform3D(s, sdf.Translate3D(v))
}

// positive reports whether every dimension is strictly positive and finite.
func positive(dims ...float64) bool {
	for _, d := range dims {
		if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
			return false
		}
	}
	return true
}

func dimErr(part, what string) error {
	return fmt.Errorf("enclosure: %s: %s must be positive", part, what)
}

// logger returns l, or the process default logger when l is nil, so builders
// can always report non-fatal conditions.
func logger(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.Default()
}

func d2r(degrees float64) float64 { return degrees * math.Pi / 180 }
