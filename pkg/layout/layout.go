// Package layout places a repeating cutter shape on the rectangular face of
// an enclosure. Given the face's usable area and the footprint of one unit
// cell it computes a centered grid of placement points, optionally staggering
// alternate rows and optionally suppressing points that would break into a
// reserved region such as the projection of a slot cut through an opposing
// wall.
//
// The package performs no geometry construction and no I/O. Placements are
// expressed in the face's local 2D coordinate system with the origin at the
// face center; the caller maps them onto the 3D model. Results are
// deterministic for identical inputs so downstream meshes are reproducible.
package layout

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrBadCell indicates a unit cell with a non-positive or NaN dimension.
// Cell footprints and gaps must be strictly positive; a face that is too
// small is not an error and yields an empty grid instead.
var ErrBadCell = errors.New("layout: cell dimensions and gaps must be positive")

// Face is the rectangular area available for patterning on one wall of an
// enclosure, after the caller has subtracted structural features such as
// wall thickness or an open top. Margins are explicit per axis and are
// subtracted from both sides of the corresponding dimension.
type Face struct {
	Width   float64
	Height  float64
	MarginX float64
	MarginY float64
}

// Cell is the footprint of one repeating cutter shape and the gap kept
// between neighboring cells. All four values must be positive.
type Cell struct {
	Width  float64
	Height float64
	GapX   float64
	GapY   float64
}

func (c Cell) validate() error {
	for _, v := range [...]float64{c.Width, c.Height, c.GapX, c.GapY} {
		if math.IsNaN(v) || v <= 0 {
			return fmt.Errorf("%w: %+v", ErrBadCell, c)
		}
	}
	return nil
}

// GridCount returns the largest n ≥ 0 such that n cells of extent cell,
// separated by gap, fit within usable:
//
//	n·cell + (n-1)·gap ≤ usable
//
// A usable extent smaller than one cell returns 0, which signals the caller
// to skip patterning the face.
func GridCount(usable, cell, gap float64) int {
	n := math.Floor((usable + gap) / (cell + gap))
	if math.IsNaN(n) || n < 0 {
		return 0
	}
	return int(n)
}

// Grid computes a centered grid of cell placements on face. The result is
// row-major, rows bottom to top and columns left to right. When stagger is
// set every odd row is shifted right by half a pitch, producing an
// interlocking brick pattern; the shift is deliberately not compensated in
// the grid's nominal width, so staggered rows protrude half a pitch past the
// unstaggered columns.
//
// A face too small for even a single cell yields a nil slice and no error.
// A cell with non-positive or NaN dimensions returns ErrBadCell.
func Grid(face Face, cell Cell, stagger bool) ([]r2.Vec, error) {
	if err := cell.validate(); err != nil {
		return nil, err
	}
	usableW := face.Width - 2*face.MarginX
	usableH := face.Height - 2*face.MarginY
	nx := GridCount(usableW, cell.Width, cell.GapX)
	ny := GridCount(usableH, cell.Height, cell.GapY)
	if nx == 0 || ny == 0 {
		return nil, nil
	}

	pitchX := cell.Width + cell.GapX
	pitchY := cell.Height + cell.GapY
	totalW := float64(nx)*cell.Width + float64(nx-1)*cell.GapX
	totalH := float64(ny)*cell.Height + float64(ny-1)*cell.GapY

	points := make([]r2.Vec, 0, nx*ny)
	for j := 0; j < ny; j++ {
		y := -totalH/2 + cell.Height/2 + float64(j)*pitchY
		var shift float64
		if stagger && j%2 == 1 {
			shift = pitchX / 2
		}
		for i := 0; i < nx; i++ {
			x := -totalW/2 + cell.Width/2 + float64(i)*pitchX + shift
			points = append(points, r2.Vec{X: x, Y: y})
		}
	}
	return points, nil
}

// Region is a rectangular keep-out zone expressed in the same face-local
// coordinates as the placements, typically the projection of a slot cut
// through an opposing wall. It spans Center±HalfWidth along X and
// [MinY, MaxY] along Y.
type Region struct {
	Center    float64
	HalfWidth float64
	MinY      float64
	MaxY      float64
}

// Excludes reports whether placement p falls inside the region grown by
// clearance on every side. Both axes must overlap for a placement to be
// excluded.
func (r Region) Excludes(p r2.Vec, clearance float64) bool {
	return math.Abs(p.X-r.Center) <= r.HalfWidth+clearance &&
		p.Y >= r.MinY-clearance && p.Y <= r.MaxY+clearance
}

// Filter returns the placements not excluded by the region. Excluded
// placements are dropped entirely; a cutter is never weakened to fit.
// Relative order is preserved.
func Filter(points []r2.Vec, reg Region, clearance float64) []r2.Vec {
	kept := make([]r2.Vec, 0, len(points))
	for _, p := range points {
		if !reg.Excludes(p, clearance) {
			kept = append(kept, p)
		}
	}
	return kept
}
