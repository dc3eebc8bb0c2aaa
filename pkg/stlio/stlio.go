// Package stlio exports solids as binary STL meshes and renders STL files to
// shaded PNG previews.
package stlio

import (
	"fmt"
	"os"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultMeshCells is the octree resolution used when the caller passes a
// non-positive cell count. Values around 200 suit palm-sized prints.
const DefaultMeshCells = 200

// Export meshes s with an octree renderer of the given resolution and writes
// a binary STL to path.
func Export(path string, s sdf.SDF3, meshCells int) error {
	if meshCells <= 0 {
		meshCells = DefaultMeshCells
	}
	if err := render.CreateSTL(path, render.NewOctreeRenderer(s, meshCells)); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// ExportIfNeeded writes the STL only when path does not exist yet, unless
// force is set. It reports whether the export was skipped.
func ExportIfNeeded(path string, s sdf.SDF3, meshCells int, force bool) (skipped bool, err error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return true, nil
		} else if !os.IsNotExist(err) {
			return false, fmt.Errorf("export %s: %w", path, err)
		}
	}
	return false, Export(path, s, meshCells)
}

// View positions the preview camera.
type View struct {
	LookAt r3.Vec // point the camera looks at
	Up     r3.Vec // up direction
	Eye    r3.Vec // camera position
	Near   float64
	Far    float64
}

// DefaultView is an isometric view with Z up, suitable for meshes normalized
// to the bi-unit cube.
func DefaultView() View {
	return View{
		Up:   r3.Vec{Z: 1},
		Eye:  r3.Vec{X: 2.4, Y: 2.4, Z: 2.4},
		Near: 1,
		Far:  10,
	}
}

// PreviewPNG loads an STL file, renders it with a Phong shader and writes a
// PNG of the given pixel size. The mesh is fit to a bi-unit cube first so
// the default view frames any model.
func PreviewPNG(stlPath, pngPath string, width, height int, view View) error {
	mesh, err := fauxgl.LoadSTL(stlPath)
	if err != nil {
		return fmt.Errorf("preview %s: %w", stlPath, err)
	}
	const (
		scale = 1  // optional supersampling
		fovy  = 30 // vertical field of view in degrees
	)
	var (
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)
		center = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)

	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)

	// Downsample for antialiasing.
	image := context.Image()
	image = resize.Resize(uint(width), uint(height), image, resize.Bilinear)
	if err := fauxgl.SavePNG(pngPath, image); err != nil {
		return fmt.Errorf("preview %s: %w", pngPath, err)
	}
	return nil
}
