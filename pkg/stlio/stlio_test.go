package stlio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/sdf/form3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/jc418gv/stl-gen/pkg/stlio"
)

func TestExportIfNeeded(t *testing.T) {
	const quality = 20
	box, err := form3.Box(r3.Vec{X: 3, Y: 2, Z: 1}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "box.stl")

	skipped, err := stlio.ExportIfNeeded(path, box, quality, false)
	if err != nil {
		t.Fatal(err)
	}
	if skipped {
		t.Fatal("first export should not be skipped")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("exported STL is empty")
	}

	// A second export is skipped and leaves the file untouched.
	skipped, err = stlio.ExportIfNeeded(path, box, quality, false)
	if err != nil {
		t.Fatal(err)
	}
	if !skipped {
		t.Error("second export should be skipped")
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(info.ModTime()) {
		t.Error("skipped export modified the file")
	}

	// Force overwrites.
	skipped, err = stlio.ExportIfNeeded(path, box, quality, true)
	if err != nil {
		t.Fatal(err)
	}
	if skipped {
		t.Error("forced export should not be skipped")
	}
}

func TestExportDefaultQuality(t *testing.T) {
	box, err := form3.Box(r3.Vec{X: 1, Y: 1, Z: 1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "cube.stl")
	// A non-positive cell count falls back to DefaultMeshCells.
	if err := stlio.Export(path, box, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}
