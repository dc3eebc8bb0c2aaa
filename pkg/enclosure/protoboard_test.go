package enclosure

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestProtoBoardBaseGeometry(t *testing.T) {
	// Default case: outer 29 x 54 x 14, slot on the y=-27 wall with its
	// rounded bottom centered at z=-0.5 (1.5mm above the interior floor).
	cfg := DefaultProtoBoard()
	base, err := ProtoBoardBase(cfg)
	require.NoError(t, err)

	size := size3(base)
	require.InDelta(t, 29, size.X, 1e-9)
	require.InDelta(t, 54, size.Y, 1e-9)
	require.InDelta(t, 14, size.Z, 1e-9)

	inside := func(p r3.Vec) bool { return base.Evaluate(p) < 0 }

	require.False(t, inside(r3.Vec{X: 0, Y: 0, Z: 0}), "cavity should be empty")
	require.True(t, inside(r3.Vec{X: 0, Y: 0, Z: -6.5}), "floor should be solid")

	// Slot: circle center, vertical section, and opening at the rim.
	require.False(t, inside(r3.Vec{X: 0, Y: -26, Z: -0.5}), "slot bottom should pierce the wall")
	require.False(t, inside(r3.Vec{X: 0, Y: -26, Z: 6.5}), "slot should open into the rim")
	require.True(t, inside(r3.Vec{X: 5, Y: -26, Z: 3}), "wall beside the slot should be solid")
	require.True(t, inside(r3.Vec{X: 0, Y: -26, Z: -5.5}), "wall below the slot should be solid")
	require.True(t, inside(r3.Vec{X: 0, Y: 26, Z: 0}), "opposite wall should be untouched")
}

func TestProtoBoardLidGeometry(t *testing.T) {
	cfg := DefaultProtoBoard()
	lid, err := ProtoBoardLid(cfg)
	require.NoError(t, err)

	size := size3(lid)
	require.InDelta(t, 29, size.X, 1e-9)
	require.InDelta(t, 54, size.Y, 1e-9)
	require.InDelta(t, cfg.LidThick+cfg.LipHeight, size.Z, 1e-9)

	inside := func(p r3.Vec) bool { return lid.Evaluate(p) < 0 }
	require.True(t, inside(r3.Vec{X: 0, Y: 0, Z: 0}), "plate should be solid")
	require.True(t, inside(r3.Vec{X: 0, Y: 0, Z: -1.5}), "lip should be solid")
	require.False(t, inside(r3.Vec{X: 13, Y: 26, Z: -1.5}), "lip should be inset from the plate edge")
}

func TestProtoBoardValidate(t *testing.T) {
	bad := DefaultProtoBoard()
	bad.SlotWidth = 0
	_, err := ProtoBoardBase(bad)
	require.Error(t, err)

	bad = DefaultProtoBoard()
	bad.LipClearance = -1
	_, err = ProtoBoardLid(bad)
	require.Error(t, err)
}
