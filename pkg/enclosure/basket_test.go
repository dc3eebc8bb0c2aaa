package enclosure

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func size3(s interface{ Bounds() r3.Box }) r3.Vec {
	b := s.Bounds()
	return r3.Sub(b.Max, b.Min)
}

func TestBasketBounds(t *testing.T) {
	cfg := DefaultBasket()
	s, err := Basket(cfg)
	require.NoError(t, err)
	size := size3(s)
	require.InDelta(t, cfg.Width, size.X, 1e-9)
	require.InDelta(t, cfg.Depth, size.Y, 1e-9)
	require.InDelta(t, cfg.Height, size.Z, 1e-9)
}

func TestBasketGeometry(t *testing.T) {
	// Default basket: walls y in [58,60] and [-60,-58], floor z in [-75,-73].
	// The front/back lattice has 6 columns at x = ±6, ±18, ±30 and 8 rows at
	// z = -57, -41, ..., 55 (face center sits half a wall below z=0).
	s, err := Basket(DefaultBasket())
	require.NoError(t, err)

	inside := func(p r3.Vec) bool { return s.Evaluate(p) < 0 }

	// Cavity is hollow, floor is solid.
	require.False(t, inside(r3.Vec{X: 0, Y: 0, Z: 0}), "cavity should be empty")
	require.True(t, inside(r3.Vec{X: 0, Y: 0, Z: -74}), "floor should be solid")

	// Slot pierces the front and back walls from the rim halfway down.
	require.False(t, inside(r3.Vec{X: 0, Y: 59, Z: 40}), "slot should open the front wall")
	require.False(t, inside(r3.Vec{X: 0, Y: -59, Z: 40}), "slot should open the back wall")
	require.True(t, inside(r3.Vec{X: 0, Y: 59, Z: -40}), "wall below the slot should be solid")

	// A lattice diamond center on the back wall, and solid wall between two
	// diamonds.
	require.False(t, inside(r3.Vec{X: -6, Y: -59, Z: -41}), "lattice diamond should pierce the back wall")
	require.True(t, inside(r3.Vec{X: 0, Y: -59, Z: -41}), "gap between diamonds should be solid")

	// Side lattice: 8 columns at y = ±6, ±18, ±30, ±42 on the x walls.
	require.False(t, inside(r3.Vec{X: 49, Y: -6, Z: -41}), "lattice diamond should pierce the side wall")
	require.True(t, inside(r3.Vec{X: 49, Y: 0, Z: -41}), "gap between side diamonds should be solid")
}

func TestBasketSlotKeepOut(t *testing.T) {
	// With the default 2mm clearance the keep-out band (|x| <= 17) only
	// drops placements the slot removes anyway, so the ±18 columns stay cut
	// at slot level.
	s, err := Basket(DefaultBasket())
	require.NoError(t, err)
	require.Greater(t, s.Evaluate(r3.Vec{X: 18, Y: -59, Z: 7}), 0.0, "diamond outside the keep-out should be cut")

	// Growing the clearance to 10mm pulls the ±18 columns into the keep-out
	// for rows level with the slot; the same column below the slot is kept.
	cfg := DefaultBasket()
	cfg.SlotClearance = 10
	s, err = Basket(cfg)
	require.NoError(t, err)
	require.Less(t, s.Evaluate(r3.Vec{X: 18, Y: -59, Z: 7}), 0.0, "placement in the keep-out should be dropped")
	require.Greater(t, s.Evaluate(r3.Vec{X: 18, Y: -59, Z: -41}), 0.0, "same column below the slot should stay cut")
}

func TestBasketValidate(t *testing.T) {
	bad := DefaultBasket()
	bad.Wall = 0
	_, err := Basket(bad)
	require.Error(t, err)

	bad = DefaultBasket()
	bad.SlotDepthRatio = 1.5
	_, err = Basket(bad)
	require.Error(t, err)

	bad = DefaultBasket()
	bad.DiamondGapX = -1
	_, err = Basket(bad)
	require.Error(t, err)
}

func TestBasketSteps(t *testing.T) {
	steps, err := BasketSteps(DefaultBasket())
	require.NoError(t, err)
	require.Len(t, steps, 4)
	names := []string{"step1_base", "step2_shell", "step3_slot", "step4_lattice"}
	for i, step := range steps {
		require.Equal(t, names[i], step.Name)
		require.NotNil(t, step.Solid)
		size := size3(step.Solid)
		require.InDelta(t, 100, size.X, 1e-9)
		require.InDelta(t, 120, size.Y, 1e-9)
		require.InDelta(t, 150, size.Z, 1e-9)
	}
	// The plain box is solid where the shell is hollow.
	require.Less(t, steps[0].Solid.Evaluate(r3.Vec{}), 0.0)
	require.Greater(t, steps[1].Solid.Evaluate(r3.Vec{}), 0.0)
}
