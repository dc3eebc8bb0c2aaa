package enclosure

import (
	"github.com/charmbracelet/log"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"github.com/soypat/sdf/helpers/matter"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/jc418gv/stl-gen/pkg/layout"
)

// slotRimMargin extends the slot cutter above the rim so the boolean cut
// opens cleanly into the top edge.
const slotRimMargin = 5.0

// BasketConfig parameterizes the rag basket: an open-top shelled box with a
// hanging slot through the front and back walls and a diamond ventilation
// lattice on all four walls.
type BasketConfig struct {
	Width  float64 `toml:"width"`  // outer X extent, default 100
	Depth  float64 `toml:"depth"`  // outer Y extent, default 120
	Height float64 `toml:"height"` // outer Z extent, default 150
	Wall   float64 `toml:"wall"`   // wall and floor thickness, default 2

	// Slot through the front and back walls, opening at the rim.
	SlotWidth      float64 `toml:"slot_width"`       // default 30
	SlotDepthRatio float64 `toml:"slot_depth_ratio"` // fraction of Height the slot descends, default 0.5
	SlotClearance  float64 `toml:"slot_clearance"`   // lattice keep-out grown around the slot, default 2

	// Diamond lattice. Cutters pass straight through opposing walls, so the
	// Y-axis lattice perforates the front and back and the X-axis lattice
	// perforates both sides.
	LatticeMargin float64 `toml:"lattice_margin"` // face edge margin, default 10
	DiamondWidth  float64 `toml:"diamond_width"`  // default 8
	DiamondHeight float64 `toml:"diamond_height"` // default 12
	DiamondGapX   float64 `toml:"diamond_gap_x"`  // default 4
	DiamondGapY   float64 `toml:"diamond_gap_y"`  // default 4
	Stagger       bool    `toml:"stagger"`        // shift alternate lattice rows by half a pitch

	// Compensate scales the finished solid for PLA thermal shrinkage.
	Compensate bool `toml:"compensate"`

	// Logger receives non-fatal build warnings. Nil uses the default logger.
	Logger *log.Logger `toml:"-"`
}

// DefaultBasket returns the stock rag basket parameters.
func DefaultBasket() BasketConfig {
	return BasketConfig{
		Width:          100,
		Depth:          120,
		Height:         150,
		Wall:           2,
		SlotWidth:      30,
		SlotDepthRatio: 0.5,
		SlotClearance:  2,
		LatticeMargin:  10,
		DiamondWidth:   8,
		DiamondHeight:  12,
		DiamondGapX:    4,
		DiamondGapY:    4,
	}
}

func (cfg BasketConfig) validate() error {
	const part = "basket"
	if !positive(cfg.Width, cfg.Depth, cfg.Height, cfg.Wall) {
		return dimErr(part, "outer dimensions and wall")
	}
	if cfg.Wall*2 >= cfg.Width || cfg.Wall*2 >= cfg.Depth || cfg.Wall >= cfg.Height {
		return dimErr(part, "interior after walls")
	}
	if !positive(cfg.SlotWidth) || cfg.SlotDepthRatio < 0 || cfg.SlotDepthRatio > 1 {
		return dimErr(part, "slot width and depth ratio")
	}
	if !positive(cfg.DiamondWidth, cfg.DiamondHeight, cfg.DiamondGapX, cfg.DiamondGapY) {
		return dimErr(part, "lattice cell")
	}
	if cfg.LatticeMargin < 0 || cfg.SlotClearance < 0 {
		return dimErr(part, "lattice margin and slot clearance")
	}
	return nil
}

// Basket builds the rag basket solid.
func Basket(cfg BasketConfig) (sdf.SDF3, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	body := openTopBox(r3.Vec{X: cfg.Width, Y: cfg.Depth, Z: cfg.Height}, cfg.Wall)

	// Hanging slot. The cutter spans the full depth so it opens both the
	// front and the back wall, and reaches past the rim for a clean cut.
	slotHeight := cfg.Height * cfg.SlotDepthRatio
	slot := must3.Box(r3.Vec{
		X: cfg.SlotWidth,
		Y: cfg.Depth + 2*cfg.Wall,
		Z: slotHeight + slotRimMargin,
	}, 0)
	slotZ := cfg.Height/2 - slotHeight/2 + slotRimMargin/2
	body = sdf.Difference3D(body, translate(slot, r3.Vec{Z: slotZ}))

	cell := layout.Cell{
		Width:  cfg.DiamondWidth,
		Height: cfg.DiamondHeight,
		GapX:   cfg.DiamondGapX,
		GapY:   cfg.DiamondGapY,
	}
	// The open top removes one wall thickness from the patternable height,
	// so the face center sits half a wall below the model center.
	faceHeight := cfg.Height - cfg.Wall
	zOff := -cfg.Wall / 2
	profile := diamond(cfg.DiamondWidth, cfg.DiamondHeight)

	// Front/back lattice. Cutters travel through the slot's walls, so
	// placements whose cut would break into the slot are dropped.
	yFace := layout.Face{
		Width:   cfg.Width - 2*cfg.Wall,
		Height:  faceHeight,
		MarginX: cfg.LatticeMargin,
		MarginY: cfg.LatticeMargin,
	}
	pts, err := layout.Grid(yFace, cell, cfg.Stagger)
	if err != nil {
		return nil, err
	}
	slotRegion := layout.Region{
		Center:    0,
		HalfWidth: cfg.SlotWidth / 2,
		MinY:      cfg.Height/2 - slotHeight - zOff,
		MaxY:      cfg.Height/2 + slotRimMargin - zOff,
	}
	kept := layout.Filter(pts, slotRegion, cfg.SlotClearance)
	if n := len(pts) - len(kept); n > 0 {
		logger(cfg.Logger).Debugf("basket: dropped %d lattice placements overlapping the slot", n)
	}
	yCutter := alongY(sdf.Extrude3D(profile, cfg.Depth+2*cfg.Wall))
	var cutters []sdf.SDF3
	for _, p := range kept {
		cutters = append(cutters, translate(yCutter, r3.Vec{X: p.X, Z: p.Y + zOff}))
	}

	// Side lattice, through both X walls. No reserved region applies.
	xFace := layout.Face{
		Width:   cfg.Depth - 2*cfg.Wall,
		Height:  faceHeight,
		MarginX: cfg.LatticeMargin,
		MarginY: cfg.LatticeMargin,
	}
	pts, err = layout.Grid(xFace, cell, cfg.Stagger)
	if err != nil {
		return nil, err
	}
	xCutter := alongX(sdf.Extrude3D(profile, cfg.Width+2*cfg.Wall))
	for _, p := range pts {
		cutters = append(cutters, translate(xCutter, r3.Vec{Y: p.X, Z: p.Y + zOff}))
	}

	if len(cutters) > 0 {
		body = sdf.Difference3D(body, sdf.Union3D(cutters...))
	} else {
		logger(cfg.Logger).Warn("basket: faces too small for the lattice, walls left solid")
	}

	if cfg.Compensate {
		body = matter.PLA.Scale(body)
	}
	return body, nil
}

// BuildStep is one intermediate solid of a part's construction, used to
// export the build one boolean at a time when a print comes out wrong.
type BuildStep struct {
	Name  string
	Solid sdf.SDF3
}

// BasketSteps returns the basket construction as incremental solids: the
// plain box, the open-top shell, the shell with the slot, and finally a
// single centered lattice cutter as a boolean sanity check.
func BasketSteps(cfg BasketConfig) ([]BuildStep, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	box := must3.Box(r3.Vec{X: cfg.Width, Y: cfg.Depth, Z: cfg.Height}, 0)
	shell := openTopBox(r3.Vec{X: cfg.Width, Y: cfg.Depth, Z: cfg.Height}, cfg.Wall)

	slotHeight := cfg.Height * cfg.SlotDepthRatio
	slot := must3.Box(r3.Vec{
		X: cfg.SlotWidth,
		Y: cfg.Depth + 2*cfg.Wall,
		Z: slotHeight + slotRimMargin,
	}, 0)
	slotZ := cfg.Height/2 - slotHeight/2 + slotRimMargin/2
	slotted := sdf.Difference3D(shell, translate(slot, r3.Vec{Z: slotZ}))

	cutter := alongY(sdf.Extrude3D(diamond(cfg.DiamondWidth, cfg.DiamondHeight), cfg.Depth+2*cfg.Wall))
	oneLattice := sdf.Difference3D(slotted, cutter)

	return []BuildStep{
		{Name: "step1_base", Solid: box},
		{Name: "step2_shell", Solid: shell},
		{Name: "step3_slot", Solid: slotted},
		{Name: "step4_lattice", Solid: oneLattice},
	}, nil
}
