package enclosure

import (
	"github.com/charmbracelet/log"
	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"github.com/soypat/sdf/helpers/matter"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ProtoBoardConfig parameterizes the prototype-board case: an open-top base
// with a round-bottom connector slot on one short wall, and a lipped lid.
type ProtoBoardConfig struct {
	// Board (interior) dimensions.
	InnerX float64 `toml:"inner_x"` // board length, default 25
	InnerY float64 `toml:"inner_y"` // board width, default 50
	InnerZ float64 `toml:"inner_z"` // board thickness plus clearance, default 12

	Wall     float64 `toml:"wall"`      // default 2
	LidThick float64 `toml:"lid_thick"` // default 2

	// Connector slot on the short (-Y) wall: vertical sides from the rim
	// down to a semicircular bottom of diameter SlotWidth.
	SlotWidth       float64 `toml:"slot_width"`        // default 6
	SlotClearBottom float64 `toml:"slot_clear_bottom"` // gap between floor and slot bottom, default 1.5
	CutMargin       float64 `toml:"cut_margin"`        // extra boolean penetration, default 0.5

	LipHeight    float64 `toml:"lip_height"`    // default 1.2
	LipClearance float64 `toml:"lip_clearance"` // default 0.25

	// Compensate scales the finished solids for PLA thermal shrinkage.
	Compensate bool `toml:"compensate"`

	// Logger receives non-fatal build warnings. Nil uses the default logger.
	Logger *log.Logger `toml:"-"`
}

// DefaultProtoBoard returns the stock 25×50 mm board case parameters.
func DefaultProtoBoard() ProtoBoardConfig {
	return ProtoBoardConfig{
		InnerX:          25,
		InnerY:          50,
		InnerZ:          12,
		Wall:            2,
		LidThick:        2,
		SlotWidth:       6,
		SlotClearBottom: 1.5,
		CutMargin:       0.5,
		LipHeight:       1.2,
		LipClearance:    0.25,
	}
}

func (cfg ProtoBoardConfig) validate() error {
	const part = "protoboard"
	if !positive(cfg.InnerX, cfg.InnerY, cfg.InnerZ, cfg.Wall, cfg.LidThick) {
		return dimErr(part, "interior dimensions, wall and lid thickness")
	}
	if !positive(cfg.SlotWidth, cfg.LipHeight) {
		return dimErr(part, "slot width and lip height")
	}
	if cfg.SlotClearBottom < 0 || cfg.CutMargin < 0 || cfg.LipClearance < 0 {
		return dimErr(part, "clearances")
	}
	return nil
}

func (cfg ProtoBoardConfig) outer() r3.Vec {
	return r3.Vec{
		X: cfg.InnerX + 2*cfg.Wall,
		Y: cfg.InnerY + 2*cfg.Wall,
		Z: cfg.InnerZ + cfg.Wall,
	}
}

// ProtoBoardBase builds the case body.
func ProtoBoardBase(cfg ProtoBoardConfig) (sdf.SDF3, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	out := cfg.outer()
	base := openTopBox(out, cfg.Wall)

	// Connector slot profile: a rectangle reaching past the rim, tangent to
	// a circle providing the rounded bottom. The circle center sits so the
	// slot bottom clears the interior floor by SlotClearBottom.
	const eps = 0.01
	r := cfg.SlotWidth / 2
	centerZ := -out.Z/2 + cfg.Wall + cfg.SlotClearBottom + r
	rectH := out.Z/2 - centerZ + eps
	rect := sdf.Transform2D(
		form2.Box(r2.Vec{X: cfg.SlotWidth, Y: rectH}, 0),
		sdf.Translate2D(r2.Vec{Y: rectH / 2}),
	)
	slotProfile := sdf.Union2D(rect, form2.Circle(r))
	slot := alongY(sdf.Extrude3D(slotProfile, 2*(cfg.Wall+cfg.CutMargin)))
	base = sdf.Difference3D(base, translate(slot, r3.Vec{Y: -out.Y / 2, Z: centerZ}))

	if cfg.Compensate {
		base = matter.PLA.Scale(base)
	}
	return base, nil
}

// ProtoBoardLid builds the lipped lid.
func ProtoBoardLid(cfg ProtoBoardConfig) (sdf.SDF3, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	out := cfg.outer()

	var lid sdf.SDF3 = must3.Box(r3.Vec{X: out.X, Y: out.Y, Z: cfg.LidThick}, 0)
	lip := must3.Box(r3.Vec{
		X: cfg.InnerX - 2*cfg.LipClearance,
		Y: cfg.InnerY - 2*cfg.LipClearance,
		Z: cfg.LipHeight,
	}, 0)
	lid = sdf.Union3D(lid, translate(lip, r3.Vec{Z: -cfg.LidThick/2 - cfg.LipHeight/2}))

	if cfg.Compensate {
		lid = matter.PLA.Scale(lid)
	}
	return lid, nil
}
