package enclosure

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3"
	"github.com/soypat/sdf/form3/must3"
	"github.com/soypat/sdf/helpers/matter"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// tabInset is the distance from a wall end to the nearest lid tab.
const tabInset = 4.0

// HCSR501Config parameterizes the two-part HC-SR501 PIR sensor case: an
// open-top base with a tapered pin opening and a fresnel window, and a
// press-fit lid with tabs and an inset lip.
type HCSR501Config struct {
	// Payload (interior) dimensions.
	InnerX float64 `toml:"inner_x"` // sensor board length, default 33
	InnerY float64 `toml:"inner_y"` // sensor board width, default 25
	InnerZ float64 `toml:"inner_z"` // sensor board height, default 44

	Wall     float64 `toml:"wall"`      // default 2
	LidThick float64 `toml:"lid_thick"` // default 2

	// Pin opening on the back (+Y) face: a rectangle with a tapered top,
	// sitting just above the floor.
	PinOpenWidth   float64 `toml:"pin_open_width"`   // along X, default 10
	PinOpenHeight  float64 `toml:"pin_open_height"`  // rectangular portion, default 4
	PinSideAngle   float64 `toml:"pin_side_angle"`   // taper angle from horizontal in degrees, default 40
	PinClearBottom float64 `toml:"pin_clear_bottom"` // lift above the floor, default 0.8

	// FresnelWidth is the width of the sensor dome window on the front
	// (-Y) face. Default is the outer Y extent of the case.
	FresnelWidth float64 `toml:"fresnel_width"`

	CutMargin float64 `toml:"cut_margin"` // extra boolean penetration, default 0.5

	// Lid fit.
	TabWidth     float64 `toml:"tab_width"`     // default 6
	TabHeight    float64 `toml:"tab_height"`    // default 1.2
	LipHeight    float64 `toml:"lip_height"`    // default 1.2
	LipClearance float64 `toml:"lip_clearance"` // per-side press-fit clearance, default 0.25
	RimClearance float64 `toml:"rim_clearance"` // rim cutout clearance, default 0.3

	// ChamferTop rounds the lid's outer edges. A rounding the plate cannot
	// carry (at least half its smallest dimension) falls back to sharp
	// edges with a warning. Zero disables the attempt.
	ChamferTop float64 `toml:"chamfer_top"` // default 0.6

	// Compensate scales the finished solids for PLA thermal shrinkage.
	Compensate bool `toml:"compensate"`

	// Logger receives non-fatal build warnings. Nil uses the default logger.
	Logger *log.Logger `toml:"-"`
}

// DefaultHCSR501 returns the stock HC-SR501 case parameters.
func DefaultHCSR501() HCSR501Config {
	cfg := HCSR501Config{
		InnerX:         33,
		InnerY:         25,
		InnerZ:         44,
		Wall:           2,
		LidThick:       2,
		PinOpenWidth:   10,
		PinOpenHeight:  4,
		PinSideAngle:   40,
		PinClearBottom: 0.8,
		CutMargin:      0.5,
		TabWidth:       6,
		TabHeight:      1.2,
		LipHeight:      1.2,
		LipClearance:   0.25,
		RimClearance:   0.3,
		ChamferTop:     0.6,
	}
	cfg.FresnelWidth = cfg.InnerY + 2*cfg.Wall
	return cfg
}

func (cfg HCSR501Config) validate() error {
	const part = "hcsr501"
	if !positive(cfg.InnerX, cfg.InnerY, cfg.InnerZ, cfg.Wall, cfg.LidThick) {
		return dimErr(part, "interior dimensions, wall and lid thickness")
	}
	if !positive(cfg.PinOpenWidth, cfg.PinOpenHeight, cfg.FresnelWidth, cfg.TabWidth, cfg.TabHeight, cfg.LipHeight) {
		return dimErr(part, "opening and fit features")
	}
	if cfg.PinSideAngle <= 0 || cfg.PinSideAngle >= 90 {
		return dimErr(part, "pin taper angle (degrees, exclusive 0..90)")
	}
	if cfg.PinClearBottom < 0 || cfg.CutMargin < 0 || cfg.LipClearance < 0 || cfg.RimClearance < 0 || cfg.ChamferTop < 0 {
		return dimErr(part, "clearances")
	}
	return nil
}

func (cfg HCSR501Config) outer() r3.Vec {
	return r3.Vec{
		X: cfg.InnerX + 2*cfg.Wall,
		Y: cfg.InnerY + 2*cfg.Wall,
		Z: cfg.InnerZ + cfg.Wall, // the lid supplies its own thickness
	}
}

// HCSR501Base builds the case body.
func HCSR501Base(cfg HCSR501Config) (sdf.SDF3, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	out := cfg.outer()
	base := openTopBox(out, cfg.Wall)

	// Pin opening on the back face: rectangle with a tapered apex.
	halfW := cfg.PinOpenWidth / 2
	triH := halfW * math.Tan(d2r(cfg.PinSideAngle))
	zBottom := -out.Z/2 + cfg.Wall + cfg.PinClearBottom
	zRectTop := zBottom + cfg.PinOpenHeight
	zApex := zRectTop + triH
	pinProfile := form2.Polygon([]r2.Vec{
		{X: -halfW, Y: zBottom},
		{X: halfW, Y: zBottom},
		{X: halfW, Y: zRectTop},
		{X: 0, Y: zApex},
		{X: -halfW, Y: zRectTop},
	})
	pinCut := alongY(sdf.Extrude3D(pinProfile, 2*(cfg.Wall+cfg.CutMargin)))
	base = sdf.Difference3D(base, translate(pinCut, r3.Vec{Y: out.Y / 2}))

	// Fresnel window on the front face, spanning from the floor region up
	// to the rim so the sensor dome slides in unobstructed.
	window := must3.Box(r3.Vec{X: cfg.FresnelWidth, Y: out.Y, Z: cfg.InnerZ - cfg.Wall}, 0)
	base = sdf.Difference3D(base, translate(window, r3.Vec{Y: -out.Y / 2, Z: cfg.Wall}))

	rimZ := out.Z/2 - cfg.Wall/2
	xPos := cfg.InnerX/2 - cfg.TabWidth/2 - tabInset
	yPos := cfg.InnerY/2 - cfg.TabWidth/2 - tabInset
	var rimCuts []sdf.SDF3

	// Tab seat cutouts on the fresnel-side wall rim.
	tabCut := must3.Box(r3.Vec{X: cfg.TabWidth + cfg.RimClearance, Y: cfg.Wall + cfg.RimClearance, Z: cfg.Wall}, 0)
	for _, x := range []float64{-xPos, xPos} {
		rimCuts = append(rimCuts, translate(tabCut, r3.Vec{X: x, Y: -(out.Y/2 - cfg.Wall/2), Z: rimZ}))
	}
	// The pin-side wall rim is notched along its whole length, extending
	// into the side walls so no slivers remain.
	notch := must3.Box(r3.Vec{X: out.X + 2*cfg.Wall, Y: cfg.Wall + cfg.RimClearance, Z: cfg.Wall}, 0)
	rimCuts = append(rimCuts, translate(notch, r3.Vec{Y: out.Y/2 - (cfg.Wall+cfg.RimClearance)/2, Z: rimZ}))
	// Side wall tab cutouts.
	sideCut := must3.Box(r3.Vec{X: cfg.Wall + cfg.RimClearance, Y: cfg.TabWidth + cfg.RimClearance, Z: cfg.Wall}, 0)
	for _, sign := range []float64{1, -1} {
		for _, y := range []float64{-yPos, yPos} {
			rimCuts = append(rimCuts, translate(sideCut, r3.Vec{X: sign * (out.X/2 - cfg.Wall/2), Y: y, Z: rimZ}))
		}
	}
	base = sdf.Difference3D(base, sdf.Union3D(rimCuts...))

	if cfg.Compensate {
		base = matter.PLA.Scale(base)
	}
	return base, nil
}

// HCSR501Lid builds the press-fit lid.
func HCSR501Lid(cfg HCSR501Config) (sdf.SDF3, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	out := cfg.outer()

	lid := lidPlate(r3.Vec{X: out.X, Y: out.Y, Z: cfg.LidThick}, cfg.ChamferTop, cfg.Logger)

	// Inset lip dropping inside the case for a snug fit.
	lip := must3.Box(r3.Vec{
		X: cfg.InnerX - 2*cfg.LipClearance,
		Y: cfg.InnerY - 2*cfg.LipClearance,
		Z: cfg.LipHeight,
	}, 0)
	lid = sdf.Union3D(lid, translate(lip, r3.Vec{Z: -cfg.LidThick/2 - cfg.LipHeight/2}))

	// Extension closing the fresnel edge, outer face coplanar with the lid.
	ext := must3.Box(r3.Vec{X: out.X, Y: cfg.Wall, Z: cfg.Wall}, 0)
	lid = sdf.Union3D(lid, translate(ext, r3.Vec{Y: -out.Y/2 + cfg.Wall/2, Z: -cfg.LidThick/2 - cfg.Wall/2}))

	// Press-fit tabs protruding below the plate.
	tabZ := -cfg.LidThick/2 - cfg.TabHeight/2
	xPos := cfg.InnerX/2 - cfg.TabWidth/2 - tabInset
	yPos := cfg.InnerY/2 - cfg.TabWidth/2 - tabInset
	tabY := must3.Box(r3.Vec{X: cfg.TabWidth, Y: cfg.Wall, Z: cfg.TabHeight}, 0)
	tabX := must3.Box(r3.Vec{X: cfg.Wall, Y: cfg.TabWidth, Z: cfg.TabHeight}, 0)
	for _, sign := range []float64{1, -1} {
		for _, x := range []float64{-xPos, xPos} {
			lid = sdf.Union3D(lid, translate(tabY, r3.Vec{X: x, Y: sign * (out.Y/2 - cfg.Wall/2), Z: tabZ}))
		}
		for _, y := range []float64{-yPos, yPos} {
			lid = sdf.Union3D(lid, translate(tabX, r3.Vec{X: sign * (out.X/2 - cfg.Wall/2), Y: y, Z: tabZ}))
		}
	}

	if cfg.Compensate {
		lid = matter.PLA.Scale(lid)
	}
	return lid, nil
}

// lidPlate attempts a plate with rounded outer edges. The kernel accepts any
// positive rounding and degenerates silently once it reaches half the
// smallest plate dimension (the box half-size goes negative and the solid
// empties out), so the applicability check happens here: an oversized
// rounding falls back to sharp edges and the condition is logged, never
// swallowed.
func lidPlate(size r3.Vec, round float64, l *log.Logger) sdf.SDF3 {
	if round > 0 {
		if m := min(size.X, size.Y, size.Z); 2*round >= m {
			logger(l).Warnf("hcsr501: lid edge rounding %.3gmm exceeds half the %.3gmm plate thickness, using sharp edges", round, m)
			return must3.Box(size, 0)
		}
		plate, err := form3.Box(size, round)
		if err == nil {
			return plate
		}
		logger(l).Warnf("hcsr501: lid edge rounding %.3gmm not applicable, using sharp edges: %v", round, err)
	}
	return must3.Box(size, 0)
}
