package enclosure

import (
	"errors"
	"math"
)

// Resolved is a validated Config plus the derived geometry. It is the single
// source of truth for width, slant angle and lid length; builders read these
// values instead of recomputing them so the body and lid cannot drift apart.
type Resolved struct {
	Config

	Width      float64 // (SwitchesPerRow-1)*SwitchSpacing + 2*EdgeMargin
	SlantAngle float64 // radians, atan((HighHeight-LowHeight)/Depth)
	LidLength  float64 // hypot(Depth, HighHeight-LowHeight)

	SinSlant float64
	CosSlant float64
	TanSlant float64
}

// Resolve validates cfg and computes the derived geometry. All
// configuration violations are collected and returned together as joined
// ConfigurationErrors; nothing geometric happens on failure.
func Resolve(cfg Config) (*Resolved, error) {
	var errs []error
	fail := func(param string, value float64, constraint string) {
		errs = append(errs, configErr(param, value, constraint))
	}

	if cfg.SwitchesPerRow < 1 {
		fail("SwitchesPerRow", float64(cfg.SwitchesPerRow), ">= 1")
	}
	positive := []struct {
		name  string
		value float64
	}{
		{"SwitchSpacing", cfg.SwitchSpacing},
		{"EdgeMargin", cfg.EdgeMargin},
		{"LowHeight", cfg.LowHeight},
		{"HighHeight", cfg.HighHeight},
		{"Depth", cfg.Depth},
		{"ShellThickness", cfg.ShellThickness},
		{"LidThickness", cfg.LidThickness},
		{"CornerRadius", cfg.CornerRadius},
		{"LipDepth", cfg.LipDepth},
		{"LipWidth", cfg.LipWidth},
		{"SwitchHoleDiameter", cfg.SwitchHoleDiameter},
		{"DCJackDiameter", cfg.DCJackDiameter},
		{"USBSlotWidth", cfg.USBSlotWidth},
		{"USBSlotHeight", cfg.USBSlotHeight},
		{"ScrewHoleDiameter", cfg.ScrewHoleDiameter},
		{"CountersinkDiameter", cfg.CountersinkDiameter},
		{"BoardScrewDiameter", cfg.BoardScrewDiameter},
		{"BossDiameter", cfg.BossDiameter},
		{"RowOffsetA", cfg.RowOffsetA},
		{"RowOffsetB", cfg.RowOffsetB},
		{"DisplayWidth", cfg.DisplayWidth},
		{"DisplayHeight", cfg.DisplayHeight},
		{"DisplayMountWidth", cfg.DisplayMountWidth},
		{"DisplayMountHeight", cfg.DisplayMountHeight},
		{"DisplayStandoffHeight", cfg.DisplayStandoffHeight},
		{"DisplayStandoffDia", cfg.DisplayStandoffDia},
		{"BoardStandoffHeight", cfg.BoardStandoffHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			fail(p.name, p.value, "> 0")
		}
	}
	// Zero collapses the pair to a single centered bore.
	if cfg.SideSwitchSpacing < 0 {
		fail("SideSwitchSpacing", cfg.SideSwitchSpacing, ">= 0")
	}
	if len(errs) > 0 {
		// Derived quantities below assume sane inputs.
		return nil, errors.Join(errs...)
	}

	rise := cfg.HighHeight - cfg.LowHeight
	r := &Resolved{
		Config:     cfg,
		Width:      float64(cfg.SwitchesPerRow-1)*cfg.SwitchSpacing + 2*cfg.EdgeMargin,
		SlantAngle: math.Atan2(rise, cfg.Depth),
		LidLength:  math.Hypot(cfg.Depth, rise),
	}
	r.SinSlant = math.Sin(r.SlantAngle)
	r.CosSlant = math.Cos(r.SlantAngle)
	r.TanSlant = rise / cfg.Depth

	if cfg.HighHeight < cfg.LowHeight {
		fail("HighHeight", cfg.HighHeight, ">= LowHeight")
	}
	if smaller := math.Min(r.Width, cfg.Depth); cfg.CornerRadius > smaller/2 {
		fail("CornerRadius", cfg.CornerRadius, "<= half the smaller of width/depth")
	}
	if r.Width-2*cfg.ShellThickness <= 0 {
		fail("ShellThickness", cfg.ShellThickness, "cavity width > 0")
	}
	if cfg.Depth-2*cfg.ShellThickness <= 0 {
		fail("ShellThickness", cfg.ShellThickness, "cavity depth > 0")
	}
	if cfg.LipWidth >= cfg.ShellThickness {
		fail("LipWidth", cfg.LipWidth, "< ShellThickness")
	}
	if cfg.LipDepth >= cfg.LowHeight-cfg.ShellThickness {
		fail("LipDepth", cfg.LipDepth, "< LowHeight - ShellThickness")
	}
	if cfg.ScrewHoleDiameter >= cfg.BossDiameter {
		fail("ScrewHoleDiameter", cfg.ScrewHoleDiameter, "< BossDiameter")
	}
	if cfg.BoardScrewDiameter >= cfg.BossDiameter {
		fail("BoardScrewDiameter", cfg.BoardScrewDiameter, "< BossDiameter")
	}
	if cfg.CountersinkDiameter <= cfg.ScrewHoleDiameter {
		fail("CountersinkDiameter", cfg.CountersinkDiameter, "> ScrewHoleDiameter")
	}
	if cfg.CountersinkDiameter <= cfg.BoardScrewDiameter {
		fail("CountersinkDiameter", cfg.CountersinkDiameter, "> BoardScrewDiameter")
	}
	// The countersink cone is deepest over the narrowest paired hole; that
	// worst case must still fit inside the lid.
	if csDepth := (cfg.CountersinkDiameter - cfg.BoardScrewDiameter) / 2; csDepth >= cfg.LidThickness {
		fail("CountersinkDiameter", cfg.CountersinkDiameter, "countersink depth < LidThickness")
	}
	if cfg.BoardScrewDiameter >= cfg.DisplayStandoffDia {
		fail("DisplayStandoffDia", cfg.DisplayStandoffDia, "> BoardScrewDiameter")
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

// SeatZ returns the seating plane height at body-frame y.
func (r *Resolved) SeatZ(y float64) float64 {
	return r.LowHeight + y*r.TanSlant
}
