// Package enclosure generates the two mating halves of a 3D-printable
// instrument controller housing: a tapered hollow body and a flat
// perforated lid. Everything is driven by one immutable Config; builders
// are pure functions from the resolved parameters to csg expression trees.
package enclosure

import "gonum.org/v1/gonum/spatial/r2"

// Config holds every dimensional parameter of the housing. All lengths are
// millimeters; diameters are full diameters. The zero value is not usable,
// start from DefaultConfig.
type Config struct {
	// Footswitch grid.
	SwitchesPerRow int
	SwitchSpacing  float64 // column pitch
	EdgeMargin     float64 // outermost column to side edge

	// Envelope.
	LowHeight  float64 // front wall height
	HighHeight float64 // rear wall height
	Depth      float64 // front edge to rear edge

	// Shell.
	ShellThickness float64
	LidThickness   float64
	CornerRadius   float64
	LipDepth       float64 // recess below the seating plane
	LipWidth       float64 // rim left standing around the recess

	// Hardware bores.
	SwitchHoleDiameter  float64
	DCJackDiameter      float64
	USBSlotWidth        float64
	USBSlotHeight       float64
	ScrewHoleDiameter   float64 // lid-to-body screws
	CountersinkDiameter float64
	BoardScrewDiameter  float64 // board and display screws
	BossDiameter        float64

	// Switch rows, lid-frame y offsets from the front edge.
	RowOffsetA float64
	RowOffsetB float64

	// Display window and its external mount pattern, centered at
	// DisplayOffsetY from the lid's longitudinal midpoint.
	DisplayWidth          float64
	DisplayHeight         float64
	DisplayMountWidth     float64
	DisplayMountHeight    float64
	DisplayOffsetY        float64
	DisplayStandoffHeight float64
	DisplayStandoffDia    float64

	// Side switches, symmetric about the display center.
	SideSwitchSpacing float64
	SideSwitchOffsetY float64

	// Internal boards, offsets of each pattern center from the footprint
	// center. PiBoard uses the Pi-style 29 x 11.5 half-spacing, the two
	// generic boards use 32.5 x 12.5.
	BoardStandoffHeight float64
	PiBoardOffset       r2.Vec
	BoardAOffset        r2.Vec
	BoardBOffset        r2.Vec
}

// DefaultConfig is sized for the real controller footprint: a 2x4
// footswitch grid, a 320x240 display module, one Pi-style board and two
// generic boards.
func DefaultConfig() Config {
	return Config{
		SwitchesPerRow: 4,
		SwitchSpacing:  45,
		EdgeMargin:     25,

		LowHeight:  35,
		HighHeight: 75,
		Depth:      195,

		ShellThickness: 3,
		LidThickness:   4,
		CornerRadius:   8,
		LipDepth:       2,
		LipWidth:       1.5,

		SwitchHoleDiameter:  12,
		DCJackDiameter:      12,
		USBSlotWidth:        10,
		USBSlotHeight:       4,
		ScrewHoleDiameter:   3.2,
		CountersinkDiameter: 8,
		BoardScrewDiameter:  2.8,
		BossDiameter:        10,

		RowOffsetA: 40,
		RowOffsetB: 110,

		DisplayWidth:          52,
		DisplayHeight:         40,
		DisplayMountWidth:     64,
		DisplayMountHeight:    52,
		DisplayOffsetY:        60,
		DisplayStandoffHeight: 5,
		DisplayStandoffDia:    7,

		SideSwitchSpacing: 120,
		SideSwitchOffsetY: 0,

		BoardStandoffHeight: 6,
		PiBoardOffset:       r2.Vec{X: -50, Y: 20},
		BoardAOffset:        r2.Vec{X: 40, Y: 20},
		BoardBOffset:        r2.Vec{X: 40, Y: -25},
	}
}

// Pi-style and generic board bolt pattern half-spacings.
const (
	piHalfSpanX      = 29.0
	piHalfSpanY      = 11.5
	genericHalfSpanX = 32.5
	genericHalfSpanY = 12.5
)
