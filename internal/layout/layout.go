// Package layout computes plant placement inside a fixed-size raised bed
// and the coordinate transform used to render the result on a drawing
// surface. All placement math works in physical centimeters; conversion to
// surface units happens only when a diagram is built.
package layout

import "strings"

// Physical bed dimensions. Every raised bed is the same fixed size in this
// version; dynamic bed sizing is out of scope.
const (
	BedWidthCm  = 400.0
	BedHeightCm = 100.0

	// EdgeMarginCm is the inward offset from the left and right bed edges
	// that bounds automatic placement.
	EdgeMarginCm = 20.0

	// GridStepCm is the horizontal interval of the reference grid.
	GridStepCm = 50.0

	rowBands = 3
)

// Row is one of the three horizontal bands the bed is partitioned into.
type Row int

const (
	RowTop Row = iota
	RowMiddle
	RowBottom
)

// ParseRow maps an external form value to a Row. The legacy values
// superior/central/inferior are still accepted; anything unrecognized
// falls back to the middle row.
func ParseRow(s string) Row {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "superior":
		return RowTop
	case "bottom", "inferior":
		return RowBottom
	default:
		return RowMiddle
	}
}

func (r Row) String() string {
	switch r {
	case RowTop:
		return "top"
	case RowBottom:
		return "bottom"
	default:
		return "middle"
	}
}

// CenterYCm returns the vertical center of the row's band: the bed height
// is split into three equal bands and the row sits at its band's midpoint.
func (r Row) CenterYCm() float64 {
	band := float64(r)
	if r < RowTop || r > RowBottom {
		band = float64(RowMiddle)
	}
	return (2*band + 1) * BedHeightCm / (2 * rowBands)
}

// Alignment governs the horizontal starting offset of a group's plants.
// It is the caller's manual overlap-avoidance mechanism: the engine never
// detects collisions between groups sharing a row.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

// ParseAlignment maps an external form value to an Alignment. Unrecognized
// or absent values fall back to center.
func ParseAlignment(s string) Alignment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft
	case "right":
		return AlignRight
	default:
		return AlignCenter
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}
