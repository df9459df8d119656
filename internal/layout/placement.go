package layout

// Group describes one set of same-type plants to place in the bed:
// how many, how far apart, which row, and how they align horizontally.
// The display fields are passed through untouched by the placement math.
type Group struct {
	Quantity  int
	SpacingCm float64
	Row       Row
	Alignment Alignment

	Label string
	Icon  string
	Color string
}

// Position is the physical center point of a single plant instance.
type Position struct {
	XCm float64
	YCm float64
}

// Place computes the physical center of every plant in the group, in
// ascending x order. It returns exactly Quantity positions.
//
// The group's span ((Quantity-1) * SpacingCm) is anchored by alignment
// within the margin-bounded usable width. Oversized groups are not
// clipped or re-spaced: coordinates are allowed to fall outside the
// margins, and for extreme inputs outside the bed itself. The rendered
// diagram shows plants crossing the border instead of failing.
func Place(g Group) []Position {
	if g.Quantity <= 0 {
		return nil
	}

	y := g.Row.CenterYCm()
	span := float64(g.Quantity-1) * g.SpacingCm
	usable := BedWidthCm - 2*EdgeMarginCm

	var start float64
	switch g.Alignment {
	case AlignLeft:
		start = EdgeMarginCm
	case AlignRight:
		// Anchors the last plant at the right margin.
		start = BedWidthCm - span - EdgeMarginCm
	default:
		start = EdgeMarginCm + (usable-span)/2
	}

	positions := make([]Position, g.Quantity)
	for i := range positions {
		positions[i] = Position{
			XCm: start + float64(i)*g.SpacingCm,
			YCm: y,
		}
	}
	return positions
}
