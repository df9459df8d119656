package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlace_ReturnsExactlyQuantityPositions(t *testing.T) {
	for _, quantity := range []int{1, 2, 3, 5, 10, 50} {
		g := Group{Quantity: quantity, SpacingCm: 30, Row: RowMiddle, Alignment: AlignCenter}
		positions := Place(g)
		assert.Len(t, positions, quantity)
	}
}

func TestPlace_NonPositiveQuantity(t *testing.T) {
	assert.Nil(t, Place(Group{Quantity: 0, SpacingCm: 30}))
	assert.Nil(t, Place(Group{Quantity: -3, SpacingCm: 30}))
}

func TestPlace_RowBandCenters(t *testing.T) {
	tests := []struct {
		name    string
		row     Row
		wantYCm float64
	}{
		{"top row sits at one sixth of bed height", RowTop, 16.667},
		{"middle row sits at half of bed height", RowMiddle, 50.0},
		{"bottom row sits at five sixths of bed height", RowBottom, 83.333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positions := Place(Group{Quantity: 1, SpacingCm: 30, Row: tt.row})
			assert.Len(t, positions, 1)
			assert.InDelta(t, tt.wantYCm, positions[0].YCm, 0.001)
		})
	}
}

func TestPlace_SingleInstanceYIndependentOfAlignment(t *testing.T) {
	for _, align := range []Alignment{AlignLeft, AlignCenter, AlignRight} {
		positions := Place(Group{Quantity: 1, SpacingCm: 40, Row: RowTop, Alignment: align})
		assert.Len(t, positions, 1)
		assert.InDelta(t, BedHeightCm/6, positions[0].YCm, 0.001)
	}
}

func TestPlace_ConstantStepAndMonotonicX(t *testing.T) {
	g := Group{Quantity: 8, SpacingCm: 20, Row: RowBottom, Alignment: AlignLeft}
	positions := Place(g)

	for i := 1; i < len(positions); i++ {
		step := positions[i].XCm - positions[i-1].XCm
		assert.InDelta(t, g.SpacingCm, step, 1e-9)
		assert.Greater(t, positions[i].XCm, positions[i-1].XCm)
	}
}

func TestPlace_AlignmentScenarios(t *testing.T) {
	// Bed 400x100, margin 20: usable width 360, span for 3x30cm is 60.
	tests := []struct {
		name      string
		alignment Alignment
		wantX     []float64
	}{
		{"center starts at 170", AlignCenter, []float64{170, 200, 230}},
		{"left starts at the margin", AlignLeft, []float64{20, 50, 80}},
		{"right ends at the margin", AlignRight, []float64{320, 350, 380}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positions := Place(Group{Quantity: 3, SpacingCm: 30, Row: RowMiddle, Alignment: tt.alignment})
			assert.Len(t, positions, 3)
			for i, want := range tt.wantX {
				assert.InDelta(t, want, positions[i].XCm, 1e-9)
				assert.InDelta(t, 50.0, positions[i].YCm, 1e-9)
			}
		})
	}
}

func TestPlace_AlignmentSymmetry(t *testing.T) {
	g := Group{Quantity: 5, SpacingCm: 40, Row: RowMiddle}
	span := float64(g.Quantity-1) * g.SpacingCm
	usable := BedWidthCm - 2*EdgeMarginCm

	g.Alignment = AlignLeft
	leftFirst := Place(g)[0].XCm
	g.Alignment = AlignRight
	rightFirst := Place(g)[0].XCm
	g.Alignment = AlignCenter
	centerFirst := Place(g)[0].XCm

	assert.InDelta(t, leftFirst+(usable-span), rightFirst, 1e-9)
	assert.InDelta(t, (leftFirst+rightFirst)/2, centerFirst, 1e-9)
}

func TestPlace_OverflowIsNotAnError(t *testing.T) {
	// 20 plants at 30cm span 570cm, far beyond the 360cm usable width.
	g := Group{Quantity: 20, SpacingCm: 30, Row: RowMiddle, Alignment: AlignCenter}
	positions := Place(g)

	assert.Len(t, positions, 20)

	outside := 0
	for _, p := range positions {
		if p.XCm < 0 || p.XCm > BedWidthCm {
			outside++
		}
	}
	assert.Greater(t, outside, 0, "oversized group should spill past the bed edges")

	// Centering still holds around the bed's usable midpoint.
	first, last := positions[0].XCm, positions[len(positions)-1].XCm
	assert.InDelta(t, 2*EdgeMarginCm+(BedWidthCm-2*EdgeMarginCm), first+last, 1e-9)
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		in   string
		want Row
	}{
		{"top", RowTop},
		{"middle", RowMiddle},
		{"bottom", RowBottom},
		{"superior", RowTop},
		{"central", RowMiddle},
		{"inferior", RowBottom},
		{" Top ", RowTop},
		{"", RowMiddle},
		{"diagonal", RowMiddle},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRow(tt.in), "ParseRow(%q)", tt.in)
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in   string
		want Alignment
	}{
		{"left", AlignLeft},
		{"center", AlignCenter},
		{"right", AlignRight},
		{"RIGHT", AlignRight},
		{"", AlignCenter},
		{"justified", AlignCenter},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAlignment(tt.in), "ParseAlignment(%q)", tt.in)
	}
}
