package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiagram_RejectsInvalidSurface(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero width", Config{SurfaceWidth: 0, SurfaceHeight: 200}},
		{"zero height", Config{SurfaceWidth: 800, SurfaceHeight: 0}},
		{"negative width", Config{SurfaceWidth: -800, SurfaceHeight: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDiagram(tt.cfg)
			assert.Error(t, err)
			assert.Nil(t, d)
		})
	}
}

func TestDiagram_BuildConcreteScenario(t *testing.T) {
	d, err := NewDiagram(DefaultConfig())
	require.NoError(t, err)

	d.Register(Group{
		Quantity:  3,
		SpacingCm: 30,
		Row:       RowMiddle,
		Alignment: AlignCenter,
		Label:     "Tomato",
		Color:     "#e53935",
	})

	r := d.Build()
	require.Len(t, r.Groups, 1)
	require.Len(t, r.Groups[0].Points, 3)

	want := []SurfacePoint{{X: 340, Y: 100}, {X: 400, Y: 100}, {X: 460, Y: 100}}
	for i, p := range r.Groups[0].Points {
		assert.InDelta(t, want[i].X, p.X, 1e-9)
		assert.InDelta(t, want[i].Y, p.Y, 1e-9)
	}
	assert.Equal(t, "Tomato", r.Groups[0].Label)
}

func TestDiagram_InsertionOrderPreserved(t *testing.T) {
	d, err := NewDiagram(DefaultConfig())
	require.NoError(t, err)

	d.Register(Group{Quantity: 2, SpacingCm: 50, Row: RowTop, Label: "Lettuce"})
	d.Register(Group{Quantity: 4, SpacingCm: 20, Row: RowBottom, Label: "Carrot"})

	r := d.Build()
	require.Len(t, r.Groups, 2)
	assert.Equal(t, "Lettuce", r.Groups[0].Label)
	assert.Equal(t, "Carrot", r.Groups[1].Label)
	assert.Len(t, r.Groups[0].Points, 2)
	assert.Len(t, r.Groups[1].Points, 4)
}

func TestDiagram_Guides(t *testing.T) {
	d, err := NewDiagram(DefaultConfig())
	require.NoError(t, err)

	r := d.Build()

	// 7 vertical lines every 50cm (50..350) plus 2 horizontal at 25/75cm.
	assert.Len(t, r.GridLines, 9)

	require.Len(t, r.RowDividers, 2)
	assert.InDelta(t, 200.0/3, r.RowDividers[0].Y1, 0.01)
	assert.InDelta(t, 400.0/3, r.RowDividers[1].Y1, 0.01)
	assert.InDelta(t, 0, r.RowDividers[0].X1, 1e-9)
	assert.InDelta(t, 800, r.RowDividers[0].X2, 1e-9)
}

func TestDiagram_GridCanBeDisabled(t *testing.T) {
	d, err := NewDiagram(Config{SurfaceWidth: 800, SurfaceHeight: 200, ShowGrid: false})
	require.NoError(t, err)

	r := d.Build()
	assert.Empty(t, r.GridLines)
	assert.Len(t, r.RowDividers, 2)
}

func TestDiagram_ClearRendersBareBed(t *testing.T) {
	d, err := NewDiagram(DefaultConfig())
	require.NoError(t, err)

	d.Register(Group{Quantity: 3, SpacingCm: 30})
	d.Clear()

	r := d.Build()
	assert.Empty(t, r.Groups)
	assert.Len(t, r.RowDividers, 2)
}

func TestRenderSVG(t *testing.T) {
	d, err := NewDiagram(DefaultConfig())
	require.NoError(t, err)

	d.Register(Group{Quantity: 3, SpacingCm: 30, Row: RowMiddle, Icon: "T", Color: "#e53935", Label: "Tomato"})

	svg := string(RenderSVG(d.Build()))

	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(svg), "</svg>"))
	assert.Equal(t, 3, strings.Count(svg, "<circle "))
	assert.Contains(t, svg, `viewBox="0 0 800.0 200.0"`)
	assert.Contains(t, svg, `fill="#e53935"`)
}
