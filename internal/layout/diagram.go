package layout

import "fmt"

// Default drawing surface size. A 2:1 ratio over the 4:1 bed stretches the
// vertical axis, which keeps the three rows readable.
const (
	DefaultSurfaceWidth  = 800.0
	DefaultSurfaceHeight = 200.0
)

// Config controls the drawing surface of a diagram.
type Config struct {
	SurfaceWidth  float64
	SurfaceHeight float64
	ShowGrid      bool
}

// DefaultConfig returns the standard 800x200 surface with the grid on.
func DefaultConfig() Config {
	return Config{
		SurfaceWidth:  DefaultSurfaceWidth,
		SurfaceHeight: DefaultSurfaceHeight,
		ShowGrid:      true,
	}
}

// SurfacePoint is a position in drawing-surface units.
type SurfacePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Line is a guide line on the drawing surface.
type Line struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// GroupRendering is one registered group's markers in surface space,
// in placement order.
type GroupRendering struct {
	Label  string         `json:"label"`
	Icon   string         `json:"icon"`
	Color  string         `json:"color"`
	Points []SurfacePoint `json:"points"`
}

// Rendering is the complete output of one draw pass: the surface size,
// the static guides, and one marker list per registered group. Later
// groups draw on top of earlier ones.
type Rendering struct {
	Width       float64          `json:"width"`
	Height      float64          `json:"height"`
	GridLines   []Line           `json:"grid_lines,omitempty"`
	RowDividers []Line           `json:"row_dividers"`
	Groups      []GroupRendering `json:"groups"`
}

// Diagram accumulates planting groups for one bed and renders them to
// surface coordinates. A diagram is built per request and never shared:
// construct, register, build, discard.
type Diagram struct {
	cfg       Config
	transform Transform
	groups    []Group
}

// NewDiagram validates the surface configuration and prepares the
// coordinate transform. Non-positive surface dimensions are the one
// guarded failure path; everything after construction is pure arithmetic.
func NewDiagram(cfg Config) (*Diagram, error) {
	if cfg.SurfaceWidth <= 0 || cfg.SurfaceHeight <= 0 {
		return nil, fmt.Errorf("invalid surface size %vx%v: dimensions must be positive", cfg.SurfaceWidth, cfg.SurfaceHeight)
	}
	return &Diagram{
		cfg:       cfg,
		transform: NewTransform(cfg.SurfaceWidth, cfg.SurfaceHeight),
	}, nil
}

// Register appends a group to the draw order. No deduplication and no
// validation beyond what Place tolerates.
func (d *Diagram) Register(g Group) {
	d.groups = append(d.groups, g)
}

// Clear empties the group sequence; a subsequent Build renders the bare bed.
func (d *Diagram) Clear() {
	d.groups = d.groups[:0]
}

// Transform exposes the diagram's cm-to-surface transform.
func (d *Diagram) Transform() Transform {
	return d.transform
}

// Build runs the full draw pass: guides first, then every registered
// group in insertion order through the placement engine and the
// coordinate transform.
func (d *Diagram) Build() Rendering {
	r := Rendering{
		Width:  d.cfg.SurfaceWidth,
		Height: d.cfg.SurfaceHeight,
	}

	if d.cfg.ShowGrid {
		r.GridLines = d.gridLines()
	}
	r.RowDividers = d.rowDividers()

	r.Groups = make([]GroupRendering, 0, len(d.groups))
	for _, g := range d.groups {
		positions := Place(g)
		gr := GroupRendering{
			Label:  g.Label,
			Icon:   g.Icon,
			Color:  g.Color,
			Points: make([]SurfacePoint, 0, len(positions)),
		}
		for _, p := range positions {
			gr.Points = append(gr.Points, d.transform.Point(p))
		}
		r.Groups = append(r.Groups, gr)
	}
	return r
}

// gridLines emits vertical lines every 50 cm and horizontal lines at
// 25 cm and 75 cm, interior only.
func (d *Diagram) gridLines() []Line {
	var lines []Line
	for x := GridStepCm; x < BedWidthCm; x += GridStepCm {
		sx := d.transform.ToSurface(x, AxisX)
		lines = append(lines, Line{X1: sx, Y1: 0, X2: sx, Y2: d.cfg.SurfaceHeight})
	}
	for _, y := range []float64{25, 75} {
		sy := d.transform.ToSurface(y, AxisY)
		lines = append(lines, Line{X1: 0, Y1: sy, X2: d.cfg.SurfaceWidth, Y2: sy})
	}
	return lines
}

// rowDividers emits the two internal row-band boundaries.
func (d *Diagram) rowDividers() []Line {
	lines := make([]Line, 0, rowBands-1)
	for band := 1; band < rowBands; band++ {
		sy := d.transform.ToSurface(BedHeightCm*float64(band)/rowBands, AxisY)
		lines = append(lines, Line{X1: 0, Y1: sy, X2: d.cfg.SurfaceWidth, Y2: sy})
	}
	return lines
}
