package layout

// Axis selects which scale factor a transform applies.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Transform maps physical centimeters to drawing-surface units with
// independent horizontal and vertical scale factors. It is fixed at
// construction and performs no bounds checking: negative and
// surface-exceeding values pass through linearly.
type Transform struct {
	scaleX float64
	scaleY float64
}

// NewTransform derives the scale factors from the drawing surface size
// and the fixed physical bed size.
func NewTransform(surfaceWidth, surfaceHeight float64) Transform {
	return Transform{
		scaleX: surfaceWidth / BedWidthCm,
		scaleY: surfaceHeight / BedHeightCm,
	}
}

// ToSurface converts one physical measurement to surface units along the
// given axis.
func (t Transform) ToSurface(valueCm float64, axis Axis) float64 {
	if axis == AxisY {
		return valueCm * t.scaleY
	}
	return valueCm * t.scaleX
}

// Point converts a physical position to surface coordinates.
func (t Transform) Point(p Position) SurfacePoint {
	return SurfacePoint{
		X: p.XCm * t.scaleX,
		Y: p.YCm * t.scaleY,
	}
}
