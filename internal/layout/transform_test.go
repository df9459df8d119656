package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform_ScaleFactors(t *testing.T) {
	// 800x200 surface over the 400x100 bed doubles both axes.
	tr := NewTransform(800, 200)

	assert.InDelta(t, 2.0, tr.ToSurface(1, AxisX), 1e-9)
	assert.InDelta(t, 2.0, tr.ToSurface(1, AxisY), 1e-9)
}

func TestTransform_IndependentAxes(t *testing.T) {
	tr := NewTransform(1200, 100)

	assert.InDelta(t, 3.0, tr.ToSurface(1, AxisX), 1e-9)
	assert.InDelta(t, 1.0, tr.ToSurface(1, AxisY), 1e-9)
}

func TestTransform_Linearity(t *testing.T) {
	tr := NewTransform(640, 480)

	for _, axis := range []Axis{AxisX, AxisY} {
		assert.InDelta(t, 0, tr.ToSurface(0, axis), 1e-9)

		a, b := 37.5, 121.25
		assert.InDelta(t,
			tr.ToSurface(a+b, axis),
			tr.ToSurface(a, axis)+tr.ToSurface(b, axis),
			1e-9)
	}
}

func TestTransform_NoBoundsChecking(t *testing.T) {
	tr := NewTransform(800, 200)

	// Negative and bed-exceeding values pass through linearly.
	assert.InDelta(t, -170, tr.ToSurface(-85, AxisX), 1e-9)
	assert.InDelta(t, 970, tr.ToSurface(485, AxisX), 1e-9)
}

func TestTransform_Point(t *testing.T) {
	tr := NewTransform(800, 200)

	p := tr.Point(Position{XCm: 170, YCm: 50})
	assert.InDelta(t, 340, p.X, 1e-9)
	assert.InDelta(t, 100, p.Y, 1e-9)
}
