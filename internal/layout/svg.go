package layout

import (
	"bytes"
	"fmt"
	"html"
)

const (
	bedFillColor   = "#f5e6c8"
	bedStrokeColor = "#8b5a2b"
	gridColor      = "#d9c9a3"
	dividerColor   = "#b08d57"
	markerRadius   = 9.0
	defaultMarker  = "#4caf50"
)

// RenderSVG serializes a built rendering as a standalone SVG document:
// bed background and border, guides, then one circle and icon glyph per
// plant in group registration order.
func RenderSVG(r Rendering) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.Width, r.Height, r.Width, r.Height)

	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="3"/>`+"\n",
		r.Width, r.Height, bedFillColor, bedStrokeColor)

	for _, l := range r.GridLines {
		writeLine(&buf, l, gridColor, 1, "4 4")
	}
	for _, l := range r.RowDividers {
		writeLine(&buf, l, dividerColor, 1.5, "8 6")
	}

	for _, g := range r.Groups {
		color := g.Color
		if color == "" {
			color = defaultMarker
		}
		fmt.Fprintf(&buf, `  <g data-label=%q>`+"\n", html.EscapeString(g.Label))
		for _, p := range g.Points {
			fmt.Fprintf(&buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="#333" stroke-width="1"/>`+"\n",
				p.X, p.Y, markerRadius, color)
			if g.Icon != "" {
				fmt.Fprintf(&buf, `    <text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
					p.X, p.Y, markerRadius*1.4, html.EscapeString(g.Icon))
			}
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeLine(buf *bytes.Buffer, l Line, color string, width float64, dash string) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-dasharray="%s"/>`+"\n",
		l.X1, l.Y1, l.X2, l.Y2, color, width, dash)
}
