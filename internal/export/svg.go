// Package export renders saved run data as standalone SVG documents,
// one path per curve on a dark canvas.
package export

import (
	"fmt"
	"strings"
)

// Curve is one labeled series sharing the x axis of its document.
type Curve struct {
	Ys    []float64
	Color string
}

// CurvesToSVG renders curves against a common x axis, auto-scaled to
// the joint bounds with 10% padding.
func CurvesToSVG(xs []float64, curves []Curve, width, height int) string {
	if len(xs) < 2 || len(curves) == 0 {
		return ""
	}

	minX, maxX := xs[0], xs[0]
	for _, x := range xs {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}
	minY, maxY := curves[0].Ys[0], curves[0].Ys[0]
	for _, c := range curves {
		for _, y := range c.Ys {
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, c := range curves {
		if len(c.Ys) != len(xs) {
			continue
		}
		color := c.Color
		if color == "" {
			color = "#00ff00"
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i, y := range c.Ys {
			px := (xs[i] - minX) / rangeX * float64(width)
			py := float64(height) - (y-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG renders a single curve.
func SeriesToSVG(xs, ys []float64, width, height int, color string) string {
	return CurvesToSVG(xs, []Curve{{Ys: ys, Color: color}}, width, height)
}
