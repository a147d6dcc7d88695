// Package chartsvc renders the SGPA/CGPA series as a standalone SVG chart.
// It is a pure, stateless projection of already-computed numbers onto pixel
// coordinates.
package chartsvc

import (
	"fmt"
	"io"
	"strings"

	"github.com/trezcool/alama/core/grade"
)

const (
	width    = 640
	height   = 360
	padding  = 40
	maxGrade = 10 // fixed grading scale
)

// RenderSVG draws one polyline per series (SGPA, CGPA) with the semesters
// spread evenly along the x axis.
func RenderSVG(w io.Writer, sum grade.Summary) error {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, width, height, width, height)
	b.WriteString(`<rect width="100%" height="100%" fill="white"/>`)

	// axes
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#444"/>`, padding, height-padding, width-padding, height-padding)
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#444"/>`, padding, padding, padding, height-padding)

	// horizontal gridlines every 2 grade points
	for g := 0; g <= maxGrade; g += 2 {
		y := yFor(float64(g))
		fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#ddd"/>`, padding, y, width-padding, y)
		fmt.Fprintf(&b, `<text x="%d" y="%.1f" font-size="11" text-anchor="end" fill="#444">%d</text>`, padding-6, y+4, g)
	}

	n := len(sum.Semesters)
	sgpa := make([]float64, 0, n)
	cgpa := make([]float64, 0, n)
	for i, s := range sum.Semesters {
		sgpa = append(sgpa, s.SGPA)
		cgpa = append(cgpa, s.CGPA)
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" font-size="11" text-anchor="middle" fill="#444">%s</text>`,
			xFor(i, n), height-padding+16, s.Semester)
	}

	writeSeries(&b, sgpa, "#c0392b")
	writeSeries(&b, cgpa, "#2980b9")

	// legend
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="12" fill="#c0392b">SGPA</text>`, width-padding-80, padding)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="12" fill="#2980b9">CGPA</text>`, width-padding-30, padding)

	b.WriteString(`</svg>`)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSeries(b *strings.Builder, values []float64, color string) {
	if len(values) == 0 {
		return
	}
	points := make([]string, 0, len(values))
	for i, v := range values {
		points = append(points, fmt.Sprintf("%.1f,%.1f", xFor(i, len(values)), yFor(v)))
	}
	fmt.Fprintf(b, `<polyline fill="none" stroke="%s" stroke-width="2" points="%s"/>`, color, strings.Join(points, " "))
	for i, v := range values {
		fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>`, xFor(i, len(values)), yFor(v), color)
	}
}

// xFor spreads n points evenly between the vertical axes; a single point
// lands in the middle.
func xFor(i, n int) float64 {
	if n <= 1 {
		return float64(width) / 2
	}
	span := float64(width - 2*padding)
	return float64(padding) + span*float64(i)/float64(n-1)
}

func yFor(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > maxGrade {
		v = maxGrade
	}
	span := float64(height - 2*padding)
	return float64(height-padding) - span*v/maxGrade
}
