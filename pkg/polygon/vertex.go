package polygon

import (
	"strconv"
	"strings"
)

// Coordinate is a point in percentage space. Both axes nominally lie in
// [0, 100], although interior jitter can push a value slightly outside.
type Coordinate struct {
	X float64
	Y float64
}

// Vertex is a coordinate tagged with its perimeter key.
type Vertex struct {
	Key int
	Coordinate
}

// Polygon is the result of one generation call.
type Polygon struct {
	// Base holds the selected grid vertices before jitter, ordered by key.
	Base []Vertex

	// Vertices holds the jittered vertices in the same order as Base.
	Vertices []Vertex
}

// Len returns the number of vertices in the polygon.
func (p Polygon) Len() int { return len(p.Vertices) }

// String serializes the polygon as "x1% y1%,x2% y2%,...".
func (p Polygon) String() string {
	var b strings.Builder
	for i, v := range p.Vertices {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatPair(v.Coordinate))
	}
	return b.String()
}

// formatPair renders a coordinate as "x% y%".
func formatPair(c Coordinate) string {
	return formatPercent(c.X) + " " + formatPercent(c.Y)
}

// formatPercent renders v with exactly two fraction digits and a trailing %.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}
