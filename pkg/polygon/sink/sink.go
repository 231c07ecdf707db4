package sink

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/polyclip/pkg/errors"
	"github.com/matzehuels/polyclip/pkg/polygon"
)

// Format names an output encoding.
type Format string

const (
	FormatRaw  Format = "raw"
	FormatCSS  Format = "css"
	FormatJSON Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatRaw, FormatCSS, FormatJSON}

// ParseFormat validates a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want raw, css or json)", s)
}

// DefaultProperty is the CSS property written by [CSS].
const DefaultProperty = "clip-path"

// Raw returns the polygon string.
func Raw(p polygon.Polygon) string { return p.String() }

// CSSOption configures [CSS].
type CSSOption func(*cssRenderer)

type cssRenderer struct {
	property string
}

// WithProperty overrides the CSS property name, e.g. "-webkit-clip-path".
func WithProperty(name string) CSSOption { return func(r *cssRenderer) { r.property = name } }

// CSS returns a complete declaration such as "clip-path: polygon(...);".
func CSS(p polygon.Polygon, opts ...CSSOption) string {
	r := cssRenderer{property: DefaultProperty}
	for _, opt := range opts {
		opt(&r)
	}
	return r.property + ": polygon(" + p.String() + ");"
}

// JSONOption configures [JSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	seed     *uint64
	stepSize int
}

// WithSeed records the seed the polygon was generated from.
func WithSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = &seed } }

// WithStepSize records the grid step the polygon was generated on.
func WithStepSize(n int) JSONOption { return func(r *jsonRenderer) { r.stepSize = n } }

type jsonOutput struct {
	StepSize int          `json:"step_size,omitempty"`
	Seed     *uint64      `json:"seed,omitempty"`
	Polygon  string       `json:"polygon"`
	Vertices []jsonVertex `json:"vertices"`
}

type jsonVertex struct {
	Key   int     `json:"key"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	BaseX float64 `json:"base_x"`
	BaseY float64 `json:"base_y"`
}

// JSON encodes the polygon with its base grid vertices.
func JSON(p polygon.Polygon, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if len(p.Base) != len(p.Vertices) {
		return nil, errors.New(errors.ErrCodeInternal, "polygon has %d base vertices but %d vertices", len(p.Base), len(p.Vertices))
	}

	out := jsonOutput{
		StepSize: r.stepSize,
		Seed:     r.seed,
		Polygon:  p.String(),
		Vertices: make([]jsonVertex, len(p.Vertices)),
	}
	for i, v := range p.Vertices {
		out.Vertices[i] = jsonVertex{
			Key:   v.Key,
			X:     v.X,
			Y:     v.Y,
			BaseX: p.Base[i].X,
			BaseY: p.Base[i].Y,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
