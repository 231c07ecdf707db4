package polygon

import (
	"slices"

	"github.com/matzehuels/polyclip/pkg/errors"
)

const (
	// DefaultStepSize is the perimeter grid step in percent.
	DefaultStepSize = 5

	// DefaultMean is the default expected number of extra vertices.
	DefaultMean = 5
)

// Option configures a [Generator].
type Option func(*config)

type config struct {
	stepSize int
	strict   bool
}

// WithStepSize sets the distance, in percent, between neighbouring grid
// points on a side. It must lie in [1, 100].
func WithStepSize(n int) Option { return func(c *config) { c.stepSize = n } }

// WithStrictStep rejects step sizes that do not divide 100 evenly instead of
// flooring the number of steps per side.
func WithStrictStep() Option { return func(c *config) { c.strict = true } }

// Generator holds the perimeter grid. It is immutable after [New] and safe
// for concurrent use.
type Generator struct {
	stepSize     int
	stepsPerSide int
	corners      []Vertex
	pool         []Vertex
}

// New builds a generator and its perimeter grid.
//
// A step size that does not divide 100 floors 100/step unless
// [WithStrictStep] is given, in which case New returns an
// INVALID_STEP_SIZE error.
func New(opts ...Option) (*Generator, error) {
	cfg := config{stepSize: DefaultStepSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := errors.ValidateStepSize(cfg.stepSize, cfg.strict); err != nil {
		return nil, err
	}

	steps := stepsPerSide(cfg.stepSize)
	return &Generator{
		stepSize:     cfg.stepSize,
		stepsPerSide: steps,
		corners:      buildCorners(steps),
		pool:         buildOptionalPool(cfg.stepSize, steps),
	}, nil
}

// StepSize returns the configured grid step.
func (g *Generator) StepSize() int { return g.stepSize }

// StepsPerSide returns the number of grid steps on each side.
func (g *Generator) StepsPerSide() int { return g.stepsPerSide }

// Corners returns a copy of the four fixed corners, ordered by key.
func (g *Generator) Corners() []Vertex { return slices.Clone(g.corners) }

// Pool returns a copy of the optional vertex pool, ordered by key.
func (g *Generator) Pool() []Vertex { return slices.Clone(g.pool) }

// Generate returns a new polygon string using a freshly seeded source.
func (g *Generator) Generate(mean int) (string, error) {
	return g.GenerateWith(newCallSource(), mean)
}

// GenerateWith returns a new polygon string drawing all randomness from src.
func (g *Generator) GenerateWith(src Source, mean int) (string, error) {
	p, err := g.Build(src, mean)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}

// Build generates one polygon and returns it in structured form.
//
// mean is the expected number of vertices added on top of the corners; it
// must not be negative. The result always has between 4 and 4+len(Pool())
// vertices.
func (g *Generator) Build(src Source, mean int) (Polygon, error) {
	if src == nil {
		return Polygon{}, errors.New(errors.ErrCodeInvalidInput, "random source is nil")
	}
	if err := errors.ValidateMean(mean); err != nil {
		return Polygon{}, err
	}

	extra, err := sampleExtraCount(src, mean, len(g.pool))
	if err != nil {
		return Polygon{}, err
	}
	base, err := g.selectVertices(src, extra+cornerCount)
	if err != nil {
		return Polygon{}, err
	}

	vertices := make([]Vertex, len(base))
	for i, v := range base {
		if vertices[i], err = transformVertex(src, v); err != nil {
			return Polygon{}, err
		}
	}
	return Polygon{Base: base, Vertices: vertices}, nil
}
