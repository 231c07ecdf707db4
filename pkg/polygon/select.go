package polygon

import (
	"cmp"
	"slices"

	"github.com/matzehuels/polyclip/pkg/errors"
)

// selectVertices returns the corners plus n-4 distinct pool vertices drawn
// at random, ordered by perimeter key.
//
// Draws happen on a private copy of the pool, so the generator is never
// mutated.
func (g *Generator) selectVertices(src Source, n int) ([]Vertex, error) {
	extra := n - len(g.corners)
	if extra < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "polygon needs at least %d vertices, got %d", len(g.corners), n)
	}
	if extra > len(g.pool) {
		return nil, errors.New(errors.ErrCodeTooManyVertices,
			"requested %d optional vertices but the grid only has %d", extra, len(g.pool))
	}

	selected := make([]Vertex, 0, n)
	selected = append(selected, g.corners...)

	remaining := slices.Clone(g.pool)
	for range extra {
		i, err := draw(src, len(remaining))
		if err != nil {
			return nil, err
		}
		selected = append(selected, remaining[i])
		last := len(remaining) - 1
		remaining[i] = remaining[last]
		remaining = remaining[:last]
	}

	slices.SortFunc(selected, func(a, b Vertex) int { return cmp.Compare(a.Key, b.Key) })
	return selected, nil
}
