package polygon

// cornerCount is the number of vertices every polygon keeps.
const cornerCount = 4

// stepsPerSide floors 100/stepSize.
func stepsPerSide(stepSize int) int {
	return 100 / stepSize
}

// buildCorners returns the four fixed corners at keys 0, s, 2s and 3s.
func buildCorners(steps int) []Vertex {
	return []Vertex{
		{Key: 0, Coordinate: Coordinate{X: 0, Y: 0}},
		{Key: steps, Coordinate: Coordinate{X: 0, Y: 100}},
		{Key: 2 * steps, Coordinate: Coordinate{X: 100, Y: 100}},
		{Key: 3 * steps, Coordinate: Coordinate{X: 100, Y: 0}},
	}
}

// buildOptionalPool returns every perimeter grid point that is not a corner,
// ordered by key.
func buildOptionalPool(stepSize, steps int) []Vertex {
	pool := make([]Vertex, 0, max(0, 4*steps-cornerCount))
	for side := range 4 {
		for j := range steps {
			// Key steps*side belongs to a corner.
			if j == 0 {
				continue
			}
			offset := float64(j * stepSize)
			var c Coordinate
			switch side {
			case 0:
				c = Coordinate{X: 0, Y: offset}
			case 1:
				c = Coordinate{X: offset, Y: 100}
			case 2:
				c = Coordinate{X: 100, Y: 100 - offset}
			default:
				c = Coordinate{X: 100 - offset, Y: 0}
			}
			pool = append(pool, Vertex{Key: steps*side + j, Coordinate: c})
		}
	}
	return pool
}
