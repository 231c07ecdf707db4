package polygon

const (
	// maxAdditions bounds how many unit increments make up one jitter.
	maxAdditions = 5

	// additionSteps is the resolution of a single increment (0.00 to 1.00).
	additionSteps = 100
)

// transformVertex jitters the x and then the y coordinate of v.
func transformVertex(src Source, v Vertex) (Vertex, error) {
	x, err := jitterCoordinate(src, v.X)
	if err != nil {
		return Vertex{}, err
	}
	y, err := jitterCoordinate(src, v.Y)
	if err != nil {
		return Vertex{}, err
	}
	return Vertex{Key: v.Key, Coordinate: Coordinate{X: x, Y: y}}, nil
}

// jitterCoordinate moves value by a random amount half of the time.
//
// A value on the 100 edge only moves down and a value on the 0 edge only
// moves up. Interior values move either way and may cross an edge.
func jitterCoordinate(src Source, value float64) (float64, error) {
	apply, err := coin(src)
	if err != nil || !apply {
		return value, err
	}
	amount, err := jitterAmount(src)
	if err != nil {
		return 0, err
	}

	switch value {
	case 100:
		return value - amount, nil
	case 0:
		return value + amount, nil
	}
	up, err := coin(src)
	if err != nil {
		return 0, err
	}
	if up {
		return value + amount, nil
	}
	return value - amount, nil
}

// jitterAmount sums k uniform increments from {0.00, 0.01, ..., 1.00}, with
// k itself uniform in [0, 5].
func jitterAmount(src Source) (float64, error) {
	k, err := intRange(src, 0, maxAdditions)
	if err != nil {
		return 0, err
	}
	total := 0
	for range k {
		step, err := intRange(src, 0, additionSteps)
		if err != nil {
			return 0, err
		}
		total += step
	}
	return float64(total) / additionSteps, nil
}
