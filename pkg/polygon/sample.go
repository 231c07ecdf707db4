package polygon

// sampleExtraCount picks how many optional vertices to add.
//
// It runs maximum Bernoulli trials, each succeeding when a uniform draw from
// [0, maximum) falls below mean. The sum is binomial(maximum, mean/maximum),
// a cheap stand-in for a Poisson variable with the given mean that can never
// exceed maximum.
func sampleExtraCount(src Source, mean, maximum int) (int, error) {
	count := 0
	for range maximum {
		x, err := draw(src, maximum)
		if err != nil {
			return 0, err
		}
		if x < mean {
			count++
		}
	}
	return count, nil
}
