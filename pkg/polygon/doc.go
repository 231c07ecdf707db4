// Package polygon generates randomized clip-path polygons.
//
// # Overview
//
// A [Generator] produces polygon outlines expressed as percentage offsets,
// ready to be used as the argument of a CSS polygon() shape. Every polygon
// keeps the four corners of the unit square and adds a random number of
// extra vertices picked from a fixed grid along the perimeter. Each vertex
// is then nudged by a small random jitter so the outline looks hand cut.
//
//	g, err := polygon.New(polygon.WithStepSize(5))
//	if err != nil {
//	    return err
//	}
//	s, err := g.Generate(polygon.DefaultMean)
//	// s == "0.00% 0.00%,0.00% 31.42%,..."
//
// # Grid
//
// The perimeter is walked counter-clockwise from the top-left corner in
// steps of the configured size. With step size s there are 100/s steps per
// side. Every grid point gets a perimeter key; the corners sit at keys 0,
// 100/s, 2*100/s and 3*100/s and the remaining 4*(100/s)-4 points form the
// optional vertex pool. Keys only define the order of vertices around the
// outline.
//
// # Generation
//
// One call to [Generator.Build] (or [Generator.Generate]):
//
//  1. Samples the number of extra vertices with a binomial approximation
//     of a Poisson distribution around the requested mean, capped at the
//     pool size.
//  2. Draws that many distinct pool points from a call-local copy of the
//     pool and merges them with the corners, ordered by key.
//  3. Jitters each coordinate by up to 5 percentage points. Coordinates on
//     the 0 or 100 edge only move inward; interior coordinates move either
//     way and are not clamped afterwards.
//  4. Serializes the result as "x% y%" pairs joined by commas, each number
//     printed with exactly two decimals.
//
// # Randomness
//
// All random decisions of a call go through a single [Source]. Use
// [NewSource] for reproducible output, [NewCryptoSource] for a source backed
// by crypto/rand, or [Generator.Generate] to get a freshly seeded source per
// call. A Source is not safe for concurrent use; a Generator is.
package polygon
