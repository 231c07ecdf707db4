// Package sink encodes generated polygons for consumers.
//
// [Raw] returns the canonical "x% y%,..." string. [CSS] wraps it in a
// clip-path declaration and [JSON] emits a document that also carries the
// base grid vertices and the seed, so a polygon can be reproduced later.
//
//	p, _ := g.Build(polygon.NewSource(seed), polygon.DefaultMean)
//	fmt.Println(sink.CSS(p))
//	// clip-path: polygon(0.00% 1.27%,0.00% 100.00%,...);
package sink
