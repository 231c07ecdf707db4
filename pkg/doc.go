// Package pkg provides the libraries behind polyclip.
//
// # Overview
//
// Polyclip turns a perimeter grid and a random source into CSS clip-path
// polygons. The pkg directory is organized into:
//
//  1. [polygon] - Grid construction and polygon generation
//  2. [polygon/sink] - Raw, CSS and JSON encodings of a generated polygon
//  3. [errors] - Code-tagged errors shared by library and CLI
//  4. [buildinfo] - Version information injected at build time
//
// # Quick Start
//
//	import (
//	    "fmt"
//	    "github.com/matzehuels/polyclip/pkg/polygon"
//	    "github.com/matzehuels/polyclip/pkg/polygon/sink"
//	)
//
//	g, err := polygon.New(polygon.WithStepSize(5))
//	if err != nil {
//	    return err
//	}
//	p, err := g.Build(polygon.NewSource(42), polygon.DefaultMean)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(sink.CSS(p))
//
// [polygon]: github.com/matzehuels/polyclip/pkg/polygon
// [polygon/sink]: github.com/matzehuels/polyclip/pkg/polygon/sink
// [errors]: github.com/matzehuels/polyclip/pkg/errors
// [buildinfo]: github.com/matzehuels/polyclip/pkg/buildinfo
package pkg
