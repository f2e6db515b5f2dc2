// Package gooey implements the vector path pipeline used by the gooey
// UI toolkit: SVG-flavored path parsing and flattening, stroke
// expansion, ear-clipping triangulation, and a rasterization cache for
// icon-sized vector content.
//
// # Overview
//
// The pipeline turns path data (SVG path-data strings, XML shape
// fragments, or programmatically built paths) into triangle meshes a
// renderer can draw directly, and caches the rasterized result of that
// process keyed by path content and device scale. It does not submit
// anything to a GPU, perform anti-aliased coverage, or lay out text —
// those remain the concern of the surrounding toolkit.
//
// # Quick Start
//
//	import "github.com/duanebester/gooey-sub002"
//
//	path, err := gooey.ParsePathData("M0 0 L10 0 L10 10 Z")
//	points, polys, err := gooey.FlattenPath(path, 0.25)
//	ring := points[polys[0].Start:polys[0].End]
//	mesh, err := gooey.ExpandStrokeToTriangles(ring, gooey.DefaultStrokeStyle())
//
// # Architecture
//
// The library is organized into:
//   - Public API: path parsing/flattening, stroke/triangulate/cache facades
//   - internal/fixed: fixed-capacity array and bitset containers
//   - internal/path: SVG path-data and XML fragment parsing, flattening
//   - internal/stroke: stroke outline and triangle expansion
//   - internal/triangulate: ear-clipping polygon triangulation
//   - internal/rastercache: atlas-backed rasterization cache
//   - ElementId (identity.go): stable element identifiers used as cache keys
//
// # Coordinate System
//
// Uses standard 2D coordinates with Y increasing downward, matching SVG
// and the toolkit's layout coordinate space. Angles are in radians.
package gooey
