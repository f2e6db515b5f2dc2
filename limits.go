package gooey

// Default static limits. These size every fixed-capacity buffer in the
// pipeline at construction time; the per-frame hot path performs no
// further allocation. Override via the ...Option constructors on
// Parser, StrokeExpander, Triangulator, and RasterCache.
const (
	// DefaultMaxPathVertices bounds the vertex count of a flattened polygon.
	DefaultMaxPathVertices = 4096

	// DefaultMaxPathIndices is 3*(DefaultMaxPathVertices-2), the worst case
	// triangle-index count for a simple polygon fan triangulation.
	DefaultMaxPathIndices = 3 * (DefaultMaxPathVertices - 2)

	// DefaultMaxStrokeInput bounds the polyline length passed to the
	// stroke expander.
	DefaultMaxStrokeInput = 2048

	// DefaultMaxStrokeOutput bounds the outline/triangle-mesh vertex
	// count emitted by the stroke expander.
	DefaultMaxStrokeOutput = 8192

	// DefaultRoundSegments is the subdivision count used for round caps
	// and joins.
	DefaultRoundSegments = 8

	// DefaultMaxRasterizationsPerFrame is the rasterization work budget
	// the cache allows per frame before deferring further work.
	DefaultMaxRasterizationsPerFrame = 4
)
